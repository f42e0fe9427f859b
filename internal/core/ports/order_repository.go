package ports

import (
	"context"

	"canteen/internal/core/domain/model/kernel"
	"canteen/internal/core/domain/model/order"
)

// OrderRepository defines the persistence contract for order aggregates.
type OrderRepository interface {
	// Add persists a new order aggregate to storage.
	Add(ctx context.Context, aggregate *order.Order) error

	// Update persists changes to an existing order aggregate.
	// The order must already exist in the repository.
	Update(ctx context.Context, aggregate *order.Order) error

	// Get retrieves an order aggregate by its unique identifier.
	Get(ctx context.Context, id kernel.UUID) (*order.Order, error)

	// GetForUpdate retrieves an order and locks its row for the duration
	// of the current transaction (SELECT ... FOR UPDATE). Status
	// transitions must load the order this way so that concurrent
	// transitions on the same order serialize instead of racing.
	GetForUpdate(ctx context.Context, id kernel.UUID) (*order.Order, error)

	// GetAllInStatuses retrieves all orders whose status is in the given
	// set, ordered by order time ascending to preserve FIFO fairness in
	// the visible queue. The result is a finite snapshot, not a live
	// subscription.
	GetAllInStatuses(ctx context.Context, statuses []order.Status) ([]*order.Order, error)
}
