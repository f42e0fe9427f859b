package queries

import (
	"context"

	"canteen/internal/core/domain/model/kernel"
	"canteen/internal/core/domain/model/order"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GetKitchenQueueQueryHandler retrieves the active orders the kitchen still
// has to act on, joined with student and menu item details. Terminal orders
// are filtered out; the rest come back oldest first so staff work the queue
// in arrival order.
type GetKitchenQueueQueryHandler struct {
	db *gorm.DB
}

// NewGetKitchenQueueQueryHandler creates a handler for kitchen queue queries.
// Requires a GORM database connection for query execution.
func NewGetKitchenQueueQueryHandler(db *gorm.DB) GetKitchenQueueQueryHandler {
	return GetKitchenQueueQueryHandler{db: db}
}

// Handle executes the query to retrieve all non-terminal orders.
// Returns orders in pending, preparing or ready status, sorted by
// order time ascending.
func (h GetKitchenQueueQueryHandler) Handle(
	ctx context.Context,
	query GetKitchenQueueQuery,
) ([]GetKitchenQueueQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	activeStatuses := []string{
		order.Pending.String(),
		order.Preparing.String(),
		order.Ready.String(),
	}

	queue := make([]GetKitchenQueueQueryResponse, 0)

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			o.id,
			s.name,
			s.registration_id,
			m.name,
			o.quantity,
			o.status,
			o.order_time
		FROM orders o
		JOIN students s ON s.id = o.student_id
		JOIN menu_items m ON m.id = o.item_id
		WHERE o.status IN ?
		ORDER BY o.order_time ASC
	`, activeStatuses).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var row GetKitchenQueueQueryResponse
		var id uuid.UUID

		err = rows.Scan(
			&id,
			&row.StudentName,
			&row.StudentRegistrationID,
			&row.ItemName,
			&row.Quantity,
			&row.Status,
			&row.OrderTime,
		)
		if err != nil {
			return nil, err
		}

		orderID, idErr := kernel.UUIDFromBytes(id[:])
		if idErr != nil {
			return nil, idErr
		}
		row.ID = orderID

		queue = append(queue, row)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return queue, nil
}
