package ports

import (
	"context"

	"canteen/internal/core/domain/model/kernel"
	"canteen/internal/core/domain/model/menu"
)

// MenuItemRepository defines the read-only persistence contract for the menu
// catalog. The catalog itself is owned by an external collaborator; the core
// only reads items to validate order placement.
type MenuItemRepository interface {
	// Get retrieves a menu item by identifier.
	// Returns an error matching errs.ErrObjectNotFound when absent.
	Get(ctx context.Context, id kernel.UUID) (*menu.Item, error)

	// GetAllActive retrieves every item currently offered, for the
	// student-facing menu listing.
	GetAllActive(ctx context.Context) ([]*menu.Item, error)
}
