package queries

import (
	"context"

	"canteen/internal/core/domain/model/kernel"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GetMenuQueryHandler retrieves the active menu items, grouped by category
// and then by name so the listing is stable between calls.
type GetMenuQueryHandler struct {
	db *gorm.DB
}

// NewGetMenuQueryHandler creates a handler for menu queries.
// Requires a GORM database connection for query execution.
func NewGetMenuQueryHandler(db *gorm.DB) GetMenuQueryHandler {
	return GetMenuQueryHandler{db: db}
}

// Handle executes the query to retrieve all active menu items.
func (h GetMenuQueryHandler) Handle(
	ctx context.Context,
	query GetMenuQuery,
) ([]GetMenuQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	items := make([]GetMenuQueryResponse, 0)

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			id,
			name,
			category,
			price,
			avg_prep_time_minutes
		FROM menu_items
		WHERE is_active
		ORDER BY category, name
	`).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var item GetMenuQueryResponse
		var id uuid.UUID

		err = rows.Scan(
			&id,
			&item.Name,
			&item.Category,
			&item.Price,
			&item.AvgPrepTimeMinutes,
		)
		if err != nil {
			return nil, err
		}

		itemID, idErr := kernel.UUIDFromBytes(id[:])
		if idErr != nil {
			return nil, idErr
		}
		item.ID = itemID

		items = append(items, item)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return items, nil
}
