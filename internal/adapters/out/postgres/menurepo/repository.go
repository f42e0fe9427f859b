package menurepo

import (
	"context"
	"errors"

	"canteen/internal/core/domain/model/kernel"
	"canteen/internal/core/domain/model/menu"
	"canteen/internal/pkg/errs"

	"gorm.io/gorm"
)

// GormMenuItemRepository implements MenuItemRepository using GORM.
type GormMenuItemRepository struct {
	db *gorm.DB
}

// NewGormMenuItemRepository creates a new GORM menu item repository.
func NewGormMenuItemRepository(db *gorm.DB) *GormMenuItemRepository {
	return &GormMenuItemRepository{db: db}
}

// Get retrieves a menu item by ID. Inactive items resolve too: existing
// orders must keep their item details after the item is withdrawn from sale.
func (r *GormMenuItemRepository) Get(ctx context.Context, id kernel.UUID) (*menu.Item, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	var dto ItemDTO
	if err := r.db.WithContext(ctx).First(&dto, "id = ?", id.Bytes()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("menu item", id.String())
		}
		return nil, err
	}

	return toDomain(dto)
}

// GetAllActive retrieves the orderable menu, sorted by category then name.
func (r *GormMenuItemRepository) GetAllActive(ctx context.Context) ([]*menu.Item, error) {
	var dtos []ItemDTO
	err := r.db.WithContext(ctx).
		Where("is_active").
		Order("category, name").
		Find(&dtos).Error
	if err != nil {
		return nil, err
	}

	items := make([]*menu.Item, 0, len(dtos))
	for _, dto := range dtos {
		item, err := toDomain(dto)
		if err != nil {
			return nil, err
		}
		items = append(items, item)
	}

	return items, nil
}
