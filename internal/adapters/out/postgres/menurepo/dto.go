// Package menurepo provides data transfer objects and mapping functions for
// menu item persistence. Menu items are reference data: the service reads
// them to price and time orders but never creates or mutates them, so the
// repository exposes reads only.
package menurepo

import (
	"canteen/internal/core/domain/model/kernel"
	"canteen/internal/core/domain/model/menu"

	"github.com/google/uuid"
)

// ItemDTO represents the database structure for menu items.
type ItemDTO struct {
	ID                 uuid.UUID `gorm:"type:uuid;primaryKey"`
	Name               string    `gorm:"not null"`
	Category           string    `gorm:"index;not null"`
	Price              float64   `gorm:"not null"`
	AvgPrepTimeMinutes int       `gorm:"not null"`
	IsActive           bool      `gorm:"not null;default:true"`
}

// TableName specifies the database table name for menu items.
func (ItemDTO) TableName() string {
	return "menu_items"
}

// toDomain converts a database DTO to a menu item.
func toDomain(dto ItemDTO) (*menu.Item, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	return menu.RestoreItem(
		id, dto.Name, dto.Category,
		dto.Price, dto.AvgPrepTimeMinutes, dto.IsActive)
}
