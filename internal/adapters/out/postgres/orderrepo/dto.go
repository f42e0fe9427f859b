// Package orderrepo provides data transfer objects and mapping functions for
// order persistence. It implements the repository pattern for the order
// aggregate, converting between domain entities and database rows.
package orderrepo

import (
	"time"

	"canteen/internal/core/domain/model/kernel"
	"canteen/internal/core/domain/model/order"

	"github.com/google/uuid"
)

// OrderDTO represents the database structure for persisting order aggregates.
// Status is stored in its wire form and indexed together with order time,
// since every queue and summary view filters on one and windows on the other.
type OrderDTO struct {
	ID              uuid.UUID  `gorm:"type:uuid;primaryKey"`
	StudentID       uuid.UUID  `gorm:"type:uuid;index;not null"`
	ItemID          uuid.UUID  `gorm:"type:uuid;index;not null"`
	Quantity        int        `gorm:"not null"`
	Status          string     `gorm:"index;not null"`
	OrderTime       time.Time  `gorm:"index;not null"`
	ActualReadyTime *time.Time
}

// TableName specifies the database table name for order entities.
func (OrderDTO) TableName() string {
	return "orders"
}

// fromDomain converts an order domain aggregate to its database representation.
func fromDomain(aggregate *order.Order) OrderDTO {
	return OrderDTO{
		ID:              aggregate.ID().Bytes(),
		StudentID:       aggregate.StudentID().Bytes(),
		ItemID:          aggregate.ItemID().Bytes(),
		Quantity:        aggregate.Quantity(),
		Status:          aggregate.Status().String(),
		OrderTime:       aggregate.OrderTime(),
		ActualReadyTime: aggregate.ActualReadyTime(),
	}
}

// toDomain converts a database DTO to an order domain aggregate using RestoreOrder.
func toDomain(dto OrderDTO) (*order.Order, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	studentID, err := kernel.UUIDFromBytes(dto.StudentID[:])
	if err != nil {
		return nil, err
	}

	itemID, err := kernel.UUIDFromBytes(dto.ItemID[:])
	if err != nil {
		return nil, err
	}

	status, err := order.StatusFromString(dto.Status)
	if err != nil {
		return nil, err
	}

	return order.RestoreOrder(
		id, studentID, itemID,
		dto.Quantity, status, dto.OrderTime, dto.ActualReadyTime)
}
