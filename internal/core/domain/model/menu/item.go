// Package menu provides the read-only Item entity. The menu catalog is owned
// by an external collaborator; this core only reads item identity, prep time,
// and activity for order validation and wait estimation, so the package
// exposes a Restore constructor and no mutators.
package menu

import (
	"errors"
	"fmt"

	"canteen/internal/core/domain/model/kernel"
	"canteen/internal/pkg/errs"
)

// ErrItemIsNotConstructed is returned when an Item instance was not created
// through RestoreItem.
var ErrItemIsNotConstructed = errors.New("Item must be created via RestoreItem")

// Item is a catalog entry a student can order. avgPrepTimeMinutes feeds the
// queue wait estimator; isActive gates new orders.
type Item struct {
	id                 kernel.UUID
	name               string
	category           string
	price              float64
	avgPrepTimeMinutes int
	isActive           bool

	isConstructed bool
}

// RestoreItem reconstructs an Item from persisted state. Prep time must be
// non-negative and price must not be negative; the name is required.
func RestoreItem(
	id kernel.UUID,
	name, category string,
	price float64,
	avgPrepTimeMinutes int,
	isActive bool,
) (*Item, error) {
	item := &Item{
		category:      category,
		isActive:      isActive,
		isConstructed: true,
	}

	if err := errors.Join(
		item.setID(id),
		item.setName(name),
		item.setPrice(price),
		item.setAvgPrepTimeMinutes(avgPrepTimeMinutes),
	); err != nil {
		return nil, err
	}

	return item, nil
}

// Validate ensures the Item instance was properly constructed.
func (i *Item) Validate() error {
	if i == nil || !i.isConstructed {
		return ErrItemIsNotConstructed
	}
	return nil
}

// ID returns the item's identifier.
func (i *Item) ID() kernel.UUID {
	return i.id
}

// Name returns the item's display name.
func (i *Item) Name() string {
	return i.name
}

// Category returns the catalog category.
func (i *Item) Category() string {
	return i.category
}

// Price returns the unit price.
func (i *Item) Price() float64 {
	return i.price
}

// AvgPrepTimeMinutes returns the average preparation time per unit,
// used only for wait estimation.
func (i *Item) AvgPrepTimeMinutes() int {
	return i.avgPrepTimeMinutes
}

// IsActive reports whether the item can currently be ordered.
func (i *Item) IsActive() bool {
	return i.isActive
}

func (i *Item) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	i.id = id
	return nil
}

func (i *Item) setName(name string) error {
	if name == "" {
		return errs.NewValueIsRequiredError("name")
	}
	i.name = name
	return nil
}

func (i *Item) setPrice(price float64) error {
	if price < 0 {
		return errs.NewValueIsInvalidErrorWithCause("price",
			fmt.Errorf("%.2f is negative", price))
	}
	i.price = price
	return nil
}

func (i *Item) setAvgPrepTimeMinutes(minutes int) error {
	if minutes < 0 {
		return errs.NewValueIsInvalidErrorWithCause("avgPrepTimeMinutes",
			fmt.Errorf("%d is negative", minutes))
	}
	i.avgPrepTimeMinutes = minutes
	return nil
}
