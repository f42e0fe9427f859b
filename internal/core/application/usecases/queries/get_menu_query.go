package queries

import (
	"errors"

	"canteen/internal/core/domain/model/kernel"

	"canteen/internal/pkg/guard"
)

var (
	ErrGetMenuQueryIsNotConstructed = errors.New(
		"GetMenuQuery must be created via NewGetMenuQuery constructor",
	)
)

// GetMenuQuery asks for the items students can currently order.
// Inactive items are hidden from this view but remain resolvable by ID so
// historical orders keep their item details.
type GetMenuQuery struct {
	guard guard.ConstructorGuard
}

// NewGetMenuQuery creates a menu query.
func NewGetMenuQuery() GetMenuQuery {
	return GetMenuQuery{guard: guard.NewConstructorGuard()}
}

// Validate ensures the query was created through the constructor.
func (q GetMenuQuery) Validate() error {
	return q.guard.Validate(ErrGetMenuQueryIsNotConstructed)
}

// GetMenuQueryResponse is one orderable menu item.
type GetMenuQueryResponse struct {
	ID                 kernel.UUID
	Name               string
	Category           string
	Price              float64
	AvgPrepTimeMinutes int
}
