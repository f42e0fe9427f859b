package queries

import (
	"errors"
	"time"

	"canteen/internal/core/domain/model/kernel"

	"canteen/internal/pkg/guard"
)

var (
	ErrGetKitchenQueueQueryIsNotConstructed = errors.New(
		"GetKitchenQueueQuery must be created via NewGetKitchenQueueQuery constructor",
	)
)

// GetKitchenQueueQuery asks for the kitchen work list: every order that is
// not yet delivered or cancelled, oldest first, with the student and menu
// item details the staff needs to prepare and hand it over.
type GetKitchenQueueQuery struct {
	guard guard.ConstructorGuard
}

// NewGetKitchenQueueQuery creates a kitchen queue query.
func NewGetKitchenQueueQuery() GetKitchenQueueQuery {
	return GetKitchenQueueQuery{guard: guard.NewConstructorGuard()}
}

// Validate ensures the query was created through the constructor.
func (q GetKitchenQueueQuery) Validate() error {
	return q.guard.Validate(ErrGetKitchenQueueQueryIsNotConstructed)
}

// GetKitchenQueueQueryResponse is one row of the kitchen work list.
// Status carries the wire form of the order status.
type GetKitchenQueueQueryResponse struct {
	ID                    kernel.UUID
	StudentName           string
	StudentRegistrationID string
	ItemName              string
	Quantity              int
	Status                string
	OrderTime             time.Time
}
