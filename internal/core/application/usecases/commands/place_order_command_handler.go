package commands

import (
	"context"
	"errors"
	"fmt"
	"time"

	"canteen/internal/core/domain/model/kernel"
	"canteen/internal/core/domain/model/order"
	"canteen/internal/core/domain/model/student"
	"canteen/internal/pkg/errs"
)

// PlaceOrderCommandHandler handles the business logic for order placement.
// It resolves the submitted identity to a student record (creating one on the
// first order), validates the menu item, and inserts the order in Pending
// status — all within a single transaction.
//
// Student resolution is race-free without a dedicated lock: the store's
// uniqueness constraint on registration id is the serialization point. When
// two first-time orders for the same registration id race, the loser's
// transaction fails with a duplicate-key conflict; because PostgreSQL aborts
// the whole transaction on that conflict, the handler restarts once with a
// fresh unit of work, finds the winner's row, and attaches the order to it.
type PlaceOrderCommandHandler struct {
	uowFactory PlacementUoWFactory
}

// NewPlaceOrderCommandHandler creates a handler for order placement.
// Requires a PlacementUoWFactory for transactional persistence.
func NewPlaceOrderCommandHandler(uowFactory PlacementUoWFactory) PlaceOrderCommandHandler {
	return PlaceOrderCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the order placement command. On success the order exists
// in Pending status under cmd.OrderID(); on any error no order row exists.
func (h *PlaceOrderCommandHandler) Handle(ctx context.Context, cmd PlaceOrderCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	err := h.placeOrder(ctx, cmd)
	if errors.Is(err, errs.ErrObjectAlreadyExists) {
		// Lost the student-creation race; the row now exists, so a
		// second attempt resolves it by registration id.
		err = h.placeOrder(ctx, cmd)
	}
	return err
}

func (h *PlaceOrderCommandHandler) placeOrder(ctx context.Context, cmd PlaceOrderCommand) error {
	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	item, err := uow.MenuItemRepository().Get(ctx, cmd.ItemID())
	if err != nil {
		return err
	}
	if !item.IsActive() {
		return errs.NewValueIsInvalidErrorWithCause("itemID",
			fmt.Errorf("menu item %s is not active", item.ID()))
	}

	resolved, err := h.resolveStudent(ctx, uow, cmd)
	if err != nil {
		return err
	}

	newOrder, err := order.NewOrder(cmd.OrderID(), resolved.ID(), item.ID(), cmd.Quantity(), time.Now())
	if err != nil {
		return err
	}

	if err = uow.OrderRepository().Add(ctx, newOrder); err != nil {
		return err
	}

	return uow.Commit(ctx)
}

// resolveStudent returns the student owning cmd's registration id, creating
// the record on the first order. Only one student may ever exist per
// registration id; the repository surfaces a conflict when a concurrent
// transaction wins the insert.
func (h *PlaceOrderCommandHandler) resolveStudent(
	ctx context.Context,
	uow PlacementUoW,
	cmd PlaceOrderCommand,
) (*student.Student, error) {
	studentRepo := uow.StudentRepository()

	existing, err := studentRepo.GetByRegistrationID(ctx, cmd.RegistrationID())
	if err == nil {
		return existing, nil
	}
	if !errors.Is(err, errs.ErrObjectNotFound) {
		return nil, err
	}

	created, err := student.NewStudent(kernel.NewUUID(), cmd.StudentName(), cmd.RegistrationID())
	if err != nil {
		return nil, err
	}

	if err = studentRepo.Add(ctx, created); err != nil {
		return nil, err
	}

	return created, nil
}
