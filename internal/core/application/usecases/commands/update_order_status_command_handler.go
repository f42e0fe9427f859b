package commands

import (
	"context"
	"time"

	"canteen/internal/core/application/auth"
)

// UpdateOrderStatusCommandHandler handles kitchen-side status transitions.
//
// The whole check-and-update is one atomic unit: the order row is loaded
// under a FOR UPDATE lock, the aggregate validates the transition and stamps
// the ready time (first arrival into Ready or Delivered only), and the update
// commits with the same transaction. Two staff members submitting transitions
// for the same order concurrently therefore serialize on the row lock; the
// second sees the first's result and is validated against it.
//
// Handle requires a KitchenAccess capability: the request layer grants it
// only behind its credential gate, so the core exposes no ungated mutation.
type UpdateOrderStatusCommandHandler struct {
	uowFactory OrderUoWFactory
}

// NewUpdateOrderStatusCommandHandler creates a handler for status transitions.
// Requires an OrderUoWFactory for transactional persistence.
func NewUpdateOrderStatusCommandHandler(uowFactory OrderUoWFactory) UpdateOrderStatusCommandHandler {
	return UpdateOrderStatusCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the transition command. Fails with an error matching
// errs.ErrObjectNotFound when the order does not exist, and with
// order.ErrInvalidTransition (carrying the current status) when the requested
// transition is not legal; in both cases no state changes.
func (h *UpdateOrderStatusCommandHandler) Handle(
	ctx context.Context,
	access auth.KitchenAccess,
	cmd UpdateOrderStatusCommand,
) error {
	if err := access.Validate(); err != nil {
		return err
	}
	if err := cmd.Validate(); err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	orderRepo := uow.OrderRepository()

	aggregate, err := orderRepo.GetForUpdate(ctx, cmd.OrderID())
	if err != nil {
		return err
	}

	if err = aggregate.TransitionTo(cmd.NewStatus(), time.Now()); err != nil {
		return err
	}

	if err = orderRepo.Update(ctx, aggregate); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
