package commands_test

import (
	"errors"
	"testing"
	"time"

	"canteen/internal/core/application/auth"
	"canteen/internal/core/application/usecases/commands"
	"canteen/internal/core/domain/model/kernel"
	"canteen/internal/core/domain/model/order"
	"canteen/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func pendingOrder(t *testing.T, id kernel.UUID) *order.Order {
	t.Helper()

	o, err := order.NewOrder(id, kernel.NewUUID(), kernel.NewUUID(), 1, time.Now())
	require.NoError(t, err)
	return o
}

func deliveredOrder(t *testing.T, id kernel.UUID) *order.Order {
	t.Helper()

	o, err := order.RestoreOrder(
		id, kernel.NewUUID(), kernel.NewUUID(),
		1, order.Delivered, time.Now().Add(-time.Hour), nil)
	require.NoError(t, err)
	return o
}

func TestUpdateOrderStatusCommandHandler_Handle_Success(t *testing.T) {
	ctx := t.Context()
	orderID := kernel.NewUUID()
	cmd, _ := commands.NewUpdateOrderStatusCommand(orderID, order.Preparing)
	aggregate := pendingOrder(t, orderID)

	repo := new(MockOrderRepository)
	uow := new(MockOrderUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("OrderRepository").Return(repo).Once(),
		repo.On("GetForUpdate", mock.Anything, orderID).Return(aggregate, nil).Once(),
		repo.On("Update", mock.Anything, aggregate).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(errors.New("no active transaction")).Once(),
	)

	factory := new(MockOrderUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewUpdateOrderStatusCommandHandler(factory)
	err := h.Handle(ctx, auth.GrantKitchenAccess(), cmd)

	require.NoError(t, err)
	assert.Equal(t, order.Preparing, aggregate.Status())
	repo.AssertExpectations(t)
	uow.AssertExpectations(t)
}

func TestUpdateOrderStatusCommandHandler_Handle_StampsReadyTime(t *testing.T) {
	ctx := t.Context()
	orderID := kernel.NewUUID()
	aggregate, err := order.RestoreOrder(
		orderID, kernel.NewUUID(), kernel.NewUUID(),
		1, order.Preparing, time.Now().Add(-10*time.Minute), nil)
	require.NoError(t, err)

	cmd, _ := commands.NewUpdateOrderStatusCommand(orderID, order.Ready)

	repo := new(MockOrderRepository)
	uow := new(MockOrderUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("OrderRepository").Return(repo).Once(),
		repo.On("GetForUpdate", mock.Anything, orderID).Return(aggregate, nil).Once(),
		repo.On("Update", mock.Anything, aggregate).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(errors.New("no active transaction")).Once(),
	)

	factory := new(MockOrderUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewUpdateOrderStatusCommandHandler(factory)
	require.NoError(t, h.Handle(ctx, auth.GrantKitchenAccess(), cmd))

	assert.Equal(t, order.Ready, aggregate.Status())
	assert.NotNil(t, aggregate.ActualReadyTime())
}

func TestUpdateOrderStatusCommandHandler_Handle_UngatedAccessIsRejected(t *testing.T) {
	ctx := t.Context()
	cmd, _ := commands.NewUpdateOrderStatusCommand(kernel.NewUUID(), order.Preparing)

	var access auth.KitchenAccess // never granted

	factory := new(MockOrderUoWFactory)
	h := commands.NewUpdateOrderStatusCommandHandler(factory)

	err := h.Handle(ctx, access, cmd)

	require.Error(t, err)
	assert.Equal(t, auth.ErrKitchenAccessIsNotGranted, err)
	factory.AssertNotCalled(t, "Create")
}

func TestUpdateOrderStatusCommandHandler_Handle_OrderNotFound(t *testing.T) {
	ctx := t.Context()
	orderID := kernel.NewUUID()
	cmd, _ := commands.NewUpdateOrderStatusCommand(orderID, order.Preparing)

	repo := new(MockOrderRepository)
	uow := new(MockOrderUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("OrderRepository").Return(repo).Once(),
		repo.On("GetForUpdate", mock.Anything, orderID).
			Return(nil, errs.NewObjectNotFoundError("order", orderID.String())).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockOrderUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewUpdateOrderStatusCommandHandler(factory)
	err := h.Handle(ctx, auth.GrantKitchenAccess(), cmd)

	require.Error(t, err)
	assert.ErrorIs(t, err, errs.ErrObjectNotFound)
	uow.AssertExpectations(t)
}

func TestUpdateOrderStatusCommandHandler_Handle_InvalidTransition(t *testing.T) {
	ctx := t.Context()
	orderID := kernel.NewUUID()
	cmd, _ := commands.NewUpdateOrderStatusCommand(orderID, order.Preparing)
	aggregate := deliveredOrder(t, orderID)

	repo := new(MockOrderRepository)
	uow := new(MockOrderUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("OrderRepository").Return(repo).Once(),
		repo.On("GetForUpdate", mock.Anything, orderID).Return(aggregate, nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockOrderUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewUpdateOrderStatusCommandHandler(factory)
	err := h.Handle(ctx, auth.GrantKitchenAccess(), cmd)

	require.Error(t, err)
	assert.ErrorIs(t, err, order.ErrInvalidTransition)

	var invalid *order.InvalidTransitionError
	require.ErrorAs(t, err, &invalid)
	assert.Equal(t, order.Delivered, invalid.From)

	repo.AssertNotCalled(t, "Update", mock.Anything, mock.Anything)
	uow.AssertExpectations(t)
}

func TestUpdateOrderStatusCommandHandler_Handle_CommitError(t *testing.T) {
	ctx := t.Context()
	orderID := kernel.NewUUID()
	cmd, _ := commands.NewUpdateOrderStatusCommand(orderID, order.Preparing)
	aggregate := pendingOrder(t, orderID)

	repo := new(MockOrderRepository)
	uow := new(MockOrderUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("OrderRepository").Return(repo).Once(),
		repo.On("GetForUpdate", mock.Anything, orderID).Return(aggregate, nil).Once(),
		repo.On("Update", mock.Anything, aggregate).Return(nil).Once(),
		uow.On("Commit", ctx).Return(errors.New("commit error")).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockOrderUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewUpdateOrderStatusCommandHandler(factory)
	err := h.Handle(ctx, auth.GrantKitchenAccess(), cmd)

	require.Error(t, err)
	uow.AssertExpectations(t)
}

func TestUpdateOrderStatusCommandHandler_Handle_ValidationError(t *testing.T) {
	ctx := t.Context()
	cmd := commands.UpdateOrderStatusCommand{} // not constructed properly

	factory := new(MockOrderUoWFactory)
	h := commands.NewUpdateOrderStatusCommandHandler(factory)

	err := h.Handle(ctx, auth.GrantKitchenAccess(), cmd)

	require.Error(t, err)
	factory.AssertNotCalled(t, "Create")
}
