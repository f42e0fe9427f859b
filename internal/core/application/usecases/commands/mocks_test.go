package commands_test

import (
	"context"
	"errors"

	"canteen/internal/core/application/usecases/commands"
	"canteen/internal/core/domain/model/kernel"
	"canteen/internal/core/domain/model/menu"
	"canteen/internal/core/domain/model/order"
	"canteen/internal/core/domain/model/student"
	"canteen/internal/core/ports"

	"github.com/stretchr/testify/mock"
)

type MockStudentRepository struct{ mock.Mock }

func (m *MockStudentRepository) Add(ctx context.Context, s *student.Student) error {
	args := m.Called(ctx, s)
	return args.Error(0)
}

func (m *MockStudentRepository) Get(_ context.Context, _ kernel.UUID) (*student.Student, error) {
	return nil, errors.New("not implemented in mock")
}

func (m *MockStudentRepository) GetByRegistrationID(ctx context.Context, registrationID string) (*student.Student, error) {
	args := m.Called(ctx, registrationID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*student.Student), args.Error(1)
}

type MockOrderRepository struct{ mock.Mock }

func (m *MockOrderRepository) Add(ctx context.Context, o *order.Order) error {
	args := m.Called(ctx, o)
	return args.Error(0)
}

func (m *MockOrderRepository) Update(ctx context.Context, o *order.Order) error {
	args := m.Called(ctx, o)
	return args.Error(0)
}

func (m *MockOrderRepository) Get(_ context.Context, _ kernel.UUID) (*order.Order, error) {
	return nil, errors.New("not implemented in mock")
}

func (m *MockOrderRepository) GetForUpdate(ctx context.Context, id kernel.UUID) (*order.Order, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*order.Order), args.Error(1)
}

func (m *MockOrderRepository) GetAllInStatuses(_ context.Context, _ []order.Status) ([]*order.Order, error) {
	return nil, errors.New("not implemented in mock")
}

type MockMenuItemRepository struct{ mock.Mock }

func (m *MockMenuItemRepository) Get(ctx context.Context, id kernel.UUID) (*menu.Item, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*menu.Item), args.Error(1)
}

func (m *MockMenuItemRepository) GetAllActive(_ context.Context) ([]*menu.Item, error) {
	return nil, errors.New("not implemented in mock")
}

type MockPlacementUoW struct{ mock.Mock }

func (m *MockPlacementUoW) Begin(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockPlacementUoW) Commit(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockPlacementUoW) Rollback(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockPlacementUoW) StudentRepository() ports.StudentRepository {
	args := m.Called()
	return args.Get(0).(ports.StudentRepository)
}

func (m *MockPlacementUoW) OrderRepository() ports.OrderRepository {
	args := m.Called()
	return args.Get(0).(ports.OrderRepository)
}

func (m *MockPlacementUoW) MenuItemRepository() ports.MenuItemRepository {
	args := m.Called()
	return args.Get(0).(ports.MenuItemRepository)
}

type MockPlacementUoWFactory struct{ mock.Mock }

func (m *MockPlacementUoWFactory) Create() commands.PlacementUoW {
	args := m.Called()
	return args.Get(0).(commands.PlacementUoW)
}

type MockOrderUoW struct{ mock.Mock }

func (m *MockOrderUoW) Begin(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockOrderUoW) Commit(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockOrderUoW) Rollback(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockOrderUoW) OrderRepository() ports.OrderRepository {
	args := m.Called()
	return args.Get(0).(ports.OrderRepository)
}

type MockOrderUoWFactory struct{ mock.Mock }

func (m *MockOrderUoWFactory) Create() commands.OrderUoW {
	args := m.Called()
	return args.Get(0).(commands.OrderUoW)
}
