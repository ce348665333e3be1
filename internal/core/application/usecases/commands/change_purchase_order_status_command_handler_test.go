package commands_test

import (
	"context"
	"testing"

	"vehicletrack/internal/core/application/usecases/commands"
	"vehicletrack/internal/core/domain/model/kernel"
	"vehicletrack/internal/core/domain/model/order"
	"vehicletrack/internal/core/ports"
	"vehicletrack/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type MockOrderRepository struct{ mock.Mock }

func (m *MockOrderRepository) Add(ctx context.Context, o *order.PurchaseOrder) error {
	args := m.Called(ctx, o)
	return args.Error(0)
}

func (m *MockOrderRepository) Update(ctx context.Context, o *order.PurchaseOrder) error {
	args := m.Called(ctx, o)
	return args.Error(0)
}

func (m *MockOrderRepository) Get(ctx context.Context, id kernel.UUID) (*order.PurchaseOrder, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*order.PurchaseOrder), args.Error(1)
}

func (m *MockOrderRepository) GetByOrderNumber(ctx context.Context, orderNumber string) (*order.PurchaseOrder, error) {
	args := m.Called(ctx, orderNumber)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*order.PurchaseOrder), args.Error(1)
}

func (m *MockOrderRepository) Delete(ctx context.Context, id kernel.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
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

func TestChangePurchaseOrderStatusCommandHandler_Handle_Delivered(t *testing.T) {
	ctx := t.Context()
	id := kernel.NewUUID()

	existing, err := order.NewPurchaseOrder(
		id, "ORD-2024-001",
		order.Customer{ID: "C-1", Name: "Jordan Smith"},
		order.VehicleInfo{VIN: "VIN-1", Model: "Civic", Make: "Honda", Year: 2024, Color: "Blue"},
		order.StatusUnknown,
		order.Details{},
	)
	require.NoError(t, err)

	cmd, err := commands.NewChangePurchaseOrderStatusCommand(id, order.StatusDelivered)
	require.NoError(t, err)

	repo := new(MockOrderRepository)
	uow := new(MockOrderUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("OrderRepository").Return(repo).Once(),
		repo.On("Get", mock.Anything, id).Return(existing, nil).Once(),
		repo.On("Update", mock.Anything, existing).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockOrderUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewChangePurchaseOrderStatusCommandHandler(factory)
	require.NoError(t, h.Handle(ctx, cmd))

	assert.Equal(t, order.StatusDelivered, existing.Status())
	assert.NotNil(t, existing.ActualDeliveryDate())
	repo.AssertExpectations(t)
}

func TestChangePurchaseOrderStatusCommandHandler_Handle_NotFound(t *testing.T) {
	ctx := t.Context()
	id := kernel.NewUUID()

	cmd, err := commands.NewChangePurchaseOrderStatusCommand(id, order.StatusConfirmed)
	require.NoError(t, err)

	repo := new(MockOrderRepository)
	uow := new(MockOrderUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("OrderRepository").Return(repo).Once(),
		repo.On("Get", mock.Anything, id).
			Return(nil, errs.NewObjectNotFoundError("orderID", id)).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockOrderUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewChangePurchaseOrderStatusCommandHandler(factory)
	require.ErrorIs(t, h.Handle(ctx, cmd), errs.ErrObjectNotFound)
}

func TestCreatePurchaseOrderCommandHandler_Handle_DuplicateOrderNumber(t *testing.T) {
	ctx := t.Context()

	existing, err := order.NewPurchaseOrder(
		kernel.NewUUID(), "ORD-2024-001",
		order.Customer{}, order.VehicleInfo{},
		order.StatusUnknown, order.Details{},
	)
	require.NoError(t, err)

	cmd, err := commands.NewCreatePurchaseOrderCommand(
		kernel.NewUUID(), "ORD-2024-001",
		order.Customer{ID: "C-2"},
		order.VehicleInfo{VIN: "VIN-2"},
		order.StatusUnknown,
		order.Details{},
	)
	require.NoError(t, err)

	repo := new(MockOrderRepository)
	uow := new(MockOrderUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("OrderRepository").Return(repo).Once(),
		repo.On("GetByOrderNumber", mock.Anything, "ORD-2024-001").Return(existing, nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockOrderUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewCreatePurchaseOrderCommandHandler(factory)
	require.ErrorIs(t, h.Handle(ctx, cmd), errs.ErrObjectAlreadyExists)
}
