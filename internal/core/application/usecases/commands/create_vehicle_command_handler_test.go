package commands_test

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"testing"

	"vehicletrack/internal/core/application/usecases/commands"
	"vehicletrack/internal/core/domain/model/kernel"
	"vehicletrack/internal/core/domain/model/vehicle"
	"vehicletrack/internal/core/ports"
	"vehicletrack/internal/pkg/errs"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

type MockVehicleRepository struct{ mock.Mock }

func (m *MockVehicleRepository) Add(ctx context.Context, v *vehicle.Vehicle) error {
	args := m.Called(ctx, v)
	return args.Error(0)
}

func (m *MockVehicleRepository) Update(ctx context.Context, v *vehicle.Vehicle) error {
	args := m.Called(ctx, v)
	return args.Error(0)
}

func (m *MockVehicleRepository) Get(ctx context.Context, id kernel.UUID) (*vehicle.Vehicle, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*vehicle.Vehicle), args.Error(1)
}

func (m *MockVehicleRepository) GetByVIN(ctx context.Context, vin string) (*vehicle.Vehicle, error) {
	args := m.Called(ctx, vin)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*vehicle.Vehicle), args.Error(1)
}

func (m *MockVehicleRepository) Delete(ctx context.Context, id kernel.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

type MockVehicleUoW struct{ mock.Mock }

func (m *MockVehicleUoW) Begin(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockVehicleUoW) Commit(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockVehicleUoW) Rollback(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockVehicleUoW) VehicleRepository() ports.VehicleRepository {
	args := m.Called()
	return args.Get(0).(ports.VehicleRepository)
}

type MockVehicleUoWFactory struct{ mock.Mock }

func (m *MockVehicleUoWFactory) Create() commands.VehicleUoW {
	args := m.Called()
	return args.Get(0).(commands.VehicleUoW)
}

type MockEventPublisher struct{ mock.Mock }

func (m *MockEventPublisher) Publish(ctx context.Context, topic, key string, event ports.EventEnvelope) error {
	args := m.Called(ctx, topic, key, event)
	return args.Error(0)
}

func (m *MockEventPublisher) Close() error {
	args := m.Called()
	return args.Error(0)
}

func newCreateVehicleCommand(t *testing.T) commands.CreateVehicleCommand {
	t.Helper()

	cmd, err := commands.NewCreateVehicleCommand(
		kernel.NewUUID(),
		"1HGCM82633A004352", "Civic", "Honda",
		2024,
		"Blue", "Sedan",
		vehicle.StatusUnknown,
		vehicle.Details{},
	)
	require.NoError(t, err)
	return cmd
}

func TestCreateVehicleCommandHandler_Handle_Success(t *testing.T) {
	ctx := t.Context()
	cmd := newCreateVehicleCommand(t)

	repo := new(MockVehicleRepository)
	uow := new(MockVehicleUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("VehicleRepository").Return(repo).Once(),
		repo.On("GetByVIN", mock.Anything, "1HGCM82633A004352").
			Return(nil, errs.NewObjectNotFoundError("vin", "1HGCM82633A004352")).Once(),
		repo.On("Add", mock.Anything, mock.AnythingOfType("*vehicle.Vehicle")).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockVehicleUoWFactory)
	factory.On("Create").Return(uow).Once()

	publisher := new(MockEventPublisher)
	publisher.On("Publish", mock.Anything, ports.TopicVehicleEvents, "1HGCM82633A004352",
		mock.MatchedBy(func(e ports.EventEnvelope) bool {
			return e.EventType == vehicle.EventCreated
		})).Return(nil).Once()

	h := commands.NewCreateVehicleCommandHandler(factory, publisher, discardLogger())
	err := h.Handle(ctx, cmd)
	require.NoError(t, err)
	repo.AssertExpectations(t)
	uow.AssertExpectations(t)
	factory.AssertExpectations(t)
	publisher.AssertExpectations(t)
}

func TestCreateVehicleCommandHandler_Handle_DuplicateVIN(t *testing.T) {
	ctx := t.Context()
	cmd := newCreateVehicleCommand(t)

	existing, err := vehicle.NewVehicle(
		kernel.NewUUID(),
		"1HGCM82633A004352", "Civic", "Honda",
		2023,
		"Red", "Sedan",
		vehicle.StatusUnknown,
		vehicle.Details{},
	)
	require.NoError(t, err)

	repo := new(MockVehicleRepository)
	uow := new(MockVehicleUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("VehicleRepository").Return(repo).Once(),
		repo.On("GetByVIN", mock.Anything, "1HGCM82633A004352").Return(existing, nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockVehicleUoWFactory)
	factory.On("Create").Return(uow).Once()

	publisher := new(MockEventPublisher)

	h := commands.NewCreateVehicleCommandHandler(factory, publisher, discardLogger())
	err = h.Handle(ctx, cmd)
	require.ErrorIs(t, err, errs.ErrObjectAlreadyExists)
	publisher.AssertNotCalled(t, "Publish", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func TestCreateVehicleCommandHandler_Handle_ValidationError(t *testing.T) {
	ctx := t.Context()
	cmd := commands.CreateVehicleCommand{} // not constructed properly
	factory := new(MockVehicleUoWFactory)
	h := commands.NewCreateVehicleCommandHandler(factory, new(MockEventPublisher), discardLogger())
	err := h.Handle(ctx, cmd)
	require.Error(t, err)
}

func TestCreateVehicleCommandHandler_Handle_PublishErrorIsSwallowed(t *testing.T) {
	ctx := t.Context()
	cmd := newCreateVehicleCommand(t)

	repo := new(MockVehicleRepository)
	uow := new(MockVehicleUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("VehicleRepository").Return(repo).Once(),
		repo.On("GetByVIN", mock.Anything, "1HGCM82633A004352").
			Return(nil, errs.NewObjectNotFoundError("vin", "1HGCM82633A004352")).Once(),
		repo.On("Add", mock.Anything, mock.AnythingOfType("*vehicle.Vehicle")).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockVehicleUoWFactory)
	factory.On("Create").Return(uow).Once()

	publisher := new(MockEventPublisher)
	publisher.On("Publish", mock.Anything, mock.Anything, mock.Anything, mock.Anything).
		Return(errors.New("broker unavailable")).Once()

	h := commands.NewCreateVehicleCommandHandler(factory, publisher, discardLogger())
	// The vehicle is committed; a broker failure must not fail the command.
	require.NoError(t, h.Handle(ctx, cmd))
	publisher.AssertExpectations(t)
}

func TestCreateVehicleCommandHandler_Handle_CommitError(t *testing.T) {
	ctx := t.Context()
	cmd := newCreateVehicleCommand(t)

	repo := new(MockVehicleRepository)
	uow := new(MockVehicleUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("VehicleRepository").Return(repo).Once(),
		repo.On("GetByVIN", mock.Anything, "1HGCM82633A004352").
			Return(nil, errs.NewObjectNotFoundError("vin", "1HGCM82633A004352")).Once(),
		repo.On("Add", mock.Anything, mock.AnythingOfType("*vehicle.Vehicle")).Return(nil).Once(),
		uow.On("Commit", ctx).Return(errors.New("commit error")).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockVehicleUoWFactory)
	factory.On("Create").Return(uow).Once()

	publisher := new(MockEventPublisher)

	h := commands.NewCreateVehicleCommandHandler(factory, publisher, discardLogger())
	err := h.Handle(ctx, cmd)
	require.Error(t, err)
	publisher.AssertNotCalled(t, "Publish", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}
