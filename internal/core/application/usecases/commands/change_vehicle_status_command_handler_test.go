package commands_test

import (
	"testing"

	"vehicletrack/internal/core/application/usecases/commands"
	"vehicletrack/internal/core/domain/model/kernel"
	"vehicletrack/internal/core/domain/model/vehicle"
	"vehicletrack/internal/core/ports"
	"vehicletrack/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestChangeVehicleStatusCommandHandler_Handle_Success(t *testing.T) {
	ctx := t.Context()
	id := kernel.NewUUID()

	existing, err := vehicle.NewVehicle(
		id,
		"VIN-1", "Model 3", "Tesla",
		2024,
		"White", "Sedan",
		vehicle.StatusUnknown,
		vehicle.Details{},
	)
	require.NoError(t, err)

	cmd, err := commands.NewChangeVehicleStatusCommand(id, vehicle.StatusDelivered)
	require.NoError(t, err)

	repo := new(MockVehicleRepository)
	uow := new(MockVehicleUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("VehicleRepository").Return(repo).Once(),
		repo.On("Get", mock.Anything, id).Return(existing, nil).Once(),
		repo.On("Update", mock.Anything, existing).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockVehicleUoWFactory)
	factory.On("Create").Return(uow).Once()

	publisher := new(MockEventPublisher)
	publisher.On("Publish", mock.Anything, ports.TopicVehicleEvents, "VIN-1",
		mock.MatchedBy(func(e ports.EventEnvelope) bool {
			return e.EventType == vehicle.EventStatusChanged
		})).Return(nil).Once()

	h := commands.NewChangeVehicleStatusCommandHandler(factory, publisher, discardLogger())
	require.NoError(t, h.Handle(ctx, cmd))

	assert.Equal(t, vehicle.StatusDelivered, existing.Status())
	repo.AssertExpectations(t)
	publisher.AssertExpectations(t)
}

func TestChangeVehicleStatusCommandHandler_Handle_NotFound(t *testing.T) {
	ctx := t.Context()
	id := kernel.NewUUID()

	cmd, err := commands.NewChangeVehicleStatusCommand(id, vehicle.StatusShipped)
	require.NoError(t, err)

	repo := new(MockVehicleRepository)
	uow := new(MockVehicleUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("VehicleRepository").Return(repo).Once(),
		repo.On("Get", mock.Anything, id).
			Return(nil, errs.NewObjectNotFoundError("vehicleID", id)).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockVehicleUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewChangeVehicleStatusCommandHandler(factory, new(MockEventPublisher), discardLogger())
	require.ErrorIs(t, h.Handle(ctx, cmd), errs.ErrObjectNotFound)
}

func TestNewChangeVehicleStatusCommand_RejectsUnknownStatus(t *testing.T) {
	_, err := commands.NewChangeVehicleStatusCommand(kernel.NewUUID(), vehicle.StatusUnknown)
	require.ErrorIs(t, err, errs.ErrValueIsInvalid)
}
