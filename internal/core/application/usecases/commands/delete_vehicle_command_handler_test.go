package commands_test

import (
	"testing"

	"vehicletrack/internal/core/application/usecases/commands"
	"vehicletrack/internal/core/domain/model/kernel"
	"vehicletrack/internal/core/domain/model/vehicle"
	"vehicletrack/internal/core/ports"
	"vehicletrack/internal/pkg/errs"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestDeleteVehicleCommandHandler_Handle_Success(t *testing.T) {
	ctx := t.Context()
	id := kernel.NewUUID()

	existing, err := vehicle.NewVehicle(
		id,
		"VIN-9", "Mustang", "Ford",
		2023,
		"Red", "Coupe",
		vehicle.StatusUnknown,
		vehicle.Details{},
	)
	require.NoError(t, err)

	cmd, err := commands.NewDeleteVehicleCommand(id)
	require.NoError(t, err)

	repo := new(MockVehicleRepository)
	uow := new(MockVehicleUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("VehicleRepository").Return(repo).Once(),
		repo.On("Get", mock.Anything, id).Return(existing, nil).Once(),
		repo.On("Delete", mock.Anything, id).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockVehicleUoWFactory)
	factory.On("Create").Return(uow).Once()

	// The event carries the last state captured before deletion.
	publisher := new(MockEventPublisher)
	publisher.On("Publish", mock.Anything, ports.TopicVehicleEvents, "VIN-9",
		mock.MatchedBy(func(e ports.EventEnvelope) bool {
			snapshot, ok := e.Payload.(vehicle.Snapshot)
			return ok && e.EventType == vehicle.EventDeleted && snapshot.VIN == "VIN-9"
		})).Return(nil).Once()

	h := commands.NewDeleteVehicleCommandHandler(factory, publisher, discardLogger())
	require.NoError(t, h.Handle(ctx, cmd))
	repo.AssertExpectations(t)
	publisher.AssertExpectations(t)
}

func TestDeleteVehicleCommandHandler_Handle_NotFound(t *testing.T) {
	ctx := t.Context()
	id := kernel.NewUUID()

	cmd, err := commands.NewDeleteVehicleCommand(id)
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

	publisher := new(MockEventPublisher)

	h := commands.NewDeleteVehicleCommandHandler(factory, publisher, discardLogger())
	require.ErrorIs(t, h.Handle(ctx, cmd), errs.ErrObjectNotFound)
	publisher.AssertNotCalled(t, "Publish", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}
