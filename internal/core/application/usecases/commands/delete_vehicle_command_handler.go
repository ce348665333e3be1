package commands

import (
	"context"
	"log/slog"

	"vehicletrack/internal/core/domain/model/vehicle"
	"vehicletrack/internal/core/ports"
)

// DeleteVehicleCommandHandler handles vehicle removal. The VEHICLE_DELETED
// event carries the last snapshot taken before the row was deleted.
type DeleteVehicleCommandHandler struct {
	uowFactory VehicleUoWFactory
	publisher  ports.EventPublisher
	logger     *slog.Logger
}

// NewDeleteVehicleCommandHandler creates a handler for vehicle removal.
func NewDeleteVehicleCommandHandler(
	uowFactory VehicleUoWFactory,
	publisher ports.EventPublisher,
	logger *slog.Logger,
) DeleteVehicleCommandHandler {
	return DeleteVehicleCommandHandler{
		uowFactory: uowFactory,
		publisher:  publisher,
		logger:     logger,
	}
}

// Handle processes the vehicle deletion command.
// The vehicle is loaded first so the deletion event can carry its final
// state; a missing vehicle surfaces as a not-found error.
func (h *DeleteVehicleCommandHandler) Handle(ctx context.Context, cmd DeleteVehicleCommand) error {
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

	vehicleRepo := uow.VehicleRepository()

	aggregate, err := vehicleRepo.Get(ctx, cmd.VehicleID())
	if err != nil {
		return err
	}
	snapshot := aggregate.Snapshot()

	if err = vehicleRepo.Delete(ctx, cmd.VehicleID()); err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	publishEvent(ctx, h.publisher, h.logger,
		ports.TopicVehicleEvents, snapshot.VIN, vehicle.EventDeleted, snapshot)

	return nil
}
