package commands

import (
	"context"
	"log/slog"

	"vehicletrack/internal/core/domain/model/vehicle"
	"vehicletrack/internal/core/ports"
)

// UpdateVehicleCommandHandler handles full-replace vehicle updates and
// publishes a VEHICLE_UPDATED event after commit.
type UpdateVehicleCommandHandler struct {
	uowFactory VehicleUoWFactory
	publisher  ports.EventPublisher
	logger     *slog.Logger
}

// NewUpdateVehicleCommandHandler creates a handler for vehicle updates.
func NewUpdateVehicleCommandHandler(
	uowFactory VehicleUoWFactory,
	publisher ports.EventPublisher,
	logger *slog.Logger,
) UpdateVehicleCommandHandler {
	return UpdateVehicleCommandHandler{
		uowFactory: uowFactory,
		publisher:  publisher,
		logger:     logger,
	}
}

// Handle processes the vehicle update command.
// Loads the vehicle, replaces its descriptive fields and status wholesale,
// and persists the result.
func (h *UpdateVehicleCommandHandler) Handle(ctx context.Context, cmd UpdateVehicleCommand) error {
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

	if err = aggregate.UpdateDetails(
		cmd.Model(), cmd.Make(),
		cmd.Year(),
		cmd.Color(), cmd.VehicleType(),
		cmd.Status(),
		cmd.Details(),
	); err != nil {
		return err
	}

	if err = vehicleRepo.Update(ctx, aggregate); err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	publishEvent(ctx, h.publisher, h.logger,
		ports.TopicVehicleEvents, aggregate.VIN(), vehicle.EventUpdated, aggregate.Snapshot())

	return nil
}
