package commands

import (
	"context"
	"log/slog"

	"vehicletrack/internal/core/domain/model/vehicle"
	"vehicletrack/internal/core/ports"
)

// ChangeVehicleStatusCommandHandler handles vehicle status transitions and
// publishes a VEHICLE_STATUS_CHANGED event after commit.
type ChangeVehicleStatusCommandHandler struct {
	uowFactory VehicleUoWFactory
	publisher  ports.EventPublisher
	logger     *slog.Logger
}

// NewChangeVehicleStatusCommandHandler creates a handler for vehicle status transitions.
func NewChangeVehicleStatusCommandHandler(
	uowFactory VehicleUoWFactory,
	publisher ports.EventPublisher,
	logger *slog.Logger,
) ChangeVehicleStatusCommandHandler {
	return ChangeVehicleStatusCommandHandler{
		uowFactory: uowFactory,
		publisher:  publisher,
		logger:     logger,
	}
}

// Handle processes the status change command.
func (h *ChangeVehicleStatusCommandHandler) Handle(ctx context.Context, cmd ChangeVehicleStatusCommand) error {
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

	if err = aggregate.ChangeStatus(cmd.Status()); err != nil {
		return err
	}

	if err = vehicleRepo.Update(ctx, aggregate); err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	publishEvent(ctx, h.publisher, h.logger,
		ports.TopicVehicleEvents, aggregate.VIN(), vehicle.EventStatusChanged, aggregate.Snapshot())

	return nil
}
