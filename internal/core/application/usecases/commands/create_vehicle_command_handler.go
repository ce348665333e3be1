package commands

import (
	"context"
	"errors"
	"log/slog"

	"vehicletrack/internal/core/domain/model/vehicle"
	"vehicletrack/internal/core/ports"
	"vehicletrack/internal/pkg/errs"
)

// CreateVehicleCommandHandler handles the business logic for vehicle
// registration. Rejects duplicate VINs and publishes a VEHICLE_CREATED event
// after the vehicle is committed.
type CreateVehicleCommandHandler struct {
	uowFactory VehicleUoWFactory
	publisher  ports.EventPublisher
	logger     *slog.Logger
}

// NewCreateVehicleCommandHandler creates a handler for vehicle registration.
func NewCreateVehicleCommandHandler(
	uowFactory VehicleUoWFactory,
	publisher ports.EventPublisher,
	logger *slog.Logger,
) CreateVehicleCommandHandler {
	return CreateVehicleCommandHandler{
		uowFactory: uowFactory,
		publisher:  publisher,
		logger:     logger,
	}
}

// Handle processes the vehicle registration command.
// Fails with an already-exists error when a vehicle with the same VIN is
// present. The event goes out only after a successful commit; publish
// failures are logged, not returned.
func (h *CreateVehicleCommandHandler) Handle(ctx context.Context, cmd CreateVehicleCommand) error {
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

	_, err := vehicleRepo.GetByVIN(ctx, cmd.VIN())
	if err == nil {
		return errs.NewObjectAlreadyExistsError("vin", cmd.VIN())
	}
	if !errors.Is(err, errs.ErrObjectNotFound) {
		return err
	}

	aggregate, err := vehicle.NewVehicle(
		cmd.VehicleID(),
		cmd.VIN(), cmd.Model(), cmd.Make(),
		cmd.Year(),
		cmd.Color(), cmd.VehicleType(),
		cmd.Status(),
		cmd.Details(),
	)
	if err != nil {
		return err
	}

	if err = vehicleRepo.Add(ctx, aggregate); err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	publishEvent(ctx, h.publisher, h.logger,
		ports.TopicVehicleEvents, aggregate.VIN(), vehicle.EventCreated, aggregate.Snapshot())

	return nil
}
