package commands

import (
	"errors"

	"vehicletrack/internal/core/domain/model/kernel"
	"vehicletrack/internal/pkg/guard"
)

var ErrDeleteVehicleCommandIsNotConstructed = errors.New(
	"DeleteVehicleCommand must be created via NewDeleteVehicleCommand constructor",
)

// DeleteVehicleCommand represents a request to remove a vehicle.
type DeleteVehicleCommand struct { //nolint:recvcheck //using for validation
	vehicleID kernel.UUID

	guard guard.ConstructorGuard
}

// NewDeleteVehicleCommand creates a command to delete a vehicle.
func NewDeleteVehicleCommand(vehicleID kernel.UUID) (DeleteVehicleCommand, error) {
	cmd := DeleteVehicleCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := cmd.setVehicleID(vehicleID); err != nil {
		return DeleteVehicleCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c DeleteVehicleCommand) Validate() error {
	return c.guard.Validate(ErrDeleteVehicleCommandIsNotConstructed)
}

// VehicleID returns the unique identifier for the vehicle.
func (c DeleteVehicleCommand) VehicleID() kernel.UUID { return c.vehicleID }

func (c *DeleteVehicleCommand) setVehicleID(vehicleID kernel.UUID) error {
	if err := vehicleID.Validate(); err != nil {
		return err
	}

	c.vehicleID = vehicleID
	return nil
}
