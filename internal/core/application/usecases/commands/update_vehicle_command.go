package commands

import (
	"errors"

	"vehicletrack/internal/core/domain/model/kernel"
	"vehicletrack/internal/core/domain/model/vehicle"
	"vehicletrack/internal/pkg/errs"
	"vehicletrack/internal/pkg/guard"
)

var ErrUpdateVehicleCommandIsNotConstructed = errors.New(
	"UpdateVehicleCommand must be created via NewUpdateVehicleCommand constructor",
)

// UpdateVehicleCommand represents a full-replace update of a vehicle's
// descriptive fields and status. The VIN is not part of the command; it is
// immutable.
type UpdateVehicleCommand struct { //nolint:recvcheck //using for validation
	vehicleID   kernel.UUID
	model       string
	make        string
	year        int
	color       string
	vehicleType string
	status      vehicle.Status
	details     vehicle.Details

	guard guard.ConstructorGuard
}

// NewUpdateVehicleCommand creates a command to replace a vehicle's details.
func NewUpdateVehicleCommand(
	vehicleID kernel.UUID,
	model, mk string,
	year int,
	color, vehicleType string,
	status vehicle.Status,
	details vehicle.Details,
) (UpdateVehicleCommand, error) {
	cmd := UpdateVehicleCommand{
		details: details,
		guard:   guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setVehicleID(vehicleID),
		cmd.setIdentity(model, mk, year, color, vehicleType),
		cmd.setStatus(status),
	); err != nil {
		return UpdateVehicleCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c UpdateVehicleCommand) Validate() error {
	return c.guard.Validate(ErrUpdateVehicleCommandIsNotConstructed)
}

// VehicleID returns the unique identifier for the vehicle.
func (c UpdateVehicleCommand) VehicleID() kernel.UUID { return c.vehicleID }

// Model returns the replacement model name.
func (c UpdateVehicleCommand) Model() string { return c.model }

// Make returns the replacement manufacturer name.
func (c UpdateVehicleCommand) Make() string { return c.make }

// Year returns the replacement model year.
func (c UpdateVehicleCommand) Year() int { return c.year }

// Color returns the replacement exterior color.
func (c UpdateVehicleCommand) Color() string { return c.color }

// VehicleType returns the replacement body type.
func (c UpdateVehicleCommand) VehicleType() string { return c.vehicleType }

// Status returns the replacement status.
func (c UpdateVehicleCommand) Status() vehicle.Status { return c.status }

// Details returns the replacement descriptive attributes.
func (c UpdateVehicleCommand) Details() vehicle.Details { return c.details }

func (c *UpdateVehicleCommand) setVehicleID(vehicleID kernel.UUID) error {
	if err := vehicleID.Validate(); err != nil {
		return err
	}

	c.vehicleID = vehicleID
	return nil
}

func (c *UpdateVehicleCommand) setIdentity(model, mk string, year int, color, vehicleType string) error {
	if model == "" {
		return errs.NewValueIsRequiredError("model")
	}
	if mk == "" {
		return errs.NewValueIsRequiredError("make")
	}
	if year == 0 {
		return errs.NewValueIsRequiredError("year")
	}
	if color == "" {
		return errs.NewValueIsRequiredError("color")
	}
	if vehicleType == "" {
		return errs.NewValueIsRequiredError("type")
	}

	c.model = model
	c.make = mk
	c.year = year
	c.color = color
	c.vehicleType = vehicleType
	return nil
}

func (c *UpdateVehicleCommand) setStatus(status vehicle.Status) error {
	if err := status.Validate(); err != nil {
		return err
	}

	c.status = status
	return nil
}
