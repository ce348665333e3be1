package commands

import (
	"errors"

	"vehicletrack/internal/core/domain/model/kernel"
	"vehicletrack/internal/core/domain/model/vehicle"
	"vehicletrack/internal/pkg/errs"
	"vehicletrack/internal/pkg/guard"
)

var ErrCreateVehicleCommandIsNotConstructed = errors.New(
	"CreateVehicleCommand must be created via NewCreateVehicleCommand constructor",
)

// CreateVehicleCommand represents a request to register a new vehicle.
// The VIN is the vehicle's natural key and must be unique across the fleet;
// the status is optional and defaults to the initial lifecycle status.
type CreateVehicleCommand struct { //nolint:recvcheck //using for validation
	vehicleID   kernel.UUID
	vin         string
	model       string
	make        string
	year        int
	color       string
	vehicleType string
	status      vehicle.Status
	details     vehicle.Details

	guard guard.ConstructorGuard
}

// NewCreateVehicleCommand creates a command to register a new vehicle.
// Validates that the ID is valid and the identifying fields are present.
// A StatusUnknown status is accepted and defaults downstream.
func NewCreateVehicleCommand(
	vehicleID kernel.UUID,
	vin, model, mk string,
	year int,
	color, vehicleType string,
	status vehicle.Status,
	details vehicle.Details,
) (CreateVehicleCommand, error) {
	cmd := CreateVehicleCommand{
		status:  status,
		details: details,
		guard:   guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setVehicleID(vehicleID),
		cmd.setVIN(vin),
		cmd.setIdentity(model, mk, year, color, vehicleType),
	); err != nil {
		return CreateVehicleCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c CreateVehicleCommand) Validate() error {
	return c.guard.Validate(ErrCreateVehicleCommandIsNotConstructed)
}

// VehicleID returns the unique identifier for the vehicle.
func (c CreateVehicleCommand) VehicleID() kernel.UUID { return c.vehicleID }

// VIN returns the vehicle identification number.
func (c CreateVehicleCommand) VIN() string { return c.vin }

// Model returns the vehicle model name.
func (c CreateVehicleCommand) Model() string { return c.model }

// Make returns the manufacturer name.
func (c CreateVehicleCommand) Make() string { return c.make }

// Year returns the model year.
func (c CreateVehicleCommand) Year() int { return c.year }

// Color returns the exterior color.
func (c CreateVehicleCommand) Color() string { return c.color }

// VehicleType returns the body type.
func (c CreateVehicleCommand) VehicleType() string { return c.vehicleType }

// Status returns the requested initial status, possibly StatusUnknown.
func (c CreateVehicleCommand) Status() vehicle.Status { return c.status }

// Details returns the optional descriptive attributes.
func (c CreateVehicleCommand) Details() vehicle.Details { return c.details }

func (c *CreateVehicleCommand) setVehicleID(vehicleID kernel.UUID) error {
	if err := vehicleID.Validate(); err != nil {
		return err
	}

	c.vehicleID = vehicleID
	return nil
}

func (c *CreateVehicleCommand) setVIN(vin string) error {
	if vin == "" {
		return errs.NewValueIsRequiredError("vin")
	}

	c.vin = vin
	return nil
}

func (c *CreateVehicleCommand) setIdentity(model, mk string, year int, color, vehicleType string) error {
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
