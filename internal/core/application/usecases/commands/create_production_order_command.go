package commands

import (
	"errors"

	"vehicletrack/internal/core/domain/model/kernel"
	"vehicletrack/internal/core/domain/model/production"
	"vehicletrack/internal/pkg/errs"
	"vehicletrack/internal/pkg/guard"
)

var ErrCreateProductionOrderCommandIsNotConstructed = errors.New(
	"CreateProductionOrderCommand must be created via NewCreateProductionOrderCommand constructor",
)

// CreateProductionOrderCommand represents a request to open a production
// order. Stage, status and completion percentage are optional; zero values
// default to the initial stage machine state.
type CreateProductionOrderCommand struct { //nolint:recvcheck //using for validation
	orderID              kernel.UUID
	orderNumber          string
	stage                production.Stage
	status               production.Status
	completionPercentage float64
	details              production.Details

	guard guard.ConstructorGuard
}

// NewCreateProductionOrderCommand creates a command to open a production order.
func NewCreateProductionOrderCommand(
	orderID kernel.UUID,
	orderNumber string,
	stage production.Stage,
	status production.Status,
	completionPercentage float64,
	details production.Details,
) (CreateProductionOrderCommand, error) {
	cmd := CreateProductionOrderCommand{
		stage:                stage,
		status:               status,
		completionPercentage: completionPercentage,
		details:              details,
		guard:                guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setOrderID(orderID),
		cmd.setOrderNumber(orderNumber),
	); err != nil {
		return CreateProductionOrderCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c CreateProductionOrderCommand) Validate() error {
	return c.guard.Validate(ErrCreateProductionOrderCommandIsNotConstructed)
}

// OrderID returns the unique identifier for the production order.
func (c CreateProductionOrderCommand) OrderID() kernel.UUID { return c.orderID }

// OrderNumber returns the production order number.
func (c CreateProductionOrderCommand) OrderNumber() string { return c.orderNumber }

// Stage returns the requested initial stage, possibly StageUnknown.
func (c CreateProductionOrderCommand) Stage() production.Stage { return c.stage }

// Status returns the requested initial status, possibly StatusUnknown.
func (c CreateProductionOrderCommand) Status() production.Status { return c.status }

// CompletionPercentage returns the requested initial completion figure.
func (c CreateProductionOrderCommand) CompletionPercentage() float64 { return c.completionPercentage }

// Details returns the descriptive attributes.
func (c CreateProductionOrderCommand) Details() production.Details { return c.details }

func (c *CreateProductionOrderCommand) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}

	c.orderID = orderID
	return nil
}

func (c *CreateProductionOrderCommand) setOrderNumber(orderNumber string) error {
	if orderNumber == "" {
		return errs.NewValueIsRequiredError("orderNumber")
	}

	c.orderNumber = orderNumber
	return nil
}
