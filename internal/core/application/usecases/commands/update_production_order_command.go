package commands

import (
	"errors"
	"time"

	"vehicletrack/internal/core/domain/model/kernel"
	"vehicletrack/internal/core/domain/model/production"
	"vehicletrack/internal/pkg/errs"
	"vehicletrack/internal/pkg/guard"
)

var ErrUpdateProductionOrderCommandIsNotConstructed = errors.New(
	"UpdateProductionOrderCommand must be created via NewUpdateProductionOrderCommand constructor",
)

// UpdateProductionOrderCommand represents a full-replace update of a
// production order. Stage and completion percentage are written exactly as
// given, so this path can record pairs the stage table would never produce.
type UpdateProductionOrderCommand struct { //nolint:recvcheck //using for validation
	orderID              kernel.UUID
	stage                production.Stage
	status               production.Status
	completionPercentage float64
	actualCompletionDate *time.Time
	details              production.Details

	guard guard.ConstructorGuard
}

// NewUpdateProductionOrderCommand creates a command to replace a production
// order's fields.
func NewUpdateProductionOrderCommand(
	orderID kernel.UUID,
	stage production.Stage,
	status production.Status,
	completionPercentage float64,
	actualCompletionDate *time.Time,
	details production.Details,
) (UpdateProductionOrderCommand, error) {
	cmd := UpdateProductionOrderCommand{
		actualCompletionDate: actualCompletionDate,
		details:              details,
		guard:                guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setOrderID(orderID),
		cmd.setStage(stage),
		cmd.setStatus(status),
		cmd.setCompletionPercentage(completionPercentage),
	); err != nil {
		return UpdateProductionOrderCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c UpdateProductionOrderCommand) Validate() error {
	return c.guard.Validate(ErrUpdateProductionOrderCommandIsNotConstructed)
}

// OrderID returns the unique identifier for the production order.
func (c UpdateProductionOrderCommand) OrderID() kernel.UUID { return c.orderID }

// Stage returns the replacement stage.
func (c UpdateProductionOrderCommand) Stage() production.Stage { return c.stage }

// Status returns the replacement status.
func (c UpdateProductionOrderCommand) Status() production.Status { return c.status }

// CompletionPercentage returns the replacement completion figure.
func (c UpdateProductionOrderCommand) CompletionPercentage() float64 { return c.completionPercentage }

// ActualCompletionDate returns the replacement completion timestamp, possibly nil.
func (c UpdateProductionOrderCommand) ActualCompletionDate() *time.Time {
	return c.actualCompletionDate
}

// Details returns the replacement descriptive attributes.
func (c UpdateProductionOrderCommand) Details() production.Details { return c.details }

func (c *UpdateProductionOrderCommand) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}

	c.orderID = orderID
	return nil
}

func (c *UpdateProductionOrderCommand) setStage(stage production.Stage) error {
	if err := stage.Validate(); err != nil {
		return err
	}

	c.stage = stage
	return nil
}

func (c *UpdateProductionOrderCommand) setStatus(status production.Status) error {
	if err := status.Validate(); err != nil {
		return err
	}

	c.status = status
	return nil
}

func (c *UpdateProductionOrderCommand) setCompletionPercentage(completionPercentage float64) error {
	if completionPercentage < 0 || completionPercentage > 100 {
		return errs.NewValueIsOutOfRangeError("completionPercentage", completionPercentage, 0, 100)
	}

	c.completionPercentage = completionPercentage
	return nil
}
