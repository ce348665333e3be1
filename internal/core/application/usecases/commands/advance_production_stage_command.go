package commands

import (
	"errors"

	"vehicletrack/internal/core/domain/model/kernel"
	"vehicletrack/internal/core/domain/model/production"
	"vehicletrack/internal/pkg/guard"
)

var ErrAdvanceProductionStageCommandIsNotConstructed = errors.New(
	"AdvanceProductionStageCommand must be created via NewAdvanceProductionStageCommand constructor",
)

// AdvanceProductionStageCommand represents a request to move a production
// order to a new manufacturing stage. Any valid stage is accepted, including
// regressions; the completion percentage and status are derived downstream.
type AdvanceProductionStageCommand struct { //nolint:recvcheck //using for validation
	orderID kernel.UUID
	stage   production.Stage

	guard guard.ConstructorGuard
}

// NewAdvanceProductionStageCommand creates a command to advance a production
// order's stage.
func NewAdvanceProductionStageCommand(orderID kernel.UUID, stage production.Stage) (AdvanceProductionStageCommand, error) {
	cmd := AdvanceProductionStageCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setOrderID(orderID),
		cmd.setStage(stage),
	); err != nil {
		return AdvanceProductionStageCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c AdvanceProductionStageCommand) Validate() error {
	return c.guard.Validate(ErrAdvanceProductionStageCommandIsNotConstructed)
}

// OrderID returns the unique identifier for the production order.
func (c AdvanceProductionStageCommand) OrderID() kernel.UUID { return c.orderID }

// Stage returns the target stage.
func (c AdvanceProductionStageCommand) Stage() production.Stage { return c.stage }

func (c *AdvanceProductionStageCommand) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}

	c.orderID = orderID
	return nil
}

func (c *AdvanceProductionStageCommand) setStage(stage production.Stage) error {
	if err := stage.Validate(); err != nil {
		return err
	}

	c.stage = stage
	return nil
}
