package commands

import (
	"errors"

	"vehicletrack/internal/core/domain/model/kernel"
	"vehicletrack/internal/pkg/guard"
)

var ErrDeleteProductionOrderCommandIsNotConstructed = errors.New(
	"DeleteProductionOrderCommand must be created via NewDeleteProductionOrderCommand constructor",
)

// DeleteProductionOrderCommand represents a request to remove a production
// order.
type DeleteProductionOrderCommand struct { //nolint:recvcheck //using for validation
	orderID kernel.UUID

	guard guard.ConstructorGuard
}

// NewDeleteProductionOrderCommand creates a command to delete a production order.
func NewDeleteProductionOrderCommand(orderID kernel.UUID) (DeleteProductionOrderCommand, error) {
	cmd := DeleteProductionOrderCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := cmd.setOrderID(orderID); err != nil {
		return DeleteProductionOrderCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c DeleteProductionOrderCommand) Validate() error {
	return c.guard.Validate(ErrDeleteProductionOrderCommandIsNotConstructed)
}

// OrderID returns the unique identifier for the production order.
func (c DeleteProductionOrderCommand) OrderID() kernel.UUID { return c.orderID }

func (c *DeleteProductionOrderCommand) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}

	c.orderID = orderID
	return nil
}
