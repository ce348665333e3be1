package commands

import (
	"errors"

	"vehicletrack/internal/core/domain/model/kernel"
	"vehicletrack/internal/pkg/guard"
)

var ErrDeletePurchaseOrderCommandIsNotConstructed = errors.New(
	"DeletePurchaseOrderCommand must be created via NewDeletePurchaseOrderCommand constructor",
)

// DeletePurchaseOrderCommand represents a request to remove a purchase order.
type DeletePurchaseOrderCommand struct { //nolint:recvcheck //using for validation
	orderID kernel.UUID

	guard guard.ConstructorGuard
}

// NewDeletePurchaseOrderCommand creates a command to delete a purchase order.
func NewDeletePurchaseOrderCommand(orderID kernel.UUID) (DeletePurchaseOrderCommand, error) {
	cmd := DeletePurchaseOrderCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := cmd.setOrderID(orderID); err != nil {
		return DeletePurchaseOrderCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c DeletePurchaseOrderCommand) Validate() error {
	return c.guard.Validate(ErrDeletePurchaseOrderCommandIsNotConstructed)
}

// OrderID returns the unique identifier for the purchase order.
func (c DeletePurchaseOrderCommand) OrderID() kernel.UUID { return c.orderID }

func (c *DeletePurchaseOrderCommand) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}

	c.orderID = orderID
	return nil
}
