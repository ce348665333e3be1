package commands

import (
	"errors"

	"vehicletrack/internal/core/domain/model/kernel"
	"vehicletrack/internal/core/domain/model/order"
	"vehicletrack/internal/pkg/guard"
)

var ErrChangePurchaseOrderStatusCommandIsNotConstructed = errors.New(
	"ChangePurchaseOrderStatusCommand must be created via NewChangePurchaseOrderStatusCommand constructor",
)

// ChangePurchaseOrderStatusCommand represents a request to move a purchase
// order to a new fulfillment status. Setting DELIVERED stamps the actual
// delivery date.
type ChangePurchaseOrderStatusCommand struct { //nolint:recvcheck //using for validation
	orderID kernel.UUID
	status  order.Status

	guard guard.ConstructorGuard
}

// NewChangePurchaseOrderStatusCommand creates a command to change a purchase
// order's status.
func NewChangePurchaseOrderStatusCommand(orderID kernel.UUID, status order.Status) (ChangePurchaseOrderStatusCommand, error) {
	cmd := ChangePurchaseOrderStatusCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setOrderID(orderID),
		cmd.setStatus(status),
	); err != nil {
		return ChangePurchaseOrderStatusCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c ChangePurchaseOrderStatusCommand) Validate() error {
	return c.guard.Validate(ErrChangePurchaseOrderStatusCommandIsNotConstructed)
}

// OrderID returns the unique identifier for the purchase order.
func (c ChangePurchaseOrderStatusCommand) OrderID() kernel.UUID { return c.orderID }

// Status returns the target status.
func (c ChangePurchaseOrderStatusCommand) Status() order.Status { return c.status }

func (c *ChangePurchaseOrderStatusCommand) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}

	c.orderID = orderID
	return nil
}

func (c *ChangePurchaseOrderStatusCommand) setStatus(status order.Status) error {
	if err := status.Validate(); err != nil {
		return err
	}

	c.status = status
	return nil
}
