package commands

import (
	"errors"

	"vehicletrack/internal/core/domain/model/kernel"
	"vehicletrack/internal/core/domain/model/order"
	"vehicletrack/internal/pkg/guard"
)

var ErrUpdatePurchaseOrderCommandIsNotConstructed = errors.New(
	"UpdatePurchaseOrderCommand must be created via NewUpdatePurchaseOrderCommand constructor",
)

// UpdatePurchaseOrderCommand represents a full-replace update of a purchase
// order. Updating the status here does not stamp the delivery date; only the
// dedicated status transition does.
type UpdatePurchaseOrderCommand struct { //nolint:recvcheck //using for validation
	orderID  kernel.UUID
	customer order.Customer
	vehicle  order.VehicleInfo
	status   order.Status
	details  order.Details

	guard guard.ConstructorGuard
}

// NewUpdatePurchaseOrderCommand creates a command to replace a purchase
// order's fields.
func NewUpdatePurchaseOrderCommand(
	orderID kernel.UUID,
	customer order.Customer,
	vehicle order.VehicleInfo,
	status order.Status,
	details order.Details,
) (UpdatePurchaseOrderCommand, error) {
	cmd := UpdatePurchaseOrderCommand{
		customer: customer,
		vehicle:  vehicle,
		details:  details,
		guard:    guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setOrderID(orderID),
		cmd.setStatus(status),
	); err != nil {
		return UpdatePurchaseOrderCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c UpdatePurchaseOrderCommand) Validate() error {
	return c.guard.Validate(ErrUpdatePurchaseOrderCommandIsNotConstructed)
}

// OrderID returns the unique identifier for the purchase order.
func (c UpdatePurchaseOrderCommand) OrderID() kernel.UUID { return c.orderID }

// Customer returns the replacement buyer information.
func (c UpdatePurchaseOrderCommand) Customer() order.Customer { return c.customer }

// Vehicle returns the replacement vehicle description.
func (c UpdatePurchaseOrderCommand) Vehicle() order.VehicleInfo { return c.vehicle }

// Status returns the replacement status.
func (c UpdatePurchaseOrderCommand) Status() order.Status { return c.status }

// Details returns the replacement descriptive attributes.
func (c UpdatePurchaseOrderCommand) Details() order.Details { return c.details }

func (c *UpdatePurchaseOrderCommand) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}

	c.orderID = orderID
	return nil
}

func (c *UpdatePurchaseOrderCommand) setStatus(status order.Status) error {
	if err := status.Validate(); err != nil {
		return err
	}

	c.status = status
	return nil
}
