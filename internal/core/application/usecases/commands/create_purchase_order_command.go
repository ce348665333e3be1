package commands

import (
	"errors"

	"vehicletrack/internal/core/domain/model/kernel"
	"vehicletrack/internal/core/domain/model/order"
	"vehicletrack/internal/pkg/errs"
	"vehicletrack/internal/pkg/guard"
)

var ErrCreatePurchaseOrderCommandIsNotConstructed = errors.New(
	"CreatePurchaseOrderCommand must be created via NewCreatePurchaseOrderCommand constructor",
)

// CreatePurchaseOrderCommand represents a request to place a purchase order.
// The order number must be unique; the status is optional and defaults to
// PENDING.
type CreatePurchaseOrderCommand struct { //nolint:recvcheck //using for validation
	orderID     kernel.UUID
	orderNumber string
	customer    order.Customer
	vehicle     order.VehicleInfo
	status      order.Status
	details     order.Details

	guard guard.ConstructorGuard
}

// NewCreatePurchaseOrderCommand creates a command to place a purchase order.
func NewCreatePurchaseOrderCommand(
	orderID kernel.UUID,
	orderNumber string,
	customer order.Customer,
	vehicle order.VehicleInfo,
	status order.Status,
	details order.Details,
) (CreatePurchaseOrderCommand, error) {
	cmd := CreatePurchaseOrderCommand{
		customer: customer,
		vehicle:  vehicle,
		status:   status,
		details:  details,
		guard:    guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setOrderID(orderID),
		cmd.setOrderNumber(orderNumber),
	); err != nil {
		return CreatePurchaseOrderCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c CreatePurchaseOrderCommand) Validate() error {
	return c.guard.Validate(ErrCreatePurchaseOrderCommandIsNotConstructed)
}

// OrderID returns the unique identifier for the purchase order.
func (c CreatePurchaseOrderCommand) OrderID() kernel.UUID { return c.orderID }

// OrderNumber returns the purchase order number.
func (c CreatePurchaseOrderCommand) OrderNumber() string { return c.orderNumber }

// Customer returns the buyer information.
func (c CreatePurchaseOrderCommand) Customer() order.Customer { return c.customer }

// Vehicle returns the denormalized vehicle description.
func (c CreatePurchaseOrderCommand) Vehicle() order.VehicleInfo { return c.vehicle }

// Status returns the requested initial status, possibly StatusUnknown.
func (c CreatePurchaseOrderCommand) Status() order.Status { return c.status }

// Details returns the remaining descriptive attributes.
func (c CreatePurchaseOrderCommand) Details() order.Details { return c.details }

func (c *CreatePurchaseOrderCommand) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}

	c.orderID = orderID
	return nil
}

func (c *CreatePurchaseOrderCommand) setOrderNumber(orderNumber string) error {
	if orderNumber == "" {
		return errs.NewValueIsRequiredError("orderNumber")
	}

	c.orderNumber = orderNumber
	return nil
}
