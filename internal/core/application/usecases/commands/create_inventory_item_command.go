package commands

import (
	"errors"

	"vehicletrack/internal/core/domain/model/inventory"
	"vehicletrack/internal/core/domain/model/kernel"
	"vehicletrack/internal/pkg/errs"
	"vehicletrack/internal/pkg/guard"
)

var ErrCreateInventoryItemCommandIsNotConstructed = errors.New(
	"CreateInventoryItemCommand must be created via NewCreateInventoryItemCommand constructor",
)

// CreateInventoryItemCommand represents a request to register a stocked
// part. The part number must be unique. No status is carried: it is a
// derived field.
type CreateInventoryItemCommand struct { //nolint:recvcheck //using for validation
	itemID     kernel.UUID
	partNumber string
	details    inventory.Details

	guard guard.ConstructorGuard
}

// NewCreateInventoryItemCommand creates a command to register an inventory item.
func NewCreateInventoryItemCommand(
	itemID kernel.UUID,
	partNumber string,
	details inventory.Details,
) (CreateInventoryItemCommand, error) {
	cmd := CreateInventoryItemCommand{
		details: details,
		guard:   guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setItemID(itemID),
		cmd.setPartNumber(partNumber),
	); err != nil {
		return CreateInventoryItemCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c CreateInventoryItemCommand) Validate() error {
	return c.guard.Validate(ErrCreateInventoryItemCommandIsNotConstructed)
}

// ItemID returns the unique identifier for the inventory item.
func (c CreateInventoryItemCommand) ItemID() kernel.UUID { return c.itemID }

// PartNumber returns the part number.
func (c CreateInventoryItemCommand) PartNumber() string { return c.partNumber }

// Details returns the item attributes.
func (c CreateInventoryItemCommand) Details() inventory.Details { return c.details }

func (c *CreateInventoryItemCommand) setItemID(itemID kernel.UUID) error {
	if err := itemID.Validate(); err != nil {
		return err
	}

	c.itemID = itemID
	return nil
}

func (c *CreateInventoryItemCommand) setPartNumber(partNumber string) error {
	if partNumber == "" {
		return errs.NewValueIsRequiredError("partNumber")
	}

	c.partNumber = partNumber
	return nil
}
