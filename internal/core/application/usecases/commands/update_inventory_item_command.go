package commands

import (
	"errors"

	"vehicletrack/internal/core/domain/model/inventory"
	"vehicletrack/internal/core/domain/model/kernel"
	"vehicletrack/internal/pkg/guard"
)

var ErrUpdateInventoryItemCommandIsNotConstructed = errors.New(
	"UpdateInventoryItemCommand must be created via NewUpdateInventoryItemCommand constructor",
)

// UpdateInventoryItemCommand represents a full-replace update of an
// inventory item's attributes. The status is recomputed downstream from the
// new quantity and reorder level.
type UpdateInventoryItemCommand struct { //nolint:recvcheck //using for validation
	itemID  kernel.UUID
	details inventory.Details

	guard guard.ConstructorGuard
}

// NewUpdateInventoryItemCommand creates a command to replace an inventory
// item's attributes.
func NewUpdateInventoryItemCommand(itemID kernel.UUID, details inventory.Details) (UpdateInventoryItemCommand, error) {
	cmd := UpdateInventoryItemCommand{
		details: details,
		guard:   guard.NewConstructorGuard(),
	}

	if err := cmd.setItemID(itemID); err != nil {
		return UpdateInventoryItemCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c UpdateInventoryItemCommand) Validate() error {
	return c.guard.Validate(ErrUpdateInventoryItemCommandIsNotConstructed)
}

// ItemID returns the unique identifier for the inventory item.
func (c UpdateInventoryItemCommand) ItemID() kernel.UUID { return c.itemID }

// Details returns the replacement attributes.
func (c UpdateInventoryItemCommand) Details() inventory.Details { return c.details }

func (c *UpdateInventoryItemCommand) setItemID(itemID kernel.UUID) error {
	if err := itemID.Validate(); err != nil {
		return err
	}

	c.itemID = itemID
	return nil
}
