package commands

import (
	"errors"

	"vehicletrack/internal/core/domain/model/kernel"
	"vehicletrack/internal/pkg/guard"
)

var ErrAdjustInventoryStockCommandIsNotConstructed = errors.New(
	"AdjustInventoryStockCommand must be created via NewAdjustInventoryStockCommand constructor",
)

// AdjustInventoryStockCommand represents a signed stock movement. The delta
// may be any integer, including one that drives the quantity negative; a
// zero delta still recomputes the status.
type AdjustInventoryStockCommand struct { //nolint:recvcheck //using for validation
	itemID kernel.UUID
	delta  int

	guard guard.ConstructorGuard
}

// NewAdjustInventoryStockCommand creates a command to adjust an item's stock.
func NewAdjustInventoryStockCommand(itemID kernel.UUID, delta int) (AdjustInventoryStockCommand, error) {
	cmd := AdjustInventoryStockCommand{
		delta: delta,
		guard: guard.NewConstructorGuard(),
	}

	if err := cmd.setItemID(itemID); err != nil {
		return AdjustInventoryStockCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c AdjustInventoryStockCommand) Validate() error {
	return c.guard.Validate(ErrAdjustInventoryStockCommandIsNotConstructed)
}

// ItemID returns the unique identifier for the inventory item.
func (c AdjustInventoryStockCommand) ItemID() kernel.UUID { return c.itemID }

// Delta returns the signed quantity movement.
func (c AdjustInventoryStockCommand) Delta() int { return c.delta }

func (c *AdjustInventoryStockCommand) setItemID(itemID kernel.UUID) error {
	if err := itemID.Validate(); err != nil {
		return err
	}

	c.itemID = itemID
	return nil
}
