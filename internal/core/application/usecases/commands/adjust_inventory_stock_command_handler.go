package commands

import (
	"context"
)

// AdjustInventoryStockCommandHandler handles signed stock movements.
// A positive delta stamps the item's lastRestocked timestamp.
type AdjustInventoryStockCommandHandler struct {
	uowFactory InventoryUoWFactory
}

// NewAdjustInventoryStockCommandHandler creates a handler for stock adjustments.
func NewAdjustInventoryStockCommandHandler(uowFactory InventoryUoWFactory) AdjustInventoryStockCommandHandler {
	return AdjustInventoryStockCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the stock adjustment command.
func (h *AdjustInventoryStockCommandHandler) Handle(ctx context.Context, cmd AdjustInventoryStockCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	itemRepo := uow.InventoryRepository()

	aggregate, err := itemRepo.Get(ctx, cmd.ItemID())
	if err != nil {
		return err
	}

	if err = aggregate.AdjustStock(cmd.Delta()); err != nil {
		return err
	}

	if err = itemRepo.Update(ctx, aggregate); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
