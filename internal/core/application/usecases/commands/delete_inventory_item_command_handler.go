package commands

import (
	"context"
)

// DeleteInventoryItemCommandHandler handles inventory item removal.
type DeleteInventoryItemCommandHandler struct {
	uowFactory InventoryUoWFactory
}

// NewDeleteInventoryItemCommandHandler creates a handler for inventory item removal.
func NewDeleteInventoryItemCommandHandler(uowFactory InventoryUoWFactory) DeleteInventoryItemCommandHandler {
	return DeleteInventoryItemCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the inventory item deletion command.
// Loads the item first so a missing one surfaces as a not-found error.
func (h *DeleteInventoryItemCommandHandler) Handle(ctx context.Context, cmd DeleteInventoryItemCommand) error {
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

	if _, err := itemRepo.Get(ctx, cmd.ItemID()); err != nil {
		return err
	}

	if err := itemRepo.Delete(ctx, cmd.ItemID()); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
