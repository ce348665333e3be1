package commands

import (
	"context"
)

// UpdateInventoryItemCommandHandler handles full-replace inventory item
// updates. The update runs the status derivation, so this is also the way an
// item created with a low quantity gets its real status.
type UpdateInventoryItemCommandHandler struct {
	uowFactory InventoryUoWFactory
}

// NewUpdateInventoryItemCommandHandler creates a handler for inventory item updates.
func NewUpdateInventoryItemCommandHandler(uowFactory InventoryUoWFactory) UpdateInventoryItemCommandHandler {
	return UpdateInventoryItemCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the inventory item update command.
func (h *UpdateInventoryItemCommandHandler) Handle(ctx context.Context, cmd UpdateInventoryItemCommand) error {
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

	if err = aggregate.UpdateDetails(cmd.Details()); err != nil {
		return err
	}

	if err = itemRepo.Update(ctx, aggregate); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
