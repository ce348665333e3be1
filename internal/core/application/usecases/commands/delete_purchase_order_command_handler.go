package commands

import (
	"context"
)

// DeletePurchaseOrderCommandHandler handles purchase order removal.
type DeletePurchaseOrderCommandHandler struct {
	uowFactory OrderUoWFactory
}

// NewDeletePurchaseOrderCommandHandler creates a handler for purchase order removal.
func NewDeletePurchaseOrderCommandHandler(uowFactory OrderUoWFactory) DeletePurchaseOrderCommandHandler {
	return DeletePurchaseOrderCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the purchase order deletion command.
// Loads the order first so a missing one surfaces as a not-found error.
func (h *DeletePurchaseOrderCommandHandler) Handle(ctx context.Context, cmd DeletePurchaseOrderCommand) error {
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

	orderRepo := uow.OrderRepository()

	if _, err := orderRepo.Get(ctx, cmd.OrderID()); err != nil {
		return err
	}

	if err := orderRepo.Delete(ctx, cmd.OrderID()); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
