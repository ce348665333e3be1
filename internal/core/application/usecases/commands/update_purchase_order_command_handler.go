package commands

import (
	"context"
)

// UpdatePurchaseOrderCommandHandler handles full-replace purchase order
// updates.
type UpdatePurchaseOrderCommandHandler struct {
	uowFactory OrderUoWFactory
}

// NewUpdatePurchaseOrderCommandHandler creates a handler for purchase order updates.
func NewUpdatePurchaseOrderCommandHandler(uowFactory OrderUoWFactory) UpdatePurchaseOrderCommandHandler {
	return UpdatePurchaseOrderCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the purchase order update command.
func (h *UpdatePurchaseOrderCommandHandler) Handle(ctx context.Context, cmd UpdatePurchaseOrderCommand) error {
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

	aggregate, err := orderRepo.Get(ctx, cmd.OrderID())
	if err != nil {
		return err
	}

	if err = aggregate.UpdateDetails(
		cmd.Customer(),
		cmd.Vehicle(),
		cmd.Status(),
		cmd.Details(),
	); err != nil {
		return err
	}

	if err = orderRepo.Update(ctx, aggregate); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
