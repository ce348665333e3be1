package commands

import (
	"context"
)

// ChangePurchaseOrderStatusCommandHandler handles purchase order status
// transitions, including the DELIVERED milestone.
type ChangePurchaseOrderStatusCommandHandler struct {
	uowFactory OrderUoWFactory
}

// NewChangePurchaseOrderStatusCommandHandler creates a handler for purchase
// order status transitions.
func NewChangePurchaseOrderStatusCommandHandler(uowFactory OrderUoWFactory) ChangePurchaseOrderStatusCommandHandler {
	return ChangePurchaseOrderStatusCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the status change command.
func (h *ChangePurchaseOrderStatusCommandHandler) Handle(ctx context.Context, cmd ChangePurchaseOrderStatusCommand) error {
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

	if err = aggregate.ChangeStatus(cmd.Status()); err != nil {
		return err
	}

	if err = orderRepo.Update(ctx, aggregate); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
