package commands

import (
	"context"
)

// DeleteProductionOrderCommandHandler handles production order removal.
// Deletion is the one production mutation that publishes no event.
type DeleteProductionOrderCommandHandler struct {
	uowFactory ProductionOrderUoWFactory
}

// NewDeleteProductionOrderCommandHandler creates a handler for production order removal.
func NewDeleteProductionOrderCommandHandler(uowFactory ProductionOrderUoWFactory) DeleteProductionOrderCommandHandler {
	return DeleteProductionOrderCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the production order deletion command.
// Loads the order first so a missing one surfaces as a not-found error.
func (h *DeleteProductionOrderCommandHandler) Handle(ctx context.Context, cmd DeleteProductionOrderCommand) error {
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

	orderRepo := uow.ProductionOrderRepository()

	if _, err := orderRepo.Get(ctx, cmd.OrderID()); err != nil {
		return err
	}

	if err := orderRepo.Delete(ctx, cmd.OrderID()); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
