package commands

import (
	"context"
	"errors"

	"vehicletrack/internal/core/domain/model/order"
	"vehicletrack/internal/pkg/errs"
)

// CreatePurchaseOrderCommandHandler handles the business logic for placing
// purchase orders. Rejects duplicate order numbers. Purchase order mutations
// publish no events.
type CreatePurchaseOrderCommandHandler struct {
	uowFactory OrderUoWFactory
}

// NewCreatePurchaseOrderCommandHandler creates a handler for purchase order placement.
func NewCreatePurchaseOrderCommandHandler(uowFactory OrderUoWFactory) CreatePurchaseOrderCommandHandler {
	return CreatePurchaseOrderCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the purchase order creation command.
func (h *CreatePurchaseOrderCommandHandler) Handle(ctx context.Context, cmd CreatePurchaseOrderCommand) error {
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

	_, err := orderRepo.GetByOrderNumber(ctx, cmd.OrderNumber())
	if err == nil {
		return errs.NewObjectAlreadyExistsError("orderNumber", cmd.OrderNumber())
	}
	if !errors.Is(err, errs.ErrObjectNotFound) {
		return err
	}

	aggregate, err := order.NewPurchaseOrder(
		cmd.OrderID(),
		cmd.OrderNumber(),
		cmd.Customer(),
		cmd.Vehicle(),
		cmd.Status(),
		cmd.Details(),
	)
	if err != nil {
		return err
	}

	if err = orderRepo.Add(ctx, aggregate); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
