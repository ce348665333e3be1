package commands

import (
	"context"
	"errors"
	"log/slog"

	"vehicletrack/internal/core/domain/model/production"
	"vehicletrack/internal/core/ports"
	"vehicletrack/internal/pkg/errs"
)

// CreateProductionOrderCommandHandler handles the business logic for opening
// production orders. Rejects duplicate order numbers and publishes a
// PRODUCTION_ORDER_CREATED event after commit.
type CreateProductionOrderCommandHandler struct {
	uowFactory ProductionOrderUoWFactory
	publisher  ports.EventPublisher
	logger     *slog.Logger
}

// NewCreateProductionOrderCommandHandler creates a handler for production order creation.
func NewCreateProductionOrderCommandHandler(
	uowFactory ProductionOrderUoWFactory,
	publisher ports.EventPublisher,
	logger *slog.Logger,
) CreateProductionOrderCommandHandler {
	return CreateProductionOrderCommandHandler{
		uowFactory: uowFactory,
		publisher:  publisher,
		logger:     logger,
	}
}

// Handle processes the production order creation command.
func (h *CreateProductionOrderCommandHandler) Handle(ctx context.Context, cmd CreateProductionOrderCommand) error {
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

	_, err := orderRepo.GetByOrderNumber(ctx, cmd.OrderNumber())
	if err == nil {
		return errs.NewObjectAlreadyExistsError("orderNumber", cmd.OrderNumber())
	}
	if !errors.Is(err, errs.ErrObjectNotFound) {
		return err
	}

	aggregate, err := production.NewProductionOrder(
		cmd.OrderID(),
		cmd.OrderNumber(),
		cmd.Stage(),
		cmd.Status(),
		cmd.CompletionPercentage(),
		cmd.Details(),
	)
	if err != nil {
		return err
	}

	if err = orderRepo.Add(ctx, aggregate); err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	publishEvent(ctx, h.publisher, h.logger,
		ports.TopicProductionEvents, aggregate.OrderNumber(), production.EventCreated, aggregate.Snapshot())

	return nil
}
