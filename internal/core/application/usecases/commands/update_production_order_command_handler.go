package commands

import (
	"context"
	"log/slog"

	"vehicletrack/internal/core/domain/model/production"
	"vehicletrack/internal/core/ports"
)

// UpdateProductionOrderCommandHandler handles full-replace production order
// updates and publishes a PRODUCTION_ORDER_UPDATED event after commit.
type UpdateProductionOrderCommandHandler struct {
	uowFactory ProductionOrderUoWFactory
	publisher  ports.EventPublisher
	logger     *slog.Logger
}

// NewUpdateProductionOrderCommandHandler creates a handler for production order updates.
func NewUpdateProductionOrderCommandHandler(
	uowFactory ProductionOrderUoWFactory,
	publisher ports.EventPublisher,
	logger *slog.Logger,
) UpdateProductionOrderCommandHandler {
	return UpdateProductionOrderCommandHandler{
		uowFactory: uowFactory,
		publisher:  publisher,
		logger:     logger,
	}
}

// Handle processes the production order update command.
func (h *UpdateProductionOrderCommandHandler) Handle(ctx context.Context, cmd UpdateProductionOrderCommand) error {
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

	aggregate, err := orderRepo.Get(ctx, cmd.OrderID())
	if err != nil {
		return err
	}

	if err = aggregate.UpdateDetails(
		cmd.Stage(),
		cmd.Status(),
		cmd.CompletionPercentage(),
		cmd.ActualCompletionDate(),
		cmd.Details(),
	); err != nil {
		return err
	}

	if err = orderRepo.Update(ctx, aggregate); err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	publishEvent(ctx, h.publisher, h.logger,
		ports.TopicProductionEvents, aggregate.OrderNumber(), production.EventUpdated, aggregate.Snapshot())

	return nil
}
