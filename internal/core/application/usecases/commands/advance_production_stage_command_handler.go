package commands

import (
	"context"
	"log/slog"

	"vehicletrack/internal/core/domain/model/production"
	"vehicletrack/internal/core/ports"
)

// AdvanceProductionStageCommandHandler handles stage transitions.
// The stage move derives the completion percentage and forces the order
// status; a PRODUCTION_STAGE_CHANGED event goes out after commit.
type AdvanceProductionStageCommandHandler struct {
	uowFactory ProductionOrderUoWFactory
	publisher  ports.EventPublisher
	logger     *slog.Logger
}

// NewAdvanceProductionStageCommandHandler creates a handler for stage transitions.
func NewAdvanceProductionStageCommandHandler(
	uowFactory ProductionOrderUoWFactory,
	publisher ports.EventPublisher,
	logger *slog.Logger,
) AdvanceProductionStageCommandHandler {
	return AdvanceProductionStageCommandHandler{
		uowFactory: uowFactory,
		publisher:  publisher,
		logger:     logger,
	}
}

// Handle processes the stage advancement command.
func (h *AdvanceProductionStageCommandHandler) Handle(ctx context.Context, cmd AdvanceProductionStageCommand) error {
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

	if err = aggregate.AdvanceStage(cmd.Stage()); err != nil {
		return err
	}

	if err = orderRepo.Update(ctx, aggregate); err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	publishEvent(ctx, h.publisher, h.logger,
		ports.TopicProductionEvents, aggregate.OrderNumber(), production.EventStageChanged, aggregate.Snapshot())

	return nil
}
