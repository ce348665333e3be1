package commands

import (
	"context"
	"errors"

	"vehicletrack/internal/core/domain/model/inventory"
	"vehicletrack/internal/pkg/errs"
)

// CreateInventoryItemCommandHandler handles the business logic for
// registering inventory items. Rejects duplicate part numbers.
type CreateInventoryItemCommandHandler struct {
	uowFactory InventoryUoWFactory
}

// NewCreateInventoryItemCommandHandler creates a handler for inventory item registration.
func NewCreateInventoryItemCommandHandler(uowFactory InventoryUoWFactory) CreateInventoryItemCommandHandler {
	return CreateInventoryItemCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the inventory item creation command.
func (h *CreateInventoryItemCommandHandler) Handle(ctx context.Context, cmd CreateInventoryItemCommand) error {
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

	_, err := itemRepo.GetByPartNumber(ctx, cmd.PartNumber())
	if err == nil {
		return errs.NewObjectAlreadyExistsError("partNumber", cmd.PartNumber())
	}
	if !errors.Is(err, errs.ErrObjectNotFound) {
		return err
	}

	aggregate, err := inventory.NewItem(cmd.ItemID(), cmd.PartNumber(), cmd.Details())
	if err != nil {
		return err
	}

	if err = itemRepo.Add(ctx, aggregate); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
