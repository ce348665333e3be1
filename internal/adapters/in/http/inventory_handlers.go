package http

import (
	"net/http"

	"vehicletrack/internal/core/application/usecases/commands"
	"vehicletrack/internal/core/application/usecases/queries"
	"vehicletrack/internal/core/domain/model/inventory"
	"vehicletrack/internal/core/domain/model/kernel"

	"github.com/labstack/echo/v4"
)

// CreateInventoryItem handles POST /api/v1/inventory.
func (s *Server) CreateInventoryItem(ctx echo.Context) error {
	var req NewInventoryItemRequest
	if err := ctx.Bind(&req); err != nil {
		return respondBadRequest(ctx, "Invalid request body")
	}

	itemID := kernel.NewUUID()
	cmd, err := commands.NewCreateInventoryItemCommand(
		itemID,
		req.PartNumber,
		inventory.Details{
			PartName:        req.PartName,
			Category:        req.Category,
			Description:     req.Description,
			QuantityInStock: req.QuantityInStock,
			ReorderLevel:    req.ReorderLevel,
			MaxStockLevel:   req.MaxStockLevel,
			Supplier:        req.Supplier,
			UnitPrice:       req.UnitPrice,
			Location:        req.Location,
		},
	)
	if err != nil {
		return respondError(ctx, err)
	}

	if err := s.createInventoryItemHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return respondError(ctx, err)
	}

	return ctx.JSON(http.StatusCreated, map[string]string{"id": itemID.String()})
}

// GetInventoryItems handles GET /api/v1/inventory.
func (s *Server) GetInventoryItems(ctx echo.Context) error {
	query := queries.NewGetInventoryItemsQuery(queries.InventoryItemsFilter{
		Category:   ctx.QueryParam("category"),
		PartNumber: ctx.QueryParam("partNumber"),
		LowStock:   ctx.QueryParam("lowStock") == "true",
	})

	items, err := s.getInventoryItemsHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return respondError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, items)
}

// GetInventoryItem handles GET /api/v1/inventory/:id.
func (s *Server) GetInventoryItem(ctx echo.Context) error {
	id, err := kernel.UUIDFromString(ctx.Param("id"))
	if err != nil {
		return respondError(ctx, err)
	}

	item, err := s.uowFactory.Create().InventoryRepository().Get(ctx.Request().Context(), id)
	if err != nil {
		return respondError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, inventoryItemResponse(item))
}

// GetInventoryItemByPartNumber handles GET /api/v1/inventory/part/:partNumber.
func (s *Server) GetInventoryItemByPartNumber(ctx echo.Context) error {
	item, err := s.uowFactory.Create().InventoryRepository().GetByPartNumber(
		ctx.Request().Context(), ctx.Param("partNumber"))
	if err != nil {
		return respondError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, inventoryItemResponse(item))
}

// UpdateInventoryItem handles PUT /api/v1/inventory/:id.
func (s *Server) UpdateInventoryItem(ctx echo.Context) error {
	id, err := kernel.UUIDFromString(ctx.Param("id"))
	if err != nil {
		return respondError(ctx, err)
	}

	var req UpdateInventoryItemRequest
	if err := ctx.Bind(&req); err != nil {
		return respondBadRequest(ctx, "Invalid request body")
	}

	cmd, err := commands.NewUpdateInventoryItemCommand(
		id,
		inventory.Details{
			PartName:        req.PartName,
			Category:        req.Category,
			Description:     req.Description,
			QuantityInStock: req.QuantityInStock,
			ReorderLevel:    req.ReorderLevel,
			MaxStockLevel:   req.MaxStockLevel,
			Supplier:        req.Supplier,
			UnitPrice:       req.UnitPrice,
			Location:        req.Location,
		},
	)
	if err != nil {
		return respondError(ctx, err)
	}

	if err := s.updateInventoryItemHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return respondError(ctx, err)
	}

	return ctx.NoContent(http.StatusOK)
}

// AdjustInventoryStock handles PATCH /api/v1/inventory/:id/stock.
func (s *Server) AdjustInventoryStock(ctx echo.Context) error {
	id, err := kernel.UUIDFromString(ctx.Param("id"))
	if err != nil {
		return respondError(ctx, err)
	}

	var req AdjustStockRequest
	if err := ctx.Bind(&req); err != nil {
		return respondBadRequest(ctx, "Invalid request body")
	}

	cmd, err := commands.NewAdjustInventoryStockCommand(id, req.Delta)
	if err != nil {
		return respondError(ctx, err)
	}

	if err := s.adjustInventoryStockHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return respondError(ctx, err)
	}

	return ctx.NoContent(http.StatusOK)
}

// DeleteInventoryItem handles DELETE /api/v1/inventory/:id.
func (s *Server) DeleteInventoryItem(ctx echo.Context) error {
	id, err := kernel.UUIDFromString(ctx.Param("id"))
	if err != nil {
		return respondError(ctx, err)
	}

	cmd, err := commands.NewDeleteInventoryItemCommand(id)
	if err != nil {
		return respondError(ctx, err)
	}

	if err := s.deleteInventoryItemHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return respondError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}
