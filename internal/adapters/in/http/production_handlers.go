package http

import (
	"net/http"

	"vehicletrack/internal/core/application/usecases/commands"
	"vehicletrack/internal/core/application/usecases/queries"
	"vehicletrack/internal/core/domain/model/kernel"
	"vehicletrack/internal/core/domain/model/production"

	"github.com/labstack/echo/v4"
)

// CreateProductionOrder handles POST /api/v1/production-orders.
func (s *Server) CreateProductionOrder(ctx echo.Context) error {
	var req NewProductionOrderRequest
	if err := ctx.Bind(&req); err != nil {
		return respondBadRequest(ctx, "Invalid request body")
	}

	stage := production.StageUnknown
	if req.CurrentStage != "" {
		parsed, err := production.StageFromString(req.CurrentStage)
		if err != nil {
			return respondError(ctx, err)
		}
		stage = parsed
	}

	status := production.StatusUnknown
	if req.Status != "" {
		parsed, err := production.StatusFromString(req.Status)
		if err != nil {
			return respondError(ctx, err)
		}
		status = parsed
	}

	orderID := kernel.NewUUID()
	cmd, err := commands.NewCreateProductionOrderCommand(
		orderID,
		req.OrderNumber,
		stage,
		status,
		req.CompletionPercentage,
		production.Details{
			VehicleVIN:             req.VehicleVIN,
			VehicleModel:           req.VehicleModel,
			VehicleMake:            req.VehicleMake,
			Quantity:               req.Quantity,
			StartDate:              req.StartDate,
			ExpectedCompletionDate: req.ExpectedCompletionDate,
			AssignedLine:           req.AssignedLine,
			Notes:                  req.Notes,
		},
	)
	if err != nil {
		return respondError(ctx, err)
	}

	if err := s.createProductionOrderHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return respondError(ctx, err)
	}

	return ctx.JSON(http.StatusCreated, map[string]string{"id": orderID.String()})
}

// GetProductionOrders handles GET /api/v1/production-orders.
func (s *Server) GetProductionOrders(ctx echo.Context) error {
	query, err := queries.NewGetProductionOrdersQuery(queries.ProductionOrdersFilter{
		Status:      ctx.QueryParam("status"),
		Stage:       ctx.QueryParam("stage"),
		OrderNumber: ctx.QueryParam("orderNumber"),
	})
	if err != nil {
		return respondError(ctx, err)
	}

	orders, err := s.getProductionOrdersHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return respondError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, orders)
}

// GetProductionOrder handles GET /api/v1/production-orders/:id.
func (s *Server) GetProductionOrder(ctx echo.Context) error {
	id, err := kernel.UUIDFromString(ctx.Param("id"))
	if err != nil {
		return respondError(ctx, err)
	}

	aggregate, err := s.uowFactory.Create().ProductionOrderRepository().Get(ctx.Request().Context(), id)
	if err != nil {
		return respondError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, productionOrderResponse(aggregate))
}

// GetProductionOrderByNumber handles GET /api/v1/production-orders/number/:orderNumber.
func (s *Server) GetProductionOrderByNumber(ctx echo.Context) error {
	aggregate, err := s.uowFactory.Create().ProductionOrderRepository().GetByOrderNumber(
		ctx.Request().Context(), ctx.Param("orderNumber"))
	if err != nil {
		return respondError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, productionOrderResponse(aggregate))
}

// UpdateProductionOrder handles PUT /api/v1/production-orders/:id.
func (s *Server) UpdateProductionOrder(ctx echo.Context) error {
	id, err := kernel.UUIDFromString(ctx.Param("id"))
	if err != nil {
		return respondError(ctx, err)
	}

	var req UpdateProductionOrderRequest
	if err := ctx.Bind(&req); err != nil {
		return respondBadRequest(ctx, "Invalid request body")
	}

	stage, err := production.StageFromString(req.CurrentStage)
	if err != nil {
		return respondError(ctx, err)
	}

	status, err := production.StatusFromString(req.Status)
	if err != nil {
		return respondError(ctx, err)
	}

	cmd, err := commands.NewUpdateProductionOrderCommand(
		id,
		stage,
		status,
		req.CompletionPercentage,
		req.ActualCompletionDate,
		production.Details{
			VehicleVIN:             req.VehicleVIN,
			VehicleModel:           req.VehicleModel,
			VehicleMake:            req.VehicleMake,
			Quantity:               req.Quantity,
			StartDate:              req.StartDate,
			ExpectedCompletionDate: req.ExpectedCompletionDate,
			AssignedLine:           req.AssignedLine,
			Notes:                  req.Notes,
		},
	)
	if err != nil {
		return respondError(ctx, err)
	}

	if err := s.updateProductionOrderHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return respondError(ctx, err)
	}

	return ctx.NoContent(http.StatusOK)
}

// AdvanceProductionStage handles PATCH /api/v1/production-orders/:id/stage.
func (s *Server) AdvanceProductionStage(ctx echo.Context) error {
	id, err := kernel.UUIDFromString(ctx.Param("id"))
	if err != nil {
		return respondError(ctx, err)
	}

	var req AdvanceStageRequest
	if err := ctx.Bind(&req); err != nil {
		return respondBadRequest(ctx, "Invalid request body")
	}

	stage, err := production.StageFromString(req.Stage)
	if err != nil {
		return respondError(ctx, err)
	}

	cmd, err := commands.NewAdvanceProductionStageCommand(id, stage)
	if err != nil {
		return respondError(ctx, err)
	}

	if err := s.advanceProductionStageHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return respondError(ctx, err)
	}

	return ctx.NoContent(http.StatusOK)
}

// DeleteProductionOrder handles DELETE /api/v1/production-orders/:id.
func (s *Server) DeleteProductionOrder(ctx echo.Context) error {
	id, err := kernel.UUIDFromString(ctx.Param("id"))
	if err != nil {
		return respondError(ctx, err)
	}

	cmd, err := commands.NewDeleteProductionOrderCommand(id)
	if err != nil {
		return respondError(ctx, err)
	}

	if err := s.deleteProductionOrderHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return respondError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}
