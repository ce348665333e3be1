package http

import (
	"net/http"

	"vehicletrack/internal/core/application/usecases/commands"
	"vehicletrack/internal/core/application/usecases/queries"
	"vehicletrack/internal/core/domain/model/kernel"
	"vehicletrack/internal/core/domain/model/order"

	"github.com/labstack/echo/v4"
)

// CreatePurchaseOrder handles POST /api/v1/orders.
func (s *Server) CreatePurchaseOrder(ctx echo.Context) error {
	var req NewPurchaseOrderRequest
	if err := ctx.Bind(&req); err != nil {
		return respondBadRequest(ctx, "Invalid request body")
	}

	status := order.StatusUnknown
	if req.Status != "" {
		parsed, err := order.StatusFromString(req.Status)
		if err != nil {
			return respondError(ctx, err)
		}
		status = parsed
	}

	orderID := kernel.NewUUID()
	cmd, err := commands.NewCreatePurchaseOrderCommand(
		orderID,
		req.OrderNumber,
		order.Customer{
			ID:    req.CustomerID,
			Name:  req.CustomerName,
			Email: req.CustomerEmail,
			Phone: req.CustomerPhone,
		},
		order.VehicleInfo{
			VIN:   req.VehicleVIN,
			Model: req.VehicleModel,
			Make:  req.VehicleMake,
			Year:  req.VehicleYear,
			Color: req.VehicleColor,
		},
		status,
		order.Details{
			TotalPrice:           req.TotalPrice,
			DepositAmount:        req.DepositAmount,
			DeliveryAddress:      req.DeliveryAddress,
			ExpectedDeliveryDate: req.ExpectedDeliveryDate,
			Notes:                req.Notes,
		},
	)
	if err != nil {
		return respondError(ctx, err)
	}

	if err := s.createPurchaseOrderHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return respondError(ctx, err)
	}

	return ctx.JSON(http.StatusCreated, map[string]string{"id": orderID.String()})
}

// GetPurchaseOrders handles GET /api/v1/orders.
func (s *Server) GetPurchaseOrders(ctx echo.Context) error {
	query, err := queries.NewGetPurchaseOrdersQuery(queries.PurchaseOrdersFilter{
		Status:      ctx.QueryParam("status"),
		CustomerID:  ctx.QueryParam("customerId"),
		OrderNumber: ctx.QueryParam("orderNumber"),
	})
	if err != nil {
		return respondError(ctx, err)
	}

	orders, err := s.getPurchaseOrdersHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return respondError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, orders)
}

// GetPurchaseOrder handles GET /api/v1/orders/:id.
func (s *Server) GetPurchaseOrder(ctx echo.Context) error {
	id, err := kernel.UUIDFromString(ctx.Param("id"))
	if err != nil {
		return respondError(ctx, err)
	}

	aggregate, err := s.uowFactory.Create().OrderRepository().Get(ctx.Request().Context(), id)
	if err != nil {
		return respondError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, purchaseOrderResponse(aggregate))
}

// GetPurchaseOrderByNumber handles GET /api/v1/orders/number/:orderNumber.
func (s *Server) GetPurchaseOrderByNumber(ctx echo.Context) error {
	aggregate, err := s.uowFactory.Create().OrderRepository().GetByOrderNumber(
		ctx.Request().Context(), ctx.Param("orderNumber"))
	if err != nil {
		return respondError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, purchaseOrderResponse(aggregate))
}

// UpdatePurchaseOrder handles PUT /api/v1/orders/:id.
func (s *Server) UpdatePurchaseOrder(ctx echo.Context) error {
	id, err := kernel.UUIDFromString(ctx.Param("id"))
	if err != nil {
		return respondError(ctx, err)
	}

	var req UpdatePurchaseOrderRequest
	if err := ctx.Bind(&req); err != nil {
		return respondBadRequest(ctx, "Invalid request body")
	}

	status, err := order.StatusFromString(req.Status)
	if err != nil {
		return respondError(ctx, err)
	}

	cmd, err := commands.NewUpdatePurchaseOrderCommand(
		id,
		order.Customer{
			ID:    req.CustomerID,
			Name:  req.CustomerName,
			Email: req.CustomerEmail,
			Phone: req.CustomerPhone,
		},
		order.VehicleInfo{
			VIN:   req.VehicleVIN,
			Model: req.VehicleModel,
			Make:  req.VehicleMake,
			Year:  req.VehicleYear,
			Color: req.VehicleColor,
		},
		status,
		order.Details{
			TotalPrice:           req.TotalPrice,
			DepositAmount:        req.DepositAmount,
			DeliveryAddress:      req.DeliveryAddress,
			ExpectedDeliveryDate: req.ExpectedDeliveryDate,
			Notes:                req.Notes,
		},
	)
	if err != nil {
		return respondError(ctx, err)
	}

	if err := s.updatePurchaseOrderHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return respondError(ctx, err)
	}

	return ctx.NoContent(http.StatusOK)
}

// ChangePurchaseOrderStatus handles PATCH /api/v1/orders/:id/status.
func (s *Server) ChangePurchaseOrderStatus(ctx echo.Context) error {
	id, err := kernel.UUIDFromString(ctx.Param("id"))
	if err != nil {
		return respondError(ctx, err)
	}

	var req ChangeStatusRequest
	if err := ctx.Bind(&req); err != nil {
		return respondBadRequest(ctx, "Invalid request body")
	}

	status, err := order.StatusFromString(req.Status)
	if err != nil {
		return respondError(ctx, err)
	}

	cmd, err := commands.NewChangePurchaseOrderStatusCommand(id, status)
	if err != nil {
		return respondError(ctx, err)
	}

	if err := s.changePurchaseOrderStatusHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return respondError(ctx, err)
	}

	return ctx.NoContent(http.StatusOK)
}

// DeletePurchaseOrder handles DELETE /api/v1/orders/:id.
func (s *Server) DeletePurchaseOrder(ctx echo.Context) error {
	id, err := kernel.UUIDFromString(ctx.Param("id"))
	if err != nil {
		return respondError(ctx, err)
	}

	cmd, err := commands.NewDeletePurchaseOrderCommand(id)
	if err != nil {
		return respondError(ctx, err)
	}

	if err := s.deletePurchaseOrderHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return respondError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}
