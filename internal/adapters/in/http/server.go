// Package http exposes the application use cases over a REST API.
package http

import (
	"net/http"

	"vehicletrack/internal/core/application/usecases/commands"
	"vehicletrack/internal/core/application/usecases/queries"
	"vehicletrack/internal/core/ports"

	"github.com/labstack/echo/v4"
)

// Server coordinates between HTTP handlers and application use cases. Single
// resource reads go through the repositories; listings go through the query
// handlers.
type Server struct {
	// Vehicle use cases
	createVehicleHandler       commands.CreateVehicleCommandHandler
	updateVehicleHandler       commands.UpdateVehicleCommandHandler
	changeVehicleStatusHandler commands.ChangeVehicleStatusCommandHandler
	deleteVehicleHandler       commands.DeleteVehicleCommandHandler
	getVehiclesHandler         queries.GetVehiclesQueryHandler

	// Production order use cases
	createProductionOrderHandler  commands.CreateProductionOrderCommandHandler
	updateProductionOrderHandler  commands.UpdateProductionOrderCommandHandler
	advanceProductionStageHandler commands.AdvanceProductionStageCommandHandler
	deleteProductionOrderHandler  commands.DeleteProductionOrderCommandHandler
	getProductionOrdersHandler    queries.GetProductionOrdersQueryHandler

	// Purchase order use cases
	createPurchaseOrderHandler       commands.CreatePurchaseOrderCommandHandler
	updatePurchaseOrderHandler       commands.UpdatePurchaseOrderCommandHandler
	changePurchaseOrderStatusHandler commands.ChangePurchaseOrderStatusCommandHandler
	deletePurchaseOrderHandler       commands.DeletePurchaseOrderCommandHandler
	getPurchaseOrdersHandler         queries.GetPurchaseOrdersQueryHandler

	// Inventory use cases
	createInventoryItemHandler  commands.CreateInventoryItemCommandHandler
	updateInventoryItemHandler  commands.UpdateInventoryItemCommandHandler
	adjustInventoryStockHandler commands.AdjustInventoryStockCommandHandler
	deleteInventoryItemHandler  commands.DeleteInventoryItemCommandHandler
	getInventoryItemsHandler    queries.GetInventoryItemsQueryHandler

	uowFactory ports.UnitOfWorkFactory
}

// ServerDeps bundles the use case handlers wired into the HTTP server.
type ServerDeps struct {
	CreateVehicleHandler       commands.CreateVehicleCommandHandler
	UpdateVehicleHandler       commands.UpdateVehicleCommandHandler
	ChangeVehicleStatusHandler commands.ChangeVehicleStatusCommandHandler
	DeleteVehicleHandler       commands.DeleteVehicleCommandHandler
	GetVehiclesHandler         queries.GetVehiclesQueryHandler

	CreateProductionOrderHandler  commands.CreateProductionOrderCommandHandler
	UpdateProductionOrderHandler  commands.UpdateProductionOrderCommandHandler
	AdvanceProductionStageHandler commands.AdvanceProductionStageCommandHandler
	DeleteProductionOrderHandler  commands.DeleteProductionOrderCommandHandler
	GetProductionOrdersHandler    queries.GetProductionOrdersQueryHandler

	CreatePurchaseOrderHandler       commands.CreatePurchaseOrderCommandHandler
	UpdatePurchaseOrderHandler       commands.UpdatePurchaseOrderCommandHandler
	ChangePurchaseOrderStatusHandler commands.ChangePurchaseOrderStatusCommandHandler
	DeletePurchaseOrderHandler       commands.DeletePurchaseOrderCommandHandler
	GetPurchaseOrdersHandler         queries.GetPurchaseOrdersQueryHandler

	CreateInventoryItemHandler  commands.CreateInventoryItemCommandHandler
	UpdateInventoryItemHandler  commands.UpdateInventoryItemCommandHandler
	AdjustInventoryStockHandler commands.AdjustInventoryStockCommandHandler
	DeleteInventoryItemHandler  commands.DeleteInventoryItemCommandHandler
	GetInventoryItemsHandler    queries.GetInventoryItemsQueryHandler

	UoWFactory ports.UnitOfWorkFactory
}

// NewServer creates a new HTTP server with the required command and query
// handlers.
func NewServer(deps ServerDeps) *Server {
	return &Server{
		createVehicleHandler:       deps.CreateVehicleHandler,
		updateVehicleHandler:       deps.UpdateVehicleHandler,
		changeVehicleStatusHandler: deps.ChangeVehicleStatusHandler,
		deleteVehicleHandler:       deps.DeleteVehicleHandler,
		getVehiclesHandler:         deps.GetVehiclesHandler,

		createProductionOrderHandler:  deps.CreateProductionOrderHandler,
		updateProductionOrderHandler:  deps.UpdateProductionOrderHandler,
		advanceProductionStageHandler: deps.AdvanceProductionStageHandler,
		deleteProductionOrderHandler:  deps.DeleteProductionOrderHandler,
		getProductionOrdersHandler:    deps.GetProductionOrdersHandler,

		createPurchaseOrderHandler:       deps.CreatePurchaseOrderHandler,
		updatePurchaseOrderHandler:       deps.UpdatePurchaseOrderHandler,
		changePurchaseOrderStatusHandler: deps.ChangePurchaseOrderStatusHandler,
		deletePurchaseOrderHandler:       deps.DeletePurchaseOrderHandler,
		getPurchaseOrdersHandler:         deps.GetPurchaseOrdersHandler,

		createInventoryItemHandler:  deps.CreateInventoryItemHandler,
		updateInventoryItemHandler:  deps.UpdateInventoryItemHandler,
		adjustInventoryStockHandler: deps.AdjustInventoryStockHandler,
		deleteInventoryItemHandler:  deps.DeleteInventoryItemHandler,
		getInventoryItemsHandler:    deps.GetInventoryItemsHandler,

		uowFactory: deps.UoWFactory,
	}
}

// RegisterRoutes mounts all API endpoints on the echo instance.
func (s *Server) RegisterRoutes(e *echo.Echo) {
	e.GET("/health", s.Health)

	api := e.Group("/api/v1")

	api.POST("/vehicles", s.CreateVehicle)
	api.GET("/vehicles", s.GetVehicles)
	api.GET("/vehicles/:id", s.GetVehicle)
	api.GET("/vehicles/vin/:vin", s.GetVehicleByVIN)
	api.PUT("/vehicles/:id", s.UpdateVehicle)
	api.PATCH("/vehicles/:id/status", s.ChangeVehicleStatus)
	api.DELETE("/vehicles/:id", s.DeleteVehicle)

	api.POST("/production-orders", s.CreateProductionOrder)
	api.GET("/production-orders", s.GetProductionOrders)
	api.GET("/production-orders/:id", s.GetProductionOrder)
	api.GET("/production-orders/number/:orderNumber", s.GetProductionOrderByNumber)
	api.PUT("/production-orders/:id", s.UpdateProductionOrder)
	api.PATCH("/production-orders/:id/stage", s.AdvanceProductionStage)
	api.DELETE("/production-orders/:id", s.DeleteProductionOrder)

	api.POST("/orders", s.CreatePurchaseOrder)
	api.GET("/orders", s.GetPurchaseOrders)
	api.GET("/orders/:id", s.GetPurchaseOrder)
	api.GET("/orders/number/:orderNumber", s.GetPurchaseOrderByNumber)
	api.PUT("/orders/:id", s.UpdatePurchaseOrder)
	api.PATCH("/orders/:id/status", s.ChangePurchaseOrderStatus)
	api.DELETE("/orders/:id", s.DeletePurchaseOrder)

	api.POST("/inventory", s.CreateInventoryItem)
	api.GET("/inventory", s.GetInventoryItems)
	api.GET("/inventory/:id", s.GetInventoryItem)
	api.GET("/inventory/part/:partNumber", s.GetInventoryItemByPartNumber)
	api.PUT("/inventory/:id", s.UpdateInventoryItem)
	api.PATCH("/inventory/:id/stock", s.AdjustInventoryStock)
	api.DELETE("/inventory/:id", s.DeleteInventoryItem)
}

// Health handles GET /health.
func (s *Server) Health(ctx echo.Context) error {
	return ctx.String(http.StatusOK, "Healthy")
}
