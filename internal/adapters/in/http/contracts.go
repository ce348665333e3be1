package http

import (
	"time"

	"vehicletrack/internal/core/application/usecases/queries"
	"vehicletrack/internal/core/domain/model/inventory"
	"vehicletrack/internal/core/domain/model/order"
	"vehicletrack/internal/core/domain/model/production"
	"vehicletrack/internal/core/domain/model/vehicle"
)

// NewVehicleRequest is the body for POST /api/v1/vehicles.
type NewVehicleRequest struct {
	VIN               string     `json:"vin"`
	Model             string     `json:"model"`
	Make              string     `json:"make"`
	Year              int        `json:"year"`
	Color             string     `json:"color"`
	VehicleType       string     `json:"vehicleType"`
	EngineType        string     `json:"engineType"`
	Transmission      string     `json:"transmission"`
	Price             float64    `json:"price"`
	ManufacturingDate *time.Time `json:"manufacturingDate"`
	Status            string     `json:"status"`
}

// UpdateVehicleRequest is the body for PUT /api/v1/vehicles/:id. Every field
// replaces the stored value.
type UpdateVehicleRequest struct {
	Model             string     `json:"model"`
	Make              string     `json:"make"`
	Year              int        `json:"year"`
	Color             string     `json:"color"`
	VehicleType       string     `json:"vehicleType"`
	EngineType        string     `json:"engineType"`
	Transmission      string     `json:"transmission"`
	Price             float64    `json:"price"`
	ManufacturingDate *time.Time `json:"manufacturingDate"`
	Status            string     `json:"status"`
}

// ChangeStatusRequest is the body for status transition endpoints.
type ChangeStatusRequest struct {
	Status string `json:"status"`
}

// NewProductionOrderRequest is the body for POST /api/v1/production-orders.
type NewProductionOrderRequest struct {
	OrderNumber            string     `json:"orderNumber"`
	VehicleVIN             string     `json:"vehicleVin"`
	VehicleModel           string     `json:"vehicleModel"`
	VehicleMake            string     `json:"vehicleMake"`
	Quantity               int        `json:"quantity"`
	CurrentStage           string     `json:"currentStage"`
	Status                 string     `json:"status"`
	CompletionPercentage   float64    `json:"completionPercentage"`
	StartDate              *time.Time `json:"startDate"`
	ExpectedCompletionDate *time.Time `json:"expectedCompletionDate"`
	AssignedLine           string     `json:"assignedLine"`
	Notes                  string     `json:"notes"`
}

// UpdateProductionOrderRequest is the body for PUT /api/v1/production-orders/:id.
type UpdateProductionOrderRequest struct {
	VehicleVIN             string     `json:"vehicleVin"`
	VehicleModel           string     `json:"vehicleModel"`
	VehicleMake            string     `json:"vehicleMake"`
	Quantity               int        `json:"quantity"`
	CurrentStage           string     `json:"currentStage"`
	Status                 string     `json:"status"`
	CompletionPercentage   float64    `json:"completionPercentage"`
	StartDate              *time.Time `json:"startDate"`
	ExpectedCompletionDate *time.Time `json:"expectedCompletionDate"`
	ActualCompletionDate   *time.Time `json:"actualCompletionDate"`
	AssignedLine           string     `json:"assignedLine"`
	Notes                  string     `json:"notes"`
}

// AdvanceStageRequest is the body for PATCH /api/v1/production-orders/:id/stage.
type AdvanceStageRequest struct {
	Stage string `json:"stage"`
}

// NewPurchaseOrderRequest is the body for POST /api/v1/orders.
type NewPurchaseOrderRequest struct {
	OrderNumber          string     `json:"orderNumber"`
	CustomerID           string     `json:"customerId"`
	CustomerName         string     `json:"customerName"`
	CustomerEmail        string     `json:"customerEmail"`
	CustomerPhone        string     `json:"customerPhone"`
	VehicleVIN           string     `json:"vehicleVin"`
	VehicleModel         string     `json:"vehicleModel"`
	VehicleMake          string     `json:"vehicleMake"`
	VehicleYear          int        `json:"vehicleYear"`
	VehicleColor         string     `json:"vehicleColor"`
	TotalPrice           float64    `json:"totalPrice"`
	DepositAmount        float64    `json:"depositAmount"`
	DeliveryAddress      string     `json:"deliveryAddress"`
	ExpectedDeliveryDate *time.Time `json:"expectedDeliveryDate"`
	Notes                string     `json:"notes"`
	Status               string     `json:"status"`
}

// UpdatePurchaseOrderRequest is the body for PUT /api/v1/orders/:id.
type UpdatePurchaseOrderRequest struct {
	CustomerID           string     `json:"customerId"`
	CustomerName         string     `json:"customerName"`
	CustomerEmail        string     `json:"customerEmail"`
	CustomerPhone        string     `json:"customerPhone"`
	VehicleVIN           string     `json:"vehicleVin"`
	VehicleModel         string     `json:"vehicleModel"`
	VehicleMake          string     `json:"vehicleMake"`
	VehicleYear          int        `json:"vehicleYear"`
	VehicleColor         string     `json:"vehicleColor"`
	TotalPrice           float64    `json:"totalPrice"`
	DepositAmount        float64    `json:"depositAmount"`
	DeliveryAddress      string     `json:"deliveryAddress"`
	ExpectedDeliveryDate *time.Time `json:"expectedDeliveryDate"`
	Notes                string     `json:"notes"`
	Status               string     `json:"status"`
}

// NewInventoryItemRequest is the body for POST /api/v1/inventory.
type NewInventoryItemRequest struct {
	PartNumber      string  `json:"partNumber"`
	PartName        string  `json:"partName"`
	Category        string  `json:"category"`
	Description     string  `json:"description"`
	QuantityInStock int     `json:"quantityInStock"`
	ReorderLevel    int     `json:"reorderLevel"`
	MaxStockLevel   int     `json:"maxStockLevel"`
	Supplier        string  `json:"supplier"`
	UnitPrice       float64 `json:"unitPrice"`
	Location        string  `json:"location"`
}

// UpdateInventoryItemRequest is the body for PUT /api/v1/inventory/:id.
type UpdateInventoryItemRequest struct {
	PartName        string  `json:"partName"`
	Category        string  `json:"category"`
	Description     string  `json:"description"`
	QuantityInStock int     `json:"quantityInStock"`
	ReorderLevel    int     `json:"reorderLevel"`
	MaxStockLevel   int     `json:"maxStockLevel"`
	Supplier        string  `json:"supplier"`
	UnitPrice       float64 `json:"unitPrice"`
	Location        string  `json:"location"`
}

// AdjustStockRequest is the body for PATCH /api/v1/inventory/:id/stock. The
// delta may be any signed value.
type AdjustStockRequest struct {
	Delta int `json:"delta"`
}

// Single-resource GET responses reuse the query read models so the listing
// and detail surfaces serialize identically.

func vehicleResponse(v *vehicle.Vehicle) queries.GetVehiclesQueryResponse {
	details := v.Details()

	return queries.GetVehiclesQueryResponse{
		ID:                v.ID().String(),
		VIN:               v.VIN(),
		Model:             v.Model(),
		Make:              v.Make(),
		Year:              v.Year(),
		Color:             v.Color(),
		Type:              v.VehicleType(),
		EngineType:        details.EngineType,
		Transmission:      details.Transmission,
		Price:             details.Price,
		Status:            v.Status().String(),
		ManufacturingDate: details.ManufacturingDate,
		CreatedAt:         v.CreatedAt(),
		UpdatedAt:         v.UpdatedAt(),
	}
}

func productionOrderResponse(o *production.ProductionOrder) queries.GetProductionOrdersQueryResponse {
	details := o.Details()

	return queries.GetProductionOrdersQueryResponse{
		ID:                     o.ID().String(),
		OrderNumber:            o.OrderNumber(),
		VehicleVIN:             details.VehicleVIN,
		VehicleModel:           details.VehicleModel,
		VehicleMake:            details.VehicleMake,
		CurrentStage:           o.CurrentStage().String(),
		Status:                 o.Status().String(),
		Quantity:               details.Quantity,
		StartDate:              details.StartDate,
		ExpectedCompletionDate: details.ExpectedCompletionDate,
		ActualCompletionDate:   o.ActualCompletionDate(),
		AssignedLine:           details.AssignedLine,
		CompletionPercentage:   o.CompletionPercentage(),
		Notes:                  details.Notes,
		CreatedAt:              o.CreatedAt(),
		UpdatedAt:              o.UpdatedAt(),
	}
}

func purchaseOrderResponse(o *order.PurchaseOrder) queries.GetPurchaseOrdersQueryResponse {
	customer := o.Customer()
	vehicleInfo := o.Vehicle()
	details := o.Details()

	return queries.GetPurchaseOrdersQueryResponse{
		ID:                   o.ID().String(),
		OrderNumber:          o.OrderNumber(),
		CustomerID:           customer.ID,
		CustomerName:         customer.Name,
		CustomerEmail:        customer.Email,
		CustomerPhone:        customer.Phone,
		VehicleVIN:           vehicleInfo.VIN,
		VehicleModel:         vehicleInfo.Model,
		VehicleMake:          vehicleInfo.Make,
		VehicleYear:          vehicleInfo.Year,
		VehicleColor:         vehicleInfo.Color,
		TotalPrice:           details.TotalPrice,
		DepositAmount:        details.DepositAmount,
		Status:               o.Status().String(),
		OrderDate:            o.OrderDate(),
		ExpectedDeliveryDate: details.ExpectedDeliveryDate,
		ActualDeliveryDate:   o.ActualDeliveryDate(),
		DeliveryAddress:      details.DeliveryAddress,
		Notes:                details.Notes,
		CreatedAt:            o.CreatedAt(),
		UpdatedAt:            o.UpdatedAt(),
	}
}

func inventoryItemResponse(i *inventory.InventoryItem) queries.GetInventoryItemsQueryResponse {
	details := i.Details()

	return queries.GetInventoryItemsQueryResponse{
		ID:              i.ID().String(),
		PartNumber:      i.PartNumber(),
		PartName:        details.PartName,
		Category:        details.Category,
		Description:     details.Description,
		QuantityInStock: details.QuantityInStock,
		ReorderLevel:    details.ReorderLevel,
		MaxStockLevel:   details.MaxStockLevel,
		Supplier:        details.Supplier,
		UnitPrice:       details.UnitPrice,
		Location:        details.Location,
		Status:          i.Status().String(),
		LastRestocked:   i.LastRestocked(),
		CreatedAt:       i.CreatedAt(),
		UpdatedAt:       i.UpdatedAt(),
	}
}
