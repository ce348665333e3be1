package queries

import (
	"errors"
	"time"

	"vehicletrack/internal/core/domain/model/order"
	"vehicletrack/internal/pkg/guard"
)

var ErrGetPurchaseOrdersQueryIsNotConstructed = errors.New(
	"GetPurchaseOrdersQuery must be created via NewGetPurchaseOrdersQuery constructor",
)

// PurchaseOrdersFilter narrows a purchase order listing. Zero-valued fields
// are ignored.
type PurchaseOrdersFilter struct {
	Status      string
	CustomerID  string
	OrderNumber string
}

// GetPurchaseOrdersQuery retrieves purchase orders matching an optional
// filter.
type GetPurchaseOrdersQuery struct {
	filter PurchaseOrdersFilter

	guard guard.ConstructorGuard
}

// NewGetPurchaseOrdersQuery creates a query to list purchase orders. A
// non-empty status filter is validated against the enumeration.
func NewGetPurchaseOrdersQuery(filter PurchaseOrdersFilter) (GetPurchaseOrdersQuery, error) {
	if filter.Status != "" {
		if _, err := order.StatusFromString(filter.Status); err != nil {
			return GetPurchaseOrdersQuery{}, err
		}
	}

	return GetPurchaseOrdersQuery{
		filter: filter,
		guard:  guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
func (q GetPurchaseOrdersQuery) Validate() error {
	return q.guard.Validate(ErrGetPurchaseOrdersQueryIsNotConstructed)
}

// Filter returns the listing filter.
func (q GetPurchaseOrdersQuery) Filter() PurchaseOrdersFilter {
	return q.filter
}

// GetPurchaseOrdersQueryResponse is the read model for a purchase order row.
type GetPurchaseOrdersQueryResponse struct {
	ID                   string     `json:"id"`
	OrderNumber          string     `json:"orderNumber"`
	CustomerID           string     `json:"customerId,omitempty"`
	CustomerName         string     `json:"customerName,omitempty"`
	CustomerEmail        string     `json:"customerEmail,omitempty"`
	CustomerPhone        string     `json:"customerPhone,omitempty"`
	VehicleVIN           string     `json:"vehicleVin,omitempty"`
	VehicleModel         string     `json:"vehicleModel,omitempty"`
	VehicleMake          string     `json:"vehicleMake,omitempty"`
	VehicleYear          int        `json:"vehicleYear,omitempty"`
	VehicleColor         string     `json:"vehicleColor,omitempty"`
	TotalPrice           float64    `json:"totalPrice,omitempty"`
	DepositAmount        float64    `json:"depositAmount,omitempty"`
	Status               string     `json:"status"`
	OrderDate            time.Time  `json:"orderDate"`
	ExpectedDeliveryDate *time.Time `json:"expectedDeliveryDate,omitempty"`
	ActualDeliveryDate   *time.Time `json:"actualDeliveryDate,omitempty"`
	DeliveryAddress      string     `json:"deliveryAddress,omitempty"`
	Notes                string     `json:"notes,omitempty"`
	CreatedAt            time.Time  `json:"createdAt"`
	UpdatedAt            time.Time  `json:"updatedAt"`
}
