package queries

import (
	"errors"
	"time"

	"vehicletrack/internal/pkg/guard"
)

var ErrGetInventoryItemsQueryIsNotConstructed = errors.New(
	"GetInventoryItemsQuery must be created via NewGetInventoryItemsQuery constructor",
)

// InventoryItemsFilter narrows an inventory listing. LowStock selects items
// whose quantity is at or below their reorder level, regardless of the
// stored status field.
type InventoryItemsFilter struct {
	Category   string
	PartNumber string
	LowStock   bool
}

// GetInventoryItemsQuery retrieves inventory items matching an optional
// filter.
type GetInventoryItemsQuery struct {
	filter InventoryItemsFilter

	guard guard.ConstructorGuard
}

// NewGetInventoryItemsQuery creates a query to list inventory items.
func NewGetInventoryItemsQuery(filter InventoryItemsFilter) GetInventoryItemsQuery {
	return GetInventoryItemsQuery{
		filter: filter,
		guard:  guard.NewConstructorGuard(),
	}
}

// Validate ensures the query was created through the constructor.
func (q GetInventoryItemsQuery) Validate() error {
	return q.guard.Validate(ErrGetInventoryItemsQueryIsNotConstructed)
}

// Filter returns the listing filter.
func (q GetInventoryItemsQuery) Filter() InventoryItemsFilter {
	return q.filter
}

// GetInventoryItemsQueryResponse is the read model for an inventory item
// row.
type GetInventoryItemsQueryResponse struct {
	ID              string     `json:"id"`
	PartNumber      string     `json:"partNumber"`
	PartName        string     `json:"partName,omitempty"`
	Category        string     `json:"category,omitempty"`
	Description     string     `json:"description,omitempty"`
	QuantityInStock int        `json:"quantityInStock"`
	ReorderLevel    int        `json:"reorderLevel"`
	MaxStockLevel   int        `json:"maxStockLevel,omitempty"`
	Supplier        string     `json:"supplier,omitempty"`
	UnitPrice       float64    `json:"unitPrice,omitempty"`
	Location        string     `json:"location,omitempty"`
	Status          string     `json:"status"`
	LastRestocked   *time.Time `json:"lastRestocked,omitempty"`
	CreatedAt       time.Time  `json:"createdAt"`
	UpdatedAt       time.Time  `json:"updatedAt"`
}
