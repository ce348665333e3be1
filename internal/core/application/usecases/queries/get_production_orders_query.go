package queries

import (
	"errors"
	"time"

	"vehicletrack/internal/core/domain/model/production"
	"vehicletrack/internal/pkg/guard"
)

var ErrGetProductionOrdersQueryIsNotConstructed = errors.New(
	"GetProductionOrdersQuery must be created via NewGetProductionOrdersQuery constructor",
)

// ProductionOrdersFilter narrows a production order listing. Zero-valued
// fields are ignored.
type ProductionOrdersFilter struct {
	Status      string
	Stage       string
	OrderNumber string
}

// GetProductionOrdersQuery retrieves production orders matching an optional
// filter.
type GetProductionOrdersQuery struct {
	filter ProductionOrdersFilter

	guard guard.ConstructorGuard
}

// NewGetProductionOrdersQuery creates a query to list production orders.
// Non-empty status and stage filters are validated against their
// enumerations.
func NewGetProductionOrdersQuery(filter ProductionOrdersFilter) (GetProductionOrdersQuery, error) {
	if filter.Status != "" {
		if _, err := production.StatusFromString(filter.Status); err != nil {
			return GetProductionOrdersQuery{}, err
		}
	}
	if filter.Stage != "" {
		if _, err := production.StageFromString(filter.Stage); err != nil {
			return GetProductionOrdersQuery{}, err
		}
	}

	return GetProductionOrdersQuery{
		filter: filter,
		guard:  guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
func (q GetProductionOrdersQuery) Validate() error {
	return q.guard.Validate(ErrGetProductionOrdersQueryIsNotConstructed)
}

// Filter returns the listing filter.
func (q GetProductionOrdersQuery) Filter() ProductionOrdersFilter {
	return q.filter
}

// GetProductionOrdersQueryResponse is the read model for a production order
// row.
type GetProductionOrdersQueryResponse struct {
	ID                     string     `json:"id"`
	OrderNumber            string     `json:"orderNumber"`
	VehicleVIN             string     `json:"vehicleVin,omitempty"`
	VehicleModel           string     `json:"vehicleModel,omitempty"`
	VehicleMake            string     `json:"vehicleMake,omitempty"`
	CurrentStage           string     `json:"currentStage"`
	Status                 string     `json:"status"`
	Quantity               int        `json:"quantity,omitempty"`
	StartDate              *time.Time `json:"startDate,omitempty"`
	ExpectedCompletionDate *time.Time `json:"expectedCompletionDate,omitempty"`
	ActualCompletionDate   *time.Time `json:"actualCompletionDate,omitempty"`
	AssignedLine           string     `json:"assignedLine,omitempty"`
	CompletionPercentage   float64    `json:"completionPercentage"`
	Notes                  string     `json:"notes,omitempty"`
	CreatedAt              time.Time  `json:"createdAt"`
	UpdatedAt              time.Time  `json:"updatedAt"`
}
