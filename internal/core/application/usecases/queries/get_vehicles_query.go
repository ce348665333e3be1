// Package queries contains read-side operations of the CQRS split. Query
// handlers bypass the aggregates and read projections straight from the
// database.
package queries

import (
	"errors"
	"time"

	"vehicletrack/internal/core/domain/model/vehicle"
	"vehicletrack/internal/pkg/guard"
)

var ErrGetVehiclesQueryIsNotConstructed = errors.New(
	"GetVehiclesQuery must be created via NewGetVehiclesQuery constructor",
)

// VehiclesFilter narrows a vehicle listing. Zero-valued fields are ignored;
// a non-empty status must be a valid enumeration member.
type VehiclesFilter struct {
	Status string
	Make   string
	Model  string
	Year   int
	VIN    string
}

// GetVehiclesQuery retrieves vehicles matching an optional filter.
type GetVehiclesQuery struct {
	filter VehiclesFilter

	guard guard.ConstructorGuard
}

// NewGetVehiclesQuery creates a query to list vehicles. A non-empty status
// filter is validated against the enumeration so typos fail fast instead of
// silently matching nothing.
func NewGetVehiclesQuery(filter VehiclesFilter) (GetVehiclesQuery, error) {
	if filter.Status != "" {
		if _, err := vehicle.StatusFromString(filter.Status); err != nil {
			return GetVehiclesQuery{}, err
		}
	}

	return GetVehiclesQuery{
		filter: filter,
		guard:  guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
func (q GetVehiclesQuery) Validate() error {
	return q.guard.Validate(ErrGetVehiclesQueryIsNotConstructed)
}

// Filter returns the listing filter.
func (q GetVehiclesQuery) Filter() VehiclesFilter {
	return q.filter
}

// GetVehiclesQueryResponse is the read model for a vehicle row.
type GetVehiclesQueryResponse struct {
	ID                string     `json:"id"`
	VIN               string     `json:"vin"`
	Model             string     `json:"model"`
	Make              string     `json:"make"`
	Year              int        `json:"year"`
	Color             string     `json:"color"`
	Type              string     `json:"type"`
	EngineType        string     `json:"engineType,omitempty"`
	Transmission      string     `json:"transmission,omitempty"`
	Price             float64    `json:"price,omitempty"`
	Status            string     `json:"status"`
	ManufacturingDate *time.Time `json:"manufacturingDate,omitempty"`
	CreatedAt         time.Time  `json:"createdAt"`
	UpdatedAt         time.Time  `json:"updatedAt"`
}
