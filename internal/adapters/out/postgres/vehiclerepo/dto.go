// Package vehiclerepo provides data transfer objects and mapping functions
// for vehicle persistence. Statuses are stored as their canonical
// upper-snake strings so the rows stay readable and queryable without the
// enumeration.
package vehiclerepo

import (
	"time"

	"vehicletrack/internal/core/domain/model/kernel"
	"vehicletrack/internal/core/domain/model/vehicle"

	"github.com/google/uuid"
)

// VehicleDTO represents the database structure for persisting vehicle
// aggregates.
type VehicleDTO struct {
	ID                uuid.UUID `gorm:"type:uuid;primaryKey"`
	VIN               string    `gorm:"uniqueIndex;size:64"`
	Model             string
	Make              string
	Year              int
	Color             string
	VehicleType       string
	EngineType        string
	Transmission      string
	Price             float64
	Status            string `gorm:"index;size:32"`
	ManufacturingDate *time.Time
	CreatedAt         time.Time
	UpdatedAt         time.Time
}

// TableName overrides GORM's default naming to use "vehicles".
func (VehicleDTO) TableName() string {
	return "vehicles"
}

// fromDomain converts a vehicle aggregate to its database representation.
func fromDomain(aggregate *vehicle.Vehicle) VehicleDTO {
	details := aggregate.Details()

	return VehicleDTO{
		ID:                aggregate.ID().Bytes(),
		VIN:               aggregate.VIN(),
		Model:             aggregate.Model(),
		Make:              aggregate.Make(),
		Year:              aggregate.Year(),
		Color:             aggregate.Color(),
		VehicleType:       aggregate.VehicleType(),
		EngineType:        details.EngineType,
		Transmission:      details.Transmission,
		Price:             details.Price,
		Status:            aggregate.Status().String(),
		ManufacturingDate: details.ManufacturingDate,
		CreatedAt:         aggregate.CreatedAt(),
		UpdatedAt:         aggregate.UpdatedAt(),
	}
}

// toDomain converts a database DTO to a vehicle aggregate.
func toDomain(dto VehicleDTO) (*vehicle.Vehicle, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	status, err := vehicle.StatusFromString(dto.Status)
	if err != nil {
		return nil, err
	}

	return vehicle.RestoreVehicle(
		id,
		dto.VIN, dto.Model, dto.Make,
		dto.Year,
		dto.Color, dto.VehicleType,
		status,
		vehicle.Details{
			EngineType:        dto.EngineType,
			Transmission:      dto.Transmission,
			Price:             dto.Price,
			ManufacturingDate: dto.ManufacturingDate,
		},
		dto.CreatedAt, dto.UpdatedAt,
	)
}
