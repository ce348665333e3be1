// Package productionrepo provides data transfer objects and mapping
// functions for production order persistence.
package productionrepo

import (
	"time"

	"vehicletrack/internal/core/domain/model/kernel"
	"vehicletrack/internal/core/domain/model/production"

	"github.com/google/uuid"
)

// ProductionOrderDTO represents the database structure for persisting
// production order aggregates. Stage and status are stored as their
// canonical upper-snake strings.
type ProductionOrderDTO struct {
	ID                     uuid.UUID `gorm:"type:uuid;primaryKey"`
	OrderNumber            string    `gorm:"uniqueIndex;size:64"`
	VehicleVIN             string    `gorm:"column:vehicle_vin;size:64"`
	VehicleModel           string
	VehicleMake            string
	Quantity               int
	CurrentStage           string `gorm:"index;size:32"`
	Status                 string `gorm:"index;size:32"`
	CompletionPercentage   float64
	StartDate              *time.Time
	ExpectedCompletionDate *time.Time
	ActualCompletionDate   *time.Time
	AssignedLine           string
	Notes                  string
	CreatedAt              time.Time
	UpdatedAt              time.Time
}

// TableName overrides GORM's default naming to use "production_orders".
func (ProductionOrderDTO) TableName() string {
	return "production_orders"
}

// fromDomain converts a production order aggregate to its database
// representation.
func fromDomain(aggregate *production.ProductionOrder) ProductionOrderDTO {
	details := aggregate.Details()

	return ProductionOrderDTO{
		ID:                     aggregate.ID().Bytes(),
		OrderNumber:            aggregate.OrderNumber(),
		VehicleVIN:             details.VehicleVIN,
		VehicleModel:           details.VehicleModel,
		VehicleMake:            details.VehicleMake,
		Quantity:               details.Quantity,
		CurrentStage:           aggregate.CurrentStage().String(),
		Status:                 aggregate.Status().String(),
		CompletionPercentage:   aggregate.CompletionPercentage(),
		StartDate:              details.StartDate,
		ExpectedCompletionDate: details.ExpectedCompletionDate,
		ActualCompletionDate:   aggregate.ActualCompletionDate(),
		AssignedLine:           details.AssignedLine,
		Notes:                  details.Notes,
		CreatedAt:              aggregate.CreatedAt(),
		UpdatedAt:              aggregate.UpdatedAt(),
	}
}

// toDomain converts a database DTO to a production order aggregate.
func toDomain(dto ProductionOrderDTO) (*production.ProductionOrder, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	stage, err := production.StageFromString(dto.CurrentStage)
	if err != nil {
		return nil, err
	}

	status, err := production.StatusFromString(dto.Status)
	if err != nil {
		return nil, err
	}

	return production.RestoreProductionOrder(
		id,
		dto.OrderNumber,
		stage,
		status,
		dto.CompletionPercentage,
		dto.ActualCompletionDate,
		production.Details{
			VehicleVIN:             dto.VehicleVIN,
			VehicleModel:           dto.VehicleModel,
			VehicleMake:            dto.VehicleMake,
			Quantity:               dto.Quantity,
			StartDate:              dto.StartDate,
			ExpectedCompletionDate: dto.ExpectedCompletionDate,
			AssignedLine:           dto.AssignedLine,
			Notes:                  dto.Notes,
		},
		dto.CreatedAt, dto.UpdatedAt,
	)
}
