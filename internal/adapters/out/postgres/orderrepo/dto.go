// Package orderrepo provides data transfer objects and mapping functions
// for purchase order persistence.
package orderrepo

import (
	"time"

	"vehicletrack/internal/core/domain/model/kernel"
	"vehicletrack/internal/core/domain/model/order"

	"github.com/google/uuid"
)

// PurchaseOrderDTO represents the database structure for persisting purchase
// order aggregates.
type PurchaseOrderDTO struct {
	ID                   uuid.UUID `gorm:"type:uuid;primaryKey"`
	OrderNumber          string    `gorm:"uniqueIndex;size:64"`
	CustomerID           string    `gorm:"index;size:64"`
	CustomerName         string
	CustomerEmail        string
	CustomerPhone        string
	VehicleVIN           string `gorm:"column:vehicle_vin;size:64"`
	VehicleModel         string
	VehicleMake          string
	VehicleYear          int
	VehicleColor         string
	TotalPrice           float64
	DepositAmount        float64
	Status               string `gorm:"index;size:32"`
	OrderDate            time.Time
	ExpectedDeliveryDate *time.Time
	ActualDeliveryDate   *time.Time
	DeliveryAddress      string
	Notes                string
	CreatedAt            time.Time
	UpdatedAt            time.Time
}

// TableName overrides GORM's default naming to use "purchase_orders".
func (PurchaseOrderDTO) TableName() string {
	return "purchase_orders"
}

// fromDomain converts a purchase order aggregate to its database
// representation.
func fromDomain(aggregate *order.PurchaseOrder) PurchaseOrderDTO {
	customer := aggregate.Customer()
	vehicleInfo := aggregate.Vehicle()
	details := aggregate.Details()

	return PurchaseOrderDTO{
		ID:                   aggregate.ID().Bytes(),
		OrderNumber:          aggregate.OrderNumber(),
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
		Status:               aggregate.Status().String(),
		OrderDate:            aggregate.OrderDate(),
		ExpectedDeliveryDate: details.ExpectedDeliveryDate,
		ActualDeliveryDate:   aggregate.ActualDeliveryDate(),
		DeliveryAddress:      details.DeliveryAddress,
		Notes:                details.Notes,
		CreatedAt:            aggregate.CreatedAt(),
		UpdatedAt:            aggregate.UpdatedAt(),
	}
}

// toDomain converts a database DTO to a purchase order aggregate.
func toDomain(dto PurchaseOrderDTO) (*order.PurchaseOrder, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	status, err := order.StatusFromString(dto.Status)
	if err != nil {
		return nil, err
	}

	return order.RestorePurchaseOrder(
		id,
		dto.OrderNumber,
		order.Customer{
			ID:    dto.CustomerID,
			Name:  dto.CustomerName,
			Email: dto.CustomerEmail,
			Phone: dto.CustomerPhone,
		},
		order.VehicleInfo{
			VIN:   dto.VehicleVIN,
			Model: dto.VehicleModel,
			Make:  dto.VehicleMake,
			Year:  dto.VehicleYear,
			Color: dto.VehicleColor,
		},
		status,
		order.Details{
			TotalPrice:           dto.TotalPrice,
			DepositAmount:        dto.DepositAmount,
			DeliveryAddress:      dto.DeliveryAddress,
			ExpectedDeliveryDate: dto.ExpectedDeliveryDate,
			Notes:                dto.Notes,
		},
		dto.OrderDate,
		dto.ActualDeliveryDate,
		dto.CreatedAt, dto.UpdatedAt,
	)
}
