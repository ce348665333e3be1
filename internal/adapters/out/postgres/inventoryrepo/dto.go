// Package inventoryrepo provides data transfer objects and mapping
// functions for inventory item persistence. The stored status is whatever
// the aggregate last computed; rehydration trusts it as-is.
package inventoryrepo

import (
	"time"

	"vehicletrack/internal/core/domain/model/inventory"
	"vehicletrack/internal/core/domain/model/kernel"

	"github.com/google/uuid"
)

// InventoryItemDTO represents the database structure for persisting
// inventory item aggregates.
type InventoryItemDTO struct {
	ID              uuid.UUID `gorm:"type:uuid;primaryKey"`
	PartNumber      string    `gorm:"uniqueIndex;size:64"`
	PartName        string
	Category        string `gorm:"index;size:64"`
	Description     string
	QuantityInStock int
	ReorderLevel    int
	MaxStockLevel   int
	Supplier        string
	UnitPrice       float64
	Location        string
	Status          string `gorm:"index;size:32"`
	LastRestocked   *time.Time
	CreatedAt       time.Time
	UpdatedAt       time.Time
}

// TableName overrides GORM's default naming to use "inventory_items".
func (InventoryItemDTO) TableName() string {
	return "inventory_items"
}

// fromDomain converts an inventory item aggregate to its database
// representation.
func fromDomain(aggregate *inventory.InventoryItem) InventoryItemDTO {
	details := aggregate.Details()

	return InventoryItemDTO{
		ID:              aggregate.ID().Bytes(),
		PartNumber:      aggregate.PartNumber(),
		PartName:        details.PartName,
		Category:        details.Category,
		Description:     details.Description,
		QuantityInStock: details.QuantityInStock,
		ReorderLevel:    details.ReorderLevel,
		MaxStockLevel:   details.MaxStockLevel,
		Supplier:        details.Supplier,
		UnitPrice:       details.UnitPrice,
		Location:        details.Location,
		Status:          aggregate.Status().String(),
		LastRestocked:   aggregate.LastRestocked(),
		CreatedAt:       aggregate.CreatedAt(),
		UpdatedAt:       aggregate.UpdatedAt(),
	}
}

// toDomain converts a database DTO to an inventory item aggregate.
func toDomain(dto InventoryItemDTO) (*inventory.InventoryItem, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	status, err := inventory.StatusFromString(dto.Status)
	if err != nil {
		return nil, err
	}

	return inventory.RestoreItem(
		id,
		dto.PartNumber,
		inventory.Details{
			PartName:        dto.PartName,
			Category:        dto.Category,
			Description:     dto.Description,
			QuantityInStock: dto.QuantityInStock,
			ReorderLevel:    dto.ReorderLevel,
			MaxStockLevel:   dto.MaxStockLevel,
			Supplier:        dto.Supplier,
			UnitPrice:       dto.UnitPrice,
			Location:        dto.Location,
		},
		status,
		dto.LastRestocked,
		dto.CreatedAt, dto.UpdatedAt,
	)
}
