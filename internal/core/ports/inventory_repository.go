package ports

import (
	"context"

	"vehicletrack/internal/core/domain/model/inventory"
	"vehicletrack/internal/core/domain/model/kernel"
)

// InventoryRepository defines the persistence contract for inventory item
// aggregates.
type InventoryRepository interface {
	// Add persists a new inventory item aggregate to storage.
	Add(ctx context.Context, aggregate *inventory.InventoryItem) error

	// Update persists changes to an existing inventory item aggregate.
	Update(ctx context.Context, aggregate *inventory.InventoryItem) error

	// Get retrieves an inventory item aggregate by its unique identifier.
	Get(ctx context.Context, id kernel.UUID) (*inventory.InventoryItem, error)

	// GetByPartNumber retrieves an inventory item by its part number.
	GetByPartNumber(ctx context.Context, partNumber string) (*inventory.InventoryItem, error)

	// Delete removes an inventory item aggregate from storage.
	Delete(ctx context.Context, id kernel.UUID) error
}
