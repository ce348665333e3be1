package ports

import (
	"context"

	"vehicletrack/internal/core/domain/model/kernel"
	"vehicletrack/internal/core/domain/model/vehicle"
)

// VehicleRepository defines the persistence contract for vehicle aggregates.
// Provides methods for storing and retrieving vehicles by identifier or VIN.
type VehicleRepository interface {
	// Add persists a new vehicle aggregate to storage.
	// The vehicle must be valid and not already exist in the repository.
	Add(ctx context.Context, aggregate *vehicle.Vehicle) error

	// Update persists changes to an existing vehicle aggregate.
	// The vehicle must exist in the repository and be valid.
	Update(ctx context.Context, aggregate *vehicle.Vehicle) error

	// Get retrieves a vehicle aggregate by its unique identifier.
	Get(ctx context.Context, id kernel.UUID) (*vehicle.Vehicle, error)

	// GetByVIN retrieves a vehicle aggregate by its VIN.
	// Used for uniqueness checks at creation and for natural-key lookups.
	GetByVIN(ctx context.Context, vin string) (*vehicle.Vehicle, error)

	// Delete removes a vehicle aggregate from storage.
	Delete(ctx context.Context, id kernel.UUID) error
}
