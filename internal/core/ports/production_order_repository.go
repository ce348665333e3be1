package ports

import (
	"context"

	"vehicletrack/internal/core/domain/model/kernel"
	"vehicletrack/internal/core/domain/model/production"
)

// ProductionOrderRepository defines the persistence contract for production
// order aggregates.
type ProductionOrderRepository interface {
	// Add persists a new production order aggregate to storage.
	Add(ctx context.Context, aggregate *production.ProductionOrder) error

	// Update persists changes to an existing production order aggregate.
	Update(ctx context.Context, aggregate *production.ProductionOrder) error

	// Get retrieves a production order aggregate by its unique identifier.
	Get(ctx context.Context, id kernel.UUID) (*production.ProductionOrder, error)

	// GetByOrderNumber retrieves a production order by its order number.
	GetByOrderNumber(ctx context.Context, orderNumber string) (*production.ProductionOrder, error)

	// Delete removes a production order aggregate from storage.
	Delete(ctx context.Context, id kernel.UUID) error
}
