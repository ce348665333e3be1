package ports

import (
	"context"

	"vehicletrack/internal/core/domain/model/kernel"
	"vehicletrack/internal/core/domain/model/order"
)

// OrderRepository defines the persistence contract for purchase order
// aggregates.
type OrderRepository interface {
	// Add persists a new purchase order aggregate to storage.
	Add(ctx context.Context, aggregate *order.PurchaseOrder) error

	// Update persists changes to an existing purchase order aggregate.
	Update(ctx context.Context, aggregate *order.PurchaseOrder) error

	// Get retrieves a purchase order aggregate by its unique identifier.
	Get(ctx context.Context, id kernel.UUID) (*order.PurchaseOrder, error)

	// GetByOrderNumber retrieves a purchase order by its order number.
	GetByOrderNumber(ctx context.Context, orderNumber string) (*order.PurchaseOrder, error)

	// Delete removes a purchase order aggregate from storage.
	Delete(ctx context.Context, id kernel.UUID) error
}
