package inventoryrepo

import (
	"context"
	"errors"

	"vehicletrack/internal/core/domain/model/inventory"
	"vehicletrack/internal/core/domain/model/kernel"
	"vehicletrack/internal/pkg/errs"

	"gorm.io/gorm"
)

// GormInventoryRepository implements InventoryRepository using GORM.
type GormInventoryRepository struct {
	db      *gorm.DB
	tracker aggregateTracker
}

// aggregateTracker defines the interface for tracking aggregates.
type aggregateTracker interface {
	TrackAggregate(id kernel.UUID, aggregate any)
}

// NewGormInventoryRepository creates a new GORM inventory repository.
func NewGormInventoryRepository(db *gorm.DB, tracker aggregateTracker) *GormInventoryRepository {
	return &GormInventoryRepository{
		db:      db,
		tracker: tracker,
	}
}

// Add saves a new inventory item to the database.
func (r *GormInventoryRepository) Add(ctx context.Context, aggregate *inventory.InventoryItem) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	if err := r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		return err
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

// Update saves an existing inventory item to the database.
func (r *GormInventoryRepository) Update(ctx context.Context, aggregate *inventory.InventoryItem) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	// Select("*") forces zero-valued columns into the SET clause; a plain
	// struct update skips them.
	dto := fromDomain(aggregate)
	result := r.db.WithContext(ctx).Model(&InventoryItemDTO{}).Where("id = ?", dto.ID).Select("*").Updates(&dto)
	if result.Error != nil {
		return result.Error
	}

	if result.RowsAffected == 0 {
		return errs.NewObjectNotFoundError("inventoryItem", aggregate.ID().String())
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

// Get retrieves an inventory item by ID.
func (r *GormInventoryRepository) Get(ctx context.Context, id kernel.UUID) (*inventory.InventoryItem, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	var dto InventoryItemDTO
	if err := r.db.WithContext(ctx).First(&dto, "id = ?", id.Bytes()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("inventoryItem", id.String())
		}
		return nil, err
	}

	return toDomain(dto)
}

// GetByPartNumber retrieves an inventory item by its part number.
func (r *GormInventoryRepository) GetByPartNumber(ctx context.Context, partNumber string) (*inventory.InventoryItem, error) {
	if partNumber == "" {
		return nil, errs.NewValueIsRequiredError("partNumber")
	}

	var dto InventoryItemDTO
	if err := r.db.WithContext(ctx).First(&dto, "part_number = ?", partNumber).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("partNumber", partNumber)
		}
		return nil, err
	}

	return toDomain(dto)
}

// Delete removes an inventory item from the database.
func (r *GormInventoryRepository) Delete(ctx context.Context, id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}

	result := r.db.WithContext(ctx).Delete(&InventoryItemDTO{}, "id = ?", id.Bytes())
	if result.Error != nil {
		return result.Error
	}

	if result.RowsAffected == 0 {
		return errs.NewObjectNotFoundError("inventoryItem", id.String())
	}

	return nil
}
