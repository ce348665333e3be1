package inventory

import (
	"errors"
	"time"

	"vehicletrack/internal/core/domain/model/kernel"
	"vehicletrack/internal/pkg/errs"
)

// ErrItemIsNotConstructed is returned when an InventoryItem instance was not
// created through NewItem or RestoreItem.
var ErrItemIsNotConstructed = errors.New("InventoryItem must be created via NewItem constructor")

// Details carries the attributes of an inventory item that feed the status
// derivation (quantity, reorder level) together with the purely descriptive
// ones. There is no status field here: the status cannot be supplied.
type Details struct {
	PartName        string
	Category        string
	Description     string
	QuantityInStock int
	ReorderLevel    int
	MaxStockLevel   int
	Supplier        string
	UnitPrice       float64
	Location        string
}

// InventoryItem is the aggregate root for a stocked part. The part number is
// its immutable natural key. The status is a computed field: UpdateDetails
// and AdjustStock recompute it from the quantity, and no method assigns it
// directly. Inventory mutations publish no events.
type InventoryItem struct {
	id            kernel.UUID
	partNumber    string
	details       Details
	status        Status
	lastRestocked *time.Time

	createdAt time.Time
	updatedAt time.Time

	isConstructed bool
}

// NewItem creates an inventory item with fresh timestamps. The status starts
// at InitialStatus without running the derivation, so an item created with
// quantity at or below its reorder level reports IN_STOCK until the first
// update recomputes it.
func NewItem(id kernel.UUID, partNumber string, details Details) (*InventoryItem, error) {
	now := time.Now()

	item := &InventoryItem{
		details:       details,
		status:        InitialStatus,
		createdAt:     now,
		updatedAt:     now,
		isConstructed: true,
	}

	if err := errors.Join(
		item.setID(id),
		item.setPartNumber(partNumber),
	); err != nil {
		return nil, err
	}

	return item, nil
}

// RestoreItem rehydrates an inventory item from persistence. The stored
// status is trusted as-is; derivation reruns on the next mutation.
func RestoreItem(
	id kernel.UUID,
	partNumber string,
	details Details,
	status Status,
	lastRestocked *time.Time,
	createdAt, updatedAt time.Time,
) (*InventoryItem, error) {
	item := &InventoryItem{
		details:       details,
		lastRestocked: lastRestocked,
		createdAt:     createdAt,
		updatedAt:     updatedAt,
		isConstructed: true,
	}

	if err := errors.Join(
		item.setID(id),
		item.setPartNumber(partNumber),
		item.setStatus(status),
	); err != nil {
		return nil, err
	}

	return item, nil
}

// Validate ensures the instance came from a constructor.
func (i *InventoryItem) Validate() error {
	if i == nil || !i.isConstructed {
		return ErrItemIsNotConstructed
	}
	return nil
}

// IsEqual compares two items by identifier.
func (i *InventoryItem) IsEqual(other *InventoryItem) bool {
	return other != nil && i.id.IsEqual(other.id)
}

// ID returns the surrogate identifier.
func (i *InventoryItem) ID() kernel.UUID { return i.id }

// PartNumber returns the immutable natural key.
func (i *InventoryItem) PartNumber() string { return i.partNumber }

// Details returns the item attributes.
func (i *InventoryItem) Details() Details { return i.details }

// QuantityInStock returns the current quantity.
func (i *InventoryItem) QuantityInStock() int { return i.details.QuantityInStock }

// ReorderLevel returns the threshold below which the item counts as low
// stock.
func (i *InventoryItem) ReorderLevel() int { return i.details.ReorderLevel }

// Status returns the derived stock status.
func (i *InventoryItem) Status() Status { return i.status }

// LastRestocked returns the most recent positive-adjustment timestamp, nil
// if stock was never added.
func (i *InventoryItem) LastRestocked() *time.Time { return i.lastRestocked }

// CreatedAt returns the creation timestamp.
func (i *InventoryItem) CreatedAt() time.Time { return i.createdAt }

// UpdatedAt returns the last mutation timestamp.
func (i *InventoryItem) UpdatedAt() time.Time { return i.updatedAt }

// UpdateDetails replaces the item attributes wholesale and recomputes the
// status from the new quantity and reorder level.
func (i *InventoryItem) UpdateDetails(details Details) error {
	i.details = details
	i.deriveStatus()
	i.touch()
	return nil
}

// AdjustStock applies a signed quantity delta. The arithmetic is unchecked:
// a negative delta may drive the quantity below zero. A positive delta
// stamps lastRestocked. The status is recomputed afterwards.
func (i *InventoryItem) AdjustStock(delta int) error {
	i.details.QuantityInStock += delta

	if delta > 0 {
		now := time.Now()
		i.lastRestocked = &now
	}

	i.deriveStatus()
	i.touch()
	return nil
}

func (i *InventoryItem) deriveStatus() {
	i.status = DeriveStatus(i.details.QuantityInStock, i.details.ReorderLevel)
}

func (i *InventoryItem) touch() {
	i.updatedAt = time.Now()
}

func (i *InventoryItem) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	i.id = id
	return nil
}

func (i *InventoryItem) setPartNumber(partNumber string) error {
	if partNumber == "" {
		return errs.NewValueIsRequiredError("partNumber")
	}
	i.partNumber = partNumber
	return nil
}

func (i *InventoryItem) setStatus(status Status) error {
	if err := status.Validate(); err != nil {
		return err
	}
	i.status = status
	return nil
}
