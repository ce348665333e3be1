package order

import (
	"errors"
	"time"

	"vehicletrack/internal/core/domain/model/kernel"
	"vehicletrack/internal/pkg/errs"
)

// ErrOrderIsNotConstructed is returned when a PurchaseOrder instance was not
// created through NewPurchaseOrder or RestorePurchaseOrder.
var ErrOrderIsNotConstructed = errors.New("PurchaseOrder must be created via NewPurchaseOrder constructor")

// Customer identifies the buyer on a purchase order.
type Customer struct {
	ID    string
	Name  string
	Email string
	Phone string
}

// VehicleInfo describes the vehicle being purchased. It is a denormalized
// copy, not a reference into the vehicle manager.
type VehicleInfo struct {
	VIN   string
	Model string
	Make  string
	Year  int
	Color string
}

// Details carries the remaining descriptive attributes of a purchase order.
type Details struct {
	TotalPrice           float64
	DepositAmount        float64
	DeliveryAddress      string
	ExpectedDeliveryDate *time.Time
	Notes                string
}

// PurchaseOrder is the aggregate root for a customer purchase. The order
// number is its immutable natural key. Unlike vehicles and production
// orders, purchase order mutations publish no events.
type PurchaseOrder struct {
	id                 kernel.UUID
	orderNumber        string
	customer           Customer
	vehicle            VehicleInfo
	details            Details
	status             Status
	orderDate          time.Time
	actualDeliveryDate *time.Time

	createdAt time.Time
	updatedAt time.Time

	isConstructed bool
}

// NewPurchaseOrder creates a purchase order dated now. A StatusUnknown
// status defaults to InitialStatus.
func NewPurchaseOrder(
	id kernel.UUID,
	orderNumber string,
	customer Customer,
	vehicle VehicleInfo,
	status Status,
	details Details,
) (*PurchaseOrder, error) {
	now := time.Now()

	o := &PurchaseOrder{
		customer:      customer,
		vehicle:       vehicle,
		details:       details,
		orderDate:     now,
		createdAt:     now,
		updatedAt:     now,
		isConstructed: true,
	}

	if status == StatusUnknown {
		status = InitialStatus
	}

	if err := errors.Join(
		o.setID(id),
		o.setOrderNumber(orderNumber),
		o.setStatus(status),
	); err != nil {
		return nil, err
	}

	return o, nil
}

// RestorePurchaseOrder rehydrates a purchase order from persistence.
func RestorePurchaseOrder(
	id kernel.UUID,
	orderNumber string,
	customer Customer,
	vehicle VehicleInfo,
	status Status,
	details Details,
	orderDate time.Time,
	actualDeliveryDate *time.Time,
	createdAt, updatedAt time.Time,
) (*PurchaseOrder, error) {
	o := &PurchaseOrder{
		customer:           customer,
		vehicle:            vehicle,
		details:            details,
		orderDate:          orderDate,
		actualDeliveryDate: actualDeliveryDate,
		createdAt:          createdAt,
		updatedAt:          updatedAt,
		isConstructed:      true,
	}

	if err := errors.Join(
		o.setID(id),
		o.setOrderNumber(orderNumber),
		o.setStatus(status),
	); err != nil {
		return nil, err
	}

	return o, nil
}

// Validate ensures the instance came from a constructor.
func (o *PurchaseOrder) Validate() error {
	if o == nil || !o.isConstructed {
		return ErrOrderIsNotConstructed
	}
	return nil
}

// IsEqual compares two purchase orders by identifier.
func (o *PurchaseOrder) IsEqual(other *PurchaseOrder) bool {
	return other != nil && o.id.IsEqual(other.id)
}

// ID returns the surrogate identifier.
func (o *PurchaseOrder) ID() kernel.UUID { return o.id }

// OrderNumber returns the immutable natural key.
func (o *PurchaseOrder) OrderNumber() string { return o.orderNumber }

// Customer returns the buyer information.
func (o *PurchaseOrder) Customer() Customer { return o.customer }

// Vehicle returns the denormalized vehicle description.
func (o *PurchaseOrder) Vehicle() VehicleInfo { return o.vehicle }

// Details returns the remaining descriptive attributes.
func (o *PurchaseOrder) Details() Details { return o.details }

// Status returns the current fulfillment status.
func (o *PurchaseOrder) Status() Status { return o.status }

// OrderDate returns the placement timestamp.
func (o *PurchaseOrder) OrderDate() time.Time { return o.orderDate }

// ActualDeliveryDate returns the delivery milestone timestamp, nil until the
// order has been set to DELIVERED.
func (o *PurchaseOrder) ActualDeliveryDate() *time.Time { return o.actualDeliveryDate }

// CreatedAt returns the creation timestamp.
func (o *PurchaseOrder) CreatedAt() time.Time { return o.createdAt }

// UpdatedAt returns the last mutation timestamp.
func (o *PurchaseOrder) UpdatedAt() time.Time { return o.updatedAt }

// ChangeStatus overwrites the status unconditionally. Setting DELIVERED
// stamps the actual delivery date; no other status has a side effect.
func (o *PurchaseOrder) ChangeStatus(status Status) error {
	if err := o.setStatus(status); err != nil {
		return err
	}

	if status == StatusDelivered {
		now := time.Now()
		o.actualDeliveryDate = &now
	}

	o.touch()
	return nil
}

// UpdateDetails replaces the customer, vehicle and descriptive fields plus
// the status wholesale. The actual delivery date is not touched here; only
// ChangeStatus stamps it.
func (o *PurchaseOrder) UpdateDetails(
	customer Customer,
	vehicle VehicleInfo,
	status Status,
	details Details,
) error {
	if err := o.setStatus(status); err != nil {
		return err
	}

	o.customer = customer
	o.vehicle = vehicle
	o.details = details
	o.touch()
	return nil
}

func (o *PurchaseOrder) touch() {
	o.updatedAt = time.Now()
}

func (o *PurchaseOrder) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	o.id = id
	return nil
}

func (o *PurchaseOrder) setOrderNumber(orderNumber string) error {
	if orderNumber == "" {
		return errs.NewValueIsRequiredError("orderNumber")
	}
	o.orderNumber = orderNumber
	return nil
}

func (o *PurchaseOrder) setStatus(status Status) error {
	if err := status.Validate(); err != nil {
		return err
	}
	o.status = status
	return nil
}
