package production

import (
	"errors"
	"time"

	"vehicletrack/internal/core/domain/model/kernel"
	"vehicletrack/internal/pkg/errs"
)

// ErrOrderIsNotConstructed is returned when a ProductionOrder instance was
// not created through NewProductionOrder or RestoreProductionOrder.
var ErrOrderIsNotConstructed = errors.New("ProductionOrder must be created via NewProductionOrder constructor")

// Details carries the descriptive attributes of a production order that play
// no role in the stage machine.
type Details struct {
	VehicleVIN             string
	VehicleModel           string
	VehicleMake            string
	Quantity               int
	StartDate              *time.Time
	ExpectedCompletionDate *time.Time
	AssignedLine           string
	Notes                  string
}

// ProductionOrder is the aggregate root driving a vehicle build through its
// manufacturing stages. The order number is its immutable natural key.
//
// Invariants:
//   - completionPercentage equals the stage's table value whenever the stage
//     was set through AdvanceStage; the full-replace update path may write
//     inconsistent pairs on purpose
//   - actualCompletionDate is stamped by the transition into the terminal
//     stage and never cleared afterwards
//   - updatedAt moves forward on every mutation
type ProductionOrder struct {
	id                   kernel.UUID
	orderNumber          string
	details              Details
	currentStage         Stage
	status               Status
	completionPercentage float64
	actualCompletionDate *time.Time

	createdAt time.Time
	updatedAt time.Time

	isConstructed bool
}

// NewProductionOrder creates a production order with fresh timestamps.
// Zero-valued stage, status and completion default to StagePlanning,
// StatusPending and 0.0.
func NewProductionOrder(
	id kernel.UUID,
	orderNumber string,
	stage Stage,
	status Status,
	completionPercentage float64,
	details Details,
) (*ProductionOrder, error) {
	now := time.Now()

	o := &ProductionOrder{
		details:       details,
		createdAt:     now,
		updatedAt:     now,
		isConstructed: true,
	}

	if stage == StageUnknown {
		stage = InitialStage
	}
	if status == StatusUnknown {
		status = InitialStatus
	}

	if err := errors.Join(
		o.setID(id),
		o.setOrderNumber(orderNumber),
		o.setStage(stage),
		o.setStatus(status),
		o.setCompletionPercentage(completionPercentage),
	); err != nil {
		return nil, err
	}

	return o, nil
}

// RestoreProductionOrder rehydrates a production order from persistence.
func RestoreProductionOrder(
	id kernel.UUID,
	orderNumber string,
	stage Stage,
	status Status,
	completionPercentage float64,
	actualCompletionDate *time.Time,
	details Details,
	createdAt, updatedAt time.Time,
) (*ProductionOrder, error) {
	o := &ProductionOrder{
		details:              details,
		actualCompletionDate: actualCompletionDate,
		createdAt:            createdAt,
		updatedAt:            updatedAt,
		isConstructed:        true,
	}

	if err := errors.Join(
		o.setID(id),
		o.setOrderNumber(orderNumber),
		o.setStage(stage),
		o.setStatus(status),
		o.setCompletionPercentage(completionPercentage),
	); err != nil {
		return nil, err
	}

	return o, nil
}

// Validate ensures the instance came from a constructor.
func (o *ProductionOrder) Validate() error {
	if o == nil || !o.isConstructed {
		return ErrOrderIsNotConstructed
	}
	return nil
}

// IsEqual compares two production orders by identifier.
func (o *ProductionOrder) IsEqual(other *ProductionOrder) bool {
	return other != nil && o.id.IsEqual(other.id)
}

// ID returns the surrogate identifier.
func (o *ProductionOrder) ID() kernel.UUID { return o.id }

// OrderNumber returns the immutable natural key.
func (o *ProductionOrder) OrderNumber() string { return o.orderNumber }

// Details returns the descriptive attributes.
func (o *ProductionOrder) Details() Details { return o.details }

// CurrentStage returns the manufacturing stage the order is in.
func (o *ProductionOrder) CurrentStage() Stage { return o.currentStage }

// Status returns the order condition, independent of stage.
func (o *ProductionOrder) Status() Status { return o.status }

// CompletionPercentage returns the build progress figure.
func (o *ProductionOrder) CompletionPercentage() float64 { return o.completionPercentage }

// ActualCompletionDate returns the terminal-stage timestamp, nil until the
// order has reached StageCompleted through AdvanceStage.
func (o *ProductionOrder) ActualCompletionDate() *time.Time { return o.actualCompletionDate }

// CreatedAt returns the creation timestamp.
func (o *ProductionOrder) CreatedAt() time.Time { return o.createdAt }

// UpdatedAt returns the last mutation timestamp.
func (o *ProductionOrder) UpdatedAt() time.Time { return o.updatedAt }

// AdvanceStage moves the order to newStage. Any valid stage is accepted,
// including jumps ahead and regressions; the status is forced to IN_PROGRESS
// and the completion percentage is recomputed from the stage table. Reaching
// StageCompleted overrides the status to COMPLETED and stamps the actual
// completion date.
func (o *ProductionOrder) AdvanceStage(newStage Stage) error {
	if err := newStage.Validate(); err != nil {
		return err
	}

	o.currentStage = newStage
	o.status = StatusInProgress
	o.completionPercentage = newStage.Percentage()

	if newStage == StageCompleted {
		o.status = StatusCompleted
		now := time.Now()
		o.actualCompletionDate = &now
	}

	o.touch()
	return nil
}

// UpdateDetails is the full-replace path: it overwrites the descriptive
// fields, stage, status, completion percentage and actual completion date
// wholesale. Stage and completion are written as given, so inconsistent
// pairs are accepted here; derivation happens only in AdvanceStage.
func (o *ProductionOrder) UpdateDetails(
	stage Stage,
	status Status,
	completionPercentage float64,
	actualCompletionDate *time.Time,
	details Details,
) error {
	if err := errors.Join(
		o.setStage(stage),
		o.setStatus(status),
		o.setCompletionPercentage(completionPercentage),
	); err != nil {
		return err
	}

	o.actualCompletionDate = actualCompletionDate
	o.details = details
	o.touch()
	return nil
}

func (o *ProductionOrder) touch() {
	o.updatedAt = time.Now()
}

func (o *ProductionOrder) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	o.id = id
	return nil
}

func (o *ProductionOrder) setOrderNumber(orderNumber string) error {
	if orderNumber == "" {
		return errs.NewValueIsRequiredError("orderNumber")
	}
	o.orderNumber = orderNumber
	return nil
}

func (o *ProductionOrder) setStage(stage Stage) error {
	if err := stage.Validate(); err != nil {
		return err
	}
	o.currentStage = stage
	return nil
}

func (o *ProductionOrder) setStatus(status Status) error {
	if err := status.Validate(); err != nil {
		return err
	}
	o.status = status
	return nil
}

func (o *ProductionOrder) setCompletionPercentage(completionPercentage float64) error {
	if completionPercentage < 0 || completionPercentage > 100 {
		return errs.NewValueIsOutOfRangeError("completionPercentage", completionPercentage, 0, 100)
	}
	o.completionPercentage = completionPercentage
	return nil
}

// Snapshot is the serializable view of a production order used as event
// payload.
type Snapshot struct {
	ID                     string     `json:"id"`
	OrderNumber            string     `json:"orderNumber"`
	VehicleVIN             string     `json:"vehicleVin,omitempty"`
	VehicleModel           string     `json:"vehicleModel,omitempty"`
	VehicleMake            string     `json:"vehicleMake,omitempty"`
	CurrentStage           string     `json:"currentStage"`
	Status                 string     `json:"status"`
	Quantity               int        `json:"quantity,omitempty"`
	StartDate              *time.Time `json:"startDate,omitempty"`
	ExpectedCompletionDate *time.Time `json:"expectedCompletionDate,omitempty"`
	ActualCompletionDate   *time.Time `json:"actualCompletionDate,omitempty"`
	AssignedLine           string     `json:"assignedLine,omitempty"`
	CompletionPercentage   float64    `json:"completionPercentage"`
	Notes                  string     `json:"notes,omitempty"`
	CreatedAt              time.Time  `json:"createdAt"`
	UpdatedAt              time.Time  `json:"updatedAt"`
}

// Snapshot returns a point-in-time copy of the production order state.
func (o *ProductionOrder) Snapshot() Snapshot {
	return Snapshot{
		ID:                     o.id.String(),
		OrderNumber:            o.orderNumber,
		VehicleVIN:             o.details.VehicleVIN,
		VehicleModel:           o.details.VehicleModel,
		VehicleMake:            o.details.VehicleMake,
		CurrentStage:           o.currentStage.String(),
		Status:                 o.status.String(),
		Quantity:               o.details.Quantity,
		StartDate:              o.details.StartDate,
		ExpectedCompletionDate: o.details.ExpectedCompletionDate,
		ActualCompletionDate:   o.actualCompletionDate,
		AssignedLine:           o.details.AssignedLine,
		CompletionPercentage:   o.completionPercentage,
		Notes:                  o.details.Notes,
		CreatedAt:              o.createdAt,
		UpdatedAt:              o.updatedAt,
	}
}
