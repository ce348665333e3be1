package vehicle

import (
	"errors"
	"time"

	"vehicletrack/internal/core/domain/model/kernel"
	"vehicletrack/internal/pkg/errs"
)

// ErrVehicleIsNotConstructed is returned when a Vehicle instance was not
// created through NewVehicle or RestoreVehicle.
var ErrVehicleIsNotConstructed = errors.New("Vehicle must be created via NewVehicle constructor")

// Details carries the descriptive attributes of a vehicle that play no role
// in the lifecycle state machine. All of them are optional.
type Details struct {
	EngineType        string
	Transmission      string
	Price             float64
	ManufacturingDate *time.Time
}

// Vehicle is the aggregate root for a tracked vehicle. The VIN is its
// immutable natural key; the status is freely assignable within the
// enumeration. Invariants:
//   - VIN, model, make, year, color and type are always present
//   - status is never StatusUnknown after construction
//   - updatedAt moves forward on every mutation
type Vehicle struct {
	id          kernel.UUID
	vin         string
	model       string
	make        string
	year        int
	color       string
	vehicleType string
	details     Details
	status      Status

	createdAt time.Time
	updatedAt time.Time

	isConstructed bool
}

// NewVehicle creates a vehicle with fresh timestamps. The required fields are
// vin, model, make, year, color and vehicleType; a StatusUnknown status
// defaults to InitialStatus.
func NewVehicle(
	id kernel.UUID,
	vin, model, mk string,
	year int,
	color, vehicleType string,
	status Status,
	details Details,
) (*Vehicle, error) {
	now := time.Now()

	v := &Vehicle{
		details:       details,
		createdAt:     now,
		updatedAt:     now,
		isConstructed: true,
	}

	if status == StatusUnknown {
		status = InitialStatus
	}

	if err := errors.Join(
		v.setID(id),
		v.setVIN(vin),
		v.setDescriptiveFields(model, mk, year, color, vehicleType),
		v.setStatus(status),
	); err != nil {
		return nil, err
	}

	return v, nil
}

// RestoreVehicle rehydrates a vehicle from persistence, keeping the stored
// timestamps.
func RestoreVehicle(
	id kernel.UUID,
	vin, model, mk string,
	year int,
	color, vehicleType string,
	status Status,
	details Details,
	createdAt, updatedAt time.Time,
) (*Vehicle, error) {
	v := &Vehicle{
		details:       details,
		createdAt:     createdAt,
		updatedAt:     updatedAt,
		isConstructed: true,
	}

	if err := errors.Join(
		v.setID(id),
		v.setVIN(vin),
		v.setDescriptiveFields(model, mk, year, color, vehicleType),
		v.setStatus(status),
	); err != nil {
		return nil, err
	}

	return v, nil
}

// Validate ensures the instance came from a constructor.
func (v *Vehicle) Validate() error {
	if v == nil || !v.isConstructed {
		return ErrVehicleIsNotConstructed
	}
	return nil
}

// IsEqual compares two vehicles by identifier.
func (v *Vehicle) IsEqual(other *Vehicle) bool {
	return other != nil && v.id.IsEqual(other.id)
}

// ID returns the surrogate identifier.
func (v *Vehicle) ID() kernel.UUID { return v.id }

// VIN returns the immutable natural key.
func (v *Vehicle) VIN() string { return v.vin }

// Model returns the vehicle model name.
func (v *Vehicle) Model() string { return v.model }

// Make returns the manufacturer name.
func (v *Vehicle) Make() string { return v.make }

// Year returns the model year.
func (v *Vehicle) Year() int { return v.year }

// Color returns the exterior color.
func (v *Vehicle) Color() string { return v.color }

// VehicleType returns the body type, for example "Sedan".
func (v *Vehicle) VehicleType() string { return v.vehicleType }

// Details returns the optional descriptive attributes.
func (v *Vehicle) Details() Details { return v.details }

// Status returns the current lifecycle status.
func (v *Vehicle) Status() Status { return v.status }

// CreatedAt returns the creation timestamp.
func (v *Vehicle) CreatedAt() time.Time { return v.createdAt }

// UpdatedAt returns the last mutation timestamp.
func (v *Vehicle) UpdatedAt() time.Time { return v.updatedAt }

// UpdateDetails replaces every descriptive field and the status wholesale.
// Empty optional fields in details overwrite existing values; this is a full
// replace, not a merge.
func (v *Vehicle) UpdateDetails(
	model, mk string,
	year int,
	color, vehicleType string,
	status Status,
	details Details,
) error {
	if err := errors.Join(
		v.setDescriptiveFields(model, mk, year, color, vehicleType),
		v.setStatus(status),
	); err != nil {
		return err
	}

	v.details = details
	v.touch()
	return nil
}

// ChangeStatus overwrites the status unconditionally. Any valid member of the
// enumeration is accepted regardless of the current status.
func (v *Vehicle) ChangeStatus(status Status) error {
	if err := v.setStatus(status); err != nil {
		return err
	}

	v.touch()
	return nil
}

func (v *Vehicle) touch() {
	v.updatedAt = time.Now()
}

func (v *Vehicle) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	v.id = id
	return nil
}

func (v *Vehicle) setVIN(vin string) error {
	if vin == "" {
		return errs.NewValueIsRequiredError("vin")
	}
	v.vin = vin
	return nil
}

func (v *Vehicle) setDescriptiveFields(model, mk string, year int, color, vehicleType string) error {
	if model == "" {
		return errs.NewValueIsRequiredError("model")
	}
	if mk == "" {
		return errs.NewValueIsRequiredError("make")
	}
	if year == 0 {
		return errs.NewValueIsRequiredError("year")
	}
	if color == "" {
		return errs.NewValueIsRequiredError("color")
	}
	if vehicleType == "" {
		return errs.NewValueIsRequiredError("type")
	}

	v.model = model
	v.make = mk
	v.year = year
	v.color = color
	v.vehicleType = vehicleType
	return nil
}

func (v *Vehicle) setStatus(status Status) error {
	if err := status.Validate(); err != nil {
		return err
	}
	v.status = status
	return nil
}

// Snapshot is the serializable view of a vehicle used as event payload.
type Snapshot struct {
	ID                string     `json:"id"`
	VIN               string     `json:"vin"`
	Model             string     `json:"model"`
	Make              string     `json:"make"`
	Year              int        `json:"year"`
	Color             string     `json:"color"`
	Type              string     `json:"type"`
	EngineType        string     `json:"engineType,omitempty"`
	Transmission      string     `json:"transmission,omitempty"`
	Price             float64    `json:"price,omitempty"`
	Status            string     `json:"status"`
	ManufacturingDate *time.Time `json:"manufacturingDate,omitempty"`
	CreatedAt         time.Time  `json:"createdAt"`
	UpdatedAt         time.Time  `json:"updatedAt"`
}

// Snapshot returns a point-in-time copy of the vehicle state.
func (v *Vehicle) Snapshot() Snapshot {
	return Snapshot{
		ID:                v.id.String(),
		VIN:               v.vin,
		Model:             v.model,
		Make:              v.make,
		Year:              v.year,
		Color:             v.color,
		Type:              v.vehicleType,
		EngineType:        v.details.EngineType,
		Transmission:      v.details.Transmission,
		Price:             v.details.Price,
		Status:            v.status.String(),
		ManufacturingDate: v.details.ManufacturingDate,
		CreatedAt:         v.createdAt,
		UpdatedAt:         v.updatedAt,
	}
}
