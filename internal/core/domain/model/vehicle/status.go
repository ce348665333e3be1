package vehicle

import (
	"fmt"

	"vehicletrack/internal/pkg/errs"
)

// Status represents the production and delivery state of a vehicle.
//
// The intended domain sequence is:
//
//	IN_PRODUCTION -> QUALITY_CHECK -> READY_FOR_DELIVERY -> SHIPPED ->
//	DELIVERED -> IN_SERVICE -> MAINTENANCE_REQUIRED -> RETIRED
//
// The sequence is documentation, not a constraint: any valid status may be
// assigned from any other. Only membership in the enumeration is validated.
type Status int

const (
	// StatusUnknown catches uninitialized Status values. It is not a valid
	// assignment target.
	StatusUnknown Status = iota

	StatusInProduction
	StatusQualityCheck
	StatusReadyForDelivery
	StatusShipped
	StatusDelivered
	StatusInService
	StatusMaintenanceRequired
	StatusRetired
)

// InitialStatus is the status assigned at creation when none is supplied.
const InitialStatus = StatusInProduction

func getStatusStrings() map[Status]string {
	return map[Status]string{
		StatusUnknown:             "UNKNOWN",
		StatusInProduction:        "IN_PRODUCTION",
		StatusQualityCheck:        "QUALITY_CHECK",
		StatusReadyForDelivery:    "READY_FOR_DELIVERY",
		StatusShipped:             "SHIPPED",
		StatusDelivered:           "DELIVERED",
		StatusInService:           "IN_SERVICE",
		StatusMaintenanceRequired: "MAINTENANCE_REQUIRED",
		StatusRetired:             "RETIRED",
	}
}

// StatusFromString parses the canonical upper-snake representation used on
// the wire and in storage.
func StatusFromString(s string) (Status, error) {
	for status, str := range getStatusStrings() {
		if str == s && status != StatusUnknown {
			return status, nil
		}
	}
	return StatusUnknown, errs.NewValueIsInvalidErrorWithCause("status",
		fmt.Errorf("%q is not a valid vehicle status", s))
}

// String returns the canonical name of the status, implementing fmt.Stringer.
func (s Status) String() string {
	if str, ok := getStatusStrings()[s]; ok {
		return str
	}
	return "UNKNOWN"
}

// Validate checks membership in the enumeration. StatusUnknown is invalid.
func (s Status) Validate() error {
	if s == StatusUnknown {
		return errs.NewValueIsInvalidErrorWithCause("status",
			fmt.Errorf("%d is not a valid status", s))
	}
	if _, ok := getStatusStrings()[s]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("status",
			fmt.Errorf("%d is not a valid status", s))
	}
	return nil
}
