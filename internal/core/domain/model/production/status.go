package production

import (
	"fmt"

	"vehicletrack/internal/pkg/errs"
)

// Status is the overall condition of a production order, independent of the
// build stage. It is freely assignable through the full-replace update path;
// AdvanceStage forces it to IN_PROGRESS, or COMPLETED on the terminal stage.
type Status int

const (
	// StatusUnknown catches uninitialized Status values.
	StatusUnknown Status = iota

	StatusPending
	StatusInProgress
	StatusOnHold
	StatusDelayed
	StatusQualityCheckFailed
	StatusCompleted
	StatusCancelled
)

// InitialStatus is the status assigned at creation when none is supplied.
const InitialStatus = StatusPending

func getStatusStrings() map[Status]string {
	return map[Status]string{
		StatusUnknown:            "UNKNOWN",
		StatusPending:            "PENDING",
		StatusInProgress:         "IN_PROGRESS",
		StatusOnHold:             "ON_HOLD",
		StatusDelayed:            "DELAYED",
		StatusQualityCheckFailed: "QUALITY_CHECK_FAILED",
		StatusCompleted:          "COMPLETED",
		StatusCancelled:          "CANCELLED",
	}
}

// StatusFromString parses the canonical upper-snake representation.
func StatusFromString(s string) (Status, error) {
	for status, str := range getStatusStrings() {
		if str == s && status != StatusUnknown {
			return status, nil
		}
	}
	return StatusUnknown, errs.NewValueIsInvalidErrorWithCause("status",
		fmt.Errorf("%q is not a valid production status", s))
}

// String returns the canonical name of the status.
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
