package order

import (
	"fmt"

	"vehicletrack/internal/pkg/errs"
)

// Status represents the fulfillment state of a customer purchase order.
//
// Intended sequence, with side branches:
//
//	PENDING -> CONFIRMED -> IN_PRODUCTION -> READY_FOR_DELIVERY ->
//	OUT_FOR_DELIVERY -> DELIVERED
//	(CANCELLED and REFUNDED may be entered from anywhere)
//
// As with vehicles, only membership is validated; transitions are free.
type Status int

const (
	// StatusUnknown catches uninitialized Status values.
	StatusUnknown Status = iota

	StatusPending
	StatusConfirmed
	StatusInProduction
	StatusReadyForDelivery
	StatusOutForDelivery
	StatusDelivered
	StatusCancelled
	StatusRefunded
)

// InitialStatus is the status assigned at creation when none is supplied.
const InitialStatus = StatusPending

func getStatusStrings() map[Status]string {
	return map[Status]string{
		StatusUnknown:          "UNKNOWN",
		StatusPending:          "PENDING",
		StatusConfirmed:        "CONFIRMED",
		StatusInProduction:     "IN_PRODUCTION",
		StatusReadyForDelivery: "READY_FOR_DELIVERY",
		StatusOutForDelivery:   "OUT_FOR_DELIVERY",
		StatusDelivered:        "DELIVERED",
		StatusCancelled:        "CANCELLED",
		StatusRefunded:         "REFUNDED",
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
		fmt.Errorf("%q is not a valid order status", s))
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
