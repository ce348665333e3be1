package inventory

import (
	"fmt"

	"vehicletrack/internal/pkg/errs"
)

// Status is the stock condition of an inventory item. Unlike the other
// lifecycle enumerations it is a derived field: callers never assign it, the
// aggregate recomputes it from the quantity on every write after creation.
type Status int

const (
	// StatusUnknown catches uninitialized Status values.
	StatusUnknown Status = iota

	StatusInStock
	StatusLowStock
	StatusOutOfStock
)

// InitialStatus is the status assigned at creation. Creation does not run
// the derivation; an item created with a low quantity still starts IN_STOCK
// until its first update. This mirrors the original system's behavior.
const InitialStatus = StatusInStock

// DeriveStatus is the pure derivation applied on every write after creation.
func DeriveStatus(quantityInStock, reorderLevel int) Status {
	switch {
	case quantityInStock == 0:
		return StatusOutOfStock
	case quantityInStock <= reorderLevel:
		return StatusLowStock
	default:
		return StatusInStock
	}
}

func getStatusStrings() map[Status]string {
	return map[Status]string{
		StatusUnknown:    "UNKNOWN",
		StatusInStock:    "IN_STOCK",
		StatusLowStock:   "LOW_STOCK",
		StatusOutOfStock: "OUT_OF_STOCK",
	}
}

// StatusFromString parses the canonical upper-snake representation. It is
// used only when rehydrating from storage; inbound requests have no say in
// the status.
func StatusFromString(s string) (Status, error) {
	for status, str := range getStatusStrings() {
		if str == s && status != StatusUnknown {
			return status, nil
		}
	}
	return StatusUnknown, errs.NewValueIsInvalidErrorWithCause("status",
		fmt.Errorf("%q is not a valid inventory status", s))
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
	if _, ok := getStatusStrings()[s]; !ok || s == StatusUnknown {
		return errs.NewValueIsInvalidErrorWithCause("status",
			fmt.Errorf("%d is not a valid status", s))
	}
	return nil
}
