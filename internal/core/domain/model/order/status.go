package order

import (
	"fmt"

	"supplychain/internal/pkg/errs"
)

// Status represents the lifecycle state of an order.
//
// The lifecycle is forward-only:
//
//	InProcessing ──> Delivery ──> Delivered
//
// with a direct InProcessing ──> Delivered jump permitted by bulk updates.
// No backward transition is defined.
type Status int

const (
	// Unknown represents an invalid or undefined status.
	// This value (0) helps catch uninitialized Status values.
	Unknown Status = iota

	// InProcessing is the initial status: stock has been reserved and the
	// order awaits a delivery. Only orders in this status may be edited.
	InProcessing

	// Delivery indicates the order has been handed to a carrier.
	Delivery

	// Delivered is the terminal status.
	Delivered
)

func getStatusStrings() map[Status]string {
	return map[Status]string{
		Unknown:      "unknown",
		InProcessing: "in_processing",
		Delivery:     "delivery",
		Delivered:    "delivered",
	}
}

func getValidStatusStrings() map[Status]string {
	//nolint:exhaustive // Unknown is intentionally excluded as it's invalid
	return map[Status]string{
		InProcessing: "in_processing",
		Delivery:     "delivery",
		Delivered:    "delivered",
	}
}

// StatusFromString parses a wire/database status value.
// Returns an invalid-value error for anything outside the three
// recognized statuses.
func StatusFromString(s string) (Status, error) {
	for status, str := range getValidStatusStrings() {
		if str == s {
			return status, nil
		}
	}
	return Unknown, errs.NewValueIsInvalidErrorWithCause("status",
		fmt.Errorf("%q is not a recognized status", s))
}

// Validate checks that the Status is one of the three recognized values.
func (s Status) Validate() error {
	if _, ok := getValidStatusStrings()[s]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("status",
			fmt.Errorf("%d is not a valid status", s))
	}
	return nil
}

// String returns the wire representation ("in_processing", "delivery",
// "delivered"), or "unknown" for invalid values. Implements fmt.Stringer.
func (s Status) String() string {
	if str, ok := getStatusStrings()[s]; ok {
		return str
	}
	return "unknown"
}

// IsTerminal reports whether the status is Delivered.
func (s Status) IsTerminal() bool {
	return s == Delivered
}
