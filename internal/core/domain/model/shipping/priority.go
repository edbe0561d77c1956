// Package shipping contains the Delivery aggregate and the Carrier entity.
package shipping

import (
	"supplychain/internal/pkg/errs"
)

// Priority represents the urgency of a delivery.
type Priority int

const (
	// Low is the default priority for new deliveries.
	Low Priority = iota + 1
	// Medium priority deliveries are scheduled ahead of Low.
	Medium
	// High priority deliveries are scheduled first.
	High
)

func getPriorityStrings() map[Priority]string {
	return map[Priority]string{
		Low:    "Low",
		Medium: "Medium",
		High:   "High",
	}
}

// Validate checks that the Priority is one of Low, Medium, High.
func (p Priority) Validate() error {
	if _, ok := getPriorityStrings()[p]; !ok {
		return errs.NewValueIsOutOfRangeError("priority", int(p), int(Low), int(High))
	}
	return nil
}

// String returns "Low", "Medium" or "High", or "Unknown" for invalid values.
func (p Priority) String() string {
	if s, ok := getPriorityStrings()[p]; ok {
		return s
	}
	return "Unknown"
}
