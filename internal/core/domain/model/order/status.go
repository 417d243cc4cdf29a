package order

import (
	"fmt"

	"sales/internal/pkg/errs"
)

// Status is the lifecycle state of an order. Values are persisted as is.
//
//	Draft ──> Submitted ──> Processing ──> Completed
type Status int

const (
	// Unknown represents an invalid or undefined status.
	Unknown Status = 0

	// Draft is the initial status. Only draft orders are mutable.
	Draft Status = 10

	// Submitted orders have been handed over to fulfillment.
	Submitted Status = 11

	// Processing orders are being picked and shipped.
	Processing Status = 12

	// Completed is the final state.
	Completed Status = 13
)

// ItemStatusOpen is the status every new order item starts in.
const ItemStatusOpen = 1

const (
	RuleOnlyDraftCanBeUpdated = "Only draft orders can be updated"
	RuleOnlyDraftCanBeDeleted = "Only draft orders can be deleted"
)

func getStatusStrings() map[Status]string {
	return map[Status]string{
		Draft:      "DRAFT",
		Submitted:  "SUBMITTED",
		Processing: "PROCESSING",
		Completed:  "COMPLETED",
	}
}

// Validate checks that s is one of the four lifecycle statuses.
func (s Status) Validate() error {
	if _, ok := getStatusStrings()[s]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("status is invalid", fmt.Errorf("%d is not a valid status", s))
	}
	return nil
}

// String returns the upper-case status name, or "UNKNOWN" for invalid values.
func (s Status) String() string {
	if str, ok := getStatusStrings()[s]; ok {
		return str
	}
	return "UNKNOWN"
}

// IsMutable reports whether orders in this status may be updated or deleted.
func (s Status) IsMutable() bool {
	return s == Draft
}

// ParseStatus accepts either the numeric code or the status name.
func ParseStatus(raw string) (Status, error) {
	for status, name := range getStatusStrings() {
		if raw == name || raw == fmt.Sprintf("%d", int(status)) {
			return status, nil
		}
	}
	return Unknown, errs.NewValueIsInvalidErrorWithCause("status is invalid", fmt.Errorf("%q is not a valid status", raw))
}
