package order

import (
	"fmt"

	"dispatch/internal/pkg/errs"
)

// Status represents the lifecycle state of an order.
//
// The state machine has a single one-way transition:
//
//	Unassigned ──> Taken
//
// There is no release, reassignment, or cancellation: once an order is taken
// it stays taken. Status is a value object that validates transitions and
// renders the wire-level string form.
type Status int

const (
	// Unknown represents an invalid or undefined status.
	// This value (0) helps catch uninitialized Status values.
	Unknown Status = iota

	// Unassigned is the initial status when an order is first created.
	// Orders in this status are available to be claimed.
	Unassigned

	// Taken indicates the order has been claimed. This is a final state
	// with no further transitions allowed.
	Taken
)

// getStatusStrings returns the wire-level string form of every Status value.
func getStatusStrings() map[Status]string {
	return map[Status]string{
		Unknown:    "UNKNOWN",
		Unassigned: "UNASSIGNED",
		Taken:      "TAKEN",
	}
}

// getValidStatusStrings returns only the valid Status values, to support validation.
func getValidStatusStrings() map[Status]string {
	//nolint:exhaustive // Unknown is intentionally excluded as it's invalid
	return map[Status]string{
		Unassigned: "UNASSIGNED",
		Taken:      "TAKEN",
	}
}

// Validate checks if the Status value is valid.
// Valid statuses are Unassigned and Taken; Unknown and anything else fail.
func (s Status) Validate() error {
	if _, ok := getValidStatusStrings()[s]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("status", fmt.Errorf("%d is not a valid status", s))
	}
	return nil
}

// String returns the wire-level name of the status ("UNASSIGNED", "TAKEN").
// Safe to call on any Status value; invalid values render as "UNKNOWN".
func (s Status) String() string {
	if str, ok := getStatusStrings()[s]; ok {
		return str
	}
	return "UNKNOWN"
}

// Take transitions the status to Taken.
//
// The only valid transition is Unassigned -> Taken. Taking an already taken
// order fails, as does taking from Unknown.
func (s Status) Take() (Status, error) {
	if s != Unassigned {
		return 0, errs.NewValueIsInvalidErrorWithCause(
			"status",
			fmt.Errorf("%s is not a valid status to take", s.String()),
		)
	}

	return Taken, nil
}
