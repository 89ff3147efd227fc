package assignment

import (
	"fmt"

	"fleetadmin/internal/pkg/errs"
)

// Status represents the state of a driver-assignment ledger row.
//
// A row is created Assigned and makes at most one transition: to Unassigned
// when the driver is detached or suspended, or to Cancelled when the contract
// is cancelled. Both end states are final.
type Status int

const (
	// Unknown represents an invalid or undefined status.
	Unknown Status = iota

	// Assigned means the driver is currently attached to the contract.
	Assigned

	// Unassigned means the assignment ended by detachment or suspension.
	Unassigned

	// Cancelled means the assignment ended because the contract was cancelled.
	Cancelled
)

func getStatusStrings() map[Status]string {
	return map[Status]string{
		Unknown:    "Unknown",
		Assigned:   "Assigned",
		Unassigned: "Unassigned",
		Cancelled:  "Cancelled",
	}
}

func getValidStatusStrings() map[Status]string {
	//nolint:exhaustive // Unknown is intentionally excluded as it's invalid
	return map[Status]string{
		Assigned:   "Assigned",
		Unassigned: "Unassigned",
		Cancelled:  "Cancelled",
	}
}

// Validate checks if the Status value is valid.
func (s Status) Validate() error {
	if _, ok := getValidStatusStrings()[s]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("status",
			fmt.Errorf("%d is not a valid assignment status", s))
	}
	return nil
}

// String returns the human-readable name of the status.
func (s Status) String() string {
	if str, ok := getStatusStrings()[s]; ok {
		return str
	}
	return "Unknown"
}

// ParseStatus converts a status name into a Status value.
func ParseStatus(name string) (Status, error) {
	for status, str := range getValidStatusStrings() {
		if str == name {
			return status, nil
		}
	}
	return Unknown, errs.NewValueIsInvalidErrorWithCause("status",
		fmt.Errorf("%q is not a valid assignment status", name))
}
