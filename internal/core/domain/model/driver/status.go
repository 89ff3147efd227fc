package driver

import (
	"fmt"

	"fleetadmin/internal/pkg/errs"
)

// Status represents a driver's operational state.
//
// Available drivers can take assignments. Suspended drivers were taken out of
// rotation by an operator and can be resumed. Inactive drivers left the fleet
// and never return to rotation through this core.
type Status int

const (
	// Unknown represents an invalid or undefined status.
	Unknown Status = iota

	// Available means the driver can take assignments.
	Available

	// Suspended means the driver was taken out of rotation and can be resumed.
	Suspended

	// Inactive means the driver left the fleet.
	Inactive
)

func getStatusStrings() map[Status]string {
	return map[Status]string{
		Unknown:   "Unknown",
		Available: "Available",
		Suspended: "Suspended",
		Inactive:  "Inactive",
	}
}

func getValidStatusStrings() map[Status]string {
	//nolint:exhaustive // Unknown is intentionally excluded as it's invalid
	return map[Status]string{
		Available: "Available",
		Suspended: "Suspended",
		Inactive:  "Inactive",
	}
}

// Validate checks if the Status value is valid.
func (s Status) Validate() error {
	if _, ok := getValidStatusStrings()[s]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("status",
			fmt.Errorf("%d is not a valid driver status", s))
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
		fmt.Errorf("%q is not a valid driver status", name))
}
