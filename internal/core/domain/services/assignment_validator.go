package services

import (
	"time"

	"fleetadmin/internal/core/domain/model/assignment"
	"fleetadmin/internal/core/domain/model/driver"
	"fleetadmin/internal/core/domain/model/kernel"
	"fleetadmin/internal/pkg/errs"
)

// AssignmentValidator is a domain service that decides whether a driver may
// take an assignment over a contract period.
//
// Business rules:
//   - The driver must be eligible on the evaluation date (Available status,
//     license valid through that day). The evaluation date is the day the
//     assignment is made, not the period's start.
//   - No active assignment of the driver may overlap the requested period.
//     Ranges that share a boundary day count as overlapping.
//
// The validator is pure: callers fetch the driver and the driver's active
// assignments, and the enclosing unit of work keeps the read-then-insert
// sequence atomic.
type AssignmentValidator struct{}

// NewAssignmentValidator creates a new AssignmentValidator instance.
func NewAssignmentValidator() AssignmentValidator {
	return AssignmentValidator{}
}

// ValidateForAssignment checks eligibility and overlap rules for assigning
// drv over period. onDate is the day the assignment is evaluated, and active
// must hold the driver's active assignments. Returns a DriverIneligibleError
// or AssignmentConflictError on violation, nil when the assignment may
// proceed.
func (v AssignmentValidator) ValidateForAssignment(
	drv *driver.Driver,
	period kernel.DateRange,
	onDate time.Time,
	active []*assignment.Assignment,
) error {
	if err := drv.Validate(); err != nil {
		return err
	}
	if err := period.Validate(); err != nil {
		return err
	}

	if err := drv.CheckEligibility(onDate); err != nil {
		return err
	}

	if conflicts := v.countOverlapping(period, active); conflicts > 0 {
		return errs.NewAssignmentConflictError(drv.ID().String(), conflicts)
	}

	return nil
}

// HasOverlappingAssignments reports whether any active assignment overlaps
// the period. It is advisory only; ValidateForAssignment remains the
// authoritative check.
func (v AssignmentValidator) HasOverlappingAssignments(
	period kernel.DateRange,
	active []*assignment.Assignment,
) bool {
	return v.countOverlapping(period, active) > 0
}

func (v AssignmentValidator) countOverlapping(
	period kernel.DateRange,
	active []*assignment.Assignment,
) int {
	conflicts := 0
	for _, a := range active {
		if a.IsActive() && a.Period().Overlaps(period) {
			conflicts++
		}
	}
	return conflicts
}
