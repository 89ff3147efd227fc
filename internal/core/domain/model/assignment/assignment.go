package assignment

import (
	"errors"
	"fmt"
	"time"

	"fleetadmin/internal/core/domain/model/kernel"
	"fleetadmin/internal/pkg/errs"
)

var (
	// ErrAssignmentIsNotConstructed is returned when an Assignment instance was not
	// created through NewAssignment or RestoreAssignment.
	ErrAssignmentIsNotConstructed = errors.New(
		"Assignment must be created via NewAssignment or RestoreAssignment",
	)
)

// Assignment is one row of the driver-assignment history ledger: a record of
// a driver being attached to a rental contract over the contract's period.
//
// The ledger is append-oriented and is the sole source of truth for overlap
// detection. A row is created Assigned and undergoes at most one transition,
// to Unassigned or Cancelled; rows are never deleted. An assignment is active
// while its status is Assigned and it has no unassignment timestamp, and the
// set of active assignments for one driver must have pairwise non-overlapping
// periods.
//
// The period is a snapshot of the contract's date range taken at assignment
// time. Contract dates are immutable after creation, so the snapshot cannot
// drift from the contract.
type Assignment struct {
	id         kernel.UUID
	tenantID   kernel.UUID
	driverID   kernel.UUID
	contractID kernel.UUID

	status Status

	// period is the contract date range snapshot used for overlap detection
	period kernel.DateRange

	assignedAt   time.Time
	unassignedAt *time.Time

	// reason records why the assignment ended, empty while active
	reason string

	// version is the optimistic concurrency counter
	version int

	isConstructed bool
}

// NewAssignment creates an active ledger row for a driver attached to a contract.
// The period must be the contract's date range.
func NewAssignment(
	id, tenantID, driverID, contractID kernel.UUID,
	period kernel.DateRange,
	assignedAt time.Time,
) (*Assignment, error) {
	a := &Assignment{
		status:        Assigned,
		assignedAt:    assignedAt,
		version:       1,
		isConstructed: true,
	}

	if err := errors.Join(
		a.setID(id),
		a.setTenantID(tenantID),
		a.setDriverID(driverID),
		a.setContractID(contractID),
		a.setPeriod(period),
	); err != nil {
		return nil, err
	}

	return a, nil
}

// RestoreAssignment reconstructs a ledger row from persistence.
func RestoreAssignment(
	id, tenantID, driverID, contractID kernel.UUID,
	status Status,
	period kernel.DateRange,
	assignedAt time.Time,
	unassignedAt *time.Time,
	reason string,
	version int,
) (*Assignment, error) {
	a, err := NewAssignment(id, tenantID, driverID, contractID, period, assignedAt)
	if err != nil {
		return nil, err
	}

	if err := status.Validate(); err != nil {
		return nil, err
	}
	if version < 1 {
		return nil, errs.NewVersionIsInvalidError("assignment",
			fmt.Errorf("%d is not a positive version", version))
	}
	if status != Assigned && unassignedAt == nil {
		return nil, errs.NewValueIsRequiredError("unassignedAt")
	}

	a.status = status
	a.unassignedAt = unassignedAt
	a.reason = reason
	a.version = version
	return a, nil
}

// Validate ensures the Assignment instance was properly constructed.
func (a *Assignment) Validate() error {
	if a == nil || !a.isConstructed {
		return ErrAssignmentIsNotConstructed
	}
	return nil
}

// ID returns the ledger row's unique identifier.
func (a *Assignment) ID() kernel.UUID {
	return a.id
}

// TenantID returns the tenant the assignment belongs to.
func (a *Assignment) TenantID() kernel.UUID {
	return a.tenantID
}

// DriverID returns the assigned driver's identifier.
func (a *Assignment) DriverID() kernel.UUID {
	return a.driverID
}

// ContractID returns the contract the driver is assigned to.
func (a *Assignment) ContractID() kernel.UUID {
	return a.contractID
}

// Status returns the ledger row's status.
func (a *Assignment) Status() Status {
	return a.status
}

// Period returns the contract date range snapshot.
func (a *Assignment) Period() kernel.DateRange {
	return a.period
}

// AssignedAt returns when the driver was attached.
func (a *Assignment) AssignedAt() time.Time {
	return a.assignedAt
}

// UnassignedAt returns when the assignment ended, or nil while active.
func (a *Assignment) UnassignedAt() *time.Time {
	return a.unassignedAt
}

// Reason returns why the assignment ended, or "" while active.
func (a *Assignment) Reason() string {
	return a.reason
}

// Version returns the optimistic concurrency counter.
func (a *Assignment) Version() int {
	return a.version
}

// IsActive reports whether this row counts toward overlap detection:
// status Assigned and no unassignment timestamp.
func (a *Assignment) IsActive() bool {
	return a.status == Assigned && a.unassignedAt == nil
}

// Unassign ends the assignment with a reason: driver detached, driver
// suspended, or contract terminated. This is the single permitted mutation of
// an active row; history is never rewritten beyond it.
func (a *Assignment) Unassign(reason string, at time.Time) error {
	return a.end(Unassigned, reason, at)
}

// Cancel ends the assignment because its contract was cancelled.
func (a *Assignment) Cancel(reason string, at time.Time) error {
	return a.end(Cancelled, reason, at)
}

func (a *Assignment) end(target Status, reason string, at time.Time) error {
	if reason == "" {
		return errs.NewValueIsRequiredError("reason")
	}
	if !a.IsActive() {
		return errs.NewValueIsInvalidErrorWithCause("status",
			fmt.Errorf("assignment %s is not active", a.id))
	}

	a.status = target
	unassignedAt := at
	a.unassignedAt = &unassignedAt
	a.reason = reason
	return nil
}

func (a *Assignment) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	a.id = id
	return nil
}

func (a *Assignment) setTenantID(tenantID kernel.UUID) error {
	if err := tenantID.Validate(); err != nil {
		return err
	}
	a.tenantID = tenantID
	return nil
}

func (a *Assignment) setDriverID(driverID kernel.UUID) error {
	if err := driverID.Validate(); err != nil {
		return err
	}
	a.driverID = driverID
	return nil
}

func (a *Assignment) setContractID(contractID kernel.UUID) error {
	if err := contractID.Validate(); err != nil {
		return err
	}
	a.contractID = contractID
	return nil
}

func (a *Assignment) setPeriod(period kernel.DateRange) error {
	if err := period.Validate(); err != nil {
		return err
	}
	a.period = period
	return nil
}
