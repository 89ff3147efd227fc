package driver

import (
	"errors"
	"fmt"
	"time"

	"fleetadmin/internal/core/domain/model/kernel"
	"fleetadmin/internal/pkg/errs"
)

var (
	// ErrDriverIsNotConstructed is returned when a Driver instance was not created
	// through NewDriver or RestoreDriver.
	ErrDriverIsNotConstructed = errors.New("Driver must be created via NewDriver or RestoreDriver")
)

// Driver represents a fleet driver who can be assigned to rental contracts.
//
// The driver entity only carries what the assignment core needs: operational
// status, license expiry for eligibility checks, and the optimistic version
// counter. Personnel data (name, payroll, telemetry) lives outside this core.
type Driver struct {
	id       kernel.UUID
	tenantID kernel.UUID

	// status is the operational state controlling assignability
	status Status

	// licenseExpiry is the last calendar day the driving license is valid
	licenseExpiry time.Time

	// suspensionReason records why the driver was suspended, empty otherwise
	suspensionReason string

	// version is the optimistic concurrency counter
	version int

	updatedAt time.Time

	isConstructed bool
}

// NewDriver creates an Available driver with the given license expiry.
func NewDriver(id, tenantID kernel.UUID, licenseExpiry time.Time, now time.Time) (*Driver, error) {
	d := &Driver{
		status:        Available,
		version:       1,
		updatedAt:     now,
		isConstructed: true,
	}

	if err := errors.Join(
		d.setID(id),
		d.setTenantID(tenantID),
		d.setLicenseExpiry(licenseExpiry),
	); err != nil {
		return nil, err
	}

	return d, nil
}

// RestoreDriver reconstructs a driver from persistence.
func RestoreDriver(
	id, tenantID kernel.UUID,
	status Status,
	licenseExpiry time.Time,
	suspensionReason string,
	version int,
	updatedAt time.Time,
) (*Driver, error) {
	d, err := NewDriver(id, tenantID, licenseExpiry, updatedAt)
	if err != nil {
		return nil, err
	}

	if err := status.Validate(); err != nil {
		return nil, err
	}
	if version < 1 {
		return nil, errs.NewVersionIsInvalidError("driver", fmt.Errorf("%d is not a positive version", version))
	}

	d.status = status
	d.suspensionReason = suspensionReason
	d.version = version
	return d, nil
}

// Validate ensures the Driver instance was properly constructed.
func (d *Driver) Validate() error {
	if d == nil || !d.isConstructed {
		return ErrDriverIsNotConstructed
	}
	return nil
}

// ID returns the driver's unique identifier.
func (d *Driver) ID() kernel.UUID {
	return d.id
}

// TenantID returns the tenant the driver belongs to.
func (d *Driver) TenantID() kernel.UUID {
	return d.tenantID
}

// Status returns the driver's operational status.
func (d *Driver) Status() Status {
	return d.status
}

// LicenseExpiry returns the last day the driving license is valid.
func (d *Driver) LicenseExpiry() time.Time {
	return d.licenseExpiry
}

// SuspensionReason returns why the driver was suspended, or "" when not suspended.
func (d *Driver) SuspensionReason() string {
	return d.suspensionReason
}

// Version returns the optimistic concurrency counter.
func (d *Driver) Version() int {
	return d.version
}

// UpdatedAt returns the last modification timestamp.
func (d *Driver) UpdatedAt() time.Time {
	return d.updatedAt
}

// CheckEligibility reports whether the driver may take an assignment evaluated
// on the given date. Returns nil when eligible, or a DriverIneligibleError
// naming the disqualifying condition: the driver must be Available and the
// license must not expire before the evaluation date.
func (d *Driver) CheckEligibility(onDate time.Time) error {
	if d.status != Available {
		return errs.NewDriverIneligibleError(d.id.String(),
			fmt.Sprintf("status is %s", d.status))
	}
	if d.licenseExpiry.Before(kernel.DateOf(onDate)) {
		return errs.NewDriverIneligibleError(d.id.String(),
			fmt.Sprintf("license expired on %s", d.licenseExpiry.Format(time.DateOnly)))
	}
	return nil
}

// TakeAssignment records that the driver entered an assignment period.
// Only Available drivers can take assignments. Persisting the driver after
// this call advances its version, so a suspension running concurrently and
// the assignment cannot both commit.
func (d *Driver) TakeAssignment(at time.Time) error {
	if d.status != Available {
		return errs.NewValueIsInvalidErrorWithCause("status",
			fmt.Errorf("%s driver cannot take an assignment", d.status))
	}

	d.updatedAt = at
	return nil
}

// Suspend takes the driver out of rotation with a reason.
// Only Available drivers can be suspended. The caller is responsible for
// ensuring the driver holds no active assignments before suspending.
func (d *Driver) Suspend(reason string, at time.Time) error {
	if reason == "" {
		return errs.NewValueIsRequiredError("reason")
	}
	if d.status != Available {
		return errs.NewValueIsInvalidErrorWithCause("status",
			fmt.Errorf("%s driver cannot be suspended", d.status))
	}

	d.status = Suspended
	d.suspensionReason = reason
	d.updatedAt = at
	return nil
}

// Resume puts a suspended driver back into rotation unconditionally.
// Fails when the driver is not currently suspended.
func (d *Driver) Resume(at time.Time) error {
	if d.status != Suspended {
		return errs.NewValueIsInvalidErrorWithCause("status",
			fmt.Errorf("%s driver cannot be resumed", d.status))
	}

	d.status = Available
	d.suspensionReason = ""
	d.updatedAt = at
	return nil
}

func (d *Driver) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	d.id = id
	return nil
}

func (d *Driver) setTenantID(tenantID kernel.UUID) error {
	if err := tenantID.Validate(); err != nil {
		return err
	}
	d.tenantID = tenantID
	return nil
}

func (d *Driver) setLicenseExpiry(expiry time.Time) error {
	if expiry.IsZero() {
		return errs.NewValueIsRequiredError("licenseExpiry")
	}
	d.licenseExpiry = kernel.DateOf(expiry)
	return nil
}
