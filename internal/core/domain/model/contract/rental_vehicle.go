package contract

import (
	"errors"
	"fmt"

	"fleetadmin/internal/core/domain/model/kernel"
	"fleetadmin/internal/pkg/errs"
)

// ErrRentalVehicleIsNotConstructed is returned when a RentalVehicle instance was
// not created through NewRentalVehicle or RestoreRentalVehicle.
var ErrRentalVehicleIsNotConstructed = errors.New(
	"RentalVehicle must be created via NewRentalVehicle or RestoreRentalVehicle",
)

// RentalVehicle is the join entity between a contract and a fleet vehicle.
// It records the agreed rate for the vehicle over the contract period and,
// for contracts that include a driver, the currently attached driver.
//
// A RentalVehicle is exclusively owned by its contract and created alongside
// it. Its identity fields are immutable; the rate and driver attachment are
// mutable only while the parent contract is still Pending, which the parent
// aggregate enforces.
type RentalVehicle struct {
	// id is the unique identifier of the join row
	id kernel.UUID

	// vehicleID references the fleet vehicle
	vehicleID kernel.UUID

	// driverID is the attached driver (nil if none)
	driverID *kernel.UUID

	// rateCents is the agreed rate in minor currency units,
	// interpreted according to the contract's pricing model
	rateCents int64

	// version is the optimistic concurrency counter
	version int

	isConstructed bool
}

// NewRentalVehicle creates a rental-vehicle entry for a new contract.
// The rate must be positive; it is a snapshot agreed at contract creation,
// not a live vehicle price.
func NewRentalVehicle(id, vehicleID kernel.UUID, rateCents int64) (*RentalVehicle, error) {
	rv := &RentalVehicle{
		version:       1,
		isConstructed: true,
	}

	if err := errors.Join(
		rv.setID(id),
		rv.setVehicleID(vehicleID),
		rv.setRateCents(rateCents),
	); err != nil {
		return nil, err
	}

	return rv, nil
}

// RestoreRentalVehicle reconstructs a rental-vehicle entry from persistence,
// including its driver attachment and version counter.
func RestoreRentalVehicle(
	id, vehicleID kernel.UUID,
	driverID *kernel.UUID,
	rateCents int64,
	version int,
) (*RentalVehicle, error) {
	rv, err := NewRentalVehicle(id, vehicleID, rateCents)
	if err != nil {
		return nil, err
	}

	if driverID != nil {
		if err := driverID.Validate(); err != nil {
			return nil, err
		}
		rv.driverID = driverID
	}

	if version < 1 {
		return nil, errs.NewVersionIsInvalidError("rentalVehicle",
			fmt.Errorf("%d is not a positive version", version))
	}
	rv.version = version

	return rv, nil
}

// Validate ensures the RentalVehicle was created through a constructor.
func (rv *RentalVehicle) Validate() error {
	if rv == nil || !rv.isConstructed {
		return ErrRentalVehicleIsNotConstructed
	}
	return nil
}

// ID returns the join row's unique identifier.
func (rv *RentalVehicle) ID() kernel.UUID {
	return rv.id
}

// VehicleID returns the referenced fleet vehicle's identifier.
func (rv *RentalVehicle) VehicleID() kernel.UUID {
	return rv.vehicleID
}

// Driver returns the attached driver's ID, or nil when none is attached.
func (rv *RentalVehicle) Driver() *kernel.UUID {
	return rv.driverID
}

// RateCents returns the agreed rate in minor currency units.
func (rv *RentalVehicle) RateCents() int64 {
	return rv.rateCents
}

// Version returns the optimistic concurrency counter.
func (rv *RentalVehicle) Version() int {
	return rv.version
}

// attachDriver sets the driver on this entry. Called by the parent contract,
// which enforces the Pending-only mutation rule.
func (rv *RentalVehicle) attachDriver(driverID kernel.UUID) error {
	if err := driverID.Validate(); err != nil {
		return err
	}
	rv.driverID = &driverID
	return nil
}

// detachDriver clears the driver on this entry. Called by the parent contract.
func (rv *RentalVehicle) detachDriver() {
	rv.driverID = nil
}

// changeRate updates the agreed rate. Called by the parent contract, which
// enforces the Pending-only mutation rule.
func (rv *RentalVehicle) changeRate(rateCents int64) error {
	return rv.setRateCents(rateCents)
}

func (rv *RentalVehicle) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	rv.id = id
	return nil
}

func (rv *RentalVehicle) setVehicleID(vehicleID kernel.UUID) error {
	if err := vehicleID.Validate(); err != nil {
		return err
	}
	rv.vehicleID = vehicleID
	return nil
}

func (rv *RentalVehicle) setRateCents(rateCents int64) error {
	if rateCents <= 0 {
		return errs.NewValueIsInvalidErrorWithCause("rateCents",
			fmt.Errorf("%d is not greater than 0", rateCents))
	}
	rv.rateCents = rateCents
	return nil
}
