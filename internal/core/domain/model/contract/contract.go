package contract

import (
	"errors"
	"fmt"
	"time"

	"fleetadmin/internal/core/domain/model/kernel"
	"fleetadmin/internal/pkg/errs"
)

var (
	// ErrContractIsNotConstructed is returned when a Contract instance was not created
	// through NewContract or RestoreContract. This ensures all contracts are properly validated.
	ErrContractIsNotConstructed = errors.New("Contract must be created via NewContract or RestoreContract")
)

// Contract represents a rental contract in the system. It is the aggregate root
// that manages the contract lifecycle from creation through activation to one
// of the terminal outcomes (completed, overdue, cancelled).
//
// Contract follows these invariants:
//   - Must have a valid unique identifier and tenant identifier
//   - The contract number must be non-empty (uniqueness per tenant is enforced by storage)
//   - The rental period's end date is strictly after its start date
//   - Must own at least one rental vehicle
//   - Status only changes through TransitionTo, consulting the transition table
//   - Once in a terminal status the contract is immutable except for soft-delete metadata
//   - Cancellation soft-deletes the contract; rows are never physically removed
//
// The Contract struct uses private fields to ensure encapsulation and maintains
// its invariants through validated methods.
type Contract struct {
	// id is the unique identifier for the contract
	id kernel.UUID

	// tenantID scopes the contract to a single tenant
	tenantID kernel.UUID

	// contractNumber is the human-facing number, unique per tenant
	contractNumber string

	// period is the rental date range
	period kernel.DateRange

	// includeDriver indicates whether the rental comes with a driver
	includeDriver bool

	// pricingModel determines how the agreed vehicle rates apply
	pricingModel PricingModel

	// status is the current state in the contract lifecycle
	status Status

	// version is the optimistic concurrency counter
	version int

	// deleted marks the contract as soft-deleted (audit retention)
	deleted   bool
	deletedAt *time.Time

	createdAt time.Time
	updatedAt time.Time

	// vehicles are the rental-vehicle entries exclusively owned by this contract
	vehicles []*RentalVehicle

	isConstructed bool
}

// NewContract creates a new Contract in Pending status with validation.
// This is the only way to create a valid new contract, ensuring all business
// invariants hold from the start.
//
// Parameters:
//   - id, tenantID: valid UUIDs
//   - contractNumber: non-empty, unique per tenant (storage enforces uniqueness)
//   - period: validated date range (end strictly after start)
//   - includeDriver: whether a driver is part of the rental
//   - pricingModel: valid pricing model
//   - vehicles: at least one rental-vehicle entry
//   - createdAt: creation instant supplied by the caller for testability
func NewContract(
	id, tenantID kernel.UUID,
	contractNumber string,
	period kernel.DateRange,
	includeDriver bool,
	pricingModel PricingModel,
	vehicles []*RentalVehicle,
	createdAt time.Time,
) (*Contract, error) {
	c := &Contract{
		status:        Pending,
		version:       1,
		includeDriver: includeDriver,
		createdAt:     createdAt,
		updatedAt:     createdAt,
		isConstructed: true,
	}

	if err := errors.Join(
		c.setID(id),
		c.setTenantID(tenantID),
		c.setContractNumber(contractNumber),
		c.setPeriod(period),
		c.setPricingModel(pricingModel),
		c.setVehicles(vehicles),
	); err != nil {
		return nil, err
	}

	return c, nil
}

// RestoreContract reconstructs a contract from persistence with its full state.
// Used by repository implementations; validates the same invariants as NewContract
// plus the restored status, version and soft-delete metadata.
func RestoreContract(
	id, tenantID kernel.UUID,
	contractNumber string,
	period kernel.DateRange,
	includeDriver bool,
	pricingModel PricingModel,
	status Status,
	version int,
	deleted bool,
	deletedAt *time.Time,
	createdAt, updatedAt time.Time,
	vehicles []*RentalVehicle,
) (*Contract, error) {
	c, err := NewContract(id, tenantID, contractNumber, period, includeDriver, pricingModel, vehicles, createdAt)
	if err != nil {
		return nil, err
	}

	if err := status.Validate(); err != nil {
		return nil, err
	}
	if version < 1 {
		return nil, errs.NewVersionIsInvalidError("contract", fmt.Errorf("%d is not a positive version", version))
	}
	if deleted && deletedAt == nil {
		return nil, errs.NewValueIsRequiredError("deletedAt")
	}

	c.status = status
	c.version = version
	c.deleted = deleted
	c.deletedAt = deletedAt
	c.updatedAt = updatedAt
	return c, nil
}

// Validate ensures the Contract instance was properly constructed.
// This prevents bypassing validation by directly instantiating the struct.
func (c *Contract) Validate() error {
	if c == nil || !c.isConstructed {
		return ErrContractIsNotConstructed
	}
	return nil
}

// IsEqual compares two contracts by their unique identifiers.
func (c *Contract) IsEqual(other *Contract) bool {
	return other != nil && c.id.IsEqual(other.id)
}

// ID returns the contract's unique identifier.
func (c *Contract) ID() kernel.UUID {
	return c.id
}

// TenantID returns the tenant the contract belongs to.
func (c *Contract) TenantID() kernel.UUID {
	return c.tenantID
}

// ContractNumber returns the human-facing contract number.
func (c *Contract) ContractNumber() string {
	return c.contractNumber
}

// Period returns the rental date range.
func (c *Contract) Period() kernel.DateRange {
	return c.period
}

// IncludesDriver reports whether the rental comes with a driver.
func (c *Contract) IncludesDriver() bool {
	return c.includeDriver
}

// PricingModel returns the contract's pricing model.
func (c *Contract) PricingModel() PricingModel {
	return c.pricingModel
}

// Status returns the current status of the contract.
func (c *Contract) Status() Status {
	return c.status
}

// Version returns the optimistic concurrency counter.
func (c *Contract) Version() int {
	return c.version
}

// IsDeleted reports whether the contract has been soft-deleted.
func (c *Contract) IsDeleted() bool {
	return c.deleted
}

// DeletedAt returns the soft-delete timestamp, or nil when not deleted.
func (c *Contract) DeletedAt() *time.Time {
	return c.deletedAt
}

// CreatedAt returns the creation timestamp.
func (c *Contract) CreatedAt() time.Time {
	return c.createdAt
}

// UpdatedAt returns the last modification timestamp.
func (c *Contract) UpdatedAt() time.Time {
	return c.updatedAt
}

// Vehicles returns the rental-vehicle entries owned by this contract.
func (c *Contract) Vehicles() []*RentalVehicle {
	return c.vehicles
}

// CanTransition reports whether the contract's status may move to target
// according to the transition table. Pure check, no side effects.
func (c *Contract) CanTransition(target Status) bool {
	return c.status.CanTransition(target)
}

// TransitionTo moves the contract to the target status.
//
// Business rules:
//   - The transition must be permitted by the table in Status
//   - The identity transition is a permitted no-op and changes nothing
//   - Transitioning to Cancelled also soft-deletes the contract, so a
//     cancelled contract is always soft-deleted; rows are never physically removed
//
// Returns an InvalidStateTransitionError for illegal requests; the request is
// never silently ignored or clamped.
func (c *Contract) TransitionTo(target Status, at time.Time) error {
	if c.status == target {
		return nil
	}

	newStatus, err := c.status.TransitionTo(target)
	if err != nil {
		return err
	}

	c.status = newStatus
	if newStatus == Cancelled {
		c.deleted = true
		deletedAt := at
		c.deletedAt = &deletedAt
	}
	c.updatedAt = at
	return nil
}

// AttachDriver attaches a driver to the first free vehicle slot.
//
// Business rules:
//   - The contract must include a driver
//   - Attachment is only allowed while the contract is Pending
//   - The driver must not already be attached to this contract
//   - A vehicle without a driver must be available
//
// Eligibility and overlap checks against other contracts are the
// responsibility of the assignment validator, not this aggregate.
func (c *Contract) AttachDriver(driverID kernel.UUID, at time.Time) error {
	if err := driverID.Validate(); err != nil {
		return err
	}
	if !c.includeDriver {
		return errs.NewValueIsInvalidErrorWithCause("includeDriver",
			fmt.Errorf("contract %s does not include a driver", c.contractNumber))
	}
	if c.status != Pending {
		return errs.NewValueIsInvalidErrorWithCause("status",
			fmt.Errorf("%s does not allow driver attachment", c.status))
	}

	var free *RentalVehicle
	for _, rv := range c.vehicles {
		if rv.Driver() != nil && rv.Driver().IsEqual(driverID) {
			return errs.NewValueIsInvalidErrorWithCause("driverId",
				fmt.Errorf("driver %s is already attached to contract %s", driverID, c.contractNumber))
		}
		if rv.Driver() == nil && free == nil {
			free = rv
		}
	}
	if free == nil {
		return errs.NewValueIsInvalidErrorWithCause("vehicles",
			fmt.Errorf("contract %s has no vehicle without a driver", c.contractNumber))
	}

	if err := free.attachDriver(driverID); err != nil {
		return err
	}
	c.updatedAt = at
	return nil
}

// DetachDriver removes a driver from the vehicle holding them.
// Like attachment, detachment mutates the vehicle entry only while the
// contract is Pending; after activation the vehicle entry is a historical
// record and detachment is tracked in the assignment ledger instead.
func (c *Contract) DetachDriver(driverID kernel.UUID, at time.Time) error {
	if err := driverID.Validate(); err != nil {
		return err
	}
	if c.status != Pending {
		return errs.NewValueIsInvalidErrorWithCause("status",
			fmt.Errorf("%s does not allow driver detachment", c.status))
	}

	for _, rv := range c.vehicles {
		if rv.Driver() != nil && rv.Driver().IsEqual(driverID) {
			rv.detachDriver()
			c.updatedAt = at
			return nil
		}
	}
	return errs.NewObjectNotFoundError("driverId", driverID.String())
}

// ChangeVehicleRate updates the agreed rate of one owned vehicle entry.
// Allowed only while the contract is Pending.
func (c *Contract) ChangeVehicleRate(rentalVehicleID kernel.UUID, rateCents int64, at time.Time) error {
	if c.status != Pending {
		return errs.NewValueIsInvalidErrorWithCause("status",
			fmt.Errorf("%s does not allow rate changes", c.status))
	}

	for _, rv := range c.vehicles {
		if rv.ID().IsEqual(rentalVehicleID) {
			if err := rv.changeRate(rateCents); err != nil {
				return err
			}
			c.updatedAt = at
			return nil
		}
	}
	return errs.NewObjectNotFoundError("rentalVehicleId", rentalVehicleID.String())
}

func (c *Contract) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	c.id = id
	return nil
}

func (c *Contract) setTenantID(tenantID kernel.UUID) error {
	if err := tenantID.Validate(); err != nil {
		return err
	}
	c.tenantID = tenantID
	return nil
}

func (c *Contract) setContractNumber(number string) error {
	if number == "" {
		return errs.NewValueIsRequiredError("contractNumber")
	}
	c.contractNumber = number
	return nil
}

func (c *Contract) setPeriod(period kernel.DateRange) error {
	if err := period.Validate(); err != nil {
		return err
	}
	c.period = period
	return nil
}

func (c *Contract) setPricingModel(model PricingModel) error {
	if err := model.Validate(); err != nil {
		return err
	}
	c.pricingModel = model
	return nil
}

func (c *Contract) setVehicles(vehicles []*RentalVehicle) error {
	if len(vehicles) == 0 {
		return errs.NewValueIsRequiredError("vehicles")
	}
	for _, rv := range vehicles {
		if err := rv.Validate(); err != nil {
			return err
		}
	}
	c.vehicles = vehicles
	return nil
}
