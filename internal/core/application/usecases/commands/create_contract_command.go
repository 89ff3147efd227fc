package commands

import (
	"errors"
	"time"

	"fleetadmin/internal/core/domain/model/contract"
	"fleetadmin/internal/core/domain/model/kernel"
	"fleetadmin/internal/pkg/guard"
)

var (
	ErrCreateContractCommandIsNotConstructed = errors.New(
		"CreateContractCommand must be created via NewCreateContractCommand constructor",
	)
	ErrContractNumberIsRequired = errors.New("contract number is required")
	ErrVehiclesAreRequired      = errors.New("at least one vehicle is required")
)

// VehicleSpec describes one vehicle entry of a new contract: the fleet
// vehicle and the agreed rate in cents.
type VehicleSpec struct {
	VehicleID kernel.UUID
	RateCents int64
}

// CreateContractCommand represents a request to open a new rental contract.
// The contract starts in Pending status; drivers are attached separately.
type CreateContractCommand struct { //nolint:recvcheck //using for validation
	contractID     kernel.UUID
	tenantID       kernel.UUID
	contractNumber string
	period         kernel.DateRange
	includeDriver  bool
	pricingModel   contract.PricingModel
	vehicles       []VehicleSpec
	occurredOn     time.Time

	guard guard.ConstructorGuard
}

// NewCreateContractCommand creates a command to open a rental contract.
// Automatically generates a unique ID for the contract.
func NewCreateContractCommand(
	tenantID kernel.UUID,
	contractNumber string,
	period kernel.DateRange,
	includeDriver bool,
	pricingModel contract.PricingModel,
	vehicles []VehicleSpec,
	occurredOn time.Time,
) (CreateContractCommand, error) {
	command := CreateContractCommand{
		includeDriver: includeDriver,
		occurredOn:    occurredOn,
		guard:         guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		command.setContractID(kernel.NewUUID()),
		command.setTenantID(tenantID),
		command.setContractNumber(contractNumber),
		command.setPeriod(period),
		command.setPricingModel(pricingModel),
		command.setVehicles(vehicles),
	); err != nil {
		return CreateContractCommand{}, err
	}

	return command, nil
}

// Validate ensures the command was created through the constructor.
func (c CreateContractCommand) Validate() error {
	return c.guard.Validate(ErrCreateContractCommandIsNotConstructed)
}

// ContractID returns the generated identifier of the contract to create.
func (c CreateContractCommand) ContractID() kernel.UUID {
	return c.contractID
}

// TenantID returns the tenant the contract belongs to.
func (c CreateContractCommand) TenantID() kernel.UUID {
	return c.tenantID
}

// ContractNumber returns the contract number from the command.
func (c CreateContractCommand) ContractNumber() string {
	return c.contractNumber
}

// Period returns the rental period from the command.
func (c CreateContractCommand) Period() kernel.DateRange {
	return c.period
}

// IncludesDriver reports whether the rental includes a driver.
func (c CreateContractCommand) IncludesDriver() bool {
	return c.includeDriver
}

// PricingModel returns the pricing model from the command.
func (c CreateContractCommand) PricingModel() contract.PricingModel {
	return c.pricingModel
}

// Vehicles returns the vehicle entries from the command.
func (c CreateContractCommand) Vehicles() []VehicleSpec {
	return c.vehicles
}

// OccurredOn returns the instant the operation was requested.
func (c CreateContractCommand) OccurredOn() time.Time {
	return c.occurredOn
}

func (c *CreateContractCommand) setContractID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	c.contractID = id
	return nil
}

func (c *CreateContractCommand) setTenantID(tenantID kernel.UUID) error {
	if err := tenantID.Validate(); err != nil {
		return err
	}
	c.tenantID = tenantID
	return nil
}

func (c *CreateContractCommand) setContractNumber(number string) error {
	if number == "" {
		return ErrContractNumberIsRequired
	}
	c.contractNumber = number
	return nil
}

func (c *CreateContractCommand) setPeriod(period kernel.DateRange) error {
	if err := period.Validate(); err != nil {
		return err
	}
	c.period = period
	return nil
}

func (c *CreateContractCommand) setPricingModel(model contract.PricingModel) error {
	if err := model.Validate(); err != nil {
		return err
	}
	c.pricingModel = model
	return nil
}

func (c *CreateContractCommand) setVehicles(vehicles []VehicleSpec) error {
	if len(vehicles) == 0 {
		return ErrVehiclesAreRequired
	}
	for _, v := range vehicles {
		if err := v.VehicleID.Validate(); err != nil {
			return err
		}
	}
	c.vehicles = vehicles
	return nil
}
