// Package contractrepo provides data transfer objects and mapping functions
// for rental contract persistence. It implements the repository pattern for
// the contract aggregate, handling the conversion between domain entities and
// database representations.
package contractrepo

import (
	"time"

	"fleetadmin/internal/core/domain/model/contract"
	"fleetadmin/internal/core/domain/model/kernel"

	"github.com/google/uuid"
)

// ContractDTO represents the database structure for persisting contract aggregates.
// The contract number is unique per tenant; statuses are stored by name so the
// summary query can group without a decode step.
type ContractDTO struct {
	ID             uuid.UUID          `gorm:"type:uuid;primaryKey"`
	TenantID       uuid.UUID          `gorm:"type:uuid;not null;index;uniqueIndex:idx_tenant_contract_number,priority:1"`
	ContractNumber string             `gorm:"type:varchar(64);not null;uniqueIndex:idx_tenant_contract_number,priority:2"`
	PeriodStart    time.Time          `gorm:"type:date;not null"`
	PeriodEnd      time.Time          `gorm:"type:date;not null"`
	IncludeDriver  bool               `gorm:"not null"`
	PricingModel   string             `gorm:"type:varchar(16);not null"`
	Status         string             `gorm:"type:varchar(16);not null;index"`
	Version        int                `gorm:"not null"`
	Deleted        bool               `gorm:"not null"`
	DeletedAt      *time.Time         `gorm:""`
	CreatedAt      time.Time          `gorm:"not null"`
	UpdatedAt      time.Time          `gorm:"not null"`
	Vehicles       []RentalVehicleDTO `gorm:"foreignKey:ContractID;constraint:OnDelete:CASCADE"`
}

// TableName specifies the database table name for contract entities.
func (ContractDTO) TableName() string {
	return "contracts"
}

// RentalVehicleDTO represents the database structure for persisting the
// vehicle entries owned by a contract.
type RentalVehicleDTO struct {
	ID         uuid.UUID  `gorm:"type:uuid;primaryKey"`
	ContractID uuid.UUID  `gorm:"type:uuid;not null;index"`
	VehicleID  uuid.UUID  `gorm:"type:uuid;not null;index"`
	DriverID   *uuid.UUID `gorm:"type:uuid;index"`
	RateCents  int64      `gorm:"not null"`
	Version    int        `gorm:"not null"`
}

// TableName specifies the database table name for rental-vehicle entities.
func (RentalVehicleDTO) TableName() string {
	return "rental_vehicles"
}

// fromDomain converts a contract aggregate to its database representation.
func fromDomain(aggregate *contract.Contract) ContractDTO {
	contractID := aggregate.ID().Bytes()
	vehicles := make([]RentalVehicleDTO, 0, len(aggregate.Vehicles()))

	for _, v := range aggregate.Vehicles() {
		var driverID *uuid.UUID
		if v.Driver() != nil {
			raw := v.Driver().Bytes()
			driverID = &raw
		}

		vehicles = append(vehicles, RentalVehicleDTO{
			ID:         v.ID().Bytes(),
			ContractID: contractID,
			VehicleID:  v.VehicleID().Bytes(),
			DriverID:   driverID,
			RateCents:  v.RateCents(),
			Version:    v.Version(),
		})
	}

	return ContractDTO{
		ID:             contractID,
		TenantID:       aggregate.TenantID().Bytes(),
		ContractNumber: aggregate.ContractNumber(),
		PeriodStart:    aggregate.Period().Start(),
		PeriodEnd:      aggregate.Period().End(),
		IncludeDriver:  aggregate.IncludesDriver(),
		PricingModel:   aggregate.PricingModel().String(),
		Status:         aggregate.Status().String(),
		Version:        aggregate.Version(),
		Deleted:        aggregate.IsDeleted(),
		DeletedAt:      aggregate.DeletedAt(),
		CreatedAt:      aggregate.CreatedAt(),
		UpdatedAt:      aggregate.UpdatedAt(),
		Vehicles:       vehicles,
	}
}

// toDomain converts a database DTO to a contract aggregate.
func toDomain(dto ContractDTO) (*contract.Contract, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	tenantID, err := kernel.UUIDFromBytes(dto.TenantID[:])
	if err != nil {
		return nil, err
	}

	period, err := kernel.NewDateRange(dto.PeriodStart, dto.PeriodEnd)
	if err != nil {
		return nil, err
	}

	pricingModel, err := contract.ParsePricingModel(dto.PricingModel)
	if err != nil {
		return nil, err
	}

	status, err := contract.ParseStatus(dto.Status)
	if err != nil {
		return nil, err
	}

	vehicles := make([]*contract.RentalVehicle, 0, len(dto.Vehicles))
	for _, vDto := range dto.Vehicles {
		v, vErr := vehicleToDomain(vDto)
		if vErr != nil {
			return nil, vErr
		}
		vehicles = append(vehicles, v)
	}

	return contract.RestoreContract(
		id, tenantID, dto.ContractNumber, period,
		dto.IncludeDriver, pricingModel, status,
		dto.Version, dto.Deleted, dto.DeletedAt,
		dto.CreatedAt, dto.UpdatedAt, vehicles,
	)
}

func vehicleToDomain(dto RentalVehicleDTO) (*contract.RentalVehicle, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	vehicleID, err := kernel.UUIDFromBytes(dto.VehicleID[:])
	if err != nil {
		return nil, err
	}

	var driverID *kernel.UUID
	if dto.DriverID != nil {
		dID, driverErr := kernel.UUIDFromBytes((*dto.DriverID)[:])
		if driverErr != nil {
			return nil, driverErr
		}
		driverID = &dID
	}

	return contract.RestoreRentalVehicle(id, vehicleID, driverID, dto.RateCents, dto.Version)
}
