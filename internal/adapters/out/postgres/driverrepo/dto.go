// Package driverrepo provides data transfer objects and mapping functions
// for driver persistence.
package driverrepo

import (
	"time"

	"fleetadmin/internal/core/domain/model/driver"
	"fleetadmin/internal/core/domain/model/kernel"

	"github.com/google/uuid"
)

// DriverDTO represents the database structure for persisting driver aggregates.
type DriverDTO struct {
	ID               uuid.UUID `gorm:"type:uuid;primaryKey"`
	TenantID         uuid.UUID `gorm:"type:uuid;not null;index"`
	Status           string    `gorm:"type:varchar(16);not null"`
	LicenseExpiry    time.Time `gorm:"type:date;not null"`
	SuspensionReason string    `gorm:"type:varchar(255);not null"`
	Version          int       `gorm:"not null"`
	UpdatedAt        time.Time `gorm:"not null"`
}

// TableName specifies the database table name for driver entities.
func (DriverDTO) TableName() string {
	return "drivers"
}

// fromDomain converts a driver aggregate to its database representation.
func fromDomain(aggregate *driver.Driver) DriverDTO {
	return DriverDTO{
		ID:               aggregate.ID().Bytes(),
		TenantID:         aggregate.TenantID().Bytes(),
		Status:           aggregate.Status().String(),
		LicenseExpiry:    aggregate.LicenseExpiry(),
		SuspensionReason: aggregate.SuspensionReason(),
		Version:          aggregate.Version(),
		UpdatedAt:        aggregate.UpdatedAt(),
	}
}

// toDomain converts a database DTO to a driver aggregate.
func toDomain(dto DriverDTO) (*driver.Driver, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	tenantID, err := kernel.UUIDFromBytes(dto.TenantID[:])
	if err != nil {
		return nil, err
	}

	status, err := driver.ParseStatus(dto.Status)
	if err != nil {
		return nil, err
	}

	return driver.RestoreDriver(
		id, tenantID, status, dto.LicenseExpiry,
		dto.SuspensionReason, dto.Version, dto.UpdatedAt,
	)
}
