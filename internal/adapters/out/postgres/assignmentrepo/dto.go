// Package assignmentrepo provides data transfer objects and mapping functions
// for the driver assignment ledger.
package assignmentrepo

import (
	"time"

	"fleetadmin/internal/core/domain/model/assignment"
	"fleetadmin/internal/core/domain/model/kernel"

	"github.com/google/uuid"
)

// AssignmentDTO represents the database structure for persisting assignment
// ledger rows.
type AssignmentDTO struct {
	ID           uuid.UUID  `gorm:"type:uuid;primaryKey"`
	TenantID     uuid.UUID  `gorm:"type:uuid;not null;index"`
	DriverID     uuid.UUID  `gorm:"type:uuid;not null;index"`
	ContractID   uuid.UUID  `gorm:"type:uuid;not null;index"`
	Status       string     `gorm:"type:varchar(16);not null"`
	PeriodStart  time.Time  `gorm:"type:date;not null"`
	PeriodEnd    time.Time  `gorm:"type:date;not null"`
	AssignedAt   time.Time  `gorm:"not null"`
	UnassignedAt *time.Time `gorm:""`
	Reason       string     `gorm:"type:varchar(255);not null"`
	Version      int        `gorm:"not null"`
}

// TableName specifies the database table name for assignment ledger rows.
func (AssignmentDTO) TableName() string {
	return "assignments"
}

// fromDomain converts an assignment to its database representation.
func fromDomain(aggregate *assignment.Assignment) AssignmentDTO {
	return AssignmentDTO{
		ID:           aggregate.ID().Bytes(),
		TenantID:     aggregate.TenantID().Bytes(),
		DriverID:     aggregate.DriverID().Bytes(),
		ContractID:   aggregate.ContractID().Bytes(),
		Status:       aggregate.Status().String(),
		PeriodStart:  aggregate.Period().Start(),
		PeriodEnd:    aggregate.Period().End(),
		AssignedAt:   aggregate.AssignedAt(),
		UnassignedAt: aggregate.UnassignedAt(),
		Reason:       aggregate.Reason(),
		Version:      aggregate.Version(),
	}
}

// toDomain converts a database DTO to an assignment ledger row.
func toDomain(dto AssignmentDTO) (*assignment.Assignment, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	tenantID, err := kernel.UUIDFromBytes(dto.TenantID[:])
	if err != nil {
		return nil, err
	}

	driverID, err := kernel.UUIDFromBytes(dto.DriverID[:])
	if err != nil {
		return nil, err
	}

	contractID, err := kernel.UUIDFromBytes(dto.ContractID[:])
	if err != nil {
		return nil, err
	}

	status, err := assignment.ParseStatus(dto.Status)
	if err != nil {
		return nil, err
	}

	period, err := kernel.NewDateRange(dto.PeriodStart, dto.PeriodEnd)
	if err != nil {
		return nil, err
	}

	return assignment.RestoreAssignment(
		id, tenantID, driverID, contractID,
		status, period, dto.AssignedAt,
		dto.UnassignedAt, dto.Reason, dto.Version,
	)
}
