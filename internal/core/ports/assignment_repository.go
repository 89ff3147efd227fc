package ports

import (
	"context"

	"fleetadmin/internal/core/domain/model/assignment"
	"fleetadmin/internal/core/domain/model/kernel"
)

// AssignmentRepository defines the persistence contract for the
// driver-assignment history ledger. Rows are never deleted; ended rows keep
// their history.
type AssignmentRepository interface {
	// Add persists a new ledger row.
	Add(ctx context.Context, aggregate *assignment.Assignment) error

	// Update persists changes to an existing ledger row using an optimistic
	// version check.
	Update(ctx context.Context, aggregate *assignment.Assignment) error

	// Get retrieves a ledger row by identifier within a tenant.
	Get(ctx context.Context, tenantID, id kernel.UUID) (*assignment.Assignment, error)

	// GetActiveByDriver retrieves the driver's active rows. The result feeds
	// overlap detection and must be read in the same transaction that inserts
	// the new row.
	GetActiveByDriver(ctx context.Context, tenantID, driverID kernel.UUID) ([]*assignment.Assignment, error)

	// GetActiveByContract retrieves the active rows attached to a contract.
	// Used when a contract terminates and its assignments must be ended.
	GetActiveByContract(ctx context.Context, tenantID, contractID kernel.UUID) ([]*assignment.Assignment, error)

	// GetAllByDriver retrieves the driver's full history, newest first.
	GetAllByDriver(ctx context.Context, tenantID, driverID kernel.UUID) ([]*assignment.Assignment, error)
}
