// Package ports defines repository interfaces for the fleet domain.
// These interfaces establish contracts between the domain layer and infrastructure,
// enabling dependency inversion and testability.
package ports

import (
	"context"
	"time"

	"fleetadmin/internal/core/domain/model/contract"
	"fleetadmin/internal/core/domain/model/kernel"
)

// ContractRepository defines the persistence contract for rental contract aggregates.
// All reads are tenant-scoped except the scheduler queries, which sweep every tenant.
type ContractRepository interface {
	// Add persists a new contract aggregate with its rental vehicles.
	Add(ctx context.Context, aggregate *contract.Contract) error

	// Update persists changes to an existing contract aggregate using an
	// optimistic version check. Returns a ConcurrencyConflictError when the
	// stored version no longer matches the aggregate's.
	Update(ctx context.Context, aggregate *contract.Contract) error

	// Get retrieves a contract by identifier within a tenant.
	// Soft-deleted contracts are not returned.
	Get(ctx context.Context, tenantID, id kernel.UUID) (*contract.Contract, error)

	// GetAllPendingStartingBy retrieves, across all tenants, the Pending
	// contracts whose period starts on or before the given date. Used by the
	// activation pass.
	GetAllPendingStartingBy(ctx context.Context, date time.Time) ([]*contract.Contract, error)

	// GetAllActiveEndedBy retrieves, across all tenants, the Active contracts
	// whose period ended strictly before the given date. Used by the overdue
	// pass.
	GetAllActiveEndedBy(ctx context.Context, date time.Time) ([]*contract.Contract, error)
}
