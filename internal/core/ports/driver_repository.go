package ports

import (
	"context"

	"fleetadmin/internal/core/domain/model/driver"
	"fleetadmin/internal/core/domain/model/kernel"
)

// DriverRepository defines the persistence contract for driver aggregates.
type DriverRepository interface {
	// Add persists a new driver aggregate.
	Add(ctx context.Context, aggregate *driver.Driver) error

	// Update persists changes to an existing driver aggregate using an
	// optimistic version check.
	Update(ctx context.Context, aggregate *driver.Driver) error

	// Get retrieves a driver by identifier within a tenant.
	Get(ctx context.Context, tenantID, id kernel.UUID) (*driver.Driver, error)
}
