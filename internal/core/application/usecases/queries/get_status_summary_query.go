// Package queries contains read operations for retrieving system state.
// Implements the Query pattern for read operations in the CQRS architecture.
// Queries return optimized read models for specific use cases.
package queries

import (
	"errors"

	"fleetadmin/internal/core/domain/model/kernel"
	"fleetadmin/internal/pkg/guard"
)

var ErrGetStatusSummaryQueryIsNotConstructed = errors.New(
	"GetStatusSummaryQuery must be created via a NewGetStatusSummaryQuery constructor",
)

// GetStatusSummaryQuery retrieves the number of contracts per lifecycle
// status, either for one tenant or across the whole installation. The
// cross-tenant form backs the daily summary job.
type GetStatusSummaryQuery struct {
	tenantID  kernel.UUID
	allTenant bool

	guard guard.ConstructorGuard
}

// NewGetStatusSummaryQuery creates a summary query scoped to one tenant.
func NewGetStatusSummaryQuery(tenantID kernel.UUID) (GetStatusSummaryQuery, error) {
	if err := tenantID.Validate(); err != nil {
		return GetStatusSummaryQuery{}, err
	}

	return GetStatusSummaryQuery{
		tenantID: tenantID,
		guard:    guard.NewConstructorGuard(),
	}, nil
}

// NewGetStatusSummaryQueryAllTenants creates a summary query sweeping every
// tenant. Only the system context may run it.
func NewGetStatusSummaryQueryAllTenants() GetStatusSummaryQuery {
	return GetStatusSummaryQuery{
		allTenant: true,
		guard:     guard.NewConstructorGuard(),
	}
}

// Validate ensures the query was created through a constructor.
func (q GetStatusSummaryQuery) Validate() error {
	return q.guard.Validate(ErrGetStatusSummaryQueryIsNotConstructed)
}

// TenantID returns the tenant scope; meaningless when AllTenants is true.
func (q GetStatusSummaryQuery) TenantID() kernel.UUID {
	return q.tenantID
}

// AllTenants reports whether the query sweeps every tenant.
func (q GetStatusSummaryQuery) AllTenants() bool {
	return q.allTenant
}

// GetStatusSummaryQueryResponse is one row of the summary read model.
type GetStatusSummaryQueryResponse struct {
	Status string
	Count  int64
}
