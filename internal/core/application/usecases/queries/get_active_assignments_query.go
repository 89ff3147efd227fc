package queries

import (
	"errors"
	"time"

	"fleetadmin/internal/core/domain/model/kernel"
	"fleetadmin/internal/pkg/guard"
)

var ErrGetActiveAssignmentsQueryIsNotConstructed = errors.New(
	"GetActiveAssignmentsQuery must be created via NewGetActiveAssignmentsQuery constructor",
)

// GetActiveAssignmentsQuery retrieves a driver's active assignment rows:
// which contracts the driver currently serves and over which periods.
type GetActiveAssignmentsQuery struct {
	tenantID kernel.UUID
	driverID kernel.UUID

	guard guard.ConstructorGuard
}

// NewGetActiveAssignmentsQuery creates a query for a driver's active assignments.
func NewGetActiveAssignmentsQuery(tenantID, driverID kernel.UUID) (GetActiveAssignmentsQuery, error) {
	if err := tenantID.Validate(); err != nil {
		return GetActiveAssignmentsQuery{}, err
	}
	if err := driverID.Validate(); err != nil {
		return GetActiveAssignmentsQuery{}, err
	}

	return GetActiveAssignmentsQuery{
		tenantID: tenantID,
		driverID: driverID,
		guard:    guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
func (q GetActiveAssignmentsQuery) Validate() error {
	return q.guard.Validate(ErrGetActiveAssignmentsQueryIsNotConstructed)
}

// TenantID returns the tenant scope of the query.
func (q GetActiveAssignmentsQuery) TenantID() kernel.UUID {
	return q.tenantID
}

// DriverID returns the driver whose assignments are retrieved.
func (q GetActiveAssignmentsQuery) DriverID() kernel.UUID {
	return q.driverID
}

// GetActiveAssignmentsQueryResponse is one active assignment in the read model.
type GetActiveAssignmentsQueryResponse struct {
	ID          kernel.UUID
	ContractID  kernel.UUID
	PeriodStart time.Time
	PeriodEnd   time.Time
	AssignedAt  time.Time
}
