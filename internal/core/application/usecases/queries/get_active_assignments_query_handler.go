package queries

import (
	"context"

	"fleetadmin/internal/core/domain/model/kernel"
	"fleetadmin/internal/pkg/auth"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GetActiveAssignmentsQueryHandler retrieves a driver's active assignment
// rows straight from the ledger table, newest first.
type GetActiveAssignmentsQueryHandler struct {
	db *gorm.DB
}

// NewGetActiveAssignmentsQueryHandler creates a handler for active assignment queries.
func NewGetActiveAssignmentsQueryHandler(db *gorm.DB) GetActiveAssignmentsQueryHandler {
	return GetActiveAssignmentsQueryHandler{db: db}
}

// Handle executes the query. Requires the view-reports permission within the
// query's tenant.
func (h GetActiveAssignmentsQueryHandler) Handle(
	ctx context.Context, ac auth.Context, query GetActiveAssignmentsQuery,
) ([]GetActiveAssignmentsQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}
	if err := auth.RequirePermission(ac, auth.PermViewReports); err != nil {
		return nil, err
	}
	if err := auth.RequireTenant(ac, query.TenantID()); err != nil {
		return nil, err
	}

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			id,
			contract_id,
			period_start,
			period_end,
			assigned_at
		FROM assignments
		WHERE tenant_id = ?
		  AND driver_id = ?
		  AND status = 'Assigned'
		  AND unassigned_at IS NULL
		ORDER BY assigned_at DESC
	`, query.TenantID().Bytes(), query.DriverID().Bytes()).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	assignments := make([]GetActiveAssignmentsQueryResponse, 0)
	for rows.Next() {
		var response GetActiveAssignmentsQueryResponse
		var id, contractID uuid.UUID

		err = rows.Scan(
			&id,
			&contractID,
			&response.PeriodStart,
			&response.PeriodEnd,
			&response.AssignedAt,
		)
		if err != nil {
			return nil, err
		}

		rowID, idErr := kernel.UUIDFromBytes(id[:])
		if idErr != nil {
			return nil, idErr
		}
		response.ID = rowID

		rowContractID, idErr := kernel.UUIDFromBytes(contractID[:])
		if idErr != nil {
			return nil, idErr
		}
		response.ContractID = rowContractID

		assignments = append(assignments, response)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return assignments, nil
}
