package queries

import (
	"context"

	"fleetadmin/internal/pkg/auth"

	"gorm.io/gorm"
)

// GetStatusSummaryQueryHandler counts contracts per lifecycle status.
// Uses direct SQL for optimal read performance in the CQRS pattern;
// soft-deleted contracts keep their Cancelled status and stay countable.
type GetStatusSummaryQueryHandler struct {
	db *gorm.DB
}

// NewGetStatusSummaryQueryHandler creates a handler for status summary queries.
func NewGetStatusSummaryQueryHandler(db *gorm.DB) GetStatusSummaryQueryHandler {
	return GetStatusSummaryQueryHandler{db: db}
}

// Handle executes the summary query. The tenant-scoped form requires the
// view-reports permission inside that tenant; the all-tenants form is
// reserved for the system context.
func (h GetStatusSummaryQueryHandler) Handle(
	ctx context.Context, ac auth.Context, query GetStatusSummaryQuery,
) ([]GetStatusSummaryQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}
	if err := auth.RequirePermission(ac, auth.PermViewReports); err != nil {
		return nil, err
	}

	if query.AllTenants() {
		if !ac.IsSystem() {
			return nil, auth.ErrPermissionDenied
		}
		return h.scan(h.db.WithContext(ctx).Raw(`
			SELECT status, COUNT(*)
			FROM contracts
			GROUP BY status
			ORDER BY status
		`))
	}

	if err := auth.RequireTenant(ac, query.TenantID()); err != nil {
		return nil, err
	}

	return h.scan(h.db.WithContext(ctx).Raw(`
		SELECT status, COUNT(*)
		FROM contracts
		WHERE tenant_id = ?
		GROUP BY status
		ORDER BY status
	`, query.TenantID().Bytes()))
}

func (h GetStatusSummaryQueryHandler) scan(tx *gorm.DB) ([]GetStatusSummaryQueryResponse, error) {
	rows, err := tx.Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	summary := make([]GetStatusSummaryQueryResponse, 0)
	for rows.Next() {
		var row GetStatusSummaryQueryResponse
		if err = rows.Scan(&row.Status, &row.Count); err != nil {
			return nil, err
		}
		summary = append(summary, row)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return summary, nil
}
