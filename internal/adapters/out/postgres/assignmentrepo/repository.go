package assignmentrepo

import (
	"context"
	"errors"

	"fleetadmin/internal/core/domain/model/assignment"
	"fleetadmin/internal/core/domain/model/kernel"
	"fleetadmin/internal/pkg/errs"

	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"
)

const overlapConstraintName = "assignments_no_active_overlap"

// exclusion_violation
const pgExclusionViolation = "23P01"

// OverlapGuardDDL creates a database-level backstop against overlapping
// active assignments for the same driver. The application detects conflicts
// before inserting; this exclusion constraint catches writers racing past
// the check under concurrent transactions. Requires the btree_gist
// extension. Idempotent, run after migration.
const OverlapGuardDDL = `
CREATE EXTENSION IF NOT EXISTS btree_gist;
DO $$
BEGIN
	IF NOT EXISTS (
		SELECT 1 FROM pg_constraint WHERE conname = 'assignments_no_active_overlap'
	) THEN
		ALTER TABLE assignments
			ADD CONSTRAINT assignments_no_active_overlap
			EXCLUDE USING gist (
				driver_id WITH =,
				daterange(period_start, period_end, '[]') WITH &&
			)
			WHERE (status = 'Assigned' AND unassigned_at IS NULL);
	END IF;
END $$;
`

// GormAssignmentRepository implements AssignmentRepository using GORM.
type GormAssignmentRepository struct {
	db      *gorm.DB
	tracker aggregateTracker
}

// aggregateTracker defines the interface for tracking aggregates.
type aggregateTracker interface {
	TrackAggregate(id kernel.UUID, aggregate any)
}

// NewGormAssignmentRepository creates a new GORM assignment repository.
func NewGormAssignmentRepository(db *gorm.DB, tracker aggregateTracker) *GormAssignmentRepository {
	return &GormAssignmentRepository{
		db:      db,
		tracker: tracker,
	}
}

// Add persists a new ledger row. A writer racing past the application's
// overlap check trips the exclusion constraint; that violation surfaces as
// an AssignmentConflictError, same as the check itself.
func (r *GormAssignmentRepository) Add(ctx context.Context, aggregate *assignment.Assignment) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	if err := r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) &&
			pgErr.Code == pgExclusionViolation &&
			pgErr.ConstraintName == overlapConstraintName {
			return errs.NewAssignmentConflictError(aggregate.DriverID().String(), 1)
		}
		return err
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

// Update persists changes to a ledger row using an optimistic version check.
// Zero affected rows means a concurrent writer advanced the version first
// and the call fails with ConcurrencyConflictError. The aggregate is stale
// after a successful update and must be reloaded before further writes.
func (r *GormAssignmentRepository) Update(ctx context.Context, aggregate *assignment.Assignment) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	dto.Version = aggregate.Version() + 1

	result := r.db.WithContext(ctx).Model(&AssignmentDTO{}).
		Where("id = ? AND version = ?", dto.ID, aggregate.Version()).
		Select("*").
		Updates(&dto)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return errs.NewConcurrencyConflictError("assignment", aggregate.ID().String(), aggregate.Version())
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

// Get retrieves a ledger row by ID within a tenant.
func (r *GormAssignmentRepository) Get(
	ctx context.Context, tenantID, id kernel.UUID,
) (*assignment.Assignment, error) {
	if err := tenantID.Validate(); err != nil {
		return nil, err
	}
	if err := id.Validate(); err != nil {
		return nil, err
	}

	var dto AssignmentDTO
	err := r.db.WithContext(ctx).
		First(&dto, "id = ? AND tenant_id = ?", id.Bytes(), tenantID.Bytes()).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("assignment", id.String())
		}
		return nil, err
	}

	return toDomain(dto)
}

// GetActiveByDriver retrieves the driver's active ledger rows.
func (r *GormAssignmentRepository) GetActiveByDriver(
	ctx context.Context, tenantID, driverID kernel.UUID,
) ([]*assignment.Assignment, error) {
	if err := driverID.Validate(); err != nil {
		return nil, err
	}

	return r.getAll(ctx,
		"tenant_id = ? AND driver_id = ? AND status = ? AND unassigned_at IS NULL",
		tenantID.Bytes(), driverID.Bytes(), assignment.Assigned.String())
}

// GetActiveByContract retrieves the active ledger rows attached to a contract.
func (r *GormAssignmentRepository) GetActiveByContract(
	ctx context.Context, tenantID, contractID kernel.UUID,
) ([]*assignment.Assignment, error) {
	if err := contractID.Validate(); err != nil {
		return nil, err
	}

	return r.getAll(ctx,
		"tenant_id = ? AND contract_id = ? AND status = ? AND unassigned_at IS NULL",
		tenantID.Bytes(), contractID.Bytes(), assignment.Assigned.String())
}

// GetAllByDriver retrieves the driver's full assignment history, newest first.
func (r *GormAssignmentRepository) GetAllByDriver(
	ctx context.Context, tenantID, driverID kernel.UUID,
) ([]*assignment.Assignment, error) {
	if err := driverID.Validate(); err != nil {
		return nil, err
	}

	return r.getAll(ctx,
		"tenant_id = ? AND driver_id = ?",
		tenantID.Bytes(), driverID.Bytes())
}

func (r *GormAssignmentRepository) getAll(
	ctx context.Context, query string, args ...any,
) ([]*assignment.Assignment, error) {
	var dtos []AssignmentDTO
	if err := r.db.WithContext(ctx).
		Where(query, args...).
		Order("assigned_at DESC").
		Find(&dtos).Error; err != nil {
		return nil, err
	}

	rows := make([]*assignment.Assignment, 0, len(dtos))
	for _, dto := range dtos {
		a, err := toDomain(dto)
		if err != nil {
			return nil, err
		}
		rows = append(rows, a)
	}

	return rows, nil
}
