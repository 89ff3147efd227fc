package contractrepo

import (
	"context"
	"errors"
	"time"

	"fleetadmin/internal/core/domain/model/contract"
	"fleetadmin/internal/core/domain/model/kernel"
	"fleetadmin/internal/pkg/errs"

	"gorm.io/gorm"
)

// GormContractRepository implements ContractRepository using GORM.
type GormContractRepository struct {
	db      *gorm.DB
	tracker aggregateTracker
}

// aggregateTracker defines the interface for tracking aggregates.
type aggregateTracker interface {
	TrackAggregate(id kernel.UUID, aggregate any)
}

// NewGormContractRepository creates a new GORM contract repository.
func NewGormContractRepository(db *gorm.DB, tracker aggregateTracker) *GormContractRepository {
	return &GormContractRepository{
		db:      db,
		tracker: tracker,
	}
}

// Add saves a new contract with its vehicle entries to the database.
func (r *GormContractRepository) Add(ctx context.Context, aggregate *contract.Contract) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	if err := r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		return err
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

// Update saves an existing contract using an optimistic version check.
// The row is matched on id AND the aggregate's version and written with
// version+1; zero affected rows means a concurrent writer got there first and
// the call fails with ConcurrencyConflictError leaving the row untouched.
// The aggregate is stale after a successful update and must be reloaded
// before further writes.
func (r *GormContractRepository) Update(ctx context.Context, aggregate *contract.Contract) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	dto.Version = aggregate.Version() + 1

	result := r.db.WithContext(ctx).Model(&ContractDTO{}).
		Where("id = ? AND version = ?", dto.ID, aggregate.Version()).
		Select("*").Omit("Vehicles", "CreatedAt").
		Updates(&dto)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return errs.NewConcurrencyConflictError("contract", aggregate.ID().String(), aggregate.Version())
	}

	for i := range dto.Vehicles {
		if err := r.db.WithContext(ctx).Save(&dto.Vehicles[i]).Error; err != nil {
			return err
		}
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

// Get retrieves a contract by ID within a tenant. Soft-deleted contracts are
// treated as absent.
func (r *GormContractRepository) Get(
	ctx context.Context, tenantID, id kernel.UUID,
) (*contract.Contract, error) {
	if err := tenantID.Validate(); err != nil {
		return nil, err
	}
	if err := id.Validate(); err != nil {
		return nil, err
	}

	var dto ContractDTO
	err := r.db.WithContext(ctx).Preload("Vehicles").
		First(&dto, "id = ? AND tenant_id = ? AND deleted = false", id.Bytes(), tenantID.Bytes()).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("contract", id.String())
		}
		return nil, err
	}

	return toDomain(dto)
}

// GetAllPendingStartingBy retrieves, across all tenants, the Pending
// contracts whose period starts on or before the given date. Feeds the
// activation pass.
func (r *GormContractRepository) GetAllPendingStartingBy(
	ctx context.Context, date time.Time,
) ([]*contract.Contract, error) {
	return r.getAll(ctx, "status = ? AND period_start <= ? AND deleted = false",
		contract.Pending.String(), date)
}

// GetAllActiveEndedBy retrieves, across all tenants, the Active contracts
// whose period ended strictly before the given date. Feeds the overdue pass.
func (r *GormContractRepository) GetAllActiveEndedBy(
	ctx context.Context, date time.Time,
) ([]*contract.Contract, error) {
	return r.getAll(ctx, "status = ? AND period_end < ? AND deleted = false",
		contract.Active.String(), date)
}

func (r *GormContractRepository) getAll(
	ctx context.Context, query string, args ...any,
) ([]*contract.Contract, error) {
	var dtos []ContractDTO
	if err := r.db.WithContext(ctx).Preload("Vehicles").
		Where(query, args...).
		Order("period_start").
		Find(&dtos).Error; err != nil {
		return nil, err
	}

	contracts := make([]*contract.Contract, 0, len(dtos))
	for _, dto := range dtos {
		c, err := toDomain(dto)
		if err != nil {
			return nil, err
		}
		contracts = append(contracts, c)
	}

	return contracts, nil
}
