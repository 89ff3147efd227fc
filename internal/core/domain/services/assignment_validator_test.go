package services_test

import (
	"testing"
	"time"

	"fleetadmin/internal/core/domain/model/assignment"
	"fleetadmin/internal/core/domain/model/driver"
	"fleetadmin/internal/core/domain/model/kernel"
	"fleetadmin/internal/core/domain/services"
	"fleetadmin/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var testNow = time.Date(2024, 1, 15, 10, 0, 0, 0, time.UTC)

func dateRange(t *testing.T, startDay, endDay int) kernel.DateRange {
	t.Helper()
	period, err := kernel.NewDateRange(
		time.Date(2024, 2, startDay, 0, 0, 0, 0, time.UTC),
		time.Date(2024, 2, endDay, 0, 0, 0, 0, time.UTC),
	)
	require.NoError(t, err)
	return period
}

func availableDriver(t *testing.T) *driver.Driver {
	t.Helper()
	expiry := time.Date(2025, 6, 30, 0, 0, 0, 0, time.UTC)
	d, err := driver.NewDriver(kernel.NewUUID(), kernel.NewUUID(), expiry, testNow)
	require.NoError(t, err)
	return d
}

func activeAssignment(t *testing.T, driverID kernel.UUID, period kernel.DateRange) *assignment.Assignment {
	t.Helper()
	a, err := assignment.NewAssignment(
		kernel.NewUUID(), kernel.NewUUID(), driverID, kernel.NewUUID(), period, testNow,
	)
	require.NoError(t, err)
	return a
}

func TestAssignmentValidator_ValidateForAssignment(t *testing.T) {
	validator := services.NewAssignmentValidator()

	t.Run("passes for eligible driver with no assignments", func(t *testing.T) {
		drv := availableDriver(t)
		err := validator.ValidateForAssignment(drv, dateRange(t, 1, 10), testNow, nil)
		assert.NoError(t, err)
	})

	t.Run("passes when active assignments do not overlap", func(t *testing.T) {
		drv := availableDriver(t)
		active := []*assignment.Assignment{
			activeAssignment(t, drv.ID(), dateRange(t, 1, 5)),
		}

		err := validator.ValidateForAssignment(drv, dateRange(t, 6, 10), testNow, active)
		assert.NoError(t, err)
	})

	t.Run("rejects overlapping active assignment", func(t *testing.T) {
		drv := availableDriver(t)
		active := []*assignment.Assignment{
			activeAssignment(t, drv.ID(), dateRange(t, 1, 10)),
		}

		err := validator.ValidateForAssignment(drv, dateRange(t, 8, 20), testNow, active)

		require.ErrorIs(t, err, errs.ErrAssignmentConflict)
		var conflictErr *errs.AssignmentConflictError
		require.ErrorAs(t, err, &conflictErr)
		assert.Equal(t, 1, conflictErr.Conflicts)
	})

	t.Run("rejects when ranges touch on a boundary day", func(t *testing.T) {
		drv := availableDriver(t)
		active := []*assignment.Assignment{
			activeAssignment(t, drv.ID(), dateRange(t, 1, 10)),
		}

		err := validator.ValidateForAssignment(drv, dateRange(t, 10, 20), testNow, active)
		assert.ErrorIs(t, err, errs.ErrAssignmentConflict)
	})

	t.Run("ignores ended assignments", func(t *testing.T) {
		drv := availableDriver(t)
		ended := activeAssignment(t, drv.ID(), dateRange(t, 1, 10))
		require.NoError(t, ended.Unassign("driver detached", testNow))

		err := validator.ValidateForAssignment(drv, dateRange(t, 5, 15), testNow,
			[]*assignment.Assignment{ended})
		assert.NoError(t, err)
	})

	t.Run("counts every overlapping assignment", func(t *testing.T) {
		drv := availableDriver(t)
		active := []*assignment.Assignment{
			activeAssignment(t, drv.ID(), dateRange(t, 1, 5)),
			activeAssignment(t, drv.ID(), dateRange(t, 8, 12)),
		}

		err := validator.ValidateForAssignment(drv, dateRange(t, 4, 9), testNow, active)

		var conflictErr *errs.AssignmentConflictError
		require.ErrorAs(t, err, &conflictErr)
		assert.Equal(t, 2, conflictErr.Conflicts)
	})

	t.Run("rejects suspended driver before checking overlaps", func(t *testing.T) {
		drv := availableDriver(t)
		require.NoError(t, drv.Suspend("policy violation", testNow))

		err := validator.ValidateForAssignment(drv, dateRange(t, 1, 10), testNow, nil)
		assert.ErrorIs(t, err, errs.ErrDriverIneligible)
	})

	t.Run("passes when the license outlasts today but not the period", func(t *testing.T) {
		// valid on the evaluation date, expires before the period starts
		expiry := time.Date(2024, 1, 31, 0, 0, 0, 0, time.UTC)
		drv, err := driver.NewDriver(kernel.NewUUID(), kernel.NewUUID(), expiry, testNow)
		require.NoError(t, err)

		err = validator.ValidateForAssignment(drv, dateRange(t, 1, 10), testNow, nil)
		assert.NoError(t, err)
	})

	t.Run("rejects driver whose license expired before today", func(t *testing.T) {
		// valid at the period's start, expired by the evaluation date
		expiry := time.Date(2024, 1, 10, 0, 0, 0, 0, time.UTC)
		drv, err := driver.NewDriver(kernel.NewUUID(), kernel.NewUUID(), expiry, testNow)
		require.NoError(t, err)

		period, err := kernel.NewDateRange(
			time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC),
			time.Date(2024, 1, 31, 0, 0, 0, 0, time.UTC),
		)
		require.NoError(t, err)

		err = validator.ValidateForAssignment(drv, period, testNow, nil)
		assert.ErrorIs(t, err, errs.ErrDriverIneligible)
	})
}

func TestAssignmentValidator_HasOverlappingAssignments(t *testing.T) {
	validator := services.NewAssignmentValidator()
	driverID := kernel.NewUUID()

	t.Run("true when an active assignment overlaps", func(t *testing.T) {
		active := []*assignment.Assignment{
			activeAssignment(t, driverID, dateRange(t, 1, 10)),
		}
		assert.True(t, validator.HasOverlappingAssignments(dateRange(t, 5, 15), active))
	})

	t.Run("false when nothing overlaps", func(t *testing.T) {
		active := []*assignment.Assignment{
			activeAssignment(t, driverID, dateRange(t, 1, 4)),
		}
		assert.False(t, validator.HasOverlappingAssignments(dateRange(t, 5, 15), active))
	})
}
