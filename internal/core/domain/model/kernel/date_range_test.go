package kernel_test

import (
	"testing"
	"time"

	"fleetadmin/internal/core/domain/model/kernel"
	"fleetadmin/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func mustRange(t *testing.T, start, end time.Time) kernel.DateRange {
	t.Helper()
	r, err := kernel.NewDateRange(start, end)
	require.NoError(t, err)
	return r
}

func TestNewDateRange(t *testing.T) {
	t.Run("should create a valid range", func(t *testing.T) {
		r, err := kernel.NewDateRange(date(2024, 1, 1), date(2024, 1, 10))

		require.NoError(t, err)
		assert.Equal(t, date(2024, 1, 1), r.Start())
		assert.Equal(t, date(2024, 1, 10), r.End())
		assert.NoError(t, r.Validate())
	})

	t.Run("should normalize times to calendar days", func(t *testing.T) {
		start := time.Date(2024, 1, 1, 23, 45, 11, 0, time.UTC)
		end := time.Date(2024, 1, 10, 1, 2, 3, 0, time.UTC)

		r, err := kernel.NewDateRange(start, end)

		require.NoError(t, err)
		assert.Equal(t, date(2024, 1, 1), r.Start())
		assert.Equal(t, date(2024, 1, 10), r.End())
	})

	t.Run("should reject end equal to start", func(t *testing.T) {
		_, err := kernel.NewDateRange(date(2024, 1, 1), date(2024, 1, 1))

		require.Error(t, err)
		assert.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})

	t.Run("should reject end before start", func(t *testing.T) {
		_, err := kernel.NewDateRange(date(2024, 1, 10), date(2024, 1, 1))

		require.Error(t, err)
		assert.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})

	t.Run("zero value fails validation", func(t *testing.T) {
		var r kernel.DateRange
		assert.Error(t, r.Validate())
	})
}

func TestDateRange_Overlaps(t *testing.T) {
	base := mustRange(t, date(2024, 1, 1), date(2024, 1, 10))

	tests := []struct {
		name     string
		other    kernel.DateRange
		overlaps bool
	}{
		{"contained range", mustRange(t, date(2024, 1, 3), date(2024, 1, 7)), true},
		{"partial overlap at end", mustRange(t, date(2024, 1, 5), date(2024, 1, 15)), true},
		{"partial overlap at start", mustRange(t, date(2023, 12, 25), date(2024, 1, 2)), true},
		{"touching at end counts as overlap", mustRange(t, date(2024, 1, 10), date(2024, 1, 20)), true},
		{"touching at start counts as overlap", mustRange(t, date(2023, 12, 20), date(2024, 1, 1)), true},
		{"disjoint after", mustRange(t, date(2024, 1, 11), date(2024, 1, 20)), false},
		{"disjoint before", mustRange(t, date(2023, 12, 1), date(2023, 12, 31)), false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.overlaps, base.Overlaps(tt.other))
			assert.Equal(t, tt.overlaps, tt.other.Overlaps(base))
		})
	}
}

func TestDateRange_ContainsDate(t *testing.T) {
	r := mustRange(t, date(2024, 1, 1), date(2024, 1, 10))

	assert.True(t, r.ContainsDate(date(2024, 1, 1)))
	assert.True(t, r.ContainsDate(date(2024, 1, 10)))
	assert.True(t, r.ContainsDate(time.Date(2024, 1, 5, 18, 30, 0, 0, time.UTC)))
	assert.False(t, r.ContainsDate(date(2023, 12, 31)))
	assert.False(t, r.ContainsDate(date(2024, 1, 11)))
}

func TestDateOf(t *testing.T) {
	moment := time.Date(2024, 3, 15, 22, 59, 59, 999, time.FixedZone("X", 3*3600))

	normalized := kernel.DateOf(moment)

	assert.Equal(t, time.UTC, normalized.Location())
	assert.Equal(t, 0, normalized.Hour())
	assert.Equal(t, date(2024, 3, 15), normalized)
}

func TestDateRange_IsEqual(t *testing.T) {
	a := mustRange(t, date(2024, 1, 1), date(2024, 1, 10))
	b := mustRange(t, date(2024, 1, 1), date(2024, 1, 10))
	c := mustRange(t, date(2024, 1, 1), date(2024, 1, 11))

	assert.True(t, a.IsEqual(b))
	assert.False(t, a.IsEqual(c))
}
