package kernel

import (
	"fmt"
	"time"

	"fleetadmin/internal/pkg/errs"
)

// ErrDateRangeIsNotConstructed indicates that a DateRange was not created through
// the NewDateRange constructor. This error is returned when validating a
// zero-value DateRange.
var ErrDateRangeIsNotConstructed = errs.NewValueIsRequiredError("DateRange must be created via NewDateRange")

// DateRange is a value object representing an inclusive calendar-day interval.
// It is used for contract periods and driver assignment windows.
//
// A DateRange is valid only when its end date is strictly after its start
// date; single-day and inverted ranges are rejected at construction. Dates
// are normalized to UTC midnight so that comparisons operate on calendar
// days rather than instants.
//
// DateRange is immutable and safe for concurrent use.
//
// Example usage:
//
//	period, err := kernel.NewDateRange(
//	    time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC),
//	    time.Date(2024, 1, 10, 0, 0, 0, 0, time.UTC),
//	)
//	if err != nil {
//	    // handle validation error
//	}
type DateRange struct {
	start time.Time
	end   time.Time
}

// NewDateRange creates a DateRange spanning the given start and end dates.
// Both are truncated to their calendar day in UTC. Returns a validation
// error when end is not strictly after start.
func NewDateRange(start, end time.Time) (DateRange, error) {
	start = DateOf(start)
	end = DateOf(end)

	if !end.After(start) {
		return DateRange{}, errs.NewValueIsInvalidErrorWithCause(
			"dateRange",
			fmt.Errorf("end date %s is not after start date %s",
				end.Format(time.DateOnly), start.Format(time.DateOnly)),
		)
	}

	return DateRange{start: start, end: end}, nil
}

// DateOf normalizes a time to its calendar day: UTC midnight.
// All date comparisons in the domain operate on normalized dates.
func DateOf(t time.Time) time.Time {
	t = t.UTC()
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}

// Start returns the first day of the range.
func (r DateRange) Start() time.Time {
	return r.start
}

// End returns the last day of the range. The end day itself belongs to the range.
func (r DateRange) End() time.Time {
	return r.end
}

// Overlaps reports whether two ranges share at least one calendar day.
// Ranges that merely touch (one ends the day the other starts) do overlap,
// since both ends are inclusive: NOT(r.end < other.start OR r.start > other.end).
func (r DateRange) Overlaps(other DateRange) bool {
	return !(r.end.Before(other.start) || r.start.After(other.end))
}

// ContainsDate reports whether the given date falls inside the range, both ends inclusive.
func (r DateRange) ContainsDate(date time.Time) bool {
	d := DateOf(date)
	return !d.Before(r.start) && !d.After(r.end)
}

// IsEqual compares two ranges by their start and end days.
func (r DateRange) IsEqual(other DateRange) bool {
	return r.start.Equal(other.start) && r.end.Equal(other.end)
}

// String returns the range in "YYYY-MM-DD..YYYY-MM-DD" form.
func (r DateRange) String() string {
	return r.start.Format(time.DateOnly) + ".." + r.end.Format(time.DateOnly)
}

// Validate checks that the DateRange was properly constructed.
// Returns ErrDateRangeIsNotConstructed for a zero value.
func (r DateRange) Validate() error {
	if r.start.IsZero() || r.end.IsZero() {
		return ErrDateRangeIsNotConstructed
	}
	return nil
}
