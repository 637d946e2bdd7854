// Package bounds decides which dates, months and years a picker may offer
// given optional lower and upper boundary dates.
//
// Boundaries are exclusive on both ends: the boundary days themselves are
// never selectable. All comparisons go through jcal.Date.EpochMillis.
package bounds

import (
	"errors"
	"fmt"

	"github.com/persiancal/jdp/internal/jcal"
)

// ErrInvertedRange is returned when the lower bound is after the upper bound.
var ErrInvertedRange = errors.New("lower bound is after upper bound")

// Range is an optional pair of boundary dates. A nil side is unbounded.
// The zero value allows every date.
type Range struct {
	Lower *jcal.Date
	Upper *jcal.Date
}

// New builds a Range, rejecting lower > upper. Equal bounds are accepted
// and disable every day.
func New(lower, upper *jcal.Date) (Range, error) {
	if lower != nil && upper != nil && lower.After(*upper) {
		return Range{}, fmt.Errorf("%w: %s > %s", ErrInvertedRange, lower, upper)
	}
	r := Range{}
	if lower != nil {
		l := *lower
		r.Lower = &l
	}
	if upper != nil {
		u := *upper
		r.Upper = &u
	}
	return r, nil
}

// IsUnbounded reports whether neither side is set.
func (r Range) IsUnbounded() bool {
	return r.Lower == nil && r.Upper == nil
}

func (r Range) atOrBeforeLower(d jcal.Date) bool {
	return r.Lower != nil && d.EpochMillis() <= r.Lower.EpochMillis()
}

func (r Range) atOrAfterUpper(d jcal.Date) bool {
	return r.Upper != nil && d.EpochMillis() >= r.Upper.EpochMillis()
}

// IsDayDisabled reports whether d is at or beyond either boundary.
func (r Range) IsDayDisabled(d jcal.Date) bool {
	return r.atOrBeforeLower(d) || r.atOrAfterUpper(d)
}

// Contains reports whether d is selectable.
func (r Range) Contains(d jcal.Date) bool {
	return !r.IsDayDisabled(d)
}

// IsMonthDisabled applies the day comparator to the first day of the month.
// The lower bound's own month is therefore disabled in the month list even
// when days after the bound remain selectable; arrow navigation and year
// jumps still reach it.
func (r Range) IsMonthDisabled(year, month int) bool {
	return r.IsDayDisabled(jcal.Date{Year: year, Month: month, Day: 1})
}

// IsYearDisabled reports whether year lies wholly outside the boundary
// years. A boundary year itself stays enabled.
func (r Range) IsYearDisabled(year int) bool {
	if r.Lower != nil && year < r.Lower.Year {
		return true
	}
	if r.Upper != nil && year > r.Upper.Year {
		return true
	}
	return false
}

// monthBeforeRange reports whether every day of m's month is at or before
// the lower bound.
func (r Range) monthBeforeRange(m jcal.Date) bool {
	return r.atOrBeforeLower(m.LastOfMonth())
}

// monthAfterRange reports whether every day of m's month is at or after the
// upper bound.
func (r Range) monthAfterRange(m jcal.Date) bool {
	return r.atOrAfterUpper(m.FirstOfMonth())
}

// CanNavigateForward reports whether the month after cursor still has a
// selectable day.
func (r Range) CanNavigateForward(cursor jcal.Date) bool {
	return !r.monthAfterRange(cursor.NextMonth())
}

// CanNavigateBackward reports whether the month before cursor still has a
// selectable day.
func (r Range) CanNavigateBackward(cursor jcal.Date) bool {
	return !r.monthBeforeRange(cursor.PrevMonth())
}

// ClampCursorForYearJump returns the cursor for a jump to targetYear while
// currentMonth is displayed. When that month is wholly outside the range
// and targetYear is a boundary year, the month adjacent to the bound is
// used instead so the day view has selectable days.
func (r Range) ClampCursorForYearJump(targetYear, currentMonth int) jcal.Date {
	candidate := jcal.Date{Year: targetYear, Month: currentMonth, Day: 1}

	if r.Lower != nil && targetYear == r.Lower.Year && r.monthBeforeRange(candidate) {
		return r.Lower.Tomorrow().FirstOfMonth()
	}
	if r.Upper != nil && targetYear == r.Upper.Year && r.monthAfterRange(candidate) {
		return r.Upper.Yesterday().FirstOfMonth()
	}
	return candidate
}

// String renders the range as "lower .. upper" with "-" for open sides.
func (r Range) String() string {
	lower, upper := "-", "-"
	if r.Lower != nil {
		lower = r.Lower.String()
	}
	if r.Upper != nil {
		upper = r.Upper.String()
	}
	return lower + " .. " + upper
}
