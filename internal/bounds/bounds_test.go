package bounds

import (
	"errors"
	"testing"

	"github.com/persiancal/jdp/internal/jcal"
)

func datePtr(y, m, d int) *jcal.Date {
	v := jcal.MustNew(y, m, d)
	return &v
}

func sampleRange(t *testing.T) Range {
	t.Helper()
	r, err := New(datePtr(1403, 10, 15), datePtr(1404, 9, 30))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	return r
}

func TestNewRejectsInvertedRange(t *testing.T) {
	_, err := New(datePtr(1404, 1, 1), datePtr(1403, 1, 1))
	if !errors.Is(err, ErrInvertedRange) {
		t.Fatalf("expected ErrInvertedRange, got %v", err)
	}

	r, err := New(datePtr(1403, 5, 5), datePtr(1403, 5, 5))
	if err != nil {
		t.Fatalf("equal bounds should be accepted: %v", err)
	}
	for _, d := range []jcal.Date{jcal.MustNew(1403, 5, 4), jcal.MustNew(1403, 5, 5), jcal.MustNew(1403, 5, 6)} {
		if !r.IsDayDisabled(d) {
			t.Fatalf("equal bounds should disable %v", d)
		}
	}
}

func TestNewCopiesBounds(t *testing.T) {
	lower := jcal.MustNew(1403, 1, 1)
	r, err := New(&lower, nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	lower = jcal.MustNew(1400, 1, 1)
	if *r.Lower != jcal.MustNew(1403, 1, 1) {
		t.Fatalf("range should not alias caller's date, got %v", *r.Lower)
	}
}

func TestIsDayDisabled(t *testing.T) {
	r := sampleRange(t)

	tests := []struct {
		name string
		date jcal.Date
		want bool
	}{
		{name: "lower bound itself", date: jcal.MustNew(1403, 10, 15), want: true},
		{name: "day before lower", date: jcal.MustNew(1403, 10, 14), want: true},
		{name: "day after lower", date: jcal.MustNew(1403, 10, 16), want: false},
		{name: "inside", date: jcal.MustNew(1404, 3, 1), want: false},
		{name: "day before upper", date: jcal.MustNew(1404, 9, 29), want: false},
		{name: "upper bound itself", date: jcal.MustNew(1404, 9, 30), want: true},
		{name: "after upper", date: jcal.MustNew(1404, 10, 1), want: true},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			if got := r.IsDayDisabled(tt.date); got != tt.want {
				t.Fatalf("IsDayDisabled(%v) = %v, want %v", tt.date, got, tt.want)
			}
			if r.Contains(tt.date) == tt.want {
				t.Fatalf("Contains(%v) should be the negation of IsDayDisabled", tt.date)
			}
		})
	}
}

func TestUnboundedRangeAllowsEverything(t *testing.T) {
	var r Range
	if !r.IsUnbounded() {
		t.Fatalf("zero range should be unbounded")
	}
	d := jcal.MustNew(1300, 1, 1)
	if r.IsDayDisabled(d) || r.IsMonthDisabled(1500, 12) || r.IsYearDisabled(1) {
		t.Fatalf("unbounded range should not disable anything")
	}
	if !r.CanNavigateBackward(d.NextMonth()) || !r.CanNavigateForward(d) {
		t.Fatalf("unbounded range should allow navigation")
	}
	if got := r.String(); got != "- .. -" {
		t.Fatalf("String() = %q", got)
	}
}

func TestOneSidedRanges(t *testing.T) {
	lowerOnly, _ := New(datePtr(1403, 10, 15), nil)
	if lowerOnly.IsDayDisabled(jcal.MustNew(2000, 1, 1)) {
		t.Fatalf("lower-only range should allow far future")
	}
	if !lowerOnly.IsDayDisabled(jcal.MustNew(1403, 10, 15)) {
		t.Fatalf("lower-only range should exclude its bound")
	}

	upperOnly, _ := New(nil, datePtr(1404, 9, 30))
	if upperOnly.IsDayDisabled(jcal.MustNew(1300, 1, 1)) {
		t.Fatalf("upper-only range should allow far past")
	}
	if !upperOnly.IsYearDisabled(1405) || upperOnly.IsYearDisabled(1) {
		t.Fatalf("upper-only year check wrong")
	}
}

func TestIsMonthDisabled(t *testing.T) {
	r := sampleRange(t)

	tests := []struct {
		year, month int
		want        bool
	}{
		{1403, 9, true},
		{1403, 10, true}, // first day 1403-10-01 is before the lower bound
		{1403, 11, false},
		{1404, 9, false},
		{1404, 10, true},
	}
	for _, tt := range tests {
		if got := r.IsMonthDisabled(tt.year, tt.month); got != tt.want {
			t.Fatalf("IsMonthDisabled(%d, %d) = %v, want %v", tt.year, tt.month, got, tt.want)
		}
	}
}

func TestIsYearDisabled(t *testing.T) {
	r := sampleRange(t)

	if r.IsYearDisabled(r.Lower.Year) {
		t.Fatalf("lower-bound year must stay navigable")
	}
	if r.IsYearDisabled(r.Upper.Year) {
		t.Fatalf("upper-bound year must stay navigable")
	}
	if !r.IsYearDisabled(1402) || !r.IsYearDisabled(1405) {
		t.Fatalf("years outside the span should be disabled")
	}
}

func TestNavigationScenario(t *testing.T) {
	r := sampleRange(t)

	if !r.CanNavigateBackward(jcal.MustNew(1403, 11, 2)) {
		t.Fatalf("1403-11 -> 1403-10 should be allowed: days 16..30 are selectable")
	}
	if r.CanNavigateBackward(jcal.MustNew(1403, 10, 1)) {
		t.Fatalf("1403-10 -> 1403-09 should be blocked: its last day is before the lower bound")
	}
	if !r.CanNavigateForward(jcal.MustNew(1404, 8, 1)) {
		t.Fatalf("1404-08 -> 1404-09 should be allowed")
	}
	if r.CanNavigateForward(jcal.MustNew(1404, 9, 1)) {
		t.Fatalf("1404-09 -> 1404-10 should be blocked")
	}
}

func TestNavigationWhenBoundIsMonthEdge(t *testing.T) {
	// Lower bound on the last day of a month: that month has nothing left.
	r, _ := New(datePtr(1403, 9, 30), nil)
	if r.CanNavigateBackward(jcal.MustNew(1403, 10, 1)) {
		t.Fatalf("month ending on the lower bound should not be reachable")
	}

	// Upper bound on the first day of a month: that month has nothing left.
	r, _ = New(nil, datePtr(1404, 2, 1))
	if r.CanNavigateForward(jcal.MustNew(1404, 1, 1)) {
		t.Fatalf("month starting on the upper bound should not be reachable")
	}
}

func TestClampCursorForYearJump(t *testing.T) {
	r := sampleRange(t)

	tests := []struct {
		name        string
		year, month int
		want        jcal.Date
	}{
		{name: "lower year before bound month", year: 1403, month: 3, want: jcal.MustNew(1403, 10, 1)},
		{name: "lower year after bound month", year: 1403, month: 12, want: jcal.MustNew(1403, 12, 1)},
		{name: "upper year after bound month", year: 1404, month: 11, want: jcal.MustNew(1404, 9, 1)},
		{name: "upper year inside", year: 1404, month: 5, want: jcal.MustNew(1404, 5, 1)},
		{name: "non boundary year", year: 1410, month: 7, want: jcal.MustNew(1410, 7, 1)},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			if got := r.ClampCursorForYearJump(tt.year, tt.month); got != tt.want {
				t.Fatalf("ClampCursorForYearJump(%d, %d) = %v, want %v", tt.year, tt.month, got, tt.want)
			}
		})
	}
}

func TestClampCursorCrossesYearEnd(t *testing.T) {
	// The day after 1403-12-30 is 1404-01-01.
	r, _ := New(datePtr(1403, 12, 30), nil)
	if got := r.ClampCursorForYearJump(1403, 12); got != jcal.MustNew(1404, 1, 1) {
		t.Fatalf("expected clamp into next year, got %v", got)
	}
}

func TestString(t *testing.T) {
	r := sampleRange(t)
	if got := r.String(); got != "1403-10-15 .. 1404-09-30" {
		t.Fatalf("String() = %q", got)
	}
}
