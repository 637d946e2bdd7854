// Package jcal adapts github.com/yaa110/go-persian-calendar to the small
// date value the picker works with.
//
// A Date is a plain comparable struct so that equality is always field-wise.
// Ordering never compares fields directly: it goes through EpochMillis, the
// Gregorian instant of the date's midnight in a fixed location.
package jcal

import (
	"errors"
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"time"
	_ "time/tzdata"

	ptime "github.com/yaa110/go-persian-calendar"

	"github.com/persiancal/jdp/internal/digits"
)

// ErrInvalidDate is wrapped by every construction or parse failure.
var ErrInvalidDate = errors.New("invalid jalali date")

// Clock returns the current instant. Tests substitute a fixed clock.
type Clock func() time.Time

// SystemClock is the wall clock.
var SystemClock Clock = time.Now

var location = loadLocation()

func loadLocation() *time.Location {
	loc, err := time.LoadLocation("Asia/Tehran")
	if err != nil {
		return time.UTC
	}
	return loc
}

// Location returns the zone dates are anchored to.
func Location() *time.Location {
	return location
}

// Date is a Jalali calendar day.
type Date struct {
	Year  int `json:"year" yaml:"year"`
	Month int `json:"month" yaml:"month"`
	Day   int `json:"day" yaml:"day"`
}

// New validates and builds a Date.
func New(year, month, day int) (Date, error) {
	if year < 1 {
		return Date{}, fmt.Errorf("%w: year %d", ErrInvalidDate, year)
	}
	if month < 1 || month > 12 {
		return Date{}, fmt.Errorf("%w: month %d", ErrInvalidDate, month)
	}
	if n := MonthLength(year, month); day < 1 || day > n {
		return Date{}, fmt.Errorf("%w: day %d (month %d of %d has %d days)", ErrInvalidDate, day, month, year, n)
	}
	return Date{Year: year, Month: month, Day: day}, nil
}

// MustNew is New for constants; it panics on invalid input.
func MustNew(year, month, day int) Date {
	d, err := New(year, month, day)
	if err != nil {
		panic(err)
	}
	return d
}

// FromTime converts a Gregorian instant to the Jalali day it falls on in
// the package location.
func FromTime(t time.Time) Date {
	pt := ptime.New(t.In(location))
	return Date{Year: pt.Year(), Month: int(pt.Month()), Day: pt.Day()}
}

// Today returns the current Jalali day according to clock.
func Today(clock Clock) Date {
	if clock == nil {
		clock = SystemClock
	}
	return FromTime(clock())
}

// MonthLength returns the number of days in a Jalali month.
func MonthLength(year, month int) int {
	return ptime.Date(year, ptime.Month(month), 1, 0, 0, 0, 0, location).LastMonthDay().Day()
}

// IsLeapYear reports whether Esfand of year has 30 days.
func IsLeapYear(year int) bool {
	return ptime.Date(year, ptime.Esfand, 1, 0, 0, 0, 0, location).IsLeap()
}

// MonthName returns the Persian name of month (1..12).
func MonthName(month int) string {
	return ptime.Month(month).String()
}

func (d Date) ptime() ptime.Time {
	return ptime.Date(d.Year, ptime.Month(d.Month), d.Day, 0, 0, 0, 0, location)
}

// IsZero reports whether d is the zero value, which is not a valid date.
func (d Date) IsZero() bool {
	return d == Date{}
}

// Time returns the Gregorian midnight of d.
func (d Date) Time() time.Time {
	return d.ptime().Time()
}

// EpochMillis is the ordering key between two dates.
func (d Date) EpochMillis() int64 {
	return d.Time().UnixMilli()
}

// Compare returns -1, 0 or +1 ordering d against other by EpochMillis.
func (d Date) Compare(other Date) int {
	a, b := d.EpochMillis(), other.EpochMillis()
	switch {
	case a < b:
		return -1
	case a > b:
		return 1
	default:
		return 0
	}
}

// Before reports whether d is strictly earlier than other.
func (d Date) Before(other Date) bool {
	return d.Compare(other) < 0
}

// After reports whether d is strictly later than other.
func (d Date) After(other Date) bool {
	return d.Compare(other) > 0
}

// Weekday returns 1..7 with Saturday = 1 and Friday = 7.
func (d Date) Weekday() int {
	return int(d.ptime().Weekday()) + 1
}

// WeekdayName returns the Persian name of d's weekday.
func (d Date) WeekdayName() string {
	return d.ptime().Weekday().String()
}

// MonthLength returns the length of d's month.
func (d Date) MonthLength() int {
	return MonthLength(d.Year, d.Month)
}

// MonthName returns the Persian name of d's month.
func (d Date) MonthName() string {
	return MonthName(d.Month)
}

// IsLeap reports whether d's year is a leap year.
func (d Date) IsLeap() bool {
	return IsLeapYear(d.Year)
}

// Tomorrow returns the following day.
func (d Date) Tomorrow() Date {
	pt := d.ptime().Tomorrow()
	return Date{Year: pt.Year(), Month: int(pt.Month()), Day: pt.Day()}
}

// Yesterday returns the preceding day.
func (d Date) Yesterday() Date {
	pt := d.ptime().Yesterday()
	return Date{Year: pt.Year(), Month: int(pt.Month()), Day: pt.Day()}
}

// FirstOfMonth returns day 1 of d's month.
func (d Date) FirstOfMonth() Date {
	return Date{Year: d.Year, Month: d.Month, Day: 1}
}

// LastOfMonth returns the last day of d's month.
func (d Date) LastOfMonth() Date {
	return Date{Year: d.Year, Month: d.Month, Day: d.MonthLength()}
}

// NextMonth returns day 1 of the following month, wrapping Esfand to
// Farvardin of the next year.
func (d Date) NextMonth() Date {
	if d.Month == 12 {
		return Date{Year: d.Year + 1, Month: 1, Day: 1}
	}
	return Date{Year: d.Year, Month: d.Month + 1, Day: 1}
}

// PrevMonth returns day 1 of the preceding month, wrapping Farvardin to
// Esfand of the previous year.
func (d Date) PrevMonth() Date {
	if d.Month == 1 {
		return Date{Year: d.Year - 1, Month: 12, Day: 1}
	}
	return Date{Year: d.Year, Month: d.Month - 1, Day: 1}
}

// SameMonth reports whether d and other share year and month.
func (d Date) SameMonth(other Date) bool {
	return d.Year == other.Year && d.Month == other.Month
}

// String formats d as YYYY-MM-DD with ASCII digits.
func (d Date) String() string {
	return fmt.Sprintf("%04d-%02d-%02d", d.Year, d.Month, d.Day)
}

// MarshalText implements encoding.TextMarshaler.
func (d Date) MarshalText() ([]byte, error) {
	return []byte(d.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (d *Date) UnmarshalText(text []byte) error {
	parsed, err := Parse(string(text))
	if err != nil {
		return err
	}
	*d = parsed
	return nil
}

var dateRegex = regexp.MustCompile(`^(\d{1,4})[-/](\d{1,2})[-/](\d{1,2})$`)

// Parse reads YYYY-MM-DD or YYYY/MM/DD. Persian and Arabic-Indic digits
// are accepted.
func Parse(s string) (Date, error) {
	normalized := digits.ToASCII(strings.TrimSpace(s))
	m := dateRegex.FindStringSubmatch(normalized)
	if m == nil {
		return Date{}, fmt.Errorf("%w: %q", ErrInvalidDate, s)
	}
	year, _ := strconv.Atoi(m[1])
	month, _ := strconv.Atoi(m[2])
	day, _ := strconv.Atoi(m[3])
	return New(year, month, day)
}

// ParseMonth reads YYYY-MM (or YYYY/MM) and returns day 1 of that month.
func ParseMonth(s string) (Date, error) {
	normalized := digits.ToASCII(strings.TrimSpace(s))
	parts := strings.FieldsFunc(normalized, func(r rune) bool { return r == '-' || r == '/' })
	if len(parts) != 2 {
		return Date{}, fmt.Errorf("%w: month %q, use YYYY-MM", ErrInvalidDate, s)
	}
	year, err := strconv.Atoi(parts[0])
	if err != nil {
		return Date{}, fmt.Errorf("%w: month %q, use YYYY-MM", ErrInvalidDate, s)
	}
	month, err := strconv.Atoi(parts[1])
	if err != nil {
		return Date{}, fmt.Errorf("%w: month %q, use YYYY-MM", ErrInvalidDate, s)
	}
	return New(year, month, 1)
}
