// Package dates parses the date arguments accepted on the command line and
// in config: Jalali YYYY-MM-DD dates, Gregorian dates for conversion, and
// the relative keywords today, yesterday and tomorrow.
package dates

import (
	"errors"
	"fmt"
	"regexp"
	"strings"
	"time"

	"github.com/persiancal/jdp/internal/digits"
	"github.com/persiancal/jdp/internal/jcal"
)

// ErrInvalidDate is wrapped by every parse failure in this package.
var ErrInvalidDate = errors.New("invalid date")

var gregorianRegex = regexp.MustCompile(`^\d{4}-\d{2}-\d{2}$`)

// IsValidGregorianDate checks if a string is a valid Gregorian YYYY-MM-DD date.
func IsValidGregorianDate(s string) bool {
	if !gregorianRegex.MatchString(s) {
		return false
	}
	_, err := time.Parse("2006-01-02", s)
	return err == nil
}

// ParseGregorianDate parses a Gregorian YYYY-MM-DD date at midnight in loc.
func ParseGregorianDate(s string, loc *time.Location) (time.Time, error) {
	s = digits.ToASCII(strings.TrimSpace(s))
	if !IsValidGregorianDate(s) {
		return time.Time{}, fmt.Errorf("%w: %q", ErrInvalidDate, s)
	}
	if loc == nil {
		loc = time.UTC
	}
	return time.ParseInLocation("2006-01-02", s, loc)
}

// ParseDateArg parses a Jalali date argument which can be:
// - "today", "yesterday", "tomorrow" (or their Persian forms)
// - "YYYY-MM-DD" or "YYYY/MM/DD", ASCII or Persian digits
// - Empty string defaults to today
func ParseDateArg(arg string, today jcal.Date) (jcal.Date, error) {
	if strings.TrimSpace(arg) == "" {
		return today, nil
	}

	if res, ok := ResolveRelativeDateKeyword(arg, today); ok {
		return res.Date, nil
	}

	parsed, err := jcal.Parse(arg)
	if err != nil {
		return jcal.Date{}, fmt.Errorf("%w: '%s', use YYYY-MM-DD or today/yesterday/tomorrow", ErrInvalidDate, strings.TrimSpace(arg))
	}
	return parsed, nil
}

// ParseOptionalDateArg is ParseDateArg for optional flags: an empty value
// yields nil instead of today.
func ParseOptionalDateArg(arg string, today jcal.Date) (*jcal.Date, error) {
	if strings.TrimSpace(arg) == "" {
		return nil, nil
	}
	d, err := ParseDateArg(arg, today)
	if err != nil {
		return nil, err
	}
	return &d, nil
}
