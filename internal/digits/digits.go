// Package digits converts between ASCII and Persian numerals.
package digits

import (
	"strconv"
	"strings"
)

// Persian digit glyphs indexed by value.
var persianDigits = [10]rune{'۰', '۱', '۲', '۳', '۴', '۵', '۶', '۷', '۸', '۹'}

const (
	// ArabicDecimalSeparator is U+066B.
	ArabicDecimalSeparator = '٫'
	// PersianSeparator is the glyph ArabicDecimalSeparator is rendered as.
	PersianSeparator = '،'
)

// ToPersian maps ASCII digits to Persian digits and the Arabic decimal
// separator to the Persian separator. Every other rune passes through.
func ToPersian(s string) string {
	if s == "" {
		return ""
	}
	return strings.Map(func(r rune) rune {
		switch {
		case r >= '0' && r <= '9':
			return persianDigits[r-'0']
		case r == ArabicDecimalSeparator:
			return PersianSeparator
		default:
			return r
		}
	}, s)
}

// ToASCII maps Persian (U+06F0..U+06F9) and Arabic-Indic (U+0660..U+0669)
// digits back to ASCII. Used when parsing user input.
func ToASCII(s string) string {
	return strings.Map(func(r rune) rune {
		switch {
		case r >= '۰' && r <= '۹':
			return '0' + (r - '۰')
		case r >= '٠' && r <= '٩':
			return '0' + (r - '٠')
		default:
			return r
		}
	}, s)
}

// Formatter selects the numeral system used for display.
type Formatter int

const (
	Persian Formatter = iota
	ASCII
)

// ParseFormatter maps a config value to a Formatter. Empty means Persian.
func ParseFormatter(name string) (Formatter, bool) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "", "persian", "fa":
		return Persian, true
	case "ascii", "latin", "en":
		return ASCII, true
	default:
		return Persian, false
	}
}

// Format renders s in the formatter's numeral system.
func (f Formatter) Format(s string) string {
	if f == ASCII {
		return ToASCII(s)
	}
	return ToPersian(s)
}

// Itoa formats n in the formatter's numeral system.
func (f Formatter) Itoa(n int) string {
	return f.Format(strconv.Itoa(n))
}

func (f Formatter) String() string {
	if f == ASCII {
		return "ascii"
	}
	return "persian"
}
