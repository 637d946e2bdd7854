package dates

import (
	"strings"

	"github.com/persiancal/jdp/internal/jcal"
)

// RelativeDateResolution is the resolved representation of a relative date keyword.
type RelativeDateResolution struct {
	Keyword string
	Date    jcal.Date
}

// relativeDateKeywords maps accepted spellings to the canonical keyword.
var relativeDateKeywords = map[string]string{
	"today":     "today",
	"tomorrow":  "tomorrow",
	"yesterday": "yesterday",
	"امروز":     "today",
	"فردا":      "tomorrow",
	"دیروز":     "yesterday",
}

// NormalizeRelativeDateKeyword normalizes and validates a relative date keyword.
// Returns the canonical keyword and true when valid.
func NormalizeRelativeDateKeyword(value string) (string, bool) {
	keyword, ok := relativeDateKeywords[strings.ToLower(strings.TrimSpace(value))]
	return keyword, ok
}

// IsRelativeDateKeyword reports whether value is a supported relative date keyword.
func IsRelativeDateKeyword(value string) bool {
	_, ok := NormalizeRelativeDateKeyword(value)
	return ok
}

// ResolveRelativeDateKeyword resolves a relative date keyword against today.
func ResolveRelativeDateKeyword(value string, today jcal.Date) (RelativeDateResolution, bool) {
	keyword, ok := NormalizeRelativeDateKeyword(value)
	if !ok {
		return RelativeDateResolution{}, false
	}

	switch keyword {
	case "today":
		return RelativeDateResolution{Keyword: keyword, Date: today}, true
	case "tomorrow":
		return RelativeDateResolution{Keyword: keyword, Date: today.Tomorrow()}, true
	case "yesterday":
		return RelativeDateResolution{Keyword: keyword, Date: today.Yesterday()}, true
	default:
		return RelativeDateResolution{}, false
	}
}
