package ui

import (
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// Color palette
// - Default (white/black): primary text
// - Accent (soft purple #A78BFA): today, highlighted month/year, action buttons
// - Muted (gray): disabled days, hints, weekday labels
// - Selection is drawn reversed on the accent colour

const defaultAccent = "#A78BFA"

var (
	// Accent style for highlights and interactive elements
	Accent = lipgloss.NewStyle().Foreground(lipgloss.Color(defaultAccent))

	// Muted style for secondary info and disabled controls
	Muted = lipgloss.NewStyle().Foreground(lipgloss.Color("#6C7086"))

	// Bold style for emphasis
	Bold = lipgloss.NewStyle().Bold(true)

	// AccentBold combines accent color with bold
	AccentBold = lipgloss.NewStyle().Foreground(lipgloss.Color(defaultAccent)).Bold(true)

	accentColor = defaultAccent
	accentSet   = true
)

// ConfigureTheme sets the accent colour from a config value. "none", "off"
// and "default" or an invalid value disable the accent colour.
func ConfigureTheme(accent string) {
	color, ok := normalizeAccentColor(accent)
	if !ok {
		accentColor = ""
		accentSet = false
		Accent = lipgloss.NewStyle()
		AccentBold = lipgloss.NewStyle().Bold(true)
		return
	}
	accentColor = color
	accentSet = true
	Accent = lipgloss.NewStyle().Foreground(lipgloss.Color(color))
	AccentBold = Accent.Bold(true)
}

// AccentColor returns the configured accent colour, if any.
func AccentColor() (string, bool) {
	return accentColor, accentSet
}

// normalizeAccentColor accepts ANSI codes 0-255 and #RGB / #RRGGBB hex.
func normalizeAccentColor(value string) (string, bool) {
	v := strings.ToLower(strings.TrimSpace(value))
	switch v {
	case "", "none", "off", "default":
		return "", false
	}

	if strings.HasPrefix(v, "#") {
		hex := v[1:]
		if !isHex(hex) {
			return "", false
		}
		switch len(hex) {
		case 6:
			return v, true
		case 3:
			return "#" + string([]byte{hex[0], hex[0], hex[1], hex[1], hex[2], hex[2]}), true
		default:
			return "", false
		}
	}

	n, err := strconv.Atoi(v)
	if err != nil || n < 0 || n > 255 {
		return "", false
	}
	return strconv.Itoa(n), true
}

func isHex(s string) bool {
	if s == "" {
		return false
	}
	for _, r := range s {
		if !(r >= '0' && r <= '9' || r >= 'a' && r <= 'f') {
			return false
		}
	}
	return true
}

// Palette carries the presentation colours of the picker dialog. Empty
// fields fall back to the theme defaults.
type Palette struct {
	Background         string
	Text               string
	SelectedIcon       string
	TextHighlight      string
	DropDown           string
	DayOfWeekLabel     string
	ConfirmButton      string
	CancelButton       string
	TodayButton        string
	NextPreviousButton string
}

// CalendarStyles are the lipgloss styles derived from a Palette.
type CalendarStyles struct {
	Frame     lipgloss.Style
	Text      lipgloss.Style
	Highlight lipgloss.Style
	Selected  lipgloss.Style
	Disabled  lipgloss.Style
	DropDown  lipgloss.Style
	Weekday   lipgloss.Style
	Confirm   lipgloss.Style
	Cancel    lipgloss.Style
	Today     lipgloss.Style
	Arrow     lipgloss.Style
}

// NewCalendarStyles builds styles from p on top of the current theme.
func NewCalendarStyles(p Palette) CalendarStyles {
	accent, hasAccent := AccentColor()
	pick := func(value, fallback string) string {
		if c, ok := normalizeAccentColor(value); ok {
			return c
		}
		return fallback
	}
	fg := func(color string) lipgloss.Style {
		if color == "" {
			return lipgloss.NewStyle()
		}
		return lipgloss.NewStyle().Foreground(lipgloss.Color(color))
	}

	highlight := ""
	if hasAccent {
		highlight = accent
	}
	highlight = pick(p.TextHighlight, highlight)
	text := pick(p.Text, "")

	selected := lipgloss.NewStyle().Bold(true).Reverse(true)
	if c := pick(p.SelectedIcon, highlight); c != "" {
		selected = lipgloss.NewStyle().Bold(true).Background(lipgloss.Color(c)).Foreground(lipgloss.Color("0"))
	}

	frame := lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).Padding(0, 1)
	if c := pick(p.Background, ""); c != "" {
		frame = frame.Background(lipgloss.Color(c))
	}
	if highlight != "" {
		frame = frame.BorderForeground(lipgloss.Color(highlight))
	}

	return CalendarStyles{
		Frame:     frame,
		Text:      fg(text),
		Highlight: fg(highlight).Bold(true),
		Selected:  selected,
		Disabled:  Muted.Faint(true),
		DropDown:  fg(pick(p.DropDown, text)).Bold(true),
		Weekday:   fg(pick(p.DayOfWeekLabel, "#6C7086")),
		Confirm:   fg(pick(p.ConfirmButton, highlight)).Bold(true),
		Cancel:    fg(pick(p.CancelButton, highlight)),
		Today:     fg(pick(p.TodayButton, highlight)),
		Arrow:     fg(pick(p.NextPreviousButton, text)),
	}
}
