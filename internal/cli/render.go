package cli

import (
	"os"

	"github.com/mattn/go-isatty"

	"github.com/persiancal/jdp/internal/config"
	"github.com/persiancal/jdp/internal/ui"
)

// stdinIsTerminal decides whether pick shows a prompt. Tests replace it.
var stdinIsTerminal = func() bool {
	return isatty.IsTerminal(os.Stdin.Fd()) || isatty.IsCygwinTerminal(os.Stdin.Fd())
}

func paletteFromConfig(c config.ColorsConfig) ui.Palette {
	return ui.Palette{
		Background:         c.Background,
		Text:               c.Text,
		SelectedIcon:       c.SelectedIcon,
		TextHighlight:      c.TextHighlight,
		DropDown:           c.DropDown,
		DayOfWeekLabel:     c.DayOfWeekLabel,
		ConfirmButton:      c.ConfirmButton,
		CancelButton:       c.CancelButton,
		TodayButton:        c.TodayButton,
		NextPreviousButton: c.NextPreviousButton,
	}
}

// newCalendarRenderer builds the dialog renderer from [ui] config and the
// terminal width.
func newCalendarRenderer(c *config.Config, t *ui.Terminal) *ui.CalendarRenderer {
	if t == nil {
		t = ui.DetectTerminal()
	}
	r := ui.NewCalendarRenderer(paletteFromConfig(c.UI.Colors), digitFormatter, t)
	if c.UI.Compact {
		r.Compact = true
	}
	return r
}
