package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/persiancal/jdp/internal/digits"
	"github.com/persiancal/jdp/internal/picker"
)

// Dialog labels.
const (
	labelChooseMonth = "انتخاب ماه"
	labelChooseYear  = "انتخاب سال"
	labelConfirm     = "تایید"
	labelCancel      = "انصراف"
	labelToday       = "امروز"
	labelSelected    = "انتخاب شده"
	dropDownMark     = "▾"
	arrowNext        = "‹"
	arrowPrev        = "›"
)

// CalendarRenderer draws a picker.ViewModel as a bordered terminal dialog.
// Rows are laid out right to left.
type CalendarRenderer struct {
	Styles  CalendarStyles
	Digits  digits.Formatter
	Compact bool
}

// NewCalendarRenderer builds a renderer for the given palette and terminal.
func NewCalendarRenderer(p Palette, f digits.Formatter, t *Terminal) *CalendarRenderer {
	compact := false
	if t != nil {
		compact = t.Compact()
	}
	return &CalendarRenderer{
		Styles:  NewCalendarStyles(p),
		Digits:  f,
		Compact: compact,
	}
}

func (r *CalendarRenderer) cellWidth() int {
	if r.Compact {
		return 2
	}
	return 3
}

// Render returns the dialog for vm.
func (r *CalendarRenderer) Render(vm picker.ViewModel) string {
	var sections []string
	sections = append(sections, r.header(vm))

	switch vm.State.View {
	case picker.ViewDay:
		sections = append(sections, r.dayGrid(vm))
		sections = append(sections, r.footer(vm))
	case picker.ViewMonth:
		sections = append(sections, r.Styles.Text.Render(labelChooseMonth), r.monthButtons(vm))
	case picker.ViewYear:
		sections = append(sections, r.Styles.Text.Render(labelChooseYear), r.yearList(vm))
	}

	return r.Styles.Frame.Render(strings.Join(sections, "\n\n"))
}

func (r *CalendarRenderer) header(vm picker.ViewModel) string {
	arrow := func(symbol string, visible, enabled bool) string {
		switch {
		case !visible:
			return " "
		case !enabled:
			return r.Styles.Disabled.Render(symbol)
		default:
			return r.Styles.Arrow.Render(symbol)
		}
	}

	inDay := vm.State.View == picker.ViewDay
	year := r.Styles.DropDown.Render(r.Digits.Itoa(vm.State.Cursor.Year) + " " + dropDownMark)
	month := r.Styles.DropDown.Render(vm.MonthName + " " + dropDownMark)

	return strings.Join([]string{
		arrow(arrowNext, inDay, vm.CanNext),
		year,
		month,
		arrow(arrowPrev, inDay, vm.CanPrev),
	}, "  ")
}

func (r *CalendarRenderer) pad(s string) string {
	return fmt.Sprintf("%*s", r.cellWidth(), s)
}

func (r *CalendarRenderer) dayGrid(vm picker.ViewModel) string {
	var lines []string

	var header strings.Builder
	for i := len(picker.WeekdayLabels) - 1; i >= 0; i-- {
		header.WriteString(r.Styles.Weekday.Render(r.pad(picker.WeekdayLabels[i])))
	}
	lines = append(lines, header.String())

	for _, week := range vm.Weeks {
		var line strings.Builder
		for i := len(week) - 1; i >= 0; i-- {
			line.WriteString(r.dayCell(week[i]))
		}
		lines = append(lines, line.String())
	}
	return strings.Join(lines, "\n")
}

func (r *CalendarRenderer) dayCell(c picker.DayCell) string {
	if c.Style == picker.DayBlank {
		return r.pad("")
	}
	text := r.pad(r.Digits.Itoa(c.Day))
	switch c.Style {
	case picker.DaySelected:
		return r.Styles.Selected.Render(text)
	case picker.DayToday:
		return r.Styles.Highlight.Render(text)
	case picker.DayDisabled:
		return r.Styles.Disabled.Render(text)
	default:
		return r.Styles.Text.Render(text)
	}
}

func (r *CalendarRenderer) label(text string, style picker.LabelStyle) string {
	switch style {
	case picker.LabelHighlight:
		return r.Styles.Highlight.Render(text)
	case picker.LabelDisabled:
		return r.Styles.Disabled.Render(text)
	default:
		return r.Styles.Text.Render(text)
	}
}

func (r *CalendarRenderer) monthButtons(vm picker.ViewModel) string {
	const nameWidth = 8
	var lines []string
	for _, row := range vm.Months {
		cells := make([]string, 0, len(row))
		for i := len(row) - 1; i >= 0; i-- {
			b := row[i]
			text := fmt.Sprintf("%s %*s", r.Digits.Itoa(b.Month), nameWidth, b.Name)
			cells = append(cells, r.label(text, b.Style))
		}
		lines = append(lines, strings.Join(cells, "  "))
	}
	return strings.Join(lines, "\n")
}

func (r *CalendarRenderer) yearList(vm picker.ViewModel) string {
	lines := make([]string, 0, len(vm.Years))
	for _, y := range vm.Years {
		lines = append(lines, r.label(r.Digits.Itoa(y.Year), y.Style))
	}
	return lipgloss.JoinVertical(lipgloss.Center, lines...)
}

func (r *CalendarRenderer) footer(vm picker.ViewModel) string {
	confirm := r.Styles.Disabled.Render(labelConfirm)
	if vm.CanConfirm {
		confirm = r.Styles.Confirm.Render(labelConfirm)
	}
	parts := []string{confirm, r.Styles.Cancel.Render(labelCancel)}
	if vm.ShowToday {
		parts = append(parts, r.Styles.Today.Render(labelToday))
	}
	footer := strings.Join(parts, "   ")

	if sel := vm.State.Selected; sel != nil {
		date := r.Digits.Format(fmt.Sprintf("%04d/%02d/%02d", sel.Year, sel.Month, sel.Day))
		footer = r.Styles.Text.Render(labelSelected+": "+date) + "\n" + footer
	}
	return footer
}
