package picker

import (
	"github.com/persiancal/jdp/internal/bounds"
	"github.com/persiancal/jdp/internal/jcal"
)

// DayStyle classifies a day cell for rendering.
type DayStyle int

const (
	DayNormal DayStyle = iota
	DayToday
	DaySelected
	DayDisabled
	DayBlank
)

// LabelStyle classifies a month button or year row.
type LabelStyle int

const (
	LabelPlain LabelStyle = iota
	LabelHighlight
	LabelDisabled
)

// DayVariant classifies day of the cursor's month. Selection wins over
// today; a disabled day is never shown as selected or today.
func DayVariant(s State, r bounds.Range, today jcal.Date, day int) DayStyle {
	if day <= 0 || day > s.Cursor.MonthLength() {
		return DayBlank
	}
	d := jcal.Date{Year: s.Cursor.Year, Month: s.Cursor.Month, Day: day}
	switch {
	case r.IsDayDisabled(d):
		return DayDisabled
	case s.IsSelected(d):
		return DaySelected
	case d == today:
		return DayToday
	default:
		return DayNormal
	}
}

// MonthLabelVariant classifies a month button: the cursor's month is
// highlighted.
func MonthLabelVariant(s State, r bounds.Range, month int) LabelStyle {
	switch {
	case r.IsMonthDisabled(s.Cursor.Year, month):
		return LabelDisabled
	case s.Cursor.Month == month:
		return LabelHighlight
	default:
		return LabelPlain
	}
}

// YearLabelVariant classifies a year row: the cursor's year is highlighted.
func YearLabelVariant(s State, r bounds.Range, year int) LabelStyle {
	switch {
	case r.IsYearDisabled(year):
		return LabelDisabled
	case s.Cursor.Year == year:
		return LabelHighlight
	default:
		return LabelPlain
	}
}

// TodayShortcutVisible is false only when the cursor already shows today's
// month and today is selected.
func TodayShortcutVisible(s State, today jcal.Date) bool {
	return !(s.Cursor.SameMonth(today) && s.IsSelected(today))
}

// YearWindow returns up to n consecutive years of the year list, centred on
// the cursor year and clipped to [MinYear, MaxYear].
func YearWindow(s State, n int) []int {
	if n <= 0 {
		return nil
	}
	start := s.Cursor.Year - n/2
	if start+n-1 > MaxYear {
		start = MaxYear - n + 1
	}
	if start < MinYear {
		start = MinYear
	}
	years := make([]int, 0, n)
	for y := start; y < start+n && y <= MaxYear; y++ {
		years = append(years, y)
	}
	return years
}

// MonthButtonRows is the month view layout: three rows of four, each row
// listed in the order it is drawn right to left.
var MonthButtonRows = [3][4]int{
	{1, 2, 3, 4},
	{5, 6, 7, 8},
	{9, 10, 11, 12},
}

// DayCell pairs a grid cell with its style.
type DayCell struct {
	Day   int
	Style DayStyle
}

// MonthButton is one entry of the month view.
type MonthButton struct {
	Month int
	Name  string
	Style LabelStyle
}

// YearRow is one entry of the year view.
type YearRow struct {
	Year  int
	Style LabelStyle
}

// ViewModel is everything a renderer needs for one pass.
type ViewModel struct {
	State State
	Range bounds.Range
	Today jcal.Date

	MonthName string
	CanPrev   bool
	CanNext   bool

	// Day view.
	Weeks [][7]DayCell
	// Month view.
	Months [3][4]MonthButton
	// Year view.
	Years []YearRow

	ShowToday  bool
	CanConfirm bool
}

// YearWindowSize is the number of year rows a ViewModel carries.
const YearWindowSize = 9

// View derives a ViewModel from the current state. Today is read once.
func (p *Picker) View() ViewModel {
	return NewViewModel(p.State(), p.rng, p.Today())
}

// NewViewModel derives everything a renderer needs from a state snapshot.
func NewViewModel(s State, r bounds.Range, today jcal.Date) ViewModel {
	vm := ViewModel{
		State:      s,
		Range:      r,
		Today:      today,
		MonthName:  s.Cursor.MonthName(),
		CanPrev:    s.View == ViewDay && r.CanNavigateBackward(s.Cursor),
		CanNext:    s.View == ViewDay && r.CanNavigateForward(s.Cursor),
		ShowToday:  TodayShortcutVisible(s, today),
		CanConfirm: s.HasSelection(),
	}

	switch s.View {
	case ViewDay:
		grid := MonthGrid(s.Cursor.Year, s.Cursor.Month)
		for _, row := range grid.Rows {
			var week [7]DayCell
			for i, c := range row {
				week[i] = DayCell{Day: c.Day, Style: DayVariant(s, r, today, c.Day)}
			}
			vm.Weeks = append(vm.Weeks, week)
		}
	case ViewMonth:
		for ri, row := range MonthButtonRows {
			for c, m := range row {
				vm.Months[ri][c] = MonthButton{
					Month: m,
					Name:  jcal.MonthName(m),
					Style: MonthLabelVariant(s, r, m),
				}
			}
		}
	case ViewYear:
		for _, y := range YearWindow(s, YearWindowSize) {
			vm.Years = append(vm.Years, YearRow{Year: y, Style: YearLabelVariant(s, r, y)})
		}
	}
	return vm
}
