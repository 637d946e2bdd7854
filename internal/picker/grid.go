package picker

import "github.com/persiancal/jdp/internal/jcal"

// WeekdayLabels are the single-letter Persian weekday headers in the order
// cells are emitted: Friday first, then Saturday through Thursday.
var WeekdayLabels = [7]string{"ج", "ش", "ی", "د", "س", "چ", "پ"}

// Cell is one slot of the day grid. Day is 0 for a blank slot.
type Cell struct {
	Day int
}

// Blank reports whether the cell carries no day.
func (c Cell) Blank() bool {
	return c.Day == 0
}

// Row is one week, in emission order. Renderers lay it out right to left.
type Row [7]Cell

// Grid is the day layout of one month.
type Grid struct {
	Year  int
	Month int
	Rows  []Row
}

// FirstOffset returns the day number occupying the last slot of the first
// row. Weekday 7 (Friday) gives 7, so the first row starts on day 1.
func FirstOffset(year, month int) int {
	weekday := jcal.Date{Year: year, Month: month, Day: 1}.Weekday()
	if weekday == 7 {
		return 7
	}
	return 7 - weekday
}

// MonthGrid lays out a month in a Friday-first week. Each row counts a
// running dayCursor starting at FirstOffset and visits offsets 6..0, so a
// cell holds dayCursor-offset. Days outside [1, monthLength] are blank.
// Rows stop once dayCursor reaches the month length.
func MonthGrid(year, month int) Grid {
	length := jcal.MonthLength(year, month)
	g := Grid{Year: year, Month: month}

	dayCursor := FirstOffset(year, month)
	for {
		var row Row
		for i, offset := 0, 6; offset >= 0; i, offset = i+1, offset-1 {
			day := dayCursor - offset
			if day > 0 && day <= length {
				row[i] = Cell{Day: day}
			}
		}
		g.Rows = append(g.Rows, row)

		if dayCursor >= length {
			break
		}
		dayCursor += 7
	}
	return g
}

// Days returns the non-blank day numbers in emission order.
func (g Grid) Days() []int {
	var out []int
	for _, row := range g.Rows {
		for _, c := range row {
			if !c.Blank() {
				out = append(out, c.Day)
			}
		}
	}
	return out
}
