package picker

// Event is a user gesture fed to Picker.Dispatch.
type Event interface {
	eventName() string
}

// ToggleYearView switches between the year list and the day grid.
type ToggleYearView struct{}

// ToggleMonthView switches between the month buttons and the day grid.
type ToggleMonthView struct{}

// NextMonth moves the cursor to the following month.
type NextMonth struct{}

// PrevMonth moves the cursor to the preceding month.
type PrevMonth struct{}

// SelectMonth picks a month button in the month view.
type SelectMonth struct{ Month int }

// SelectYear picks a row of the year list.
type SelectYear struct{ Year int }

// SelectDay taps a day cell of the displayed month.
type SelectDay struct{ Day int }

// GoToday is the "today" shortcut.
type GoToday struct{}

// Confirm accepts the selection and closes the dialog.
type Confirm struct{}

// Cancel closes the dialog without a result.
type Cancel struct{}

// Dismiss is a tap outside the dialog; same effect as Cancel.
type Dismiss struct{}

func (ToggleYearView) eventName() string  { return "toggle_year_view" }
func (ToggleMonthView) eventName() string { return "toggle_month_view" }
func (NextMonth) eventName() string       { return "next_month" }
func (PrevMonth) eventName() string       { return "prev_month" }
func (SelectMonth) eventName() string     { return "select_month" }
func (SelectYear) eventName() string      { return "select_year" }
func (SelectDay) eventName() string       { return "select_day" }
func (GoToday) eventName() string         { return "today" }
func (Confirm) eventName() string         { return "confirm" }
func (Cancel) eventName() string          { return "cancel" }
func (Dismiss) eventName() string         { return "dismiss" }

// EventName returns a stable identifier for logging.
func EventName(ev Event) string {
	if ev == nil {
		return ""
	}
	return ev.eventName()
}
