package picker

import (
	"github.com/persiancal/jdp/internal/bounds"
	"github.com/persiancal/jdp/internal/jcal"
)

// Options configures a dialog when it opens.
type Options struct {
	// InitialDate seeds the cursor and the selection. Nil opens on today's
	// month with nothing selected.
	InitialDate *jcal.Date
	Range       bounds.Range

	// OnSelectDay fires on every accepted day tap and on the today shortcut.
	OnSelectDay func(jcal.Date)
	// OnConfirm fires once, when the selection is confirmed.
	OnConfirm func(jcal.Date)

	// Clock defaults to jcal.SystemClock.
	Clock jcal.Clock
}

// Picker owns the state of one open dialog. It is not safe for concurrent
// use; a dialog is driven by a single stream of gestures.
type Picker struct {
	rng         bounds.Range
	onSelectDay func(jcal.Date)
	onConfirm   func(jcal.Date)
	clock       jcal.Clock
	state       State
}

// New opens a dialog in the day view.
func New(opts Options) *Picker {
	p := &Picker{
		rng:         opts.Range,
		onSelectDay: opts.OnSelectDay,
		onConfirm:   opts.OnConfirm,
		clock:       opts.Clock,
	}
	if p.clock == nil {
		p.clock = jcal.SystemClock
	}

	p.state = State{View: ViewDay, Open: true}
	if opts.InitialDate != nil {
		initial := *opts.InitialDate
		p.state.Cursor = initial
		p.state.Selected = &initial
	} else {
		p.state.Cursor = p.Today()
	}
	return p
}

// State returns a copy of the current state.
func (p *Picker) State() State {
	return p.state.clone()
}

// Range returns the selection boundaries.
func (p *Picker) Range() bounds.Range {
	return p.rng
}

// Today reads the clock. It is recomputed on every call, never cached.
func (p *Picker) Today() jcal.Date {
	return jcal.Today(p.clock)
}

// IsOpen reports whether the dialog still accepts gestures.
func (p *Picker) IsOpen() bool {
	return p.state.Open
}

// Dispatch applies ev and returns the resulting state. Gestures whose guard
// fails leave the state unchanged.
func (p *Picker) Dispatch(ev Event) State {
	p.Apply(ev)
	return p.State()
}

// Apply applies ev and reports whether its guard passed.
func (p *Picker) Apply(ev Event) bool {
	if !p.state.Open || ev == nil {
		return false
	}

	s := &p.state
	switch e := ev.(type) {
	case ToggleYearView:
		s.View = toggle(s.View, ViewYear)
		return true

	case ToggleMonthView:
		s.View = toggle(s.View, ViewMonth)
		return true

	case NextMonth:
		if s.View != ViewDay || !p.rng.CanNavigateForward(s.Cursor) {
			return false
		}
		s.Cursor = s.Cursor.NextMonth()
		return true

	case PrevMonth:
		if s.View != ViewDay || !p.rng.CanNavigateBackward(s.Cursor) {
			return false
		}
		s.Cursor = s.Cursor.PrevMonth()
		return true

	case SelectMonth:
		if s.View != ViewMonth || e.Month < 1 || e.Month > 12 {
			return false
		}
		if p.rng.IsMonthDisabled(s.Cursor.Year, e.Month) {
			return false
		}
		s.Cursor = jcal.Date{Year: s.Cursor.Year, Month: e.Month, Day: 1}
		s.View = ViewDay
		return true

	case SelectYear:
		if s.View != ViewYear || e.Year < MinYear || e.Year > MaxYear {
			return false
		}
		if p.rng.IsYearDisabled(e.Year) {
			return false
		}
		s.Cursor = p.rng.ClampCursorForYearJump(e.Year, s.Cursor.Month)
		s.View = ViewDay
		return true

	case SelectDay:
		if s.View != ViewDay {
			return false
		}
		candidate, err := jcal.New(s.Cursor.Year, s.Cursor.Month, e.Day)
		if err != nil || p.rng.IsDayDisabled(candidate) {
			return false
		}
		s.Selected = &candidate
		p.fireSelectDay(candidate)
		return true

	case GoToday:
		today := p.Today()
		if !TodayShortcutVisible(*s, today) {
			return false
		}
		s.Cursor = today.FirstOfMonth()
		s.Selected = &today
		p.fireSelectDay(today)
		return true

	case Confirm:
		if s.Selected == nil {
			return false
		}
		selected := *s.Selected
		s.Open = false
		if p.onConfirm != nil {
			p.onConfirm(selected)
		}
		return true

	case Cancel, Dismiss:
		s.Open = false
		return true
	}
	return false
}

func (p *Picker) fireSelectDay(d jcal.Date) {
	if p.onSelectDay != nil {
		p.onSelectDay(d)
	}
}

func toggle(current, target View) View {
	if current == target {
		return ViewDay
	}
	return target
}
