// Package picker holds the navigation and selection model of a Jalali date
// picker dialog: which view is shown, the displayed month, the selected
// day, and how user gestures move between them under a bounds.Range.
//
// The model is framework-free. A renderer reads State (or a ViewModel) and
// feeds gestures back through Picker.Dispatch.
package picker

import "github.com/persiancal/jdp/internal/jcal"

// View is the active sub-view of the dialog.
type View int

const (
	ViewDay View = iota
	ViewMonth
	ViewYear
)

func (v View) String() string {
	switch v {
	case ViewDay:
		return "day"
	case ViewMonth:
		return "month"
	case ViewYear:
		return "year"
	default:
		return "unknown"
	}
}

// Year list extent offered by the year view. Year 0 is left out because
// jcal.New rejects it, so it could never be selected.
const (
	MinYear = 1
	MaxYear = 2999
)

// State is the mutable session state of one open dialog.
type State struct {
	// Cursor is the displayed month. Its day anchors the day grid only.
	Cursor jcal.Date
	// Selected is nil until a day is picked.
	Selected *jcal.Date
	View     View
	// Open is false once the dialog has been confirmed or dismissed.
	Open bool
}

// HasSelection reports whether a day has been picked.
func (s State) HasSelection() bool {
	return s.Selected != nil
}

// IsSelected reports whether d is the selected day.
func (s State) IsSelected(d jcal.Date) bool {
	return s.Selected != nil && *s.Selected == d
}

func (s State) clone() State {
	if s.Selected != nil {
		sel := *s.Selected
		s.Selected = &sel
	}
	return s
}
