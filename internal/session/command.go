package session

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/persiancal/jdp/internal/digits"
	"github.com/persiancal/jdp/internal/picker"
)

// ErrUnknownCommand is returned by ParseCommand for unrecognised input.
var ErrUnknownCommand = errors.New("unknown command")

// Command is one parsed input line. A zero Command means "redraw".
type Command struct {
	Event picker.Event
	Help  bool
}

var keywordEvents = map[string]picker.Event{
	"n":       picker.NextMonth{},
	"next":    picker.NextMonth{},
	"p":       picker.PrevMonth{},
	"prev":    picker.PrevMonth{},
	"y":       picker.ToggleYearView{},
	"year":    picker.ToggleYearView{},
	"m":       picker.ToggleMonthView{},
	"month":   picker.ToggleMonthView{},
	"t":       picker.GoToday{},
	"today":   picker.GoToday{},
	"ok":      picker.Confirm{},
	"confirm": picker.Confirm{},
	"q":       picker.Cancel{},
	"cancel":  picker.Cancel{},
	"x":       picker.Dismiss{},
	"dismiss": picker.Dismiss{},
}

// ParseCommand maps a line to a picker event. Numbers (ASCII or Persian
// digits) pick a day, month or year depending on view.
func ParseCommand(line string, view picker.View) (Command, error) {
	word := strings.ToLower(strings.TrimSpace(line))
	switch word {
	case "":
		return Command{}, nil
	case "?", "h", "help":
		return Command{Help: true}, nil
	}

	if ev, ok := keywordEvents[word]; ok {
		return Command{Event: ev}, nil
	}

	n, err := strconv.Atoi(digits.ToASCII(word))
	if err != nil {
		return Command{}, fmt.Errorf("%w: %q", ErrUnknownCommand, strings.TrimSpace(line))
	}

	switch view {
	case picker.ViewMonth:
		return Command{Event: picker.SelectMonth{Month: n}}, nil
	case picker.ViewYear:
		return Command{Event: picker.SelectYear{Year: n}}, nil
	default:
		return Command{Event: picker.SelectDay{Day: n}}, nil
	}
}
