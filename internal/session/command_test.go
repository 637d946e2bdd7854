package session

import (
	"errors"
	"testing"

	"github.com/persiancal/jdp/internal/picker"
)

func TestParseCommand(t *testing.T) {
	tests := []struct {
		name string
		line string
		view picker.View
		want Command
	}{
		{name: "blank redraws", line: "  ", view: picker.ViewDay, want: Command{}},
		{name: "help", line: "?", view: picker.ViewDay, want: Command{Help: true}},
		{name: "next short", line: "n", view: picker.ViewDay, want: Command{Event: picker.NextMonth{}}},
		{name: "prev long mixed case", line: " Prev ", view: picker.ViewDay, want: Command{Event: picker.PrevMonth{}}},
		{name: "year toggle", line: "year", view: picker.ViewDay, want: Command{Event: picker.ToggleYearView{}}},
		{name: "month toggle", line: "m", view: picker.ViewYear, want: Command{Event: picker.ToggleMonthView{}}},
		{name: "today", line: "t", view: picker.ViewDay, want: Command{Event: picker.GoToday{}}},
		{name: "confirm", line: "ok", view: picker.ViewDay, want: Command{Event: picker.Confirm{}}},
		{name: "cancel", line: "q", view: picker.ViewDay, want: Command{Event: picker.Cancel{}}},
		{name: "dismiss", line: "dismiss", view: picker.ViewDay, want: Command{Event: picker.Dismiss{}}},
		{name: "day number", line: "12", view: picker.ViewDay, want: Command{Event: picker.SelectDay{Day: 12}}},
		{name: "persian day number", line: "۱۲", view: picker.ViewDay, want: Command{Event: picker.SelectDay{Day: 12}}},
		{name: "month number", line: "7", view: picker.ViewMonth, want: Command{Event: picker.SelectMonth{Month: 7}}},
		{name: "year number", line: "1405", view: picker.ViewYear, want: Command{Event: picker.SelectYear{Year: 1405}}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseCommand(tt.line, tt.view)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if got != tt.want {
				t.Fatalf("ParseCommand(%q) = %#v, want %#v", tt.line, got, tt.want)
			}
		})
	}
}

func TestParseCommandUnknown(t *testing.T) {
	for _, line := range []string{"jump", "1404-01-01", "n n"} {
		_, err := ParseCommand(line, picker.ViewDay)
		if !errors.Is(err, ErrUnknownCommand) {
			t.Fatalf("ParseCommand(%q) error = %v, want ErrUnknownCommand", line, err)
		}
	}
}
