package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/persiancal/jdp/internal/jcal"
	"github.com/persiancal/jdp/internal/picker"
)

var showFlags rangeFlags

// monthData is the structured form of one month. Weeks are in emission
// order, Friday first, with 0 for blank cells.
type monthData struct {
	Year      int       `json:"year" yaml:"year"`
	Month     int       `json:"month" yaml:"month"`
	MonthName string    `json:"month_name" yaml:"month_name"`
	Weekdays  [7]string `json:"weekdays" yaml:"weekdays"`
	Weeks     [][7]int  `json:"weeks" yaml:"weeks"`
	Disabled  []int     `json:"disabled,omitempty" yaml:"disabled,omitempty"`
	Today     int       `json:"today,omitempty" yaml:"today,omitempty"`
	Selected  int       `json:"selected,omitempty" yaml:"selected,omitempty"`
	CanPrev   bool      `json:"can_prev" yaml:"can_prev"`
	CanNext   bool      `json:"can_next" yaml:"can_next"`
}

func newMonthData(vm picker.ViewModel) monthData {
	cursor := vm.State.Cursor
	data := monthData{
		Year:      cursor.Year,
		Month:     cursor.Month,
		MonthName: vm.MonthName,
		Weekdays:  picker.WeekdayLabels,
		CanPrev:   vm.CanPrev,
		CanNext:   vm.CanNext,
	}
	for _, week := range vm.Weeks {
		var row [7]int
		for i, cell := range week {
			row[i] = cell.Day
			switch cell.Style {
			case picker.DayDisabled:
				data.Disabled = append(data.Disabled, cell.Day)
			case picker.DayToday:
				data.Today = cell.Day
			case picker.DaySelected:
				data.Selected = cell.Day
			}
		}
		data.Weeks = append(data.Weeks, row)
	}
	return data
}

var showCmd = &cobra.Command{
	Use:   "show [YYYY-MM]",
	Short: "Print one month of the calendar",
	Long: `Print one month as the picker would draw it, without opening a dialog.

Defaults to the current month, or the month of --initial when given.
--initial is drawn as selected and --min/--max disable days as in 'jdp pick'.

Examples:
  jdp show
  jdp show 1404-12
  jdp show --json 1403-10 --min 1403-10-15`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		t := today()
		opts, code, err := showFlags.resolve(getConfig(), t)
		if err != nil {
			return handleError(code, err, "")
		}

		cursor := t.FirstOfMonth()
		if opts.Initial != nil {
			cursor = opts.Initial.FirstOfMonth()
		}
		if len(args) == 1 {
			month, err := jcal.ParseMonth(args[0])
			if err != nil {
				return handleError(ErrInvalidDate, err, "")
			}
			cursor = month
		}

		state := picker.State{Cursor: cursor, Selected: opts.Initial, View: picker.ViewDay, Open: true}
		vm := picker.NewViewModel(state, opts.Range, t)

		if isStructuredOutput() {
			outputSuccess(newMonthData(vm))
			return nil
		}

		fmt.Println(newCalendarRenderer(getConfig(), nil).Render(vm))
		return nil
	},
}

func init() {
	showCmd.Flags().AddFlagSet(showFlags.flagSet(true))
	rootCmd.AddCommand(showCmd)
}
