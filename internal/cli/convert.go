package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/persiancal/jdp/internal/dates"
	"github.com/persiancal/jdp/internal/jcal"
)

var (
	convertToGregorian   bool
	convertFromGregorian bool
)

type conversionResult struct {
	Jalali    dateInfo `json:"jalali" yaml:"jalali"`
	Gregorian string   `json:"gregorian" yaml:"gregorian"`
	Direction string   `json:"direction" yaml:"direction"`
}

var convertCmd = &cobra.Command{
	Use:   "convert <date>",
	Short: "Convert between Jalali and Gregorian dates",
	Long: `Convert a date between the Jalali and Gregorian calendars.

By default the argument is a Jalali date (YYYY-MM-DD, YYYY/MM/DD, Persian
digits, or today/yesterday/tomorrow) and the Gregorian date is printed.
With --from-gregorian the argument is a Gregorian YYYY-MM-DD date.

Examples:
  jdp convert 1404-01-01
  jdp convert --from-gregorian 2025-03-21`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		var (
			d         jcal.Date
			direction string
		)

		if convertFromGregorian {
			t, err := dates.ParseGregorianDate(args[0], jcal.Location())
			if err != nil {
				return handleError(ErrInvalidDate, err, "Use a Gregorian YYYY-MM-DD date")
			}
			d = jcal.FromTime(t)
			direction = "from_gregorian"
		} else {
			parsed, err := dates.ParseDateArg(args[0], today())
			if err != nil {
				return handleError(ErrInvalidDate, err, "Pass --from-gregorian for Gregorian input")
			}
			d = parsed
			direction = "to_gregorian"
		}

		info := newDateInfo(d)
		logger.Debugw("converted", "direction", direction, "jalali", info.Date, "gregorian", info.Gregorian)

		if isStructuredOutput() {
			outputSuccess(conversionResult{
				Jalali:    info,
				Gregorian: info.Gregorian,
				Direction: direction,
			})
			return nil
		}

		if convertFromGregorian {
			fmt.Println(formatDate(d))
		} else {
			fmt.Println(info.Gregorian)
		}
		return nil
	},
}

func init() {
	convertCmd.Flags().BoolVar(&convertToGregorian, "to-gregorian", false, "Treat the argument as Jalali (default)")
	convertCmd.Flags().BoolVar(&convertFromGregorian, "from-gregorian", false, "Treat the argument as Gregorian")
	convertCmd.MarkFlagsMutuallyExclusive("to-gregorian", "from-gregorian")
	rootCmd.AddCommand(convertCmd)
}
