package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/persiancal/jdp/internal/ui"
)

var todayCmd = &cobra.Command{
	Use:   "today",
	Short: "Print today's Jalali date",
	Long: `Print today's Jalali date in the Asia/Tehran zone, with its weekday and
month name.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		d := today()

		if isStructuredOutput() {
			outputSuccess(newDateInfo(d))
			return nil
		}

		fmt.Printf("%s  %s\n", ui.DateValue(formatDate(d)), describeDate(d))
		return nil
	},
}

func init() {
	rootCmd.AddCommand(todayCmd)
}
