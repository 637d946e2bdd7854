package cli

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/persiancal/jdp/internal/config"
	"github.com/persiancal/jdp/internal/ui"
)

type lastPick struct {
	dateInfo `yaml:",inline"`
	PickedAt string `json:"picked_at,omitempty" yaml:"picked_at,omitempty"`
}

var lastCmd = &cobra.Command{
	Use:   "last",
	Short: "Print the most recently confirmed date",
	Long: `Print the date confirmed by the most recent 'jdp pick', as recorded in
state.toml.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		state, err := config.LoadState(getStatePath())
		if err != nil {
			return handleError(ErrFileReadError, err, "")
		}
		if state.LastPicked == nil {
			return handleErrorMsg(ErrNoLastPick, "no date has been picked yet", "Run 'jdp pick' and confirm a date first")
		}

		d := *state.LastPicked
		out := lastPick{dateInfo: newDateInfo(d)}
		if !state.PickedAt.IsZero() {
			out.PickedAt = state.PickedAt.Format(time.RFC3339)
		}

		if isStructuredOutput() {
			outputSuccess(out)
			return nil
		}

		fmt.Println(formatDate(d))
		if out.PickedAt != "" && verbose {
			fmt.Println(ui.Hint("picked at " + out.PickedAt))
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(lastCmd)
}
