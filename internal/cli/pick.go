package cli

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/persiancal/jdp/internal/config"
	"github.com/persiancal/jdp/internal/jcal"
	"github.com/persiancal/jdp/internal/picker"
	"github.com/persiancal/jdp/internal/session"
	"github.com/persiancal/jdp/internal/ui"
)

var pickFlags rangeFlags

// dialogOutput receives the dialog. Nil means stderr, so stdout carries
// only the result.
var dialogOutput io.Writer

type pickResult struct {
	Outcome string    `json:"outcome" yaml:"outcome"`
	Date    *dateInfo `json:"date,omitempty" yaml:"date,omitempty"`
}

var pickCmd = &cobra.Command{
	Use:   "pick",
	Short: "Open the date picker dialog",
	Long: `Open the Jalali date picker dialog and print the confirmed date.

The dialog is drawn on stderr and reads one command per line from stdin:

  n / p        next / previous month
  m / y        toggle the month list / year list
  <number>     pick a day, month or year depending on the open view
  t            jump to and select today
  ok           confirm the selection
  q            cancel
  ?            show all commands

The confirmed date is printed on stdout and remembered for 'jdp last'.
Cancelling prints nothing. Bounds are exclusive: --min and --max themselves
cannot be picked.

Examples:
  jdp pick
  jdp pick --initial 1404-01-15 --min today --max 1404-09-30
  d=$(jdp pick --ascii)`,
	Args: cobra.NoArgs,
	RunE: runPick,
}

func runPick(cmd *cobra.Command, args []string) error {
	c := getConfig()
	opts, code, err := pickFlags.resolve(c, today())
	if err != nil {
		return handleError(code, err, "Dates are Jalali YYYY-MM-DD or today/yesterday/tomorrow")
	}

	var warnings []Warning
	if opts.Initial != nil && opts.Range.IsDayDisabled(*opts.Initial) {
		msg := fmt.Sprintf("initial date %s is outside %s", opts.Initial, opts.Range)
		warnings = append(warnings, Warning{Code: WarnInitialOutside, Message: msg})
		logger.Warnw("initial date outside range", "initial", opts.Initial.String(), "range", opts.Range.String())
	}

	p := picker.New(picker.Options{
		InitialDate: opts.Initial,
		Range:       opts.Range,
		Clock:       clock,
		OnSelectDay: func(d jcal.Date) {
			logger.Debugw("day selected", "date", d.String())
		},
	})

	out := dialogOutput
	if out == nil {
		out = os.Stderr
	}

	display := ui.DetectTerminal()
	prompt := ""
	if stdinIsTerminal() {
		prompt = "> "
	}
	help, err := ui.RenderMarkdown(ui.KeyHelp, display.Width)
	if err != nil {
		help = ui.KeyHelp
	}

	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}
	res, err := session.Run(ctx, session.Options{
		In:       cmd.InOrStdin(),
		Out:      out,
		Picker:   p,
		Renderer: newCalendarRenderer(c, display),
		Logger:   logger,
		Help:     help,
		Prompt:   prompt,
	})
	if err != nil {
		return handleError(ErrInternal, err, "")
	}

	result := pickResult{Outcome: res.Outcome.String()}
	if res.Confirmed && res.Date != nil {
		info := newDateInfo(*res.Date)
		result.Date = &info
		if err := rememberPick(*res.Date); err != nil {
			logger.WithError(err).Warnw("could not save state")
			warnings = append(warnings, Warning{Code: WarnStateNotSaved, Message: err.Error()})
		}
	}

	if isStructuredOutput() {
		outputSuccessWithWarnings(result, warnings)
		return nil
	}

	for _, w := range warnings {
		fmt.Fprintln(os.Stderr, ui.Warningf("%s", w.Message))
	}
	if result.Date == nil {
		fmt.Fprintln(out, ui.Hint("no date picked ("+result.Outcome+")"))
		return nil
	}
	fmt.Println(formatDate(*res.Date))
	return nil
}

func rememberPick(d jcal.Date) error {
	path := getStatePath()
	if path == "" {
		return fmt.Errorf("state path is not resolved")
	}
	state, err := config.LoadState(path)
	if err != nil {
		return err
	}
	state.Remember(d, clock())
	return config.SaveState(path, state)
}

func init() {
	pickCmd.Flags().AddFlagSet(pickFlags.flagSet(true))
	rootCmd.AddCommand(pickCmd)
}
