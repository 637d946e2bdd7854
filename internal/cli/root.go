// Package cli implements the command-line interface.
package cli

import (
	"context"
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/persiancal/jdp/internal/config"
	"github.com/persiancal/jdp/internal/digits"
	"github.com/persiancal/jdp/internal/jcal"
	"github.com/persiancal/jdp/internal/logging"
	"github.com/persiancal/jdp/internal/ui"
)

var (
	// Global flags
	configPath    string
	statePathFlag string
	verbose       bool
	asciiDigits   bool

	// Resolved values
	resolvedConfigPath string
	resolvedStatePath  string
	cfg                *config.Config
	digitFormatter     = digits.Persian
	logger             = logging.Nop()

	// clock is swapped out by tests.
	clock jcal.Clock = jcal.SystemClock
)

// rootCmd represents the base command
var rootCmd = &cobra.Command{
	Use:   "jdp",
	Short: "jdp - a Jalali date picker for the terminal",
	Long: `jdp is a Persian (solar Hijri) date picker for the terminal.

It opens a calendar dialog with Persian digits and a Friday-first week,
lets you navigate by month, month list or year list, and prints the
confirmed date. Selectable days can be restricted with exclusive
--min/--max bounds.`,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		switch cmd.Name() {
		case "completion", "help", "version":
			return nil
		}
		if cmd.Parent() != nil && cmd.Parent().Name() == "completion" {
			return nil
		}
		if jsonOutput && yamlOutput {
			return fmt.Errorf("--json and --yaml cannot be combined")
		}

		// config subcommands must work with a broken config file
		if cmd.Name() == "config" || (cmd.Parent() != nil && cmd.Parent().Name() == "config") {
			resolvedConfigPath = config.ResolveConfigPath(configPath)
			return nil
		}

		var err error
		cfg, resolvedConfigPath, err = loadGlobalConfigWithPath()
		if err != nil {
			return failPreRun(ErrConfigInvalid, err, "Run 'jdp config path' to locate the file")
		}
		resolvedStatePath = config.ResolveStatePath(statePathFlag, resolvedConfigPath, cfg)

		ui.ConfigureTheme(cfg.UI.Accent)

		digitFormatter, _ = digits.ParseFormatter(cfg.UI.Digits)
		if asciiDigits {
			digitFormatter = digits.ASCII
		}

		logCfg := logging.Config{Level: cfg.Log.Level, Format: cfg.Log.Format}
		if verbose {
			logCfg.Level = "debug"
		}
		logger, err = logging.New(logCfg, nil)
		if err != nil {
			return failPreRun(ErrConfigInvalid, err, "")
		}
		logger.Debugw("config loaded",
			"config", resolvedConfigPath,
			"state", resolvedStatePath,
			"digits", digitFormatter.String(),
		)
		return nil
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		_ = logger.Sync()
	},
}

// errReported marks failures already written as a structured envelope.
var errReported = errors.New("error already reported")

// failPreRun reports err in structured mode and still stops the command.
func failPreRun(code string, err error, suggestion string) error {
	if isStructuredOutput() {
		outputError(code, err.Error(), suggestion)
		return errReported
	}
	return handleError(code, err, suggestion)
}

// Execute runs the CLI.
func Execute() error {
	return ExecuteContext(context.Background())
}

// ExecuteContext runs the CLI with ctx. Cancelling ctx dismisses an open
// picker dialog.
func ExecuteContext(ctx context.Context) error {
	err := rootCmd.ExecuteContext(ctx)
	if err != nil && !errors.Is(err, errReported) {
		fmt.Fprintln(os.Stderr, ui.Errorf("%v", err))
	}
	return err
}

func init() {
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "Path to config file (default $JDP_CONFIG or ~/.config/jdp/config.toml)")
	rootCmd.PersistentFlags().StringVar(&statePathFlag, "state", "", "Path to state file (overrides state_file in config)")
	rootCmd.PersistentFlags().BoolVar(&jsonOutput, "json", false, "Output in JSON format (for script use)")
	rootCmd.PersistentFlags().BoolVar(&yamlOutput, "yaml", false, "Output in YAML format")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Write debug logs to stderr")
	rootCmd.PersistentFlags().BoolVar(&asciiDigits, "ascii", false, "Print ASCII digits instead of Persian digits")
}

// getConfig returns the loaded config.
func getConfig() *config.Config {
	if cfg == nil {
		return &config.Config{}
	}
	return cfg
}

// getStatePath returns the resolved global state path.
func getStatePath() string {
	return resolvedStatePath
}

// today reads the package clock.
func today() jcal.Date {
	return jcal.Today(clock)
}

func loadGlobalConfigWithPath() (*config.Config, string, error) {
	resolvedPath := config.ResolveConfigPath(configPath)

	loadedCfg, exists, err := loadConfigAllowMissing(resolvedPath)
	if err != nil {
		return nil, "", err
	}
	if !exists && strings.TrimSpace(configPath) != "" {
		return nil, "", fmt.Errorf("config file not found: %s", resolvedPath)
	}
	return loadedCfg, resolvedPath, nil
}
