package cli

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/persiancal/jdp/internal/config"
	"github.com/persiancal/jdp/internal/ui"
)

type globalConfigContext struct {
	cfg          *config.Config
	configPath   string
	statePath    string
	configExists bool
}

// loadConfigAllowMissing returns an empty config when path does not exist.
func loadConfigAllowMissing(path string) (*config.Config, bool, error) {
	if _, err := os.Stat(path); err != nil {
		if os.IsNotExist(err) {
			return &config.Config{}, false, nil
		}
		return nil, false, err
	}
	loaded, err := config.LoadFrom(path)
	if err != nil {
		return nil, true, err
	}
	return loaded, true, nil
}

func loadGlobalConfigContextAllowMissing() (*globalConfigContext, error) {
	resolvedPath := config.ResolveConfigPath(configPath)
	loadedCfg, exists, err := loadConfigAllowMissing(resolvedPath)
	if err != nil {
		return nil, err
	}

	return &globalConfigContext{
		cfg:          loadedCfg,
		configPath:   resolvedPath,
		statePath:    config.ResolveStatePath(statePathFlag, resolvedPath, loadedCfg),
		configExists: exists,
	}, nil
}

func configData(ctx *globalConfigContext) map[string]interface{} {
	c := ctx.cfg
	return map[string]interface{}{
		"config_path": ctx.configPath,
		"state_path":  ctx.statePath,
		"exists":      ctx.configExists,
		"state_file":  strings.TrimSpace(c.StateFile),
		"picker": map[string]interface{}{
			"initial": c.Picker.Initial,
			"min":     c.Picker.Min,
			"max":     c.Picker.Max,
		},
		"ui": map[string]interface{}{
			"digits":  c.UI.Digits,
			"accent":  c.UI.Accent,
			"compact": c.UI.Compact,
		},
		"log": map[string]interface{}{
			"level":  c.Log.Level,
			"format": c.Log.Format,
		},
	}
}

func runConfigShow(cmd *cobra.Command, args []string) error {
	ctx, err := loadGlobalConfigContextAllowMissing()
	if err != nil {
		return handleError(ErrConfigInvalid, err, "")
	}

	if isStructuredOutput() {
		outputSuccess(configData(ctx))
		return nil
	}

	if !ctx.configExists {
		fmt.Printf("Config file does not exist: %s\n", ctx.configPath)
		fmt.Println("Run 'jdp config init' to create it.")
		return nil
	}

	fmt.Printf("config: %s\n", ctx.configPath)
	fmt.Printf("state:  %s\n", ctx.statePath)

	printSet := func(key, value string) {
		if v := strings.TrimSpace(value); v != "" {
			fmt.Printf("%s: %s\n", key, v)
		}
	}
	printSet("state_file", ctx.cfg.StateFile)
	printSet("picker.initial", ctx.cfg.Picker.Initial)
	printSet("picker.min", ctx.cfg.Picker.Min)
	printSet("picker.max", ctx.cfg.Picker.Max)
	printSet("ui.digits", ctx.cfg.UI.Digits)
	printSet("ui.accent", ctx.cfg.UI.Accent)
	if ctx.cfg.UI.Compact {
		fmt.Println("ui.compact: true")
	}
	printSet("log.level", ctx.cfg.Log.Level)
	printSet("log.format", ctx.cfg.Log.Format)
	return nil
}

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Manage the global jdp config.toml",
	Long: `Manage the global jdp config.toml.

Without a subcommand, shows the effective config and state paths and every
value that is set.`,
	Args: cobra.NoArgs,
	RunE: runConfigShow,
}

var configPathCmd = &cobra.Command{
	Use:   "path",
	Short: "Print the config and state file paths",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		targetPath := config.ResolveConfigPath(configPath)
		loadedCfg, _, err := loadConfigAllowMissing(targetPath)
		if err != nil {
			// A broken config still has a path; state falls back to its sibling.
			loadedCfg = nil
		}
		statePath := config.ResolveStatePath(statePathFlag, targetPath, loadedCfg)

		if isStructuredOutput() {
			outputSuccess(map[string]interface{}{
				"config_path": targetPath,
				"state_path":  statePath,
			})
			return nil
		}
		fmt.Println(targetPath)
		fmt.Println(statePath)
		return nil
	},
}

var configInitCmd = &cobra.Command{
	Use:   "init",
	Short: "Create a commented default config.toml if missing",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		targetPath := config.ResolveConfigPath(configPath)

		created, err := config.CreateDefault(targetPath)
		if err != nil {
			return handleError(ErrFileWriteError, err, "")
		}

		if isStructuredOutput() {
			outputSuccess(map[string]interface{}{
				"config_path": targetPath,
				"created":     created,
			})
			return nil
		}

		if created {
			fmt.Println(ui.Successf("created config %s", targetPath))
		} else {
			fmt.Println(ui.Hint("config already exists: " + targetPath))
		}
		return nil
	},
}

func init() {
	configCmd.AddCommand(configInitCmd)
	configCmd.AddCommand(configPathCmd)
	configCmd.AddCommand(&cobra.Command{
		Use:   "show",
		Short: "Show current global config.toml values",
		Args:  cobra.NoArgs,
		RunE:  runConfigShow,
	})

	rootCmd.AddCommand(configCmd)
}
