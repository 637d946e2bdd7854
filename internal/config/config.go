// Package config handles global jdp configuration and machine-local state.
package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"

	"github.com/persiancal/jdp/internal/atomicfile"
)

// Config represents the global jdp configuration.
type Config struct {
	// StateFile overrides the location of state.toml. Relative paths are
	// resolved against the config file's directory.
	StateFile string `toml:"state_file"`

	// Picker holds the defaults for the picker dialog.
	Picker PickerConfig `toml:"picker"`

	// UI controls digits and colours.
	UI UIConfig `toml:"ui"`

	// Log controls diagnostic logging.
	Log LogConfig `toml:"log"`
}

// PickerConfig holds dialog defaults. Dates accept the same values as the
// command-line flags: YYYY-MM-DD (Jalali) or today/yesterday/tomorrow.
type PickerConfig struct {
	// Initial is the date shown and selected when the dialog opens.
	Initial string `toml:"initial" validate:"omitempty,jalalidate"`

	// Min is the exclusive lower bound of selectable days.
	Min string `toml:"min" validate:"omitempty,jalalidate"`

	// Max is the exclusive upper bound of selectable days.
	Max string `toml:"max" validate:"omitempty,jalalidate"`
}

// UIConfig represents optional presentation preferences.
type UIConfig struct {
	// Digits selects "persian" (default) or "ascii" numerals.
	Digits string `toml:"digits" validate:"omitempty,oneof=persian fa ascii latin en"`

	// Accent is an optional accent color for highlights.
	// Supported values are ANSI color codes ("0" to "255") or hex colors ("#RRGGBB").
	Accent string `toml:"accent" validate:"omitempty,uicolor"`

	// Compact forces narrow calendar cells regardless of terminal width.
	Compact bool `toml:"compact"`

	// Colors overrides individual dialog colours.
	Colors ColorsConfig `toml:"colors"`
}

// ColorsConfig mirrors the dialog's presentation options.
type ColorsConfig struct {
	Background         string `toml:"background" validate:"omitempty,uicolor"`
	Text               string `toml:"text" validate:"omitempty,uicolor"`
	SelectedIcon       string `toml:"selected_icon" validate:"omitempty,uicolor"`
	TextHighlight      string `toml:"text_highlight" validate:"omitempty,uicolor"`
	DropDown           string `toml:"drop_down" validate:"omitempty,uicolor"`
	DayOfWeekLabel     string `toml:"day_of_week_label" validate:"omitempty,uicolor"`
	ConfirmButton      string `toml:"confirm_button" validate:"omitempty,uicolor"`
	CancelButton       string `toml:"cancel_button" validate:"omitempty,uicolor"`
	TodayButton        string `toml:"today_button" validate:"omitempty,uicolor"`
	NextPreviousButton string `toml:"next_previous_button" validate:"omitempty,uicolor"`
}

// LogConfig controls the zap logger.
type LogConfig struct {
	// Level is one of debug, info, warn, error. Empty disables logging.
	Level string `toml:"level" validate:"omitempty,oneof=debug info warn error"`

	// Format is "console" (default) or "json".
	Format string `toml:"format" validate:"omitempty,oneof=console json"`
}

// Load loads the configuration from the default location.
// Returns a default config if the file doesn't exist.
func Load() (*Config, error) {
	configPath := DefaultPath()

	if _, err := os.Stat(configPath); os.IsNotExist(err) {
		return &Config{}, nil
	}

	return LoadFrom(configPath)
}

// LoadFrom loads and validates the configuration from a specific path.
func LoadFrom(path string) (*Config, error) {
	var config Config
	if _, err := toml.DecodeFile(path, &config); err != nil {
		return nil, fmt.Errorf("failed to parse config %s: %w", path, err)
	}
	if err := config.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config %s: %w", path, err)
	}
	return &config, nil
}

// DefaultPath returns the default config file path.
// Checks ~/.config/jdp/config.toml first (XDG style),
// then falls back to OS-specific location.
func DefaultPath() string {
	if home, err := os.UserHomeDir(); err == nil {
		xdgPath := filepath.Join(home, ".config", "jdp", "config.toml")
		if _, err := os.Stat(xdgPath); err == nil {
			return xdgPath
		}
	}

	if configDir, err := os.UserConfigDir(); err == nil {
		return filepath.Join(configDir, "jdp", "config.toml")
	}

	return filepath.Join(".", "config.toml")
}

const defaultConfig = `# jdp configuration

# [picker]
# Dates are Jalali YYYY-MM-DD or today/yesterday/tomorrow.
# Bounds are exclusive: min and max themselves cannot be picked.
# initial = "today"
# min = "1403-10-15"
# max = "1404-09-30"

# [ui]
# digits = "persian"   # or "ascii"
# accent = "39"        # ANSI 0-255 or #RRGGBB
# compact = false
#
# [ui.colors]
# text_highlight = "#A78BFA"
# selected_icon = "#A78BFA"
# today_button = "39"

# [log]
# level = "debug"
# format = "console"
`

// CreateDefault writes a commented default config to path if it doesn't
// exist. Returns true when a file was created.
func CreateDefault(path string) (bool, error) {
	if _, err := os.Stat(path); err == nil {
		return false, nil
	}

	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return false, fmt.Errorf("failed to create config directory: %w", err)
	}

	if err := atomicfile.WriteFile(path, []byte(defaultConfig), 0o644); err != nil {
		return false, fmt.Errorf("failed to write config file: %w", err)
	}

	return true, nil
}
