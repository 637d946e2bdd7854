package cli

import (
	"errors"
	"fmt"

	"github.com/spf13/pflag"

	"github.com/persiancal/jdp/internal/bounds"
	"github.com/persiancal/jdp/internal/config"
	"github.com/persiancal/jdp/internal/dates"
	"github.com/persiancal/jdp/internal/jcal"
)

// rangeFlags are the dialog options shared by pick and show. Empty values
// fall back to the [picker] section of config.toml.
type rangeFlags struct {
	initial string
	min     string
	max     string
}

// flagSet registers the options on a standalone set that commands merge
// with AddFlagSet.
func (f *rangeFlags) flagSet(withInitial bool) *pflag.FlagSet {
	fs := pflag.NewFlagSet("range", pflag.ContinueOnError)
	if withInitial {
		fs.StringVar(&f.initial, "initial", "", "Initial date: YYYY-MM-DD (Jalali), today, yesterday or tomorrow")
	}
	fs.StringVar(&f.min, "min", "", "Exclusive lower bound: days up to and including it are disabled")
	fs.StringVar(&f.max, "max", "", "Exclusive upper bound: days from it onwards are disabled")
	return fs
}

func (f *rangeFlags) reset() {
	*f = rangeFlags{}
}

// dialogOptions is the resolved form of rangeFlags.
type dialogOptions struct {
	Initial *jcal.Date
	Range   bounds.Range
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}

// resolve merges flags over config and parses the result against today.
func (f *rangeFlags) resolve(c *config.Config, today jcal.Date) (dialogOptions, string, error) {
	if c == nil {
		c = &config.Config{}
	}

	initial, err := dates.ParseOptionalDateArg(firstNonEmpty(f.initial, c.Picker.Initial), today)
	if err != nil {
		return dialogOptions{}, ErrInvalidDate, fmt.Errorf("initial: %w", err)
	}
	lower, err := dates.ParseOptionalDateArg(firstNonEmpty(f.min, c.Picker.Min), today)
	if err != nil {
		return dialogOptions{}, ErrInvalidDate, fmt.Errorf("min: %w", err)
	}
	upper, err := dates.ParseOptionalDateArg(firstNonEmpty(f.max, c.Picker.Max), today)
	if err != nil {
		return dialogOptions{}, ErrInvalidDate, fmt.Errorf("max: %w", err)
	}

	rng, err := bounds.New(lower, upper)
	if err != nil {
		if errors.Is(err, bounds.ErrInvertedRange) {
			return dialogOptions{}, ErrInvalidRange, err
		}
		return dialogOptions{}, ErrInternal, err
	}

	return dialogOptions{Initial: initial, Range: rng}, "", nil
}
