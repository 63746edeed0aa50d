package app

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/leg100/tabstrip/internal/layout"
	"github.com/leg100/tabstrip/internal/logging"
	"github.com/leg100/tabstrip/internal/strip"
	"github.com/leg100/tabstrip/internal/tui"
	"github.com/peterbourgon/ff/v4"
	"github.com/peterbourgon/ff/v4/ffhelp"
	"github.com/peterbourgon/ff/v4/ffyaml"
)

// Defaults suited to a terminal, where a pixel is a cell.
const (
	defaultMaxWidthInset     = 8
	defaultGutter            = 2
	defaultNonAdjacentMargin = 4
)

type config struct {
	Mode               string
	Gravity            string
	TransitionDuration time.Duration
	NonAdjacentMargin  int
	MinTabWidth        int
	MaxTabWidth        int
	MaxWidthInset      int
	Gutter             int
	ContentInset       int
	RTL                bool
	Colors             tui.Colors
	Pages              string
	Debug              bool
	Version            bool

	loggingOptions logging.Options
}

// set config in order of precedence:
// 1. flags > 2. env vars > 3. config file
func parse(stderr io.Writer, args []string) (config, error) {
	var cfg config

	home, err := os.UserHomeDir()
	if err != nil {
		return config{}, fmt.Errorf("retrieving user's home directory: %w", err)
	}
	defaultConfigFile := filepath.Join(home, ".tabstrip.yaml")

	fs := ff.NewFlagSet("tabstrip")
	fs.StringEnumVar(&cfg.Mode, 'm', "mode", "Tab mode (valid: scrollable,fixed).", "scrollable", "fixed")
	fs.StringEnumVar(&cfg.Gravity, 'g', "gravity", "Gravity of fixed tabs (valid: fill,center).", "fill", "center")
	fs.DurationVar(&cfg.TransitionDuration, 0, "transition-duration", strip.DefaultTransitionDuration, "Duration of the indicator's transition between tabs.")
	fs.IntVar(&cfg.NonAdjacentMargin, 0, "non-adjacent-margin", defaultNonAdjacentMargin, "Distance outside a non-adjacent tab from which the indicator slides in.")
	fs.IntVar(&cfg.MinTabWidth, 0, "min-tab-width", 0, "Minimum width of a scrollable tab.")
	fs.IntVar(&cfg.MaxTabWidth, 0, "max-tab-width", 0, "Maximum width of a scrollable tab. Zero derives it from the strip width.")
	fs.IntVar(&cfg.MaxWidthInset, 0, "max-width-inset", defaultMaxWidthInset, "Subtracted from the strip width to derive the maximum tab width.")
	fs.IntVar(&cfg.Gutter, 0, "gutter", defaultGutter, "Inset either side of fixed, centered tabs.")
	fs.IntVar(&cfg.ContentInset, 0, "content-inset", 0, "Start inset of a scrollable strip.")
	fs.BoolVar(&cfg.RTL, 0, "rtl", "Lay out right-to-left.")
	fs.StringVar(&cfg.Colors.Indicator, 0, "indicator-color", "", "Color of the selection indicator, as an ANSI color number or hex code.")
	fs.StringVar(&cfg.Colors.Underline, 0, "underline-color", "", "Color of the underline beneath the tabs.")
	fs.StringVar(&cfg.Colors.SelectedText, 0, "selected-text-color", "", "Color of the selected tab's label.")
	fs.StringVar(&cfg.Colors.Text, 0, "text-color", "", "Color of unselected tabs' labels.")
	fs.StringVar(&cfg.Pages, 'p', "pages", "", "Path to a YAML file of pages. Defaults to a built-in deck.")
	fs.BoolVar(&cfg.Debug, 'd', "debug", "Log bubbletea messages to messages.log")
	fs.BoolVar(&cfg.Version, 'v', "version", "Print version.")
	_ = fs.String('c', "config", defaultConfigFile, "Path to config file.")

	{
		usage := fmt.Sprintf("Logging level (valid: %s).", strings.Join(logging.ValidLevels(), ","))
		fs.StringEnumVar(&cfg.loggingOptions.Level, 'l', "log-level", usage, logging.ValidLevels()...)
	}

	err = ff.Parse(fs, args,
		ff.WithEnvVarPrefix("TABSTRIP"),
		ff.WithConfigFileFlag("config"),
		ff.WithConfigFileParser(ffyaml.Parse),
		ff.WithConfigAllowMissingFile(),
	)
	if err != nil {
		// ff.Parse returns an error if there is an error or if -h/--help is
		// passed; in either case print flag usage in addition to error message.
		fmt.Fprintln(stderr, ffhelp.Flags(fs))
		return config{}, err
	}
	return cfg, nil
}

// stripOptions converts the flag parsed primitive types into the engine's
// options.
func (cfg config) stripOptions() (strip.Options, error) {
	mode, err := layout.ParseMode(cfg.Mode)
	if err != nil {
		return strip.Options{}, err
	}
	gravity, err := layout.ParseGravity(cfg.Gravity)
	if err != nil {
		return strip.Options{}, err
	}
	return strip.Options{
		Mode:               mode,
		Gravity:            gravity,
		TransitionDuration: cfg.TransitionDuration,
		NonAdjacentMargin:  cfg.NonAdjacentMargin,
		MinTabWidth:        cfg.MinTabWidth,
		MaxTabWidth:        cfg.MaxTabWidth,
		MaxWidthInset:      cfg.MaxWidthInset,
		Gutter:             cfg.Gutter,
		ContentInset:       cfg.ContentInset,
		RTL:                cfg.RTL,
		UnderlineThickness: 1,
	}, nil
}
