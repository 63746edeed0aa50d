// package app is the main entrypoint into the application, responsible for
// configuring and starting the application.
package app

import (
	"fmt"
	"io"

	"github.com/leg100/tabstrip/internal/logging"
	"github.com/leg100/tabstrip/internal/tui"
	"github.com/leg100/tabstrip/internal/version"
)

// Start the app.
func Start(stdout, stderr io.Writer, args []string) error {
	// Parse configuration from env vars and flags
	cfg, err := parse(stderr, args)
	if err != nil {
		return err
	}

	if cfg.Version {
		fmt.Fprintln(stdout, "tabstrip", version.Version)
		return nil
	}

	opts, err := newOptions(cfg)
	if err != nil {
		return err
	}
	return tui.Start(opts)
}

// newOptions constructs the TUI's options from config.
func newOptions(cfg config) (tui.Options, error) {
	stripOpts, err := cfg.stripOptions()
	if err != nil {
		return tui.Options{}, err
	}
	pages, err := loadDeck(cfg.Pages)
	if err != nil {
		return tui.Options{}, err
	}

	// Setup logging
	logger := logging.NewLogger(cfg.loggingOptions)

	// Log some info useful to the user
	logger.Info("loaded pages", "count", len(pages))

	return tui.Options{
		Pages:  pages,
		Strip:  stripOpts,
		Logger: logger,
		Colors: cfg.Colors,
		Debug:  cfg.Debug,
	}, nil
}
