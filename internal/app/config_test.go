package app

import (
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/leg100/tabstrip/internal/layout"
	"github.com/leg100/tabstrip/internal/logging"
	"github.com/leg100/tabstrip/internal/testutils"
	"github.com/leg100/tabstrip/internal/tui"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConfig(t *testing.T) {
	// Unset environment variables set on host computer
	t.Setenv("TABSTRIP_DEBUG", "")
	t.Setenv("TABSTRIP_MODE", "")
	t.Setenv("TABSTRIP_GRAVITY", "")
	t.Setenv("TABSTRIP_LOG_LEVEL", "")
	t.Setenv("TABSTRIP_INDICATOR_COLOR", "")
	t.Setenv("HOME", t.TempDir())

	tests := []struct {
		name string
		file string
		args []string
		envs []string
		want func(t *testing.T, got config)
	}{
		{
			"defaults",
			"",
			nil,
			nil,
			func(t *testing.T, got config) {
				want := config{
					Mode:               "scrollable",
					Gravity:            "fill",
					TransitionDuration: 300 * time.Millisecond,
					NonAdjacentMargin:  4,
					MaxWidthInset:      8,
					Gutter:             2,
					loggingOptions: logging.Options{
						Level: "info",
					},
				}
				assert.Equal(t, want, got)
			},
		},
		{
			"config file override default",
			"mode: fixed\n",
			nil,
			nil,
			func(t *testing.T, got config) {
				assert.Equal(t, "fixed", got.Mode)
			},
		},
		{
			"config file with duration override default",
			"transition-duration: 1s\n",
			nil,
			nil,
			func(t *testing.T, got config) {
				assert.Equal(t, time.Second, got.TransitionDuration)
			},
		},
		{
			"env var override default",
			"",
			nil,
			[]string{"TABSTRIP_GRAVITY=center"},
			func(t *testing.T, got config) {
				assert.Equal(t, "center", got.Gravity)
			},
		},
		{
			"flag override default",
			"",
			[]string{"--max-tab-width", "20"},
			nil,
			func(t *testing.T, got config) {
				assert.Equal(t, 20, got.MaxTabWidth)
			},
		},
		{
			"env var overrides config file",
			"mode: fixed\n",
			nil,
			[]string{"TABSTRIP_MODE=scrollable"},
			func(t *testing.T, got config) {
				assert.Equal(t, "scrollable", got.Mode)
			},
		},
		{
			"flag overrides env var",
			"",
			[]string{"--mode", "fixed"},
			[]string{"TABSTRIP_MODE=scrollable"},
			func(t *testing.T, got config) {
				assert.Equal(t, "fixed", got.Mode)
			},
		},
		{
			"flag overrides both env var and config",
			"log-level: error\n",
			[]string{"--log-level", "debug"},
			[]string{"TABSTRIP_LOG_LEVEL=warn"},
			func(t *testing.T, got config) {
				assert.Equal(t, "debug", got.loggingOptions.Level)
			},
		},
		{
			"colors",
			"underline-color: \"240\"\n",
			[]string{"--indicator-color", "#00FF00", "--selected-text-color", "15"},
			[]string{"TABSTRIP_TEXT_COLOR=8"},
			func(t *testing.T, got config) {
				assert.Equal(t, tui.Colors{
					Indicator:    "#00FF00",
					Underline:    "240",
					SelectedText: "15",
					Text:         "8",
				}, got.Colors)
			},
		},
		{
			"right-to-left",
			"",
			[]string{"--rtl"},
			nil,
			func(t *testing.T, got config) {
				assert.True(t, got.RTL)
			},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			// change into a temp dir in case the host computer has a
			// tabstrip.yaml file
			testutils.ChTempDir(t, t.TempDir())

			// set env vars
			for _, ev := range tt.envs {
				name, val, _ := strings.Cut(ev, "=")
				t.Setenv(name, val)
			}

			// set config file
			if tt.file != "" {
				path := filepath.Join(os.Getenv("HOME"), ".tabstrip.yaml")
				err := os.WriteFile(path, []byte(tt.file), 0o644)
				require.NoError(t, err)
			}

			// and pass in flags
			got, err := parse(io.Discard, tt.args)
			require.NoError(t, err)

			tt.want(t, got)
		})
	}
}

func TestConfig_InvalidEnum(t *testing.T) {
	t.Setenv("HOME", t.TempDir())

	_, err := parse(io.Discard, []string{"--mode", "sideways"})
	assert.Error(t, err)
}

func TestConfig_StripOptions(t *testing.T) {
	cfg := config{
		Mode:              "fixed",
		Gravity:           "center",
		NonAdjacentMargin: 4,
		MaxWidthInset:     8,
		Gutter:            2,
		RTL:               true,
	}
	got, err := cfg.stripOptions()
	require.NoError(t, err)

	assert.Equal(t, layout.Fixed, got.Mode)
	assert.Equal(t, layout.Center, got.Gravity)
	assert.Equal(t, 4, got.NonAdjacentMargin)
	assert.Equal(t, 8, got.MaxWidthInset)
	assert.Equal(t, 2, got.Gutter)
	assert.Equal(t, 1, got.UnderlineThickness)
	assert.True(t, got.RTL)

	_, err = config{Mode: "sideways", Gravity: "fill"}.stripOptions()
	assert.Error(t, err)
}

func TestNewOptions_Colors(t *testing.T) {
	cfg := config{
		Mode:    "scrollable",
		Gravity: "fill",
		Colors:  tui.Colors{Indicator: "1", Text: "7"},
	}
	opts, err := newOptions(cfg)
	require.NoError(t, err)

	assert.Equal(t, tui.Colors{Indicator: "1", Text: "7"}, opts.Colors)
}
