package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	boxerrors "github.com/alexisbeaulieu97/boxlab/pkg/errors"
)

func writeConfig(t *testing.T, contents string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "boxlab.yaml")
	require.NoError(t, os.WriteFile(path, []byte(contents), 0o644))
	return path
}

func TestParseConfig(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name     string
		contents string
		assert   func(t *testing.T, cfg *Config, err error)
	}{
		{
			name: "full configuration is parsed",
			contents: `preview:
  px_per_column: 8
  px_per_row: 16
  animate: false
  transition_ms: 150
  shadow: false
ui:
  layout: vertical
  alt_screen: false
logging:
  level: debug
  file: /tmp/boxlab.log
`,
			assert: func(t *testing.T, cfg *Config, err error) {
				require.NoError(t, err)
				require.Equal(t, 8, cfg.Preview.PxPerColumn)
				require.Equal(t, 16, cfg.Preview.PxPerRow)
				require.False(t, cfg.Preview.AnimationEnabled())
				require.False(t, cfg.Preview.ShadowEnabled())
				require.Equal(t, 150*time.Millisecond, cfg.Preview.Transition())
				require.Equal(t, "vertical", cfg.UI.Layout)
				require.False(t, cfg.UI.UseAltScreen())
				require.Equal(t, "debug", cfg.Logging.Level)
				require.Equal(t, "/tmp/boxlab.log", cfg.Logging.File)
			},
		},
		{
			name:     "empty file yields defaults",
			contents: "",
			assert: func(t *testing.T, cfg *Config, err error) {
				require.NoError(t, err)
				require.Equal(t, Default(), cfg)
			},
		},
		{
			name: "partial file keeps other defaults",
			contents: `preview:
  px_per_row: 25
`,
			assert: func(t *testing.T, cfg *Config, err error) {
				require.NoError(t, err)
				require.Equal(t, 25, cfg.Preview.PxPerRow)
				require.Equal(t, 10, cfg.Preview.PxPerColumn)
				require.True(t, cfg.Preview.AnimationEnabled())
				require.Equal(t, "auto", cfg.UI.Layout)
			},
		},
		{
			name:     "malformed yaml reports line",
			contents: "preview:\n  px_per_row: [1, 2\n",
			assert: func(t *testing.T, cfg *Config, err error) {
				require.Nil(t, cfg)
				var parseErr *boxerrors.ParseError
				require.ErrorAs(t, err, &parseErr)
				require.Positive(t, parseErr.Line)
			},
		},
		{
			name: "out of range scale is rejected",
			contents: `preview:
  px_per_column: 500
`,
			assert: func(t *testing.T, cfg *Config, err error) {
				require.Nil(t, cfg)
				var validationErr *boxerrors.ValidationError
				require.ErrorAs(t, err, &validationErr)
				require.Equal(t, "preview.px_per_column", validationErr.Field)
			},
		},
		{
			name: "unknown layout is rejected",
			contents: `ui:
  layout: diagonal
`,
			assert: func(t *testing.T, cfg *Config, err error) {
				var validationErr *boxerrors.ValidationError
				require.ErrorAs(t, err, &validationErr)
				require.Equal(t, "ui.layout", validationErr.Field)
			},
		},
		{
			name: "zero transition disables animation",
			contents: `preview:
  transition_ms: 0
`,
			assert: func(t *testing.T, cfg *Config, err error) {
				require.NoError(t, err)
				require.NotNil(t, cfg.Preview.TransitionMS)
				require.Zero(t, *cfg.Preview.TransitionMS)
				require.Zero(t, cfg.Preview.Transition())
				require.False(t, cfg.Preview.AnimationEnabled())
			},
		},
		{
			name: "transition above range is rejected",
			contents: `preview:
  transition_ms: 6000
`,
			assert: func(t *testing.T, cfg *Config, err error) {
				var validationErr *boxerrors.ValidationError
				require.ErrorAs(t, err, &validationErr)
				require.Equal(t, "preview.transition_ms", validationErr.Field)
			},
		},
		{
			name: "level names are case insensitive",
			contents: `logging:
  level: WARN
`,
			assert: func(t *testing.T, cfg *Config, err error) {
				require.NoError(t, err)
				require.Equal(t, "WARN", cfg.Logging.Level)
			},
		},
		{
			name: "zerolog-only levels are rejected",
			contents: `logging:
  level: trace
`,
			assert: func(t *testing.T, cfg *Config, err error) {
				var validationErr *boxerrors.ValidationError
				require.ErrorAs(t, err, &validationErr)
				require.Equal(t, "logging.level", validationErr.Field)
			},
		},
		{
			name: "unknown log level is rejected",
			contents: `logging:
  level: chatty
`,
			assert: func(t *testing.T, cfg *Config, err error) {
				var validationErr *boxerrors.ValidationError
				require.ErrorAs(t, err, &validationErr)
				require.Equal(t, "logging.level", validationErr.Field)
			},
		},
	}

	for _, tc := range cases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			cfg, err := ParseConfig(writeConfig(t, tc.contents))
			tc.assert(t, cfg, err)
		})
	}
}

func TestLoad(t *testing.T) {
	t.Parallel()

	cfg, err := Load("", true)
	require.NoError(t, err)
	require.Equal(t, Default(), cfg)

	missing := filepath.Join(t.TempDir(), "absent.yaml")

	cfg, err = Load(missing, false)
	require.NoError(t, err)
	require.Equal(t, Default(), cfg)

	_, err = Load(missing, true)
	var parseErr *boxerrors.ParseError
	require.ErrorAs(t, err, &parseErr)
	require.Equal(t, missing, parseErr.Path)
}

func TestValidateConfigNil(t *testing.T) {
	t.Parallel()

	err := ValidateConfig(nil)
	var validationErr *boxerrors.ValidationError
	require.ErrorAs(t, err, &validationErr)
}

func TestExtractLine(t *testing.T) {
	t.Parallel()

	require.Equal(t, 0, extractLine(nil))
	require.Equal(t, 3, extractLine(errors.New("yaml: line 3: did not find expected key")))
	require.Equal(t, 0, extractLine(errors.New("yaml: unmarshal errors")))
}
