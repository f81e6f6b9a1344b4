package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestDefault(t *testing.T) {
	t.Parallel()

	cfg := Default()
	require.Equal(t, 10, cfg.Preview.PxPerColumn)
	require.Equal(t, 20, cfg.Preview.PxPerRow)
	require.True(t, cfg.Preview.AnimationEnabled())
	require.True(t, cfg.Preview.ShadowEnabled())
	require.Equal(t, 300*time.Millisecond, cfg.Preview.Transition())
	require.Equal(t, "auto", cfg.UI.Layout)
	require.True(t, cfg.UI.UseAltScreen())
	require.Equal(t, "info", cfg.Logging.Level)
	require.Empty(t, cfg.Logging.File)
	require.NoError(t, ValidateConfig(cfg))
}

func TestZeroValueSettingsDefaultToEnabled(t *testing.T) {
	t.Parallel()

	var preview PreviewSettings
	require.True(t, preview.AnimationEnabled())
	require.True(t, preview.ShadowEnabled())

	var ui UISettings
	require.True(t, ui.UseAltScreen())
}
