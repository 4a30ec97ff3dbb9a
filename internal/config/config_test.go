package config

import (
	"os"
	"testing"

	"github.com/stretchr/testify/require"
)

func Test_Load(t *testing.T) {
	t.Run("defaults only", func(t *testing.T) {
		cfg, err := Load("")
		require.NoError(t, err)
		require.NoError(t, cfg.Validate())

		require.Equal(t, 10, cfg.Attribution.MinSequences)
		require.Equal(t, 500, cfg.Attribution.NBoot)
		require.Equal(t, 7.0, cfg.MixModel.HalfLife)
		require.Equal(t, "ridge", cfg.MixModel.Method)
		require.Equal(t, 2.0, cfg.Decision.ScaleUpThreshold)
		require.Equal(t, 0.5, cfg.Decision.ScaleDownThreshold)
		require.Equal(t, 90.0, cfg.Decision.ConfidenceDecay)
		require.Equal(t, 100, cfg.Governance.HistoryCap)
	})

	t.Run("file overrides defaults", func(t *testing.T) {
		content := `
attribution:
  min_sequences: 25
  window: "14d_click_1d_view"

mix_model:
  method: lasso
  half_life: 3.5

decision:
  scale_up_threshold: 4.0
`
		tmpfile, err := os.CreateTemp("", "config-*.yaml")
		require.NoError(t, err)
		defer os.Remove(tmpfile.Name())

		_, err = tmpfile.Write([]byte(content))
		require.NoError(t, err)
		require.NoError(t, tmpfile.Close())

		cfg, err := Load(tmpfile.Name())
		require.NoError(t, err)
		require.NoError(t, cfg.Validate())

		require.Equal(t, 25, cfg.Attribution.MinSequences)
		require.Equal(t, "14d_click_1d_view", cfg.Attribution.Window)
		require.Equal(t, "lasso", cfg.MixModel.Method)
		require.Equal(t, 3.5, cfg.MixModel.HalfLife)
		require.Equal(t, 4.0, cfg.Decision.ScaleUpThreshold)
		// untouched sections keep defaults
		require.Equal(t, 300, cfg.MixModel.NBoot)
	})

	t.Run("missing file errors", func(t *testing.T) {
		_, err := Load("/nonexistent/config.yaml")
		require.Error(t, err)
	})
}

func Test_Validate(t *testing.T) {
	base := func() *Config {
		cfg, err := Load("")
		require.NoError(t, err)
		return cfg
	}

	t.Run("bad saturation", func(t *testing.T) {
		cfg := base()
		cfg.MixModel.Saturation = "tanh"
		require.Error(t, cfg.Validate())
	})

	t.Run("thresholds inverted", func(t *testing.T) {
		cfg := base()
		cfg.Decision.ScaleUpThreshold = 0.5
		cfg.Decision.ScaleDownThreshold = 1.0
		require.Error(t, cfg.Validate())
	})

	t.Run("non-positive alpha", func(t *testing.T) {
		cfg := base()
		cfg.MixModel.AlphaGrid = []float64{0.1, 0}
		require.Error(t, cfg.Validate())
	})
}
