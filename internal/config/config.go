package config

import (
	"fmt"

	"github.com/spf13/viper"
)

// Config represents the complete engine configuration
type Config struct {
	Attribution AttributionConfig `mapstructure:"attribution"`
	MixModel    MixModelConfig    `mapstructure:"mix_model"`
	Decision    DecisionConfig    `mapstructure:"decision"`
	Governance  GovernanceConfig  `mapstructure:"governance"`
}

// AttributionConfig holds multi-touch attribution configuration
type AttributionConfig struct {
	MinSequences   int    `mapstructure:"min_sequences"`
	NBoot          int    `mapstructure:"n_boot"`
	Seed           int64  `mapstructure:"seed"`
	Window         string `mapstructure:"window"`
	WindowDays     []int  `mapstructure:"window_days"`
	LagBucketCount int    `mapstructure:"lag_bucket_count"`
}

// MixModelConfig holds regression pipeline configuration
type MixModelConfig struct {
	HalfLife   float64   `mapstructure:"half_life"`
	Saturation string    `mapstructure:"saturation"`
	Method     string    `mapstructure:"method"`
	NBoot      int       `mapstructure:"n_boot"`
	CVFolds    int       `mapstructure:"cv_folds"`
	AlphaGrid  []float64 `mapstructure:"alpha_grid"`
	Seed       int64     `mapstructure:"seed"`
}

// DecisionConfig holds threshold rule and confidence configuration
type DecisionConfig struct {
	ScaleUpThreshold   float64 `mapstructure:"scale_up_threshold"`
	ScaleDownThreshold float64 `mapstructure:"scale_down_threshold"`
	MinSpend           float64 `mapstructure:"min_spend"`
	ConfidenceDecay    float64 `mapstructure:"confidence_decay_days"`
}

// GovernanceConfig holds run bookkeeping configuration
type GovernanceConfig struct {
	HistoryCap int `mapstructure:"history_cap"`
}

// Load reads configuration from an optional file and environment
// variables. An empty path loads defaults only.
func Load(path string) (*Config, error) {
	v := viper.New()

	setDefaults(v)

	v.SetEnvPrefix("CHANNELMIX")
	v.AutomaticEnv()

	if path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	return &cfg, nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("attribution.min_sequences", 10)
	v.SetDefault("attribution.n_boot", 500)
	v.SetDefault("attribution.seed", 42)
	v.SetDefault("attribution.window", "30d_click_1d_view")
	v.SetDefault("attribution.window_days", []int{7, 14, 30})
	v.SetDefault("attribution.lag_bucket_count", 15)

	v.SetDefault("mix_model.half_life", 7.0)
	v.SetDefault("mix_model.saturation", "log")
	v.SetDefault("mix_model.method", "ridge")
	v.SetDefault("mix_model.n_boot", 300)
	v.SetDefault("mix_model.cv_folds", 5)
	v.SetDefault("mix_model.alpha_grid", []float64{0.01, 0.1, 1, 10, 100})
	v.SetDefault("mix_model.seed", 42)

	v.SetDefault("decision.scale_up_threshold", 2.0)
	v.SetDefault("decision.scale_down_threshold", 0.5)
	v.SetDefault("decision.min_spend", 0.0)
	v.SetDefault("decision.confidence_decay_days", 90.0)

	v.SetDefault("governance.history_cap", 100)
}

// Validate checks that all configuration values are usable
func (c *Config) Validate() error {
	if c.Attribution.MinSequences < 1 {
		return fmt.Errorf("attribution.min_sequences must be at least 1")
	}
	if c.Attribution.NBoot < 1 {
		return fmt.Errorf("attribution.n_boot must be at least 1")
	}
	if len(c.Attribution.WindowDays) == 0 {
		return fmt.Errorf("attribution.window_days must contain at least one window")
	}

	if c.MixModel.HalfLife <= 0 {
		return fmt.Errorf("mix_model.half_life must be positive")
	}
	validSaturations := map[string]bool{"log": true, "hill": true}
	if !validSaturations[c.MixModel.Saturation] {
		return fmt.Errorf("mix_model.saturation must be one of: log, hill")
	}
	validMethods := map[string]bool{"ridge": true, "lasso": true}
	if !validMethods[c.MixModel.Method] {
		return fmt.Errorf("mix_model.method must be one of: ridge, lasso")
	}
	if c.MixModel.CVFolds < 2 {
		return fmt.Errorf("mix_model.cv_folds must be at least 2")
	}
	if len(c.MixModel.AlphaGrid) == 0 {
		return fmt.Errorf("mix_model.alpha_grid must contain at least one value")
	}
	for _, a := range c.MixModel.AlphaGrid {
		if a <= 0 {
			return fmt.Errorf("mix_model.alpha_grid values must be positive")
		}
	}

	if c.Decision.ScaleUpThreshold <= c.Decision.ScaleDownThreshold {
		return fmt.Errorf("decision.scale_up_threshold must exceed decision.scale_down_threshold")
	}
	if c.Decision.ConfidenceDecay <= 0 {
		return fmt.Errorf("decision.confidence_decay_days must be positive")
	}

	if c.Governance.HistoryCap < 1 {
		return fmt.Errorf("governance.history_cap must be at least 1")
	}

	return nil
}
