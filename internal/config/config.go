package config

import (
	"fmt"
	"strings"

	"github.com/spf13/viper"

	"github.com/sipras/cmbspec/grid"
	"github.com/sipras/cmbspec/model"
)

// Grid holds the frequency grid settings.
type Grid struct {
	MinFreq float64 // Hz
	MaxFreq float64 // Hz
	Points  int
	Spacing grid.Spacing
}

// Config holds all settings consumed by the CLI: model parameters and
// the evaluation grid.
type Config struct {
	Model model.Params
	Grid  Grid
}

// Default grid: 1–1000 GHz over 1000 logarithmic points.
const (
	DefaultMinFreq = 1e9
	DefaultMaxFreq = 1e12
	DefaultPoints  = 1000
)

// Frequencies generates the configured frequency grid.
func (c *Config) Frequencies() ([]float64, error) {
	return grid.Generate(c.Grid.MinFreq, c.Grid.MaxFreq, c.Grid.Points, c.Grid.Spacing)
}

// Load reads configuration from an optional config file and CMBSPEC_*
// environment variables, on top of the model defaults. An empty path
// skips file loading entirely.
func Load(path string) (*Config, error) {
	v := viper.New()

	defaults := model.DefaultParams()
	v.SetDefault("model.cmb_temp", defaults.CMBTemp)
	v.SetDefault("model.sync_index", defaults.SyncIndex)
	v.SetDefault("model.sync_amplitude", defaults.SyncAmplitude)
	v.SetDefault("model.sync_ref_freq", defaults.SyncRefFreq)
	v.SetDefault("model.dust_index", defaults.DustIndex)
	v.SetDefault("model.dust_temp", defaults.DustTemp)
	v.SetDefault("model.dust_amplitude", defaults.DustAmplitude)
	v.SetDefault("model.dust_ref_freq", defaults.DustRefFreq)
	v.SetDefault("grid.min_freq", DefaultMinFreq)
	v.SetDefault("grid.max_freq", DefaultMaxFreq)
	v.SetDefault("grid.points", DefaultPoints)
	v.SetDefault("grid.spacing", grid.Logarithmic.String())

	v.SetEnvPrefix("CMBSPEC")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if path != "" {
		v.SetConfigFile(path)

		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("config: read %s: %w", path, err)
		}
	}

	spacing, err := grid.ParseSpacing(v.GetString("grid.spacing"))
	if err != nil {
		return nil, fmt.Errorf("config: %w", err)
	}

	cfg := &Config{
		Model: model.Params{
			CMBTemp:       v.GetFloat64("model.cmb_temp"),
			SyncIndex:     v.GetFloat64("model.sync_index"),
			SyncAmplitude: v.GetFloat64("model.sync_amplitude"),
			SyncRefFreq:   v.GetFloat64("model.sync_ref_freq"),
			DustIndex:     v.GetFloat64("model.dust_index"),
			DustTemp:      v.GetFloat64("model.dust_temp"),
			DustAmplitude: v.GetFloat64("model.dust_amplitude"),
			DustRefFreq:   v.GetFloat64("model.dust_ref_freq"),
		},
		Grid: Grid{
			MinFreq: v.GetFloat64("grid.min_freq"),
			MaxFreq: v.GetFloat64("grid.max_freq"),
			Points:  v.GetInt("grid.points"),
			Spacing: spacing,
		},
	}

	if err := cfg.Model.Validate(); err != nil {
		return nil, fmt.Errorf("config: %w", err)
	}

	return cfg, nil
}
