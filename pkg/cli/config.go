// Package cli provides CLI-specific logic including configuration loading.
package cli

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Config represents the .nutricart.yml configuration file.
type Config struct {
	Version    string          `yaml:"version"`
	Thresholds ThresholdConfig `yaml:"thresholds"`
	Weights    WeightConfig    `yaml:"weights"`
	Serving    ServingConfig   `yaml:"serving"`
	Additives  AdditivesConfig `yaml:"additives"`
	Output     OutputConfig    `yaml:"output"`
}

// ThresholdConfig holds the category score boundaries.
type ThresholdConfig struct {
	Excellent int `yaml:"excellent"`
	Good      int `yaml:"good"`
	Fair      int `yaml:"fair"`
}

// WeightConfig holds the composite weights for the three sub-scores.
type WeightConfig struct {
	Quality   float64 `yaml:"quality"`
	Additives float64 `yaml:"additives"`
	Organic   float64 `yaml:"organic"`
}

// ServingConfig controls per-100g normalization.
type ServingConfig struct {
	// FallbackGrams is assumed when a serving size has no parseable
	// gram quantity.
	FallbackGrams float64 `yaml:"fallback_grams"`
}

// AdditivesConfig points at the additive reference data.
type AdditivesConfig struct {
	// Table is a path to an external reference table yaml. Empty uses
	// the embedded default table.
	Table string `yaml:"table"`
}

// OutputConfig controls report output settings.
type OutputConfig struct {
	Format  string `yaml:"format"`
	Verbose bool   `yaml:"verbose"`
}

// LoadConfig reads and parses a .nutricart.yml configuration file.
// If path is empty, it looks for .nutricart.yml in the current directory.
// If the default config file is not found, sensible defaults are returned.
// If an explicitly specified config file is not found, an error is returned.
func LoadConfig(path string) (*Config, error) {
	useDefault := path == ""
	if useDefault {
		path = ".nutricart.yml"
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) && useDefault {
			return DefaultConfig(), nil
		}
		return nil, fmt.Errorf("cli: reading config %s: %w", path, err)
	}

	cfg := &Config{}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("cli: parsing config %s: %w", path, err)
	}

	applyDefaults(cfg)
	return cfg, nil
}

// DefaultConfig returns a Config with sensible defaults matching the
// documented .nutricart.yml schema.
func DefaultConfig() *Config {
	cfg := &Config{Version: "1"}
	applyDefaults(cfg)
	return cfg
}

// applyDefaults fills in zero-value fields with sensible defaults.
func applyDefaults(cfg *Config) {
	if cfg.Thresholds.Excellent == 0 {
		cfg.Thresholds.Excellent = 80
	}
	if cfg.Thresholds.Good == 0 {
		cfg.Thresholds.Good = 60
	}
	if cfg.Thresholds.Fair == 0 {
		cfg.Thresholds.Fair = 40
	}
	if cfg.Weights.Quality == 0 && cfg.Weights.Additives == 0 && cfg.Weights.Organic == 0 {
		cfg.Weights.Quality = 0.6
		cfg.Weights.Additives = 0.3
		cfg.Weights.Organic = 0.1
	}
	if cfg.Serving.FallbackGrams == 0 {
		cfg.Serving.FallbackGrams = 30
	}
	if cfg.Output.Format == "" {
		cfg.Output.Format = "terminal"
	}
}
