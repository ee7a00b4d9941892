package cli

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfig_DefaultsWhenAbsent(t *testing.T) {
	oldWD, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir(t.TempDir()))
	t.Cleanup(func() { _ = os.Chdir(oldWD) })

	cfg, err := LoadConfig("")
	require.NoError(t, err)

	assert.Equal(t, 80, cfg.Thresholds.Excellent)
	assert.Equal(t, 60, cfg.Thresholds.Good)
	assert.Equal(t, 40, cfg.Thresholds.Fair)
	assert.InDelta(t, 0.6, cfg.Weights.Quality, 1e-9)
	assert.InDelta(t, 0.3, cfg.Weights.Additives, 1e-9)
	assert.InDelta(t, 0.1, cfg.Weights.Organic, 1e-9)
	assert.Equal(t, 30.0, cfg.Serving.FallbackGrams)
	assert.Equal(t, "terminal", cfg.Output.Format)
	assert.Empty(t, cfg.Additives.Table)
}

func TestLoadConfig_ExplicitMissingFileErrors(t *testing.T) {
	_, err := LoadConfig(filepath.Join(t.TempDir(), "nope.yml"))
	assert.Error(t, err)
}

func TestLoadConfig_ParsesAndFillsDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), ".nutricart.yml")
	content := `version: "1"
thresholds:
  excellent: 85
serving:
  fallback_grams: 50
additives:
  table: /etc/nutricart/additives.yml
`
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))

	cfg, err := LoadConfig(path)
	require.NoError(t, err)

	assert.Equal(t, 85, cfg.Thresholds.Excellent)
	assert.Equal(t, 60, cfg.Thresholds.Good, "unset fields get defaults")
	assert.Equal(t, 50.0, cfg.Serving.FallbackGrams)
	assert.Equal(t, "/etc/nutricart/additives.yml", cfg.Additives.Table)
	assert.InDelta(t, 0.6, cfg.Weights.Quality, 1e-9)
}

func TestLoadConfig_MalformedYamlErrors(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bad.yml")
	require.NoError(t, os.WriteFile(path, []byte("thresholds: ["), 0o644))

	_, err := LoadConfig(path)
	assert.Error(t, err)
}

func TestLoadConfig_CustomWeights(t *testing.T) {
	path := filepath.Join(t.TempDir(), ".nutricart.yml")
	content := `weights:
  quality: 0.5
  additives: 0.4
  organic: 0.1
`
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))

	cfg, err := LoadConfig(path)
	require.NoError(t, err)

	assert.InDelta(t, 0.5, cfg.Weights.Quality, 1e-9)
	assert.InDelta(t, 0.4, cfg.Weights.Additives, 1e-9)
	assert.InDelta(t, 0.1, cfg.Weights.Organic, 1e-9)
}
