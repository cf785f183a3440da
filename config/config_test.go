package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/thisisWooyeol/HRSBench/scoring"
)

// TestDefault verifies the stock vocabularies are wired in.
func TestDefault(t *testing.T) {
	cfg := Default()
	assert.Equal(t, scoring.RelationBigger, cfg.Relations.Kind("larger"))
	assert.Equal(t, "red", cfg.Hues.Classify(14))
	assert.Equal(t, "blue", cfg.Hues.Classify(130))
	assert.False(t, cfg.Development)
}

// TestLoadYAML verifies that a config file extends the defaults
// instead of replacing untouched sections.
func TestLoadYAML(t *testing.T) {
	yaml := `
development: true
relations:
  bigger: ["larger", "bigger", "huger"]
`
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(yaml), 0o644))

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.True(t, cfg.Development)
	assert.Equal(t, scoring.RelationBigger, cfg.Relations.Kind("huger"))
	// The hue section was untouched and keeps its defaults.
	assert.Equal(t, "orange", cfg.Hues.Classify(15))
}

// TestLoadEnvOverride verifies the environment layer on top of the
// file.
func TestLoadEnvOverride(t *testing.T) {
	t.Setenv("HRSBENCH_DEVELOPMENT", "true")
	cfg, err := Load("")
	require.NoError(t, err)
	assert.True(t, cfg.Development)
}

// TestLoadMissingFile verifies the error path for an explicit but
// unreadable config path.
func TestLoadMissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	assert.Error(t, err)
}
