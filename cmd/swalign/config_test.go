package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestLoadConfig_OverlaysDefaults verifies that a partial YAML file only
// overrides the keys it names.
func TestLoadConfig_OverlaysDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "swalign.yaml")
	require.NoError(t, os.WriteFile(path, []byte("gap: 5\ngap_mode: constant\nmode: one\n"), 0o644))

	cfg, err := loadConfig(path)
	require.NoError(t, err)

	assert.Equal(t, 5, cfg.Gap)
	assert.Equal(t, "constant", cfg.GapMode)
	assert.Equal(t, "one", cfg.Mode)
	// Untouched keys keep their built-in defaults.
	assert.Equal(t, 3, cfg.Match)
	assert.Equal(t, -3, cfg.Mismatch)
	assert.Equal(t, 60, cfg.Width)
}

// TestLoadConfig_Errors covers missing files and invalid YAML.
func TestLoadConfig_Errors(t *testing.T) {
	_, err := loadConfig(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, err)

	path := filepath.Join(t.TempDir(), "bad.yaml")
	require.NoError(t, os.WriteFile(path, []byte("gap: [not an int\n"), 0o644))
	_, err = loadConfig(path)
	assert.Error(t, err)
}
