package config_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/bxrne/shipcore/internal/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefault_IsValid(t *testing.T) {
	cfg := config.Default()
	require.NoError(t, cfg.Validate())
	assert.Equal(t, 4096, cfg.World.MaxEntities)
	assert.Equal(t, 60.0, cfg.Scheduler.Frequencies["physics"])
	assert.Equal(t, 20.0, cfg.Scheduler.Frequencies["collision"])
}

func TestLoad_OverridesDefaultsFromYAML(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(`
world:
  max_entities: 128
control:
  default_sensitivity: 2.0
`), 0o644))

	cfg, err := config.Load(path)
	require.NoError(t, err)
	assert.Equal(t, 128, cfg.World.MaxEntities)
	assert.Equal(t, 2.0, cfg.Control.DefaultSensitivity)
	// Untouched fields keep their reference defaults.
	assert.Equal(t, 4, cfg.Scheduler.MaxCatchUp)
}

func TestLoad_MissingFile(t *testing.T) {
	_, err := config.Load("/nonexistent/config.yaml")
	assert.Error(t, err)
}

func TestValidate_RejectsOutOfRangeSensitivity(t *testing.T) {
	cfg := config.Default()
	cfg.Control.DefaultSensitivity = 50
	assert.Error(t, cfg.Validate())
}

func TestValidate_RejectsNonPositiveCapacity(t *testing.T) {
	cfg := config.Default()
	cfg.World.MaxEntities = 0
	assert.Error(t, cfg.Validate())
}
