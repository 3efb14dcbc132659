package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestReadOverridesDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.json")
	require.NoError(t, os.WriteFile(path, []byte(`{
		"mode": "development",
		"log": {"path": "/tmp/sweeper.log", "max_size_mb": 5}
	}`), 0644))

	cfg := Default()
	require.NoError(t, Read(path, &cfg))

	assert.True(t, cfg.Development())
	assert.False(t, cfg.Production())
	assert.Equal(t, "/tmp/sweeper.log", cfg.Log.Path)
	assert.Equal(t, 5, cfg.Log.MaxSizeMB)
	// untouched keys keep their defaults
	assert.Equal(t, 3, cfg.Log.MaxBackups)
}

func TestReadMissingFile(t *testing.T) {
	var cfg Config
	err := Read(filepath.Join(t.TempDir(), "nope.json"), &cfg)
	assert.True(t, os.IsNotExist(err))
}

func TestDefaultIsProduction(t *testing.T) {
	assert.True(t, Default().Production())
}
