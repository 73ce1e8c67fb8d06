package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewDefaultConfig(t *testing.T) {
	cfg := NewDefaultConfig()

	assert.Equal(t, "info", cfg.Logger.Level)
	assert.Equal(t, "console", cfg.Logger.Format)
	assert.Equal(t, "versync", cfg.Logger.ServiceName)

	assert.Equal(t, ".", cfg.Sync.Root)
	assert.Equal(t, "VERSION", cfg.Sync.VersionFile)
	require.Len(t, cfg.Sync.Targets, 3)
	assert.Equal(t, TargetConfig{Path: "package.json", Format: FormatJSON}, cfg.Sync.Targets[0])
	assert.Equal(t, TargetConfig{Path: "src-tauri/tauri.conf.json", Format: FormatJSON}, cfg.Sync.Targets[1])
	assert.Equal(t, TargetConfig{Path: "src-tauri/Cargo.toml", Format: FormatTOML}, cfg.Sync.Targets[2])
}

func TestConfigValidation(t *testing.T) {
	t.Run("defaults are valid", func(t *testing.T) {
		assert.NoError(t, NewDefaultConfig().Validate())
	})

	t.Run("empty version file", func(t *testing.T) {
		cfg := NewDefaultConfig()
		cfg.Sync.VersionFile = ""
		err := cfg.Validate()
		require.Error(t, err)
		assert.Contains(t, err.Error(), "sync.version_file")
	})

	t.Run("empty target path", func(t *testing.T) {
		cfg := NewDefaultConfig()
		cfg.Sync.Targets = []TargetConfig{{Path: "", Format: FormatJSON}}
		err := cfg.Validate()
		require.Error(t, err)
		assert.Contains(t, err.Error(), "sync.targets[0].path")
	})

	t.Run("unknown target format", func(t *testing.T) {
		cfg := NewDefaultConfig()
		cfg.Sync.Targets = []TargetConfig{{Path: "setup.cfg", Format: "ini"}}
		err := cfg.Validate()
		require.Error(t, err)
		assert.Contains(t, err.Error(), `"ini"`)
	})
}
