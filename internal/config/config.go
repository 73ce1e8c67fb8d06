// Package config defines versync's configuration model. Values are loaded
// through viper in the cmd package with the usual precedence: flags over
// environment variables over the config file over the defaults below.
package config

import (
	"fmt"
)

// Target formats recognized by the synchronizer.
const (
	// FormatJSON rewrites the first `"version": "..."` key in the file.
	FormatJSON = "json"
	// FormatTOML rewrites the first line-anchored `version = "..."` field.
	FormatTOML = "toml"
)

// LoggerConfig mirrors the "logger" section of the config file.
type LoggerConfig struct {
	Level       string `mapstructure:"level" yaml:"level"`
	Format      string `mapstructure:"format" yaml:"format"`
	ServiceName string `mapstructure:"service_name" yaml:"service_name"`
	AddSource   bool   `mapstructure:"add_source" yaml:"add_source"`

	// Optional rotating log file, handled by lumberjack.
	LogFile    string `mapstructure:"log_file" yaml:"log_file"`
	MaxSize    int    `mapstructure:"max_size" yaml:"max_size"` // megabytes
	MaxBackups int    `mapstructure:"max_backups" yaml:"max_backups"`
	MaxAge     int    `mapstructure:"max_age" yaml:"max_age"` // days
	Compress   bool   `mapstructure:"compress" yaml:"compress"`
}

// TargetConfig identifies one dependent file that embeds a copy of the
// version string.
type TargetConfig struct {
	Path   string `mapstructure:"path" yaml:"path"`
	Format string `mapstructure:"format" yaml:"format"`
}

// SyncConfig is the "sync" section: where the canonical version lives and
// which dependent files mirror it. All paths are relative to Root.
type SyncConfig struct {
	Root        string         `mapstructure:"root" yaml:"root"`
	VersionFile string         `mapstructure:"version_file" yaml:"version_file"`
	Targets     []TargetConfig `mapstructure:"targets" yaml:"targets"`
}

// Config holds the entire application configuration.
type Config struct {
	Logger LoggerConfig `mapstructure:"logger" yaml:"logger"`
	Sync   SyncConfig   `mapstructure:"sync" yaml:"sync"`
}

// NewDefaultConfig returns the configuration used when nothing overrides it.
// The default targets mirror a Tauri-style project layout: an npm package
// manifest, the app configuration and the Rust build manifest.
func NewDefaultConfig() *Config {
	return &Config{
		Logger: LoggerConfig{
			Level:       "info",
			Format:      "console",
			ServiceName: "versync",
			MaxSize:     10,
			MaxBackups:  3,
			MaxAge:      28,
		},
		Sync: SyncConfig{
			Root:        ".",
			VersionFile: "VERSION",
			Targets: []TargetConfig{
				{Path: "package.json", Format: FormatJSON},
				{Path: "src-tauri/tauri.conf.json", Format: FormatJSON},
				{Path: "src-tauri/Cargo.toml", Format: FormatTOML},
			},
		},
	}
}

// Validate checks the parts of the config that would otherwise fail deep
// inside a sync run.
func (c *Config) Validate() error {
	if c.Sync.VersionFile == "" {
		return fmt.Errorf("sync.version_file must not be empty")
	}
	for i, t := range c.Sync.Targets {
		if t.Path == "" {
			return fmt.Errorf("sync.targets[%d].path must not be empty", i)
		}
		switch t.Format {
		case FormatJSON, FormatTOML:
		default:
			return fmt.Errorf("sync.targets[%d].format must be %q or %q, got %q",
				i, FormatJSON, FormatTOML, t.Format)
		}
	}
	return nil
}
