// Package config provides configuration management for relic. It handles
// loading, validating and saving the YAML configuration file, with sensible
// defaults for the cache locations and resolution behaviour.
package config

import (
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"github.com/glorpus-work/relic/pkg/errors"
	"github.com/glorpus-work/relic/pkg/fsutil"
)

// Config represents the application configuration.
type Config struct {
	Settings Settings `yaml:"settings"`
}

// Settings represents general application settings.
type Settings struct {
	// CachesRoot overrides the directory holding the cache generations.
	CachesRoot string `yaml:"caches_root,omitempty"`

	// MavenLocal overrides the local Maven repository root. Empty means
	// resolve it from ~/.m2/settings.xml.
	MavenLocal string `yaml:"maven_local,omitempty"`

	// SearchMavenLocal controls whether the Maven local repository is
	// included in the finder chain.
	SearchMavenLocal bool `yaml:"search_maven_local"`

	// InstallDir is the base directory artifacts are installed into.
	InstallDir string `yaml:"install_dir,omitempty"`

	// MaxConcurrent bounds parallel resolution workers.
	MaxConcurrent int `yaml:"max_concurrent"`

	// LogLevel is one of panic, fatal, error, warn, info, debug, trace.
	LogLevel string `yaml:"log_level"`
}

// DefaultConfig returns a configuration with default values.
func DefaultConfig() *Config {
	return &Config{
		Settings: Settings{
			SearchMavenLocal: true,
			MaxConcurrent:    4,
			LogLevel:         "info",
		},
	}
}

// GetDefaultConfigPath returns the default configuration file location.
func GetDefaultConfigPath() (string, error) {
	configDir, err := os.UserConfigDir()
	if err != nil {
		return "", errors.Wrap(err, "failed to get user config directory")
	}
	return filepath.Join(configDir, fsutil.AppName, "config.yaml"), nil
}

// LoadConfig loads configuration from the given path. A missing file yields
// the defaults; an unparsable one is a configuration error.
func LoadConfig(path string) (*Config, error) {
	if path == "" {
		return nil, errors.ErrEmptyConfigPath
	}

	raw, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return DefaultConfig(), nil
		}
		return nil, errors.Wrapf(err, "failed to read config file %s", path)
	}

	cfg := DefaultConfig()
	if err := yaml.Unmarshal(raw, cfg); err != nil {
		return nil, errors.Wrapf(errors.ErrConfigParse, "%s: %v", path, err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate checks configuration values.
func (c *Config) Validate() error {
	if c.Settings.MaxConcurrent < 1 {
		return errors.Wrap(errors.ErrConfigValidation, "max_concurrent must be at least 1")
	}
	return nil
}

// Save writes the configuration to the given path, creating parent
// directories as needed.
func (c *Config) Save(path string) error {
	if path == "" {
		return errors.ErrEmptyConfigPath
	}
	raw, err := yaml.Marshal(c)
	if err != nil {
		return errors.Wrapf(errors.ErrConfigEncode, "%v", err)
	}
	if err := fsutil.EnsureFileDir(path); err != nil {
		return errors.Wrapf(err, "failed to create config directory for %s", path)
	}
	if err := os.WriteFile(path, raw, fsutil.FileModeDefault); err != nil {
		return errors.Wrapf(err, "failed to write config file %s", path)
	}
	return nil
}

// CachesRoot returns the configured caches root, falling back to the
// platform default.
func (c *Config) CachesRoot() (string, error) {
	if c.Settings.CachesRoot != "" {
		return c.Settings.CachesRoot, nil
	}
	return fsutil.GetCachesRoot()
}

// StoreDir returns the current generation's store directory below the
// caches root.
func (c *Config) StoreDir() (string, error) {
	root, err := c.CachesRoot()
	if err != nil {
		return "", err
	}
	return filepath.Join(root, "filestore-3", "store"), nil
}
