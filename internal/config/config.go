package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/thenoetrevino/taskapp/internal/config/colors"
	"gopkg.in/yaml.v3"
)

// Environment variables that override values from the config file
const (
	EnvConfigFile = "TASKAPP_CONFIG"
	EnvDataPath   = "TASKAPP_DATA"
	EnvStorageKey = "TASKAPP_KEY"
	EnvSeed       = "TASKAPP_SEED"
	EnvLogLevel   = "TASKAPP_LOG_LEVEL"
	EnvThemeFile  = "TASKAPP_THEME_FILE"
)

// DefaultStorageKey is the key the snapshot is saved under
const DefaultStorageKey = "task-app-data"

// Config represents the application configuration
type Config struct {
	Storage     StorageConfig      `yaml:"storage"`
	Seed        string             `yaml:"seed"` // default, minimal or empty
	Logging     LoggingConfig      `yaml:"logging"`
	ColorScheme colors.ColorScheme `yaml:"theme"`
}

// StorageConfig locates the persisted snapshot
type StorageConfig struct {
	Path string `yaml:"path"` // SQLite database file
	Key  string `yaml:"key"`
}

// LoggingConfig controls the log file
type LoggingConfig struct {
	Level string `yaml:"level"` // debug, info, warn, error
	Path  string `yaml:"path"`
}

// Default returns the configuration used when no file exists
func Default() *Config {
	c := &Config{}
	c.applyDefaults()
	return c
}

// Load loads config from path, or from the user's config directory when path
// is empty. A missing file yields the defaults. Environment overrides are
// applied last.
func Load(path string) (*Config, error) {
	if path == "" {
		path = os.Getenv(EnvConfigFile)
	}
	if path == "" {
		var err error
		path, err = getConfigPath()
		if err != nil {
			// Return default config if we can't determine config path
			return finish(&Config{}), nil
		}
	}

	data, err := os.ReadFile(path)
	if errors.Is(err, os.ErrNotExist) {
		return finish(&Config{}), nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read config %s: %w", path, err)
	}

	var config Config
	if err := yaml.Unmarshal(data, &config); err != nil {
		return nil, fmt.Errorf("failed to parse config %s: %w", path, err)
	}

	return finish(&config), nil
}

// finish layers the theme file and environment over a parsed (or empty)
// config, then fills in whatever is still missing
func finish(config *Config) *Config {
	loadThemeFile(config)
	config.applyEnv()
	config.applyDefaults()
	return config
}

// Save writes the config to path, or to the user's config directory when
// path is empty
func (c *Config) Save(path string) error {
	if path == "" {
		var err error
		path, err = getConfigPath()
		if err != nil {
			return err
		}
	}

	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return err
	}

	data, err := yaml.Marshal(c)
	if err != nil {
		return err
	}

	return os.WriteFile(path, data, 0o644)
}

// loadThemeFile merges the theme from TASKAPP_THEME_FILE if set
func loadThemeFile(config *Config) {
	themeFile := os.Getenv(EnvThemeFile)
	if themeFile == "" {
		return
	}

	themeData, err := os.ReadFile(themeFile)
	if err != nil {
		return
	}

	var themeConfig struct {
		Theme colors.ColorScheme `yaml:"theme"`
	}

	if yaml.Unmarshal(themeData, &themeConfig) == nil {
		config.ColorScheme.MergeFrom(themeConfig.Theme)
	}
}

func (c *Config) applyEnv() {
	if v := os.Getenv(EnvDataPath); v != "" {
		c.Storage.Path = v
	}
	if v := os.Getenv(EnvStorageKey); v != "" {
		c.Storage.Key = v
	}
	if v := os.Getenv(EnvSeed); v != "" {
		c.Seed = v
	}
	if v := os.Getenv(EnvLogLevel); v != "" {
		c.Logging.Level = v
	}
}

// getConfigPath returns the path to the config file
func getConfigPath() (string, error) {
	// Try XDG_CONFIG_HOME first
	if configHome := os.Getenv("XDG_CONFIG_HOME"); configHome != "" {
		return filepath.Join(configHome, "taskapp", "config.yaml"), nil
	}

	// Fall back to ~/.config
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}

	return filepath.Join(homeDir, ".config", "taskapp", "config.yaml"), nil
}

// DataDir is where the database and logs live by default (~/.taskapp)
func DataDir() string {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return ".taskapp"
	}
	return filepath.Join(homeDir, ".taskapp")
}

// applyDefaults fills in missing configuration with defaults
func (c *Config) applyDefaults() {
	if c.Storage.Path == "" {
		c.Storage.Path = filepath.Join(DataDir(), "tasks.db")
	}
	if c.Storage.Key == "" {
		c.Storage.Key = DefaultStorageKey
	}
	if c.Seed == "" {
		c.Seed = "default"
	}
	c.Logging.Level = strings.ToLower(c.Logging.Level)
	if c.Logging.Level == "" {
		c.Logging.Level = "info"
	}
	if c.Logging.Path == "" {
		c.Logging.Path = filepath.Join(DataDir(), "logs", "taskapp.log")
	}
	c.ColorScheme.ApplyDefaults()
}
