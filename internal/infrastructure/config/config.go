// Package config provides configuration loading and management.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

const (
	// DefaultConfigDir is the directory name for dex configuration.
	DefaultConfigDir = ".dex"
	// DefaultConfigFile is the default config file name.
	DefaultConfigFile = "config.yaml"
	// DefaultDataFile is the catalog source used when nothing else is configured.
	DefaultDataFile = "all_pokemon.txt"
	// DefaultExitCommand ends an interactive session.
	DefaultExitCommand = "c"
)

// Environment variables that override file settings.
const (
	EnvDataPath = "DEX_DATA_PATH"
	EnvLogLevel = "DEX_LOG_LEVEL"
)

// Config holds tool configuration (read-only after load).
type Config struct {
	Data        DataConfig        `yaml:"data,omitempty"`
	Interactive InteractiveConfig `yaml:"interactive,omitempty"`
	Log         LogConfig         `yaml:"log,omitempty"`
	SQLite      SQLiteConfig      `yaml:"sqlite,omitempty"`
}

// DataConfig locates the catalog source.
type DataConfig struct {
	// Path is the delimited source file. Relative paths resolve against the
	// directory holding .dex.
	Path string `yaml:"path,omitempty"`
}

// InteractiveConfig controls the interactive session.
type InteractiveConfig struct {
	ExitCommand string `yaml:"exit_command,omitempty"`
	Prompt      string `yaml:"prompt,omitempty"`
}

// LogConfig controls structured logging.
type LogConfig struct {
	Level  string `yaml:"level,omitempty"`  // debug, info, warn, error
	Format string `yaml:"format,omitempty"` // console or json
}

// SQLiteConfig holds configuration for the SQLite snapshot store.
type SQLiteConfig struct {
	// Path is the file path to the SQLite database.
	Path string `yaml:"path,omitempty"`
}

// Default returns a Config with default values.
func Default() *Config {
	return &Config{
		Data: DataConfig{
			Path: DefaultDataFile,
		},
		Interactive: InteractiveConfig{
			ExitCommand: DefaultExitCommand,
			Prompt:      `Enter a Pokémon name/number ("c" to exit): `,
		},
		Log: LogConfig{
			Level:  "warn",
			Format: "console",
		},
		SQLite: SQLiteConfig{
			Path: filepath.Join(DefaultConfigDir, "snapshots.db"),
		},
	}
}

// Load loads configuration from the .dex directory in the given path.
// A missing config file yields the defaults.
func Load(basePath string) (*Config, error) {
	configFile := ConfigFilePath(basePath)

	cfg := Default()

	data, err := os.ReadFile(configFile)
	switch {
	case os.IsNotExist(err):
		// Defaults only
	case err != nil:
		return nil, fmt.Errorf("reading config file: %w", err)
	default:
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("parsing config file: %w", err)
		}
	}

	cfg.applyEnvOverrides()

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	return cfg, nil
}

// applyEnvOverrides applies environment variable overrides.
func (c *Config) applyEnvOverrides() {
	if path := os.Getenv(EnvDataPath); path != "" {
		c.Data.Path = path
	}
	if level := os.Getenv(EnvLogLevel); level != "" {
		c.Log.Level = level
	}
}

// Validate checks settings that have no safe fallback.
func (c *Config) Validate() error {
	if strings.TrimSpace(c.Data.Path) == "" {
		return errors.New("data.path must not be empty")
	}
	if strings.TrimSpace(c.Interactive.ExitCommand) == "" {
		return errors.New("interactive.exit_command must not be empty")
	}
	switch c.Log.Format {
	case "console", "json":
	default:
		return fmt.Errorf("log.format %q must be console or json", c.Log.Format)
	}
	return nil
}

// ResolvePath makes p absolute relative to basePath. Absolute paths are returned unchanged.
func ResolvePath(basePath, p string) string {
	if p == "" || filepath.IsAbs(p) {
		return p
	}
	return filepath.Join(basePath, p)
}

// ConfigDir returns the path to the .dex config directory.
func ConfigDir(basePath string) string {
	return filepath.Join(basePath, DefaultConfigDir)
}

// ConfigFilePath returns the path to the config file.
func ConfigFilePath(basePath string) string {
	return filepath.Join(basePath, DefaultConfigDir, DefaultConfigFile)
}

// Exists checks if a dex config exists in the given path.
func Exists(basePath string) bool {
	_, err := os.Stat(ConfigFilePath(basePath))
	return err == nil
}
