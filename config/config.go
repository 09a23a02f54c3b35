// Package config loads the YAML configuration of the miidump command.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/arloliu/mii/errs"
	"github.com/arloliu/mii/format"
	"github.com/arloliu/mii/layout"
)

// Config is the miidump configuration.
type Config struct {
	// Databases maps a variant name such as "wii_plaza" or "3ds" to the
	// database file to read. Variants not listed use the console's file name
	// in the working directory.
	Databases map[string]string `yaml:"databases,omitempty"`
	Export    Export            `yaml:"export"`
	Logging   Logging           `yaml:"logging"`
}

// Export configures the export and pack commands. StoreData exports records
// in the padded form with a checksum.
type Export struct {
	Dir            string `yaml:"dir"`
	Compression    string `yaml:"compression"`
	IncludeInvalid bool   `yaml:"include_invalid"`
	StoreData      bool   `yaml:"store_data"`
}

// Logging configures the command's slog handler.
type Logging struct {
	Level  string `yaml:"level"`
	Format string `yaml:"format"`
}

// DefaultConfig returns the configuration used when no file is given.
func DefaultConfig() *Config {
	return &Config{
		Export: Export{
			Dir:         "./extracted_miis",
			Compression: "zstd",
		},
		Logging: Logging{
			Level:  "info",
			Format: "text",
		},
	}
}

// Load reads the configuration at path. Fields missing from the file keep
// their defaults.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("%w: config %s", errs.ErrFileNotFound, path)
		}

		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	cfg := DefaultConfig()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// Save writes cfg to path, creating its directory if needed.
func Save(cfg *Config, path string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o750); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	data, err := yaml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	if err := os.WriteFile(path, data, 0o600); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}

	return nil
}

// DefaultPath returns ~/.config/miidump/config.yaml, or ./miidump.yaml when
// the home directory is unknown.
func DefaultPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return "./miidump.yaml"
	}

	return filepath.Join(home, ".config", "miidump", "config.yaml")
}

// Exists reports whether a configuration file exists at path.
func Exists(path string) bool {
	_, err := os.Stat(path)
	return err == nil
}

// Validate checks variant keys, compression name and log level.
func (c *Config) Validate() error {
	for key := range c.Databases {
		if _, err := format.ParseVariant(key); err != nil {
			return fmt.Errorf("databases: %w", err)
		}
	}

	if _, err := c.CompressionType(); err != nil {
		return fmt.Errorf("export.compression: %w", err)
	}

	if _, err := c.LogLevel(); err != nil {
		return fmt.Errorf("logging.level: %w", err)
	}

	switch strings.ToLower(c.Logging.Format) {
	case "", "text", "json":
	default:
		return fmt.Errorf("logging.format: unknown format %q", c.Logging.Format)
	}

	return nil
}

// PathFor returns the database file configured for v, or the console's
// default file name.
func (c *Config) PathFor(v format.Variant) string {
	for key, path := range c.Databases {
		if got, err := format.ParseVariant(key); err == nil && got == v && path != "" {
			return path
		}
	}

	return layout.Describe(v).DefaultPath
}

// CompressionType resolves Export.Compression.
func (c *Config) CompressionType() (format.CompressionType, error) {
	return format.ParseCompression(c.Export.Compression)
}

// LogLevel resolves Logging.Level. An empty level is info.
func (c *Config) LogLevel() (slog.Level, error) {
	var level slog.Level
	if c.Logging.Level == "" {
		return slog.LevelInfo, nil
	}

	if err := level.UnmarshalText([]byte(c.Logging.Level)); err != nil {
		return slog.LevelInfo, err
	}

	return level, nil
}
