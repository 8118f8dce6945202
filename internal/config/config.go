// Package config provides configuration management.
package config

import (
	"encoding/json"
	"os"
	"path/filepath"
	"strings"

	"github.com/joho/godotenv"
	"golang.org/x/text/currency"

	"port-charges/internal/errors"
	"port-charges/internal/logging"
)

// Environment variables that override file settings
const (
	EnvTariffFile = "PORTCHARGES_TARIFF_FILE"
	EnvFormat     = "PORTCHARGES_FORMAT"
	EnvLogLevel   = "PORTCHARGES_LOG_LEVEL"
)

// Config is the main application configuration
type Config struct {
	// Version is the configuration version
	Version string `json:"version"`

	// Tariff selects the TASAC rate table
	Tariff TariffConfig `json:"tariff"`

	// Output contains output configuration
	Output OutputConfig `json:"output"`

	// Logging contains logging configuration
	Logging logging.Config `json:"logging"`
}

// TariffConfig contains rate table settings
type TariffConfig struct {
	// File is an HCL tariff file. Empty means the built-in schedule.
	File string `json:"file,omitempty"`

	// Currency is the ISO code amounts are displayed in
	Currency string `json:"currency"`
}

// OutputConfig contains output-related settings
type OutputConfig struct {
	// DefaultFormat is the default output format
	DefaultFormat string `json:"default_format"`

	// ShowZero renders zero-amount charge lines
	ShowZero bool `json:"show_zero"`
}

// Default returns a default configuration
func Default() *Config {
	return &Config{
		Version: "1.0",
		Tariff: TariffConfig{
			Currency: "USD",
		},
		Output: OutputConfig{
			DefaultFormat: "cli",
		},
		Logging: logging.DefaultConfig(),
	}
}

// DefaultPath returns ~/.portcharges/config.json
func DefaultPath() string {
	homeDir, _ := os.UserHomeDir()
	return filepath.Join(homeDir, ".portcharges", "config.json")
}

// Load loads configuration from a file
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return Default(), nil
		}
		return nil, errors.Wrapf(errors.TypeConfig, err, "failed to read config %s", path)
	}

	config := Default()
	if err := json.Unmarshal(data, config); err != nil {
		return nil, errors.Wrapf(errors.TypeConfig, err, "failed to parse config %s", path)
	}

	return config, config.Validate()
}

// Save saves configuration to a file
func (c *Config) Save(path string) error {
	// Ensure directory exists
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return err
	}

	data, err := json.MarshalIndent(c, "", "  ")
	if err != nil {
		return err
	}

	return os.WriteFile(path, data, 0644)
}

// ApplyEnv loads envFiles (missing files are skipped, existing variables win)
// and applies PORTCHARGES_* overrides.
func (c *Config) ApplyEnv(envFiles ...string) error {
	for _, f := range envFiles {
		if _, err := os.Stat(f); err != nil {
			continue
		}
		if err := godotenv.Load(f); err != nil {
			return errors.Wrapf(errors.TypeConfig, err, "failed to load %s", f)
		}
	}

	if v, ok := os.LookupEnv(EnvTariffFile); ok {
		c.Tariff.File = v
	}
	if v := os.Getenv(EnvFormat); v != "" {
		c.Output.DefaultFormat = v
	}
	if v := os.Getenv(EnvLogLevel); v != "" {
		c.Logging.Level = v
	}
	return c.Validate()
}

// Validate checks settings that would otherwise fail late
func (c *Config) Validate() error {
	if _, err := currency.ParseISO(c.Tariff.Currency); err != nil {
		return errors.Config("unknown currency " + c.Tariff.Currency).WithContext("currency", c.Tariff.Currency)
	}
	c.Tariff.Currency = strings.ToUpper(c.Tariff.Currency)

	switch strings.ToLower(c.Output.DefaultFormat) {
	case "cli", "json":
	default:
		return errors.Config("unknown output format " + c.Output.DefaultFormat)
	}
	return nil
}

// Global configuration instance
var globalConfig = Default()

// Get returns the global configuration
func Get() *Config {
	return globalConfig
}

// Set sets the global configuration
func Set(config *Config) {
	globalConfig = config
}
