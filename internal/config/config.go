// Package config loads optional TOML defaults for the roman CLI.
//
// Precedence is flags, then the config file, then built-in defaults. The file
// is taken from --config or the ROMAN_CONFIG environment variable:
//
//	format = "json"
//	lang   = "de"
//
//	[store]
//	path      = "numerals.db"
//	max_value = 3999
package config

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/BurntSushi/toml"
)

// EnvVar names the environment variable holding the config file path.
const EnvVar = "ROMAN_CONFIG"

// Formats lists the supported output formats.
var Formats = []string{"text", "json", "yaml"}

// Config holds CLI defaults.
type Config struct {
	Format  string      `toml:"format"`
	Lang    string      `toml:"lang"`
	Verbose bool        `toml:"verbose"`
	Store   StoreConfig `toml:"store"`
}

// StoreConfig holds numeral table export settings.
type StoreConfig struct {
	Path     string `toml:"path"`
	MaxValue int    `toml:"max_value"`
}

// Default returns the built-in configuration.
func Default() *Config {
	cfg := &Config{}
	cfg.applyDefaults()
	return cfg
}

// Load loads configuration from a TOML file.
// Unknown keys are rejected so typos surface instead of being ignored.
func Load(path string) (*Config, error) {
	path = os.ExpandEnv(path)

	if _, err := os.Stat(path); errors.Is(err, os.ErrNotExist) {
		return nil, fmt.Errorf("config file not found: %s", path)
	}

	var cfg Config
	md, err := toml.DecodeFile(path, &cfg)
	if err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		keys := make([]string, len(undecoded))
		for i, k := range undecoded {
			keys[i] = k.String()
		}
		return nil, fmt.Errorf("unknown config keys: %s", strings.Join(keys, ", "))
	}

	cfg.applyDefaults()
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config %s: %w", path, err)
	}
	return &cfg, nil
}

// LoadFromEnv loads the file named by ROMAN_CONFIG, or returns defaults when unset.
func LoadFromEnv() (*Config, error) {
	path := os.Getenv(EnvVar)
	if path == "" {
		return Default(), nil
	}
	return Load(path)
}

// Validate checks field values.
func (c *Config) Validate() error {
	if !IsValidFormat(c.Format) {
		return fmt.Errorf("format %q must be one of %v", c.Format, Formats)
	}
	if c.Store.MaxValue < 1 {
		return fmt.Errorf("store.max_value must be positive, got %d", c.Store.MaxValue)
	}
	return nil
}

func (c *Config) applyDefaults() {
	if c.Format == "" {
		c.Format = "text"
	}
	if c.Lang == "" {
		c.Lang = "und"
	}
	if c.Store.MaxValue == 0 {
		c.Store.MaxValue = 3999
	}
}

// IsValidFormat checks if the format is one of the allowed values.
func IsValidFormat(format string) bool {
	for _, f := range Formats {
		if f == format {
			return true
		}
	}
	return false
}
