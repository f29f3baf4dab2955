// Package config provides configuration for the matops command.
//
// Config file locations (priority order):
//  1. the -config flag
//  2. $MATOPS_CONFIG
//  3. ./matops.yaml
//
// A missing file is not an error: defaults apply.
package config

import (
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

const (
	// EnvConfigPath is the environment variable for an explicit config path
	EnvConfigPath = "MATOPS_CONFIG"
	// ConfigFileName is the default config file name in the working directory
	ConfigFileName = "matops.yaml"
)

// Output formats.
const (
	FormatText = "text"
	FormatYAML = "yaml"
)

// DefaultPrecision selects the shortest round-trip float rendering.
const DefaultPrecision = -1

// ErrInvalidConfig is returned by Validate.
var ErrInvalidConfig = errors.New("config: invalid")

// Config is the on-disk configuration.
type Config struct {
	Output      OutputConfig      `yaml:"output"`
	Determinant DeterminantConfig `yaml:"determinant"`
	// StopOnError aborts the run at the first failing operation instead of
	// reporting it and continuing with the others.
	StopOnError bool      `yaml:"stop_on_error"`
	Log         LogConfig `yaml:"log"`
}

// OutputConfig controls result rendering.
type OutputConfig struct {
	Format    string `yaml:"format"`
	Precision *int   `yaml:"precision,omitempty"`
}

// DeterminantConfig bounds the cofactor expansion.
type DeterminantConfig struct {
	// MaxOrder rejects larger determinants; 0 means unbounded.
	MaxOrder int `yaml:"max_order"`
}

// LogConfig controls diagnostic logging.
type LogConfig struct {
	// Verbose logs every algebra operation with shapes and timing.
	Verbose bool `yaml:"verbose"`
}

// Load finds and loads the config file, or returns defaults if none found.
// explicit, when non-empty, must exist.
func Load(explicit string) (*Config, string, error) {
	if explicit != "" {
		return LoadFromPath(explicit)
	}

	path := FindConfigPath()
	if path == "" {
		return DefaultConfig(), "", nil
	}

	return LoadFromPath(path)
}

// LoadFromPath loads config from a specific path
func LoadFromPath(path string) (*Config, string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, path, fmt.Errorf("read config: %w", err)
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, path, fmt.Errorf("parse config: %w", err)
	}

	cfg.applyDefaults()
	if err := cfg.Validate(); err != nil {
		return nil, path, err
	}

	return &cfg, path, nil
}

// DefaultConfig returns the configuration used when no file is found
func DefaultConfig() *Config {
	cfg := &Config{}
	cfg.applyDefaults()

	return cfg
}

// applyDefaults fills in missing values with defaults
func (c *Config) applyDefaults() {
	if c.Output.Format == "" {
		c.Output.Format = FormatText
	}
	if c.Output.Precision == nil {
		p := DefaultPrecision
		c.Output.Precision = &p
	}
}

// Validate rejects values no component can honor.
func (c *Config) Validate() error {
	switch c.Output.Format {
	case FormatText, FormatYAML:
	default:
		return fmt.Errorf("%w: output.format %q (want %q or %q)", ErrInvalidConfig, c.Output.Format, FormatText, FormatYAML)
	}
	if c.Output.Precision != nil && *c.Output.Precision < DefaultPrecision {
		return fmt.Errorf("%w: output.precision %d < %d", ErrInvalidConfig, *c.Output.Precision, DefaultPrecision)
	}
	if c.Determinant.MaxOrder < 0 {
		return fmt.Errorf("%w: determinant.max_order %d < 0", ErrInvalidConfig, c.Determinant.MaxOrder)
	}

	return nil
}

// Precision returns the effective output precision.
func (c *Config) Precision() int {
	if c.Output.Precision == nil {
		return DefaultPrecision
	}

	return *c.Output.Precision
}

// Save writes config to path
func (c *Config) Save(path string) error {
	data, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("marshal config: %w", err)
	}

	return os.WriteFile(path, data, 0644)
}
