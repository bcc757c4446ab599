// Package config provides configuration loading for the shexval tool.
package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Config is the complete shexval configuration.
type Config struct {
	Schema     SchemaConfig   `yaml:"schema"`
	Validation ValidateConfig `yaml:"validate"`
	Metrics    MetricsConfig  `yaml:"metrics"`
}

// SchemaConfig locates the schema and the default shape.
type SchemaConfig struct {
	// Path is the schema file path.
	Path string `yaml:"path"`
	// Shape is the default shape identifier, brackets included
	// (e.g. "<PersonShape>"). Empty means the schema's first shape.
	Shape string `yaml:"shape"`
}

// ValidateConfig controls batch validation behaviour.
type ValidateConfig struct {
	// Workers bounds batch concurrency (default: 4).
	Workers int `yaml:"workers"`
	// Format is the report output format: "text" or "json".
	Format string `yaml:"format"`
}

// MetricsConfig controls the optional metrics endpoint.
type MetricsConfig struct {
	// Addr is the listen address for prometheus scraping in watch mode
	// (empty = disabled).
	Addr string `yaml:"addr"`
}

// DefaultConfig returns a Config with sensible defaults.
func DefaultConfig() *Config {
	return &Config{
		Validation: ValidateConfig{
			Workers: 4,
			Format:  "text",
		},
	}
}

// Validate checks that the configuration is valid.
func (c *Config) Validate() error {
	if c.Validation.Workers < 1 {
		return fmt.Errorf("validate.workers must be at least 1")
	}
	if c.Validation.Format != "text" && c.Validation.Format != "json" {
		return fmt.Errorf("validate.format must be \"text\" or \"json\", got %q", c.Validation.Format)
	}
	return nil
}

// Merge overlays non-zero fields of other onto c.
func (c *Config) Merge(other *Config) {
	if other == nil {
		return
	}
	if other.Schema.Path != "" {
		c.Schema.Path = other.Schema.Path
	}
	if other.Schema.Shape != "" {
		c.Schema.Shape = other.Schema.Shape
	}
	if other.Validation.Workers != 0 {
		c.Validation.Workers = other.Validation.Workers
	}
	if other.Validation.Format != "" {
		c.Validation.Format = other.Validation.Format
	}
	if other.Metrics.Addr != "" {
		c.Metrics.Addr = other.Metrics.Addr
	}
}

// LoadFromFile loads configuration from a YAML file.
func LoadFromFile(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	config := &Config{}
	if err := yaml.Unmarshal(data, config); err != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}
	return config, nil
}
