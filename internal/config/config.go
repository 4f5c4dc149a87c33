// Package config loads the HCL configuration file for the showdown CLI.
package config

import (
	"fmt"
	"os"

	"github.com/charmbracelet/log"
	"github.com/hashicorp/hcl/v2/gohcl"
	"github.com/hashicorp/hcl/v2/hclparse"
)

// Defaults applied to any value a config file leaves out.
const (
	DefaultIterations = 100000
	DefaultLogLevel   = "info"
	DefaultFile       = "showdown.hcl"
)

// Config represents the complete CLI configuration
type Config struct {
	Simulation *SimulationConfig `hcl:"simulation,block"`
	Log        *LogConfig        `hcl:"log,block"`
}

// SimulationConfig holds the equity simulation settings
type SimulationConfig struct {
	Iterations int   `hcl:"iterations,optional"`
	Workers    int   `hcl:"workers,optional"`
	Seed       int64 `hcl:"seed,optional"`
}

// LogConfig holds logging settings
type LogConfig struct {
	Level string `hcl:"level,optional"`
}

// Default returns the default configuration
func Default() *Config {
	return &Config{
		Simulation: &SimulationConfig{
			Iterations: DefaultIterations,
		},
		Log: &LogConfig{
			Level: DefaultLogLevel,
		},
	}
}

// Load reads configuration from an HCL file. A missing file is not an error
// and yields the defaults.
func Load(filename string) (*Config, error) {
	if _, err := os.Stat(filename); os.IsNotExist(err) {
		return Default(), nil
	}

	parser := hclparse.NewParser()
	file, diags := parser.ParseHCLFile(filename)
	if diags.HasErrors() {
		return nil, fmt.Errorf("failed to parse HCL file: %s", diags.Error())
	}

	var cfg Config
	diags = gohcl.DecodeBody(file.Body, nil, &cfg)
	if diags.HasErrors() {
		return nil, fmt.Errorf("failed to decode HCL: %s", diags.Error())
	}

	cfg.applyDefaults()
	return &cfg, nil
}

func (c *Config) applyDefaults() {
	if c.Simulation == nil {
		c.Simulation = &SimulationConfig{}
	}
	if c.Simulation.Iterations == 0 {
		c.Simulation.Iterations = DefaultIterations
	}
	if c.Log == nil {
		c.Log = &LogConfig{}
	}
	if c.Log.Level == "" {
		c.Log.Level = DefaultLogLevel
	}
}

// Validate validates the configuration
func (c *Config) Validate() error {
	if c.Simulation.Iterations < 1 {
		return fmt.Errorf("iterations must be positive, got %d", c.Simulation.Iterations)
	}
	if c.Simulation.Workers < 0 {
		return fmt.Errorf("workers cannot be negative, got %d", c.Simulation.Workers)
	}
	if _, err := log.ParseLevel(c.Log.Level); err != nil {
		return fmt.Errorf("invalid log level %q: %w", c.Log.Level, err)
	}
	return nil
}

// LogLevel returns the parsed log level. Call Validate first.
func (c *Config) LogLevel() log.Level {
	level, err := log.ParseLevel(c.Log.Level)
	if err != nil {
		return log.InfoLevel
	}
	return level
}
