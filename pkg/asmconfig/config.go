// Package asmconfig holds the assembler CLI's configuration: defaults
// loadable from and overridable by a YAML file, in the same
// defaults-then-overlay shape the teacher's config package uses.
package asmconfig

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Config is the assembler's configuration.
type Config struct {
	Assembler AssemblerConfig `yaml:"assembler"`
	Logging   LoggingConfig   `yaml:"logging"`
}

// AssemblerConfig holds the default directories the CLI reads contracts
// from and writes bytecode to.
type AssemblerConfig struct {
	ContractsDir string `yaml:"contracts_dir"`
	OutputDir    string `yaml:"output_dir"`
}

// LoggingConfig selects the logger's verbosity and rendering.
type LoggingConfig struct {
	Level  string `yaml:"level"`
	Format string `yaml:"format"`
}

// DefaultConfig returns a configuration with the CLI's built-in defaults.
func DefaultConfig() *Config {
	return &Config{
		Assembler: AssemblerConfig{
			ContractsDir: "./evmm_contracts",
			OutputDir:    "./evm_asm",
		},
		Logging: LoggingConfig{
			Level:  "info",
			Format: "text",
		},
	}
}

// Load reads configuration from a YAML file, overlaying it onto
// DefaultConfig. If path is empty, "evmasm.yaml" in the current directory
// is tried; a missing file is not an error — defaults are returned as-is.
func Load(path string) (*Config, error) {
	cfg := DefaultConfig()

	if path == "" {
		path = "evmasm.yaml"
	}

	if _, err := os.Stat(path); os.IsNotExist(err) {
		return cfg, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	expanded := []byte(os.ExpandEnv(string(data)))
	if err := yaml.Unmarshal(expanded, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}

	return cfg, nil
}

// Save writes the configuration to a YAML file.
func (c *Config) Save(path string) error {
	data, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}
	return nil
}

// Validate checks that required fields are set.
func (c *Config) Validate() error {
	if c.Assembler.ContractsDir == "" {
		return fmt.Errorf("assembler.contracts_dir is required")
	}
	if c.Assembler.OutputDir == "" {
		return fmt.Errorf("assembler.output_dir is required")
	}
	switch c.Logging.Level {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("logging.level must be one of debug, info, warn, error")
	}
	switch c.Logging.Format {
	case "text", "json":
	default:
		return fmt.Errorf("logging.format must be one of text, json")
	}
	return nil
}
