// SPDX-License-Identifier: MIT

// Package config loads run parameters for the grassmann command from YAML.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/grassmann/export"
	"github.com/katalvlaran/grassmann/grassmann"
)

// Config holds one complex build and what to do with the result.
type Config struct {
	Complex ComplexConfig `yaml:"complex"`
	Export  ExportConfig  `yaml:"export"`
	Metrics MetricsConfig `yaml:"metrics"`
	Logging LoggingConfig `yaml:"logging"`
}

// ComplexConfig holds the construction parameters.
type ComplexConfig struct {
	N        int    `yaml:"n"`        // ambient dimension (default 3)
	D        int    `yaml:"d"`        // max rank bound, 1 <= d <= n (default 2)
	Q        int    `yaml:"q"`        // field size, prime power (default 2)
	Policy   string `yaml:"policy"`   // default, legacy, or an integer
	Spanning bool   `yaml:"spanning"` // keep dimension-d spans as a top level
}

// ExportConfig holds export settings. The format follows the path extension.
type ExportConfig struct {
	Path string `yaml:"path"`
}

// MetricsConfig holds metrics settings.
type MetricsConfig struct {
	Textfile string `yaml:"textfile"` // Prometheus textfile written after the run
}

// LoggingConfig holds logging settings.
type LoggingConfig struct {
	Env   string `yaml:"env"`   // local, dev, docker, prod (default: local)
	Level string `yaml:"level"` // debug, info, warn, error (default: determined by env)
}

// Default returns the configuration used without a config file.
func Default() Config {
	var c Config
	c.ApplyDefaults()

	return c
}

// Load reads configuration from a YAML file.
func Load(path string) (Config, error) {
	data, err := os.ReadFile(filepath.Clean(path))
	if err != nil {
		return Config{}, fmt.Errorf("failed to read config %s: %w", path, err)
	}

	// Substitute env variables of the form ${VAR}
	data = expandEnvVars(data)

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("failed to parse config: %w", err)
	}

	cfg.ApplyDefaults()

	if err := cfg.Validate(); err != nil {
		return Config{}, fmt.Errorf("invalid config: %w", err)
	}

	return cfg, nil
}

// ApplyDefaults fills empty fields with default values.
func (c *Config) ApplyDefaults() {
	if c.Complex.N <= 0 {
		c.Complex.N = 3
	}
	if c.Complex.D <= 0 {
		c.Complex.D = 2
	}
	if c.Complex.Q <= 0 {
		c.Complex.Q = 2
	}
	if c.Complex.Policy == "" {
		c.Complex.Policy = grassmann.PolicyDefault
	}
	if c.Logging.Env == "" {
		c.Logging.Env = "local"
	}
}

// Validate checks the configuration for correctness.
func (c *Config) Validate() error {
	if c.Complex.N < 1 {
		return fmt.Errorf("complex.n must be >= 1, got %d", c.Complex.N)
	}
	if c.Complex.D < 1 || c.Complex.D > c.Complex.N {
		return fmt.Errorf("complex.d must be between 1 and complex.n (%d), got %d", c.Complex.N, c.Complex.D)
	}
	if c.Complex.Q < 2 {
		return fmt.Errorf("complex.q must be a prime power >= 2, got %d", c.Complex.Q)
	}
	if _, err := grassmann.ParsePolicy(c.Complex.Policy); err != nil {
		return fmt.Errorf("complex.policy: %w", err)
	}
	if c.Export.Path != "" {
		if _, err := export.FormatFromPath(c.Export.Path); err != nil {
			return fmt.Errorf("export.path: %w", err)
		}
	}
	switch c.Logging.Env {
	case "local", "dev", "docker", "prod":
	default:
		return fmt.Errorf("logging.env must be one of local, dev, docker, prod, got %q", c.Logging.Env)
	}
	switch c.Logging.Level {
	case "", "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("logging.level must be one of debug, info, warn, error, got %q", c.Logging.Level)
	}

	return nil
}

// CoefficientPolicy resolves Complex.Policy.
func (c *Config) CoefficientPolicy() (grassmann.CoefficientPolicy, error) {
	return grassmann.ParsePolicy(c.Complex.Policy)
}

// expandEnvVars replaces ${VAR} and ${VAR:-default} with environment variable values.
var envVarRegex = regexp.MustCompile(`\$\{([^}]+)\}`)

func expandEnvVars(data []byte) []byte {
	return envVarRegex.ReplaceAllFunc(data, func(match []byte) []byte {
		expr := string(match[2 : len(match)-1]) // strip ${ and }
		varName, defaultVal, hasDefault := strings.Cut(expr, ":-")
		val := os.Getenv(varName)
		if val == "" && hasDefault {
			val = defaultVal
		}
		return []byte(val)
	})
}
