// Package config loads keycalc settings from defaults, an optional YAML file,
// and KEYCALC_* environment variables, in that order of precedence.
package config

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/kelseyhightower/envconfig"
	"go.uber.org/zap/zapcore"
	"gopkg.in/yaml.v3"

	"github.com/zephyrtronium/keycalc"
)

// EnvPrefix is the prefix of environment variables that override settings.
// Variable names follow the YAML structure, e.g. KEYCALC_LOG_LEVEL or
// KEYCALC_EVAL_MAX_FACTORIAL.
const EnvPrefix = "KEYCALC"

// DisplayFormat is the output format that prints results exactly as the
// calculator's display shows them.
const DisplayFormat = "display"

// Config holds all keycalc configuration.
type Config struct {
	Log    LogConfig    `yaml:"log"`
	Eval   EvalConfig   `yaml:"eval"`
	Output OutputConfig `yaml:"output"`
}

// LogConfig configures logging.
type LogConfig struct {
	Level       string `yaml:"level"` // debug, info, warn, error
	Development bool   `yaml:"development"`
}

// EvalConfig configures the evaluator.
type EvalConfig struct {
	// MaxFactorial is the largest operand accepted by !.
	MaxFactorial int `yaml:"max_factorial" split_words:"true"`
}

// OutputConfig configures how the CLI prints results.
type OutputConfig struct {
	// Format is "display" or a fmt verb for a float64, like "%g".
	Format string `yaml:"format"`
}

// Default returns the default configuration.
func Default() *Config {
	return &Config{
		Log: LogConfig{
			Level: "info",
		},
		Eval: EvalConfig{
			MaxFactorial: keycalc.MaxFactorial,
		},
		Output: OutputConfig{
			Format: DisplayFormat,
		},
	}
}

// Load loads configuration. If path is empty, only defaults and environment
// variables apply.
func Load(path string) (*Config, error) {
	cfg := Default()
	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("failed to read config: %w", err)
		}
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("failed to parse config %s: %w", path, err)
		}
	}
	if err := envconfig.Process(EnvPrefix, cfg); err != nil {
		return nil, fmt.Errorf("failed to load config from environment: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Marshal encodes the configuration as YAML, in the form Load reads.
func (c *Config) Marshal() ([]byte, error) {
	data, err := yaml.Marshal(c)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal config: %w", err)
	}
	return data, nil
}

// Save writes the configuration as YAML.
func (c *Config) Save(path string) error {
	data, err := c.Marshal()
	if err != nil {
		return err
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("failed to write config: %w", err)
	}
	return nil
}

// Validate checks that all settings are usable.
func (c *Config) Validate() error {
	var errs []error
	if _, err := zapcore.ParseLevel(c.Log.Level); err != nil {
		errs = append(errs, fmt.Errorf("log.level: %w", err))
	}
	if c.Eval.MaxFactorial < 0 || c.Eval.MaxFactorial > keycalc.MaxFactorial {
		errs = append(errs, fmt.Errorf("eval.max_factorial: %d is outside [0, %d]", c.Eval.MaxFactorial, keycalc.MaxFactorial))
	}
	if err := checkFormat(c.Output.Format); err != nil {
		errs = append(errs, fmt.Errorf("output.format: %w", err))
	}
	return errors.Join(errs...)
}

// checkFormat reports whether f is the display format or formats one float64
// cleanly. fmt marks a wrong verb or a missing or extra operand with "%!".
func checkFormat(f string) error {
	if f == DisplayFormat {
		return nil
	}
	if !strings.Contains(f, "%") {
		return fmt.Errorf("%q is neither %q nor a fmt verb", f, DisplayFormat)
	}
	if s := fmt.Sprintf(f, 1.5); strings.Contains(s, "%!") {
		return fmt.Errorf("%q does not format a number: %s", f, s)
	}
	return nil
}
