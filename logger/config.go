package logger

import (
	"fmt"
	"slices"

	"github.com/kbukum/seqkit/errors"
)

var (
	validLevels  = []string{"trace", "debug", "info", "warn", "error", "disabled"}
	validFormats = []string{"json", "console", FormatPretty}
	validOutputs = []string{"stdout", "stderr"}
)

// Config contains logging configuration.
type Config struct {
	Level     string `yaml:"level" mapstructure:"level"`
	Format    string `yaml:"format" mapstructure:"format"`
	Output    string `yaml:"output" mapstructure:"output"`
	NoColor   bool   `yaml:"no_color" mapstructure:"no_color"`
	Timestamp bool   `yaml:"timestamp" mapstructure:"timestamp"`
	Caller    bool   `yaml:"caller" mapstructure:"caller"`
}

// ApplyDefaults applies default values to logging configuration.
func (c *Config) ApplyDefaults() {
	if c.Level == "" {
		c.Level = "info"
	}
	if c.Format == "" {
		c.Format = "console"
	}
	if c.Output == "" {
		c.Output = "stdout"
	}
	c.Timestamp = true
}

// Validate validates logging configuration.
func (c *Config) Validate() error {
	if !slices.Contains(validLevels, c.Level) {
		return errors.Validation(fmt.Sprintf("logging.level must be one of %v (got: %s)", validLevels, c.Level)).
			WithDetail("field", "logging.level")
	}
	if !slices.Contains(validFormats, c.Format) {
		return errors.Validation(fmt.Sprintf("logging.format must be one of %v (got: %s)", validFormats, c.Format)).
			WithDetail("field", "logging.format")
	}
	if !slices.Contains(validOutputs, c.Output) {
		return errors.Validation(fmt.Sprintf("logging.output must be one of %v (got: %s)", validOutputs, c.Output)).
			WithDetail("field", "logging.output")
	}
	return nil
}
