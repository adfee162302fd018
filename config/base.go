package config

import (
	"github.com/kbukum/seqkit/logger"
	"github.com/kbukum/seqkit/validation"
)

// BaseConfig contains the fields every seqkit program needs. Programs embed
// it in their own config structs:
//
//	type DemoConfig struct {
//	    config.BaseConfig `yaml:",inline" mapstructure:",squash"`
//	    Plans []plan.Plan `yaml:"plans" mapstructure:"plans"`
//	}
type BaseConfig struct {
	Name        string        `yaml:"name" mapstructure:"name" validate:"required"`
	Environment string        `yaml:"environment" mapstructure:"environment" validate:"oneof=development staging production"`
	Version     string        `yaml:"version" mapstructure:"version"`
	Debug       bool          `yaml:"debug" mapstructure:"debug"`
	Logging     logger.Config `yaml:"logging" mapstructure:"logging"`
}

// ApplyDefaults applies default values to base configuration. Debug mode
// lowers an unset log level to debug.
func (c *BaseConfig) ApplyDefaults() {
	if c.Environment == "" {
		c.Environment = "development"
	}
	if c.Environment == "development" {
		c.Debug = true
	}
	if c.Debug && c.Logging.Level == "" {
		c.Logging.Level = "debug"
	}
	c.Logging.ApplyDefaults()
}

// Validate validates base configuration.
func (c *BaseConfig) Validate() error {
	if err := validation.Validate(c); err != nil {
		return err
	}
	return c.Logging.Validate()
}
