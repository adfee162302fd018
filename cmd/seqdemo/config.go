package main

import (
	"fmt"

	"github.com/kbukum/seqkit/config"
	"github.com/kbukum/seqkit/errors"
	"github.com/kbukum/seqkit/observe"
	"github.com/kbukum/seqkit/plan"
	"github.com/kbukum/seqkit/validation"
	"github.com/kbukum/seqkit/version"
)

const serviceName = "seqdemo"

// DemoConfig is the seqdemo configuration file.
type DemoConfig struct {
	config.BaseConfig `yaml:",inline" mapstructure:",squash"`
	Telemetry         observe.Config `yaml:"telemetry" mapstructure:"telemetry"`
	Plans             []plan.Plan    `yaml:"plans" mapstructure:"plans"`
}

func newDemoConfig() *DemoConfig {
	return &DemoConfig{Telemetry: observe.DefaultConfig(serviceName)}
}

// ApplyDefaults fills the base defaults and derives telemetry identity from them.
func (c *DemoConfig) ApplyDefaults() {
	if c.Name == "" {
		c.Name = serviceName
	}
	c.BaseConfig.ApplyDefaults()
	if c.Version == "" {
		c.Version = version.Get().Short()
	}
	c.Telemetry.ServiceName = c.Name
	c.Telemetry.ServiceVersion = c.Version
	c.Telemetry.Environment = c.Environment
	c.Telemetry.ApplyDefaults(c.Name)
}

// Validate checks the base config, telemetry settings and every plan.
func (c *DemoConfig) Validate() error {
	if err := c.BaseConfig.Validate(); err != nil {
		return err
	}
	if err := validation.Validate(&c.Telemetry); err != nil {
		return fmt.Errorf("telemetry: %w", err)
	}
	seen := make(map[string]bool, len(c.Plans))
	for i := range c.Plans {
		p := &c.Plans[i]
		if err := p.Validate(); err != nil {
			return fmt.Errorf("plans[%d]: %w", i, err)
		}
		if seen[p.Name] {
			return errors.Validation(fmt.Sprintf("plans[%d].name: duplicate plan name %q", i, p.Name)).
				WithDetail("field", fmt.Sprintf("plans[%d].name", i))
		}
		seen[p.Name] = true
	}
	return nil
}

func loadConfig(configFile, envFile string) (*DemoConfig, error) {
	cfg := newDemoConfig()
	var opts []config.LoaderOption
	if configFile != "" {
		opts = append(opts, config.WithConfigFile(configFile))
	}
	if envFile != "" {
		opts = append(opts, config.WithEnvFile(envFile))
	}
	if err := config.Load(serviceName, cfg, opts...); err != nil {
		return nil, err
	}
	return cfg, nil
}
