// Package config defines the data structures related to configuration and
// includes functions for loading and validating the config.
package config

import (
	"fmt"
	"io"

	"github.com/jvelker/training-roi/internal/roi"
	"github.com/jvelker/training-roi/pkg/validation"
	"github.com/spf13/viper"
)

// Configuration holds all configuration for training-roi.
type Configuration struct {
	Scenarios []Scenario
	Logging   LoggingConfig `yaml:"logging,omitempty"`
	Output    OutputConfig  `yaml:"output,omitempty"`
}

// LoggingConfig holds logging configuration options
type LoggingConfig struct {
	Level      string `yaml:"level,omitempty"`      // debug, info, warn, error
	Format     string `yaml:"format,omitempty"`     // json, console
	OutputFile string `yaml:"outputFile,omitempty"` // optional file output
}

// OutputConfig holds output format configuration options
type OutputConfig struct {
	Format string `yaml:"format,omitempty"` // pretty, csv, json, slides
}

// Scenario is a named, switchable set of training parameters.
type Scenario struct {
	Name         string
	Active       bool
	roi.Scenario `mapstructure:",squash" yaml:",inline"`
}

// ToROI converts the config scenario into an engine scenario with the
// optional parameters defaulted.
func (s Scenario) ToROI() roi.Scenario {
	return s.Scenario.Normalized()
}

// LoadConfiguration takes a file path as input and loads the YAML-formatted
// configuration there.
func LoadConfiguration(configPath string) (*Configuration, error) {
	v := viper.New()
	v.SetConfigFile(configPath)
	v.AutomaticEnv()

	v.SetConfigType("yml")

	if err := v.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("error reading config file, %s", err)
	}

	return unmarshalConfiguration(v)
}

// LoadConfigurationFromReader loads a YAML-formatted configuration from the
// given reader. Used by the server for uploaded configs.
func LoadConfigurationFromReader(r io.Reader) (*Configuration, error) {
	v := viper.New()
	v.SetConfigType("yml")

	if err := v.ReadConfig(r); err != nil {
		return nil, fmt.Errorf("error reading config data, %s", err)
	}

	return unmarshalConfiguration(v)
}

func unmarshalConfiguration(v *viper.Viper) (*Configuration, error) {
	var configuration Configuration
	err := v.Unmarshal(&configuration)
	if err != nil {
		return nil, fmt.Errorf("unable to decode into struct, %s", err)
	}

	return &configuration, nil
}

// ActiveScenarios returns the scenarios marked active, in config order.
func (c *Configuration) ActiveScenarios() []Scenario {
	var active []Scenario
	for _, scenario := range c.Scenarios {
		if scenario.Active {
			active = append(active, scenario)
		}
	}
	return active
}

// ValidateConfiguration performs general validation of the configuration and
// returns warnings. Hard per-scenario errors are left to
// validation.CheckScenario at the call site so they can fail the run.
func (c *Configuration) ValidateConfiguration() []string {
	var warnings []string

	if len(c.Scenarios) == 0 {
		warnings = append(warnings, "configuration contains no scenarios")
		return warnings
	}

	if len(c.ActiveScenarios()) == 0 {
		warnings = append(warnings, "configuration contains no active scenarios")
	}

	seen := make(map[string]struct{})
	for _, scenario := range c.Scenarios {
		if scenario.Name == "" {
			warnings = append(warnings, "scenario with empty name")
		}
		if _, dup := seen[scenario.Name]; dup {
			warnings = append(warnings, fmt.Sprintf("duplicate scenario name '%s'", scenario.Name))
		}
		seen[scenario.Name] = struct{}{}

		if !scenario.Active {
			continue
		}
		scenarioWarnings, err := validation.CheckScenario(scenario.ToROI())
		if err != nil {
			// Reported again as a hard error when the scenario is computed.
			warnings = append(warnings, fmt.Sprintf("scenario '%s': %v", scenario.Name, err))
			continue
		}
		for _, w := range scenarioWarnings {
			warnings = append(warnings, fmt.Sprintf("scenario '%s': %s", scenario.Name, w))
		}
	}

	return warnings
}
