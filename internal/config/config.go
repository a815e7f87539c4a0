// Package config defines the data structures related to configuration and
// includes functions for loading and parsing the config.
package config

import (
	"fmt"
	"io"

	"github.com/iwvelando/mortgage-points/pkg/constants"
	"github.com/spf13/viper"
)

// DateTimeLayout is the format expected in config files and is also used
// for dates on amortization schedule rows.
const DateTimeLayout = constants.DateTimeLayout

// Configuration holds all configuration for mortgage-points.
type Configuration struct {
	Loan            LoanConfig          `yaml:"loan,omitempty" mapstructure:"loan"`
	Points          []float64           `yaml:"points,omitempty" mapstructure:"points"`
	Overpayments    []OverpaymentConfig `yaml:"overpayments,omitempty" mapstructure:"overpayments"`
	StartDate       string              `yaml:"startDate,omitempty" mapstructure:"startDate"`
	UnitDefinitions string              `yaml:"unitDefinitions,omitempty" mapstructure:"unitDefinitions"`
	Optimizer       *OptimizerConfig    `yaml:"optimizer,omitempty" mapstructure:"optimizer"`
	Logging         LoggingConfig       `yaml:"logging,omitempty" mapstructure:"logging"`
	Output          OutputConfig        `yaml:"output,omitempty" mapstructure:"output"`
}

// LoggingConfig holds logging-related configuration.
type LoggingConfig struct {
	Level      string `yaml:"level,omitempty" mapstructure:"level"`
	Format     string `yaml:"format,omitempty" mapstructure:"format"`
	OutputFile string `yaml:"outputFile,omitempty" mapstructure:"outputFile"`
}

// OutputConfig holds output-related configuration.
type OutputConfig struct {
	Format   string `yaml:"format,omitempty" mapstructure:"format"`
	Schedule bool   `yaml:"schedule,omitempty" mapstructure:"schedule"`
}

// LoadConfiguration takes a file path as input and loads the YAML-formatted
// configuration there, applying defaults for any loan terms or comparison
// points left unset.
func LoadConfiguration(configPath string) (*Configuration, error) {
	viper.SetConfigFile(configPath)
	viper.AutomaticEnv()

	viper.SetConfigType("yml")
	var configuration Configuration

	if err := viper.ReadInConfig(); err != nil {
		return &configuration, fmt.Errorf("error reading config file, %s", err)
	}

	err := viper.Unmarshal(&configuration)
	if err != nil {
		return &configuration, fmt.Errorf("unable to decode into struct, %s", err)
	}

	configuration.ApplyDefaults()

	return &configuration, nil
}

// LoadConfigurationFromReader loads a YAML-formatted configuration from r,
// applying the same defaults as LoadConfiguration. Uploaded configurations
// go through here so they cannot disturb the process-wide viper state.
func LoadConfigurationFromReader(r io.Reader) (*Configuration, error) {
	v := viper.New()
	v.SetConfigType("yml")
	var configuration Configuration

	if err := v.ReadConfig(r); err != nil {
		return &configuration, fmt.Errorf("error reading config data, %s", err)
	}

	err := v.Unmarshal(&configuration)
	if err != nil {
		return &configuration, fmt.Errorf("unable to decode into struct, %s", err)
	}

	configuration.ApplyDefaults()

	return &configuration, nil
}

// ApplyDefaults fills in defaults for anything the configuration leaves
// unset so a minimal (or empty) config still describes a complete loan.
func (conf *Configuration) ApplyDefaults() {
	conf.Loan.ApplyDefaults()
	if len(conf.Points) == 0 {
		conf.Points = []float64{0, 1, 2}
	}
	if conf.Optimizer != nil {
		conf.Optimizer.Normalize()
	}
}
