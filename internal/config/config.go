// Package config defines the data structures related to configuration and
// includes functions for loading and parsing the config.
package config

import (
	"fmt"
	"io"

	"github.com/spf13/viper"

	"github.com/prepaytools/loan-prepay/pkg/amortize"
	"github.com/prepaytools/loan-prepay/pkg/validation"
)

// Configuration holds all configuration for loan-prepay.
type Configuration struct {
	Loan    LoanConfig    `yaml:"loan"`
	Logging LoggingConfig `yaml:"logging,omitempty"`
	Output  OutputConfig  `yaml:"output,omitempty"`
}

// LoggingConfig holds logging configuration options
type LoggingConfig struct {
	Level      string `yaml:"level,omitempty"`      // debug, info, warn, error
	Format     string `yaml:"format,omitempty"`     // json, console
	OutputFile string `yaml:"outputFile,omitempty"` // optional file output
}

// OutputConfig holds output format configuration options
type OutputConfig struct {
	Format string `yaml:"format,omitempty"` // pretty, csv
}

// LoanConfig holds the loan and prepayment parameters as written in the
// config file. Enumerations are carried as strings and parsed on conversion.
type LoanConfig struct {
	TotalLoan          float64 `yaml:"totalLoan"`
	RemainingPeriods   int     `yaml:"remainingPeriods"`
	AnnualRate         float64 `yaml:"annualRate"`
	PrepaymentAmount   float64 `yaml:"prepaymentAmount"`
	RepaymentMethod    string  `yaml:"repaymentMethod"`    // equalInstallment, equalPrincipal
	PrepaymentStrategy string  `yaml:"prepaymentStrategy"` // reducePayment, reduceTerm
}

// LoadConfiguration takes a file path as input and loads the YAML-formatted
// configuration there.
func LoadConfiguration(configPath string) (*Configuration, error) {
	v := viper.New()
	v.SetConfigFile(configPath)
	v.AutomaticEnv()

	v.SetConfigType("yml")

	if err := v.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("error reading config file, %w", err)
	}

	var configuration Configuration
	err := v.Unmarshal(&configuration)
	if err != nil {
		return nil, fmt.Errorf("unable to decode into struct, %w", err)
	}

	return &configuration, nil
}

// LoadConfigurationFromReader loads a YAML-formatted configuration from an
// in-memory source, e.g. an HTTP request body.
func LoadConfigurationFromReader(r io.Reader) (*Configuration, error) {
	v := viper.New()
	v.SetConfigType("yml")

	if err := v.ReadConfig(r); err != nil {
		return nil, fmt.Errorf("error reading config data, %w", err)
	}

	var configuration Configuration
	err := v.Unmarshal(&configuration)
	if err != nil {
		return nil, fmt.Errorf("unable to decode into struct, %w", err)
	}

	return &configuration, nil
}

// LoanParameters converts the configured loan section into engine
// parameters. Unset method and strategy fall back to equal installment and
// reduce payment respectively.
func (c *Configuration) LoanParameters() (amortize.LoanParameters, error) {
	params := amortize.LoanParameters{
		TotalLoan:        c.Loan.TotalLoan,
		RemainingPeriods: c.Loan.RemainingPeriods,
		AnnualRate:       c.Loan.AnnualRate,
		PrepaymentAmount: c.Loan.PrepaymentAmount,
	}

	method := c.Loan.RepaymentMethod
	if method == "" {
		method = string(amortize.EqualInstallment)
	}
	parsedMethod, err := amortize.ParseRepaymentMethod(method)
	if err != nil {
		return params, err
	}
	params.RepaymentMethod = parsedMethod

	strategy := c.Loan.PrepaymentStrategy
	if strategy == "" {
		strategy = string(amortize.ReducePayment)
	}
	parsedStrategy, err := amortize.ParsePrepaymentStrategy(strategy)
	if err != nil {
		return params, err
	}
	params.PrepaymentStrategy = parsedStrategy

	return params, nil
}

// ValidateConfiguration performs general validation of the configuration and
// returns warnings.
func (c *Configuration) ValidateConfiguration() []string {
	params, err := c.LoanParameters()
	if err != nil {
		return []string{err.Error()}
	}
	return validation.LoanParameterWarnings(params)
}
