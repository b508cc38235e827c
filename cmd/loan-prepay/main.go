package main

import (
	"flag"
	"fmt"

	"go.uber.org/zap"

	"github.com/prepaytools/loan-prepay/internal/config"
	"github.com/prepaytools/loan-prepay/internal/logging"
	"github.com/prepaytools/loan-prepay/pkg/amortize"
	"github.com/prepaytools/loan-prepay/pkg/constants"
	"github.com/prepaytools/loan-prepay/pkg/output"
	"github.com/prepaytools/loan-prepay/pkg/validation"
)

func main() {
	// Process command line flags first to get config location
	configLocation := flag.String("config", constants.DefaultConfigFile, "path to configuration file")
	outputFormatFlag := flag.String("output-format", "", "type of output override: pretty, csv")
	logLevel := flag.String("log-level", "", "log level override (debug, info, warn, error)")
	flag.Parse()

	// Load the config file to get logging configuration
	conf, err := config.LoadConfiguration(*configLocation)
	if err != nil {
		fmt.Printf("{\"op\": \"main\", \"level\": \"fatal\", \"msg\": \"failed to load configuration at %s\", \"error\": \"%v\"}\n", *configLocation, err)
		return
	}

	// Initialize logging based on config and CLI override
	logger, err := logging.NewLogger(conf.Logging, *logLevel)
	if err != nil {
		fmt.Printf("{\"op\": \"main\", \"level\": \"fatal\", \"msg\": \"failed to initialize logger\", \"error\": \"%v\"}\n", err)
		return
	}
	defer func() {
		_ = logger.Sync()
	}()

	// Determine output format (CLI override takes precedence over config)
	outputFormat := conf.Output.Format
	if *outputFormatFlag != "" {
		outputFormat = *outputFormatFlag
	}
	if outputFormat == "" {
		outputFormat = constants.OutputFormatPretty
	}

	err = validation.ValidateOutputFormat(outputFormat)
	if err != nil {
		logger.Fatal(err.Error(),
			zap.String("op", "main"),
		)
	}

	// Convert the loan section into engine parameters.
	params, err := conf.LoanParameters()
	if err != nil {
		logger.Fatal("failed to parse loan parameters",
			zap.String("op", "main"),
			zap.Error(err),
		)
	}

	// Enforce the caller contract before invoking the engine.
	if err := validation.ValidateLoanParameters(params); err != nil {
		logger.Fatal(err.Error(),
			zap.String("op", "main"),
		)
	}

	// Display any warnings about suspicious but valid parameters.
	for _, warning := range conf.ValidateConfiguration() {
		logger.Warn("Configuration warning: "+warning,
			zap.String("op", "main"),
		)
	}

	// Run the prepayment calculation.
	engine := amortize.NewEngine(logger)
	result, err := engine.Calculate(params)
	if err != nil {
		logger.Fatal("failed to compute prepayment result",
			zap.String("op", "main"),
			zap.Error(err),
		)
	}

	// Handle output.
	switch outputFormat {
	case constants.OutputFormatPretty:
		output.PrettyFormat(result)
	case constants.OutputFormatCSV:
		output.CsvFormat(result)
	}
}
