package main

import (
	"flag"
	"fmt"

	"github.com/railcompare/rail-compare/internal/comparison"
	"github.com/railcompare/rail-compare/internal/config"
	"github.com/railcompare/rail-compare/internal/decision"
	"github.com/railcompare/rail-compare/internal/iban"
	"github.com/railcompare/rail-compare/internal/scheme"
	"github.com/railcompare/rail-compare/pkg/constants"
	"github.com/railcompare/rail-compare/pkg/output"
	"go.uber.org/zap"
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
	logger, err := config.BuildLogger(conf.Logging, *logLevel)
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

	// Validate configuration and display any warnings
	warnings := conf.ValidateConfiguration()
	for _, warning := range warnings {
		logger.Warn("Configuration warning: "+warning,
			zap.String("op", "main"),
		)
	}

	// Assemble the engines from the configured membership data.
	membership := scheme.New(conf.SchemeOptions())
	resolver := iban.NewResolver(conf.Scheme.CountryNames)
	decisions := decision.NewEngine(membership, resolver)
	comparisons := comparison.NewEngine(logger, decisions, conf.Durations())

	result := comparisons.Compare(conf.ComparisonInput())

	// Handle output.
	switch outputFormat {
	case constants.OutputFormatPretty:
		output.PrettyFormat(result)
	case constants.OutputFormatCSV:
		output.CsvFormat(result)
	default:
		logger.Fatal(fmt.Sprintf("invalid output format: %s", outputFormat),
			zap.String("op", "main"),
		)
	}
}
