package main

import (
	"flag"
	"fmt"
	"net/http"

	"github.com/railcompare/rail-compare/internal/comparison"
	"github.com/railcompare/rail-compare/internal/config"
	"github.com/railcompare/rail-compare/internal/decision"
	"github.com/railcompare/rail-compare/internal/iban"
	"github.com/railcompare/rail-compare/internal/scheme"
	"github.com/railcompare/rail-compare/internal/server"
	"github.com/railcompare/rail-compare/internal/simulation"
	"github.com/railcompare/rail-compare/pkg/constants"
	"go.uber.org/zap"
)

// version is set at build time via -ldflags.
var version = "dev"

func main() {
	serverConfigLocation := flag.String("server-config", constants.DefaultServerConfigFile, "path to server configuration file")
	logLevel := flag.String("log-level", "", "log level override (debug, info, warn, error)")
	flag.Parse()

	serverConf, err := server.LoadConfig(*serverConfigLocation)
	if err != nil {
		fmt.Printf("{\"op\": \"main\", \"level\": \"fatal\", \"msg\": \"failed to load server configuration at %s\", \"error\": \"%v\"}\n", *serverConfigLocation, err)
		return
	}

	logger, err := config.BuildLogger(serverConf.Logging, *logLevel)
	if err != nil {
		fmt.Printf("{\"op\": \"main\", \"level\": \"fatal\", \"msg\": \"failed to initialize logger\", \"error\": \"%v\"}\n", err)
		return
	}
	defer func() {
		_ = logger.Sync()
	}()

	// Load the simulator configuration the server evaluates requests against.
	simConfigLocation := serverConf.ConfigFile
	if simConfigLocation == "" {
		simConfigLocation = constants.DefaultConfigFile
	}
	conf, err := config.LoadConfiguration(simConfigLocation)
	if err != nil {
		logger.Fatal(fmt.Sprintf("failed to load configuration at %s", simConfigLocation),
			zap.String("op", "main"),
			zap.Error(err),
		)
	}
	for _, warning := range conf.ValidateConfiguration() {
		logger.Warn("Configuration warning: "+warning,
			zap.String("op", "main"),
		)
	}

	membership := scheme.New(conf.SchemeOptions())
	resolver := iban.NewResolver(conf.Scheme.CountryNames)
	decisions := decision.NewEngine(membership, resolver)
	comparisons := comparison.NewEngine(logger, decisions, conf.Durations())
	runner := simulation.NewRunner(logger, nil, conf.RunnerConfig())
	defer runner.Stop()

	handler := server.NewHandler(logger, comparisons, runner, conf.Durations(), serverConf.MaxBodyBytes, version)

	logger.Info("starting server",
		zap.String("op", "main"),
		zap.String("address", serverConf.Address),
		zap.String("version", version),
	)
	if err := http.ListenAndServe(serverConf.Address, handler); err != nil {
		logger.Fatal("server stopped",
			zap.String("op", "main"),
			zap.Error(err),
		)
	}
}
