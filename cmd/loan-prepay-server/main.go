package main

import (
	"flag"
	"fmt"
	"net/http"

	"go.uber.org/zap"

	"github.com/prepaytools/loan-prepay/internal/logging"
	"github.com/prepaytools/loan-prepay/internal/server"
	"github.com/prepaytools/loan-prepay/pkg/constants"
)

// version is set at build time via -ldflags.
var version = "dev"

func main() {
	configLocation := flag.String("config", constants.DefaultServerConfigFile, "path to server configuration file")
	listenAddress := flag.String("listen", "", "listen address override (e.g. :8080)")
	logLevel := flag.String("log-level", "", "log level override (debug, info, warn, error)")
	flag.Parse()

	cfg, err := server.LoadConfig(*configLocation)
	if err != nil {
		fmt.Printf("{\"op\": \"main\", \"level\": \"fatal\", \"msg\": \"failed to load server configuration at %s\", \"error\": \"%v\"}\n", *configLocation, err)
		return
	}

	logger, err := logging.NewLogger(cfg.Logging, *logLevel)
	if err != nil {
		fmt.Printf("{\"op\": \"main\", \"level\": \"fatal\", \"msg\": \"failed to initialize logger\", \"error\": \"%v\"}\n", err)
		return
	}
	defer func() {
		_ = logger.Sync()
	}()

	address := cfg.Address
	if *listenAddress != "" {
		address = *listenAddress
	}

	handler := server.NewHandler(logger, cfg.RequestSizeBytes(), version)

	logger.Info("starting HTTP server",
		zap.String("op", "main"),
		zap.String("address", address),
		zap.Int64("maxRequestSize", cfg.RequestSizeBytes()),
		zap.String("version", version),
	)

	if err := http.ListenAndServe(address, handler); err != nil {
		logger.Fatal("HTTP server failed",
			zap.String("op", "main"),
			zap.Error(err),
		)
	}
}
