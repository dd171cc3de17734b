package main

import (
	"flag"
	"fmt"
	"net/http"
	"os"
	"path/filepath"

	"github.com/openblend/blend-planner/internal/config"
	"github.com/openblend/blend-planner/internal/planner"
	"github.com/openblend/blend-planner/internal/server"
	"github.com/openblend/blend-planner/internal/solver"
	"github.com/openblend/blend-planner/pkg/constants"
	"github.com/openblend/blend-planner/pkg/output"
	"github.com/openblend/blend-planner/pkg/validation"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"gopkg.in/yaml.v3"
)

// version is set at build time via -ldflags.
var version = "dev"

// initializeLogger creates a zap logger based on configuration and CLI override
func initializeLogger(loggingConfig config.LoggingConfig, logLevelOverride string) (*zap.Logger, error) {
	// Determine log level (CLI override takes precedence)
	level := loggingConfig.Level
	if logLevelOverride != "" {
		level = logLevelOverride
	}
	if level == "" {
		level = "info" // Default to info level
	}

	// Parse log level
	var zapLevel zapcore.Level
	switch level {
	case "debug":
		zapLevel = zapcore.DebugLevel
	case "info":
		zapLevel = zapcore.InfoLevel
	case "warn", "warning":
		zapLevel = zapcore.WarnLevel
	case "error":
		zapLevel = zapcore.ErrorLevel
	default:
		return nil, fmt.Errorf("invalid log level: %s", level)
	}

	// Determine output format
	format := loggingConfig.Format
	if format == "" {
		format = "json" // Default to JSON for production
	}

	// Configure encoder
	var config zap.Config
	switch format {
	case "console":
		config = zap.NewDevelopmentConfig()
		config.Level = zap.NewAtomicLevelAt(zapLevel)
	case "json":
		config = zap.NewProductionConfig()
		config.Level = zap.NewAtomicLevelAt(zapLevel)
	default:
		return nil, fmt.Errorf("invalid log format: %s", format)
	}

	// Configure output file if specified
	if loggingConfig.OutputFile != "" {
		// Ensure the directory exists
		if dir := filepath.Dir(loggingConfig.OutputFile); dir != "." {
			if err := os.MkdirAll(dir, 0755); err != nil {
				return nil, fmt.Errorf("failed to create log directory %s: %v", dir, err)
			}
		}

		// Test if we can create/write to the file
		if file, err := os.OpenFile(loggingConfig.OutputFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644); err != nil {
			return nil, fmt.Errorf("failed to open log file %s: %v", loggingConfig.OutputFile, err)
		} else {
			_ = file.Close()
		}

		config.OutputPaths = []string{loggingConfig.OutputFile}
		config.ErrorOutputPaths = []string{loggingConfig.OutputFile}
	}

	return config.Build()
}

func main() {
	// Process command line flags first to get config location
	configLocation := flag.String("config", constants.DefaultConfigFile, "path to configuration file")
	problemLocation := flag.String("problem", "", "path to a YAML blend problem; solves once and exits instead of serving")
	listenOverride := flag.String("listen", "", "listen address override for serve mode")
	outputFormatFlag := flag.String("output-format", "", "type of output override: pretty, json")
	logLevel := flag.String("log-level", "", "log level override (debug, info, warn, error)")
	flag.Parse()

	// Load the config file to get logging configuration
	conf, err := config.LoadConfiguration(*configLocation)
	if err != nil {
		fmt.Printf("{\"op\": \"main\", \"level\": \"fatal\", \"msg\": \"failed to load configuration at %s\", \"error\": \"%v\"}\n", *configLocation, err)
		return
	}

	// Initialize logging based on config and CLI override
	logger, err := initializeLogger(conf.Logging, *logLevel)
	if err != nil {
		fmt.Printf("{\"op\": \"main\", \"level\": \"fatal\", \"msg\": \"failed to initialize logger\", \"error\": \"%v\"}\n", err)
		return
	}
	defer func() {
		_ = logger.Sync()
	}()

	// Construct the configured LP backend; an unknown backend is a fatal
	// configuration error, unrelated to problem feasibility.
	lp, err := solver.New(conf.Solver.Backend, solver.Options{Tolerance: conf.Solver.Tolerance})
	if err != nil {
		logger.Fatal("failed to construct LP solver",
			zap.String("op", "main"),
			zap.Error(err),
		)
	}

	if *problemLocation != "" {
		solveOnce(logger, lp, *problemLocation, *outputFormatFlag)
		return
	}

	listen := conf.Server.Listen
	if *listenOverride != "" {
		listen = *listenOverride
	}
	if listen == "" {
		listen = constants.DefaultServerAddress
	}

	handler := server.NewHandler(logger, lp, conf.Server.MaxBodyBytes, version)
	logger.Info("serving blend API",
		zap.String("op", "main"),
		zap.String("listen", listen),
		zap.String("backend", conf.Solver.Backend),
	)
	if err := http.ListenAndServe(listen, handler); err != nil {
		logger.Fatal("server stopped",
			zap.String("op", "main"),
			zap.Error(err),
		)
	}
}

func solveOnce(logger *zap.Logger, lp solver.Solver, problemPath, outputFormatFlag string) {
	// Determine output format (CLI override takes precedence over config)
	outputFormat := outputFormatFlag
	if outputFormat == "" {
		outputFormat = constants.OutputFormatPretty
	}

	if err := validation.ValidateOutputFormat(outputFormat); err != nil {
		logger.Fatal(err.Error(),
			zap.String("op", "main"),
		)
	}

	data, err := os.ReadFile(problemPath)
	if err != nil {
		logger.Fatal(fmt.Sprintf("failed to read problem file at %s", problemPath),
			zap.String("op", "main"),
			zap.Error(err),
		)
	}

	var problem planner.Problem
	if err := yaml.Unmarshal(data, &problem); err != nil {
		logger.Fatal("failed to parse problem file",
			zap.String("op", "main"),
			zap.Error(err),
		)
	}

	outcome, err := planner.Solve(logger, problem, lp)
	if err != nil {
		logger.Fatal("failed to solve blend problem",
			zap.String("op", "main"),
			zap.Error(err),
		)
	}

	// Handle output.
	switch outputFormat {
	case constants.OutputFormatPretty:
		output.PrettyFormat(outcome)
	case constants.OutputFormatJSON:
		if err := output.JSONFormat(outcome); err != nil {
			logger.Fatal("failed to render outcome",
				zap.String("op", "main"),
				zap.Error(err),
			)
		}
	}
}
