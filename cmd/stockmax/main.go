package main

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/iwvelando/stockmax/internal/config"
	"github.com/iwvelando/stockmax/internal/stockparser"
	"github.com/iwvelando/stockmax/pkg/constants"
	"github.com/iwvelando/stockmax/pkg/output"
	"github.com/iwvelando/stockmax/pkg/validation"
	"github.com/spf13/pflag"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// logLevels maps configured level names onto zap levels.
var logLevels = map[string]zapcore.Level{
	"debug":   zapcore.DebugLevel,
	"info":    zapcore.InfoLevel,
	"warn":    zapcore.WarnLevel,
	"warning": zapcore.WarnLevel,
	"error":   zapcore.ErrorLevel,
}

// initializeLogger builds the zap logger for one query. Logs go to stderr
// unless an output file is configured, so stdout only carries the result.
func initializeLogger(loggingConfig config.LoggingConfig) (*zap.Logger, error) {
	level := loggingConfig.Level
	if level == "" {
		level = constants.DefaultLogLevel
	}
	zapLevel, ok := logLevels[level]
	if !ok {
		return nil, fmt.Errorf("invalid log level: %s", level)
	}

	format := loggingConfig.Format
	if format == "" {
		format = constants.DefaultLogFormat
	}

	var config zap.Config
	switch format {
	case "console":
		config = zap.NewDevelopmentConfig()
	case "json":
		config = zap.NewProductionConfig()
	default:
		return nil, fmt.Errorf("invalid log format: %s", format)
	}
	config.Level = zap.NewAtomicLevelAt(zapLevel)

	if path := loggingConfig.OutputFile; path != "" {
		if dir := filepath.Dir(path); dir != "." {
			if err := os.MkdirAll(dir, 0755); err != nil {
				return nil, fmt.Errorf("failed to create log directory %s: %v", dir, err)
			}
		}

		// Fail here with a readable message rather than inside config.Build.
		file, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
		if err != nil {
			return nil, fmt.Errorf("failed to open log file %s: %v", path, err)
		}
		_ = file.Close()

		config.OutputPaths = []string{path}
		config.ErrorOutputPaths = []string{path}
	}

	return config.Build()
}

// run executes one query and returns the process exit status.
func run(args []string, stdout, stderr io.Writer) int {
	flags := pflag.NewFlagSet("stockmax", pflag.ContinueOnError)
	flags.SetOutput(stderr)
	company := flags.StringP("company", "c", "", "company name")
	year := flags.StringP("year", "y", "", "year")
	month := flags.StringP("month", "m", "", "month")
	filePath := flags.StringP("filepath", "f", "", "path to the price table (required)")
	configLocation := flags.String("config", "", "path to an optional configuration file")
	flags.String("log-level", "", "log level override (debug, info, warn, error)")
	flags.String("output-format", "", "type of output override: pretty, csv")
	flags.String("compare", "", "price ordering override: numeric, lexical")
	flags.String("encoding", "", "CSV input encoding override: utf-8, latin-1")
	flags.String("sheet", "", "worksheet to read from .xlsx input")

	if err := flags.Parse(args); err != nil {
		if errors.Is(err, pflag.ErrHelp) {
			return int(stockparser.ExitOK)
		}
		_, _ = fmt.Fprintln(stderr, err)
		return int(stockparser.ExitInvalidOption)
	}
	if *filePath == "" {
		_, _ = fmt.Fprintln(stderr, "flag -f/--filepath is required")
		return int(stockparser.ExitInvalidOption)
	}

	conf, err := config.LoadConfiguration(*configLocation, flags)
	if err != nil {
		_, _ = fmt.Fprintf(stderr, "{\"op\": \"main\", \"level\": \"fatal\", \"msg\": \"failed to load configuration at %s\", \"error\": \"%v\"}\n", *configLocation, err)
		return int(stockparser.ExitInvalidOption)
	}
	if err := conf.Validate(); err != nil {
		_, _ = fmt.Fprintln(stderr, err)
		return int(stockparser.ExitCodeFor(err))
	}

	logger, err := initializeLogger(conf.Logging)
	if err != nil {
		_, _ = fmt.Fprintf(stderr, "{\"op\": \"main\", \"level\": \"fatal\", \"msg\": \"failed to initialize logger\", \"error\": \"%v\"}\n", err)
		return int(stockparser.ExitUnexpected)
	}
	defer func() {
		_ = logger.Sync()
	}()

	fail := func(err error) int {
		code := stockparser.ExitCodeFor(err)
		logger.Info("query failed",
			zap.String("op", "main"),
			zap.Stringer("kind", stockparser.KindOf(err)),
			zap.Int("exitCode", int(code)),
			zap.Error(err),
		)
		_, _ = fmt.Fprintln(stderr, err)
		return int(code)
	}

	err = validation.ValidateArguments(validation.Arguments{
		FilePath: *filePath,
		Company:  *company,
		Year:     *year,
		Month:    *month,
	})
	if err != nil {
		return fail(err)
	}

	result, err := stockparser.ComputeMax(logger, stockparser.Options{
		FilePath:   *filePath,
		Company:    *company,
		Year:       *year,
		Month:      *month,
		Comparison: conf.ComparisonMode(),
		Encoding:   conf.Parser.Encoding,
		Sheet:      conf.Parser.Sheet,
	})
	if err != nil {
		return fail(err)
	}

	if err := output.Write(stdout, conf.Output.Format, result); err != nil {
		logger.Error("failed to write result",
			zap.String("op", "main"),
			zap.Error(err),
		)
		return int(stockparser.ExitUnexpected)
	}

	return int(stockparser.ExitOK)
}

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}
