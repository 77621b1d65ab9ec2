// Package validation provides common validation utilities.
package validation

import (
	"fmt"

	"github.com/iwvelando/stockmax/pkg/constants"
)

// ValidateOutputFormat checks if the output format is one of the supported formats.
func ValidateOutputFormat(format string) error {
	if format != constants.OutputFormatPretty && format != constants.OutputFormatCSV {
		return fmt.Errorf("expected output format of %s or %s, got %s",
			constants.OutputFormatPretty, constants.OutputFormatCSV, format)
	}
	return nil
}

// ValidateLogLevel checks if the log level is one zap understands here.
func ValidateLogLevel(level string) error {
	switch level {
	case "debug", "info", "warn", "warning", "error":
		return nil
	}
	return fmt.Errorf("invalid log level: %s", level)
}

// ValidateLogFormat checks if the log format is json or console.
func ValidateLogFormat(format string) error {
	switch format {
	case "json", "console":
		return nil
	}
	return fmt.Errorf("invalid log format: %s", format)
}
