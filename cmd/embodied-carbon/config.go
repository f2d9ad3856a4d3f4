package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/rs/zerolog"
)

const (
	// envLogLevel selects the log level when --log-level is not given.
	envLogLevel = "EMBODIED_CARBON_LOG_LEVEL"

	defaultLogLevel = zerolog.InfoLevel
)

// outputFormat is the rendering used for command results.
type outputFormat string

const (
	outputText outputFormat = "text"
	outputJSON outputFormat = "json"
	outputYAML outputFormat = "yaml"
)

// parseLogLevel resolves the log level from the flag value, falling back to the
// EMBODIED_CARBON_LOG_LEVEL environment variable and then to info.
// Invalid values are logged and replaced by the default.
func parseLogLevel(flagValue string, logger zerolog.Logger) zerolog.Level {
	raw := strings.TrimSpace(flagValue)
	source := "--log-level"
	if raw == "" {
		raw = strings.TrimSpace(os.Getenv(envLogLevel))
		source = envLogLevel
	}
	if raw == "" {
		return defaultLogLevel
	}

	level, err := zerolog.ParseLevel(strings.ToLower(raw))
	if err != nil || level == zerolog.NoLevel {
		logger.Warn().Str("value", raw).Str("source", source).Msg("invalid log level, using default")
		return defaultLogLevel
	}
	return level
}

// parseOutputFormat validates the --output flag.
func parseOutputFormat(value string) (outputFormat, error) {
	switch f := outputFormat(strings.ToLower(strings.TrimSpace(value))); f {
	case outputText, outputJSON, outputYAML:
		return f, nil
	default:
		return "", fmt.Errorf("unsupported output format %q (want text, json or yaml)", value)
	}
}
