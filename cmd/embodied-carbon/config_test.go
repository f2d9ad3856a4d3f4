package main

import (
	"bytes"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseLogLevel(t *testing.T) {
	tests := []struct {
		name      string
		flagValue string
		env       string
		want      zerolog.Level
		wantWarn  bool
	}{
		{name: "Default", want: zerolog.InfoLevel},
		{name: "Flag", flagValue: "debug", want: zerolog.DebugLevel},
		{name: "Flag Uppercase", flagValue: "WARN", want: zerolog.WarnLevel},
		{name: "Env", env: "error", want: zerolog.ErrorLevel},
		{name: "Flag Overrides Env", flagValue: "trace", env: "error", want: zerolog.TraceLevel},
		{name: "Env Whitespace", env: "  debug ", want: zerolog.DebugLevel},
		{name: "Invalid Flag", flagValue: "loud", want: zerolog.InfoLevel, wantWarn: true},
		{name: "Invalid Env", env: "verbose", want: zerolog.InfoLevel, wantWarn: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Setenv(envLogLevel, tt.env)

			var buf bytes.Buffer
			logger := zerolog.New(&buf)

			got := parseLogLevel(tt.flagValue, logger)
			assert.Equal(t, tt.want, got)

			if tt.wantWarn {
				assert.Contains(t, buf.String(), "invalid log level")
			} else {
				assert.Empty(t, buf.String())
			}
		})
	}
}

func TestParseOutputFormat(t *testing.T) {
	tests := []struct {
		value   string
		want    outputFormat
		wantErr bool
	}{
		{value: "text", want: outputText},
		{value: "json", want: outputJSON},
		{value: "YAML", want: outputYAML},
		{value: " json ", want: outputJSON},
		{value: "xml", wantErr: true},
		{value: "", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.value, func(t *testing.T) {
			got, err := parseOutputFormat(tt.value)
			if tt.wantErr {
				require.Error(t, err)
				assert.Contains(t, err.Error(), "unsupported output format")
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}
