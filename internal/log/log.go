// Package log provides the console progress logger for keygen.
package log

import (
	"io"

	"github.com/rs/zerolog"
)

// TimeFormat is the timestamp layout of console log lines.
const TimeFormat = "15:04:05"

// NewConsoleLogger creates a human-readable console logger at info level.
// Color is disabled when noColor is set, e.g. when w is not a terminal.
func NewConsoleLogger(w io.Writer, noColor bool) zerolog.Logger {
	output := zerolog.ConsoleWriter{
		Out:        w,
		TimeFormat: TimeFormat,
		NoColor:    noColor,
	}
	return zerolog.New(output).
		Level(zerolog.InfoLevel).
		With().
		Timestamp().
		Logger()
}

// WithComponent returns a logger with a component field.
func WithComponent(l zerolog.Logger, name string) zerolog.Logger {
	return l.With().Str("component", name).Logger()
}
