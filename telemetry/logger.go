package telemetry

import (
	"io"
	"os"
	"strings"
	"time"

	"github.com/rs/zerolog"
)

// NewLogger creates a service-scoped logger. format "console" gives human
// readable output for the CLI, anything else writes JSON lines.
func NewLogger(service, level, format string) zerolog.Logger {
	return newLogger(os.Stderr, service, level, format)
}

func newLogger(out io.Writer, service, level, format string) zerolog.Logger {
	zerolog.TimeFieldFormat = zerolog.TimeFormatUnixMs

	if strings.EqualFold(format, "console") {
		out = zerolog.ConsoleWriter{Out: out, TimeFormat: time.Kitchen}
	}

	lvl, err := zerolog.ParseLevel(strings.ToLower(level))
	if err != nil || level == "" {
		lvl = zerolog.InfoLevel
	}

	return zerolog.New(out).
		Level(lvl).
		With().
		Timestamp().
		Str("service", service).
		Logger()
}

// Nop is used where a component is built without a logger
func Nop() zerolog.Logger {
	return zerolog.Nop()
}
