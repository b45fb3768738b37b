package logger

import (
	"io"
	"os"
	"time"

	"github.com/rs/zerolog"
)

// New returns an info-level JSON logger writing to stdout.
func New() zerolog.Logger {
	return NewWithLevel("info", false)
}

// NewWithLevel builds a logger for the given level name. Unknown levels fall
// back to info. Pretty output is meant for local development only.
func NewWithLevel(level string, pretty bool) zerolog.Logger {
	lvl, err := zerolog.ParseLevel(level)
	if err != nil || level == "" {
		lvl = zerolog.InfoLevel
	}

	var w io.Writer = os.Stdout
	if pretty {
		w = zerolog.ConsoleWriter{Out: os.Stdout, TimeFormat: time.RFC3339}
	}

	return zerolog.New(w).
		Level(lvl).
		With().
		Timestamp().
		Str("service", "property-management").
		Logger()
}
