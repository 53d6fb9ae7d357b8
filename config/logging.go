package config

import (
	"fmt"
	"io"
	"time"

	"github.com/rs/zerolog"
)

// NewLogger builds the process logger. JSON mode writes zerolog's native
// event stream for machine consumption; console mode wraps w in a
// human-readable writer. Level names follow zerolog (trace, debug, info,
// warn, error, fatal, panic); an empty level means info.
func NewLogger(w io.Writer, level string, jsonOut bool) (zerolog.Logger, error) {
	if level == "" {
		level = "info"
	}
	lvl, err := zerolog.ParseLevel(level)
	if err != nil {
		return zerolog.Nop(), fmt.Errorf("parse log level %q: %w", level, err)
	}

	out := w
	if !jsonOut {
		out = zerolog.ConsoleWriter{Out: w, TimeFormat: time.RFC3339}
	}

	return zerolog.New(out).Level(lvl).With().Timestamp().Str("service", "dlpno").Logger(), nil
}
