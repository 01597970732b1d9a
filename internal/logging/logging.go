// Package logging builds the zerolog logger from configuration.
package logging

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/rs/zerolog"

	"github.com/Byambaa0325/claude-carbon-tracker/internal/config"
)

// ParseLevel maps a config level name to a zerolog level. Unknown names
// fall back to info.
func ParseLevel(name string) zerolog.Level {
	switch name {
	case "debug":
		return zerolog.DebugLevel
	case "warn":
		return zerolog.WarnLevel
	case "error":
		return zerolog.ErrorLevel
	}
	return zerolog.InfoLevel
}

// New returns a logger writing to out in the configured format.
func New(cfg config.LoggingConfig, out io.Writer) zerolog.Logger {
	level := ParseLevel(cfg.Level)

	if cfg.Format == "text" {
		return zerolog.New(zerolog.ConsoleWriter{Out: out, NoColor: true}).
			Level(level).With().Timestamp().Logger()
	}

	return zerolog.New(out).Level(level).With().Timestamp().Logger()
}

// Open returns a logger writing to cfg.File, or to fallback when File is
// empty. An empty fallback means stderr. The returned closer must be closed
// on exit.
func Open(cfg config.LoggingConfig, fallback string) (zerolog.Logger, io.Closer, error) {
	path := cfg.File
	if path == "" {
		path = fallback
	}
	if path == "" {
		return New(cfg, os.Stderr), nopCloser{}, nil
	}

	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return zerolog.Nop(), nil, fmt.Errorf("create log dir: %w", err)
	}
	f, err := os.OpenFile(path, os.O_WRONLY|os.O_CREATE|os.O_APPEND, 0o600)
	if err != nil {
		return zerolog.Nop(), nil, fmt.Errorf("open log file: %w", err)
	}
	return New(cfg, f), f, nil
}

type nopCloser struct{}

func (nopCloser) Close() error { return nil }
