// Package log builds the zerolog loggers used by the pantry tools.
package log

import (
	"io"
	"os"
	"strings"
	"sync"
	"time"

	"github.com/rs/zerolog"
)

const levelEnv = "PANTRY_LOG_LEVEL"

var (
	mu     sync.RWMutex
	output io.Writer = Console(os.Stderr)
)

// SetOutput redirects every logger NewLogger creates afterwards.
func SetOutput(w io.Writer) {
	mu.Lock()
	defer mu.Unlock()
	output = w
}

// Console wraps w in a human-readable zerolog writer.
func Console(w io.Writer) io.Writer {
	return zerolog.ConsoleWriter{Out: w, TimeFormat: time.Kitchen, NoColor: true}
}

// NewLogger returns a logger tagged with the given component name, writing to
// the package output.
func NewLogger(name string) zerolog.Logger {
	mu.RLock()
	w := output
	mu.RUnlock()
	return New(w, name)
}

// New returns a logger tagged with the given component name. The level comes
// from PANTRY_LOG_LEVEL and defaults to info.
func New(w io.Writer, name string) zerolog.Logger {
	return zerolog.New(w).
		Level(levelFromEnv()).
		With().
		Timestamp().
		Str("component", name).
		Logger()
}

// Nop returns a disabled logger.
func Nop() zerolog.Logger {
	return zerolog.Nop()
}

func levelFromEnv() zerolog.Level {
	raw := strings.TrimSpace(os.Getenv(levelEnv))
	if raw == "" {
		return zerolog.InfoLevel
	}
	lvl, err := zerolog.ParseLevel(strings.ToLower(raw))
	if err != nil {
		return zerolog.InfoLevel
	}
	return lvl
}
