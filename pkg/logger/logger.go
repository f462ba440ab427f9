// Package logger provides the process-wide structured logger backed by
// zerolog. Initialise once at startup with Init, then derive per-component
// loggers with For.
package logger

import (
	"io"
	"os"
	"strings"
	"sync"
	"time"

	"github.com/rs/zerolog"
)

// Config controls logger behaviour at initialisation time.
type Config struct {
	// Level is the minimum log level: trace, debug, info, warn, error.
	// Unrecognised or empty values default to "info".
	Level string
	// Pretty switches to human-friendly console output. Leave false to emit
	// pure JSON.
	Pretty bool
	// Output defaults to os.Stderr so command output stays clean on stdout.
	Output io.Writer
}

var (
	mu       sync.Mutex
	root     zerolog.Logger
	prepared bool
)

// Init builds the root logger. Subsequent calls replace it, which tests use
// to capture output.
func Init(cfg Config) zerolog.Logger {
	mu.Lock()
	defer mu.Unlock()

	zerolog.TimeFieldFormat = time.RFC3339Nano

	out := cfg.Output
	if out == nil {
		out = os.Stderr
	}
	if cfg.Pretty {
		out = zerolog.ConsoleWriter{Out: out, TimeFormat: time.RFC3339}
	}

	root = zerolog.New(out).Level(level(cfg.Level)).With().Timestamp().Logger()
	prepared = true
	return root
}

// For returns a child logger tagged with the given component name. Safe to
// call before Init; it then returns a disabled logger.
func For(component string) zerolog.Logger {
	mu.Lock()
	defer mu.Unlock()
	if !prepared {
		return zerolog.Nop()
	}
	return root.With().Str("component", component).Logger()
}

func level(s string) zerolog.Level {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "trace":
		return zerolog.TraceLevel
	case "debug":
		return zerolog.DebugLevel
	case "warn", "warning":
		return zerolog.WarnLevel
	case "error":
		return zerolog.ErrorLevel
	default:
		return zerolog.InfoLevel
	}
}
