// Package logging provides the process-wide zerolog logger.
//
// Call Init once at startup with the configured level, format and output.
// Until then the logger writes console-formatted info-level records to
// stderr. While the TUI owns the terminal, Init is called with a file or
// io.Discard so log lines never corrupt the screen.
//
//	logging.Info().Str("region", key).Msg("explore")
//	log := logging.With("session")
//	log.Debug().Uint64("generation", gen).Msg("deferred open superseded")
package logging

import (
	"io"
	"os"
	"strings"
	"sync"
	"time"

	"github.com/rs/zerolog"
)

// Output formats.
const (
	FormatConsole = "console"
	FormatJSON    = "json"
)

// Config holds logging configuration.
type Config struct {
	// Level is the minimum level: trace, debug, info, warn, error or disabled.
	Level string
	// Format is console or json.
	Format string
	// Output receives log records. Nil means stderr.
	Output io.Writer
	// NoColor disables ANSI colors in console output.
	NoColor bool
}

var (
	mu     sync.RWMutex
	logger *zerolog.Logger // nil until Init or first use
)

// Init configures the global logger. It is safe to call more than once;
// later calls replace the logger.
func Init(cfg Config) {
	l := build(cfg)
	mu.Lock()
	defer mu.Unlock()
	logger = &l
}

func build(cfg Config) zerolog.Logger {
	out := cfg.Output
	if out == nil {
		out = os.Stderr
	}
	if !strings.EqualFold(cfg.Format, FormatJSON) {
		out = zerolog.ConsoleWriter{Out: out, TimeFormat: time.Kitchen, NoColor: cfg.NoColor}
	}
	return zerolog.New(out).Level(ParseLevel(cfg.Level)).With().Timestamp().Logger()
}

// current returns the logger, building the default on first use.
func current() zerolog.Logger {
	mu.RLock()
	l := logger
	mu.RUnlock()
	if l != nil {
		return *l
	}
	mu.Lock()
	defer mu.Unlock()
	if logger == nil {
		def := build(Config{})
		logger = &def
	}
	return *logger
}

// ParseLevel converts a level name to a zerolog.Level. Unknown names map to
// info.
func ParseLevel(level string) zerolog.Level {
	switch strings.ToLower(strings.TrimSpace(level)) {
	case "trace":
		return zerolog.TraceLevel
	case "debug":
		return zerolog.DebugLevel
	case "warn", "warning":
		return zerolog.WarnLevel
	case "error":
		return zerolog.ErrorLevel
	case "disabled", "off":
		return zerolog.Disabled
	default:
		return zerolog.InfoLevel
	}
}

// ValidLevel reports whether level names a known level.
func ValidLevel(level string) bool {
	switch strings.ToLower(strings.TrimSpace(level)) {
	case "trace", "debug", "info", "warn", "warning", "error", "disabled", "off":
		return true
	}
	return false
}

// Logger returns the global logger.
func Logger() zerolog.Logger { return current() }

// With returns a child logger tagged with a component name.
func With(component string) zerolog.Logger {
	l := current()
	return l.With().Str("component", component).Logger()
}

// Debug starts a debug-level record.
func Debug() *zerolog.Event {
	l := current()
	return l.Debug()
}

// Info starts an info-level record.
func Info() *zerolog.Event {
	l := current()
	return l.Info()
}

// Warn starts a warn-level record.
func Warn() *zerolog.Event {
	l := current()
	return l.Warn()
}

// Error starts an error-level record.
func Error() *zerolog.Event {
	l := current()
	return l.Error()
}
