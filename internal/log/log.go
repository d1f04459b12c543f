// Package log provides structured, colored logging for klingnet-mnemonic.
//
// Command output goes to stdout, so every logger here writes to stderr.
package log

import (
	"fmt"
	"io"
	"os"
	"time"

	"github.com/rs/zerolog"
)

const consoleTimeFormat = "15:04:05"

// Logger is the global logger instance.
var Logger zerolog.Logger

// Component loggers.
var (
	CLI      zerolog.Logger
	Wallet   zerolog.Logger
	Storage  zerolog.Logger
	WordList zerolog.Logger
)

// levels maps the accepted level names, in increasing severity.
var levels = []struct {
	name  string
	level zerolog.Level
}{
	{"trace", zerolog.TraceLevel},
	{"debug", zerolog.DebugLevel},
	{"info", zerolog.InfoLevel},
	{"warn", zerolog.WarnLevel},
	{"error", zerolog.ErrorLevel},
}

func init() {
	setLogger(NewConsoleLogger(os.Stderr, "info"))
}

// Init replaces the global logger. A non-empty file receives a JSON copy of
// every entry in addition to the console output.
func Init(level string, jsonOutput bool, file string) error {
	var console io.Writer = os.Stderr
	if !jsonOutput {
		console = consoleWriter(os.Stderr)
	}

	if file == "" {
		setLogger(newLogger(console, level))
		return nil
	}

	f, err := os.OpenFile(file, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0600)
	if err != nil {
		return fmt.Errorf("open log file: %w", err)
	}
	setLogger(newLogger(zerolog.MultiLevelWriter(console, f), level))
	return nil
}

// NewConsoleLogger creates a colored console logger.
func NewConsoleLogger(w io.Writer, level string) zerolog.Logger {
	return newLogger(consoleWriter(w), level)
}

// NewJSONLogger creates a structured JSON logger.
func NewJSONLogger(w io.Writer, level string) zerolog.Logger {
	return newLogger(w, level)
}

// ValidLevel reports whether name is an accepted log level.
func ValidLevel(name string) bool {
	_, ok := lookupLevel(name)
	return ok
}

// LevelNames lists the accepted level names.
func LevelNames() []string {
	names := make([]string, len(levels))
	for i, l := range levels {
		names[i] = l.name
	}
	return names
}

// WithWallet returns a wallet logger tagged with the wallet name.
func WithWallet(name string) zerolog.Logger {
	return Wallet.With().Str("wallet", name).Logger()
}

// Benchmark returns a func that logs the time elapsed since the call at
// debug level.
func Benchmark(name string) func() {
	start := time.Now()
	return func() {
		Logger.Debug().
			Str("operation", name).
			Dur("duration", time.Since(start)).
			Msg("benchmark")
	}
}

func consoleWriter(w io.Writer) zerolog.ConsoleWriter {
	return zerolog.ConsoleWriter{Out: w, TimeFormat: consoleTimeFormat}
}

func newLogger(w io.Writer, level string) zerolog.Logger {
	return zerolog.New(w).Level(parseLevel(level)).With().Timestamp().Logger()
}

// parseLevel falls back to info for unknown names.
func parseLevel(name string) zerolog.Level {
	if lvl, ok := lookupLevel(name); ok {
		return lvl
	}
	return zerolog.InfoLevel
}

func lookupLevel(name string) (zerolog.Level, bool) {
	for _, l := range levels {
		if l.name == name {
			return l.level, true
		}
	}
	return zerolog.NoLevel, false
}

func setLogger(l zerolog.Logger) {
	Logger = l
	CLI = component("cli")
	Wallet = component("wallet")
	Storage = component("storage")
	WordList = component("wordlist")
}

func component(name string) zerolog.Logger {
	return Logger.With().Str("component", name).Logger()
}
