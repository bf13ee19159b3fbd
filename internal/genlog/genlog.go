// Package genlog is the core's pluggable structured logger: a small
// interface wrapping zerolog, with a process-level default that callers
// (the CLI, the HTTP server, test harnesses) can swap via SetLogger. Package
// code never imports zerolog directly — only this interface — the same way
// pkg/validation depends on the Validator interface rather than a concrete
// validator.
package genlog

import (
	"os"
	"time"

	"github.com/rs/zerolog"
)

// Logger is the leveled logging surface the core calls into. Key/value
// pairs are passed as alternating string key, any value, mirroring the
// structured-field style of zerolog's With().Interface chains.
type Logger interface {
	Debug(msg string, kv ...any)
	Info(msg string, kv ...any)
	Warn(msg string, kv ...any)
	Error(msg string, kv ...any)
}

// zerologLogger adapts a zerolog.Logger to Logger.
type zerologLogger struct {
	z zerolog.Logger
}

// New wraps z as a Logger.
func New(z zerolog.Logger) Logger {
	return &zerologLogger{z: z}
}

// Default returns a console-writer logger at Info level, matching the
// format used by the source's CLI entry points.
func Default() Logger {
	zerolog.TimeFieldFormat = time.RFC3339
	z := zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.RFC3339}).
		Level(zerolog.InfoLevel).
		With().Timestamp().Logger()
	return New(z)
}

func (l *zerologLogger) Debug(msg string, kv ...any) { l.event(l.z.Debug(), msg, kv) }
func (l *zerologLogger) Info(msg string, kv ...any)  { l.event(l.z.Info(), msg, kv) }
func (l *zerologLogger) Warn(msg string, kv ...any)  { l.event(l.z.Warn(), msg, kv) }
func (l *zerologLogger) Error(msg string, kv ...any) { l.event(l.z.Error(), msg, kv) }

func (l *zerologLogger) event(e *zerolog.Event, msg string, kv []any) {
	for i := 0; i+1 < len(kv); i += 2 {
		key, ok := kv[i].(string)
		if !ok {
			continue
		}
		e = e.Interface(key, kv[i+1])
	}
	e.Msg(msg)
}

var current Logger = Default()

// SetLogger installs l as the package-level default, returning the
// previous logger so callers can restore it (tests lean on this to swap in
// a silent logger without a package-global reset helper).
func SetLogger(l Logger) Logger {
	prev := current
	current = l
	return prev
}

// L returns the current package-level logger.
func L() Logger { return current }

// Debug logs at debug level via the package-level logger.
func Debug(msg string, kv ...any) { current.Debug(msg, kv...) }

// Info logs at info level via the package-level logger.
func Info(msg string, kv ...any) { current.Info(msg, kv...) }

// Warn logs at warn level via the package-level logger.
func Warn(msg string, kv ...any) { current.Warn(msg, kv...) }

// Error logs at error level via the package-level logger.
func Error(msg string, kv ...any) { current.Error(msg, kv...) }
