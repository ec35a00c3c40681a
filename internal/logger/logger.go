// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package logger wraps zerolog.Logger with the constructors and
// context helpers used throughout helios-keeper.
//
// Logger embeds zerolog.Logger so the whole zerolog API (Debug, Info, Warn,
// Error, ...) is available on *Logger. Pass *Logger by pointer and obtain
// request-scoped loggers via FromContext or FromRequest.
package logger

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"os"
	"path/filepath"
	"runtime"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

// Logger is a thin wrapper around zerolog.Logger.
type Logger struct {
	zerolog.Logger
}

// configureGlobals sets the caller format. The global level is left to
// SetLevel so building a logger never overrides the configured one.
func configureGlobals() {
	zerolog.CallerMarshalFunc = func(pc uintptr, file string, line int) string {
		return runtime.FuncForPC(pc).Name()
	}
	zerolog.CallerFieldName = "func"
}

func newLogger(w io.Writer, role string) *Logger {
	logger := zerolog.New(w).With().
		Str("role", role).
		Timestamp().
		Caller().
		Logger()

	return &Logger{logger}
}

// NewLogger constructs a JSON *Logger writing to os.Stdout for the given
// role label (e.g. "host", "lightclient").
//
// Every entry carries "role", a timestamp and a "func" caller field holding
// the fully-qualified function name instead of file:line.
func NewLogger(role string) *Logger {
	configureGlobals()
	return newLogger(os.Stdout, role)
}

// NewHostLogger is like NewLogger but appends to <dir>/logs/<role>.log.
// It falls back to os.Stdout when the file cannot be opened.
func NewHostLogger(role, dir string) *Logger {
	configureGlobals()

	var out io.Writer = os.Stdout
	logDir := filepath.Join(dir, "logs")
	if err := os.MkdirAll(logDir, 0o700); err == nil {
		logFile, err := os.OpenFile(filepath.Join(logDir, role+".log"), os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o600)
		if err == nil {
			out = logFile
		}
	}

	return newLogger(out, role)
}

// Nop returns a *Logger that discards all log output.
func Nop() *Logger {
	return &Logger{zerolog.Nop()}
}

// SetLevel sets the global zerolog level from its name ("debug", "info",
// ...). An empty name leaves the level unchanged.
func SetLevel(name string) error {
	if name == "" {
		return nil
	}

	level, err := zerolog.ParseLevel(name)
	if err != nil {
		return fmt.Errorf("invalid log level %q: %w", name, err)
	}
	zerolog.SetGlobalLevel(level)
	return nil
}

// GetChildLogger returns a new *Logger that inherits all fields of the
// receiver.
func (l *Logger) GetChildLogger() *Logger {
	return &Logger{l.With().Logger()}
}

// WithSession returns a child logger tagged with a light-client session id.
func (l *Logger) WithSession(id string) *Logger {
	return &Logger{l.With().Str("session_id", id).Logger()}
}

// FromRequest returns the logger attached to the request context by the
// trace-id middleware.
func FromRequest(r *http.Request) *Logger {
	return FromContext(r.Context())
}

// FromContext returns the logger stored in ctx via zerolog's WithContext.
// When none is attached zerolog's default logger is returned, so the result
// is never nil.
func FromContext(ctx context.Context) *Logger {
	return &Logger{*log.Ctx(ctx)}
}
