// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package logger provides a thin wrapper around zerolog.Logger that adds
// convenience constructors and context-aware helpers used throughout
// site-sync.
//
// The Logger type embeds zerolog.Logger so all standard zerolog methods
// (Debug, Info, Warn, Error, Fatal, etc.) are available directly on *Logger.
// Application code passes *Logger by pointer and obtains request- or
// sync-scoped loggers via FromContext or FromRequest.
package logger

import (
	"context"
	"io"
	"net/http"
	"os"
	"path/filepath"
	"runtime"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"gopkg.in/natefinch/lumberjack.v2"
)

// Logger is a thin wrapper around zerolog.Logger.
type Logger struct {
	zerolog.Logger
}

// FileOptions controls the rotating log file used by [NewClientLogger].
type FileOptions struct {
	// Path is the log file location. Empty means "logs/sitesync.log" next to
	// the executable.
	Path string
	// MaxSizeMB is the size at which the file is rotated. Zero means 10.
	MaxSizeMB int
	// MaxBackups is the number of rotated files kept. Zero means 3.
	MaxBackups int
}

func configureGlobals() {
	zerolog.SetGlobalLevel(zerolog.DebugLevel)
	zerolog.CallerMarshalFunc = func(pc uintptr, file string, line int) string {
		return runtime.FuncForPC(pc).Name() // return function name
	}
	zerolog.CallerFieldName = "func"
}

// NewLogger constructs a *Logger for the given role label (e.g. "serve",
// "cli") that writes JSON to os.Stdout.
//
// Every entry carries a "role" field, a timestamp and a "func" caller field
// holding the fully-qualified function name.
func NewLogger(role string) *Logger {
	configureGlobals()
	return newLogger(os.Stdout, role)
}

// NewClientLogger constructs a *Logger that writes JSON to a size-rotated
// file managed by lumberjack. The directory is created when missing; if that
// fails the logger falls back to os.Stdout.
func NewClientLogger(role string, opts FileOptions) *Logger {
	configureGlobals()

	path := opts.Path
	if path == "" {
		execPath, _ := os.Executable()
		path = filepath.Join(filepath.Dir(execPath), "logs", "sitesync.log")
	}
	if opts.MaxSizeMB <= 0 {
		opts.MaxSizeMB = 10
	}
	if opts.MaxBackups <= 0 {
		opts.MaxBackups = 3
	}

	var out io.Writer = os.Stdout
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err == nil {
		out = &lumberjack.Logger{
			Filename:   path,
			MaxSize:    opts.MaxSizeMB,
			MaxBackups: opts.MaxBackups,
			Compress:   true,
		}
	}

	return newLogger(out, role)
}

func newLogger(w io.Writer, role string) *Logger {
	logger := zerolog.New(w).With().
		Str("role", role).
		Timestamp().
		Caller().
		Logger()

	return &Logger{logger}
}

// Nop returns a *Logger that discards all output. Intended for tests.
func Nop() *Logger {
	return &Logger{zerolog.Nop()}
}

// GetChildLogger returns a new *Logger that inherits all fields of the
// receiver and can be enriched without affecting the parent.
func (l *Logger) GetChildLogger() *Logger {
	return &Logger{l.With().Logger()}
}

// WithFields returns a child logger carrying the given string fields.
func (l *Logger) WithFields(fields map[string]string) *Logger {
	ctx := l.With()
	for k, v := range fields {
		ctx = ctx.Str(k, v)
	}
	return &Logger{ctx.Logger()}
}

// FromRequest extracts the zerolog.Logger stored in the request's context.
func FromRequest(r *http.Request) *Logger {
	return &Logger{*log.Ctx(r.Context())}
}

// FromContext extracts the zerolog.Logger stored in ctx by zerolog's
// WithContext. If none is attached, zerolog's default (disabled) logger is
// returned, so the result is never nil.
func FromContext(ctx context.Context) *Logger {
	return &Logger{*log.Ctx(ctx)}
}
