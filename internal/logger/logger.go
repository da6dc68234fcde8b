// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 The ransomwatch Authors

// Package logger provides a thin wrapper around zerolog.Logger tuned for a
// command-line tool: all log output goes to stderr so stdout stays reserved
// for reports and JSON payloads.
//
// The Logger type embeds zerolog.Logger so all standard zerolog methods
// (Debug, Info, Warn, Error, Fatal, etc.) are available directly on *Logger.
package logger

import (
	"io"
	"regexp"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

// Logger is a thin wrapper around zerolog.Logger.
// Embedding zerolog.Logger exposes the full zerolog API while allowing the
// application to add helper methods without modifying the upstream type.
type Logger struct {
	zerolog.Logger
}

// NewCLILogger constructs the *Logger used by the ransomwatch binary.
//
// Output is human-readable (console writer, no color) on w, which is stderr
// in production and a buffer in tests. The level is Info unless verbose is
// set, in which case Debug entries are emitted too. Every invocation gets a
// fresh trace id so overlapping runs can be told apart when stderr is
// collected.
func NewCLILogger(w io.Writer, verbose bool) *Logger {
	level := zerolog.InfoLevel
	if verbose {
		level = zerolog.DebugLevel
	}

	out := zerolog.ConsoleWriter{Out: w, NoColor: true, TimeFormat: "15:04:05"}
	l := zerolog.New(out).Level(level).With().
		Timestamp().
		Str("trace_id", newTraceID()).
		Logger()

	return &Logger{l}
}

// Nop returns a *Logger that discards all log output.
// It is intended for use in tests and other contexts where logging is
// undesirable or would produce noise.
func Nop() *Logger {
	return &Logger{zerolog.Nop()}
}

// GetChildLogger returns a new *Logger that inherits all fields of the
// receiver and tags every entry with the given component name, so stderr
// output can be traced back to the layer that emitted it.
func (l *Logger) GetChildLogger(component string) *Logger {
	return &Logger{l.With().Str("component", component).Logger()}
}

func newTraceID() string {
	v7, err := uuid.NewV7()
	if err != nil {
		return uuid.NewString()
	}
	return v7.String()
}

var sensitivePatterns = []*regexp.Regexp{
	regexp.MustCompile(`(?i)x-api-key[=:]\s*\S+`),
	regexp.MustCompile(`(?i)authorization[=:]\s*\S+`),
	regexp.MustCompile(`(?i)api[_-]?key[=:]\s*[^\s&]+`),
	regexp.MustCompile(`(?i)api[_-]?token[=:]\s*[^\s&]+`),
	regexp.MustCompile(`(?i)password[=:]\s*[^\s&]+`),
	regexp.MustCompile(`(?i)secret[=:]\s*[^\s&]+`),
}

// Redact strips credential material from a string before it is logged.
// URLs, headers, and error texts that may embed the API key all pass
// through here.
func Redact(s string) string {
	for _, p := range sensitivePatterns {
		s = p.ReplaceAllString(s, "[REDACTED]")
	}
	return s
}
