// Copyright (c) 2025 Karl Gaissmaier
// SPDX-License-Identifier: MIT

package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
)

// logHandler is a slog.Handler for command line output.
// Messages are written without time or level decoration,
// warnings and errors to stderr, everything else to stdout.
type logHandler struct {
	stdout     io.Writer
	stderr     io.Writer
	level      slog.Leveler
	hasErrored bool
}

var _ slog.Handler = (*logHandler)(nil)

func newLogHandler(stdout, stderr io.Writer) *logHandler {
	return &logHandler{
		stdout: stdout,
		stderr: stderr,
		level:  slog.LevelInfo,
	}
}

func (h *logHandler) setLevel(level slog.Leveler) {
	h.level = level
}

func (h *logHandler) writer(level slog.Level) io.Writer {
	if level >= slog.LevelWarn {
		return h.stderr
	}

	return h.stdout
}

func (h *logHandler) Enabled(_ context.Context, level slog.Level) bool {
	return level >= h.level.Level()
}

func (h *logHandler) Handle(_ context.Context, record slog.Record) error {
	if record.Level >= slog.LevelError {
		h.hasErrored = true
	}

	_, err := fmt.Fprint(h.writer(record.Level), record.Message+"\n")

	return err
}

// HasErrored returns true if there have been any calls to Handle with
// a level of [slog.LevelError] or above.
func (h *logHandler) HasErrored() bool {
	return h.hasErrored
}

func (h *logHandler) WithAttrs(_ []slog.Attr) slog.Handler {
	panic("not supported")
}

func (h *logHandler) WithGroup(_ string) slog.Handler {
	panic("not supported")
}

// logger wraps a slog.Logger with printf style helpers.
type logger struct {
	*slog.Logger
}

func (l logger) Debugf(msg string, args ...any) {
	l.Debug(fmt.Sprintf(msg, args...))
}

func (l logger) Infof(msg string, args ...any) {
	l.Info(fmt.Sprintf(msg, args...))
}

func (l logger) Warnf(msg string, args ...any) {
	l.Warn(fmt.Sprintf(msg, args...))
}

func (l logger) Errorf(msg string, args ...any) {
	l.Error(fmt.Sprintf(msg, args...))
}
