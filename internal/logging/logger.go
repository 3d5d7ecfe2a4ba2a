// SPDX-License-Identifier: AGPL-3.0-or-later
// Copyright (C) 2026 aPlane Authors

// Package logging sets up the CLI's slog logger.
package logging

import (
	"io"
	"log/slog"
	"os"
)

// DebugEnv enables debug logging when set to any value.
const DebugEnv = "INTERACT_DEBUG"

// New creates a text logger writing to w.
// Set INTERACT_DEBUG=1 environment variable to enable debug logging
func New(w io.Writer) *slog.Logger {
	level := slog.LevelInfo // Default: only show Info, Warn, Error
	if os.Getenv(DebugEnv) != "" {
		level = slog.LevelDebug
	}
	return NewWithLevel(w, level)
}

// NewWithLevel creates a text logger writing to w at the given level.
func NewWithLevel(w io.Writer, level slog.Level) *slog.Logger {
	handler := slog.NewTextHandler(w, &slog.HandlerOptions{
		Level: level,
		// Remove timestamp and level for cleaner CLI output
		ReplaceAttr: func(groups []string, a slog.Attr) slog.Attr {
			if len(groups) == 0 && (a.Key == slog.TimeKey || a.Key == slog.LevelKey) {
				return slog.Attr{}
			}
			return a
		},
	})
	return slog.New(handler)
}
