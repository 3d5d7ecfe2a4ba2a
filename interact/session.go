// SPDX-License-Identifier: AGPL-3.0-or-later
// Copyright (C) 2026 aPlane Authors

// Package interact builds command-line values by prompting for them.
//
// A session walks a schema's command tree, asks for every argument through a
// prompt.Prompter, assembles the tokens a user would have typed, and hands them
// back to the schema's own parser:
//
//	sess := interact.New(lineprompt.New(lineprompt.Config{}))
//	git, err := interact.Parse(ctx, sess, gitSchema)
//
// The package never validates or converts values itself; the schema's parser
// is the only authority on what a valid command line is.
package interact

import (
	"io"
	"log/slog"

	"github.com/aplane-algo/interact/prompt"
)

// Prompt labels shown by the engine.
const (
	LabelOptionalValue   = "Add optional value?"
	LabelOptionalCommand = "Add optional command?"
	LabelOptionalEntry   = "Add optional entry?"
)

// Session holds the prompter and options for interactive parsing.
// A Session is not safe for concurrent use; prompts are strictly sequential.
type Session struct {
	prompter prompt.Prompter
	verbose  bool
	logger   *slog.Logger
}

// Option configures a Session.
type Option func(*Session)

// WithVerbose adds the argument's value type to the help text of value prompts.
func WithVerbose(verbose bool) Option {
	return func(s *Session) {
		s.verbose = verbose
	}
}

// WithLogger sets the logger for walker diagnostics (debug level).
func WithLogger(logger *slog.Logger) Option {
	return func(s *Session) {
		if logger != nil {
			s.logger = logger
		}
	}
}

// New creates a Session that asks its questions through p.
func New(p prompt.Prompter, opts ...Option) *Session {
	s := &Session{
		prompter: p,
		logger:   slog.New(slog.NewTextHandler(io.Discard, nil)),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Verbose reports whether type hints are shown.
func (s *Session) Verbose() bool {
	return s.verbose
}
