// SPDX-License-Identifier: AGPL-3.0-or-later
// Copyright (C) 2026 aPlane Authors

// Package prompt defines the input primitives an interactive session needs.
//
// Implementations live in sub-packages:
//   - lineprompt: readline-based line input with history and tab completion
//   - tuiprompt: inline bubbletea widgets
//   - jsprompt: answers computed by a JavaScript answer file
//   - prompttest: scripted answers for tests
package prompt

import (
	"context"
	"errors"
	"fmt"
)

// ErrInterrupted is returned when the user aborts a prompt (Ctrl+C, EOF, Esc)
// or the answer source is exhausted. Implementations may wrap it.
var ErrInterrupted = errors.New("prompt interrupted")

// Option is one entry of a single-choice menu.
type Option struct {
	Name        string
	Description string
}

func (o Option) String() string {
	if o.Description == "" {
		return o.Name
	}
	return fmt.Sprintf("%s - %s", o.Name, o.Description)
}

// Prompter is the interface all prompt backends implement.
// Every call blocks until the user answers or the prompt is interrupted.
type Prompter interface {
	// Text asks for free-form text.
	Text(ctx context.Context, label, help string) (string, error)

	// Confirm asks a yes/no question.
	Confirm(ctx context.Context, label, help string) (bool, error)

	// Select asks the user to pick one of options and returns its index.
	Select(ctx context.Context, label string, options []Option) (int, error)
}

// Interrupted wraps cause so that errors.Is(err, ErrInterrupted) holds.
// A nil cause returns ErrInterrupted itself.
func Interrupted(cause error) error {
	switch {
	case cause == nil:
		return ErrInterrupted
	case errors.Is(cause, ErrInterrupted):
		return cause
	}
	return fmt.Errorf("%w: %w", ErrInterrupted, cause)
}

// Index returns the position of the option named name, or -1.
func Index(options []Option, name string) int {
	for i, opt := range options {
		if opt.Name == name {
			return i
		}
	}
	return -1
}

// Names returns the option names in order.
func Names(options []Option) []string {
	names := make([]string, len(options))
	for i, opt := range options {
		names[i] = opt.Name
	}
	return names
}
