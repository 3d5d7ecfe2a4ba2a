// SPDX-License-Identifier: AGPL-3.0-or-later
// Copyright (C) 2026 aPlane Authors

// Package tuiprompt implements prompt.Prompter with small inline bubbletea
// programs, one per question.
package tuiprompt

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/aplane-algo/interact/prompt"
)

// Prompter runs one bubbletea program per prompt.
type Prompter struct {
	in  io.Reader
	out io.Writer
}

// New creates a Prompter reading keys from in and drawing to out.
// A nil in uses the terminal attached to stdin.
func New(in io.Reader, out io.Writer) *Prompter {
	if out == nil {
		out = os.Stdout
	}
	return &Prompter{in: in, out: out}
}

// Text implements prompt.Prompter.
func (p *Prompter) Text(ctx context.Context, label, help string) (string, error) {
	final, err := p.run(ctx, newTextModel(label, help))
	if err != nil {
		return "", err
	}
	m := final.(textModel)
	if m.cancelled {
		return "", prompt.ErrInterrupted
	}
	return m.input.Value(), nil
}

// Confirm implements prompt.Prompter.
func (p *Prompter) Confirm(ctx context.Context, label, help string) (bool, error) {
	final, err := p.run(ctx, newConfirmModel(label, help))
	if err != nil {
		return false, err
	}
	m := final.(confirmModel)
	if m.cancelled {
		return false, prompt.ErrInterrupted
	}
	return m.value, nil
}

// Select implements prompt.Prompter.
func (p *Prompter) Select(ctx context.Context, label string, options []prompt.Option) (int, error) {
	if len(options) == 0 {
		return -1, fmt.Errorf("select %q: no options", label)
	}
	final, err := p.run(ctx, newSelectModel(label, options))
	if err != nil {
		return -1, err
	}
	m := final.(selectModel)
	if m.cancelled {
		return -1, prompt.ErrInterrupted
	}
	return m.cursor, nil
}

func (p *Prompter) run(ctx context.Context, m tea.Model) (tea.Model, error) {
	if err := ctx.Err(); err != nil {
		return nil, prompt.Interrupted(err)
	}

	opts := []tea.ProgramOption{tea.WithContext(ctx), tea.WithOutput(p.out)}
	if p.in != nil {
		opts = append(opts, tea.WithInput(p.in))
	}

	final, err := tea.NewProgram(m, opts...).Run()
	if err != nil {
		if ctxErr := ctx.Err(); ctxErr != nil {
			return nil, prompt.Interrupted(ctxErr)
		}
		if errors.Is(err, tea.ErrProgramKilled) || errors.Is(err, tea.ErrInterrupted) {
			return nil, prompt.Interrupted(err)
		}
		return nil, fmt.Errorf("running prompt: %w", err)
	}
	return final, nil
}

// Compile-time interface check
var _ prompt.Prompter = (*Prompter)(nil)
