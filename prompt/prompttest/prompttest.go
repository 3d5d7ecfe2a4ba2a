// SPDX-License-Identifier: AGPL-3.0-or-later
// Copyright (C) 2026 aPlane Authors

// Package prompttest provides a scripted prompt.Prompter for tests.
//
// Answers are consumed in order; every call is recorded so tests can assert
// which prompts were shown:
//
//	p := prompttest.New(prompttest.No, prompttest.Yes, prompttest.Choose("commit"), prompttest.No)
package prompttest

import (
	"context"
	"fmt"

	"github.com/aplane-algo/interact/prompt"
)

// Kind identifies a prompt primitive.
type Kind string

const (
	KindText    Kind = "text"
	KindConfirm Kind = "confirm"
	KindSelect  Kind = "select"
)

// Answer is one scripted reply.
type Answer struct {
	kind      Kind
	text      string
	yes       bool
	choice    string
	interrupt bool
}

// Scripted replies usable for any matching prompt.
var (
	Yes       = Answer{kind: KindConfirm, yes: true}
	No        = Answer{kind: KindConfirm, yes: false}
	Interrupt = Answer{interrupt: true}
)

// Text answers a text prompt with s.
func Text(s string) Answer {
	return Answer{kind: KindText, text: s}
}

// Choose answers a select prompt with the option named name.
func Choose(name string) Answer {
	return Answer{kind: KindSelect, choice: name}
}

func (a Answer) String() string {
	switch {
	case a.interrupt:
		return "interrupt"
	case a.kind == KindText:
		return fmt.Sprintf("text(%q)", a.text)
	case a.kind == KindConfirm:
		return fmt.Sprintf("confirm(%v)", a.yes)
	default:
		return fmt.Sprintf("choose(%q)", a.choice)
	}
}

// Call records one prompt shown to the scripted user.
type Call struct {
	Kind    Kind
	Label   string
	Help    string
	Options []string // select only
}

// Prompter replays scripted answers.
type Prompter struct {
	answers []Answer
	calls   []Call
}

// New creates a Prompter that replies with answers in order.
// Once the answers run out every prompt returns prompt.ErrInterrupted.
func New(answers ...Answer) *Prompter {
	return &Prompter{answers: answers}
}

// Calls returns the prompts shown so far.
func (p *Prompter) Calls() []Call {
	result := make([]Call, len(p.calls))
	copy(result, p.calls)
	return result
}

// Remaining returns the number of unused answers.
func (p *Prompter) Remaining() int {
	return len(p.answers)
}

func (p *Prompter) next(ctx context.Context, call Call) (Answer, error) {
	p.calls = append(p.calls, call)
	if err := ctx.Err(); err != nil {
		return Answer{}, prompt.Interrupted(err)
	}
	if len(p.answers) == 0 {
		return Answer{}, fmt.Errorf("%w: no scripted answer for %s prompt %q", prompt.ErrInterrupted, call.Kind, call.Label)
	}
	answer := p.answers[0]
	p.answers = p.answers[1:]

	if answer.interrupt {
		return Answer{}, prompt.ErrInterrupted
	}
	if answer.kind != call.Kind {
		return Answer{}, fmt.Errorf("prompttest: %s prompt %q received scripted %v", call.Kind, call.Label, answer)
	}
	return answer, nil
}

// Text implements prompt.Prompter.
func (p *Prompter) Text(ctx context.Context, label, help string) (string, error) {
	answer, err := p.next(ctx, Call{Kind: KindText, Label: label, Help: help})
	if err != nil {
		return "", err
	}
	return answer.text, nil
}

// Confirm implements prompt.Prompter.
func (p *Prompter) Confirm(ctx context.Context, label, help string) (bool, error) {
	answer, err := p.next(ctx, Call{Kind: KindConfirm, Label: label, Help: help})
	if err != nil {
		return false, err
	}
	return answer.yes, nil
}

// Select implements prompt.Prompter.
func (p *Prompter) Select(ctx context.Context, label string, options []prompt.Option) (int, error) {
	answer, err := p.next(ctx, Call{Kind: KindSelect, Label: label, Options: prompt.Names(options)})
	if err != nil {
		return -1, err
	}
	idx := prompt.Index(options, answer.choice)
	if idx < 0 {
		return -1, fmt.Errorf("prompttest: select %q has no option %q (options: %v)", label, answer.choice, prompt.Names(options))
	}
	return idx, nil
}

// Compile-time interface check
var _ prompt.Prompter = (*Prompter)(nil)
