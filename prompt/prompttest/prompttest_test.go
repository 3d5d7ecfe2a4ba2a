// SPDX-License-Identifier: AGPL-3.0-or-later
// Copyright (C) 2026 aPlane Authors

package prompttest

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/aplane-algo/interact/prompt"
)

func TestPrompter_Replay(t *testing.T) {
	ctx := context.Background()
	p := New(Text("hello"), Yes, Choose("b"))

	text, err := p.Text(ctx, "name", "help")
	if err != nil || text != "hello" {
		t.Fatalf("Text() = %q, %v", text, err)
	}
	ok, err := p.Confirm(ctx, "sure?", "")
	if err != nil || !ok {
		t.Fatalf("Confirm() = %v, %v", ok, err)
	}
	idx, err := p.Select(ctx, "pick", []prompt.Option{{Name: "a"}, {Name: "b"}})
	if err != nil || idx != 1 {
		t.Fatalf("Select() = %d, %v", idx, err)
	}

	calls := p.Calls()
	if len(calls) != 3 {
		t.Fatalf("Calls() len = %d, want 3", len(calls))
	}
	if calls[0].Kind != KindText || calls[0].Label != "name" || calls[0].Help != "help" {
		t.Errorf("Calls()[0] = %+v", calls[0])
	}
	if strings.Join(calls[2].Options, ",") != "a,b" {
		t.Errorf("Calls()[2].Options = %v", calls[2].Options)
	}
	if p.Remaining() != 0 {
		t.Errorf("Remaining() = %d, want 0", p.Remaining())
	}
}

func TestPrompter_Exhausted(t *testing.T) {
	p := New()
	_, err := p.Confirm(context.Background(), "again?", "")
	if !errors.Is(err, prompt.ErrInterrupted) {
		t.Errorf("Confirm() error = %v, want ErrInterrupted", err)
	}
}

func TestPrompter_Interrupt(t *testing.T) {
	p := New(Interrupt)
	_, err := p.Text(context.Background(), "name", "")
	if !errors.Is(err, prompt.ErrInterrupted) {
		t.Errorf("Text() error = %v, want ErrInterrupted", err)
	}
}

func TestPrompter_KindMismatch(t *testing.T) {
	p := New(Yes)
	_, err := p.Text(context.Background(), "name", "")
	if err == nil {
		t.Fatal("Text() with a confirm answer succeeded")
	}
	if errors.Is(err, prompt.ErrInterrupted) {
		t.Errorf("kind mismatch reported as interrupt: %v", err)
	}
}

func TestPrompter_UnknownChoice(t *testing.T) {
	p := New(Choose("z"))
	_, err := p.Select(context.Background(), "pick", []prompt.Option{{Name: "a"}})
	if err == nil || !strings.Contains(err.Error(), `no option "z"`) {
		t.Errorf("Select() error = %v", err)
	}
}

func TestPrompter_CancelledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	p := New(Yes)
	_, err := p.Confirm(ctx, "sure?", "")
	if !errors.Is(err, prompt.ErrInterrupted) || !errors.Is(err, context.Canceled) {
		t.Errorf("Confirm() error = %v, want interrupted by context.Canceled", err)
	}
	if p.Remaining() != 1 {
		t.Errorf("cancelled prompt consumed an answer")
	}
}
