// SPDX-License-Identifier: AGPL-3.0-or-later
// Copyright (C) 2026 aPlane Authors

package lineprompt

import (
	"bytes"
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/aplane-algo/interact/interact"
	"github.com/aplane-algo/interact/internal/demo"
	"github.com/aplane-algo/interact/prompt"
)

func newTestPrompter(input string) (*Prompter, *bytes.Buffer) {
	var out bytes.Buffer
	return NewBasic(strings.NewReader(input), &out, false), &out
}

func TestText(t *testing.T) {
	p, out := newTestPrompter("hello world\r\nsecond")

	got, err := p.Text(context.Background(), "message", "Commit message")
	if err != nil {
		t.Fatalf("Text() error = %v", err)
	}
	if got != "hello world" {
		t.Errorf("Text() = %q, want %q", got, "hello world")
	}
	if !strings.Contains(out.String(), "? message (Commit message): ") {
		t.Errorf("output = %q, want question with help", out.String())
	}

	// last line without a trailing newline still counts
	got, err = p.Text(context.Background(), "name", "")
	if err != nil {
		t.Fatalf("Text() error = %v", err)
	}
	if got != "second" {
		t.Errorf("Text() = %q, want second", got)
	}
	if !strings.Contains(out.String(), "? name: ") {
		t.Errorf("output = %q, want question without help", out.String())
	}
}

func TestText_EOF(t *testing.T) {
	p, _ := newTestPrompter("")
	_, err := p.Text(context.Background(), "name", "")
	if !errors.Is(err, prompt.ErrInterrupted) {
		t.Errorf("Text() error = %v, want ErrInterrupted", err)
	}
}

func TestConfirm(t *testing.T) {
	tests := []struct {
		input string
		want  bool
	}{
		{"y\n", true},
		{"YES\n", true},
		{" n \n", false},
		{"no\n", false},
		{"\n", false},
		{"maybe\ny\n", true},
	}
	for _, tt := range tests {
		p, out := newTestPrompter(tt.input)
		got, err := p.Confirm(context.Background(), interact.LabelOptionalValue, "my_arg")
		if err != nil {
			t.Errorf("Confirm(%q) error = %v", tt.input, err)
			continue
		}
		if got != tt.want {
			t.Errorf("Confirm(%q) = %v, want %v", tt.input, got, tt.want)
		}
		if strings.HasPrefix(tt.input, "maybe") && !strings.Contains(out.String(), "Please answer y or n.") {
			t.Errorf("output = %q, want retry message", out.String())
		}
	}
}

func TestSelect(t *testing.T) {
	options := []prompt.Option{
		{Name: "clone", Description: "Clone a repository"},
		{Name: "commit"},
		{Name: "merge"},
	}
	tests := []struct {
		name  string
		input string
		want  int
	}{
		{"by number", "2\n", 1},
		{"by name", "merge\n", 2},
		{"retry out of range", "0\n4\n1\n", 0},
		{"retry unknown name", "rebase\n\ncommit\n", 1},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p, out := newTestPrompter(tt.input)
			got, err := p.Select(context.Background(), "git", options)
			if err != nil {
				t.Fatalf("Select() error = %v", err)
			}
			if got != tt.want {
				t.Errorf("Select() = %d, want %d", got, tt.want)
			}
			for _, line := range []string{"? git", "  1) clone - Clone a repository", "  2) commit\n", "Choose [1-3]: "} {
				if !strings.Contains(out.String(), line) {
					t.Errorf("output missing %q:\n%s", line, out.String())
				}
			}
			if len(p.completions("")) != 0 {
				t.Error("completions left over after select")
			}
		})
	}
}

func TestSelect_Errors(t *testing.T) {
	p, _ := newTestPrompter("")
	if _, err := p.Select(context.Background(), "git", nil); err == nil {
		t.Error("Select() with no options should fail")
	}
	if _, err := p.Select(context.Background(), "git", []prompt.Option{{Name: "a"}}); !errors.Is(err, prompt.ErrInterrupted) {
		t.Errorf("Select() at EOF error = %v, want ErrInterrupted", err)
	}
}

func TestCancelledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	p, out := newTestPrompter("y\n")
	_, err := p.Confirm(ctx, "ok", "")
	if !errors.Is(err, prompt.ErrInterrupted) || !errors.Is(err, context.Canceled) {
		t.Errorf("Confirm() error = %v, want interrupted by cancellation", err)
	}
	if out.Len() != 0 {
		t.Errorf("prompt shown after cancellation: %q", out.String())
	}
}

func TestSession(t *testing.T) {
	input := strings.Join([]string{
		"y", "a,b", // my_arg
		"y", "merge", // subcommand
		"x", "y", "y", "n", // address
		"", // bool
	}, "\n") + "\n"
	p, _ := newTestPrompter(input)

	got, err := interact.Parse(context.Background(), interact.New(p), demo.GitSchema())
	if err != nil {
		t.Fatalf("Parse() error = %v", err)
	}
	want := demo.Git{
		MyArg: &demo.Pair{First: "a", Second: "b"},
		Merge: &demo.Merge{Address: []string{"x", "y"}},
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("Parse() mismatch (-want +got):\n%s", diff)
	}
}

func TestParseChoice(t *testing.T) {
	options := []prompt.Option{{Name: "a"}, {Name: "2"}}
	tests := []struct {
		answer string
		want   int
		ok     bool
	}{
		{"1", 0, true},
		{"2", 1, true},
		{"a", 0, true},
		{"3", -1, false},
		{"", -1, false},
		{"b", -1, false},
	}
	for _, tt := range tests {
		got, ok := parseChoice(tt.answer, options)
		if got != tt.want || ok != tt.ok {
			t.Errorf("parseChoice(%q) = %d, %v, want %d, %v", tt.answer, got, ok, tt.want, tt.ok)
		}
	}
}
