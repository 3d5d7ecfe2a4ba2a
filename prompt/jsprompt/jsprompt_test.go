// SPDX-License-Identifier: AGPL-3.0-or-later
// Copyright (C) 2026 aPlane Authors

package jsprompt

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"

	"github.com/aplane-algo/interact/interact"
	"github.com/aplane-algo/interact/internal/demo"
	"github.com/aplane-algo/interact/prompt"
)

var gitOptions = []prompt.Option{
	{Name: "clone", Description: "Clone"},
	{Name: "commit", Description: "Record changes"},
	{Name: "merge"},
}

func mustNew(t *testing.T, src string) *Prompter {
	t.Helper()
	p, err := New(src, "answers.js")
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}
	return p
}

func TestText(t *testing.T) {
	p := mustNew(t, `function text(label, help) { return label + ":" + help; }`)
	got, err := p.Text(context.Background(), "message", "Commit message")
	if err != nil {
		t.Fatalf("Text() error = %v", err)
	}
	if got != "message:Commit message" {
		t.Errorf("Text() = %q, want %q", got, "message:Commit message")
	}
}

func TestConfirm(t *testing.T) {
	p := mustNew(t, `function confirm(label, help) { return help === "my_arg"; }`)
	tests := map[string]bool{"my_arg": true, "message": false}
	for help, want := range tests {
		got, err := p.Confirm(context.Background(), interact.LabelOptionalValue, help)
		if err != nil {
			t.Fatalf("Confirm(%q) error = %v", help, err)
		}
		if got != want {
			t.Errorf("Confirm(%q) = %v, want %v", help, got, want)
		}
	}
}

func TestSelect(t *testing.T) {
	tests := []struct {
		name    string
		src     string
		want    int
		wantErr bool
	}{
		{"by name", `function select(label, options) { return "merge"; }`, 2, false},
		{"by index", `function select(label, options) { return 1; }`, 1, false},
		{"from options", `function select(label, options) { return options[0].name; }`, 0, false},
		{"uses description", `function select(label, options) {
			for (var i = 0; i < options.length; i++) {
				if (options[i].description === "Record changes") return i;
			}
		}`, 1, false},
		{"unknown name", `function select() { return "rebase"; }`, -1, true},
		{"index out of range", `function select() { return 3; }`, -1, true},
		{"fractional index", `function select() { return 1.5; }`, -1, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := mustNew(t, tt.src).Select(context.Background(), "git", gitOptions)
			if (err != nil) != tt.wantErr {
				t.Fatalf("Select() error = %v, wantErr %v", err, tt.wantErr)
			}
			if got != tt.want {
				t.Errorf("Select() = %d, want %d", got, tt.want)
			}
			if err != nil && errors.Is(err, prompt.ErrInterrupted) {
				t.Errorf("bad answer reported as interrupt: %v", err)
			}
		})
	}
}

func TestNoAnswer(t *testing.T) {
	p := mustNew(t, `function text() { return undefined; }`)

	if _, err := p.Text(context.Background(), "name", ""); !errors.Is(err, prompt.ErrInterrupted) {
		t.Errorf("Text() error = %v, want ErrInterrupted", err)
	}
	if _, err := p.Confirm(context.Background(), "ok", ""); !errors.Is(err, prompt.ErrInterrupted) {
		t.Errorf("Confirm() without confirm() error = %v, want ErrInterrupted", err)
	}
}

func TestScriptErrors(t *testing.T) {
	if _, err := New(`function text( {`, "broken.js"); err == nil {
		t.Error("New() with syntax error should fail")
	} else {
		var serr *ScriptError
		if !errors.As(err, &serr) {
			t.Errorf("New() error = %T, want *ScriptError", err)
		}
	}

	if _, err := New(`throw new Error("boom")`, "throws.js"); err == nil || !strings.Contains(err.Error(), "boom") {
		t.Errorf("New() error = %v, want boom", err)
	}

	p := mustNew(t, `function text() { throw new Error("no more answers here"); }`)
	_, err := p.Text(context.Background(), "name", "")
	var serr *ScriptError
	if !errors.As(err, &serr) {
		t.Fatalf("Text() error = %v, want *ScriptError", err)
	}
	if !strings.Contains(serr.Message, "no more answers here") {
		t.Errorf("ScriptError.Message = %q", serr.Message)
	}
}

func TestOutput(t *testing.T) {
	p := mustNew(t, `function confirm(label) { print("asked", label); log(1, true); return false; }`)
	var lines []string
	p.SetOutput(func(s string) { lines = append(lines, s) })

	if _, err := p.Confirm(context.Background(), "ok?", ""); err != nil {
		t.Fatalf("Confirm() error = %v", err)
	}
	if diff := cmp.Diff([]string{"asked ok?", "1 true"}, lines); diff != "" {
		t.Errorf("output mismatch (-want +got):\n%s", diff)
	}

	p.SetOutput(nil)
	if _, err := p.Confirm(context.Background(), "ok?", ""); err != nil {
		t.Fatalf("Confirm() error = %v", err)
	}
}

func TestCancellation(t *testing.T) {
	p := mustNew(t, `function text() { for (;;) {} }`)

	ctx, cancel := context.WithTimeout(context.Background(), 50*time.Millisecond)
	defer cancel()

	_, err := p.Text(ctx, "name", "")
	if !errors.Is(err, prompt.ErrInterrupted) || !errors.Is(err, context.DeadlineExceeded) {
		t.Errorf("Text() error = %v, want interrupt by deadline", err)
	}

	done, stop := context.WithCancel(context.Background())
	stop()
	if _, err := p.Confirm(done, "ok", ""); !errors.Is(err, prompt.ErrInterrupted) {
		t.Errorf("Confirm() error = %v, want ErrInterrupted", err)
	}
}

func TestLoad_Session(t *testing.T) {
	script := `
var texts = ["a,b", "x", "y"];
var confirms = {"my_arg": [true], "my_subcommand": [true], "address": [true, false], "bool": [false]};

function text(label, help) { return texts.shift(); }
function confirm(label, help) { return confirms[help].shift(); }
function select(label, options) { return "merge"; }
`
	path := filepath.Join(t.TempDir(), "answers.js")
	if err := os.WriteFile(path, []byte(script), 0o600); err != nil {
		t.Fatal(err)
	}

	p, err := Load(path)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
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

func TestLoad_Missing(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "nope.js")); err == nil {
		t.Error("Load() of a missing file should fail")
	}
}
