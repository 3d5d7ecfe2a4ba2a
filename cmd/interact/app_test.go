// SPDX-License-Identifier: AGPL-3.0-or-later
// Copyright (C) 2026 aPlane Authors

package main

import (
	"bytes"
	"context"
	"errors"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"gopkg.in/yaml.v3"

	"github.com/aplane-algo/interact/internal/config"
	"github.com/aplane-algo/interact/internal/demo"
	"github.com/aplane-algo/interact/internal/logging"
	"github.com/aplane-algo/interact/prompt"
)

func newTestApp(t *testing.T, script string) (*app, *bytes.Buffer, *bytes.Buffer) {
	t.Helper()
	path := filepath.Join(t.TempDir(), "answers.js")
	if err := os.WriteFile(path, []byte(script), 0o600); err != nil {
		t.Fatal(err)
	}

	var stdout, stderr bytes.Buffer
	cfg := config.DefaultConfig()
	cfg.Backend = config.BackendScript
	cfg.AnswerScript = path
	return &app{
		registry: demo.Default(),
		cfg:      cfg,
		logger:   logging.NewWithLevel(io.Discard, slog.LevelInfo),
		stdin:    strings.NewReader(""),
		stdout:   &stdout,
		stderr:   &stderr,
	}, &stdout, &stderr
}

const mergeScript = `
var texts = ["a,b", "x", "y"];
var confirms = {"my_arg": [true], "my_subcommand": [true], "address": [true, false], "bool": [false]};

function text(label, help) { return texts.shift(); }
function confirm(label, help) { print("confirm", help); return confirms[help].shift(); }
function select(label, options) { return "merge"; }
`

func TestApp_Run(t *testing.T) {
	a, stdout, stderr := newTestApp(t, mergeScript)
	if err := a.run(context.Background(), "git", false); err != nil {
		t.Fatalf("run() error = %v", err)
	}

	firstLine, _, _ := strings.Cut(stdout.String(), "\n")
	if firstLine != "# git --my_arg=a,b merge x,y" {
		t.Errorf("first line = %q, want command line comment", firstLine)
	}

	var got demo.Git
	if err := yaml.Unmarshal(stdout.Bytes(), &got); err != nil {
		t.Fatalf("output is not YAML: %v\n%s", err, stdout.String())
	}
	want := demo.Git{
		MyArg: &demo.Pair{First: "a", Second: "b"},
		Merge: &demo.Merge{Address: []string{"x", "y"}},
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("printed value mismatch (-want +got):\n%s", diff)
	}

	if !strings.Contains(stderr.String(), "confirm my_arg") {
		t.Errorf("script output not forwarded to stderr: %q", stderr.String())
	}
}

func TestApp_RunEach(t *testing.T) {
	script := `
var entries = [true, true, false];
var texts = ["bug", "red", "docs", "blue"];
function confirm(label, help) {
	if (help === "Label") return entries.shift();
	return false;
}
function text() { return texts.shift(); }
`
	a, stdout, _ := newTestApp(t, script)
	if err := a.run(context.Background(), "label", true); err != nil {
		t.Fatalf("run() error = %v", err)
	}

	var got []demo.Label
	if err := yaml.Unmarshal(stdout.Bytes(), &got); err != nil {
		t.Fatalf("output is not YAML: %v\n%s", err, stdout.String())
	}
	want := []demo.Label{{Name: "bug", Color: "red"}, {Name: "docs", Color: "blue"}}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("printed value mismatch (-want +got):\n%s", diff)
	}
	if strings.HasPrefix(stdout.String(), "#") {
		t.Error("repeated entries should not print a command line")
	}
}

func TestApp_Errors(t *testing.T) {
	a, _, _ := newTestApp(t, `function confirm() { return undefined; }`)

	if err := a.run(context.Background(), "svn", false); err == nil || !strings.Contains(err.Error(), "unknown schema") {
		t.Errorf("run(svn) error = %v, want unknown schema", err)
	}
	if err := a.run(context.Background(), "git", false); !errors.Is(err, prompt.ErrInterrupted) {
		t.Errorf("run(git) error = %v, want ErrInterrupted", err)
	}

	a.cfg.AnswerScript = ""
	if err := a.run(context.Background(), "git", false); err == nil || !strings.Contains(err.Error(), "requires -script") {
		t.Errorf("run() without script error = %v", err)
	}

	a.cfg.Backend = "gui"
	if err := a.run(context.Background(), "git", false); err == nil {
		t.Error("run() with invalid backend should fail")
	}
}

func TestApp_DebugLog(t *testing.T) {
	a, stdout, _ := newTestApp(t, mergeScript)
	var logs bytes.Buffer
	a.logger = logging.NewWithLevel(&logs, slog.LevelDebug)
	a.cfg.Verbose = true

	if err := a.run(context.Background(), "git", false); err != nil {
		t.Fatalf("run() error = %v", err)
	}
	if !strings.HasPrefix(stdout.String(), "# git --my_arg=a,b merge x,y") {
		t.Errorf("stdout = %q", stdout.String())
	}
	for _, want := range []string{"starting session", "schema=git", "backend=script", "verbose=true", "command line complete"} {
		if !strings.Contains(logs.String(), want) {
			t.Errorf("debug log missing %q:\n%s", want, logs.String())
		}
	}
}

func TestShellJoin(t *testing.T) {
	tests := []struct {
		tokens []string
		want   string
	}{
		{[]string{"git", "commit"}, "git commit"},
		{[]string{"git", "commit", "initial import"}, "git commit 'initial import'"},
		{[]string{"git", "--my_arg="}, "git --my_arg="},
		{[]string{"git", ""}, "git ''"},
		{[]string{"git", "it's"}, `git 'it'\''s'`},
	}
	for _, tt := range tests {
		if got := shellJoin(tt.tokens); got != tt.want {
			t.Errorf("shellJoin(%q) = %q, want %q", tt.tokens, got, tt.want)
		}
	}
}
