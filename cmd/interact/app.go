// SPDX-License-Identifier: AGPL-3.0-or-later
// Copyright (C) 2026 aPlane Authors

package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/aplane-algo/interact/interact"
	"github.com/aplane-algo/interact/internal/config"
	"github.com/aplane-algo/interact/internal/demo"
	"github.com/aplane-algo/interact/prompt"
	"github.com/aplane-algo/interact/prompt/jsprompt"
	"github.com/aplane-algo/interact/prompt/lineprompt"
	"github.com/aplane-algo/interact/prompt/tuiprompt"
)

type app struct {
	registry *demo.Registry
	cfg      config.Config
	logger   *slog.Logger
	stdin    io.Reader
	stdout   io.Writer
	stderr   io.Writer
}

func (a *app) run(ctx context.Context, schemaName string, each bool) error {
	entry, ok := a.registry.Lookup(schemaName)
	if !ok {
		return fmt.Errorf("unknown schema %q (use -list to see available schemas)", schemaName)
	}

	p, closePrompter, err := a.newPrompter()
	if err != nil {
		return err
	}
	defer func() {
		_ = closePrompter() // Best-effort close, errors during shutdown not critical
	}()

	sess := interact.New(p, interact.WithVerbose(a.cfg.Verbose), interact.WithLogger(a.logger))
	a.logger.Debug("starting session", "schema", entry.Name, "backend", a.cfg.Backend,
		"each", each, "verbose", sess.Verbose())

	var res demo.Result
	if each {
		res, err = entry.RunEach(ctx, sess)
	} else {
		res, err = entry.Run(ctx, sess)
	}
	if err != nil {
		return err
	}
	return printResult(a.stdout, res)
}

// newPrompter builds the configured backend and its cleanup function.
func (a *app) newPrompter() (prompt.Prompter, func() error, error) {
	noop := func() error { return nil }

	backend := a.cfg.Backend
	if backend == config.BackendAuto {
		backend = config.BackendLine
		if lineprompt.IsTerminal() {
			backend = config.BackendTUI
		}
	}

	switch backend {
	case config.BackendScript:
		if a.cfg.AnswerScript == "" {
			return nil, nil, fmt.Errorf("script backend requires -script or answer_script in config")
		}
		p, err := jsprompt.Load(a.cfg.AnswerScript)
		if err != nil {
			return nil, nil, err
		}
		p.SetOutput(func(s string) { _, _ = fmt.Fprintln(a.stderr, s) })
		return p, noop, nil
	case config.BackendTUI:
		return tuiprompt.New(nil, a.stderr), noop, nil
	case config.BackendLine:
		if !lineprompt.IsTerminal() {
			return lineprompt.NewBasic(a.stdin, a.stderr, false), noop, nil
		}
		p := lineprompt.New(lineprompt.Config{HistoryFile: a.cfg.HistoryFile, Color: a.cfg.Color})
		return p, p.Close, nil
	default:
		return nil, nil, fmt.Errorf("invalid backend %q", backend)
	}
}

func printResult(w io.Writer, res demo.Result) error {
	if res.Tokens != nil {
		if _, err := fmt.Fprintf(w, "# %s\n", shellJoin(res.Tokens)); err != nil {
			return err
		}
	}
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(res.Value); err != nil {
		return fmt.Errorf("failed to encode result: %w", err)
	}
	return enc.Close()
}

// shellJoin quotes tokens that a POSIX shell would split or expand.
func shellJoin(tokens []string) string {
	quoted := make([]string, len(tokens))
	for i, t := range tokens {
		if t != "" && !strings.ContainsAny(t, " \t\n'\"\\$`!*?[]{}()<>|&;#~") {
			quoted[i] = t
			continue
		}
		quoted[i] = "'" + strings.ReplaceAll(t, "'", `'\''`) + "'"
	}
	return strings.Join(quoted, " ")
}
