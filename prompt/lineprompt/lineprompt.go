// SPDX-License-Identifier: AGPL-3.0-or-later
// Copyright (C) 2026 aPlane Authors

// Package lineprompt implements prompt.Prompter with line-oriented input.
//
// On a terminal it uses readline (history, Ctrl+C handling, tab completion of
// menu options). Otherwise, or when readline cannot start, it reads plain
// lines from the input stream.
package lineprompt

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
	"sync"

	"github.com/chzyer/readline"
	"golang.org/x/term"

	"github.com/aplane-algo/interact/prompt"
)

// Config holds readline options.
type Config struct {
	HistoryFile string // empty disables history
	Color       bool
}

// Prompter asks questions one line at a time.
type Prompter struct {
	rl     *readline.Instance // nil in basic mode
	in     *bufio.Reader      // basic mode only
	out    io.Writer
	styles styles

	mu      sync.Mutex
	choices []string // names offered by the current select, for completion
}

// New creates a Prompter on stdin/stdout. It uses readline when stdin is a
// terminal and falls back to basic mode otherwise.
func New(cfg Config) *Prompter {
	if !IsTerminal() {
		return NewBasic(os.Stdin, os.Stdout, false)
	}

	p := &Prompter{}
	rl, err := readline.NewEx(&readline.Config{
		HistoryFile:       cfg.HistoryFile,
		HistoryLimit:      1000,
		AutoComplete:      readline.NewPrefixCompleter(readline.PcItemDynamic(p.completions)),
		InterruptPrompt:   "^C",
		EOFPrompt:         "exit",
		HistorySearchFold: true,
	})
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to create readline instance, falling back to basic input: %v\n", err)
		return NewBasic(os.Stdin, os.Stdout, cfg.Color && supportsColor())
	}

	p.rl = rl
	p.out = rl.Stdout()
	p.styles = newStyles(p.out, cfg.Color && supportsColor())
	return p
}

// NewBasic creates a Prompter that reads lines from in and writes to out.
func NewBasic(in io.Reader, out io.Writer, color bool) *Prompter {
	return &Prompter{
		in:     bufio.NewReader(in),
		out:    out,
		styles: newStyles(out, color),
	}
}

// Close releases the terminal.
func (p *Prompter) Close() error {
	if p.rl == nil {
		return nil
	}
	return p.rl.Close()
}

// IsTerminal reports whether stdin is an interactive terminal.
func IsTerminal() bool {
	return term.IsTerminal(int(os.Stdin.Fd())) // #nosec G115 - file descriptors are small integers
}

// supportsColor checks if stdout is a terminal that understands ANSI colors
func supportsColor() bool {
	if !term.IsTerminal(int(os.Stdout.Fd())) { // #nosec G115 - file descriptors are small integers
		return false
	}
	termEnv := os.Getenv("TERM")
	return termEnv != "" && termEnv != "dumb"
}

// Text implements prompt.Prompter.
func (p *Prompter) Text(ctx context.Context, label, help string) (string, error) {
	return p.readLine(ctx, p.styles.question(label, help)+": ")
}

// Confirm implements prompt.Prompter. An empty answer means no.
func (p *Prompter) Confirm(ctx context.Context, label, help string) (bool, error) {
	question := p.styles.question(label, help) + " " + p.styles.hint.Render("[y/N]") + ": "
	for {
		line, err := p.readLine(ctx, question)
		if err != nil {
			return false, err
		}
		switch strings.ToLower(strings.TrimSpace(line)) {
		case "y", "yes":
			return true, nil
		case "", "n", "no":
			return false, nil
		}
		p.printError("Please answer y or n.")
	}
}

// Select implements prompt.Prompter. The answer may be an option number or
// an option name.
func (p *Prompter) Select(ctx context.Context, label string, options []prompt.Option) (int, error) {
	if len(options) == 0 {
		return -1, fmt.Errorf("select %q: no options", label)
	}

	p.setChoices(prompt.Names(options))
	defer p.setChoices(nil)

	_, _ = fmt.Fprintln(p.out, p.styles.question(label, ""))
	for i, opt := range options {
		line := fmt.Sprintf("  %d) %s", i+1, p.styles.option.Render(opt.Name))
		if opt.Description != "" {
			line += p.styles.hint.Render(" - " + opt.Description)
		}
		_, _ = fmt.Fprintln(p.out, line)
	}

	question := fmt.Sprintf("Choose [1-%d]: ", len(options))
	for {
		line, err := p.readLine(ctx, question)
		if err != nil {
			return -1, err
		}
		if idx, ok := parseChoice(strings.TrimSpace(line), options); ok {
			return idx, nil
		}
		p.printError(fmt.Sprintf("Enter a number between 1 and %d or an option name.", len(options)))
	}
}

func parseChoice(answer string, options []prompt.Option) (int, bool) {
	if answer == "" {
		return -1, false
	}
	if n, err := strconv.Atoi(answer); err == nil {
		if n >= 1 && n <= len(options) {
			return n - 1, true
		}
		return -1, false
	}
	idx := prompt.Index(options, answer)
	return idx, idx >= 0
}

// readLine shows question and reads one line. Interrupts and end of input
// become prompt.ErrInterrupted.
func (p *Prompter) readLine(ctx context.Context, question string) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", prompt.Interrupted(err)
	}

	if p.rl != nil {
		// readline cannot be cancelled mid-read; closing the terminal ends it
		stop := context.AfterFunc(ctx, func() { _ = p.rl.Close() })
		defer stop()

		p.rl.SetPrompt(question)
		line, err := p.rl.Readline()
		if err != nil {
			if ctxErr := ctx.Err(); ctxErr != nil {
				return "", prompt.Interrupted(ctxErr)
			}
			if errors.Is(err, readline.ErrInterrupt) || errors.Is(err, io.EOF) {
				return "", prompt.Interrupted(err)
			}
			return "", fmt.Errorf("error reading input: %w", err)
		}
		return line, nil
	}

	_, _ = fmt.Fprint(p.out, question)
	line, err := p.in.ReadString('\n')
	if err != nil {
		if errors.Is(err, io.EOF) && line != "" {
			_, _ = fmt.Fprintln(p.out)
			return strings.TrimRight(line, "\r"), nil
		}
		if errors.Is(err, io.EOF) {
			return "", prompt.Interrupted(err)
		}
		return "", fmt.Errorf("error reading input: %w", err)
	}
	return strings.TrimRight(line, "\r\n"), nil
}

func (p *Prompter) printError(msg string) {
	_, _ = fmt.Fprintln(p.out, p.styles.err.Render(msg))
}

func (p *Prompter) setChoices(names []string) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.choices = names
}

// completions feeds readline's completer; it runs on readline's goroutine.
func (p *Prompter) completions(string) []string {
	p.mu.Lock()
	defer p.mu.Unlock()
	result := make([]string, len(p.choices))
	copy(result, p.choices)
	return result
}

// Compile-time interface check
var _ prompt.Prompter = (*Prompter)(nil)
