// SPDX-License-Identifier: AGPL-3.0-or-later
// Copyright (C) 2026 aPlane Authors

// Package jsprompt implements prompt.Prompter with a JavaScript answer script.
//
// The script defines any of these global functions:
//
//	function text(label, help)       { return "value"; }
//	function confirm(label, help)    { return true; }
//	function select(label, options)  { return "commit"; } // name or index
//
// options is an array of {name, description} objects. Returning undefined or
// null, or leaving a function undefined, means the script has no answer and
// ends the session as an interrupt. print() and log() write to the output
// set with SetOutput.
package jsprompt

import (
	"context"
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/dop251/goja"

	"github.com/aplane-algo/interact/prompt"
)

// ScriptError represents an exception thrown by the answer script.
type ScriptError struct {
	Message string
}

func (e *ScriptError) Error() string {
	return e.Message
}

type jsOption struct {
	Name        string `json:"name"`
	Description string `json:"description"`
}

// Prompter answers prompts by calling script functions.
type Prompter struct {
	vm     *goja.Runtime
	output func(string)
}

// Load reads and runs the answer script at path.
func Load(path string) (*Prompter, error) {
	src, err := os.ReadFile(path) // #nosec G304 - path is the user's own answer script
	if err != nil {
		return nil, fmt.Errorf("failed to read answer script: %w", err)
	}
	return New(string(src), path)
}

// New runs src as an answer script; name is used in error locations.
func New(src, name string) (*Prompter, error) {
	p := &Prompter{
		output: func(string) {}, // Default: discard output
	}

	vm := goja.New()
	vm.SetFieldNameMapper(goja.TagFieldNameMapper("json", true))
	if err := vm.Set("print", p.jsPrint); err != nil {
		return nil, fmt.Errorf("failed to register print: %w", err)
	}
	if err := vm.Set("log", p.jsPrint); err != nil {
		return nil, fmt.Errorf("failed to register log: %w", err)
	}
	p.vm = vm

	if _, err := vm.RunScript(name, src); err != nil {
		return nil, scriptError(err)
	}
	return p, nil
}

// SetOutput sets the function used for print() and log() output.
func (p *Prompter) SetOutput(fn func(string)) {
	if fn == nil {
		p.output = func(string) {}
	} else {
		p.output = fn
	}
}

func (p *Prompter) jsPrint(call goja.FunctionCall) goja.Value {
	parts := make([]string, len(call.Arguments))
	for i, arg := range call.Arguments {
		parts[i] = arg.String()
	}
	p.output(strings.Join(parts, " "))
	return goja.Undefined()
}

// Text implements prompt.Prompter.
func (p *Prompter) Text(ctx context.Context, label, help string) (string, error) {
	v, err := p.call(ctx, "text", label, help)
	if err != nil {
		return "", err
	}
	return v.String(), nil
}

// Confirm implements prompt.Prompter.
func (p *Prompter) Confirm(ctx context.Context, label, help string) (bool, error) {
	v, err := p.call(ctx, "confirm", label, help)
	if err != nil {
		return false, err
	}
	return v.ToBoolean(), nil
}

// Select implements prompt.Prompter.
func (p *Prompter) Select(ctx context.Context, label string, options []prompt.Option) (int, error) {
	opts := make([]jsOption, len(options))
	for i, o := range options {
		opts[i] = jsOption{Name: o.Name, Description: o.Description}
	}

	v, err := p.call(ctx, "select", label, opts)
	if err != nil {
		return -1, err
	}

	switch answer := v.Export().(type) {
	case int64:
		if answer >= 0 && answer < int64(len(options)) {
			return int(answer), nil
		}
	case float64:
		if answer >= 0 && answer < float64(len(options)) && answer == float64(int(answer)) {
			return int(answer), nil
		}
	case string:
		if idx := prompt.Index(options, answer); idx >= 0 {
			return idx, nil
		}
	}
	return -1, fmt.Errorf("select(%q) returned %s; want an option name or index (options: %v)",
		label, v.String(), prompt.Names(options))
}

// call invokes the global function name. A missing function or an undefined
// result means the script has run out of answers.
func (p *Prompter) call(ctx context.Context, name string, args ...any) (goja.Value, error) {
	if err := ctx.Err(); err != nil {
		return nil, prompt.Interrupted(err)
	}

	fn, ok := goja.AssertFunction(p.vm.Get(name))
	if !ok {
		return nil, fmt.Errorf("%w: answer script defines no %s()", prompt.ErrInterrupted, name)
	}

	jsArgs := make([]goja.Value, len(args))
	for i, a := range args {
		jsArgs[i] = p.vm.ToValue(a)
	}

	stop := context.AfterFunc(ctx, func() { p.vm.Interrupt("context cancelled") })
	defer stop()

	v, err := fn(goja.Undefined(), jsArgs...)
	if err != nil {
		var interrupted *goja.InterruptedError
		if errors.As(err, &interrupted) {
			p.vm.ClearInterrupt()
			return nil, prompt.Interrupted(ctx.Err())
		}
		return nil, scriptError(err)
	}
	if v == nil || goja.IsUndefined(v) || goja.IsNull(v) {
		label := ""
		if len(args) > 0 {
			label, _ = args[0].(string)
		}
		return nil, fmt.Errorf("%w: answer script has no answer for %s(%q)", prompt.ErrInterrupted, name, label)
	}
	return v, nil
}

// scriptError converts goja exceptions to errors with clean messages.
func scriptError(err error) error {
	var jsErr *goja.Exception
	if errors.As(err, &jsErr) {
		return &ScriptError{Message: jsErr.String()}
	}
	var syntaxErr *goja.CompilerSyntaxError
	if errors.As(err, &syntaxErr) {
		return &ScriptError{Message: syntaxErr.Error()}
	}
	return err
}

// Compile-time interface check
var _ prompt.Prompter = (*Prompter)(nil)
