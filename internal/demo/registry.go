// SPDX-License-Identifier: AGPL-3.0-or-later
// Copyright (C) 2026 aPlane Authors

// Package demo holds the example schemas shipped with the interact CLI.
package demo

import (
	"context"
	"fmt"
	"io"
	"sort"
	"sync"

	"github.com/aplane-algo/interact/cmdspec"
	"github.com/aplane-algo/interact/interact"
)

// Result is the outcome of running a registered schema.
type Result struct {
	Value  any      // T, or []T for repeated entries
	Tokens []string // Token stream of a single session; nil for repeated entries
}

// Entry is a registered schema with its type erased.
type Entry struct {
	Name        string
	Description string

	describe func() (*cmdspec.Command, error)
	run      func(ctx context.Context, s *interact.Session) (Result, error)
	runEach  func(ctx context.Context, s *interact.Session) (Result, error)
}

// Describe returns the schema's descriptor tree.
func (e *Entry) Describe() (*cmdspec.Command, error) {
	return e.describe()
}

// Run prompts for one value.
func (e *Entry) Run(ctx context.Context, s *interact.Session) (Result, error) {
	return e.run(ctx, s)
}

// RunEach prompts for values until the user declines another entry.
func (e *Entry) RunEach(ctx context.Context, s *interact.Session) (Result, error) {
	return e.runEach(ctx, s)
}

// Registry maps names to schemas.
type Registry struct {
	entries map[string]*Entry
	mu      sync.RWMutex
}

func NewRegistry() *Registry {
	return &Registry{entries: make(map[string]*Entry)}
}

// Register adds schema under name.
func Register[T any](r *Registry, name, description string, schema cmdspec.Schema[T]) error {
	entry := &Entry{
		Name:        name,
		Description: description,
		describe:    schema.Describe,
		run: func(ctx context.Context, s *interact.Session) (Result, error) {
			root, err := schema.Describe()
			if err != nil {
				return Result{}, err
			}
			tokens, err := s.Tokens(ctx, root)
			if err != nil {
				return Result{}, err
			}
			v, err := interact.Reparse(schema, tokens)
			if err != nil {
				return Result{}, err
			}
			return Result{Value: v, Tokens: tokens}, nil
		},
		runEach: func(ctx context.Context, s *interact.Session) (Result, error) {
			values, err := interact.ParseEach(ctx, s, schema)
			if err != nil {
				return Result{}, err
			}
			return Result{Value: values}, nil
		},
	}

	r.mu.Lock()
	defer r.mu.Unlock()
	if _, exists := r.entries[name]; exists {
		return fmt.Errorf("schema %q already registered", name)
	}
	r.entries[name] = entry
	return nil
}

func (r *Registry) Lookup(name string) (*Entry, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	e, ok := r.entries[name]
	return e, ok
}

// All returns the entries sorted by name.
func (r *Registry) All() []*Entry {
	r.mu.RLock()
	defer r.mu.RUnlock()

	result := make([]*Entry, 0, len(r.entries))
	for _, e := range r.entries {
		result = append(result, e)
	}
	sort.Slice(result, func(i, j int) bool {
		return result[i].Name < result[j].Name
	})
	return result
}

// ShowList writes the available schemas.
func ShowList(w io.Writer, r *Registry) {
	_, _ = fmt.Fprintln(w, "Available schemas:")
	for _, e := range r.All() {
		_, _ = fmt.Fprintf(w, "  %-12s - %s\n", e.Name, e.Description)
	}
}

// Default returns a registry with all demo schemas.
func Default() *Registry {
	r := NewRegistry()
	// names are distinct constants; Register cannot fail here
	_ = Register(r, "git", "git-like command with subcommands", GitSchema())
	_ = Register(r, "label", "single command with required and repeated flags", LabelSchema())
	return r
}
