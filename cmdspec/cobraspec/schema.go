// SPDX-License-Identifier: AGPL-3.0-or-later
// Copyright (C) 2026 aPlane Authors

// Package cobraspec adapts cobra command trees to cmdspec.Schema.
//
// A schema is a function that builds a fresh cobra tree bound to a value:
// flags write into the value's fields and each command's RunE stores its
// positional arguments. Parsing a token list builds a new tree, executes it
// with the tokens and returns the bound value, so cobra remains the only
// validator:
//
//	schema := cobraspec.New(func(g *Git) *cobra.Command {
//		root := &cobra.Command{Use: "git", RunE: func(*cobra.Command, []string) error { return nil }}
//		root.PersistentFlags().StringVar(&g.Dir, "dir", "", "Working directory")
//		return root
//	})
package cobraspec

import (
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/aplane-algo/interact/cmdspec"
)

// Schema implements cmdspec.Schema[T] for a cobra tree builder.
type Schema[T any] struct {
	build func(v *T) *cobra.Command
}

// New creates a Schema. build must return a new, unexecuted tree on every
// call; it is invoked once per Describe and once per Parse.
func New[T any](build func(v *T) *cobra.Command) *Schema[T] {
	return &Schema[T]{build: build}
}

// Describe converts the cobra tree into descriptors.
func (s *Schema[T]) Describe() (*cmdspec.Command, error) {
	var scratch T
	root := s.build(&scratch)
	if root == nil {
		return nil, fmt.Errorf("%w: schema builder returned no command", cmdspec.ErrInvalidSpec)
	}
	return describe(root)
}

// Parse executes a fresh tree with tokens[1:] and returns the bound value.
// Parent flags are parsed at their own level (cobra's TraverseChildren), so
// a token stream of the form "root --flag=x sub --subflag=y" is accepted.
func (s *Schema[T]) Parse(tokens []string) (T, error) {
	var v, zero T
	if len(tokens) == 0 {
		return zero, fmt.Errorf("empty command line")
	}

	root := s.build(&v)
	if root == nil {
		return zero, fmt.Errorf("%w: schema builder returned no command", cmdspec.ErrInvalidSpec)
	}
	root.TraverseChildren = true
	root.SilenceErrors = true
	root.SilenceUsage = true
	root.SetOut(io.Discard)
	root.SetErr(io.Discard)
	root.SetArgs(tokens[1:])

	cmd, err := root.ExecuteC()
	if err != nil {
		return zero, err
	}
	// cobra prints help instead of failing when a group command is invoked bare
	if !cmd.Runnable() {
		return zero, fmt.Errorf("%q requires a subcommand", cmd.CommandPath())
	}
	return v, nil
}

func describe(cmd *cobra.Command) (*cmdspec.Command, error) {
	positional, err := positionalArgs(cmd)
	if err != nil {
		return nil, err
	}

	spec := &cmdspec.Command{
		Name:            cmd.Name(),
		Short:           cmd.Short,
		Args:            append(positional, flagArgs(cmd)...),
		SubcommandLabel: cmd.Annotations[AnnotationSubcommandLabel],
	}

	for _, sub := range cmd.Commands() {
		if !sub.IsAvailableCommand() || sub.Name() == "completion" {
			continue
		}
		subSpec, err := describe(sub)
		if err != nil {
			return nil, err
		}
		spec.Subcommands = append(spec.Subcommands, subSpec)
	}
	// cobra resolves subcommands before positionals, so "root <pos> sub" never reaches sub
	if len(positional) > 0 && len(spec.Subcommands) > 0 {
		return nil, fmt.Errorf("%w: %s: positional arguments on a command with subcommands",
			cmdspec.ErrInvalidSpec, cmd.CommandPath())
	}
	spec.SubcommandRequired = len(spec.Subcommands) > 0 && !cmd.Runnable()

	return spec, nil
}

// flagArgs lists cmd's own flags: persistent ones first, then local ones,
// each in definition order. Flags inherited from ancestors belong to the
// ancestor's level and are skipped.
func flagArgs(cmd *cobra.Command) []cmdspec.Arg {
	var args []cmdspec.Arg
	seen := make(map[string]bool)

	for _, fs := range []*pflag.FlagSet{cmd.PersistentFlags(), cmd.Flags()} {
		fs.SortFlags = false
		fs.VisitAll(func(f *pflag.Flag) {
			if seen[f.Name] || skipFlag(f) || inherited(cmd, f.Name) {
				return
			}
			seen[f.Name] = true
			args = append(args, flagArg(f))
		})
	}
	return args
}

func flagArg(f *pflag.Flag) cmdspec.Arg {
	typ := f.Value.Type()
	arg := cmdspec.Arg{
		ID:       f.Name,
		Help:     f.Usage,
		TypeHint: typ,
		Required: isRequired(f),
	}
	// pflag reads *Slice values as one CSV record; *Array values take one element per flag
	if _, ok := f.Value.(pflag.SliceValue); ok {
		arg.Multiple = true
		if strings.HasSuffix(typ, "Slice") {
			arg.Delimiter = ","
			arg.CSV = true
		}
	}
	return arg
}

func isRequired(f *pflag.Flag) bool {
	values, ok := f.Annotations[cobra.BashCompOneRequiredFlag]
	return ok && len(values) > 0 && values[0] == "true"
}

func skipFlag(f *pflag.Flag) bool {
	return f.Hidden || f.Deprecated != "" || f.Name == "help" || f.Name == "version"
}

func inherited(cmd *cobra.Command, name string) bool {
	for p := cmd.Parent(); p != nil; p = p.Parent() {
		if p.PersistentFlags().Lookup(name) != nil {
			return true
		}
	}
	return false
}

// Compile-time interface check
var _ cmdspec.Schema[struct{}] = (*Schema[struct{}])(nil)
