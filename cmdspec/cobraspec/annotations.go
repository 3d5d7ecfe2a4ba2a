// SPDX-License-Identifier: AGPL-3.0-or-later
// Copyright (C) 2026 aPlane Authors

package cobraspec

import (
	"encoding/csv"
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/aplane-algo/interact/cmdspec"
)

// Annotation keys stored in cobra.Command.Annotations.
const (
	AnnotationPositional      = "interact.positional"
	AnnotationSubcommandLabel = "interact.subcommand_label"
)

// PositionalArg declares one positional argument of a cobra command.
// cobra only validates positional counts, so the interactive layer needs
// their names and arity spelled out.
type PositionalArg struct {
	Name      string `yaml:"name"`
	Required  bool   `yaml:"required,omitempty"`
	Multiple  bool   `yaml:"multiple,omitempty"`
	Delimiter string `yaml:"delimiter,omitempty"` // Multiple values share one token
	Help      string `yaml:"help,omitempty"`
	Type      string `yaml:"type,omitempty"`
}

// Positional records cmd's positional arguments in declaration order,
// replacing any earlier declaration. It returns cmd for chaining.
//
// Only leaf commands may declare positionals. A delimited positional is
// encoded as one CSV record; decode it with SplitValues.
func Positional(cmd *cobra.Command, args ...PositionalArg) *cobra.Command {
	data, err := yaml.Marshal(args)
	if err != nil {
		// Plain structs always marshal; failure is a programming bug
		panic("cobraspec: failed to encode positional args: " + err.Error())
	}
	annotate(cmd, AnnotationPositional, string(data))
	return cmd
}

// SubcommandLabel sets the label shown when asking whether to add an
// optional subcommand. It returns cmd for chaining.
func SubcommandLabel(cmd *cobra.Command, label string) *cobra.Command {
	annotate(cmd, AnnotationSubcommandLabel, label)
	return cmd
}

// SplitValues decodes a delimited positional token inside a RunE.
// The token is one CSV record using delimiter, the way Join encodes it.
// An empty token yields no values.
func SplitValues(token, delimiter string) ([]string, error) {
	if token == "" {
		return nil, nil
	}
	r := csv.NewReader(strings.NewReader(token))
	r.Comma, _ = utf8.DecodeRuneInString(delimiter)
	values, err := r.Read()
	if err != nil {
		return nil, fmt.Errorf("invalid %q-delimited value %q: %w", delimiter, token, err)
	}
	return values, nil
}

func annotate(cmd *cobra.Command, key, value string) {
	if cmd.Annotations == nil {
		cmd.Annotations = make(map[string]string)
	}
	cmd.Annotations[key] = value
}

func positionalArgs(cmd *cobra.Command) ([]cmdspec.Arg, error) {
	raw, ok := cmd.Annotations[AnnotationPositional]
	if !ok || raw == "" {
		return nil, nil
	}

	var decls []PositionalArg
	if err := yaml.Unmarshal([]byte(raw), &decls); err != nil {
		return nil, fmt.Errorf("%w: %s: bad %s annotation: %w",
			cmdspec.ErrInvalidSpec, cmd.CommandPath(), AnnotationPositional, err)
	}

	args := make([]cmdspec.Arg, 0, len(decls))
	for _, d := range decls {
		args = append(args, cmdspec.Arg{
			ID:         d.Name,
			Positional: true,
			Required:   d.Required,
			Multiple:   d.Multiple,
			Delimiter:  d.Delimiter,
			CSV:        d.Delimiter != "",
			Help:       d.Help,
			TypeHint:   d.Type,
		})
	}
	return args, nil
}
