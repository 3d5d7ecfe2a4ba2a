// SPDX-License-Identifier: AGPL-3.0-or-later
// Copyright (C) 2026 aPlane Authors

package demo

import (
	"github.com/spf13/cobra"

	"github.com/aplane-algo/interact/cmdspec/cobraspec"
)

// Label is one labelled item, useful with repeated entries.
type Label struct {
	Name   string   `yaml:"name"`
	Color  string   `yaml:"color"`
	Tags   []string `yaml:"tags,omitempty"`
	Notes  []string `yaml:"notes,omitempty"`
	Pinned bool     `yaml:"pinned"`
}

// LabelSchema returns the schema for Label.
func LabelSchema() *cobraspec.Schema[Label] {
	return cobraspec.New(buildLabel)
}

func buildLabel(l *Label) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "label <name>",
		Short: "Create a label",
		Args:  cobra.ExactArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			l.Name = args[0]
			return nil
		},
	}
	cobraspec.Positional(cmd, cobraspec.PositionalArg{Name: "name", Required: true, Help: "Label name", Type: "string"})

	cmd.Flags().StringVar(&l.Color, "color", "", "Display color")
	_ = cmd.MarkFlagRequired("color")
	cmd.Flags().StringSliceVar(&l.Tags, "tags", nil, "Tags, entered one at a time")
	cmd.Flags().StringArrayVar(&l.Notes, "note", nil, "Free-form notes")
	cmd.Flags().BoolVar(&l.Pinned, "pinned", false, "Pin to the top")
	return cmd
}
