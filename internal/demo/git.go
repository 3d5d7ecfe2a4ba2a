// SPDX-License-Identifier: AGPL-3.0-or-later
// Copyright (C) 2026 aPlane Authors

package demo

import (
	"github.com/spf13/cobra"

	"github.com/aplane-algo/interact/cmdspec/cobraspec"
)

// Git is a small git-like command line.
type Git struct {
	MyArg  *Pair   `yaml:"my_arg"`
	Commit *Commit `yaml:"commit,omitempty"`
	Clone  *Clone  `yaml:"clone,omitempty"`
	Merge  *Merge  `yaml:"merge,omitempty"`
}

type Commit struct {
	Message *string `yaml:"message"`
}

type Clone struct {
	Address []Pair `yaml:"address"`
}

type Merge struct {
	Address []string `yaml:"address"`
	Bool    bool     `yaml:"bool"`
}

// GitSchema returns the schema for Git.
func GitSchema() *cobraspec.Schema[Git] {
	return cobraspec.New(buildGit)
}

func buildGit(g *Git) *cobra.Command {
	root := &cobra.Command{
		Use:   "git",
		Short: "A git-like demo command",
		Args:  cobra.NoArgs,
		RunE:  func(*cobra.Command, []string) error { return nil },
	}
	root.PersistentFlags().Var(pairFlag{target: &g.MyArg}, "my_arg", "A pair of values, e.g. a,b")
	cobraspec.SubcommandLabel(root, "my_subcommand")

	commit := &cobra.Command{
		Use:   "commit [message]",
		Short: "Record changes",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			g.Commit = &Commit{}
			if len(args) == 1 {
				msg := args[0]
				g.Commit.Message = &msg
			}
			return nil
		},
	}
	cobraspec.Positional(commit, cobraspec.PositionalArg{Name: "message", Help: "Commit message", Type: "string"})

	clone := &cobra.Command{
		Use:   "clone <address>...",
		Short: "Clone from one or more address pairs",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			addrs := make([]Pair, 0, len(args))
			for _, arg := range args {
				p, err := ParsePair(arg)
				if err != nil {
					return err
				}
				addrs = append(addrs, p)
			}
			g.Clone = &Clone{Address: addrs}
			return nil
		},
	}
	cobraspec.Positional(clone, cobraspec.PositionalArg{
		Name: "address", Required: true, Multiple: true, Help: "Address pair a,b", Type: "pair",
	})

	merge := &cobra.Command{
		Use:   "merge <address,...>",
		Short: "Merge comma-separated addresses",
		Args:  cobra.ExactArgs(1),
	}
	var mergeBool bool
	merge.Flags().BoolVar(&mergeBool, "bool", false, "A boolean switch")
	merge.RunE = func(_ *cobra.Command, args []string) error {
		addrs, err := cobraspec.SplitValues(args[0], ",")
		if err != nil {
			return err
		}
		g.Merge = &Merge{Address: addrs, Bool: mergeBool}
		return nil
	}
	cobraspec.Positional(merge, cobraspec.PositionalArg{
		Name: "address", Required: true, Multiple: true, Delimiter: ",", Help: "Address to merge", Type: "string",
	})

	root.AddCommand(commit, clone, merge)
	return root
}
