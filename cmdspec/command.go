// SPDX-License-Identifier: AGPL-3.0-or-later
// Copyright (C) 2026 aPlane Authors

package cmdspec

import (
	"errors"
	"fmt"
)

// ErrInvalidSpec is returned for descriptor trees no command line could satisfy.
// It signals a programming error in the schema, not a user mistake.
var ErrInvalidSpec = errors.New("invalid command spec")

// Command describes a command (root or subcommand) and its tree.
type Command struct {
	Name               string     // Token used to select this command
	Short              string     // One-line description
	Args               []Arg      // Arguments in declaration order
	Subcommands        []*Command // Child commands in declaration order
	SubcommandRequired bool       // A subcommand must be chosen
	SubcommandLabel    string     // Display label for the subcommand slot (optional)
}

// Walk visits c and all of its descendants depth-first.
// path holds the command names from the root down to and including cmd.
func (c *Command) Walk(fn func(path []string, cmd *Command) error) error {
	return c.walk(nil, fn)
}

func (c *Command) walk(parent []string, fn func([]string, *Command) error) error {
	name := "<nil>"
	if c != nil {
		name = c.Name
	}
	path := make([]string, len(parent), len(parent)+1)
	copy(path, parent)
	path = append(path, name)

	if err := fn(path, c); err != nil {
		return err
	}
	if c == nil {
		return nil
	}
	for _, sub := range c.Subcommands {
		if err := sub.walk(path, fn); err != nil {
			return err
		}
	}
	return nil
}

// Validate checks the whole tree rooted at c.
func (c *Command) Validate() error {
	if c == nil {
		return fmt.Errorf("%w: nil command", ErrInvalidSpec)
	}
	return c.Walk(func(path []string, cmd *Command) error {
		if cmd == nil {
			return fmt.Errorf("%w: nil subcommand under %v", ErrInvalidSpec, path[:len(path)-1])
		}
		if cmd.Name == "" {
			return fmt.Errorf("%w: command at %v has no name", ErrInvalidSpec, path)
		}

		seenArgs := make(map[string]bool, len(cmd.Args))
		for i, arg := range cmd.Args {
			if arg.ID == "" {
				return fmt.Errorf("%w: %s: argument %d has no id", ErrInvalidSpec, cmd.Name, i)
			}
			if seenArgs[arg.ID] {
				return fmt.Errorf("%w: %s: duplicate argument %q", ErrInvalidSpec, cmd.Name, arg.ID)
			}
			seenArgs[arg.ID] = true
			if arg.Delimiter != "" && !arg.Multiple {
				return fmt.Errorf("%w: %s: argument %q has a delimiter but takes a single value",
					ErrInvalidSpec, cmd.Name, arg.ID)
			}
			if arg.CSV && !validCSVDelimiter(arg.Delimiter) {
				return fmt.Errorf("%w: %s: argument %q needs a single-character delimiter for CSV values",
					ErrInvalidSpec, cmd.Name, arg.ID)
			}
		}

		seenSubs := make(map[string]bool, len(cmd.Subcommands))
		for _, sub := range cmd.Subcommands {
			if sub == nil {
				continue // reported when the walk reaches it
			}
			if seenSubs[sub.Name] {
				return fmt.Errorf("%w: %s: duplicate subcommand %q", ErrInvalidSpec, cmd.Name, sub.Name)
			}
			seenSubs[sub.Name] = true
		}

		if cmd.SubcommandRequired && len(cmd.Subcommands) == 0 {
			return fmt.Errorf("%w: %s requires a subcommand but declares none", ErrInvalidSpec, cmd.Name)
		}
		return nil
	})
}
