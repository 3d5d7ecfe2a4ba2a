// SPDX-License-Identifier: AGPL-3.0-or-later
// Copyright (C) 2026 aPlane Authors

package interact

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/aplane-algo/interact/cmdspec"
	"github.com/aplane-algo/interact/prompt"
)

// EndOfFlags separates flag tokens from positional tokens that begin with "-".
const EndOfFlags = "--"

// ErrInvalidSelection is returned when a prompter's Select reports an index
// outside the options it was given.
var ErrInvalidSelection = errors.New("select returned an invalid option")

// Tokens prompts for a full command line described by root and returns it as
// tokens: the root name, then per level the argument tokens in declaration
// order followed by the chosen subcommand name.
//
// A positional token starting with "-" would be read as a flag, so such a
// level is emitted as its flag tokens, then "--", then its positional tokens.
//
// The walk descends one level per chosen subcommand and stops at a leaf or when
// the user declines an optional subcommand, so it never backtracks.
func (s *Session) Tokens(ctx context.Context, root *cmdspec.Command) ([]string, error) {
	if err := root.Validate(); err != nil {
		return nil, err
	}

	tokens := []string{root.Name}
	cmd := root
	for {
		s.logger.Debug("collecting arguments", "command", cmd.Name, "args", len(cmd.Args))
		level, err := s.levelTokens(ctx, cmd)
		if err != nil {
			return nil, err
		}
		tokens = append(tokens, level...)

		next, err := s.chooseSubcommand(ctx, cmd)
		if err != nil {
			return nil, err
		}
		if next == nil {
			break
		}
		s.logger.Debug("descending", "from", cmd.Name, "to", next.Name)
		tokens = append(tokens, next.Name)
		cmd = next
	}

	s.logger.Debug("command line complete", "tokens", tokens)
	return tokens, nil
}

// levelTokens prompts for every argument of cmd.
func (s *Session) levelTokens(ctx context.Context, cmd *cmdspec.Command) ([]string, error) {
	var all, flags, positionals []string
	dashed := false

	for _, arg := range cmd.Args {
		argTokens, err := s.promptArg(ctx, arg)
		if err != nil {
			return nil, err
		}
		all = append(all, argTokens...)
		if !arg.Positional {
			flags = append(flags, argTokens...)
			continue
		}
		positionals = append(positionals, argTokens...)
		for _, tok := range argTokens {
			if strings.HasPrefix(tok, "-") {
				dashed = true
			}
		}
	}

	if !dashed {
		return all, nil
	}
	s.logger.Debug("separating positionals", "command", cmd.Name)
	level := make([]string, 0, len(all)+1)
	level = append(level, flags...)
	level = append(level, EndOfFlags)
	return append(level, positionals...), nil
}

// chooseSubcommand returns the subcommand to descend into, or nil to stop.
func (s *Session) chooseSubcommand(ctx context.Context, cmd *cmdspec.Command) (*cmdspec.Command, error) {
	if len(cmd.Subcommands) == 0 {
		return nil, nil
	}

	if !cmd.SubcommandRequired {
		ok, err := s.prompter.Confirm(ctx, LabelOptionalCommand, cmd.SubcommandLabel)
		if err != nil {
			return nil, err
		}
		if !ok {
			s.logger.Debug("optional subcommand declined", "command", cmd.Name)
			return nil, nil
		}
	}

	options := make([]prompt.Option, len(cmd.Subcommands))
	for i, sub := range cmd.Subcommands {
		options[i] = prompt.Option{Name: sub.Name, Description: sub.Short}
	}

	idx, err := s.prompter.Select(ctx, cmd.Name, options)
	if err != nil {
		return nil, err
	}
	if idx < 0 || idx >= len(options) {
		return nil, fmt.Errorf("%w: select for %q returned option %d of %d",
			ErrInvalidSelection, cmd.Name, idx, len(options))
	}
	return cmd.Subcommands[idx], nil
}
