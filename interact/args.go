// SPDX-License-Identifier: AGPL-3.0-or-later
// Copyright (C) 2026 aPlane Authors

package interact

import (
	"context"

	"github.com/aplane-algo/interact/cmdspec"
)

// promptArg runs the strategy Classify picks for arg and returns its tokens.
func (s *Session) promptArg(ctx context.Context, arg cmdspec.Arg) ([]string, error) {
	strategy := Classify(arg)
	s.logger.Debug("prompting argument", "arg", arg.ID, "kind", arg.Kind(), "strategy", strategy)

	switch strategy {
	case StrategyRepeated:
		return s.repeatedValue(ctx, arg)
	case StrategyRequired:
		return s.requiredValue(ctx, arg)
	default:
		return s.optionalValue(ctx, arg)
	}
}

// requiredValue asks for exactly one value.
func (s *Session) requiredValue(ctx context.Context, arg cmdspec.Arg) ([]string, error) {
	value, err := s.readValue(ctx, arg)
	if err != nil {
		return nil, err
	}
	return []string{arg.Token(value)}, nil
}

// optionalValue asks whether to supply arg at all; declining yields no tokens.
func (s *Session) optionalValue(ctx context.Context, arg cmdspec.Arg) ([]string, error) {
	value, ok, err := s.maybeReadValue(ctx, arg)
	if err != nil || !ok {
		return nil, err
	}
	return []string{arg.Token(value)}, nil
}

// repeatedValue collects values until the user declines another one.
// A required argument gets its first value without the confirmation step.
// With a delimiter all values collapse into one token, otherwise each value
// becomes its own token in the order entered.
func (s *Session) repeatedValue(ctx context.Context, arg cmdspec.Arg) ([]string, error) {
	var values []string

	if arg.Required {
		value, err := s.readValue(ctx, arg)
		if err != nil {
			return nil, err
		}
		values = append(values, value)
	}

	for {
		value, ok, err := s.maybeReadValue(ctx, arg)
		if err != nil {
			return nil, err
		}
		if !ok {
			break
		}
		values = append(values, value)
	}

	if len(values) == 0 {
		return nil, nil
	}
	if arg.Delimiter != "" {
		joined, err := arg.Join(values)
		if err != nil {
			return nil, err
		}
		return []string{arg.Token(joined)}, nil
	}

	tokens := make([]string, 0, len(values))
	for _, value := range values {
		tokens = append(tokens, arg.Token(value))
	}
	return tokens, nil
}

func (s *Session) maybeReadValue(ctx context.Context, arg cmdspec.Arg) (string, bool, error) {
	ok, err := s.prompter.Confirm(ctx, LabelOptionalValue, arg.ID)
	if err != nil || !ok {
		return "", false, err
	}
	value, err := s.readValue(ctx, arg)
	if err != nil {
		return "", false, err
	}
	return value, true, nil
}

func (s *Session) readValue(ctx context.Context, arg cmdspec.Arg) (string, error) {
	return s.prompter.Text(ctx, arg.ID, s.helpText(arg))
}

// helpText combines the type hint (verbose sessions only) and the declared help.
func (s *Session) helpText(arg cmdspec.Arg) string {
	if !s.verbose || arg.TypeHint == "" {
		return arg.Help
	}
	hint := "<" + arg.TypeHint + ">"
	if arg.Help == "" {
		return hint
	}
	return hint + ": " + arg.Help
}
