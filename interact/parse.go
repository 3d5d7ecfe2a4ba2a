// SPDX-License-Identifier: AGPL-3.0-or-later
// Copyright (C) 2026 aPlane Authors

package interact

import (
	"context"
	"fmt"
	"slices"

	"github.com/aplane-algo/interact/cmdspec"
)

// ValidationError reports tokens the schema's parser rejected.
// Tokens is exactly what the session would have typed on the command line.
type ValidationError struct {
	Tokens []string
	Err    error
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("interactive session supplied these args: %q\n%v", e.Tokens, e.Err)
}

func (e *ValidationError) Unwrap() error {
	return e.Err
}

// Reparse hands tokens to the schema's parser.
// Parser failures are returned as *ValidationError.
func Reparse[T any](schema cmdspec.Schema[T], tokens []string) (T, error) {
	v, err := schema.Parse(slices.Clone(tokens))
	if err != nil {
		var zero T
		return zero, &ValidationError{Tokens: slices.Clone(tokens), Err: err}
	}
	return v, nil
}

// Parse runs one interactive session for schema and returns the parsed value.
func Parse[T any](ctx context.Context, s *Session, schema cmdspec.Schema[T]) (T, error) {
	var zero T

	root, err := schema.Describe()
	if err != nil {
		return zero, err
	}

	tokens, err := s.Tokens(ctx, root)
	if err != nil {
		return zero, err
	}

	s.logger.Debug("reparsing", "tokens", tokens)
	return Reparse(schema, tokens)
}
