// SPDX-License-Identifier: AGPL-3.0-or-later
// Copyright (C) 2026 aPlane Authors

package cmdspec

// Schema is implemented by command-line schemas that can describe their
// command tree and parse a token list into a typed value.
//
// Parse receives the tokens exactly as a shell would pass them, including the
// program name at index 0. It must perform all validation and coercion; callers
// never interpret the tokens themselves.
type Schema[T any] interface {
	Describe() (*Command, error)
	Parse(tokens []string) (T, error)
}
