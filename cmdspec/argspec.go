// SPDX-License-Identifier: AGPL-3.0-or-later
// Copyright (C) 2026 aPlane Authors

// Package cmdspec provides the command and argument descriptors shared between
// schema implementations and the interactive session engine.
// Descriptors are plain data: a schema builds them once and the engine only reads them.
package cmdspec

import (
	"encoding/csv"
	"fmt"
	"strings"
	"unicode/utf8"
)

// Arg describes one argument of a command.
//
// Simple usage:
//
//	Arg{ID: "message", Positional: true}
//	Arg{ID: "my_arg", Help: "key/value pair", TypeHint: "pair"}
//
// Repeatable usage (values collapse into one delimited token):
//
//	Arg{ID: "address", Positional: true, Required: true, Multiple: true, Delimiter: ","}
//	Arg{ID: "tags", Multiple: true, Delimiter: ",", CSV: true}
type Arg struct {
	ID         string // Stable key; the long flag name for flagged args
	Positional bool   // true = positional, false = --ID=value
	Required   bool   // Must be supplied
	Multiple   bool   // Accepts more than one value
	Delimiter  string // Join delimiter for Multiple args (empty = one token per value)
	CSV        bool   // Quote joined values as a CSV record; Delimiter must be one rune
	Help       string // Human-readable help text
	TypeHint   string // Value type name, shown only with verbose diagnostics
}

// Kind returns "positional" or "flag".
func (a Arg) Kind() string {
	if a.Positional {
		return "positional"
	}
	return "flag"
}

// Token formats a single value the way the schema's own command line expects it.
func (a Arg) Token(value string) string {
	if a.Positional {
		return value
	}
	return fmt.Sprintf("--%s=%s", a.ID, value)
}

func (a Arg) String() string {
	if a.Positional {
		return "<" + a.ID + ">"
	}
	return "--" + a.ID
}

// Join encodes values as the payload of one delimited token.
// CSV args quote values holding the delimiter, quotes or line breaks, so the
// parser reads back exactly the values entered.
func (a Arg) Join(values []string) (string, error) {
	if !a.CSV {
		return strings.Join(values, a.Delimiter), nil
	}
	// A lone empty field is an empty line to a CSV reader
	if len(values) == 1 && values[0] == "" {
		return `""`, nil
	}

	var b strings.Builder
	w := csv.NewWriter(&b)
	w.Comma, _ = utf8.DecodeRuneInString(a.Delimiter)
	if err := w.Write(values); err != nil {
		return "", fmt.Errorf("failed to encode values of %s: %w", a, err)
	}
	w.Flush()
	if err := w.Error(); err != nil {
		return "", fmt.Errorf("failed to encode values of %s: %w", a, err)
	}
	return strings.TrimSuffix(b.String(), "\n"), nil
}

// validCSVDelimiter mirrors the delimiters encoding/csv accepts.
func validCSVDelimiter(delim string) bool {
	r, size := utf8.DecodeRuneInString(delim)
	if size != len(delim) || r == utf8.RuneError {
		return false
	}
	return r != '"' && r != '\r' && r != '\n'
}
