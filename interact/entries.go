// SPDX-License-Identifier: AGPL-3.0-or-later
// Copyright (C) 2026 aPlane Authors

package interact

import (
	"context"
	"reflect"
	"strings"

	"github.com/aplane-algo/interact/cmdspec"
)

// ParseEach runs sessions for schema while the user confirms another entry.
// The result may be empty. Any failed session discards all entries.
func ParseEach[T any](ctx context.Context, s *Session, schema cmdspec.Schema[T]) ([]T, error) {
	help := shortTypeName[T]()

	var entries []T
	for {
		ok, err := s.prompter.Confirm(ctx, LabelOptionalEntry, help)
		if err != nil {
			return nil, err
		}
		if !ok {
			s.logger.Debug("entries complete", "type", help, "count", len(entries))
			return entries, nil
		}

		v, err := Parse(ctx, s, schema)
		if err != nil {
			return nil, err
		}
		entries = append(entries, v)
	}
}

// shortTypeName returns T's name without its package qualifier.
// Type parameters are kept: "demo.Pair[string]" becomes "Pair[string]".
func shortTypeName[T any]() string {
	name := reflect.TypeOf((*T)(nil)).Elem().String()

	base, params := name, ""
	if i := strings.IndexByte(name, '['); i > 0 {
		base, params = name[:i], name[i:]
	}
	base = strings.TrimLeft(base, "*")
	if i := strings.LastIndexByte(base, '.'); i >= 0 {
		base = base[i+1:]
	}
	return base + params
}
