// SPDX-License-Identifier: AGPL-3.0-or-later
// Copyright (C) 2026 aPlane Authors

package demo

import (
	"fmt"
	"strings"
)

// Pair is two strings written as "first,second".
type Pair struct {
	First  string `yaml:"first"`
	Second string `yaml:"second"`
}

// ParsePair parses "first,second". Both halves must be non-empty.
func ParsePair(s string) (Pair, error) {
	first, second, ok := strings.Cut(s, ",")
	if !ok || first == "" || second == "" || strings.Contains(second, ",") {
		return Pair{}, fmt.Errorf("invalid pair %q: expected <first>,<second>", s)
	}
	return Pair{First: first, Second: second}, nil
}

func (p Pair) String() string {
	return p.First + "," + p.Second
}

// pairFlag is a pflag.Value storing into an optional *Pair.
type pairFlag struct {
	target **Pair
}

func (f pairFlag) String() string {
	// pflag calls String on zero values when rendering defaults
	if f.target == nil || *f.target == nil {
		return ""
	}
	return (*f.target).String()
}

func (f pairFlag) Set(s string) error {
	p, err := ParsePair(s)
	if err != nil {
		return err
	}
	*f.target = &p
	return nil
}

func (f pairFlag) Type() string {
	return "pair"
}
