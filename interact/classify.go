// SPDX-License-Identifier: AGPL-3.0-or-later
// Copyright (C) 2026 aPlane Authors

package interact

import "github.com/aplane-algo/interact/cmdspec"

// Strategy is the way a single argument is prompted for.
type Strategy int

const (
	StrategyRequired Strategy = iota // exactly one value
	StrategyOptional                 // confirm, then one value
	StrategyRepeated                 // values until the user declines
)

func (s Strategy) String() string {
	switch s {
	case StrategyRequired:
		return "required"
	case StrategyOptional:
		return "optional"
	case StrategyRepeated:
		return "repeated"
	default:
		return "unknown"
	}
}

// Classify picks the prompt strategy for arg.
// Rules are checked in order: repeatable, then required, then optional.
func Classify(arg cmdspec.Arg) Strategy {
	switch {
	case arg.Multiple:
		return StrategyRepeated
	case arg.Required:
		return StrategyRequired
	default:
		return StrategyOptional
	}
}
