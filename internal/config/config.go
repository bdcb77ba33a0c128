// Copyright 2025 Florian Zenker (flo@znkr.io)
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

// Package config provides shared configuration mechanisms for packages this module.
//
// This package is an implementation detail, the configuration surface for users is provided via
// inlinediff.Option and seqdiff.Option.
package config

import "fmt"

// Config collects all configurable parameters for comparison functions in this module.
type Config struct {
	// Context is the number of unchanged lines to emit around a change. A negative value emits
	// every unchanged line.
	Context int

	// If set, the TOO_EXPENSIVE heuristic is disabled and the diff is always minimal.
	Optimal bool

	// CostLimit is the edit cost after which the TOO_EXPENSIVE heuristic accepts a good-enough
	// split. Zero means it's derived from the input size.
	CostLimit int

	// Complexity is the maximum value of len(x)*len(y) for which a full alignment is attempted.
	// Larger inputs use a greedy prefix/suffix alignment. Zero means unbounded.
	Complexity int

	// WordComplexity is the Complexity used for word level diffs of changed lines.
	WordComplexity int

	// If set, moved lines are detected and linked.
	Moves bool

	// MoveSimilarity is the minimal similarity in [0, 1] for two lines to be considered a move.
	MoveSimilarity float64

	// MaxMoveCandidates limits the number of deleted or added lines considered for move
	// detection. Move detection is skipped for diffs with more candidates.
	MaxMoveCandidates int

	// ChangeSimilarity is the minimal similarity in [0, 1] for a deleted and an added line to be
	// rendered as a single changed line.
	ChangeSimilarity float64
}

// Default is the default configuration.
var Default = Config{
	Context:           -1,
	Optimal:           false,
	CostLimit:         0,
	Complexity:        0,
	WordComplexity:    40_000_000,
	Moves:             true,
	MoveSimilarity:    0.75,
	MaxMoveCandidates: 100,
	ChangeSimilarity:  0.2,
}

// Flag describes a single config entry. This is used to detect if configurations are being set
// that are not supported by a function.
type Flag int

const (
	Context Flag = 1 << iota
	Optimal
	CostLimit
	Complexity
	WordComplexity
	Moves
	ChangeSimilarity
)

// Option is the mechanism used to expose the configuration to users.
type Option func(*Config) Flag

// FromOptions creates a configuration from a set of options.
func FromOptions(opts []Option, allowed Flag) Config {
	cfg := Default
	for _, opt := range opts {
		flag := opt(&cfg)
		if flag & ^allowed != 0 {
			panic("Option " + printFlag(flag) + " not allowed here")
		}
	}
	if cfg.MoveSimilarity < 0 || cfg.MoveSimilarity > 1 {
		panic(fmt.Sprintf("move similarity must be in [0, 1], got %v", cfg.MoveSimilarity))
	}
	if cfg.ChangeSimilarity < 0 || cfg.ChangeSimilarity > 1 {
		panic(fmt.Sprintf("change similarity must be in [0, 1], got %v", cfg.ChangeSimilarity))
	}
	return cfg
}

func printFlag(flag Flag) string {
	switch flag {
	case Context:
		return "inlinediff.Context"
	case Optimal:
		return "seqdiff.Optimal"
	case CostLimit:
		return "seqdiff.CostLimit"
	case Complexity:
		return "seqdiff.ComplexityLimit"
	case WordComplexity:
		return "inlinediff.WordComplexityLimit"
	case Moves:
		return "inlinediff.Moves"
	case ChangeSimilarity:
		return "inlinediff.ChangeSimilarity"
	default:
		panic("never reached")
	}
}
