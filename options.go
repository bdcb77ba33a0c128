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

package inlinediff

import (
	"znkr.io/inlinediff/internal/config"
	"znkr.io/inlinediff/seqdiff"
)

// Option configures the behavior of [JSON].
//
// In addition to the options in this package, [seqdiff.Optimal] and [seqdiff.CostLimit] are
// supported to control the line level diff.
type Option = seqdiff.Option

// Context sets the number of unchanged lines to include before and after every changed line. A
// negative value includes all unchanged lines, which is the default.
func Context(n int) Option {
	return func(cfg *config.Config) config.Flag {
		cfg.Context = n
		return config.Context
	}
}

// WordComplexityLimit bounds the word level diff of a changed line. If the product of the number
// of words in both versions of the line (after removing common leading and trailing words)
// exceeds n, the words in between are reported as one replacement. The default is 40,000,000, a
// value <= 0 removes the bound.
func WordComplexityLimit(n int) Option {
	return func(cfg *config.Config) config.Flag {
		cfg.WordComplexity = max(0, n)
		return config.WordComplexity
	}
}

// Moves enables or disables the detection of moved lines. Detection is enabled by default.
func Moves(enabled bool) Option {
	return func(cfg *config.Config) config.Flag {
		cfg.Moves = enabled
		return config.Moves
	}
}

// MoveSimilarity sets the minimal similarity in [0, 1] of a deleted and an added line for them to
// be reported as a move. The similarity is 1 minus the Levenshtein distance divided by the length
// of the longer line. The default is 0.75.
func MoveSimilarity(f float64) Option {
	return func(cfg *config.Config) config.Flag {
		cfg.Moves = true
		cfg.MoveSimilarity = f
		return config.Moves
	}
}

// MaxMoveCandidates skips move detection for diffs with more than n deleted or more than n added
// lines. The default is 100, a value <= 0 removes the limit.
func MaxMoveCandidates(n int) Option {
	return func(cfg *config.Config) config.Flag {
		cfg.MaxMoveCandidates = max(0, n)
		return config.Moves
	}
}

// ChangeSimilarity sets the minimal similarity in [0, 1] of a deleted and an added line for them
// to be rendered as a single changed line with word level highlights. Less similar lines are
// rendered as a deletion and an addition. The default is 0.2.
func ChangeSimilarity(f float64) Option {
	return func(cfg *config.Config) config.Flag {
		cfg.ChangeSimilarity = f
		return config.ChangeSimilarity
	}
}
