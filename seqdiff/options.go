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

package seqdiff

import "znkr.io/inlinediff/internal/config"

// Option configures the behavior of comparison functions.
type Option = config.Option

// Optimal finds an optimal diff irrespective of the cost. By default, the comparison functions
// limit the cost for large inputs with many differences by applying a heuristic that reduces the
// time complexity.
//
// With this option, the runtime is O(ND) where N = len(x) + len(y), and D is the number of
// differences between x and y.
func Optimal() Option {
	return func(cfg *config.Config) config.Flag {
		cfg.Optimal = true
		return config.Optimal
	}
}

// CostLimit sets the edit cost after which the search accepts a good-enough alignment instead of
// an optimal one. A value <= 0 restores the default, which is derived from the input size and is
// at least 4096.
func CostLimit(n int) Option {
	return func(cfg *config.Config) config.Flag {
		cfg.CostLimit = max(0, n)
		return config.CostLimit
	}
}

// ComplexityLimit bounds the size of the search. If the changed portion of the inputs (after
// removing the common prefix and suffix) has more than n element pairs, i.e. len(x)*len(y) > n,
// the changed portion is reported as a single replacement without searching for matches. A value
// <= 0 removes the bound, which is the default.
func ComplexityLimit(n int) Option {
	return func(cfg *config.Config) config.Flag {
		cfg.Complexity = max(0, n)
		return config.Complexity
	}
}
