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

package move

import (
	"unicode/utf8"

	"github.com/sergi/go-diff/diffmatchpatch"
)

// MaxScoreRunes is the longest line whose Levenshtein distance is computed exactly.
const MaxScoreRunes = 1000

// Similarity scores how similar two lines are. The score is 1 - d/n, where d is the Levenshtein
// distance between the lines in runes and n is the rune count of the longer line.
//
// Lines longer than MaxScoreRunes are only compared by their common prefix and suffix, which
// bounds d from above.
//
// The zero value is ready to use. A Similarity must not be used concurrently.
type Similarity struct {
	dmp *diffmatchpatch.DiffMatchPatch
}

// Score returns the similarity of a and b in [0, 1]. If the lengths of a and b alone show that
// the score is below atLeast, Score returns -1 without computing the distance.
func (sim *Similarity) Score(a, b string, atLeast float64) float64 {
	if a == b {
		return 1
	}
	na, nb := utf8.RuneCountInString(a), utf8.RuneCountInString(b)
	n := max(na, nb)
	if n == 0 {
		return 1
	}
	// The distance is at least the difference in length.
	if 1-float64(n-min(na, nb))/float64(n) < atLeast {
		return -1
	}
	if sim.dmp == nil {
		sim.dmp = diffmatchpatch.New()
	}
	// The score must not depend on wall-clock time.
	sim.dmp.DiffTimeout = 0
	if n > MaxScoreRunes {
		common := min(sim.dmp.DiffCommonPrefix(a, b)+sim.dmp.DiffCommonSuffix(a, b), na, nb)
		return float64(common) / float64(n)
	}
	diffs := sim.dmp.DiffMain(a, b, false)
	return 1 - float64(sim.dmp.DiffLevenshtein(diffs))/float64(n)
}
