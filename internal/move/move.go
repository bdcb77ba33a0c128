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

// Package move finds lines that were deleted in one place and added in another.
//
// Detection is a pure function of the line level operations. It produces a [Table] that is only
// read afterwards, so rendering never has to track which side of a move it's looking at.
package move

import (
	"cmp"
	"fmt"
	"slices"
	"strings"

	"znkr.io/inlinediff/internal/config"
	"znkr.io/inlinediff/seqdiff"
)

// Direction describes where the destination of a move lies relative to its source.
type Direction int

const (
	Down Direction = iota // The destination is below the source.
	Up                    // The destination is above the source.
)

// Link relates a deleted line in x to an added line in y.
type Link struct {
	Src, Dst             int    // Line index in x and y respectively.
	SrcAnchor, DstAnchor string // Anchor identifiers of source and destination.
	Direction            Direction
}

// Table holds all links of a diff, indexed by both ends.
type Table struct {
	bySrc map[int]Link
	byDst map[int]Link
}

// Source returns the link whose source is x[s].
func (tab *Table) Source(s int) (Link, bool) {
	if tab == nil {
		return Link{}, false
	}
	l, ok := tab.bySrc[s]
	return l, ok
}

// Destination returns the link whose destination is y[t].
func (tab *Table) Destination(t int) (Link, bool) {
	if tab == nil {
		return Link{}, false
	}
	l, ok := tab.byDst[t]
	return l, ok
}

// Len returns the number of links.
func (tab *Table) Len() int {
	if tab == nil {
		return 0
	}
	return len(tab.bySrc)
}

// Links returns all links ordered by source line.
func (tab *Table) Links() []Link {
	if tab == nil {
		return nil
	}
	out := make([]Link, 0, len(tab.bySrc))
	for s := range tab.bySrc {
		out = append(out, tab.bySrc[s])
	}
	slices.SortFunc(out, func(a, b Link) int { return cmp.Compare(a.Src, b.Src) })
	return out
}

type candidate struct {
	line int
	op   int // index of the operation the line belongs to
}

// Detect links deleted lines in x to added lines in y that are at least cfg.MoveSimilarity
// similar. Every line takes part in at most one link. A deleted and an added line from the same
// change operation are never linked.
//
// Detection is skipped, and an empty table returned, if moves are disabled or if there are more
// than cfg.MaxMoveCandidates deleted or added lines.
func Detect(x, y []string, ops []seqdiff.Op, cfg config.Config) *Table {
	tab := &Table{bySrc: map[int]Link{}, byDst: map[int]Link{}}
	if !cfg.Moves {
		return tab
	}

	var srcs, dsts []candidate
	for i, op := range ops {
		if op.Kind == seqdiff.Copy {
			continue
		}
		for s := op.PosX; s < op.EndX; s++ {
			if !blank(x[s]) {
				srcs = append(srcs, candidate{s, i})
			}
		}
		for t := op.PosY; t < op.EndY; t++ {
			if !blank(y[t]) {
				dsts = append(dsts, candidate{t, i})
			}
		}
	}
	if len(srcs) == 0 || len(dsts) == 0 {
		return tab
	}
	if cfg.MaxMoveCandidates > 0 && (len(srcs) > cfg.MaxMoveCandidates || len(dsts) > cfg.MaxMoveCandidates) {
		return tab
	}

	var sim Similarity
	used := make([]bool, len(dsts))
	for _, src := range srcs {
		best, bestScore := -1, cfg.MoveSimilarity
		for i, dst := range dsts {
			if used[i] || dst.op == src.op {
				continue
			}
			score := sim.Score(x[src.line], y[dst.line], bestScore)
			if score > bestScore || best < 0 && score >= bestScore {
				best, bestScore = i, score
			}
		}
		if best < 0 {
			continue
		}
		used[best] = true
		dst := dsts[best].line
		l := Link{
			Src:       src.line,
			Dst:       dst,
			SrcAnchor: fmt.Sprintf("movedpara_%d_%d_lhs", src.line+1, dst+1),
			DstAnchor: fmt.Sprintf("movedpara_%d_%d_rhs", src.line+1, dst+1),
			Direction: Up,
		}
		if dst > src.line {
			l.Direction = Down
		}
		tab.bySrc[l.Src] = l
		tab.byDst[l.Dst] = l
	}
	return tab
}

// blank reports whether a line can't take part in a move.
func blank(line string) bool {
	return strings.TrimSpace(line) == ""
}
