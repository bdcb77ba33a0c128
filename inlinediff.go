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
	"strings"

	"znkr.io/inlinediff/internal/config"
	"znkr.io/inlinediff/internal/jsonout"
	"znkr.io/inlinediff/internal/move"
	"znkr.io/inlinediff/internal/myers"
	"znkr.io/inlinediff/internal/rvecs"
	"znkr.io/inlinediff/internal/tokenize"
	"znkr.io/inlinediff/seqdiff"
)

const allowed = config.Context | config.Optimal | config.CostLimit | config.WordComplexity | config.Moves | config.ChangeSimilarity

// JSON compares the lines in x and y and returns the difference as a JSON array of records.
//
// The following options are supported: [Context], [WordComplexityLimit], [Moves],
// [MoveSimilarity], [MaxMoveCandidates], [ChangeSimilarity], [seqdiff.Optimal],
// [seqdiff.CostLimit]
//
// JSON never fails. Empty inputs result in an empty array and bytes that are not valid UTF-8 are
// copied to the output unchanged.
func JSON(x, y []string, opts ...Option) []byte {
	cfg := config.FromOptions(opts, allowed)

	lcfg := cfg
	lcfg.Complexity = 0
	rx, ry := myers.Diff(x, y, lcfg)
	ops := seqdiff.FromVectors(rx, ry)

	r := renderer{
		x:     x,
		y:     y,
		cfg:   cfg,
		moves: move.Detect(x, y, ops, cfg),
	}
	if cfg.Context >= 0 {
		r.visible = make([]bool, len(y))
		for h := range rvecs.Hunks(rx, ry, cfg.Context) {
			for t := h.T0; t < h.T1; t++ {
				r.visible[t] = true
			}
		}
	}
	for _, op := range ops {
		r.render(op)
	}
	return r.w.Bytes()
}

// JSONString is like [JSON] but returns a string.
func JSONString(x, y []string, opts ...Option) string {
	return string(JSON(x, y, opts...))
}

type renderer struct {
	x, y  []string
	cfg   config.Config
	moves *move.Table

	// If not nil, only unchanged lines y[t] with visible[t] are rendered.
	visible []bool

	sim move.Similarity
	w   jsonout.Writer
}

// side selects which tokens of a word diff are rendered.
type side int

const (
	left side = 1 << iota
	right
	both = left | right
)

func (r *renderer) render(op seqdiff.Op) {
	if op.Kind == seqdiff.Copy {
		for t := op.PosY; t < op.EndY; t++ {
			if r.visible == nil || r.visible[t] {
				r.w.Write(jsonout.Record{
					Type:       jsonout.Context,
					LineNumber: t + 1,
					Text:       r.y[t],
				})
			}
		}
		return
	}

	partner := r.pair(op)
	s, t := op.PosX, op.PosY
	for s < op.EndX || t < op.EndY {
		if s < op.EndX {
			if l, ok := r.moves.Source(s); ok {
				r.moved(l, jsonout.MoveSource)
				s++
				continue
			}
		}
		if t < op.EndY {
			if l, ok := r.moves.Destination(t); ok {
				r.moved(l, jsonout.MoveDestination)
				t++
				continue
			}
		}
		switch {
		case s < op.EndX && partner[s-op.PosX] == t:
			text, ranges := r.words(r.x[s], r.y[t], both)
			r.w.Write(jsonout.Record{
				Type:       jsonout.Change,
				LineNumber: t + 1,
				Text:       text,
				Ranges:     ranges,
			})
			s++
			t++
		case s < op.EndX && partner[s-op.PosX] < 0:
			r.line(r.x[s], 0, jsonout.Delete)
			s++
		default:
			r.line(r.y[t], t+1, jsonout.Add)
			t++
		}
	}
}

// pair pairs the lines of op that aren't part of a move by position. Paired lines are rendered
// as one changed line if they are similar enough. It returns the partner in y for every line in
// x[op.PosX:op.EndX] or -1 if a line has none.
func (r *renderer) pair(op seqdiff.Op) []int {
	partner := make([]int, op.EndX-op.PosX)
	for i := range partner {
		partner[i] = -1
	}
	s, t := op.PosX, op.PosY
	for {
		for s < op.EndX && r.isSource(s) {
			s++
		}
		for t < op.EndY && r.isDestination(t) {
			t++
		}
		if s >= op.EndX || t >= op.EndY {
			return partner
		}
		// An empty line is never paired with a non-empty one, there are no words to compare.
		if (r.x[s] == "") == (r.y[t] == "") && r.sim.Score(r.x[s], r.y[t], r.cfg.ChangeSimilarity) >= r.cfg.ChangeSimilarity {
			partner[s-op.PosX] = t
		}
		s++
		t++
	}
}

func (r *renderer) isSource(s int) bool {
	_, ok := r.moves.Source(s)
	return ok
}

func (r *renderer) isDestination(t int) bool {
	_, ok := r.moves.Destination(t)
	return ok
}

// line renders a line that was added or deleted as a whole.
func (r *renderer) line(text string, lineNumber int, typ jsonout.HighlightType) {
	rg := jsonout.Range{Start: 0, Length: len(text), Type: typ}
	if text == "" {
		// A zero length highlight can't be displayed, use a placeholder instead.
		text = " "
		rg.Length = 1
	}
	r.w.Write(jsonout.Record{
		Type:       jsonout.Change,
		LineNumber: lineNumber,
		Text:       text,
		Ranges:     []jsonout.Range{rg},
	})
}

// moved renders one end of a move. The source shows the words of x that are not in the
// destination as deletions, the destination shows the words of y that are not in the source as
// additions.
func (r *renderer) moved(l move.Link, typ jsonout.DiffType) {
	rec := jsonout.Record{
		Type: typ,
		Move: &jsonout.MoveInfo{
			ID:        l.SrcAnchor,
			LinkID:    l.DstAnchor,
			Direction: jsonout.Down,
		},
	}
	if l.Direction == move.Up {
		rec.Move.Direction = jsonout.Up
	}
	if typ == jsonout.MoveSource {
		rec.Text, rec.Ranges = r.words(r.x[l.Src], r.y[l.Dst], left)
	} else {
		rec.LineNumber = l.Dst + 1
		rec.Text, rec.Ranges = r.words(r.x[l.Src], r.y[l.Dst], right)
	}
	r.w.Write(rec)
}

// words diffs a and b word by word and returns the rendered text with its highlight ranges.
func (r *renderer) words(a, b string, sd side) (string, []jsonout.Range) {
	wa := tokenize.Texts(a, tokenize.Words(a))
	wb := tokenize.Texts(b, tokenize.Words(b))

	wcfg := r.cfg
	wcfg.Complexity = r.cfg.WordComplexity
	rx, ry := myers.Diff(wa, wb, wcfg)

	var sb strings.Builder
	sb.Grow(len(a) + len(b))
	var ranges []jsonout.Range
	emit := func(words []string, typ jsonout.HighlightType) {
		start := sb.Len()
		for _, w := range words {
			sb.WriteString(w)
		}
		if n := sb.Len() - start; n > 0 {
			ranges = append(ranges, jsonout.Range{Start: start, Length: n, Type: typ})
		}
	}
	for _, op := range seqdiff.FromVectors(rx, ry) {
		if op.Kind == seqdiff.Copy {
			for _, w := range wb[op.PosY:op.EndY] {
				sb.WriteString(w)
			}
			continue
		}
		if sd&left != 0 {
			emit(wa[op.PosX:op.EndX], jsonout.Delete)
		}
		if sd&right != 0 {
			emit(wb[op.PosY:op.EndY], jsonout.Add)
		}
	}
	return sb.String(), ranges
}
