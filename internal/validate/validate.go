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

// Package validate checks that inline diff JSON is consistent with its inputs.
//
// A valid output reproduces both inputs: the left document is made of the context lines, the
// deleted lines, the move sources and the left side of changed lines, the right document is made
// of the context lines, the added lines, the move destinations and the right side of changed
// lines. In addition, highlight ranges must be ordered and inside the text, line numbers must be
// increasing and every move must have exactly one source and one destination.
//
// Lines of a single space can't be told apart from the placeholder for empty lines, they are
// compared as if they were empty. The inputs must be valid UTF-8, JSON decoders replace invalid
// bytes.
package validate

import (
	"encoding/json"
	"fmt"
	"slices"
	"strings"

	"znkr.io/inlinediff/internal/jsonout"
)

// Record is a decoded output record.
type Record struct {
	Type       jsonout.DiffType `json:"type"`
	LineNumber *int             `json:"lineNumber"`
	MoveInfo   *MoveInfo        `json:"moveInfo"`
	Text       string           `json:"text"`
	Ranges     []Range          `json:"highlightRanges"`
}

// MoveInfo is a decoded move.
type MoveInfo struct {
	ID            string                `json:"id"`
	LinkID        string                `json:"linkId"`
	LinkDirection jsonout.LinkDirection `json:"linkDirection"`
}

// Range is a decoded highlight range.
type Range struct {
	Start  int                   `json:"start"`
	Length int                   `json:"length"`
	Type   jsonout.HighlightType `json:"type"`
}

// Decode decodes the output of a diff.
func Decode(out []byte) ([]Record, error) {
	var recs []Record
	if err := json.Unmarshal(out, &recs); err != nil {
		return nil, fmt.Errorf("decoding output: %v", err)
	}
	return recs, nil
}

// Check verifies that out is a complete diff of x and y, with every unchanged line included. It
// returns the decoded records.
func Check(x, y []string, out []byte) ([]Record, error) {
	recs, err := Decode(out)
	if err != nil {
		return nil, err
	}
	if err := checkRecords(recs, len(y)); err != nil {
		return recs, err
	}
	gotX, gotY := Reconstruct(recs)
	if i, ok := mismatch(x, gotX); !ok {
		return recs, fmt.Errorf("left document differs at line %d", i+1)
	}
	if i, ok := mismatch(y, gotY); !ok {
		return recs, fmt.Errorf("right document differs at line %d", i+1)
	}
	return recs, nil
}

// Reconstruct recovers the left and right document from the records of a complete diff.
func Reconstruct(recs []Record) (x, y []string) {
	for _, rec := range recs {
		switch rec.Type {
		case jsonout.Context:
			x = append(x, rec.Text)
			y = append(y, rec.Text)
		case jsonout.MoveSource:
			x = append(x, strip(rec, jsonout.Add))
		case jsonout.MoveDestination:
			y = append(y, strip(rec, jsonout.Delete))
		case jsonout.Change:
			switch {
			case rec.LineNumber == nil:
				x = append(x, placeholder(rec.Text))
			case wholeLine(rec, jsonout.Add):
				y = append(y, placeholder(rec.Text))
			default:
				x = append(x, strip(rec, jsonout.Add))
				y = append(y, strip(rec, jsonout.Delete))
			}
		}
	}
	return x, y
}

func checkRecords(recs []Record, ylen int) error {
	sources := map[string]MoveInfo{}
	dests := map[string]MoveInfo{}
	last := 0
	for i, rec := range recs {
		end := 0
		for _, rg := range rec.Ranges {
			if rg.Start < end || rg.Length <= 0 || rg.Start+rg.Length > len(rec.Text) {
				return fmt.Errorf("record %d: invalid highlight range %+v", i, rg)
			}
			end = rg.Start + rg.Length
		}
		if n := rec.LineNumber; n != nil {
			if *n <= last || *n > ylen {
				return fmt.Errorf("record %d: line number %d after %d with %d lines", i, *n, last, ylen)
			}
			last = *n
		}
		switch rec.Type {
		case jsonout.Context, jsonout.Change:
			if rec.MoveInfo != nil {
				return fmt.Errorf("record %d: unexpected move info", i)
			}
			if rec.Type == jsonout.Context && (rec.LineNumber == nil || len(rec.Ranges) > 0) {
				return fmt.Errorf("record %d: invalid context record", i)
			}
		case jsonout.MoveSource, jsonout.MoveDestination:
			m := rec.MoveInfo
			if m == nil {
				return fmt.Errorf("record %d: missing move info", i)
			}
			seen := dests
			if rec.Type == jsonout.MoveSource {
				if rec.LineNumber != nil {
					return fmt.Errorf("record %d: move source with line number", i)
				}
				seen = sources
			}
			if _, ok := seen[m.ID]; ok {
				return fmt.Errorf("record %d: duplicate move %q", i, m.ID)
			}
			seen[m.ID] = *m
		default:
			return fmt.Errorf("record %d: unexpected type %d", i, rec.Type)
		}
	}
	if len(sources) != len(dests) {
		return fmt.Errorf("found %d move sources and %d move destinations", len(sources), len(dests))
	}
	for id, src := range sources {
		if dst, ok := dests[id]; !ok || dst != src {
			return fmt.Errorf("move %q: destination %+v doesn't match source %+v", id, dst, src)
		}
	}
	return nil
}

// strip removes all ranges of type typ from the text of rec.
func strip(rec Record, typ jsonout.HighlightType) string {
	var sb strings.Builder
	pos := 0
	for _, rg := range rec.Ranges {
		if rg.Type != typ {
			continue
		}
		sb.WriteString(rec.Text[pos:rg.Start])
		pos = rg.Start + rg.Length
	}
	sb.WriteString(rec.Text[pos:])
	return sb.String()
}

func wholeLine(rec Record, typ jsonout.HighlightType) bool {
	return len(rec.Ranges) == 1 && rec.Ranges[0].Type == typ && rec.Ranges[0].Start == 0 && rec.Ranges[0].Length == len(rec.Text)
}

func placeholder(text string) string {
	if text == " " {
		return ""
	}
	return text
}

// mismatch returns the first line where want and got differ.
func mismatch(want, got []string) (int, bool) {
	norm := func(lines []string) []string {
		out := slices.Clone(lines)
		for i, l := range out {
			out[i] = placeholder(l)
		}
		return out
	}
	want, got = norm(want), norm(got)
	for i := range min(len(want), len(got)) {
		if want[i] != got[i] {
			return i, false
		}
	}
	if len(want) != len(got) {
		return min(len(want), len(got)), false
	}
	return 0, true
}
