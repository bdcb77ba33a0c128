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

// Package jsonout serializes diff records into the inline diff JSON format.
//
// The layout of every record is fixed, including the order of the keys and the whitespace between
// them, because renderers consume the output byte for byte:
//
//	{"type": 3, "lineNumber": 2, "moveInfo": null, "text": "...", "highlightRanges": [{"start": 4, "length": 3, "type": 1}]}
package jsonout

import "strconv"

// DiffType is the type of a record.
type DiffType int

const (
	Context         DiffType = 0
	AddLine         DiffType = 1 // reserved, additions are reported as Change
	DeleteLine      DiffType = 2 // reserved, deletions are reported as Change
	Change          DiffType = 3
	MoveSource      DiffType = 4
	MoveDestination DiffType = 5
)

// HighlightType is the type of a highlight range.
type HighlightType int

const (
	Add    HighlightType = 0
	Delete HighlightType = 1
)

// LinkDirection tells where the other end of a move is.
type LinkDirection int

const (
	Down LinkDirection = 0
	Up   LinkDirection = 1
)

// Range marks text[Start:Start+Length] of a record.
type Range struct {
	Start, Length int
	Type          HighlightType
}

// MoveInfo links the source and destination of a moved line.
type MoveInfo struct {
	ID, LinkID string
	Direction  LinkDirection
}

// Record is one line of output.
type Record struct {
	Type DiffType

	// LineNumber is the 1-based line number in the right document, 0 is serialized as null.
	LineNumber int

	// Move is serialized as null if unset.
	Move *MoveInfo

	// Text is the unescaped text of the line.
	Text string

	// Ranges must be ordered and must not overlap.
	Ranges []Range
}

// Writer appends records to a JSON array.
type Writer struct {
	buf        []byte
	hasResults bool
}

// Write appends r to the array.
func (w *Writer) Write(r Record) {
	if w.buf == nil {
		w.buf = append(w.buf, '[')
	}
	if w.hasResults {
		w.buf = append(w.buf, ',')
	}
	w.buf = AppendRecord(w.buf, r)
	w.hasResults = true
}

// Bytes closes the array and returns the output. The writer must not be used afterwards.
func (w *Writer) Bytes() []byte {
	if w.buf == nil {
		w.buf = append(w.buf, '[')
	}
	out := append(w.buf, ']')
	w.buf = nil
	return out
}

// AppendRecord appends the JSON serialization of r to b.
func AppendRecord(b []byte, r Record) []byte {
	b = append(b, `{"type": `...)
	b = strconv.AppendInt(b, int64(r.Type), 10)
	b = append(b, `, "lineNumber": `...)
	if r.LineNumber > 0 {
		b = strconv.AppendInt(b, int64(r.LineNumber), 10)
	} else {
		b = append(b, "null"...)
	}
	b = append(b, `, "moveInfo": `...)
	if m := r.Move; m != nil {
		b = append(b, `{"id": "`...)
		b = AppendEscaped(b, m.ID)
		b = append(b, `", "linkId": "`...)
		b = AppendEscaped(b, m.LinkID)
		b = append(b, `", "linkDirection": `...)
		b = strconv.AppendInt(b, int64(m.Direction), 10)
		b = append(b, '}')
	} else {
		b = append(b, "null"...)
	}
	b = append(b, `, "text": "`...)
	b = AppendEscaped(b, r.Text)
	b = append(b, `", "highlightRanges": [`...)
	for i, rg := range r.Ranges {
		if i > 0 {
			b = append(b, ',')
		}
		b = append(b, `{"start": `...)
		b = strconv.AppendInt(b, int64(rg.Start), 10)
		b = append(b, `, "length": `...)
		b = strconv.AppendInt(b, int64(rg.Length), 10)
		b = append(b, `, "type": `...)
		b = strconv.AppendInt(b, int64(rg.Type), 10)
		b = append(b, '}')
	}
	b = append(b, "]}"...)
	return b
}

const hex = "0123456789abcdef"

// AppendEscaped appends s to b, escaped for use inside a JSON string.
//
// Quotes, backslashes and control characters are escaped, every other byte is copied unchanged.
// In particular, invalid UTF-8 is passed through as is.
func AppendEscaped(b []byte, s string) []byte {
	for i := 0; i < len(s); i++ {
		c := s[i]
		switch c {
		case '"':
			b = append(b, `\"`...)
		case '\\':
			b = append(b, `\\`...)
		case '\b':
			b = append(b, `\b`...)
		case '\f':
			b = append(b, `\f`...)
		case '\n':
			b = append(b, `\n`...)
		case '\r':
			b = append(b, `\r`...)
		case '\t':
			b = append(b, `\t`...)
		default:
			if c < 0x20 {
				b = append(b, '\\', 'u', '0', '0', hex[c>>4], hex[c&0xf])
			} else {
				b = append(b, c)
			}
		}
	}
	return b
}
