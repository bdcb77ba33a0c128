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

package jsonout

import (
	"encoding/json"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestAppendEscaped(t *testing.T) {
	tests := []struct {
		in, want string
	}{
		{"", ""},
		{"plain text", "plain text"},
		{`say "hi"`, `say \"hi\"`},
		{`C:\path`, `C:\\path`},
		{"\b\f\n\r\t", `\b\f\n\r\t`},
		{"\x00\x01\x1a\x1f", `\u0000\u0001\u001a\u001f`},
		{"\x7f", "\x7f"},
		{"</script>&", "</script>&"},
		{"Grüße", "Grüße"},
		{"\xff\xfe", "\xff\xfe"},
	}

	for _, tt := range tests {
		got := string(AppendEscaped(nil, tt.in))
		if got != tt.want {
			t.Errorf("AppendEscaped(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestAppendEscaped_roundTrip(t *testing.T) {
	var sb strings.Builder
	for c := range 0x80 {
		sb.WriteByte(byte(c))
	}
	sb.WriteString("Grüße, 世界")
	in := sb.String()

	b := append([]byte{'"'}, AppendEscaped(nil, in)...)
	b = append(b, '"')
	var got string
	if err := json.Unmarshal(b, &got); err != nil {
		t.Fatalf("escaped string isn't valid JSON: %v\n%s", err, b)
	}
	if diff := cmp.Diff(in, got); diff != "" {
		t.Errorf("round trip differs [-want,+got]:\n%s", diff)
	}
}

func TestAppendRecord(t *testing.T) {
	tests := []struct {
		name string
		rec  Record
		want string
	}{
		{
			name: "context",
			rec:  Record{Type: Context, LineNumber: 7, Text: "foo"},
			want: `{"type": 0, "lineNumber": 7, "moveInfo": null, "text": "foo", "highlightRanges": []}`,
		},
		{
			name: "deletion",
			rec:  Record{Type: Change, Text: "a\tb", Ranges: []Range{{Start: 0, Length: 3, Type: Delete}}},
			want: `{"type": 3, "lineNumber": null, "moveInfo": null, "text": "a\tb", "highlightRanges": [{"start": 0, "length": 3, "type": 1}]}`,
		},
		{
			name: "change",
			rec: Record{
				Type:       Change,
				LineNumber: 1,
				Text:       "the catdog sat",
				Ranges: []Range{
					{Start: 4, Length: 3, Type: Delete},
					{Start: 7, Length: 3, Type: Add},
				},
			},
			want: `{"type": 3, "lineNumber": 1, "moveInfo": null, "text": "the catdog sat", "highlightRanges": [{"start": 4, "length": 3, "type": 1},{"start": 7, "length": 3, "type": 0}]}`,
		},
		{
			name: "move",
			rec: Record{
				Type:       MoveDestination,
				LineNumber: 2,
				Move:       &MoveInfo{ID: "movedpara_1_2_lhs", LinkID: "movedpara_1_2_rhs", Direction: Up},
				Text:       "alpha",
			},
			want: `{"type": 5, "lineNumber": 2, "moveInfo": {"id": "movedpara_1_2_lhs", "linkId": "movedpara_1_2_rhs", "linkDirection": 1}, "text": "alpha", "highlightRanges": []}`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := string(AppendRecord(nil, tt.rec))
			if diff := cmp.Diff(tt.want, got); diff != "" {
				t.Errorf("AppendRecord(...) differs [-want,+got]:\n%s", diff)
			}
			if !json.Valid([]byte(got)) {
				t.Errorf("AppendRecord(...) is not valid JSON: %s", got)
			}
		})
	}
}

func TestWriter(t *testing.T) {
	var w Writer
	if got := string(w.Bytes()); got != "[]" {
		t.Errorf("empty Writer.Bytes() = %q, want %q", got, "[]")
	}

	w = Writer{}
	w.Write(Record{Type: Context, LineNumber: 1, Text: "a"})
	w.Write(Record{Type: Context, LineNumber: 2, Text: "b"})
	want := `[{"type": 0, "lineNumber": 1, "moveInfo": null, "text": "a", "highlightRanges": []},` +
		`{"type": 0, "lineNumber": 2, "moveInfo": null, "text": "b", "highlightRanges": []}]`
	if diff := cmp.Diff(want, string(w.Bytes())); diff != "" {
		t.Errorf("Writer.Bytes() differs [-want,+got]:\n%s", diff)
	}
}
