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

// Package inlinediff compares two versions of a document line by line and word by word and
// serializes the difference as JSON for inline diff renderers.
//
// The output is a JSON array with one object per visible line:
//
//	[{"type": 0, "lineNumber": 1, "moveInfo": null, "text": "unchanged", "highlightRanges": []},
//	 {"type": 3, "lineNumber": 2, "moveInfo": null, "text": "the catdog sat", "highlightRanges": [{"start": 4, "length": 3, "type": 1},{"start": 7, "length": 3, "type": 0}]}]
//
// The integer values used in the output are stable:
//
//	type:           0 context, 3 change, 4 move source, 5 move destination (1 and 2 are reserved)
//	highlight type: 0 add, 1 delete
//	linkDirection:  0 down, 1 up
//
// Changed lines are diffed word by word. Text of deleted words is rendered in front of the text
// of the inserted words that replace them. Highlight ranges count bytes of the unescaped text of
// the record they belong to. Pure additions and deletions are reported as changes with a single
// range that covers the whole line; deleted lines have no line number. An empty added or deleted
// line is rendered as a single space with a one byte range.
//
// Lines that were deleted in one place and added in another are reported as moves: The source
// (without line number) and the destination share a moveInfo object that holds the anchor of the
// source (id), the anchor of the destination (linkId), and the direction in which the destination
// lies. Words that differ between the source and the destination are highlighted on the
// respective side. Unlike wikidiff2, a destination doesn't repeat the words that were deleted
// from the source, those only appear on the source.
package inlinediff
