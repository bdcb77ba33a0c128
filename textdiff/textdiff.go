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

// Package textdiff provides functions to compare text line by line and render the result in the
// inline diff JSON format.
package textdiff

import (
	"strings"
	"unsafe"

	"znkr.io/inlinediff"
)

// Lines splits text into lines. Lines are terminated by '\n', the terminator is not part of the
// line. A final '\n' doesn't start a new line, so "a\nb\n" and "a\nb" both have two lines.
func Lines(text string) []string {
	if text == "" {
		return nil
	}
	return strings.Split(strings.TrimSuffix(text, "\n"), "\n")
}

// JSON compares the lines in x and y and returns the difference in the inline diff JSON format.
//
// All options of [inlinediff.JSON] are supported.
func JSON(x, y string, opts ...inlinediff.Option) string {
	return inlinediff.JSONString(Lines(x), Lines(y), opts...)
}

// JSONBytes is like [JSON] for byte slices.
func JSONBytes(x, y []byte, opts ...inlinediff.Option) []byte {
	// The lines are views into x and y, that's safe because neither the lines nor x and y are
	// modified or retained.
	xs := unsafe.String(unsafe.SliceData(x), len(x))
	ys := unsafe.String(unsafe.SliceData(y), len(y))
	return inlinediff.JSON(Lines(xs), Lines(ys), opts...)
}
