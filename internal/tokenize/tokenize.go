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

// Package tokenize splits lines into word tokens for word level diffs.
//
// Word boundaries follow the Unicode word segmentation rules (UAX #29), which don't depend on the
// locale. Runs of whitespace and punctuation characters are tokens of their own, so the tokens of
// a line always cover the line exactly once.
package tokenize

import "github.com/clipperhouse/uax29/v2/words"

// Token is a view of a contiguous run of bytes in a line.
type Token struct {
	Start int // Byte offset of the token in the line.
	Len   int // Length of the token in bytes.
}

// End returns the offset of the first byte after the token.
func (t Token) End() int { return t.Start + t.Len }

// Text returns the text of the token. line must be the line the token was created from.
func (t Token) Text(line string) string { return line[t.Start : t.Start+t.Len] }

// Words splits line into tokens. An empty line yields no tokens.
func Words(line string) []Token {
	if line == "" {
		return nil
	}
	var toks []Token
	iter := words.FromString(line)
	for iter.Next() {
		toks = append(toks, Token{Start: iter.Start(), Len: iter.End() - iter.Start()})
	}
	return toks
}

// Texts returns the text of every token in toks.
func Texts(line string, toks []Token) []string {
	out := make([]string, len(toks))
	for i, tok := range toks {
		out[i] = tok.Text(line)
	}
	return out
}
