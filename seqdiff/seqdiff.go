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

// Package seqdiff compares two sequences of comparable elements and describes the difference as an
// ordered list of copy, delete, add, and change operations.
//
// The operations are consistent with a single left-to-right scan of both inputs: concatenating
// the x spans of all operations reproduces x and concatenating the y spans reproduces y.
//
// By default, the cost of the search is limited for large inputs with many differences. Use
// [Optimal] to always get a minimal diff, [CostLimit] to tune the limit, and [ComplexityLimit] to
// skip the search entirely for very large inputs.
package seqdiff

import (
	"znkr.io/inlinediff/internal/config"
	"znkr.io/inlinediff/internal/myers"
)

// Kind describes the kind of an operation.
//
//go:generate go tool golang.org/x/tools/cmd/stringer -type=Kind
type Kind int

const (
	Copy   Kind = iota // x[PosX:EndX] and y[PosY:EndY] are equal
	Delete             // x[PosX:EndX] is removed, the y span is empty
	Add                // y[PosY:EndY] is inserted, the x span is empty
	Change             // x[PosX:EndX] is replaced by y[PosY:EndY]
)

// Op describes a span of aligned elements.
type Op struct {
	Kind       Kind
	PosX, EndX int // Start and end position in x.
	PosY, EndY int // Start and end position in y.
}

// Diff compares the contents of x and y and returns the operations necessary to convert from one
// to the other.
//
// If x and y are both empty, the output has length zero.
//
// The following options are supported: [Optimal], [CostLimit], [ComplexityLimit]
func Diff[T comparable](x, y []T, opts ...Option) []Op {
	cfg := config.FromOptions(opts, config.Optimal|config.CostLimit|config.Complexity)
	rx, ry := myers.Diff(x, y, cfg)
	return FromVectors(rx, ry)
}

// DiffFunc compares the contents of x and y using the provided equality comparison and returns
// the operations necessary to convert from one to the other.
//
// The following options are supported: [Optimal], [CostLimit], [ComplexityLimit]
//
// Note that this function has generally worse performance than [Diff] for diffs with many changes.
func DiffFunc[T any](x, y []T, eq func(a, b T) bool, opts ...Option) []Op {
	cfg := config.FromOptions(opts, config.Optimal|config.CostLimit|config.Complexity)
	rx, ry := myers.DiffFunc(x, y, eq, cfg)
	return FromVectors(rx, ry)
}

// FromVectors groups result vectors into operations. A run of deletions that is directly followed
// by a run of insertions is reported as a single [Change].
func FromVectors(rx, ry []bool) []Op {
	var ops []Op
	n, m := len(rx)-1, len(ry)-1
	for s, t := 0, 0; s < n || t < m; {
		op := Op{PosX: s, PosY: t}
		switch {
		case rx[s] || ry[t]:
			for s < n && rx[s] {
				s++
			}
			for t < m && ry[t] {
				t++
			}
			switch {
			case s == op.PosX:
				op.Kind = Add
			case t == op.PosY:
				op.Kind = Delete
			default:
				op.Kind = Change
			}
		default:
			for s < n && t < m && !rx[s] && !ry[t] {
				s++
				t++
			}
			op.Kind = Copy
		}
		op.EndX, op.EndY = s, t
		ops = append(ops, op)
	}
	return ops
}
