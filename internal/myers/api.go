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

package myers

import (
	"znkr.io/inlinediff/internal/config"
	"znkr.io/inlinediff/internal/rvecs"
)

// Diff compares the contents of x and y and returns the result vectors describing the changes
// necessary to convert from one to the other.
func Diff[T comparable](x, y []T, cfg config.Config) (rx, ry []bool) {
	rx, ry = rvecs.Make(x, y)
	eq := func(a, b T) bool { return a == b }

	smin, smax, tmin, tmax := changeBounds(x, y, eq)
	if trivial(rx, ry, smin, smax, tmin, tmax, cfg) {
		return rx, ry
	}

	// Reduce the problem size by dropping every element that only appears on one side, those are
	// always deletions or insertions respectively. The remaining elements are replaced by integer
	// IDs, which are cheaper to compare than T.
	ids := make(map[T]int, smax-smin)
	for _, e := range x[smin:smax] {
		if _, ok := ids[e]; !ok {
			ids[e] = -(len(ids) + 1) // negative: seen in x only
		}
	}
	for _, e := range y[tmin:tmax] {
		if id := ids[e]; id < 0 {
			ids[e] = -id
		}
	}
	var x0, y0, xidx, yidx []int
	for s := smin; s < smax; s++ {
		if id := ids[x[s]]; id > 0 {
			x0 = append(x0, id)
			xidx = append(xidx, s)
		} else {
			rx[s] = true
		}
	}
	for t := tmin; t < tmax; t++ {
		if id := ids[y[t]]; id > 0 {
			y0 = append(y0, id)
			yidx = append(yidx, t)
		} else {
			ry[t] = true
		}
	}

	var m myers[int]
	m.xidx, m.yidx = xidx, yidx
	m.rx, m.ry = rx, ry
	m.init(x0, y0, func(a, b int) bool { return a == b }, cfg.CostLimit)
	m.compare(0, len(x0), 0, len(y0), cfg.Optimal)
	return rx, ry
}

// DiffFunc compares the contents of x and y using eq and returns the result vectors describing
// the changes necessary to convert from one to the other.
//
// Note that this function has generally worse performance than [Diff] for diffs with many changes.
func DiffFunc[T any](x, y []T, eq func(a, b T) bool, cfg config.Config) (rx, ry []bool) {
	rx, ry = rvecs.Make(x, y)

	smin, smax, tmin, tmax := changeBounds(x, y, eq)
	if trivial(rx, ry, smin, smax, tmin, tmax, cfg) {
		return rx, ry
	}

	var m myers[T]
	m.rx, m.ry = rx, ry
	m.init(x, y, eq, cfg.CostLimit)
	m.compare(smin, smax, tmin, tmax, cfg.Optimal)
	return rx, ry
}

// changeBounds returns the bounds of the changed portion of the inputs.
func changeBounds[T any](x, y []T, eq func(a, b T) bool) (smin, smax, tmin, tmax int) {
	smax, tmax = len(x), len(y)
	for smin < smax && tmin < tmax && eq(x[smin], y[tmin]) {
		smin++
		tmin++
	}
	for smax > smin && tmax > tmin && eq(x[smax-1], y[tmax-1]) {
		smax--
		tmax--
	}
	return
}

// trivial handles inputs that don't need a search: one side of the changed portion is empty or
// the changed portion is above the configured complexity. It returns true if the result vectors
// are complete.
func trivial(rx, ry []bool, smin, smax, tmin, tmax int, cfg config.Config) bool {
	n, m := smax-smin, tmax-tmin
	if n > 0 && m > 0 && (cfg.Complexity <= 0 || n*m <= cfg.Complexity) {
		return false
	}
	// Greedy fallback: everything between the common prefix and suffix is replaced.
	for s := smin; s < smax; s++ {
		rx[s] = true
	}
	for t := tmin; t < tmax; t++ {
		ry[t] = true
	}
	return true
}
