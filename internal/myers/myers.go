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

// Package myers contains an implementation of Myers' algorithm ("An O(ND) Difference Algorithm
// and Its Variations", 1986) using the linear space refinement from section 4.2.
//
// The search is bounded by the TOO_EXPENSIVE heuristic: once the edit cost of the middle snake
// search exceeds a cost limit, the furthest reaching path found so far is accepted as split point.
// This trades optimality for a runtime of roughly O(N^1.5 log N) on inputs with many differences.
// Inputs above a configurable complexity (len(x)*len(y)) skip the search entirely and use a greedy
// prefix/suffix alignment.
//
// When several alignments of the same cost exist, deletions are preferred over insertions. Both
// the forward and the backward search visit diagonals with more deletions first.
package myers

import "math"

type myers[T any] struct {
	x, y []T
	eq   func(a, b T) bool

	// v-arrays for the forward and backward search. vf[v0+k] holds the s-coordinate of the
	// furthest reaching path on diagonal k, the t-coordinate follows from t = s - k.
	vf, vb []int
	v0     int

	costLimit int

	// Mapping from s, t to positions in the result vectors.
	xidx, yidx []int

	// Result vectors.
	rx, ry []bool
}

func (m *myers[T]) init(x, y []T, eq func(a, b T) bool, costLimit int) {
	diagonals := len(x) + len(y)
	vlen := 2*diagonals + 3 // middle diagonal plus one border on each side
	buf := make([]int, 2*vlen)

	m.x, m.y, m.eq = x, y, eq
	m.vf = buf[:vlen]
	m.vb = buf[vlen:]
	m.v0 = diagonals + 1

	if costLimit <= 0 {
		// Approximately the square root of the number of diagonals, but at least minCostLimit.
		costLimit = 1
		for i := diagonals; i != 0; i >>= 2 {
			costLimit <<= 1
		}
		costLimit = max(minCostLimit, costLimit)
	}
	m.costLimit = costLimit

	if m.xidx == nil {
		m.xidx = identity(len(x))
	}
	if m.yidx == nil {
		m.yidx = identity(len(y))
	}
}

func identity(n int) []int {
	idx := make([]int, n)
	for i := range idx {
		idx[i] = i
	}
	return idx
}

// compare marks all edits necessary to transform x[smin:smax] into y[tmin:tmax].
func (m *myers[T]) compare(smin, smax, tmin, tmax int, optimal bool) {
	x, y, eq := m.x, m.y, m.eq
	for smin < smax && tmin < tmax && eq(x[smin], y[tmin]) {
		smin++
		tmin++
	}
	for smax > smin && tmax > tmin && eq(x[smax-1], y[tmax-1]) {
		smax--
		tmax--
	}

	switch {
	case smin == smax:
		for t := tmin; t < tmax; t++ {
			m.ry[m.yidx[t]] = true
		}
	case tmin == tmax:
		for s := smin; s < smax; s++ {
			m.rx[m.xidx[s]] = true
		}
	default:
		// The middle snake x[s0:s1] == y[t0:t1] divides the problem into two smaller ones.
		s0, s1, t0, t1, opt0, opt1 := m.split(smin, smax, tmin, tmax, optimal)
		m.compare(smin, s0, tmin, t0, opt0)
		m.compare(s1, smax, t1, tmax, opt1)
	}
}

// split finds a, possibly empty, middle snake on an optimal path from (smin, tmin) to
// (smax, tmax), or a good-enough snake if the cost limit is exceeded.
//
// x[smin:smax] and y[tmin:tmax] must not have a common prefix or suffix and must not both be
// empty.
func (m *myers[T]) split(smin, smax, tmin, tmax int, optimal bool) (s0, s1, t0, t1 int, opt0, opt1 bool) {
	x, y, eq := m.x, m.y, m.eq
	vf, vb, v0 := m.vf, m.vb, m.v0

	// Valid diagonals. Both searches use the same numbering k = s - t.
	kmin, kmax := smin-tmax, smax-tmin
	fmid, bmid := smin-tmin, smax-tmax
	fmin, fmax := fmid, fmid
	bmin, bmax := bmid, bmid

	// The paths meet during the forward search if the length difference is odd and during the
	// backward search otherwise.
	odd := (fmid-bmid)%2 != 0

	vf[v0+fmid] = smin
	vb[v0+bmid] = smax

	for d := 1; ; d++ {
		// Widen the diagonal range by one in each direction without leaving the edit grid. The
		// values just outside the range act as borders.
		if fmin > kmin {
			fmin--
			vf[v0+fmin-1] = math.MinInt
		} else {
			fmin++
		}
		if fmax < kmax {
			fmax++
			vf[v0+fmax+1] = math.MinInt
		} else {
			fmax--
		}
		for k := fmax; k >= fmin; k -= 2 {
			k0 := v0 + k
			var s int
			if vf[k0-1] < vf[k0+1] {
				s = vf[k0+1] // insertion
			} else {
				s = vf[k0-1] + 1 // deletion
			}
			t := s - k
			ss, ts := s, t
			for s < smax && t < tmax && eq(x[s], y[t]) {
				s++
				t++
			}
			vf[k0] = s
			if odd && bmin <= k && k <= bmax && s >= vb[k0] {
				return ss, s, ts, t, true, true
			}
		}

		if bmin > kmin {
			bmin--
			vb[v0+bmin-1] = math.MaxInt
		} else {
			bmin++
		}
		if bmax < kmax {
			bmax++
			vb[v0+bmax+1] = math.MaxInt
		} else {
			bmax--
		}
		for k := bmax; k >= bmin; k -= 2 {
			k0 := v0 + k
			var s int
			if vb[k0-1] < vb[k0+1] {
				s = vb[k0-1] // insertion
			} else {
				s = vb[k0+1] - 1 // deletion
			}
			t := s - k
			se, te := s, t
			for s > smin && t > tmin && eq(x[s-1], y[t-1]) {
				s--
				t--
			}
			vb[k0] = s
			if !odd && fmin <= k && k <= fmax && s <= vf[k0] {
				return s, se, t, te, true, true
			}
		}

		if optimal || d < m.costLimit {
			continue
		}

		// TOO_EXPENSIVE: pick the forward or backward endpoint that made the most progress and
		// split at the snake leading to it. Only snakes inside the edit grid qualify and the
		// endpoint must not be the far corner, every split then reduces the problem.
		fbest, fk := math.MinInt, 0
		for k := fmax; k >= fmin; k -= 2 {
			s := vf[v0+k]
			t := s - k
			if smin <= s && s < smax && tmin <= t && t < tmax && s+t > fbest {
				if s0, t0, _, _ := m.forwardSnake(k); s0 >= smin && t0 >= tmin {
					fbest, fk = s+t, k
				}
			}
		}
		bbest, bk := math.MaxInt, 0
		for k := bmax; k >= bmin; k -= 2 {
			s := vb[v0+k]
			t := s - k
			if smin <= s && s < smax && tmin <= t && t < tmax && s+t < bbest {
				if _, _, s1, t1 := m.backwardSnake(k); s1 <= smax && t1 <= tmax {
					bbest, bk = s+t, k
				}
			}
		}
		switch {
		case fbest != math.MinInt && (bbest == math.MaxInt || fbest-(smin+tmin) > (smax+tmax)-bbest):
			s0, t0, s1, t1 = m.forwardSnake(fk)
			return s0, s1, t0, t1, true, false
		case bbest != math.MaxInt:
			s0, t0, s1, t1 = m.backwardSnake(bk)
			return s0, s1, t0, t1, false, true
		}
		// No usable endpoint yet, keep searching for the optimal split.
	}
}

// forwardSnake returns the start and end of the diagonal run that ends in the furthest reaching
// forward path on diagonal k.
func (m *myers[T]) forwardSnake(k int) (s0, t0, s1, t1 int) {
	vf, v0 := m.vf, m.v0
	k0 := v0 + k
	s1 = vf[k0]
	t1 = s1 - k
	if vf[k0-1] < vf[k0+1] {
		s0 = vf[k0+1]
	} else {
		s0 = vf[k0-1] + 1
	}
	return s0, s0 - k, s1, t1
}

// backwardSnake is the analogue of forwardSnake for the backward search.
func (m *myers[T]) backwardSnake(k int) (s0, t0, s1, t1 int) {
	vb, v0 := m.vb, m.v0
	k0 := v0 + k
	s0 = vb[k0]
	t0 = s0 - k
	if vb[k0-1] < vb[k0+1] {
		s1 = vb[k0-1]
	} else {
		s1 = vb[k0+1] - 1
	}
	return s0, t0, s1, s1 - k
}
