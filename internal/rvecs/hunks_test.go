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

package rvecs

import (
	"slices"
	"testing"

	"github.com/google/go-cmp/cmp"
)

// vectors builds result vectors from a string of 'M'atch, 'D'elete and 'I'nsert markers.
func vectors(ops string) (rx, ry []bool) {
	for _, c := range ops {
		switch c {
		case 'M':
			rx = append(rx, false)
			ry = append(ry, false)
		case 'D':
			rx = append(rx, true)
		case 'I':
			ry = append(ry, true)
		}
	}
	return append(rx, false), append(ry, false)
}

func TestHunks(t *testing.T) {
	tests := []struct {
		name    string
		ops     string
		context int
		want    []Hunk
	}{
		{
			name:    "identical",
			ops:     "MMMM",
			context: 1,
			want:    nil,
		},
		{
			name:    "single-change",
			ops:     "MMMDIMMM",
			context: 1,
			want:    []Hunk{{S0: 2, S1: 5, T0: 2, T1: 5}},
		},
		{
			name:    "no-context",
			ops:     "MMMDIMMM",
			context: 0,
			want:    []Hunk{{S0: 3, S1: 4, T0: 3, T1: 4}},
		},
		{
			name:    "merged",
			ops:     "DMMI",
			context: 1,
			want:    []Hunk{{S0: 0, S1: 3, T0: 0, T1: 3}},
		},
		{
			name:    "separate",
			ops:     "DMMMI",
			context: 1,
			want: []Hunk{
				{S0: 0, S1: 2, T0: 0, T1: 1},
				{S0: 3, S1: 4, T0: 2, T1: 4},
			},
		},
		{
			name:    "context-larger-than-input",
			ops:     "MDM",
			context: 10,
			want:    []Hunk{{S0: 0, S1: 3, T0: 0, T1: 2}},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rx, ry := vectors(tt.ops)
			got := slices.Collect(Hunks(rx, ry, tt.context))
			if diff := cmp.Diff(tt.want, got); diff != "" {
				t.Errorf("Hunks(...) differs [-want,+got]:\n%s", diff)
			}
		})
	}
}

func TestMake(t *testing.T) {
	rx, ry := Make([]int{1, 2}, []int{3})
	if len(rx) != 3 || len(ry) != 2 || slices.Contains(rx, true) || slices.Contains(ry, true) {
		t.Errorf("Make(...) = %v, %v, want all false with a trailing sentinel", rx, ry)
	}
}
