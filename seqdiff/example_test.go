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

package seqdiff_test

import (
	"fmt"
	"strings"

	"znkr.io/inlinediff/seqdiff"
)

func ExampleDiff() {
	x := strings.Fields("the quick brown fox")
	y := strings.Fields("the slow brown dog")
	for _, op := range seqdiff.Diff(x, y) {
		fmt.Println(op.Kind, x[op.PosX:op.EndX], y[op.PosY:op.EndY])
	}
	// Output:
	// Copy [the] [the]
	// Change [quick] [slow]
	// Copy [brown] [brown]
	// Change [fox] [dog]
}

func ExampleDiffFunc() {
	x := []string{"Alpha", "beta", "Gamma"}
	y := []string{"alpha", "Gamma", "delta"}
	ops := seqdiff.DiffFunc(x, y, strings.EqualFold)
	for _, op := range ops {
		fmt.Println(op.Kind, x[op.PosX:op.EndX], y[op.PosY:op.EndY])
	}
	// Output:
	// Copy [Alpha] [alpha]
	// Delete [beta] []
	// Copy [Gamma] [Gamma]
	// Add [] [delta]
}
