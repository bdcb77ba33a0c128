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

package inlinediff

import (
	"bytes"
	"flag"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"golang.org/x/tools/txtar"
	"znkr.io/inlinediff/seqdiff"
)

var update = flag.Bool("update", false, "update golden files")

type test struct {
	name     string
	filename string
	comment  []byte
	x, y     []byte
	subtests []subtest
}

type subtest struct {
	name    string
	pragmas []byte
	opts    []Option
	want    []byte
}

func TestGolden(t *testing.T) {
	for _, tt := range parseTests(t) {
		t.Run(tt.name, func(t *testing.T) {
			x, y := lines(tt.x), lines(tt.y)
			for sti, st := range tt.subtests {
				t.Run(st.name, func(t *testing.T) {
					got := append(JSON(x, y, st.opts...), '\n')
					if diff := cmp.Diff(string(st.want), string(got)); diff != "" {
						t.Errorf("JSON(...) result is different [-want,+got]:\n%s", diff)
					}
					if *update {
						tt.subtests[sti].want = got
					}
				})
			}

			// Run in a cleanup to make sure it runs after the subtests have finished.
			t.Cleanup(func() {
				if !*update {
					return
				}
				ar := &txtar.Archive{
					Comment: tt.comment,
					Files: []txtar.File{
						{Name: "x", Data: tt.x},
						{Name: "y", Data: tt.y},
					},
				}
				for _, st := range tt.subtests {
					data := append(bytes.Clone(st.pragmas), st.want...)
					ar.Files = append(ar.Files, txtar.File{Name: "json", Data: data})
				}
				if err := os.WriteFile(tt.filename, txtar.Format(ar), 0o644); err != nil {
					t.Fatalf("error writing golden file: %v", err)
				}
			})
		})
	}
}

// lines splits a file into lines without line terminators.
func lines(data []byte) []string {
	if len(data) == 0 {
		return nil
	}
	return strings.Split(strings.TrimSuffix(string(data), "\n"), "\n")
}

func parseTests(t testing.TB) []test {
	t.Helper()
	testFiles, err := filepath.Glob("testdata/*.test")
	if err != nil {
		t.Fatalf("Failed to read testdata: %v", err)
	}
	var tests []test
	for _, filename := range testFiles {
		ar, err := txtar.ParseFile(filename)
		if err != nil {
			t.Fatalf("failed to parse test case: %v", err)
		}
		test := test{
			name:     strings.TrimPrefix(filename, "testdata/"),
			filename: filename,
			comment:  ar.Comment,
		}

		for _, f := range ar.Files {
			switch f.Name {
			case "x":
				test.x = f.Data
			case "y":
				test.y = f.Data
			case "json":
				test.subtests = append(test.subtests, parseSubtest(t, f.Data))
			default:
				t.Fatalf("failed to parse test case %s: unknown section %q", filename, f.Name)
			}
		}
		tests = append(tests, test)
	}
	return tests
}

func parseSubtest(t testing.TB, data []byte) subtest {
	t.Helper()
	var st subtest
	var name []string
	i := 0
	for ; i < len(data); i++ {
		if data[i] != '#' {
			break
		}
		i++
		eol := i + bytes.IndexByte(data[i:], '\n')
		if eol < i {
			t.Fatal("failed to parse test case: missing newline after pragma line")
		}
		k, v, found := bytes.Cut(data[i:eol], []byte{':'})
		if !found {
			t.Fatal("failed to parse test case: missing ':' in pragma line")
		}
		switch k, v := strings.TrimSpace(string(k)), strings.TrimSpace(string(v)); k {
		case "context":
			n, err := strconv.Atoi(v)
			if err != nil {
				t.Fatalf("invalid value for context: %q", v)
			}
			st.opts = append(st.opts, Context(n))
			name = append(name, k+"="+v)
		case "moves":
			enabled, err := strconv.ParseBool(v)
			if err != nil {
				t.Fatalf("invalid value for moves: %q", v)
			}
			st.opts = append(st.opts, Moves(enabled))
			name = append(name, k+"="+v)
		case "optimal":
			optimal, err := strconv.ParseBool(v)
			if err != nil {
				t.Fatalf("invalid value for optimal: %q", v)
			}
			if optimal {
				st.opts = append(st.opts, seqdiff.Optimal())
			}
			name = append(name, k+"="+v)
		default:
			t.Fatalf("unknown pragma: %q", k)
		}
		i = eol
	}
	st.pragmas = data[:i]
	st.want = data[i:]
	st.name = strings.Join(name, ",")
	if st.name == "" {
		st.name = "default"
	}
	return st
}

func BenchmarkJSON(b *testing.B) {
	for _, tt := range parseTests(b) {
		b.Run(tt.name, func(b *testing.B) {
			x, y := lines(tt.x), lines(tt.y)
			for _, st := range tt.subtests {
				b.Run(st.name, func(b *testing.B) {
					b.ReportAllocs()
					for b.Loop() {
						_ = JSON(x, y, st.opts...)
					}
				})
			}
		})
	}
}
