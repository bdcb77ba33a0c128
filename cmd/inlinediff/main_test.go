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

package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

const (
	contextA = `{"type": 0, "lineNumber": 1, "moveInfo": null, "text": "a", "highlightRanges": []}`
	contextB = `{"type": 0, "lineNumber": 2, "moveInfo": null, "text": "b", "highlightRanges": []}`
	deleteC  = `{"type": 3, "lineNumber": null, "moveInfo": null, "text": "c", "highlightRanges": [{"start": 0, "length": 1, "type": 1}]}`
	addD     = `{"type": 3, "lineNumber": 3, "moveInfo": null, "text": "d", "highlightRanges": [{"start": 0, "length": 1, "type": 0}]}`
)

func writeFiles(t *testing.T, files map[string]string) string {
	t.Helper()
	dir := t.TempDir()
	for name, content := range files {
		require.NoError(t, os.WriteFile(filepath.Join(dir, name), []byte(content), 0o644))
	}
	return dir
}

func runCLI(t *testing.T, dir string, args ...string) (string, error) {
	t.Helper()
	for i, arg := range args {
		if !strings.HasPrefix(arg, "-") {
			args[i] = filepath.Join(dir, arg)
		}
	}
	var out bytes.Buffer
	err := run(args, &out)
	return out.String(), err
}

func TestRun(t *testing.T) {
	dir := writeFiles(t, map[string]string{
		"old":   "a\nb\nc\n",
		"new":   "a\nb\nd\n",
		"empty": "",
		"ctx0":  "context = 0\n",
		"moves": "moves = false\nmove_similarity = 0.5\nchange_similarity = 0.9\n",
	})

	tests := []struct {
		name string
		args []string
		want string
	}{
		{
			name: "single-pair",
			args: []string{"old", "new"},
			want: "[" + contextA + "," + contextB + "," + deleteC + "," + addD + "]\n",
		},
		{
			name: "pairs-in-order",
			args: []string{"old", "new", "empty", "empty", "old", "old"},
			want: "[" + contextA + "," + contextB + "," + deleteC + "," + addD + "]\n" +
				"[]\n" +
				"[" + contextA + "," + contextB + "," + `{"type": 0, "lineNumber": 3, "moveInfo": null, "text": "c", "highlightRanges": []}` + "]\n",
		},
		{
			name: "context-flag",
			args: []string{"-context=0", "old", "new"},
			want: "[" + deleteC + "," + addD + "]\n",
		},
		{
			name: "config-file",
			args: []string{"-config", "ctx0", "old", "new"},
			want: "[" + deleteC + "," + addD + "]\n",
		},
		{
			name: "flag-overrides-config-file",
			args: []string{"-config", "ctx0", "-context=-1", "old", "new"},
			want: "[" + contextA + "," + contextB + "," + deleteC + "," + addD + "]\n",
		},
		{
			name: "config-file-moves",
			args: []string{"-config", "moves", "-parallel=1", "-optimal", "old", "new"},
			want: "[" + contextA + "," + contextB + "," + deleteC + "," + addD + "]\n",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := runCLI(t, dir, tt.args...)
			require.NoError(t, err)
			require.Equal(t, tt.want, got)
		})
	}
}

func TestRun_errors(t *testing.T) {
	dir := writeFiles(t, map[string]string{
		"old":        "a\n",
		"unknown":    "colour = true\n",
		"similarity": "move_similarity = 1.5\n",
		"invalid":    "context = [\n",
	})

	tests := []struct {
		name string
		args []string
		want string
	}{
		{
			name: "no-arguments",
			args: nil,
			want: "expected pairs of files, got 0 arguments",
		},
		{
			name: "odd-arguments",
			args: []string{"old", "old", "old"},
			want: "expected pairs of files, got 3 arguments",
		},
		{
			name: "missing-file",
			args: []string{"old", "missing"},
			want: "reading new file",
		},
		{
			name: "unknown-config-key",
			args: []string{"-config", "unknown", "old", "old"},
			want: "unknown keys: colour",
		},
		{
			name: "invalid-similarity",
			args: []string{"-config", "similarity", "old", "old"},
			want: "move_similarity must be in [0, 1]",
		},
		{
			name: "invalid-toml",
			args: []string{"-config", "invalid", "old", "old"},
			want: "decoding config",
		},
		{
			name: "unknown-flag",
			args: []string{"-colour", "old", "old"},
			want: "flag provided but not defined",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := runCLI(t, dir, tt.args...)
			require.Error(t, err)
			require.Contains(t, err.Error(), tt.want)
		})
	}
}

func TestLoadConfig(t *testing.T) {
	dir := writeFiles(t, map[string]string{
		"full.toml": `
context = 3
optimal = true
cost_limit = 100
word_complexity_limit = 1000
moves = true
move_similarity = 0.8
max_move_candidates = 10
change_similarity = 0.3
`,
	})
	fc, err := loadConfig(filepath.Join(dir, "full.toml"))
	require.NoError(t, err)
	require.NotNil(t, fc.Context)
	require.Equal(t, 3, *fc.Context)
	require.True(t, fc.Optimal)
	require.Equal(t, 100, fc.CostLimit)
	require.Equal(t, 1000, *fc.WordComplexityLimit)
	require.True(t, *fc.Moves)
	require.InDelta(t, 0.8, *fc.MoveSimilarity, 1e-9)
	require.Equal(t, 10, *fc.MaxMoveCandidates)
	require.InDelta(t, 0.3, *fc.ChangeSimilarity, 1e-9)
	require.Len(t, fc.options(), 8)
}
