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

// gitdiff is a tool that can be used with git using GIT_EXTERNAL_DIFF.
//
// It prints a git style header followed by the inline diff JSON of the file on a single line:
//
//	GIT_EXTERNAL_DIFF=gitdiff git diff HEAD~1
package main

import (
	"bufio"
	"fmt"
	"io"
	"os"

	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
	"znkr.io/inlinediff"
	"znkr.io/inlinediff/textdiff"
)

func main() {
	if err := run(os.Args, os.Stdout); err != nil {
		log.WithError(err).Error("gitdiff failed")
		os.Exit(1)
	}
}

func run(args []string, stdout io.Writer) error {
	if len(args) < 8 {
		return errors.Errorf("expected at least 8 args, got %v: %v", len(args), args)
	}

	path, oldFile, oldHex, _, newFile, newHex, newMode := args[1], args[2], args[3], args[4], args[5], args[6], args[7]

	old, err := readFile(oldFile)
	if err != nil {
		return errors.Wrap(err, "reading old file")
	}
	new, err := readFile(newFile)
	if err != nil {
		return errors.Wrap(err, "reading new file")
	}

	out := textdiff.JSONBytes(old, new, inlinediff.Context(3))

	w := bufio.NewWriter(stdout)
	fmt.Fprintf(w, "diff --git a/%s b/%s\n", path, path)
	fmt.Fprintf(w, "index %s..%s %s\n", short(oldHex), short(newHex), newMode)
	w.Write(out)
	w.WriteByte('\n')
	return w.Flush()
}

func readFile(name string) ([]byte, error) {
	if name == "/dev/null" {
		return nil, nil
	}
	return os.ReadFile(name)
}

func short(hex string) string {
	return hex[:min(len(hex), 10)]
}
