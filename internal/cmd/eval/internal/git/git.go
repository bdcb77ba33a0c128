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

// Package git reads commits and file revisions from a local repository.
package git

import (
	"bufio"
	"io"
	"os"
	"os/exec"
	"strconv"
	"strings"
	"sync"

	"github.com/pkg/errors"
)

// NullID is the object id git uses for a file that doesn't exist.
const NullID = "0000000000000000000000000000000000000000"

// Repo is a repository opened for reading. It's safe for concurrent use.
type Repo struct {
	dir string

	mu  sync.Mutex // guards the cat-file process
	cmd *exec.Cmd
	in  io.WriteCloser
	out *bufio.Reader
}

// Open opens the repository in dir. The repository must be closed after use.
func Open(dir string) (*Repo, error) {
	if _, err := os.Stat(dir); err != nil {
		return nil, errors.Wrap(err, "opening repository")
	}
	cmd := exec.Command("git", "-C", dir, "cat-file", "--batch")
	in, err := cmd.StdinPipe()
	if err != nil {
		return nil, errors.Wrap(err, "connecting stdin")
	}
	out, err := cmd.StdoutPipe()
	if err != nil {
		return nil, errors.Wrap(err, "connecting stdout")
	}
	if err := cmd.Start(); err != nil {
		return nil, errors.Wrap(err, "starting git cat-file")
	}
	return &Repo{
		dir: dir,
		cmd: cmd,
		in:  in,
		out: bufio.NewReader(out),
	}, nil
}

// Close stops the background git process.
func (r *Repo) Close() error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if err := r.in.Close(); err != nil {
		return errors.Wrap(err, "closing stdin")
	}
	return errors.Wrap(r.cmd.Wait(), "waiting for git cat-file")
}

// RevList returns the ids of all non-merge commits reachable from HEAD.
func (r *Repo) RevList() ([]string, error) {
	out, err := git("-C", r.dir, "rev-list", "--no-merges", "HEAD")
	if err != nil {
		return nil, err
	}
	return strings.Fields(out), nil
}

// Change is a file modified by a commit.
type Change struct {
	Name  string
	OldID string // NullID for added files
	NewID string // NullID for deleted files
}

// DiffTree returns the files changed by a commit relative to its first parent.
func (r *Repo) DiffTree(commit string) ([]Change, error) {
	out, err := git("-C", r.dir, "diff-tree", "-r", "--no-commit-id", commit)
	if err != nil {
		return nil, err
	}
	var changes []Change
	for line := range strings.Lines(out) {
		line = strings.TrimSuffix(line, "\n")
		if line == "" {
			continue
		}
		if line[0] != ':' {
			return nil, errors.Errorf("diff-tree line not starting with ':': %q", line)
		}
		meta, name, ok := strings.Cut(line[1:], "\t")
		fields := strings.Fields(meta)
		if !ok || len(fields) < 4 {
			return nil, errors.Errorf("malformed diff-tree line: %q", line)
		}
		if fields[0] == "160000" || fields[1] == "160000" {
			continue // submodule
		}
		changes = append(changes, Change{
			Name:  name,
			OldID: fields[2],
			NewID: fields[3],
		})
	}
	return changes, nil
}

// Blob returns the content of a blob. The content of NullID is empty.
func (r *Repo) Blob(id string) (string, error) {
	if id == NullID {
		return "", nil
	}
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, err := io.WriteString(r.in, id+"\n"); err != nil {
		return "", errors.Wrap(err, "requesting blob")
	}
	header, err := r.out.ReadString('\n')
	if err != nil {
		return "", errors.Wrap(err, "reading blob header")
	}
	// <id> <type> <size> or <id> missing
	fields := strings.Fields(header)
	if len(fields) != 3 {
		return "", errors.Errorf("unexpected blob header for %s: %q", id, header)
	}
	n, err := strconv.Atoi(fields[2])
	if err != nil {
		return "", errors.Wrapf(err, "parsing size of %s", id)
	}
	buf := make([]byte, n+1) // content is followed by a newline
	if _, err := io.ReadFull(r.out, buf); err != nil {
		return "", errors.Wrapf(err, "reading blob %s", id)
	}
	return string(buf[:n]), nil
}

func git(args ...string) (string, error) {
	var wout, werr strings.Builder
	cmd := exec.Command("git", args...)
	cmd.Stdout = &wout
	cmd.Stderr = &werr
	if err := cmd.Run(); err != nil {
		return "", errors.Wrapf(err, "running git %v: %s", args, werr.String())
	}
	return wout.String(), nil
}
