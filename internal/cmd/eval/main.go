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

// eval validates the inline diff on the history of a git repository. Every changed file of every
// commit is compared with several option variants and the output is checked to reproduce both
// versions of the file.
package main

import (
	"encoding/csv"
	"flag"
	"fmt"
	"maps"
	"math"
	"math/rand/v2"
	"os"
	"runtime"
	"slices"
	"strconv"
	"strings"
	"sync"
	"sync/atomic"
	"time"
	"unicode/utf8"

	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
	"golang.org/x/sync/errgroup"
	"znkr.io/inlinediff"
	"znkr.io/inlinediff/internal/cmd/eval/internal/git"
	"znkr.io/inlinediff/internal/jsonout"
	"znkr.io/inlinediff/internal/validate"
	"znkr.io/inlinediff/seqdiff"
	"znkr.io/inlinediff/textdiff"
)

type config struct {
	repo     string
	sample   int
	parallel int
	stats    string
}

func main() {
	var cfg config
	flag.StringVar(&cfg.repo, "repo", "", "repository to use for evaluation")
	flag.IntVar(&cfg.sample, "sample", 0, "if >0, sample commits to the value of the flag")
	flag.IntVar(&cfg.parallel, "parallel", runtime.GOMAXPROCS(0), "number of commits to evaluate in parallel")
	flag.StringVar(&cfg.stats, "stats", "", "CSV file to store stats in")
	flag.Parse()

	if len(flag.CommandLine.Args()) > 0 {
		log.Fatalf("unexpected command line arguments: %v", flag.CommandLine.Args())
	}

	if err := run(&cfg); err != nil {
		log.WithError(err).Fatal("evaluation failed")
	}
}

var variants = map[string][]inlinediff.Option{
	"default":  nil,
	"optimal":  {seqdiff.Optimal()},
	"cheap":    {seqdiff.CostLimit(1), inlinediff.WordComplexityLimit(1000)},
	"no-moves": {inlinediff.Moves(false)},
}

var bars = []string{
	" ",
	"▏",
	"▎",
	"▍",
	"▌",
	"▋",
	"▊",
	"▉",
	"█",
}

type result struct {
	commitID string
	file     string
	variant  string
	N, M     int
	records  int
	changes  int
	moves    int
	duration time.Duration
}

// statsWriter writes results as CSV.
type statsWriter struct {
	mu sync.Mutex
	f  *os.File
	w  *csv.Writer
}

func newStatsWriter(path string) (*statsWriter, error) {
	f, err := os.Create(path)
	if err != nil {
		return nil, errors.Wrap(err, "creating stats file")
	}
	sw := &statsWriter{f: f, w: csv.NewWriter(f)}
	sw.w.Write([]string{"commit_id", "file", "variant", "N", "M", "records", "changes", "moves", "duration_ns"})
	return sw, nil
}

func (sw *statsWriter) add(r result) {
	sw.mu.Lock()
	defer sw.mu.Unlock()
	itoa := strconv.Itoa
	sw.w.Write([]string{r.commitID, r.file, r.variant, itoa(r.N), itoa(r.M), itoa(r.records), itoa(r.changes), itoa(r.moves), strconv.FormatInt(r.duration.Nanoseconds(), 10)})
}

func (sw *statsWriter) close() error {
	sw.w.Flush()
	if err := sw.w.Error(); err != nil {
		sw.f.Close()
		return errors.Wrap(err, "writing stats")
	}
	return errors.Wrap(sw.f.Close(), "closing stats file")
}

func run(cfg *config) error {
	start := time.Now()
	var commitsDone, processed, failed atomic.Int64

	var stats *statsWriter
	if cfg.stats != "" {
		var err error
		if stats, err = newStatsWriter(cfg.stats); err != nil {
			return err
		}
	}

	repo, err := git.Open(cfg.repo)
	if err != nil {
		return err
	}
	defer repo.Close()

	commitIDs, err := repo.RevList()
	if err != nil {
		return errors.Wrap(err, "reading rev-list")
	}

	// Sample commits
	if cfg.sample > 0 && cfg.sample < len(commitIDs) {
		rand.Shuffle(len(commitIDs), func(i, j int) { commitIDs[i], commitIDs[j] = commitIDs[j], commitIDs[i] })
		commitIDs = commitIDs[:cfg.sample]
	}

	// Render progress
	render := func() {
		const width = 60
		commits := commitsDone.Load()
		processed := processed.Load()
		progress := float64(commits) / float64(max(1, len(commitIDs)))
		whole := int(progress * width)
		remainder := math.Mod(progress*width, 1)
		last := bars[max(0, min(len(bars)-1, int(remainder*float64(len(bars)))))]
		if width-whole < 1 {
			last = ""
		}
		bar := strings.Repeat(bars[len(bars)-1], whole) + last
		var commitsPerSec, procPerSec int
		if commits > 0 {
			commitsPerSec = int((time.Duration(commits) * time.Second) / time.Since(start))
		}
		if processed > 0 {
			procPerSec = int((time.Duration(processed) * time.Second) / time.Since(start))
		}
		fmt.Printf("\r[%-*s] % 3.1f%% (%d commits/s, %d evals/s, %d failed) ", width, bar, 100*progress, commitsPerSec, procPerSec, failed.Load())
	}
	done := make(chan struct{})
	var renderWG sync.WaitGroup
	renderWG.Add(1)
	go func() {
		defer renderWG.Done()
		ticker := time.NewTicker(200 * time.Millisecond)
		defer ticker.Stop()
		for {
			select {
			case <-ticker.C:
				render()
			case <-done:
				render()
				fmt.Printf("\n")
				return
			}
		}
	}()

	names := slices.Sorted(maps.Keys(variants))
	var g errgroup.Group
	g.SetLimit(max(1, cfg.parallel))
	for _, commitID := range commitIDs {
		g.Go(func() error {
			defer commitsDone.Add(1)
			changes, err := repo.DiffTree(commitID)
			if err != nil {
				return errors.Wrapf(err, "processing commit %s", commitID)
			}
			for _, change := range changes {
				old, err := repo.Blob(change.OldID)
				if err != nil {
					return err
				}
				new, err := repo.Blob(change.NewID)
				if err != nil {
					return err
				}
				// Invalid UTF-8 doesn't survive a round trip through a JSON decoder.
				if !utf8.ValidString(old) || !utf8.ValidString(new) {
					continue
				}
				x, y := textdiff.Lines(old), textdiff.Lines(new)
				for _, variant := range names {
					start := time.Now()
					out := inlinediff.JSON(x, y, variants[variant]...)
					duration := time.Since(start)

					recs, err := validate.Check(x, y, out)
					if err != nil {
						failed.Add(1)
						log.WithFields(log.Fields{
							"commit":  commitID,
							"file":    change.Name,
							"variant": variant,
						}).WithError(err).Error("invalid diff")
						continue
					}
					if stats != nil {
						r := result{
							commitID: commitID,
							file:     change.Name,
							variant:  variant,
							N:        len(x),
							M:        len(y),
							records:  len(recs),
							duration: duration,
						}
						for _, rec := range recs {
							switch rec.Type {
							case jsonout.Change:
								r.changes++
							case jsonout.MoveSource:
								r.moves++
							}
						}
						stats.add(r)
					}
				}
				processed.Add(1)
			}
			return nil
		})
	}
	err = g.Wait()
	close(done)
	renderWG.Wait()
	if err != nil {
		return err
	}
	if stats != nil {
		if err := stats.close(); err != nil {
			return err
		}
	}
	if n := failed.Load(); n > 0 {
		return errors.Errorf("%d invalid diffs", n)
	}
	return nil
}
