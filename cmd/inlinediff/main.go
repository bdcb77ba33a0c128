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

// inlinediff compares pairs of files line by line and prints the differences in the inline diff
// JSON format, one JSON array per line and pair, in the order of the arguments.
//
// Usage:
//
//	inlinediff [flags] old new [old new ...]
//
// Settings can be read from a TOML file with -config, flags given on the command line take
// precedence over the file.
package main

import (
	"bufio"
	"flag"
	"io"
	"os"
	"runtime"
	"time"

	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
	"golang.org/x/sync/errgroup"
	"znkr.io/inlinediff"
	"znkr.io/inlinediff/seqdiff"
	"znkr.io/inlinediff/textdiff"
)

type flags struct {
	config   string
	context  int
	optimal  bool
	moves    bool
	parallel int
	verbose  bool
}

func main() {
	if err := run(os.Args[1:], os.Stdout); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			os.Exit(2)
		}
		log.WithError(err).Error("inlinediff failed")
		os.Exit(1)
	}
}

func run(args []string, stdout io.Writer) error {
	var f flags
	fs := flag.NewFlagSet("inlinediff", flag.ContinueOnError)
	fs.StringVar(&f.config, "config", "", "TOML `file` with diff settings")
	fs.IntVar(&f.context, "context", -1, "number of unchanged `lines` around changes, negative for all")
	fs.BoolVar(&f.optimal, "optimal", false, "always find a minimal line diff")
	fs.BoolVar(&f.moves, "moves", true, "detect moved lines")
	fs.IntVar(&f.parallel, "parallel", runtime.GOMAXPROCS(0), "number of file pairs to compare in parallel")
	fs.BoolVar(&f.verbose, "v", false, "log debug information")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if f.verbose {
		log.SetLevel(log.DebugLevel)
	}

	files := fs.Args()
	if len(files) == 0 || len(files)%2 != 0 {
		return errors.Errorf("expected pairs of files, got %d arguments", len(files))
	}

	var fc fileConfig
	if f.config != "" {
		var err error
		fc, err = loadConfig(f.config)
		if err != nil {
			return err
		}
		log.WithField("path", f.config).Debug("loaded config")
	}
	opts := fc.options()
	fs.Visit(func(fl *flag.Flag) {
		switch fl.Name {
		case "context":
			opts = append(opts, inlinediff.Context(f.context))
		case "optimal":
			if f.optimal {
				opts = append(opts, seqdiff.Optimal())
			}
		case "moves":
			opts = append(opts, inlinediff.Moves(f.moves))
		}
	})

	outs := make([][]byte, len(files)/2)
	var g errgroup.Group
	g.SetLimit(max(1, f.parallel))
	for i := range outs {
		oldFile, newFile := files[2*i], files[2*i+1]
		g.Go(func() error {
			x, err := os.ReadFile(oldFile)
			if err != nil {
				return errors.Wrap(err, "reading old file")
			}
			y, err := os.ReadFile(newFile)
			if err != nil {
				return errors.Wrap(err, "reading new file")
			}
			start := time.Now()
			outs[i] = textdiff.JSONBytes(x, y, opts...)
			log.WithFields(log.Fields{
				"old":     oldFile,
				"new":     newFile,
				"bytes":   len(outs[i]),
				"elapsed": time.Since(start),
			}).Debug("compared files")
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return err
	}

	w := bufio.NewWriter(stdout)
	for _, out := range outs {
		w.Write(out)
		w.WriteByte('\n')
	}
	return errors.Wrap(w.Flush(), "writing output")
}
