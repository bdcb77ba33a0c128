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
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/pkg/errors"
	"znkr.io/inlinediff"
	"znkr.io/inlinediff/seqdiff"
)

// fileConfig is the content of a config file. Unset keys keep their defaults.
type fileConfig struct {
	Context             *int     `toml:"context"`
	Optimal             bool     `toml:"optimal"`
	CostLimit           int      `toml:"cost_limit"`
	WordComplexityLimit *int     `toml:"word_complexity_limit"`
	Moves               *bool    `toml:"moves"`
	MoveSimilarity      *float64 `toml:"move_similarity"`
	MaxMoveCandidates   *int     `toml:"max_move_candidates"`
	ChangeSimilarity    *float64 `toml:"change_similarity"`
}

func loadConfig(path string) (fileConfig, error) {
	var fc fileConfig
	md, err := toml.DecodeFile(path, &fc)
	if err != nil {
		return fileConfig{}, errors.Wrapf(err, "decoding config %s", path)
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		keys := make([]string, len(undecoded))
		for i, k := range undecoded {
			keys[i] = k.String()
		}
		return fileConfig{}, errors.Errorf("config %s: unknown keys: %s", path, strings.Join(keys, ", "))
	}
	for name, v := range map[string]*float64{
		"move_similarity":   fc.MoveSimilarity,
		"change_similarity": fc.ChangeSimilarity,
	} {
		if v != nil && (*v < 0 || *v > 1) {
			return fileConfig{}, errors.Errorf("config %s: %s must be in [0, 1], got %v", path, name, *v)
		}
	}
	return fc, nil
}

func (fc fileConfig) options() []inlinediff.Option {
	var opts []inlinediff.Option
	if fc.Context != nil {
		opts = append(opts, inlinediff.Context(*fc.Context))
	}
	if fc.Optimal {
		opts = append(opts, seqdiff.Optimal())
	}
	if fc.CostLimit > 0 {
		opts = append(opts, seqdiff.CostLimit(fc.CostLimit))
	}
	if fc.WordComplexityLimit != nil {
		opts = append(opts, inlinediff.WordComplexityLimit(*fc.WordComplexityLimit))
	}
	// MoveSimilarity enables moves, it must come before an explicit setting.
	if fc.MoveSimilarity != nil {
		opts = append(opts, inlinediff.MoveSimilarity(*fc.MoveSimilarity))
	}
	if fc.Moves != nil {
		opts = append(opts, inlinediff.Moves(*fc.Moves))
	}
	if fc.MaxMoveCandidates != nil {
		opts = append(opts, inlinediff.MaxMoveCandidates(*fc.MaxMoveCandidates))
	}
	if fc.ChangeSimilarity != nil {
		opts = append(opts, inlinediff.ChangeSimilarity(*fc.ChangeSimilarity))
	}
	return opts
}
