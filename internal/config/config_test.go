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

package config

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

func set(f func(*Config), flag Flag) Option {
	return func(cfg *Config) Flag {
		f(cfg)
		return flag
	}
}

func TestFromOptions(t *testing.T) {
	tests := []struct {
		name    string
		opts    []Option
		allowed Flag
		want    Config
	}{
		{
			name: "default",
			want: Default,
		},
		{
			name:    "optimal",
			opts:    []Option{set(func(cfg *Config) { cfg.Optimal = true }, Optimal)},
			allowed: Optimal,
			want: func() Config {
				cfg := Default
				cfg.Optimal = true
				return cfg
			}(),
		},
		{
			name: "last-wins",
			opts: []Option{
				set(func(cfg *Config) { cfg.Context = 3 }, Context),
				set(func(cfg *Config) { cfg.Context = 5 }, Context),
			},
			allowed: Context | Moves,
			want: func() Config {
				cfg := Default
				cfg.Context = 5
				return cfg
			}(),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := FromOptions(tt.opts, tt.allowed)
			if diff := cmp.Diff(tt.want, got); diff != "" {
				t.Errorf("FromOptions(...) differs [-want,+got]:\n%s", diff)
			}
		})
	}
}

func TestFromOptions_panics(t *testing.T) {
	tests := []struct {
		name    string
		opt     Option
		allowed Flag
	}{
		{
			name:    "not-allowed",
			opt:     set(func(cfg *Config) {}, Complexity),
			allowed: Optimal | CostLimit,
		},
		{
			name:    "move-similarity-too-large",
			opt:     set(func(cfg *Config) { cfg.MoveSimilarity = 1.5 }, Moves),
			allowed: Moves,
		},
		{
			name:    "change-similarity-negative",
			opt:     set(func(cfg *Config) { cfg.ChangeSimilarity = -0.1 }, ChangeSimilarity),
			allowed: ChangeSimilarity,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			defer func() {
				if recover() == nil {
					t.Errorf("FromOptions(...) didn't panic")
				}
			}()
			FromOptions([]Option{tt.opt}, tt.allowed)
		})
	}
}
