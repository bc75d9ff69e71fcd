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

package config_test

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"znkr.io/heckel/internal/config"
	"znkr.io/heckel/textdiff"
	"znkr.io/heckel/textdiff/color"
)

func TestFromOptions(t *testing.T) {
	tests := []struct {
		name string
		opts []config.Option
		want config.Config
	}{
		{
			name: "default",
			opts: nil,
			want: config.Default,
		},
		{
			name: "ignore-whitespace",
			opts: []config.Option{
				textdiff.IgnoreWhitespace(),
			},
			want: config.Config{
				IgnoreWhitespace: true,
				Color:            config.Default.Color,
			},
		},
		{
			name: "default-colors",
			opts: []config.Option{
				textdiff.TerminalColors(),
			},
			want: config.Config{
				IgnoreWhitespace: config.Default.IgnoreWhitespace,
				Color:            &config.DefaultColors,
			},
		},
		{
			name: "custom-colors",
			opts: []config.Option{
				textdiff.TerminalColors(color.Moves(1, 35), color.Deletes(9)),
			},
			want: config.Config{
				IgnoreWhitespace: config.Default.IgnoreWhitespace,
				Color: &config.ColorConfig{
					Delete:  "\033[9m",
					Insert:  config.DefaultColors.Insert,
					Replace: config.DefaultColors.Replace,
					Move:    "\033[1;35m",
				},
			},
		},
		{
			name: "everything",
			opts: []config.Option{
				textdiff.TerminalColors(),
				textdiff.IgnoreWhitespace(),
			},
			want: config.Config{
				IgnoreWhitespace: true,
				Color:            &config.DefaultColors,
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := config.FromOptions(tt.opts, config.IgnoreWhitespace|config.TerminalColors)
			if diff := cmp.Diff(tt.want, got); diff != "" {
				t.Errorf("FromOptions(...) result are different [-want,+got]:\n%s", diff)
			}
		})
	}
}

func TestFromOptionsNotAllowed(t *testing.T) {
	defer func() {
		r := recover()
		if r == nil {
			t.Fatalf("FromOptions(...) didn't panic")
		}
		if got, want := r, "Option textdiff.TerminalColors not allowed here"; got != want {
			t.Errorf("FromOptions(...) panicked with %q, want %q", got, want)
		}
	}()
	config.FromOptions([]config.Option{textdiff.TerminalColors()}, config.IgnoreWhitespace)
}
