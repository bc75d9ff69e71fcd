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

package textdiff

import (
	"znkr.io/heckel/internal/config"
	"znkr.io/heckel/textdiff/color"
)

// Option configures the behavior of comparison functions.
type Option = config.Option

// IgnoreWhitespace matches lines that only differ in whitespace.
//
// Lines are matched if they are equal after removing leading and trailing whitespace and
// collapsing all other runs of whitespace into a single space. Matched lines that are not
// identical are reported as replacements.
func IgnoreWhitespace() Option {
	return func(cfg *config.Config) config.Flag {
		cfg.IgnoreWhitespace = true
		return config.IgnoreWhitespace
	}
}

// TerminalColors colors the output using ANSI escape sequences.
//
// By default, deletions are red, insertions green, replacements yellow, and moves cyan. Use
// [color.Option] to customize the colors.
func TerminalColors(opts ...color.Option) Option {
	cc := config.DefaultColors
	for _, opt := range opts {
		opt(&cc)
	}
	return func(cfg *config.Config) config.Flag {
		cfg.Color = &cc
		return config.TerminalColors
	}
}
