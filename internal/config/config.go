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

// Package config provides shared configuration mechanisms for packages in this module.
//
// This package is an implementation detail, the configuration surface for users is provided via
// textdiff.Option.
package config

// Config collects all configurable parameters for comparison functions in this module.
type Config struct {
	// If set, lines are matched by their content with whitespace collapsed. Matched lines that
	// aren't identical are reported as replacements.
	IgnoreWhitespace bool

	// If set, output is colored using ANSI escape sequences.
	Color *ColorConfig
}

// ColorConfig holds the ANSI escape sequences to color the different kinds of changes.
type ColorConfig struct {
	Delete  string
	Insert  string
	Replace string
	Move    string
}

// Reset is the ANSI escape sequence to reset all colors.
const Reset = "\033[0m"

// Default is the default configuration.
var Default = Config{
	IgnoreWhitespace: false,
	Color:            nil,
}

// DefaultColors are the colors used if colors are enabled without further configuration.
var DefaultColors = ColorConfig{
	Delete:  "\033[31m",
	Insert:  "\033[32m",
	Replace: "\033[33m",
	Move:    "\033[36m",
}

// Flag describes a single config entry. This is used to detect if configurations are being set
// that are not supported by the function they are passed to.
type Flag int

const (
	IgnoreWhitespace Flag = 1 << iota
	TerminalColors
)

// Option is the mechanism used to expose the configuration to users.
type Option func(*Config) Flag

// FromOptions creates a configuration from a set of options.
func FromOptions(opts []Option, allowed Flag) Config {
	cfg := Default
	for _, opt := range opts {
		flag := opt(&cfg)
		if flag & ^allowed != 0 {
			panic("Option " + printFlag(flag) + " not allowed here")
		}
	}
	return cfg
}

func printFlag(flag Flag) string {
	switch flag {
	case IgnoreWhitespace:
		return "textdiff.IgnoreWhitespace"
	case TerminalColors:
		return "textdiff.TerminalColors"
	default:
		panic("never reached")
	}
}
