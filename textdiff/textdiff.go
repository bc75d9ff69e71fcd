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

// Package textdiff provides functions to compare text line by line using Heckel's algorithm.
//
// Besides insertions and deletions, the output reports lines that moved, and, with
// [IgnoreWhitespace], lines whose content only changed in whitespace.
package textdiff

import (
	"strings"

	"znkr.io/heckel"
	"znkr.io/heckel/internal/byteview"
	"znkr.io/heckel/internal/config"
)

const (
	prefixDelete  = "-"
	prefixInsert  = "+"
	prefixReplace = "~"
	prefixMove    = ">"
)

const missingNewline = "\\ No newline at end of file\n"

// Changes compares the lines in x and y and returns the changes necessary to convert from one to
// the other.
//
// Lines include their trailing newline character, if any. The change indexes refer to lines,
// starting at 0.
//
// The following option is supported: [IgnoreWhitespace]
func Changes[T string | []byte](x, y T, opts ...Option) []heckel.Change[T] {
	cfg := config.FromOptions(opts, config.IgnoreWhitespace)
	xlines, _ := byteview.SplitLines(byteview.From(x))
	ylines, _ := byteview.SplitLines(byteview.From(y))
	changes := diff(xlines, ylines, cfg)
	if len(changes) == 0 {
		return nil
	}

	out := make([]heckel.Change[T], len(changes))
	for i, c := range changes {
		out[i] = heckel.Change[T]{
			Kind: c.Kind,
			Old:  byteview.To[T](c.Old),
			New:  byteview.To[T](c.New),
			From: c.From,
			To:   c.To,
		}
	}
	return out
}

// Script compares the lines in x and y and returns the changes necessary to convert from one to
// the other as a change script.
//
// Every change is rendered as one line, a prefix identifying the kind of change followed by 1-based
// line numbers, a tab, and the line itself:
//
//	-M	deleted line M of x
//	+N	inserted line N of y
//	~M,N	line M of x replaced by line N of y (only with [IgnoreWhitespace])
//	>M,N	line M of x moved to line N of y
//
// Deletions are listed first, all other changes follow in the order of y.
//
// The following options are supported: [IgnoreWhitespace], [TerminalColors]
func Script[T string | []byte](x, y T, opts ...Option) T {
	cfg := config.FromOptions(opts, config.IgnoreWhitespace|config.TerminalColors)
	xlines, xmissing := byteview.SplitLines(byteview.From(x))
	ylines, ymissing := byteview.SplitLines(byteview.From(y))
	changes := diff(xlines, ylines, cfg)

	colors := config.ColorConfig{}
	if cfg.Color != nil {
		colors = *cfg.Color
	}

	var b byteview.Builder[T]
	n := 0
	for _, c := range changes {
		// Line, prefix, two line numbers, and color codes.
		n += max(c.Old.Len(), c.New.Len()) + 48
	}
	b.Grow(n)
	for _, c := range changes {
		switch c.Kind {
		case heckel.Delete:
			writeLine(&b, colors.Delete, prefixDelete, c.From+1, -1, c.Old, c.From == xmissing)
		case heckel.Insert:
			writeLine(&b, colors.Insert, prefixInsert, c.To+1, -1, c.New, c.To == ymissing)
		case heckel.Replace:
			writeLine(&b, colors.Replace, prefixReplace, c.From+1, c.To+1, c.New, c.To == ymissing)
		case heckel.Move:
			writeLine(&b, colors.Move, prefixMove, c.From+1, c.To+1, c.New, c.To == ymissing)
		default:
			panic("never reached")
		}
	}
	return b.Build()
}

func writeLine[T string | []byte](b *byteview.Builder[T], color, prefix string, m, n int, line byteview.ByteView, missing bool) {
	b.WriteString(color)
	b.WriteString(prefix)
	b.WriteInt(m)
	if n >= 0 {
		b.WriteString(",")
		b.WriteInt(n)
	}
	b.WriteString("\t")
	b.WriteByteView(line.TrimNewline())
	if color != "" {
		b.WriteString(config.Reset)
	}
	b.WriteString("\n")
	if missing {
		b.WriteString(missingNewline)
	}
}

func diff(x, y []byteview.ByteView, cfg config.Config) []heckel.Change[byteview.ByteView] {
	if cfg.IgnoreWhitespace {
		eq := func(a, b byteview.ByteView) bool { return a == b }
		return heckel.DiffFunc(x, y, collapseWhitespace, eq)
	}
	return heckel.Diff(x, y)
}

// collapseWhitespace returns the line with leading and trailing whitespace removed and all other
// runs of whitespace replaced by a single space.
func collapseWhitespace(v byteview.ByteView) string {
	return strings.Join(strings.Fields(v.String()), " ")
}
