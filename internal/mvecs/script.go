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

package mvecs

import "fmt"

// Op describes the kind of a step in a change script.
type Op uint8

const (
	Delete  Op = iota // x[S] has no counterpart in y
	Insert            // y[T] has no counterpart in x
	Replace           // x[S] and y[T] are matched but not identical
	Move              // x[S] and y[T] are matched but y[T] is not where x[S] would be
)

func (op Op) String() string {
	switch op {
	case Delete:
		return "delete"
	case Insert:
		return "insert"
	case Replace:
		return "replace"
	case Move:
		return "move"
	default:
		return fmt.Sprint(uint8(op))
	}
}

// Step is a single step of a change script. S is an index into x and T an index into y, unused
// indices are [Unmatched].
type Step struct {
	Op   Op
	S, T int
}

// Script translates the match vectors into a change script.
//
// All deletions come first in ascending order of S, followed by all other steps in ascending order
// of T. A replacement always precedes a move for the same T.
//
// same reports whether the matched elements x[s] and y[t] are identical. If same is nil, all
// matched elements are considered identical and no replacements are produced.
func Script(mx, my []int, same func(s, t int) bool) []Step {
	offsets, steps := deletes(mx, nil)

	inserts := 0 // number of insertions before t
	for t, s := range my {
		if s == Unmatched {
			steps = append(steps, Step{Op: Insert, S: Unmatched, T: t})
			inserts++
			continue
		}
		if same != nil && !same(s, t) {
			steps = append(steps, Step{Op: Replace, S: s, T: t})
		}
		// Once deletions before s and insertions before t are accounted for, an element that
		// stayed in place ends up at t.
		if s-offsets[s]+inserts != t {
			steps = append(steps, Step{Op: Move, S: s, T: t})
		}
	}
	return steps
}
