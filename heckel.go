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

package heckel

import (
	"znkr.io/heckel/internal/impl"
	"znkr.io/heckel/internal/mvecs"
)

// Kind describes the kind of a change.
//
//go:generate go tool golang.org/x/tools/cmd/stringer -type=Kind
type Kind int

const (
	Insert  Kind = iota // An element of the new slice without counterpart in the old slice
	Delete              // An element of the old slice without counterpart in the new slice
	Replace             // Two elements were matched but are not identical
	Move                // Two elements were matched but the element changed its position
)

// Change describes a single change of a diff.
//
//   - For Insert, New contains the inserted element and To its index in the new slice. Old and
//     From are unset (zero value).
//   - For Delete, Old contains the deleted element and From its index in the old slice. New and
//     To are unset (zero value).
//   - For Replace, Old and New contain the matched elements, From and To their indexes in the old
//     and new slice respectively.
//   - For Move, Old and New contain the matched elements, From is the index in the old slice and
//     To the index in the new slice.
type Change[T any] struct {
	Kind     Kind
	Old, New T
	From, To int
}

// Diff compares the contents of x and y and returns the changes necessary to convert from one to
// the other.
//
// The output lists all deletions in ascending order of their index in x first, followed by all
// other changes in ascending order of their index in y. An element that keeps its relative
// position, after accounting for deletions and insertions before it, doesn't produce a change. An
// element that changed its relative position is reported as a move.
//
// If x and y are identical, the output has length zero.
func Diff[T comparable](x, y []T) []Change[T] {
	mx, my := impl.Diff(x, y)
	// Matched elements are always identical for comparable types, there's nothing to replace.
	return changes(x, y, mvecs.Script(mx, my, nil))
}

// DiffFunc compares the contents of x and y and returns the changes necessary to convert from one
// to the other.
//
// Elements are matched if they have the same key. Matched elements for which eq returns false are
// reported as replacements. If eq is nil, matched elements are considered identical. The keys must
// be consistent with eq, i.e. eq(a, b) implies key(a) == key(b). If they are not, the result is
// unspecified.
//
// The order of the output is the same as for [Diff]. A replacement precedes a move for the same
// element.
func DiffFunc[T any, K comparable](x, y []T, key func(T) K, eq func(a, b T) bool) []Change[T] {
	mx, my := impl.DiffFunc(x, y, key)
	var same func(s, t int) bool
	if eq != nil {
		same = func(s, t int) bool { return eq(x[s], y[t]) }
	}
	return changes(x, y, mvecs.Script(mx, my, same))
}

func changes[T any](x, y []T, steps []mvecs.Step) []Change[T] {
	if len(steps) == 0 {
		return nil
	}

	out := make([]Change[T], len(steps))
	for i, step := range steps {
		switch step.Op {
		case mvecs.Insert:
			out[i] = Change[T]{
				Kind: Insert,
				New:  y[step.T],
				To:   step.T,
			}
		case mvecs.Delete:
			out[i] = Change[T]{
				Kind: Delete,
				Old:  x[step.S],
				From: step.S,
			}
		case mvecs.Replace:
			out[i] = Change[T]{
				Kind: Replace,
				Old:  x[step.S],
				New:  y[step.T],
				From: step.S,
				To:   step.T,
			}
		case mvecs.Move:
			out[i] = Change[T]{
				Kind: Move,
				Old:  x[step.S],
				New:  y[step.T],
				From: step.S,
				To:   step.T,
			}
		default:
			panic("never reached")
		}
	}
	return out
}
