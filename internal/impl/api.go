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

// Package impl implements Heckel's algorithm to pair up the elements of two sequences.
//
// The result is a pair of match vectors, see [mvecs].
//
// Reference: Paul Heckel, "A Technique for Isolating Differences Between Files", Communications of
// the ACM 21(4), 1978.
package impl

import "znkr.io/heckel/internal/mvecs"

// Diff pairs up the elements of x and y and returns the resulting match vectors.
func Diff[T comparable](x, y []T) (mx, my []int) {
	p := commonPrefix(x, y, func(a, b T) bool { return a == b })
	return diff(x, y, p, func(e T) T { return e })
}

// DiffFunc pairs up the elements of x and y that have the same key and returns the resulting match
// vectors.
func DiffFunc[T any, K comparable](x, y []T, key func(T) K) (mx, my []int) {
	p := commonPrefix(x, y, func(a, b T) bool { return key(a) == key(b) })
	return diff(x, y, p, key)
}

func diff[T any, K comparable](x, y []T, p int, key func(T) K) (mx, my []int) {
	if handleTrivial(x, y, p) {
		mx, my = mvecs.Make(len(x), len(y))
		for i := range p {
			mx[i], my[i] = i, i
		}
		return mx, my
	}

	t := newTable(x, y, p, key)
	t.match()
	return t.vecs()
}

// commonPrefix returns the length of the common prefix of x and y.
//
// Matching the common prefix up front doesn't change the result: the k-th element of y always
// consumes the k-th element of x from the queue, because every earlier occurrence of the same
// element in x was already consumed by the element at the same position in y. It does save the
// symbol table work for the prefix though.
func commonPrefix[T any](x, y []T, eq func(a, b T) bool) int {
	p := 0
	for p < len(x) && p < len(y) && eq(x[p], y[p]) {
		p++
	}
	return p
}

// handleTrivial reports whether the remainder after the common prefix is trivial, i.e. one of the
// inputs is exhausted and everything else is either deleted or inserted.
func handleTrivial[T any](x, y []T, p int) bool {
	return p == len(x) || p == len(y)
}
