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

// Package mvecs contains functions to work with match vectors, the internal representation that's
// produced by Heckel's algorithm and is then translated to a user facing API.
//
// A match vector has one entry per element of the input it describes. The entry is either the index
// of the matching element in the other input or [Unmatched]. For the inputs x and y, mx[s] = t if
// and only if my[t] = s.
package mvecs

// Unmatched marks an element without counterpart in the other input.
const Unmatched = -1

// Make allocates the match vectors for inputs of length n and m with all elements unmatched.
func Make(n, m int) (mx, my []int) {
	r := make([]int, n+m)
	for i := range r {
		r[i] = Unmatched
	}
	mx = r[:n:n]
	my = r[n:]
	return
}
