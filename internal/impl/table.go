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

package impl

import "znkr.io/heckel/internal/mvecs"

// counter counts the occurrences of an element, saturating at many. Only the distinction between
// zero, one and more than one matters for matching, which keeps the work per element constant no
// matter how often it repeats.
type counter uint8

const (
	zero counter = iota
	one
	many
)

func (c counter) inc() counter {
	if c < many {
		c++
	}
	return c
}

// end terminates a position queue.
const end = -1

// entry aggregates the occurrences of one distinct element in x and y.
type entry struct {
	nx, ny     counter // occurrences in x and y
	head, tail int     // FIFO queue of unconsumed positions in x, linked through table.next
}

// table is the symbol table for a single comparison.
//
// Entries are stored in an arena and referenced by their index. Slots in sx and sy hold either
// the entry of an element that's not resolved yet, encoded as ^id (always negative), or the index
// of the matched element in the other input (never negative).
type table struct {
	entries []entry
	next    []int // next[s] is the position following s in the queue of x[s]'s entry
	sx, sy  []int
}

// unresolved returns the slot value referencing entry id.
func unresolved(id int) int { return ^id }

// newTable builds the symbol table for x[p:] and y[p:]. The first p elements of x and y are
// already matched to each other.
//
// The order in which the inputs are scanned determines which occurrence of a repeated element is
// consumed first during matching: y is scanned first, then x, both in ascending order.
func newTable[T any, K comparable](x, y []T, p int, key func(T) K) *table {
	t := &table{next: make([]int, len(x))}
	t.sx, t.sy = mvecs.Make(len(x), len(y))
	for i := range p {
		t.sx[i], t.sy[i] = i, i
	}

	ids := make(map[K]int, len(y)-p)
	lookup := func(e T) int {
		k := key(e)
		id, ok := ids[k]
		if !ok {
			id = len(t.entries)
			ids[k] = id
			t.entries = append(t.entries, entry{head: end, tail: end})
		}
		return id
	}

	for j := p; j < len(y); j++ {
		id := lookup(y[j])
		en := &t.entries[id]
		en.ny = en.ny.inc()
		t.sy[j] = unresolved(id)
	}

	for i := p; i < len(x); i++ {
		id := lookup(x[i])
		en := &t.entries[id]
		en.nx = en.nx.inc()
		t.next[i] = end
		if en.tail == end {
			en.head = i
		} else {
			t.next[en.tail] = i
		}
		en.tail = i
		t.sx[i] = unresolved(id)
	}
	return t
}

// pop removes and returns the earliest unconsumed position of entry id in x, or end if there is
// none.
func (t *table) pop(id int) int {
	en := &t.entries[id]
	i := en.head
	if i == end {
		return end
	}
	en.head = t.next[i]
	if en.head == end {
		en.tail = end
	}
	return i
}

// vecs normalizes the slots into match vectors and returns them.
func (t *table) vecs() (mx, my []int) {
	for i, slot := range t.sx {
		if slot < 0 {
			t.sx[i] = mvecs.Unmatched
		}
	}
	for j, slot := range t.sy {
		if slot < 0 {
			t.sy[j] = mvecs.Unmatched
		}
	}
	return t.sx, t.sy
}
