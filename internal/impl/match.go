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

// match pairs up elements in x and y.
//
// Both of Heckel's observations are applied in a single pass over y. For every unresolved element
// y[j], the earliest unconsumed occurrence x[i] of the same element is taken from the entry's queue
// and the pair is accepted if
//
//   - the element occurs exactly once in x and exactly once in y, or
//   - the element occurs in both x and y and x[i] still references the same entry.
//
// A rejected or missing candidate leaves y[j] unresolved, it becomes an insertion later.
func (t *table) match() {
	for j, slot := range t.sy {
		if slot >= 0 {
			continue // already matched
		}
		id := ^slot
		i := t.pop(id)
		if i == end {
			continue
		}
		en := &t.entries[id]
		unique := en.nx == one && en.ny == one
		contextual := en.nx != zero && en.ny != zero && t.sx[i] == slot
		if unique || contextual {
			t.sy[j] = i
			t.sx[i] = j
		}
	}
}
