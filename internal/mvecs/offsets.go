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

// deletes appends a delete step for every unmatched element of x to steps, in ascending order.
//
// It also returns the delete offsets: offsets[s] is the number of elements before s that are
// deleted. Subtracting it from s yields the position an element would have in x after all
// deletions were applied.
func deletes(mx []int, steps []Step) (offsets []int, out []Step) {
	offsets = make([]int, len(mx))
	running := 0
	for s, t := range mx {
		offsets[s] = running
		if t == Unmatched {
			steps = append(steps, Step{Op: Delete, S: s, T: Unmatched})
			running++
		}
	}
	return offsets, steps
}
