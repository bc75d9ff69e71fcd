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

// Package replay reconstructs the new slice from the old slice and the changes between them.
//
// This package is only for testing.
package replay

import (
	"fmt"

	"znkr.io/heckel"
)

// Apply applies changes to x and returns the result.
//
// The changes must be in the order produced by [heckel.Diff]: deletions first, then everything else
// ordered by the index in the new slice. Elements without a change at their new index are taken, in
// order, from the elements of x that survive the deletions.
func Apply[T any](x []T, changes []heckel.Change[T]) ([]T, error) {
	deleted := make([]bool, len(x))
	k := 0
	for ; k < len(changes) && changes[k].Kind == heckel.Delete; k++ {
		c := changes[k]
		if c.From < 0 || c.From >= len(x) {
			return nil, fmt.Errorf("change %d: delete index %d out of range [0,%d)", k, c.From, len(x))
		}
		if deleted[c.From] {
			return nil, fmt.Errorf("change %d: index %d deleted twice", k, c.From)
		}
		if k > 0 && changes[k-1].From >= c.From {
			return nil, fmt.Errorf("change %d: deletions out of order", k)
		}
		deleted[c.From] = true
	}

	survivors := make([]T, 0, len(x)-k)
	for s, e := range x {
		if !deleted[s] {
			survivors = append(survivors, e)
		}
	}

	rest := changes[k:]
	inserts := 0
	for i, c := range rest {
		switch c.Kind {
		case heckel.Insert:
			inserts++
		case heckel.Delete:
			return nil, fmt.Errorf("change %d: delete after other changes", k+i)
		}
	}

	y := make([]T, len(survivors)+inserts)
	inserted := 0 // number of insertions before t
	i := 0
	for t := range y {
		var insert, replace, move bool
		for ; i < len(rest) && rest[i].To == t; i++ {
			c := rest[i]
			switch c.Kind {
			case heckel.Insert:
				insert = true
				y[t] = c.New
			case heckel.Replace:
				replace = true
				y[t] = c.New
			case heckel.Move:
				if c.From < 0 || c.From >= len(x) || deleted[c.From] {
					return nil, fmt.Errorf("change %d: move from invalid index %d", k+i, c.From)
				}
				move = true
				if !replace {
					y[t] = x[c.From]
				}
			default:
				panic("never reached")
			}
		}
		switch {
		case insert:
			inserted++
		case !replace && !move:
			if t-inserted >= len(survivors) {
				return nil, fmt.Errorf("no element left for index %d", t)
			}
			y[t] = survivors[t-inserted]
		}
	}
	if i < len(rest) {
		return nil, fmt.Errorf("change %d: index %d out of order or out of range [0,%d)", k+i, rest[i].To, len(y))
	}
	return y, nil
}
