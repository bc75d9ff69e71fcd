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

// Package heckel compares two slices using Heckel's algorithm and reports the changes as
// insertions, deletions, replacements and moves.
//
// Unlike diff algorithms based on the longest common subsequence, Heckel's algorithm detects
// elements that changed their position and reports them as moves instead of a deletion and an
// insertion. It does so in linear time and space: every element is hashed once and every input
// position is visited a constant number of times.
//
// The main functions are [Diff] for comparable types and [DiffFunc] for types that need a custom
// notion of identity.
//
// Performance: Complexity is O(N) time and O(N) space where N = len(x) + len(y).
//
// Note: For a line-by-line diff of text, please see [znkr.io/heckel/textdiff].
//
// [znkr.io/heckel/textdiff]: https://pkg.go.dev/znkr.io/heckel/textdiff
package heckel
