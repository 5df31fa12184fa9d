// SPDX-License-Identifier: MIT

// Package poset models a finite graded poset by its covering relation.
//
// Elements are the integers 0..Size()-1, each with a rank. Covering edges
// (lo, hi) must satisfy rank(hi) == rank(lo)+1. The relation is stored twice:
// as ascending cover lists for fast lookups, and as a directed core.Graph
// (vertex ID = decimal element index, metadata "rank") which serves as the
// Hasse diagram. dfs.LongestPathLayers layers it, and bfs walks it upward or
// downward for UpSet and DownSet.
//
// A *Poset is immutable after New; every getter returns a copy, so concurrent
// readers need no synchronisation.
package poset
