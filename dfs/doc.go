// SPDX-License-Identifier: MIT

// Package dfs provides depth-first algorithms on directed core.Graph values:
// topological sorting and longest-path layering of DAGs.
//
// TopologicalSort returns an order in which every edge u→v has u before v, or
// ErrCycleDetected. LongestPathLayers assigns each vertex the length of the
// longest path reaching it from a source; for the Hasse diagram of a graded
// poset with a unique minimum this is exactly the rank function.
//
// Complexity:
//
//   - Time:   O(V + E) per call (plus O(V log V) for deterministic vertex order).
//   - Memory: O(V) for the explicit stack and colour map.
package dfs
