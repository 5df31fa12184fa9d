// SPDX-License-Identifier: MIT

package dfs

import (
	"fmt"

	"github.com/katalvlaran/grassmann/core"
)

// LongestPathLayers assigns every vertex of the DAG g the length of the
// longest directed path ending at it. Sources get layer 0.
//
// Implementation:
//   - Stage 1: TopologicalSort(g) (rejects cycles and undirected graphs).
//   - Stage 2: relax successors in topological order:
//     layer[v] = max(layer[v], layer[u]+1) for every edge u→v.
//
// Complexity: O(V + E).
func LongestPathLayers(g *core.Graph) (map[string]int, error) {
	order, err := TopologicalSort(g)
	if err != nil {
		return nil, err
	}

	layer := make(map[string]int, len(order))
	for _, u := range order {
		succ, err := g.NeighborIDs(u)
		if err != nil {
			return nil, fmt.Errorf("%w: %v", ErrNeighborFetch, err)
		}
		for _, v := range succ {
			if layer[u]+1 > layer[v] {
				layer[v] = layer[u] + 1
			}
		}
		if _, ok := layer[u]; !ok {
			layer[u] = 0
		}
	}

	return layer, nil
}
