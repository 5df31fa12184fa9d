// SPDX-License-Identifier: MIT

package dfs

import (
	"fmt"

	"github.com/katalvlaran/grassmann/core"
)

// frame is one pending vertex on the explicit DFS stack: its successors and
// how many of them have been descended into.
type frame struct {
	id   string
	succ []string
	next int
}

// TopologicalSort orders the vertices of the DAG g so that every edge points
// forward. Roots are tried in sorted vertex order and successors arrive
// sorted from core, so the result is deterministic.
//
// Implementation:
//   - Stage 1: reject nil and undirected graphs.
//   - Stage 2: iterative DFS with White/Gray/Black colouring; a Gray
//     successor is a back-edge, reported as ErrCycleDetected.
//   - Stage 3: reverse the post-order.
//
// Errors: ErrGraphNil, ErrUndirected, ErrCycleDetected, ErrNeighborFetch.
// Complexity: O(V + E log E).
func TopologicalSort(g *core.Graph) ([]string, error) {
	if g == nil {
		return nil, ErrGraphNil
	}
	if !g.Directed() {
		return nil, fmt.Errorf("dfs: TopologicalSort: %w", ErrUndirected)
	}

	verts := g.Vertices()
	color := make(map[string]int, len(verts))
	post := make([]string, 0, len(verts))
	push := func(stack []frame, id string) ([]frame, error) {
		succ, err := g.NeighborIDs(id)
		if err != nil {
			return nil, fmt.Errorf("%w: %q: %v", ErrNeighborFetch, id, err)
		}
		color[id] = Gray
		return append(stack, frame{id: id, succ: succ}), nil
	}

	for _, root := range verts {
		if color[root] != White {
			continue
		}
		stack, err := push(nil, root)
		if err != nil {
			return nil, err
		}
		for len(stack) > 0 {
			top := &stack[len(stack)-1]
			if top.next == len(top.succ) {
				color[top.id] = Black
				post = append(post, top.id)
				stack = stack[:len(stack)-1]
				continue
			}
			v := top.succ[top.next]
			top.next++
			switch color[v] {
			case Gray:
				return nil, fmt.Errorf("dfs: edge %q→%q: %w", top.id, v, ErrCycleDetected)
			case White:
				if stack, err = push(stack, v); err != nil {
					return nil, err
				}
			}
		}
	}

	for i, j := 0, len(post)-1; i < j; i, j = i+1, j-1 {
		post[i], post[j] = post[j], post[i]
	}

	return post, nil
}
