// SPDX-License-Identifier: MIT

package bfs

import (
	"fmt"

	"github.com/katalvlaran/grassmann/core"
)

// BFS runs breadth-first search on g from start.
//
// Implementation:
//   - Stage 1: validate g, start and the options.
//   - Stage 2: level-synchronous sweep: the frontier of depth k yields the
//     frontier of depth k+1 from sorted neighbour IDs, unseen vertices only.
//   - Stage 3: stop when the frontier empties or MaxDepth is reached.
//
// Errors: ErrGraphNil, ErrStartVertexNotFound, ErrOptionViolation,
// ErrNeighbors, or the wrapped OnVisit error.
// Complexity: O(V + E log E).
func BFS(g *core.Graph, start string, opts ...Option) (*Result, error) {
	if g == nil {
		return nil, ErrGraphNil
	}
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return nil, o.err
	}
	if !g.HasVertex(start) {
		return nil, fmt.Errorf("BFS(%q): %w", start, ErrStartVertexNotFound)
	}
	next := g.NeighborIDs
	if o.reverse {
		next = g.InNeighborIDs
	}

	res := &Result{
		Start:  start,
		Depth:  map[string]int{start: 0},
		Parent: map[string]string{},
	}
	frontier := []string{start}
	for depth := 0; len(frontier) > 0; depth++ {
		var upcoming []string
		for _, id := range frontier {
			res.Order = append(res.Order, id)
			if o.visit != nil {
				if err := o.visit(id, depth); err != nil {
					return res, fmt.Errorf("bfs: visit %q: %w", id, err)
				}
			}
			if o.maxDepth >= 0 && depth == o.maxDepth {
				continue
			}
			nbrs, err := next(id)
			if err != nil {
				return res, fmt.Errorf("%w: %q: %v", ErrNeighbors, id, err)
			}
			for _, nb := range nbrs {
				if _, seen := res.Depth[nb]; seen {
					continue
				}
				res.Depth[nb] = depth + 1
				res.Parent[nb] = id
				upcoming = append(upcoming, nb)
			}
		}
		frontier = upcoming
	}

	return res, nil
}
