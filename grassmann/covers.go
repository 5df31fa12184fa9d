// SPDX-License-Identifier: MIT

package grassmann

import (
	"fmt"

	"github.com/katalvlaran/grassmann/vecspace"
)

// covers returns every covering edge (lo, hi): dim hi = dim lo + 1 and lo ⊆ hi.
//
// Edges are emitted in lexicographic (lo, hi) order. Only candidates one
// dimension up are tested; pairs at any other distance can never cover.
// No transitive reduction is needed since dimension-adjacent inclusions are
// exactly the covers in a subspace lattice.
func covers(subs []vecspace.Subspace, levels [][]int) ([][2]int, error) {
	var edges [][2]int
	for lo, w := range subs {
		next := w.Dim() + 1
		if next >= len(levels) {
			continue
		}
		for _, hi := range levels[next] {
			ok, err := w.IsSubspaceOf(subs[hi])
			if err != nil {
				return nil, fmt.Errorf("covers(%d,%d): %w", lo, hi, err)
			}
			if ok {
				edges = append(edges, [2]int{lo, hi})
			}
		}
	}

	return edges, nil
}

// levelsOf groups subspace indices by dimension, ascending within a level.
func levelsOf(subs []vecspace.Subspace, top int) [][]int {
	levels := make([][]int, top+1)
	for e, w := range subs {
		levels[w.Dim()] = append(levels[w.Dim()], e)
	}

	return levels
}
