// SPDX-License-Identifier: MIT

package poset

import (
	"errors"
	"fmt"
	"sort"
	"strconv"

	"github.com/katalvlaran/grassmann/bfs"
	"github.com/katalvlaran/grassmann/core"
	"github.com/katalvlaran/grassmann/dfs"
)

// Sentinel errors.
var (
	// ErrUnknownElement is returned for an element index outside 0..Size()-1.
	ErrUnknownElement = errors.New("poset: unknown element")

	// ErrBadEdge is returned for a covering edge whose endpoints are unknown,
	// not rank-adjacent, or repeated.
	ErrBadEdge = errors.New("poset: invalid covering edge")

	// ErrNegativeRank is returned when an element is given a rank below zero.
	ErrNegativeRank = errors.New("poset: negative rank")

	// ErrNotComparable is returned by Chain when lo is not below hi.
	ErrNotComparable = errors.New("poset: elements not comparable")
)

// MetaRank is the vertex metadata key holding an element's rank.
const MetaRank = "rank"

// Poset is an immutable graded poset.
type Poset struct {
	ranks  []int
	levels [][]int
	up     [][]int
	down   [][]int
	edges  [][2]int
	g      *core.Graph
}

// ID returns the Hasse diagram vertex ID of element e.
func ID(e int) string { return strconv.Itoa(e) }

// New builds a poset from per-element ranks and covering edges (lo, hi).
//
// Edges keep their input order in Edges(); cover lists are sorted ascending.
// Errors: ErrNegativeRank, ErrBadEdge (wrapping ErrUnknownElement for
// out-of-range endpoints).
//
// Complexity: O(V + E log E).
func New(ranks []int, edges [][2]int) (*Poset, error) {
	n := len(ranks)
	p := &Poset{
		ranks: append([]int(nil), ranks...),
		up:    make([][]int, n),
		down:  make([][]int, n),
		edges: make([][2]int, 0, len(edges)),
		g:     core.NewGraph(core.WithDirected(true)),
	}

	top := -1
	for e, r := range ranks {
		if r < 0 {
			return nil, fmt.Errorf("New: element %d rank %d: %w", e, r, ErrNegativeRank)
		}
		if r > top {
			top = r
		}
	}
	p.levels = make([][]int, top+1)
	for e, r := range ranks {
		p.levels[r] = append(p.levels[r], e)
		id := ID(e)
		if err := p.g.AddVertex(id); err != nil {
			return nil, fmt.Errorf("New: vertex %d: %w", e, err)
		}
		if err := p.g.SetVertexMeta(id, MetaRank, r); err != nil {
			return nil, fmt.Errorf("New: vertex %d: %w", e, err)
		}
	}

	for _, ed := range edges {
		lo, hi := ed[0], ed[1]
		if lo < 0 || lo >= n || hi < 0 || hi >= n {
			return nil, fmt.Errorf("New: edge (%d,%d): %w: %w", lo, hi, ErrBadEdge, ErrUnknownElement)
		}
		if ranks[hi] != ranks[lo]+1 {
			return nil, fmt.Errorf("New: edge (%d,%d) joins ranks %d and %d: %w",
				lo, hi, ranks[lo], ranks[hi], ErrBadEdge)
		}
		if _, err := p.g.AddEdge(ID(lo), ID(hi)); err != nil {
			return nil, fmt.Errorf("New: edge (%d,%d): %w: %w", lo, hi, ErrBadEdge, err)
		}
		p.up[lo] = append(p.up[lo], hi)
		p.down[hi] = append(p.down[hi], lo)
		p.edges = append(p.edges, ed)
	}
	for e := 0; e < n; e++ {
		sort.Ints(p.up[e])
		sort.Ints(p.down[e])
	}

	return p, nil
}

// Size returns the number of elements.
func (p *Poset) Size() int { return len(p.ranks) }

// TopRank returns the highest rank, or -1 for an empty poset.
func (p *Poset) TopRank() int { return len(p.levels) - 1 }

// Rank returns the rank of element e.
func (p *Poset) Rank(e int) (int, error) {
	if err := p.check(e); err != nil {
		return 0, err
	}

	return p.ranks[e], nil
}

// LevelSets returns the elements of each rank in ascending index order.
func (p *Poset) LevelSets() [][]int {
	out := make([][]int, len(p.levels))
	for i, l := range p.levels {
		out[i] = append([]int{}, l...)
	}

	return out
}

// LevelSetSizes returns |level i| for each rank i.
func (p *Poset) LevelSetSizes() []int {
	out := make([]int, len(p.levels))
	for i, l := range p.levels {
		out[i] = len(l)
	}

	return out
}

// UpperCovers returns the elements covering e, ascending.
func (p *Poset) UpperCovers(e int) ([]int, error) {
	if err := p.check(e); err != nil {
		return nil, err
	}

	return append([]int{}, p.up[e]...), nil
}

// LowerCovers returns the elements covered by e, ascending.
func (p *Poset) LowerCovers(e int) ([]int, error) {
	if err := p.check(e); err != nil {
		return nil, err
	}

	return append([]int{}, p.down[e]...), nil
}

// Edges returns the covering edges in insertion order.
func (p *Poset) Edges() [][2]int {
	return append([][2]int{}, p.edges...)
}

// HasseDiagram returns a deep copy of the backing directed graph.
func (p *Poset) HasseDiagram() *core.Graph { return p.g.Clone() }

// Layers groups elements by longest-path depth in the Hasse diagram.
// For a graded poset with a unique minimum this equals LevelSets.
func (p *Poset) Layers() ([][]int, error) {
	depth, err := dfs.LongestPathLayers(p.g)
	if err != nil {
		return nil, fmt.Errorf("Layers: %w", err)
	}
	var out [][]int
	for e := 0; e < len(p.ranks); e++ {
		l := depth[ID(e)]
		for len(out) <= l {
			out = append(out, []int{})
		}
		out[l] = append(out[l], e)
	}

	return out, nil
}

// UpSet returns every element ≥ e (e included), ascending.
// The Hasse diagram is walked breadth-first along covering edges.
func (p *Poset) UpSet(e int) ([]int, error) {
	return p.reach(e, false)
}

// DownSet returns every element ≤ e (e included), ascending.
func (p *Poset) DownSet(e int) ([]int, error) {
	return p.reach(e, true)
}

// UpSetWithin returns the elements x ≥ e with rank(x) ≤ rank(e)+k, ascending.
func (p *Poset) UpSetWithin(e, k int) ([]int, error) {
	return p.reach(e, false, bfs.WithMaxDepth(k))
}

// DownSetWithin returns the elements x ≤ e with rank(x) ≥ rank(e)-k, ascending.
func (p *Poset) DownSetWithin(e, k int) ([]int, error) {
	return p.reach(e, true, bfs.WithMaxDepth(k))
}

// reach collects the elements visited from e. In a graded poset every
// covering path between two elements has the same length, so BFS depth is
// the rank difference.
func (p *Poset) reach(e int, down bool, opts ...bfs.Option) ([]int, error) {
	if err := p.check(e); err != nil {
		return nil, err
	}
	var out []int
	opts = append(opts, bfs.WithOnVisit(func(id string, _ int) error {
		x, err := strconv.Atoi(id)
		if err != nil {
			return err
		}
		out = append(out, x)
		return nil
	}))
	if down {
		opts = append(opts, bfs.WithReverse())
	}
	if _, err := bfs.BFS(p.g, ID(e), opts...); err != nil {
		return nil, fmt.Errorf("reach(%d): %w", e, err)
	}
	sort.Ints(out)

	return out, nil
}

// Chain returns a saturated chain lo = x_0 ⋖ x_1 ⋖ … ⋖ x_k = hi.
// Among several chains it picks the one whose BFS tree reaches hi first,
// which is deterministic since neighbours are visited in ID order.
// Errors: ErrUnknownElement, ErrNotComparable when lo ≰ hi.
func (p *Poset) Chain(lo, hi int) ([]int, error) {
	if err := p.check(lo); err != nil {
		return nil, err
	}
	if err := p.check(hi); err != nil {
		return nil, err
	}
	res, err := bfs.BFS(p.g, ID(lo), bfs.WithMaxDepth(max(p.ranks[hi]-p.ranks[lo], 0)))
	if err != nil {
		return nil, fmt.Errorf("Chain(%d,%d): %w", lo, hi, err)
	}
	ids, err := res.PathTo(ID(hi))
	if err != nil {
		return nil, fmt.Errorf("Chain(%d,%d): %w: %w", lo, hi, ErrNotComparable, err)
	}
	out := make([]int, len(ids))
	for i, id := range ids {
		if out[i], err = strconv.Atoi(id); err != nil {
			return nil, fmt.Errorf("Chain(%d,%d): vertex %q: %w", lo, hi, id, err)
		}
	}

	return out, nil
}

func (p *Poset) check(e int) error {
	if e < 0 || e >= len(p.ranks) {
		return fmt.Errorf("element %d of %d: %w", e, len(p.ranks), ErrUnknownElement)
	}

	return nil
}
