// SPDX-License-Identifier: MIT

package poset_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/grassmann/bfs"
	"github.com/katalvlaran/grassmann/core"
	"github.com/katalvlaran/grassmann/poset"
)

// boolean2 is the subset lattice of {a,b}: 0=∅, 1={a}, 2={b}, 3={a,b}.
func boolean2(t *testing.T) *poset.Poset {
	t.Helper()
	p, err := poset.New(
		[]int{0, 1, 1, 2},
		[][2]int{{0, 2}, {0, 1}, {1, 3}, {2, 3}},
	)
	require.NoError(t, err)

	return p
}

func TestNew_Levels(t *testing.T) {
	p := boolean2(t)

	assert.Equal(t, 4, p.Size())
	assert.Equal(t, 2, p.TopRank())
	assert.Equal(t, [][]int{{0}, {1, 2}, {3}}, p.LevelSets())
	assert.Equal(t, []int{1, 2, 1}, p.LevelSetSizes())

	r, err := p.Rank(2)
	require.NoError(t, err)
	assert.Equal(t, 1, r)
}

func TestCovers_Sorted(t *testing.T) {
	p := boolean2(t)

	up, err := p.UpperCovers(0)
	require.NoError(t, err)
	assert.Equal(t, []int{1, 2}, up)

	down, err := p.LowerCovers(3)
	require.NoError(t, err)
	assert.Equal(t, []int{1, 2}, down)

	up, err = p.UpperCovers(3)
	require.NoError(t, err)
	assert.Empty(t, up)

	// edges keep insertion order
	assert.Equal(t, [][2]int{{0, 2}, {0, 1}, {1, 3}, {2, 3}}, p.Edges())
}

func TestGetters_ReturnCopies(t *testing.T) {
	p := boolean2(t)

	levels := p.LevelSets()
	levels[1][0] = 99
	up, _ := p.UpperCovers(0)
	up[0] = 99
	edges := p.Edges()
	edges[0] = [2]int{7, 7}

	assert.Equal(t, [][]int{{0}, {1, 2}, {3}}, p.LevelSets())
	up, _ = p.UpperCovers(0)
	assert.Equal(t, []int{1, 2}, up)
	assert.Equal(t, [2]int{0, 2}, p.Edges()[0])
}

func TestUnknownElement(t *testing.T) {
	p := boolean2(t)

	_, err := p.Rank(4)
	assert.ErrorIs(t, err, poset.ErrUnknownElement)
	_, err = p.UpperCovers(-1)
	assert.ErrorIs(t, err, poset.ErrUnknownElement)
	_, err = p.LowerCovers(10)
	assert.ErrorIs(t, err, poset.ErrUnknownElement)
}

func TestNew_Errors(t *testing.T) {
	cases := []struct {
		name  string
		ranks []int
		edges [][2]int
		want  error
	}{
		{"negative rank", []int{0, -1}, nil, poset.ErrNegativeRank},
		{"endpoint out of range", []int{0, 1}, [][2]int{{0, 2}}, poset.ErrUnknownElement},
		{"same rank", []int{0, 0}, [][2]int{{0, 1}}, poset.ErrBadEdge},
		{"skips a rank", []int{0, 1, 2}, [][2]int{{0, 2}}, poset.ErrBadEdge},
		{"downward", []int{0, 1}, [][2]int{{1, 0}}, poset.ErrBadEdge},
		{"duplicate", []int{0, 1}, [][2]int{{0, 1}, {0, 1}}, core.ErrMultiEdgeNotAllowed},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := poset.New(tc.ranks, tc.edges)
			assert.ErrorIs(t, err, tc.want)
		})
	}
}

func TestEmptyAndSingleton(t *testing.T) {
	p, err := poset.New(nil, nil)
	require.NoError(t, err)
	assert.Equal(t, 0, p.Size())
	assert.Equal(t, -1, p.TopRank())
	assert.Empty(t, p.LevelSets())

	p, err = poset.New([]int{0}, nil)
	require.NoError(t, err)
	assert.Equal(t, [][]int{{0}}, p.LevelSets())
	layers, err := p.Layers()
	require.NoError(t, err)
	assert.Equal(t, [][]int{{0}}, layers)
}

func TestHasseDiagram(t *testing.T) {
	p := boolean2(t)
	g := p.HasseDiagram()

	assert.True(t, g.Directed())
	assert.Equal(t, 4, g.VertexCount())
	assert.Equal(t, 4, g.EdgeCount())
	assert.True(t, g.HasEdge("0", "1"))
	assert.False(t, g.HasEdge("1", "0"))

	meta, err := g.VertexMeta("3")
	require.NoError(t, err)
	assert.Equal(t, 2, meta[poset.MetaRank])

	// the clone is independent of the poset
	require.NoError(t, g.AddVertex("extra"))
	assert.Equal(t, 4, p.HasseDiagram().VertexCount())
}

func TestLayers_MatchLevels(t *testing.T) {
	p := boolean2(t)
	layers, err := p.Layers()
	require.NoError(t, err)
	assert.Equal(t, p.LevelSets(), layers)
}

// TestLayers_TwoMinima shows where layering and ranking differ: an element of
// rank 1 with no lower cover sits in layer 0.
func TestLayers_TwoMinima(t *testing.T) {
	p, err := poset.New([]int{0, 1, 1, 2}, [][2]int{{0, 1}, {1, 3}, {2, 3}})
	require.NoError(t, err)

	layers, err := p.Layers()
	require.NoError(t, err)
	assert.Equal(t, [][]int{{0, 2}, {1}, {3}}, layers)
}

func TestUpDownSets(t *testing.T) {
	p := boolean2(t)

	up, err := p.UpSet(1)
	require.NoError(t, err)
	assert.Equal(t, []int{1, 3}, up)

	up, err = p.UpSet(0)
	require.NoError(t, err)
	assert.Equal(t, []int{0, 1, 2, 3}, up)

	down, err := p.DownSet(3)
	require.NoError(t, err)
	assert.Equal(t, []int{0, 1, 2, 3}, down)

	down, err = p.DownSet(2)
	require.NoError(t, err)
	assert.Equal(t, []int{0, 2}, down)

	_, err = p.UpSet(4)
	assert.ErrorIs(t, err, poset.ErrUnknownElement)
	_, err = p.DownSet(-1)
	assert.ErrorIs(t, err, poset.ErrUnknownElement)
}

// chain4 is the subset lattice of {a,b} stacked under an extra top:
// 0=∅, 1={a}, 2={b}, 3={a,b}, 4=⊤.
func chain4(t *testing.T) *poset.Poset {
	t.Helper()
	p, err := poset.New(
		[]int{0, 1, 1, 2, 3},
		[][2]int{{0, 1}, {0, 2}, {1, 3}, {2, 3}, {3, 4}},
	)
	require.NoError(t, err)

	return p
}

func TestUpDownSetsWithin(t *testing.T) {
	p := chain4(t)

	tests := []struct {
		name string
		fn   func(e, k int) ([]int, error)
		e, k int
		want []int
	}{
		{"up k=0", p.UpSetWithin, 0, 0, []int{0}},
		{"up k=1", p.UpSetWithin, 0, 1, []int{0, 1, 2}},
		{"up k=2", p.UpSetWithin, 0, 2, []int{0, 1, 2, 3}},
		{"up k large", p.UpSetWithin, 1, 10, []int{1, 3, 4}},
		{"down k=1", p.DownSetWithin, 4, 1, []int{3, 4}},
		{"down k=2", p.DownSetWithin, 4, 2, []int{1, 2, 3, 4}},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got, err := tc.fn(tc.e, tc.k)
			require.NoError(t, err)
			assert.Equal(t, tc.want, got)
		})
	}

	_, err := p.UpSetWithin(0, -1)
	assert.ErrorIs(t, err, bfs.ErrOptionViolation)
	_, err = p.DownSetWithin(9, 1)
	assert.ErrorIs(t, err, poset.ErrUnknownElement)
}

func TestChain(t *testing.T) {
	p := chain4(t)

	c, err := p.Chain(0, 4)
	require.NoError(t, err)
	assert.Equal(t, []int{0, 1, 3, 4}, c)

	c, err = p.Chain(2, 4)
	require.NoError(t, err)
	assert.Equal(t, []int{2, 3, 4}, c)

	c, err = p.Chain(3, 3)
	require.NoError(t, err)
	assert.Equal(t, []int{3}, c)

	_, err = p.Chain(1, 2)
	assert.ErrorIs(t, err, poset.ErrNotComparable)
	_, err = p.Chain(4, 0)
	assert.ErrorIs(t, err, poset.ErrNotComparable)
	_, err = p.Chain(0, 5)
	assert.ErrorIs(t, err, poset.ErrUnknownElement)
}
