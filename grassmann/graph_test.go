// SPDX-License-Identifier: MIT

package grassmann_test

import (
	"path/filepath"
	"strconv"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/grassmann/export"
	"github.com/katalvlaran/grassmann/grassmann"
)

func TestHasseDiagram(t *testing.T) {
	c := build(t, 3, 2, 2)
	g := c.HasseDiagram()

	assert.True(t, g.Directed())
	assert.Equal(t, 8, g.VertexCount())
	assert.Equal(t, 7, g.EdgeCount())
	for j := 1; j <= 7; j++ {
		assert.True(t, g.HasEdge("0", strconv.Itoa(j)))
	}
}

func TestGraph_Relabeled(t *testing.T) {
	c := build(t, 3, 3, 2)
	g, err := c.Graph()
	require.NoError(t, err)

	assert.Equal(t, c.Size(), g.VertexCount())
	assert.Equal(t, len(c.Edges()), g.EdgeCount())
	assert.True(t, g.HasVertex("[]"))
	assert.True(t, g.HasEdge("[]", "[[0,0,1]]"))
	assert.True(t, g.HasEdge("[[0,0,1]]", "[[0,1,0],[0,0,1]]"))

	meta, err := g.VertexMeta("[[0,1,1]]")
	require.NoError(t, err)
	assert.Equal(t, 1, meta[grassmann.MetaRank])
	assert.Equal(t, 1, meta[grassmann.MetaDim])
	assert.Equal(t, 1, meta[grassmann.MetaLayer])
	assert.Equal(t, 3, meta[grassmann.MetaIndex])
	assert.Equal(t, "[[0,1,1]]", meta[grassmann.MetaLabel])

	// labels are unique, so every element keeps its own vertex
	labels := c.ElementLabels()
	for e, l := range labels {
		m, err := g.VertexMeta(l.String())
		require.NoError(t, err)
		assert.Equal(t, e, m[grassmann.MetaIndex])
		assert.Equal(t, len(l), m[grassmann.MetaLayer])
		assert.Equal(t, l.String(), m[grassmann.MetaLabel])

		w, err := c.Subspace(e)
		require.NoError(t, err)
		assert.Equal(t, w.String(), l.String())
	}
}

func TestExport_RoundTrip(t *testing.T) {
	c := build(t, 3, 2, 2)
	dir := t.TempDir()

	for _, name := range []string{"plane.graphml", "plane.xml", "plane.yaml", "plane.yml"} {
		t.Run(name, func(t *testing.T) {
			path := filepath.Join(dir, name)
			require.NoError(t, c.Export(path))

			g, err := export.ReadFile(path)
			require.NoError(t, err)
			assert.True(t, g.Directed())
			assert.Equal(t, 8, g.VertexCount())
			assert.Equal(t, 7, g.EdgeCount())

			meta, err := g.VertexMeta("[[0,1,1]]")
			require.NoError(t, err)
			assert.Equal(t, 1, meta[grassmann.MetaDim])
			assert.Equal(t, 3, meta[grassmann.MetaIndex])
			assert.True(t, g.HasEdge("[]", "[[1,1,1]]"))
		})
	}

	assert.ErrorIs(t, c.Export(filepath.Join(dir, "plane.dot")), export.ErrUnknownFormat)
}
