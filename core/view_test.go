// SPDX-License-Identifier: MIT

package core_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/grassmann/core"
)

// TestRelabelView maps every vertex and keeps topology and metadata.
func TestRelabelView(t *testing.T) {
	g := diamond(t)
	require.NoError(t, g.SetVertexMeta("3", "rank", 2))

	r, err := core.RelabelView(g, map[string]string{"0": "bottom", "3": "top"})
	require.NoError(t, err)

	assert.Equal(t, []string{"1", "2", "bottom", "top"}, r.Vertices())
	assert.True(t, r.HasEdge("bottom", "1"))
	assert.True(t, r.HasEdge("2", "top"))
	assert.Equal(t, 4, r.EdgeCount())
	meta, err := r.VertexMeta("top")
	require.NoError(t, err)
	assert.Equal(t, 2, meta["rank"])

	// source untouched
	assert.True(t, g.HasVertex("0"))
	assert.False(t, g.HasVertex("bottom"))
}

// TestRelabelView_Errors covers collisions and empty targets.
func TestRelabelView_Errors(t *testing.T) {
	g := diamond(t)

	_, err := core.RelabelView(g, map[string]string{"1": "x", "2": "x"})
	require.ErrorIs(t, err, core.ErrRelabelCollision)

	_, err = core.RelabelView(g, map[string]string{"1": "2"})
	require.ErrorIs(t, err, core.ErrRelabelCollision)

	_, err = core.RelabelView(g, map[string]string{"1": ""})
	require.ErrorIs(t, err, core.ErrEmptyVertexID)
}
