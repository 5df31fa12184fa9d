// SPDX-License-Identifier: MIT
// Package core_test verifies core.Graph configuration, vertex lifecycle and metadata.

package core_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/grassmann/core"
)

// TestGraph_Options asserts GraphOption flags are applied correctly.
func TestGraph_Options(t *testing.T) {
	g := core.NewGraph()
	assert.False(t, g.Directed())
	assert.False(t, g.Multigraph())
	assert.False(t, g.Looped())

	dg := core.NewGraph(core.WithDirected(true), core.WithMultiEdges(), core.WithLoops())
	assert.True(t, dg.Directed())
	assert.True(t, dg.Multigraph())
	assert.True(t, dg.Looped())
}

// TestGraph_VertexLifecycle asserts AddVertex/HasVertex invariants.
func TestGraph_VertexLifecycle(t *testing.T) {
	g := core.NewGraph()
	require.ErrorIs(t, g.AddVertex(""), core.ErrEmptyVertexID)
	assert.False(t, g.HasVertex(""))

	require.NoError(t, g.AddVertex("B"))
	require.NoError(t, g.AddVertex("A"))
	require.NoError(t, g.AddVertex("A")) // idempotent
	assert.True(t, g.HasVertex("A"))
	assert.Equal(t, 2, g.VertexCount())
	assert.Equal(t, []string{"A", "B"}, g.Vertices())
}

// TestGraph_Metadata covers SetVertexMeta/VertexMeta and copy semantics.
func TestGraph_Metadata(t *testing.T) {
	g := core.NewGraph()
	require.NoError(t, g.AddVertex("v"))

	require.NoError(t, g.SetVertexMeta("v", "rank", 2))
	meta, err := g.VertexMeta("v")
	require.NoError(t, err)
	assert.Equal(t, 2, meta["rank"])

	meta["rank"] = 99 // mutating the copy must not leak back
	again, err := g.VertexMeta("v")
	require.NoError(t, err)
	assert.Equal(t, 2, again["rank"])

	require.ErrorIs(t, g.SetVertexMeta("missing", "k", 1), core.ErrVertexNotFound)
	require.ErrorIs(t, g.SetVertexMeta("", "k", 1), core.ErrEmptyVertexID)
	_, err = g.VertexMeta("missing")
	require.ErrorIs(t, err, core.ErrVertexNotFound)
}
