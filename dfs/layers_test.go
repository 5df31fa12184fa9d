// SPDX-License-Identifier: MIT

package dfs_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/grassmann/core"
	"github.com/katalvlaran/grassmann/dfs"
)

// TestLayers_LongestPath uses a shortcut edge A→D that must not pull D down.
func TestLayers_LongestPath(t *testing.T) {
	g := directed(t,
		[2]string{"A", "B"}, [2]string{"B", "C"}, [2]string{"C", "D"},
		[2]string{"A", "D"}, [2]string{"X", "C"},
	)
	require.NoError(t, g.AddVertex("lonely"))

	layers, err := dfs.LongestPathLayers(g)
	require.NoError(t, err)
	assert.Equal(t, map[string]int{
		"A": 0, "B": 1, "C": 2, "D": 3, "X": 0, "lonely": 0,
	}, layers)
}

// TestLayers_Errors propagates sort failures.
func TestLayers_Errors(t *testing.T) {
	_, err := dfs.LongestPathLayers(nil)
	assert.ErrorIs(t, err, dfs.ErrGraphNil)

	_, err = dfs.LongestPathLayers(core.NewGraph())
	assert.ErrorIs(t, err, dfs.ErrUndirected)

	g := directed(t, [2]string{"A", "B"}, [2]string{"B", "A"})
	_, err = dfs.LongestPathLayers(g)
	assert.ErrorIs(t, err, dfs.ErrCycleDetected)
}
