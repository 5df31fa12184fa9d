// SPDX-License-Identifier: MIT

package core_test

import (
	"strconv"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/grassmann/core"
)

// TestConcurrentAddEdge hammers AddEdge and readers from several goroutines;
// run with -race to check the locking model.
func TestConcurrentAddEdge(t *testing.T) {
	g := core.NewGraph(core.WithDirected(true))
	const workers, per = 8, 50

	var wg sync.WaitGroup
	for w := 0; w < workers; w++ {
		wg.Add(1)
		go func(w int) {
			defer wg.Done()
			for i := 0; i < per; i++ {
				from := strconv.Itoa(w)
				to := strconv.Itoa(w*per + i + 1000)
				_, err := g.AddEdge(from, to)
				assert.NoError(t, err)
				_, _ = g.NeighborIDs(from)
				_ = g.Edges()
			}
		}(w)
	}
	wg.Wait()

	require.Equal(t, workers*per, g.EdgeCount())
	ids := make(map[string]struct{})
	for _, e := range g.Edges() {
		ids[e.ID] = struct{}{}
	}
	assert.Len(t, ids, workers*per, "edge IDs must be unique")
}
