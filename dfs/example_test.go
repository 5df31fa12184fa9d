// SPDX-License-Identifier: MIT

package dfs_test

import (
	"fmt"

	"github.com/katalvlaran/grassmann/core"
	"github.com/katalvlaran/grassmann/dfs"
)

// ExampleLongestPathLayers ranks the Hasse diagram of the subsets of {a,b}.
//
//	  ab
//	 /  \
//	a    b
//	 \  /
//	  ∅
func ExampleLongestPathLayers() {
	g := core.NewGraph(core.WithDirected(true))
	for _, e := range [][2]string{{"∅", "a"}, {"∅", "b"}, {"a", "ab"}, {"b", "ab"}} {
		_, _ = g.AddEdge(e[0], e[1])
	}

	layers, err := dfs.LongestPathLayers(g)
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	for _, v := range []string{"∅", "a", "b", "ab"} {
		fmt.Printf("%s:%d ", v, layers[v])
	}
	fmt.Println()

	// Output:
	// ∅:0 a:1 b:1 ab:2
}
