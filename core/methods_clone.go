// SPDX-License-Identifier: MIT

// File: methods_clone.go
// Role: Deep copies of graph instances.
// Determinism:
//   - Clone carries nextEdgeID and edge sequence numbers, so Edges() order and
//     future edge IDs on the clone match the source.

package core

// Clone returns a deep copy of the Graph: configuration, vertices (with a
// shallow copy of each metadata map), edges and adjacency.
// Complexity: O(V + E).
func (g *Graph) Clone() *Graph {
	g.muVert.RLock()
	defer g.muVert.RUnlock()
	g.muEdgeAdj.RLock()
	defer g.muEdgeAdj.RUnlock()

	clone := NewGraph(g.options()...)
	clone.nextEdgeID = g.nextEdgeID
	for id, v := range g.vertices {
		clone.vertices[id] = &Vertex{ID: v.ID, Metadata: copyMeta(v.Metadata)}
	}
	for _, e := range g.edges {
		ne := *e
		clone.insertEdgeLocked(&ne)
	}

	return clone
}
