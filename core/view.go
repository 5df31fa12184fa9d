// SPDX-License-Identifier: MIT

// File: view.go
// Role: Non-mutating graph views.
// Concurrency:
//   - Read locks on source; result is a fresh graph instance.

package core

import "fmt"

// RelabelView returns a copy of g whose vertex IDs are replaced through
// mapping. Vertices absent from mapping keep their ID. Metadata, edge IDs and
// edge order are preserved. The input graph is not mutated.
//
// Errors:
//   - ErrEmptyVertexID: mapping sends a vertex to "".
//   - ErrRelabelCollision: two vertices would share an ID.
//
// Complexity: O(V + E).
func RelabelView(g *Graph, mapping map[string]string) (*Graph, error) {
	g.muVert.RLock()
	defer g.muVert.RUnlock()
	g.muEdgeAdj.RLock()
	defer g.muEdgeAdj.RUnlock()

	rename := func(id string) string {
		if nid, ok := mapping[id]; ok {
			return nid
		}
		return id
	}

	out := NewGraph(g.options()...)
	out.nextEdgeID = g.nextEdgeID
	for id, v := range g.vertices {
		nid := rename(id)
		if nid == "" {
			return nil, fmt.Errorf("RelabelView: vertex %q: %w", id, ErrEmptyVertexID)
		}
		if _, taken := out.vertices[nid]; taken {
			return nil, fmt.Errorf("RelabelView: %q: %w", nid, ErrRelabelCollision)
		}
		out.vertices[nid] = &Vertex{ID: nid, Metadata: copyMeta(v.Metadata)}
	}
	for _, e := range g.edges {
		ne := *e
		ne.From, ne.To = rename(e.From), rename(e.To)
		out.insertEdgeLocked(&ne)
	}

	return out, nil
}
