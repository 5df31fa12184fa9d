// SPDX-License-Identifier: MIT

// File: methods_adjacent.go
// Role: Neighborhood APIs (Neighbors, NeighborIDs, InNeighborIDs).
// Determinism:
//   - Neighbors() returns edges in insertion order.
//   - NeighborIDs()/InNeighborIDs() return unique IDs sorted lex asc.
// Concurrency:
//   - Reads hold muVert then muEdgeAdj read locks for a consistent snapshot.

package core

import (
	"fmt"
	"sort"
)

// Neighbors returns the edges leaving id (directed) or incident to id
// (undirected; a self-loop appears once).
//
// Errors:
//   - ErrEmptyVertexID: if id == "".
//   - ErrVertexNotFound: if the vertex does not exist.
//
// Complexity:
//   - Time O(d log d), Space O(d).
func (g *Graph) Neighbors(id string) ([]*Edge, error) {
	if id == "" {
		return nil, ErrEmptyVertexID
	}
	g.muVert.RLock()
	defer g.muVert.RUnlock()
	g.muEdgeAdj.RLock()
	defer g.muEdgeAdj.RUnlock()

	if _, ok := g.vertices[id]; !ok {
		return nil, fmt.Errorf("Neighbors(%q): %w", id, ErrVertexNotFound)
	}

	seen := make(map[string]struct{})
	var out []*Edge
	for _, bucket := range g.out[id] {
		for eid := range bucket {
			if _, dup := seen[eid]; dup {
				continue
			}
			seen[eid] = struct{}{}
			out = append(out, g.edges[eid])
		}
	}
	sortBySeq(out)

	return out, nil
}

// NeighborIDs returns the unique successors of id (all neighbours when undirected).
// Complexity: O(k log k) for k neighbours.
func (g *Graph) NeighborIDs(id string) ([]string, error) {
	return g.adjacentIDs(id, g.out)
}

// InNeighborIDs returns the unique predecessors of id. On undirected graphs it
// is identical to NeighborIDs.
// Complexity: O(k log k) for k neighbours.
func (g *Graph) InNeighborIDs(id string) ([]string, error) {
	if !g.directed {
		return g.adjacentIDs(id, g.out)
	}

	return g.adjacentIDs(id, g.in)
}

// adjacentIDs lists the non-empty buckets of m[id], sorted.
func (g *Graph) adjacentIDs(id string, m map[string]map[string]map[string]struct{}) ([]string, error) {
	if id == "" {
		return nil, ErrEmptyVertexID
	}
	g.muVert.RLock()
	defer g.muVert.RUnlock()
	g.muEdgeAdj.RLock()
	defer g.muEdgeAdj.RUnlock()

	if _, ok := g.vertices[id]; !ok {
		return nil, fmt.Errorf("adjacency(%q): %w", id, ErrVertexNotFound)
	}
	ids := make([]string, 0, len(m[id]))
	for v, bucket := range m[id] {
		if len(bucket) > 0 {
			ids = append(ids, v)
		}
	}
	sort.Strings(ids)

	return ids, nil
}
