// SPDX-License-Identifier: MIT

// File: methods_edges.go
// Role: Edge lifecycle and catalog queries.
// Determinism:
//   - Edge IDs are "e<seq>" with seq strictly increasing per graph.
//   - Edges() returns edges in insertion order.
// Concurrency:
//   - AddEdge takes muVert then muEdgeAdj (write) so endpoint creation and
//     edge insertion are one atomic step.

package core

import (
	"fmt"
	"sort"
)

const edgeIDPrefix = "e"

// AddEdge creates an edge from → to and returns its ID. Missing endpoints are
// created.
//
// Implementation:
//   - Stage 1: Validate IDs and the loop policy.
//   - Stage 2: Under both locks, ensure endpoints and reject parallel edges
//     unless WithMultiEdges was given.
//   - Stage 3: Register the edge in the catalog and adjacency maps (mirrored
//     in out for undirected graphs, recorded in in for directed graphs).
//
// Errors: ErrEmptyVertexID, ErrLoopNotAllowed, ErrMultiEdgeNotAllowed.
// Complexity: O(1) amortized.
func (g *Graph) AddEdge(from, to string) (string, error) {
	if from == "" || to == "" {
		return "", ErrEmptyVertexID
	}
	if from == to && !g.allowLoops {
		return "", ErrLoopNotAllowed
	}

	g.muVert.Lock()
	defer g.muVert.Unlock()
	g.muEdgeAdj.Lock()
	defer g.muEdgeAdj.Unlock()

	g.addVertexLocked(from)
	g.addVertexLocked(to)

	if !g.allowMulti && len(g.out[from][to]) > 0 {
		return "", fmt.Errorf("AddEdge(%q,%q): %w", from, to, ErrMultiEdgeNotAllowed)
	}

	g.nextEdgeID++
	e := &Edge{
		ID:       fmt.Sprintf("%s%d", edgeIDPrefix, g.nextEdgeID),
		From:     from,
		To:       to,
		Directed: g.directed,
		seq:      g.nextEdgeID,
	}
	g.insertEdgeLocked(e)

	return e.ID, nil
}

// insertEdgeLocked stores e in the catalog and adjacency; caller holds muEdgeAdj.
func (g *Graph) insertEdgeLocked(e *Edge) {
	g.edges[e.ID] = e
	link(g.out, e.From, e.To, e.ID)
	if !e.Directed {
		if e.From != e.To {
			link(g.out, e.To, e.From, e.ID)
		}
		return
	}
	link(g.in, e.To, e.From, e.ID)
}

// link sets m[a][b][eid], allocating buckets on demand.
func link(m map[string]map[string]map[string]struct{}, a, b, eid string) {
	if m[a] == nil {
		m[a] = make(map[string]map[string]struct{})
	}
	if m[a][b] == nil {
		m[a][b] = make(map[string]struct{})
	}
	m[a][b][eid] = struct{}{}
}

// HasEdge reports true if at least one edge from 'from' to 'to' exists.
// Complexity: O(1).
func (g *Graph) HasEdge(from, to string) bool {
	if from == "" || to == "" {
		return false
	}
	g.muEdgeAdj.RLock()
	defer g.muEdgeAdj.RUnlock()

	return len(g.out[from][to]) > 0
}

// Edges returns all edges in insertion order.
// Complexity: O(E·logE)
func (g *Graph) Edges() []*Edge {
	g.muEdgeAdj.RLock()
	defer g.muEdgeAdj.RUnlock()
	out := make([]*Edge, 0, len(g.edges))
	for _, e := range g.edges {
		out = append(out, e)
	}
	sortBySeq(out)

	return out
}

// EdgeCount returns total number of edges. O(1).
func (g *Graph) EdgeCount() int {
	g.muEdgeAdj.RLock()
	defer g.muEdgeAdj.RUnlock()

	return len(g.edges)
}

func sortBySeq(es []*Edge) {
	sort.Slice(es, func(i, j int) bool { return es[i].seq < es[j].seq })
}
