// SPDX-License-Identifier: MIT

// Package core provides the thread-safe in-memory Graph used to carry Hasse
// diagrams and their exported, relabeled forms.
//
// The Graph G = (V,E) supports:
//
//   - Directed vs. undirected edges (WithDirected)
//   - Parallel edges / multi-graphs (WithMultiEdges)
//   - Self-loops (WithLoops)
//   - Per-vertex metadata (SetVertexMeta / VertexMeta)
//   - Constant-time edge lookups via nested maps:
//     out[from][to][edgeID] = struct{}{} and, for directed graphs, the mirror
//     in[to][from][edgeID] so predecessor queries are as cheap as successor ones.
//   - Monotonic edge IDs ("e1", "e2", …) in insertion order.
//   - Separate sync.RWMutex for vertices (muVert) and edges+adjacency (muEdgeAdj).
//
// Determinism:
//
//	Vertices() and NeighborIDs()/InNeighborIDs() return lexicographically sorted IDs.
//	Edges() and Neighbors() return edges in insertion order.
//
// Core Methods:
//
//	AddVertex(id) error                    // O(1), idempotent
//	HasVertex(id) bool                     // O(1)
//	SetVertexMeta(id, key, value) error    // O(1)
//	VertexMeta(id) (map[string]any, error) // O(m) copy
//	AddEdge(from, to) (edgeID, error)      // O(1), creates endpoints
//	HasEdge(from, to) bool                 // O(1)
//	Neighbors(id) ([]*Edge, error)         // O(d log d)
//	NeighborIDs(id) ([]string, error)      // successors (undirected: all neighbours)
//	InNeighborIDs(id) ([]string, error)    // predecessors (undirected: all neighbours)
//	Vertices() []string, Edges() []*Edge, VertexCount(), EdgeCount()
//	Clone() *Graph                         // deep copy
//	RelabelView(g, mapping) (*Graph, error)
//
// Errors:
//
//	ErrEmptyVertexID       – zero-length vertex ID
//	ErrVertexNotFound      – missing vertex
//	ErrLoopNotAllowed      – self-loop when loops disabled
//	ErrMultiEdgeNotAllowed – parallel edge when multi-edges disabled
//	ErrRelabelCollision    – relabel mapping sends two vertices to one ID
package core
