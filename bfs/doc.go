// SPDX-License-Identifier: MIT

// Package bfs provides breadth-first search over a core.Graph.
//
// A search returns the visit order, edge-count depths and BFS-tree parents.
// WithReverse follows edges backwards, so on a Hasse diagram a forward search
// reaches everything above the start and a reverse search everything below.
// WithMaxDepth bounds the radius and WithOnVisit streams vertices as they are
// reached.
//
// Neighbour IDs come back sorted from core, so the order is deterministic.
package bfs
