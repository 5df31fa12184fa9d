// SPDX-License-Identifier: MIT

package bfs

import (
	"errors"
	"fmt"
)

var (
	// ErrGraphNil is returned if a nil graph pointer is passed.
	ErrGraphNil = errors.New("bfs: graph is nil")

	// ErrStartVertexNotFound is returned when the start ID is absent.
	ErrStartVertexNotFound = errors.New("bfs: start vertex not found")

	// ErrOptionViolation is returned when an Option carries an invalid value.
	ErrOptionViolation = errors.New("bfs: invalid option supplied")

	// ErrNeighbors is returned when fetching neighbors from the graph fails.
	ErrNeighbors = errors.New("bfs: neighbor iteration error")

	// ErrNoPath is returned by PathTo for a vertex the search never reached.
	ErrNoPath = errors.New("bfs: no path")
)

// Option tunes a single search.
type Option func(*options)

type options struct {
	visit    func(id string, depth int) error
	maxDepth int // < 0: unbounded
	reverse  bool
	err      error
}

func defaultOptions() options {
	return options{maxDepth: -1}
}

// WithOnVisit calls fn for every vertex in visit order. A non-nil error stops
// the search and is returned wrapped.
func WithOnVisit(fn func(id string, depth int) error) Option {
	return func(o *options) { o.visit = fn }
}

// WithMaxDepth keeps only vertices at most d edges from the start; d == 0
// visits the start alone. Negative d is rejected with ErrOptionViolation.
func WithMaxDepth(d int) Option {
	return func(o *options) {
		if d < 0 {
			o.err = fmt.Errorf("%w: max depth %d", ErrOptionViolation, d)
			return
		}
		o.maxDepth = d
	}
}

// WithReverse walks predecessors instead of successors.
func WithReverse() Option {
	return func(o *options) { o.reverse = true }
}

// Result of a search. Depth counts edges from the start; Parent is the
// BFS-tree predecessor, absent for the start itself.
type Result struct {
	Start  string
	Order  []string
	Depth  map[string]int
	Parent map[string]string
}

// PathTo walks Parent links back from dest and returns start..dest.
// On an unweighted graph this is a shortest path.
func (r *Result) PathTo(dest string) ([]string, error) {
	d, ok := r.Depth[dest]
	if !ok {
		return nil, fmt.Errorf("PathTo(%q): %w", dest, ErrNoPath)
	}
	path := make([]string, d+1)
	for cur, i := dest, d; i >= 0; i-- {
		path[i] = cur
		cur = r.Parent[cur]
	}

	return path, nil
}
