// SPDX-License-Identifier: MIT

// Package grassmann is the module root of a small toolkit for graded posets of
// subspaces over finite fields.
//
// The actual entry point is the grassmann/grassmann package; this file only maps
// the layout:
//
//	field/         GF(q) arithmetic for prime powers q ≤ 256
//	vecspace/      F_q^n, vector indexing, RREF spans and containment
//	core/          thread-safe directed graph with vertex metadata
//	dfs/           topological sort and longest-path layers over a DAG
//	bfs/           breadth-first search, forward or reverse
//	matrix/        dense int64 matrices, products, reduction, rank mod p
//	poset/         graded poset backed by its Hasse diagram
//	grassmann/     subspace enumeration, covers, incidence maps, chain check
//	export/        GraphML and YAML encoders/decoders for core.Graph
//	config/        YAML configuration with ${VAR} expansion
//	logger/        zap logger construction and context plumbing
//	metrics/       Prometheus build instruments
//	cmd/grassmann  the command-line front end
//
// Example:
//
//	c, err := grassmann.New(5, 3, 2)
//	if err != nil {
//		log.Fatal(err)
//	}
//	fmt.Println(c.LevelSetSizes()) // [1 31 155]
package grassmann
