// SPDX-License-Identifier: MIT

// Package export serialises a core.Graph to interchange formats and reads it back.
//
// Formats:
//   - GraphML (.graphml, .xml): one <key> per metadata name with an inferred
//     attr.type, nodes in sorted ID order, edges in insertion order.
//   - YAML (.yaml, .yml): a document with directed, nodes (id + meta) and
//     edges (id, from, to).
//
// Reading a written file yields a graph with the same vertices, metadata and
// edges; edge IDs are reassigned by core in the same order.
package export
