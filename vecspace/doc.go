// SPDX-License-Identifier: MIT

// Package vecspace models the ambient vector space F_q^n and its linear
// subspaces.
//
// Every Subspace is stored by its reduced row-echelon basis, which is unique
// for a given span. That basis doubles as the subspace's identity: Key() turns
// it into a compact map key, so deduplicating subspaces by span is a map lookup
// instead of a pairwise equality scan.
//
// The Space is passed explicitly to every operation that needs field
// arithmetic; nothing in this package keeps ambient global state.
package vecspace
