// SPDX-License-Identifier: MIT

// Package matrix provides a small, deterministic integer matrix type used to
// carry incidence (coboundary) operators between rank levels of a graded poset.
//
// What:
//   - Dense: row-major int64 storage with safe At/Set/Inc accessors.
//   - Mul, MatVec, Transpose: exact integer products (no floating point).
//   - Mod: entrywise reduction into the canonical range [0, p).
//   - RankMod: Gaussian elimination rank over Z/p for prime p.
//
// Errors:
//
//	All public functions return sentinel errors (see errors.go) wrapped with an
//	operation tag, so callers match them with errors.Is. Nothing panics on
//	user input.
//
// Determinism:
//
//	Loop orders are fixed (row-major, i-k-j for products). Equal inputs always
//	produce bit-identical outputs.
package matrix
