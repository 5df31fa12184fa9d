// SPDX-License-Identifier: MIT

// Package grassmann builds the graded poset of linear subspaces of F_q^n of
// dimension 0..d-1 as a cell complex, and its coboundary operators.
//
// Construction (New) is a single synchronous batch:
//
//	field.New(q) → vecspace.New(f, n)
//	  → enumerate: span every d-tuple of vectors, dedupe by RREF key
//	  → count check: #dim-i == [n choose i]_q
//	  → covers: dim-adjacent inclusions, wrapped in a poset.Poset
//	  → δ_i: incidence counts mod Coefficient()
//	  → chain check: δ_{i+1}·δ_i ≡ 0
//
// Any failed check aborts with an *InvariantViolation; no partial Complex is
// ever returned. Element indices follow first appearance in the enumeration,
// which is deterministic, so identical parameters give bit-identical results.
//
// The coefficient comes from a CoefficientPolicy. DefaultCoefficient (the
// smallest prime factor of q+1) makes the chain check pass for every q;
// LegacyCoefficient (3 for q == 2, else 2) is kept for comparison and fails for
// even q > 2 once d >= 3.
//
// Example:
//
//	c, err := grassmann.New(5, 3, 2)
//	if err != nil { ... }
//	c.LevelSetSizes() // [1 31 155]
//	c.Coefficient()   // 3
//	d0, _ := c.IncidenceMatrix(0)
package grassmann
