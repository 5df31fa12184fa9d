// SPDX-License-Identifier: MIT

// Package field implements arithmetic in the finite field GF(q) for small prime
// powers q = p^k.
//
// A field is represented over the power basis of F_p[x]/(m(x)) where m is the
// first monic irreducible polynomial of degree k in lexicographic coefficient
// order, so the same q always yields the same field (and the same element
// encoding). An element is encoded as the integer whose base-p digits are its
// polynomial coefficients, lowest degree first:
//
//	e = c0 + c1·p + c2·p² + … + c(k-1)·p^(k-1)
//
// For prime q this is just the residue class 0..p-1.
//
// Addition, multiplication and inversion are served from tables built once in
// New. Tables are O(q²) in size, which is why New rejects q > MaxOrder.
//
// Errors:
//
//	ErrNotPrimePower  - q is not of the form p^k with p prime, k ≥ 1.
//	ErrFieldTooLarge  - q exceeds MaxOrder.
//	ErrDivisionByZero - Inv/Div called with a zero divisor.
//	ErrForeignElement - an element outside 0..q-1 was passed in.
package field
