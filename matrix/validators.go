// SPDX-License-Identifier: MIT
// Package: matrix
//
// Purpose:
//  - Provide a single, canonical source of truth for common validation checks.
//  - Return plain sentinel errors (no wrapping) so call sites can wrap uniformly.
//
// Determinism & Performance:
//  - All checks are pure, deterministic and allocate nothing.

package matrix

// ValidateNotNil ensures m is non-nil.
func ValidateNotNil(m *Dense) error {
	if m == nil {
		return ErrNilMatrix
	}

	return nil
}

// ValidateMulCompatible ensures a and b are non-nil and a.Cols == b.Rows.
func ValidateMulCompatible(a, b *Dense) error {
	if a == nil || b == nil {
		return ErrNilMatrix
	}
	if a.c != b.r {
		return ErrDimensionMismatch
	}

	return nil
}

// ValidateVecLen ensures len(x) == n.
func ValidateVecLen(x []int64, n int) error {
	if len(x) != n {
		return ErrDimensionMismatch
	}

	return nil
}

// ValidateModulus ensures p >= 1.
func ValidateModulus(p int64) error {
	if p < 1 {
		return ErrInvalidModulus
	}

	return nil
}
