// SPDX-License-Identifier: MIT
// Package matrix: sentinel error set.
// Every message is prefixed with "matrix: " and call sites wrap with an
// operation tag, e.g. fmt.Errorf("Mul: %w", ErrDimensionMismatch).

package matrix

import "errors"

var (
	// ErrInvalidDimensions indicates that requested matrix dimensions are non-positive.
	ErrInvalidDimensions = errors.New("matrix: dimensions must be > 0")

	// ErrOutOfRange indicates that an index (row or column) is outside valid bounds.
	// Public indexers (At/Set/Inc) return this, never panic.
	ErrOutOfRange = errors.New("matrix: index out of range")

	// ErrDimensionMismatch indicates incompatible operand shapes,
	// e.g. Mul where a.Cols != b.Rows, or MatVec with a wrong vector length.
	ErrDimensionMismatch = errors.New("matrix: dimension mismatch")

	// ErrNilMatrix indicates that a nil *Dense (receiver or argument) was used.
	ErrNilMatrix = errors.New("matrix: nil receiver")

	// ErrInvalidModulus is returned when a modulus is < 1 (Mod) or < 2 (RankMod).
	ErrInvalidModulus = errors.New("matrix: modulus must be positive")

	// ErrNonPrimeModulus is returned by RankMod when p is not prime;
	// Z/p is then not a field and elimination rank is undefined.
	ErrNonPrimeModulus = errors.New("matrix: modulus is not prime")
)
