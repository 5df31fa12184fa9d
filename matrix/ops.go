// SPDX-License-Identifier: MIT

// Package matrix - exact integer algebra on Dense.
//
// Purpose:
//   - Mul/MatVec/Transpose with fixed loop orders (deterministic, no floating point).
//   - Mod and IsZero for working in Z/p without committing to a prime p.
//
// Complexity:
//   - Mul: O(r*k*c) with zero-skipping on the left operand; MatVec: O(r*c);
//     Mod/Transpose/IsZero: O(r*c).

package matrix

import "fmt"

// operation tags for error wrapping
const (
	opMul       = "Mul"
	opMatVec    = "MatVec"
	opTranspose = "Transpose"
	opMod       = "Mod"
	opRankMod   = "RankMod"
)

// matrixErrorf wraps an error with the operation tag.
func matrixErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}

// Mul returns the product a×b.
//
// Implementation:
//   - Stage 1: ValidateMulCompatible.
//   - Stage 2: i-k-j accumulation into a zeroed result, skipping zero a[i,k].
//
// Errors: ErrNilMatrix, ErrDimensionMismatch.
func Mul(a, b *Dense) (*Dense, error) {
	if err := ValidateMulCompatible(a, b); err != nil {
		return nil, matrixErrorf(opMul, err)
	}
	aRows, aCols, bCols := a.r, a.c, b.c
	res, err := NewDense(aRows, bCols)
	if err != nil {
		return nil, matrixErrorf(opMul, err)
	}

	var (
		i, j, k                            int
		av                                 int64
		rowOffsetA, rowOffsetB, rowOffsetR int
	)
	for i = 0; i < aRows; i++ {
		rowOffsetA = i * aCols
		rowOffsetR = i * bCols
		for k = 0; k < aCols; k++ {
			av = a.data[rowOffsetA+k]
			if av == 0 {
				continue // skip zero for performance
			}
			rowOffsetB = k * bCols
			for j = 0; j < bCols; j++ {
				res.data[rowOffsetR+j] += av * b.data[rowOffsetB+j]
			}
		}
	}

	return res, nil
}

// MatVec returns m·x as a fresh slice of length m.Rows().
// Errors: ErrNilMatrix, ErrDimensionMismatch (len(x) != m.Cols()).
func MatVec(m *Dense, x []int64) ([]int64, error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, matrixErrorf(opMatVec, err)
	}
	if err := ValidateVecLen(x, m.c); err != nil {
		return nil, matrixErrorf(opMatVec, err)
	}
	out := make([]int64, m.r)
	var i, j, off int
	for i = 0; i < m.r; i++ {
		off = i * m.c
		for j = 0; j < m.c; j++ {
			out[i] += m.data[off+j] * x[j]
		}
	}

	return out, nil
}

// Transpose returns mᵀ.
func Transpose(m *Dense) (*Dense, error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, matrixErrorf(opTranspose, err)
	}
	t := &Dense{r: m.c, c: m.r, data: make([]int64, len(m.data))}
	for i := 0; i < m.r; i++ {
		for j := 0; j < m.c; j++ {
			t.data[j*m.r+i] = m.data[i*m.c+j]
		}
	}

	return t, nil
}

// Mod returns a copy of m with every entry reduced into [0, p).
// Negative entries are lifted, so Mod(-1, 3) == 2.
// Errors: ErrNilMatrix, ErrInvalidModulus (p < 1).
func Mod(m *Dense, p int64) (*Dense, error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, matrixErrorf(opMod, err)
	}
	if err := ValidateModulus(p); err != nil {
		return nil, matrixErrorf(opMod, err)
	}
	out := m.Clone()
	for k, v := range out.data {
		out.data[k] = ModInt(v, p)
	}

	return out, nil
}

// ModInt reduces v into [0, p). p must be >= 1.
func ModInt(v, p int64) int64 {
	r := v % p
	if r < 0 {
		r += p
	}

	return r
}

// IsZero reports whether every entry of m is zero. A nil matrix is not zero.
func IsZero(m *Dense) bool {
	if m == nil {
		return false
	}
	for _, v := range m.data {
		if v != 0 {
			return false
		}
	}

	return true
}
