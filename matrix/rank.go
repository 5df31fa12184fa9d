// SPDX-License-Identifier: MIT

package matrix

import "math/bits"

// RankMod returns the rank of m over the field Z/p.
//
// Implementation:
//   - Stage 1: validate m and p (p >= 2 and prime).
//   - Stage 2: copy m reduced mod p.
//   - Stage 3: forward elimination, column by column; the first row with a
//     non-zero entry becomes the pivot, is scaled to 1, and clears the rows below.
//
// Errors: ErrNilMatrix, ErrInvalidModulus (p < 2), ErrNonPrimeModulus.
//
// Complexity: O(r*c*min(r,c)) time, O(r*c) space.
func RankMod(m *Dense, p int64) (int, error) {
	if err := ValidateNotNil(m); err != nil {
		return 0, matrixErrorf(opRankMod, err)
	}
	if p < 2 {
		return 0, matrixErrorf(opRankMod, ErrInvalidModulus)
	}
	if !IsPrime(p) {
		return 0, matrixErrorf(opRankMod, ErrNonPrimeModulus)
	}

	a, _ := Mod(m, p)
	rows, cols := a.r, a.c
	rank := 0
	for col := 0; col < cols && rank < rows; col++ {
		pivot := -1
		for i := rank; i < rows; i++ {
			if a.data[i*cols+col] != 0 {
				pivot = i
				break
			}
		}
		if pivot < 0 {
			continue
		}
		a.swapRows(pivot, rank)

		inv := powMod(a.data[rank*cols+col], p-2, p)
		for j := col; j < cols; j++ {
			a.data[rank*cols+j] = mulMod(a.data[rank*cols+j], inv, p)
		}
		for i := rank + 1; i < rows; i++ {
			f := a.data[i*cols+col]
			if f == 0 {
				continue
			}
			for j := col; j < cols; j++ {
				a.data[i*cols+j] = ModInt(a.data[i*cols+j]-mulMod(f, a.data[rank*cols+j], p), p)
			}
		}
		rank++
	}

	return rank, nil
}

// swapRows exchanges rows i and j in place.
func (m *Dense) swapRows(i, j int) {
	if i == j {
		return
	}
	ri := m.data[i*m.c : (i+1)*m.c]
	rj := m.data[j*m.c : (j+1)*m.c]
	for k := range ri {
		ri[k], rj[k] = rj[k], ri[k]
	}
}

// IsPrime reports whether p is a prime number (trial division).
func IsPrime(p int64) bool {
	if p < 2 {
		return false
	}
	for d := int64(2); d*d <= p; d++ {
		if p%d == 0 {
			return false
		}
	}

	return true
}

// mulMod returns a*b mod p for a, b in [0, p) without overflow.
func mulMod(a, b, p int64) int64 {
	hi, lo := bits.Mul64(uint64(a), uint64(b))

	return int64(bits.Rem64(hi, lo, uint64(p)))
}

// powMod returns base^exp mod p by square-and-multiply.
func powMod(base, exp, p int64) int64 {
	result := int64(1) % p
	base = ModInt(base, p)
	for exp > 0 {
		if exp&1 == 1 {
			result = mulMod(result, base, p)
		}
		base = mulMod(base, base, p)
		exp >>= 1
	}

	return result
}
