// SPDX-License-Identifier: MIT

package grassmann

import "math/big"

// GaussBinomial returns the Gaussian binomial coefficient [n choose k]_q,
// the number of k-dimensional subspaces of F_q^n:
//
//	prod_{j<k} (q^(n-j) - 1) / prod_{j<k} (q^(j+1) - 1)
//
// It is 1 for k == 0 and 0 for k < 0 or k > n. The division is exact.
func GaussBinomial(n, k, q int) *big.Int {
	if k < 0 || k > n {
		return new(big.Int)
	}
	bq := big.NewInt(int64(q))
	one := big.NewInt(1)
	num, den := big.NewInt(1), big.NewInt(1)
	term := new(big.Int)
	for j := 0; j < k; j++ {
		term.Exp(bq, big.NewInt(int64(n-j)), nil)
		num.Mul(num, term.Sub(term, one))
		term.Exp(bq, big.NewInt(int64(j+1)), nil)
		den.Mul(den, term.Sub(term, one))
	}

	return num.Quo(num, den)
}
