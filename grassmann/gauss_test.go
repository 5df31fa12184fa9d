// SPDX-License-Identifier: MIT

package grassmann_test

import (
	"math/big"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/katalvlaran/grassmann/grassmann"
)

func TestGaussBinomial(t *testing.T) {
	cases := []struct {
		n, k, q int
		want    int64
	}{
		{3, 0, 2, 1},
		{3, 1, 2, 7},
		{3, 2, 2, 7},
		{5, 1, 2, 31},
		{5, 2, 2, 155},
		{4, 2, 3, 130},
		{3, 1, 4, 21},
		{2, 1, 5, 6},
		{2, 2, 5, 1},
		{3, 4, 2, 0},
		{3, -1, 2, 0},
	}
	for _, tc := range cases {
		got := grassmann.GaussBinomial(tc.n, tc.k, tc.q)
		assert.Equal(t, 0, got.Cmp(big.NewInt(tc.want)), "[%d choose %d]_%d = %s", tc.n, tc.k, tc.q, got)
	}
}

func TestGaussBinomial_Symmetric(t *testing.T) {
	for n := 0; n <= 8; n++ {
		for k := 0; k <= n; k++ {
			a := grassmann.GaussBinomial(n, k, 3)
			b := grassmann.GaussBinomial(n, n-k, 3)
			assert.Equal(t, 0, a.Cmp(b), "n=%d k=%d", n, k)
		}
	}
}

// TestGaussBinomial_Large exceeds int64 without losing exactness.
func TestGaussBinomial_Large(t *testing.T) {
	got := grassmann.GaussBinomial(40, 20, 2)
	assert.False(t, got.IsInt64())

	// Pascal rule: [n k] = [n-1 k-1] + q^k [n-1 k]
	qk := new(big.Int).Exp(big.NewInt(2), big.NewInt(20), nil)
	want := new(big.Int).Mul(qk, grassmann.GaussBinomial(39, 20, 2))
	want.Add(want, grassmann.GaussBinomial(39, 19, 2))
	assert.Equal(t, 0, got.Cmp(want))
}
