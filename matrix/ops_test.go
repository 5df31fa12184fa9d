// SPDX-License-Identifier: MIT

package matrix_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/grassmann/matrix"
)

func mustDense(t *testing.T, rows [][]int64) *matrix.Dense {
	t.Helper()
	m, err := matrix.NewDenseFrom(rows)
	require.NoError(t, err)

	return m
}

func TestMul(t *testing.T) {
	a := mustDense(t, [][]int64{{1, 2, 0}, {0, 1, -1}})
	b := mustDense(t, [][]int64{{1, 0}, {2, 1}, {3, 4}})

	p, err := matrix.Mul(a, b)
	require.NoError(t, err)
	assert.Equal(t, [][]int64{{5, 2}, {-1, -3}}, p.RawRows())

	_, err = matrix.Mul(a, a)
	assert.ErrorIs(t, err, matrix.ErrDimensionMismatch)
	_, err = matrix.Mul(nil, b)
	assert.ErrorIs(t, err, matrix.ErrNilMatrix)
}

func TestMatVec(t *testing.T) {
	m := mustDense(t, [][]int64{{1, 1, 0}, {0, 1, 1}})
	y, err := matrix.MatVec(m, []int64{1, 2, 3})
	require.NoError(t, err)
	assert.Equal(t, []int64{3, 5}, y)

	_, err = matrix.MatVec(m, []int64{1})
	assert.ErrorIs(t, err, matrix.ErrDimensionMismatch)
	_, err = matrix.MatVec(nil, nil)
	assert.ErrorIs(t, err, matrix.ErrNilMatrix)
}

func TestTranspose(t *testing.T) {
	m := mustDense(t, [][]int64{{1, 2, 3}, {4, 5, 6}})
	tr, err := matrix.Transpose(m)
	require.NoError(t, err)
	assert.Equal(t, [][]int64{{1, 4}, {2, 5}, {3, 6}}, tr.RawRows())
}

func TestMod(t *testing.T) {
	m := mustDense(t, [][]int64{{3, -1}, {7, 0}})

	r, err := matrix.Mod(m, 3)
	require.NoError(t, err)
	assert.Equal(t, [][]int64{{0, 2}, {1, 0}}, r.RawRows())
	// source untouched
	assert.Equal(t, [][]int64{{3, -1}, {7, 0}}, m.RawRows())

	r, err = matrix.Mod(m, 1)
	require.NoError(t, err)
	assert.True(t, matrix.IsZero(r))

	_, err = matrix.Mod(m, 0)
	assert.ErrorIs(t, err, matrix.ErrInvalidModulus)
	_, err = matrix.Mod(nil, 2)
	assert.ErrorIs(t, err, matrix.ErrNilMatrix)
}

func TestIsZero(t *testing.T) {
	z, err := matrix.NewDense(2, 2)
	require.NoError(t, err)
	assert.True(t, matrix.IsZero(z))
	require.NoError(t, z.Set(1, 1, 1))
	assert.False(t, matrix.IsZero(z))
	assert.False(t, matrix.IsZero(nil))
}

// TestChainProductVanishes multiplies the two incidence maps of the subsets
// of {a,b}: each corner is reached through exactly two middle elements.
func TestChainProductVanishes(t *testing.T) {
	d0 := mustDense(t, [][]int64{{1}, {1}})
	d1 := mustDense(t, [][]int64{{1, 1}})

	p, err := matrix.Mul(d1, d0)
	require.NoError(t, err)
	assert.Equal(t, [][]int64{{2}}, p.RawRows())

	r, err := matrix.Mod(p, 2)
	require.NoError(t, err)
	assert.True(t, matrix.IsZero(r))
}
