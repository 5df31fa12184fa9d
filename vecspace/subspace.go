// SPDX-License-Identifier: MIT

package vecspace

import (
	"fmt"
	"strconv"
	"strings"
)

// zeroKey is the Key of the zero subspace: dimension byte 0, no rows.
const zeroKey = "\x00"

// Subspace is a linear subspace held by its reduced row-echelon basis.
// The zero value is not usable; obtain subspaces from Space.Span or Space.Zero.
type Subspace struct {
	space  *Space
	basis  []Vector // RREF rows, pivots strictly increasing
	pivots []int    // pivot column of each row
	key    string
}

// Span returns the subspace spanned by vs (zero subspace for no vectors).
//
// Implementation:
//   - Stage 1: validate and copy every vector into a working matrix.
//   - Stage 2: Gauss-Jordan elimination column by column: pick the first
//     non-zero pivot, normalise it to 1, clear the column above and below.
//   - Stage 3: keep the non-zero rows; they form the unique RREF basis.
//
// Complexity: O(m·n·min(m,n)) field operations for m vectors.
func (s *Space) Span(vs ...Vector) (Subspace, error) {
	rows := make([]Vector, 0, len(vs))
	for i, v := range vs {
		if err := s.checkVector(v); err != nil {
			return Subspace{}, fmt.Errorf("vecspace.Span: vector %d: %w", i, err)
		}
		rows = append(rows, append(Vector(nil), v...))
	}

	f := s.f
	rank := 0
	pivots := make([]int, 0, len(rows))
	for col := 0; col < s.n && rank < len(rows); col++ {
		pivot := -1
		for i := rank; i < len(rows); i++ {
			if rows[i][col] != 0 {
				pivot = i
				break
			}
		}
		if pivot < 0 {
			continue
		}
		rows[rank], rows[pivot] = rows[pivot], rows[rank]

		inv, _ := f.Inv(rows[rank][col]) // non-zero by pivot choice
		for j := col; j < s.n; j++ {
			rows[rank][j] = f.Mul(rows[rank][j], inv)
		}
		for i := range rows {
			if i == rank || rows[i][col] == 0 {
				continue
			}
			factor := rows[i][col]
			for j := col; j < s.n; j++ {
				rows[i][j] = f.Sub(rows[i][j], f.Mul(factor, rows[rank][j]))
			}
		}
		pivots = append(pivots, col)
		rank++
	}

	basis := rows[:rank]

	return Subspace{space: s, basis: basis, pivots: pivots, key: makeKey(basis)}, nil
}

// makeKey packs the dimension and the RREF entries into a string.
// Field elements are < MaxOrder = 256, so one byte per entry suffices.
func makeKey(basis []Vector) string {
	if len(basis) == 0 {
		return zeroKey
	}
	var b strings.Builder
	b.Grow(1 + len(basis)*len(basis[0]))
	b.WriteByte(byte(len(basis)))
	for _, row := range basis {
		for _, c := range row {
			b.WriteByte(byte(c))
		}
	}

	return b.String()
}

// Space returns the ambient space.
func (w Subspace) Space() *Space { return w.space }

// Dim returns the dimension of w.
func (w Subspace) Dim() int { return len(w.basis) }

// Key returns a canonical identity: equal spans in the same Space have equal keys.
func (w Subspace) Key() string { return w.key }

// Basis returns a deep copy of the RREF basis rows.
func (w Subspace) Basis() []Vector {
	out := make([]Vector, len(w.basis))
	for i, row := range w.basis {
		out[i] = append(Vector(nil), row...)
	}

	return out
}

// Rows returns the RREF basis as plain integers, the form used for labels.
func (w Subspace) Rows() [][]int {
	out := make([][]int, len(w.basis))
	for i, row := range w.basis {
		out[i] = make([]int, len(row))
		for j, c := range row {
			out[i][j] = int(c)
		}
	}

	return out
}

// Contains reports whether v lies in w.
// v is reduced against the RREF rows; v ∈ w iff the remainder is zero.
func (w Subspace) Contains(v Vector) (bool, error) {
	if err := w.space.checkVector(v); err != nil {
		return false, fmt.Errorf("vecspace.Contains: %w", err)
	}

	return w.contains(v), nil
}

func (w Subspace) contains(v Vector) bool {
	f := w.space.f
	r := append(Vector(nil), v...)
	for i, row := range w.basis {
		c := r[w.pivots[i]]
		if c == 0 {
			continue
		}
		for j := w.pivots[i]; j < len(r); j++ {
			r[j] = f.Sub(r[j], f.Mul(c, row[j]))
		}
	}
	for _, c := range r {
		if c != 0 {
			return false
		}
	}

	return true
}

// IsSubspaceOf reports whether w ⊆ u.
// Complexity: O(dim(w)·dim(u)·n).
func (w Subspace) IsSubspaceOf(u Subspace) (bool, error) {
	if w.space != u.space {
		return false, ErrSpaceMismatch
	}
	if w.Dim() > u.Dim() {
		return false, nil
	}
	for _, row := range w.basis {
		if !u.contains(row) {
			return false, nil
		}
	}

	return true, nil
}

// Equal reports whether w and u have the same span.
func (w Subspace) Equal(u Subspace) (bool, error) {
	if w.space != u.space {
		return false, ErrSpaceMismatch
	}

	return w.key == u.key, nil
}

// String renders the basis matrix, e.g. "[[1,0,2],[0,1,1]]"; the zero space is "[]".
func (w Subspace) String() string { return FormatRows(w.Rows()) }

// FormatRows renders an integer matrix as "[[a,b],[c,d]]"; no rows gives "[]".
func FormatRows(rows [][]int) string {
	var b strings.Builder
	b.WriteByte('[')
	for i, row := range rows {
		if i > 0 {
			b.WriteByte(',')
		}
		b.WriteByte('[')
		for j, c := range row {
			if j > 0 {
				b.WriteByte(',')
			}
			b.WriteString(strconv.Itoa(c))
		}
		b.WriteByte(']')
	}
	b.WriteByte(']')

	return b.String()
}
