// SPDX-License-Identifier: MIT

// Package matrix - Dense storage (row-major) & safe accessors.
//
// Purpose:
//   - Provide a cache-friendly row-major buffer with the explicit index formula i*cols + j.
//   - Guarantee safety at the public surface: At/Set/Inc return errors instead of panicking.
//   - Keep algorithmic determinism (fixed loop orders, no map iteration).
//
// Complexity quicksheet:
//   - NewDense: O(r*c) zero-init; At/Set/Inc: O(1); Clone/Equal: O(r*c).

package matrix

import (
	"fmt"
	"strconv"
	"strings"
)

// ---------- error context tags ----------

const (
	ctxAt    = "At"
	ctxSet   = "Set"
	ctxInc   = "Inc"
	ctxApply = "Apply"
)

// ---------- Formatting literals  ----------
const (
	_fmtRowOpen  = "["
	_fmtRowClose = "]\n"
	_fmtSep      = ", "
)

// denseErrorf wraps an error with a uniform Dense context and callsite indices.
// Stable, human-friendly messages; the sentinel survives via %w.
func denseErrorf(method string, row, col int, err error) error {
	return fmt.Errorf("Dense.%s(%d,%d): %w", method, row, col, err)
}

// Dense is a concrete row-major integer matrix.
//   - r,c hold dimensions (rows, cols).
//   - data is a flat buffer of length r*c in row-major order (offset = i*c + j).
type Dense struct {
	r, c int
	data []int64
}

var _ fmt.Stringer = (*Dense)(nil)

// NewDense creates an r×c zero matrix using row-major storage.
//
// Errors:
//   - ErrInvalidDimensions when rows <= 0 or cols <= 0.
//
// Complexity:
//   - Time O(r*c), Space O(r*c).
func NewDense(rows, cols int) (*Dense, error) {
	if rows <= 0 || cols <= 0 {
		return nil, ErrInvalidDimensions
	}

	return &Dense{r: rows, c: cols, data: make([]int64, rows*cols)}, nil
}

// NewDenseFrom builds a matrix from a rectangular row slice (copied).
// Errors: ErrInvalidDimensions for empty input, ErrDimensionMismatch for ragged rows.
func NewDenseFrom(rows [][]int64) (*Dense, error) {
	if len(rows) == 0 || len(rows[0]) == 0 {
		return nil, ErrInvalidDimensions
	}
	m, _ := NewDense(len(rows), len(rows[0]))
	for i, row := range rows {
		if len(row) != m.c {
			return nil, fmt.Errorf("NewDenseFrom: row %d has %d cols, want %d: %w",
				i, len(row), m.c, ErrDimensionMismatch)
		}
		copy(m.data[i*m.c:(i+1)*m.c], row)
	}

	return m, nil
}

// Rows returns the number of rows.
func (m *Dense) Rows() int { return m.r }

// Cols returns the number of columns.
func (m *Dense) Cols() int { return m.c }

// Shape returns (rows, cols).
func (m *Dense) Shape() (int, int) { return m.r, m.c }

// inBounds reports whether (i,j) addresses a cell.
func (m *Dense) inBounds(i, j int) bool {
	return i >= 0 && i < m.r && j >= 0 && j < m.c
}

// At returns the element at (i,j).
// Errors: ErrNilMatrix, ErrOutOfRange.
func (m *Dense) At(i, j int) (int64, error) {
	if m == nil {
		return 0, denseErrorf(ctxAt, i, j, ErrNilMatrix)
	}
	if !m.inBounds(i, j) {
		return 0, denseErrorf(ctxAt, i, j, ErrOutOfRange)
	}

	return m.data[i*m.c+j], nil
}

// Set assigns v at (i,j).
// Errors: ErrNilMatrix, ErrOutOfRange.
func (m *Dense) Set(i, j int, v int64) error {
	if m == nil {
		return denseErrorf(ctxSet, i, j, ErrNilMatrix)
	}
	if !m.inBounds(i, j) {
		return denseErrorf(ctxSet, i, j, ErrOutOfRange)
	}
	m.data[i*m.c+j] = v

	return nil
}

// Inc adds delta to the element at (i,j). Incidence builders count with it,
// so repeated relation entries accumulate instead of overwriting.
func (m *Dense) Inc(i, j int, delta int64) error {
	if m == nil {
		return denseErrorf(ctxInc, i, j, ErrNilMatrix)
	}
	if !m.inBounds(i, j) {
		return denseErrorf(ctxInc, i, j, ErrOutOfRange)
	}
	m.data[i*m.c+j] += delta

	return nil
}

// Row returns a copy of row i.
func (m *Dense) Row(i int) ([]int64, error) {
	if m == nil {
		return nil, denseErrorf(ctxAt, i, 0, ErrNilMatrix)
	}
	if i < 0 || i >= m.r {
		return nil, denseErrorf(ctxAt, i, 0, ErrOutOfRange)
	}
	out := make([]int64, m.c)
	copy(out, m.data[i*m.c:(i+1)*m.c])

	return out, nil
}

// RawRows returns a deep copy of the matrix as a slice of rows.
func (m *Dense) RawRows() [][]int64 {
	out := make([][]int64, m.r)
	for i := range out {
		out[i] = make([]int64, m.c)
		copy(out[i], m.data[i*m.c:(i+1)*m.c])
	}

	return out
}

// Apply replaces every element with fn(i, j, v), row-major.
func (m *Dense) Apply(fn func(i, j int, v int64) int64) error {
	if m == nil {
		return denseErrorf(ctxApply, 0, 0, ErrNilMatrix)
	}
	var i, j, off int
	for i = 0; i < m.r; i++ {
		off = i * m.c
		for j = 0; j < m.c; j++ {
			m.data[off+j] = fn(i, j, m.data[off+j])
		}
	}

	return nil
}

// Clone returns a deep copy.
func (m *Dense) Clone() *Dense {
	if m == nil {
		return nil
	}
	buf := make([]int64, len(m.data))
	copy(buf, m.data)

	return &Dense{r: m.r, c: m.c, data: buf}
}

// Equal reports whether m and o have the same shape and elements.
func (m *Dense) Equal(o *Dense) bool {
	if m == nil || o == nil {
		return m == o
	}
	if m.r != o.r || m.c != o.c {
		return false
	}
	for k := range m.data {
		if m.data[k] != o.data[k] {
			return false
		}
	}

	return true
}

// String renders one bracketed row per line, e.g. "[1, 0]\n[0, 1]\n".
func (m *Dense) String() string {
	if m == nil {
		return "<nil>"
	}
	var sb strings.Builder
	for i := 0; i < m.r; i++ {
		sb.WriteString(_fmtRowOpen)
		for j := 0; j < m.c; j++ {
			if j > 0 {
				sb.WriteString(_fmtSep)
			}
			sb.WriteString(strconv.FormatInt(m.data[i*m.c+j], 10))
		}
		sb.WriteString(_fmtRowClose)
	}

	return sb.String()
}
