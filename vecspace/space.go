// SPDX-License-Identifier: MIT

package vecspace

import (
	"errors"
	"fmt"
	"math"

	"github.com/katalvlaran/grassmann/field"
)

var (
	// ErrFieldNil indicates a nil *field.Field was passed to New.
	ErrFieldNil = errors.New("vecspace: field is nil")

	// ErrBadDimension indicates a non-positive ambient dimension, or one whose
	// vector count q^n does not fit in an int.
	ErrBadDimension = errors.New("vecspace: invalid dimension")

	// ErrLengthMismatch indicates a vector whose length differs from n.
	ErrLengthMismatch = errors.New("vecspace: vector length mismatch")

	// ErrForeignVector indicates a vector coordinate outside the field.
	ErrForeignVector = errors.New("vecspace: coordinate not in field")

	// ErrSpaceMismatch indicates subspaces of different ambient spaces were compared.
	ErrSpaceMismatch = errors.New("vecspace: subspaces live in different spaces")

	// ErrIndexOutOfRange indicates a vector index outside 0..Count()-1.
	ErrIndexOutOfRange = errors.New("vecspace: vector index out of range")
)

// Vector is a coordinate vector of length n.
type Vector []field.Elem

// Space is F_q^n. It is immutable and safe for concurrent use.
type Space struct {
	f     *field.Field
	n     int
	count int // q^n
}

// New returns F_q^n for the given field.
func New(f *field.Field, n int) (*Space, error) {
	if f == nil {
		return nil, ErrFieldNil
	}
	if n < 1 {
		return nil, fmt.Errorf("vecspace.New(n=%d): %w", n, ErrBadDimension)
	}
	count := 1
	for i := 0; i < n; i++ {
		if count > math.MaxInt/f.Order() {
			return nil, fmt.Errorf("vecspace.New(n=%d): %d^%d overflows: %w", n, f.Order(), n, ErrBadDimension)
		}
		count *= f.Order()
	}

	return &Space{f: f, n: n, count: count}, nil
}

// Field returns the coefficient field.
func (s *Space) Field() *field.Field { return s.f }

// Dim returns n.
func (s *Space) Dim() int { return s.n }

// Count returns the number of vectors, q^n.
func (s *Space) Count() int { return s.count }

// Vector decodes index i into its vector. Index order is lexicographic in the
// coordinates, last coordinate varying fastest; index 0 is the zero vector.
func (s *Space) Vector(i int) (Vector, error) {
	if i < 0 || i >= s.count {
		return nil, fmt.Errorf("vecspace.Vector(%d): %w", i, ErrIndexOutOfRange)
	}
	q := s.f.Order()
	v := make(Vector, s.n)
	for j := s.n - 1; j >= 0; j-- {
		v[j] = field.Elem(i % q)
		i /= q
	}

	return v, nil
}

// Vectors returns all q^n vectors in index order.
// Complexity: O(n·q^n).
func (s *Space) Vectors() []Vector {
	out := make([]Vector, s.count)
	for i := range out {
		out[i], _ = s.Vector(i) // i is always in range here
	}

	return out
}

// Zero returns the zero subspace.
func (s *Space) Zero() Subspace {
	return Subspace{space: s, key: zeroKey}
}

// checkVector validates length and coordinates of v.
func (s *Space) checkVector(v Vector) error {
	if len(v) != s.n {
		return fmt.Errorf("len %d, want %d: %w", len(v), s.n, ErrLengthMismatch)
	}
	for j, c := range v {
		if !s.f.Contains(c) {
			return fmt.Errorf("coordinate %d = %d: %w", j, c, ErrForeignVector)
		}
	}

	return nil
}
