// SPDX-License-Identifier: MIT

package field

import (
	"errors"
	"fmt"
)

// MaxOrder is the largest field size New accepts.
const MaxOrder = 256

var (
	// ErrNotPrimePower indicates q is not a prime power.
	ErrNotPrimePower = errors.New("field: order is not a prime power")

	// ErrFieldTooLarge indicates q exceeds MaxOrder.
	ErrFieldTooLarge = errors.New("field: order too large")

	// ErrDivisionByZero indicates an attempt to invert the zero element.
	ErrDivisionByZero = errors.New("field: division by zero")

	// ErrForeignElement indicates an element outside the field's encoding range.
	ErrForeignElement = errors.New("field: element not in field")
)

// Elem is a field element in base-p digit encoding (see package doc).
type Elem uint16

// Field is an immutable GF(q). It is safe for concurrent use.
type Field struct {
	q, p, k  int
	modulus  []int  // monic irreducible, coefficients low→high, len k+1
	addTable []Elem // addTable[a*q+b] = a+b
	mulTable []Elem // mulTable[a*q+b] = a·b
	negTable []Elem // negTable[a] = -a
	invTable []Elem // invTable[a] = a⁻¹ (invTable[0] unused)
}

// New builds GF(q).
// Complexity: O(q²·k²) for the tables plus the irreducible search.
func New(q int) (*Field, error) {
	if q > MaxOrder {
		return nil, fmt.Errorf("field.New(%d): %w", q, ErrFieldTooLarge)
	}
	p, k, ok := primePower(q)
	if !ok {
		return nil, fmt.Errorf("field.New(%d): %w", q, ErrNotPrimePower)
	}

	f := &Field{q: q, p: p, k: k}
	f.modulus = firstIrreducible(p, k)
	f.buildTables()

	return f, nil
}

// Order returns q.
func (f *Field) Order() int { return f.q }

// Char returns the characteristic p.
func (f *Field) Char() int { return f.p }

// Degree returns k with q = p^k.
func (f *Field) Degree() int { return f.k }

// Modulus returns a copy of the defining polynomial, coefficients low→high.
func (f *Field) Modulus() []int {
	out := make([]int, len(f.modulus))
	copy(out, f.modulus)

	return out
}

// Zero returns the additive identity.
func (f *Field) Zero() Elem { return 0 }

// One returns the multiplicative identity.
func (f *Field) One() Elem { return 1 }

// Contains reports whether e is a valid encoding in this field.
func (f *Field) Contains(e Elem) bool { return int(e) < f.q }

// Elements returns all q elements in encoding order 0..q-1.
func (f *Field) Elements() []Elem {
	out := make([]Elem, f.q)
	for i := range out {
		out[i] = Elem(i)
	}

	return out
}

// Add returns a+b.
func (f *Field) Add(a, b Elem) Elem { return f.addTable[int(a)*f.q+int(b)] }

// Neg returns -a.
func (f *Field) Neg(a Elem) Elem { return f.negTable[a] }

// Sub returns a-b.
func (f *Field) Sub(a, b Elem) Elem { return f.Add(a, f.negTable[b]) }

// Mul returns a·b.
func (f *Field) Mul(a, b Elem) Elem { return f.mulTable[int(a)*f.q+int(b)] }

// Inv returns a⁻¹ or ErrDivisionByZero for a == 0.
func (f *Field) Inv(a Elem) (Elem, error) {
	if a == 0 {
		return 0, ErrDivisionByZero
	}
	if !f.Contains(a) {
		return 0, fmt.Errorf("field.Inv(%d): %w", a, ErrForeignElement)
	}

	return f.invTable[a], nil
}

// Div returns a/b or ErrDivisionByZero for b == 0.
func (f *Field) Div(a, b Elem) (Elem, error) {
	inv, err := f.Inv(b)
	if err != nil {
		return 0, err
	}

	return f.Mul(a, inv), nil
}

// String renders the field as "GF(q)".
func (f *Field) String() string { return fmt.Sprintf("GF(%d)", f.q) }

// buildTables fills add/mul/neg/inv from the polynomial representation.
func (f *Field) buildTables() {
	q := f.q
	f.addTable = make([]Elem, q*q)
	f.mulTable = make([]Elem, q*q)
	f.negTable = make([]Elem, q)
	f.invTable = make([]Elem, q)

	polys := make([][]int, q)
	for a := 0; a < q; a++ {
		polys[a] = decode(a, f.p, f.k)
	}

	var a, b int
	for a = 0; a < q; a++ {
		for b = 0; b < q; b++ {
			f.addTable[a*q+b] = Elem(encode(polyAdd(polys[a], polys[b], f.p), f.p))
			f.mulTable[a*q+b] = Elem(encode(polyMulMod(polys[a], polys[b], f.modulus, f.p), f.p))
		}
	}
	for a = 0; a < q; a++ {
		for b = 0; b < q; b++ {
			if f.addTable[a*q+b] == 0 {
				f.negTable[a] = Elem(b)
			}
			if a != 0 && f.mulTable[a*q+b] == 1 {
				f.invTable[a] = Elem(b)
			}
		}
	}
}

// primePower splits q into p^k; ok is false when q is not a prime power.
func primePower(q int) (p, k int, ok bool) {
	if q < 2 {
		return 0, 0, false
	}
	p = q
	for d := 2; d*d <= q; d++ {
		if q%d == 0 {
			p = d
			break
		}
	}
	for r := q; r > 1; r /= p {
		if r%p != 0 {
			return 0, 0, false
		}
		k++
	}

	return p, k, true
}
