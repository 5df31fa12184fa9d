// SPDX-License-Identifier: MIT

package grassmann

import (
	"errors"
	"fmt"
)

// Sentinel errors.
var (
	// ErrInvariantViolation matches every *InvariantViolation via errors.Is.
	ErrInvariantViolation = errors.New("grassmann: invariant violation")

	// ErrBadRank indicates a max rank bound d outside 1..n.
	ErrBadRank = errors.New("grassmann: max rank must satisfy 1 <= d <= n")

	// ErrTooLarge indicates that q^(n·d) generating tuples do not fit in an int.
	ErrTooLarge = errors.New("grassmann: parameters too large to enumerate")

	// ErrLevelOutOfRange indicates a level i with no incidence operator (i+1 > top rank).
	ErrLevelOutOfRange = errors.New("grassmann: level out of range")

	// ErrInvalidModulus indicates a reduction modulus below 1.
	ErrInvalidModulus = errors.New("grassmann: modulus must be >= 1")

	// ErrNotInLevel indicates a chain element that does not belong to the requested level.
	ErrNotInLevel = errors.New("grassmann: element not in level")

	// ErrCompositeModulus indicates an operation that needs Z/c to be a field.
	ErrCompositeModulus = errors.New("grassmann: coefficient is not prime")

	// ErrUnknownElement indicates an element index outside the poset.
	ErrUnknownElement = errors.New("grassmann: unknown element")

	// ErrNotComparable indicates two elements whose subspaces are not nested.
	ErrNotComparable = errors.New("grassmann: subspaces not nested")

	// ErrUnknownPolicy indicates a coefficient policy name that cannot be parsed.
	ErrUnknownPolicy = errors.New("grassmann: unknown coefficient policy")
)

// InvariantKind names the construction-time check that failed.
type InvariantKind int

const (
	// KindCount: the number of subspaces of some dimension differs from the Gaussian binomial.
	KindCount InvariantKind = iota + 1
	// KindChain: δ_{i+1}·δ_i does not vanish modulo the coefficient.
	KindChain
)

// String returns "count" or "chain".
func (k InvariantKind) String() string {
	switch k {
	case KindCount:
		return "count"
	case KindChain:
		return "chain"
	default:
		return fmt.Sprintf("InvariantKind(%d)", int(k))
	}
}

// InvariantViolation is returned by New when the built object is wrong.
// It always signals a bug in enumeration, covering, or the coefficient choice;
// callers must not use any partial result.
type InvariantViolation struct {
	Kind  InvariantKind
	Level int

	// Got and Want are the observed and expected subspace counts (KindCount only).
	Got, Want int64

	// Coefficient is the reduction modulus in force (KindChain only).
	Coefficient int64
}

// Error implements error.
func (v *InvariantViolation) Error() string {
	switch v.Kind {
	case KindCount:
		return fmt.Sprintf("grassmann: level %d has %d subspaces, expected %d", v.Level, v.Got, v.Want)
	case KindChain:
		return fmt.Sprintf("grassmann: delta_%d * delta_%d != 0 mod %d", v.Level+1, v.Level, v.Coefficient)
	default:
		return fmt.Sprintf("grassmann: %s invariant violated at level %d", v.Kind, v.Level)
	}
}

// Is makes errors.Is(err, ErrInvariantViolation) hold.
func (v *InvariantViolation) Is(target error) bool {
	return target == ErrInvariantViolation
}
