// SPDX-License-Identifier: MIT

package grassmann

import (
	"fmt"
	"strconv"
	"strings"
)

// CoefficientPolicy maps a field size q to the modulus the incidence
// matrices are reduced by.
type CoefficientPolicy func(q int) int64

// Policy names accepted by ParsePolicy.
const (
	PolicyDefault = "default"
	PolicyLegacy  = "legacy"
)

// DefaultCoefficient returns the smallest prime factor of q+1.
//
// Between a subspace of dimension i and one of dimension i+2 that contains it
// there are exactly q+1 intermediate subspaces, so every entry of δ_{i+1}·δ_i
// is 0 or q+1. Any divisor of q+1 therefore kills the product. For q = 2 this
// is 3 and for odd q it is 2; for q = 4 it is 5 and for q = 8 it is 3.
func DefaultCoefficient(q int) int64 {
	return smallestPrimeFactor(int64(q) + 1)
}

// LegacyCoefficient is 3 when q == 2 and 2 otherwise. It fails the chain
// check for even q > 2 (q+1 is odd there).
func LegacyCoefficient(q int) int64 {
	if q == 2 {
		return 3
	}

	return 2
}

// FixedCoefficient ignores q and always returns c.
func FixedCoefficient(c int64) CoefficientPolicy {
	return func(int) int64 { return c }
}

// ParsePolicy resolves "default", "legacy", or a decimal integer >= 1.
// The empty string means "default".
func ParsePolicy(name string) (CoefficientPolicy, error) {
	switch s := strings.ToLower(strings.TrimSpace(name)); s {
	case "", PolicyDefault:
		return DefaultCoefficient, nil
	case PolicyLegacy:
		return LegacyCoefficient, nil
	default:
		c, err := strconv.ParseInt(s, 10, 64)
		if err != nil || c < 1 {
			return nil, fmt.Errorf("ParsePolicy(%q): %w", name, ErrUnknownPolicy)
		}
		return FixedCoefficient(c), nil
	}
}

// smallestPrimeFactor returns the least prime dividing n (n >= 2), or n itself.
func smallestPrimeFactor(n int64) int64 {
	for p := int64(2); p*p <= n; p++ {
		if n%p == 0 {
			return p
		}
	}

	return n
}
