// SPDX-License-Identifier: MIT

package field

// Polynomials over F_p are []int of coefficients, lowest degree first.
// Helpers here are only used while building a Field, so they favour clarity.

// decode expands e into k base-p digits.
func decode(e, p, k int) []int {
	out := make([]int, k)
	for i := 0; i < k; i++ {
		out[i] = e % p
		e /= p
	}

	return out
}

// encode packs base-p digits back into an integer.
func encode(c []int, p int) int {
	e := 0
	for i := len(c) - 1; i >= 0; i-- {
		e = e*p + c[i]
	}

	return e
}

// degree returns the index of the highest non-zero coefficient, or -1 for 0.
func degree(a []int) int {
	for i := len(a) - 1; i >= 0; i-- {
		if a[i] != 0 {
			return i
		}
	}

	return -1
}

// polyAdd returns a+b coefficient-wise; a and b have the same length.
func polyAdd(a, b []int, p int) []int {
	out := make([]int, len(a))
	for i := range a {
		out[i] = (a[i] + b[i]) % p
	}

	return out
}

// polyRem returns a mod m over F_p; m must be monic.
func polyRem(a, m []int, p int) []int {
	r := make([]int, len(a))
	copy(r, a)
	dm := degree(m)
	for dr := degree(r); dr >= dm; dr = degree(r) {
		c := r[dr] // m is monic, so the quotient term is c·x^(dr-dm)
		shift := dr - dm
		for i := 0; i <= dm; i++ {
			r[i+shift] = ((r[i+shift]-c*m[i])%p + p) % p
		}
	}

	return r
}

// polyMulMod returns a·b mod m, truncated to deg(m) coefficients.
func polyMulMod(a, b, m []int, p int) []int {
	prod := make([]int, len(a)+len(b))
	for i, ai := range a {
		if ai == 0 {
			continue
		}
		for j, bj := range b {
			prod[i+j] = (prod[i+j] + ai*bj) % p
		}
	}
	r := polyRem(prod, m, p)

	return r[:degree(m)]
}

// isIrreducible reports whether the monic polynomial m of degree k has no
// monic factor of degree 1..k/2.
func isIrreducible(m []int, p int) bool {
	k := degree(m)
	for d := 1; d <= k/2; d++ {
		count := pow(p, d)
		for low := 0; low < count; low++ {
			div := append(decode(low, p, d), 1)
			if degree(polyRem(m, div, p)) < 0 {
				return false
			}
		}
	}

	return true
}

// firstIrreducible returns the monic irreducible polynomial of degree k whose
// lower coefficients, read as a base-p number, are smallest.
func firstIrreducible(p, k int) []int {
	count := pow(p, k)
	for low := 0; low < count; low++ {
		m := append(decode(low, p, k), 1)
		if isIrreducible(m, p) {
			return m
		}
	}

	// Irreducible polynomials exist for every degree, so this is unreachable.
	panic("field: no irreducible polynomial found")
}

// pow returns b^e for small non-negative e.
func pow(b, e int) int {
	r := 1
	for ; e > 0; e-- {
		r *= b
	}

	return r
}
