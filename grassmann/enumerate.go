// SPDX-License-Identifier: MIT

package grassmann

import (
	"fmt"
	"math"

	"github.com/katalvlaran/grassmann/vecspace"
)

// enumeration is the result of spanning every d-tuple of vectors.
type enumeration struct {
	subspaces []vecspace.Subspace // distinct spans, first-appearance order
	counts    []int               // counts[i] = #distinct spans of dimension i, i in 0..d
	tuples    int                 // tuples scanned
}

// tupleCount returns count^d, or ErrTooLarge when it overflows an int.
func tupleCount(count, d int) (int, error) {
	total := 1
	for i := 0; i < d; i++ {
		if total > math.MaxInt/count {
			return 0, fmt.Errorf("%d^%d tuples: %w", count, d, ErrTooLarge)
		}
		total *= count
	}

	return total, nil
}

// enumerate spans every d-tuple of vectors of space, repetition allowed, in
// odometer order (last slot fastest), and deduplicates the spans by canonical
// key. Spans of dimension d are kept only when keepTop is set; they are
// counted either way.
//
// Complexity: q^(n·d) spans of d vectors, O(d·n·min(d,n)) field ops each.
func enumerate(space *vecspace.Space, d int, keepTop bool) (enumeration, error) {
	total, err := tupleCount(space.Count(), d)
	if err != nil {
		return enumeration{}, err
	}

	vectors := space.Vectors()
	seen := make(map[string]struct{})
	res := enumeration{counts: make([]int, d+1), tuples: total}
	digits := make([]int, d)
	tuple := make([]vecspace.Vector, d)

	for t := 0; t < total; t++ {
		for slot, idx := range digits {
			tuple[slot] = vectors[idx]
		}
		w, err := space.Span(tuple...)
		if err != nil {
			return enumeration{}, fmt.Errorf("span tuple %d: %w", t, err)
		}
		if _, dup := seen[w.Key()]; !dup {
			seen[w.Key()] = struct{}{}
			res.counts[w.Dim()]++
			if w.Dim() < d || keepTop {
				res.subspaces = append(res.subspaces, w)
			}
		}
		for slot := d - 1; slot >= 0; slot-- {
			digits[slot]++
			if digits[slot] < len(vectors) {
				break
			}
			digits[slot] = 0
		}
	}

	return res, nil
}

// checkCounts compares counts[i] with GaussBinomial(n, i, q) for i in 0..top.
func checkCounts(counts []int, n, q, top int) error {
	for i := 0; i <= top; i++ {
		want := GaussBinomial(n, i, q)
		if want.IsInt64() && want.Int64() == int64(counts[i]) {
			continue
		}
		v := &InvariantViolation{Kind: KindCount, Level: i, Got: int64(counts[i]), Want: math.MaxInt64}
		if want.IsInt64() {
			v.Want = want.Int64()
		}
		return v
	}

	return nil
}
