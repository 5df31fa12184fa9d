// SPDX-License-Identifier: MIT

package grassmann

import (
	"errors"
	"fmt"
	"time"

	"go.uber.org/zap"

	"github.com/katalvlaran/grassmann/field"
	"github.com/katalvlaran/grassmann/matrix"
	"github.com/katalvlaran/grassmann/poset"
	"github.com/katalvlaran/grassmann/vecspace"
)

// Complex is the graded poset of subspaces of F_q^n of dimension 0..TopRank()
// together with its incidence operators. It is immutable once New returns and
// safe for concurrent readers; every getter returns a copy.
type Complex struct {
	n, d, q int
	top     int
	coeff   int64

	space  *vecspace.Space
	subs   []vecspace.Subspace // element index -> subspace
	poset  *poset.Poset
	levels [][]int // levels[i] = elements of dimension i, ascending
	pos    []int   // pos[e] = position of e inside its level

	raw   []*matrix.Dense // raw[i] = unreduced δ_i, i in 0..top-1
	delta []*matrix.Dense // delta[i] = δ_i mod coeff

	stats BuildStats
	log   *zap.Logger
}

// New enumerates the subspaces of F_q^n of dimension below d, links them by
// the covering relation, builds δ_0..δ_{top-1} and validates the result.
//
// Stages:
//   - Stage 1: build GF(q) and F_q^n; reject d outside 1..n.
//   - Stage 2: span every d-tuple of vectors and deduplicate (enumerate).
//   - Stage 3: check #dim-i subspaces == GaussBinomial(n, i, q) for every kept level.
//   - Stage 4: covering edges between adjacent levels, wrapped in a poset.
//   - Stage 5: incidence matrices, reduced by the policy's coefficient.
//   - Stage 6: check δ_{i+1}·δ_i ≡ 0 for i in 0..top-2.
//
// Errors:
//   - field.ErrNotPrimePower, field.ErrFieldTooLarge, vecspace.ErrBadDimension.
//   - ErrBadRank, ErrTooLarge, ErrInvalidModulus.
//   - *InvariantViolation (errors.Is(err, ErrInvariantViolation)).
//
// Complexity: O(q^(n·d)) spans plus O(|P|·max|level|) containment tests.
func New(n, d, q int, opts ...Option) (*Complex, error) {
	s := defaultSettings()
	for _, opt := range opts {
		opt(&s)
	}
	start := time.Now()
	log := s.log.With(zap.Int("n", n), zap.Int("d", d), zap.Int("q", q))

	f, err := field.New(q)
	if err != nil {
		return nil, fmt.Errorf("grassmann.New: %w", err)
	}
	space, err := vecspace.New(f, n)
	if err != nil {
		return nil, fmt.Errorf("grassmann.New: %w", err)
	}
	if d < 1 || d > n {
		return nil, fmt.Errorf("grassmann.New(n=%d, d=%d): %w", n, d, ErrBadRank)
	}
	coeff := s.policy(q)
	if coeff < 1 {
		return nil, fmt.Errorf("grassmann.New: coefficient %d: %w", coeff, ErrInvalidModulus)
	}
	top := d - 1
	if s.spanning {
		top = d
	}
	log.Debug("field ready", zap.Stringer("field", f), zap.Ints("modulus", f.Modulus()),
		zap.Int64("coefficient", coeff), zap.Int("top_rank", top))

	en, err := enumerate(space, d, s.spanning)
	if err != nil {
		return nil, fmt.Errorf("grassmann.New: %w", err)
	}
	log.Debug("subspaces enumerated", zap.Int("tuples", en.tuples),
		zap.Int("distinct", len(en.subspaces)), zap.Ints("counts", en.counts))
	if err := checkCounts(en.counts, n, q, top); err != nil {
		return nil, s.fail(log, err)
	}

	levels := levelsOf(en.subspaces, top)
	edges, err := covers(en.subspaces, levels)
	if err != nil {
		return nil, fmt.Errorf("grassmann.New: %w", err)
	}
	ranks := make([]int, len(en.subspaces))
	for e, w := range en.subspaces {
		ranks[e] = w.Dim()
	}
	p, err := poset.New(ranks, edges)
	if err != nil {
		return nil, fmt.Errorf("grassmann.New: %w", err)
	}
	log.Debug("covering relation built", zap.Int("edges", len(edges)))

	c := &Complex{
		n: n, d: d, q: q, top: top, coeff: coeff,
		space:  space,
		subs:   en.subspaces,
		poset:  p,
		levels: levels,
		pos:    make([]int, len(en.subspaces)),
		raw:    make([]*matrix.Dense, top),
		delta:  make([]*matrix.Dense, top),
		log:    s.log,
	}
	for _, level := range levels {
		for j, e := range level {
			c.pos[e] = j
		}
	}
	for i := 0; i < top; i++ {
		if c.raw[i], err = incidence(p, levels, c.pos, i); err != nil {
			return nil, fmt.Errorf("grassmann.New: %w", err)
		}
		if c.delta[i], err = matrix.Mod(c.raw[i], coeff); err != nil {
			return nil, fmt.Errorf("grassmann.New: %w", err)
		}
	}
	if err := chainCheck(c.delta, coeff); err != nil {
		return nil, s.fail(log, err)
	}

	c.stats = BuildStats{
		N: n, D: d, Q: q,
		Coefficient:   coeff,
		Tuples:        en.tuples,
		LevelSizes:    p.LevelSetSizes(),
		CoveringEdges: len(edges),
		Duration:      time.Since(start),
	}
	s.rec.ObserveBuild(c.stats)
	log.Info("complex built",
		zap.Ints("level_sizes", c.stats.LevelSizes),
		zap.Int("edges", len(edges)),
		zap.Int64("coefficient", coeff),
		zap.Duration("took", c.stats.Duration))

	return c, nil
}

// fail reports an invariant violation to the recorder and logs it.
func (s settings) fail(log *zap.Logger, err error) error {
	var v *InvariantViolation
	if errors.As(err, &v) {
		s.rec.ObserveFailure(v.Kind)
	}
	log.Error("construction failed", zap.Error(err))

	return err
}

// TopRank is d-1, or d with WithSpanningLevel.
func (c *Complex) TopRank() int { return c.top }

// MaxRank returns the rank bound d given to New.
func (c *Complex) MaxRank() int { return c.d }

// Space returns the ambient space F_q^n.
func (c *Complex) Space() *vecspace.Space { return c.space }

// FieldSize returns q.
func (c *Complex) FieldSize() int { return c.q }

// AmbientDim returns n.
func (c *Complex) AmbientDim() int { return c.n }

// Coefficient returns the modulus the incidence matrices are reduced by.
func (c *Complex) Coefficient() int64 { return c.coeff }

// Size returns the number of poset elements.
func (c *Complex) Size() int { return len(c.subs) }

// Stats returns the construction summary.
func (c *Complex) Stats() BuildStats {
	st := c.stats
	st.LevelSizes = append([]int(nil), st.LevelSizes...)

	return st
}

// LevelSets returns the elements of each dimension in index order.
func (c *Complex) LevelSets() [][]int { return c.poset.LevelSets() }

// LevelSetSizes returns |level i| for i in 0..TopRank().
func (c *Complex) LevelSetSizes() []int { return c.poset.LevelSetSizes() }

// Edges returns the covering edges (lo, hi) in lexicographic order.
func (c *Complex) Edges() [][2]int { return c.poset.Edges() }

// Element returns the j-th element of level i.
func (c *Complex) Element(i, j int) (int, error) {
	if i < 0 || i > c.top {
		return 0, fmt.Errorf("Element(%d,%d): %w", i, j, ErrLevelOutOfRange)
	}
	if j < 0 || j >= len(c.levels[i]) {
		return 0, fmt.Errorf("Element(%d,%d): level has %d elements: %w", i, j, len(c.levels[i]), ErrUnknownElement)
	}

	return c.levels[i][j], nil
}

// Boundary returns the lower covers of e, ascending.
func (c *Complex) Boundary(e int) ([]int, error) {
	out, err := c.poset.LowerCovers(e)
	if err != nil {
		return nil, fmt.Errorf("Boundary(%d): %w: %w", e, ErrUnknownElement, err)
	}

	return out, nil
}

// UpperCovers returns the elements covering e, ascending.
func (c *Complex) UpperCovers(e int) ([]int, error) {
	out, err := c.poset.UpperCovers(e)
	if err != nil {
		return nil, fmt.Errorf("UpperCovers(%d): %w: %w", e, ErrUnknownElement, err)
	}

	return out, nil
}

// Star returns every element whose subspace contains that of e, ascending.
func (c *Complex) Star(e int) ([]int, error) {
	out, err := c.poset.UpSet(e)
	return out, posetErr("Star", e, err)
}

// StarWithin returns the elements of Star(e) of dimension at most dim(e)+k.
// StarWithin(e, 1) is e together with its upper covers.
func (c *Complex) StarWithin(e, k int) ([]int, error) {
	out, err := c.poset.UpSetWithin(e, k)
	return out, posetErr("StarWithin", e, err)
}

// Closure returns every element whose subspace lies inside that of e, ascending.
func (c *Complex) Closure(e int) ([]int, error) {
	out, err := c.poset.DownSet(e)
	return out, posetErr("Closure", e, err)
}

// ClosureWithin returns the elements of Closure(e) of dimension at least dim(e)-k.
func (c *Complex) ClosureWithin(e, k int) ([]int, error) {
	out, err := c.poset.DownSetWithin(e, k)
	return out, posetErr("ClosureWithin", e, err)
}

// Flag returns a maximal chain of subspaces lo = W_0 ⊂ W_1 ⊂ … ⊂ W_k = hi,
// each of dimension one more than the last.
// Errors: ErrUnknownElement, ErrNotComparable.
func (c *Complex) Flag(lo, hi int) ([]int, error) {
	out, err := c.poset.Chain(lo, hi)
	return out, posetErr("Flag", lo, err)
}

// posetErr maps poset sentinels onto this package's.
func posetErr(op string, e int, err error) error {
	switch {
	case err == nil:
		return nil
	case errors.Is(err, poset.ErrUnknownElement):
		return fmt.Errorf("%s(%d): %w: %w", op, e, ErrUnknownElement, err)
	case errors.Is(err, poset.ErrNotComparable):
		return fmt.Errorf("%s(%d): %w: %w", op, e, ErrNotComparable, err)
	default:
		return fmt.Errorf("%s(%d): %w", op, e, err)
	}
}

// Subspace returns the subspace behind element e.
func (c *Complex) Subspace(e int) (vecspace.Subspace, error) {
	if e < 0 || e >= len(c.subs) {
		return vecspace.Subspace{}, fmt.Errorf("Subspace(%d): %w", e, ErrUnknownElement)
	}

	return c.subs[e], nil
}

// ElementLabels maps every element to the canonical basis of its subspace.
func (c *Complex) ElementLabels() map[int]Label {
	out := make(map[int]Label, len(c.subs))
	for e, w := range c.subs {
		out[e] = Label(w.Rows())
	}

	return out
}

// Coboundary applies δ_i to the chain given by elements (each contributes 1,
// repeats accumulate) and reduces the image in level i+1 modulo f.
// The result is indexed like LevelSets()[i+1].
//
// Errors: ErrLevelOutOfRange, ErrInvalidModulus, ErrNotInLevel.
func (c *Complex) Coboundary(elements []int, i int, f int64) ([]int64, error) {
	if i < 0 || i >= c.top {
		return nil, fmt.Errorf("Coboundary(level %d, top %d): %w", i, c.top, ErrLevelOutOfRange)
	}
	if f < 1 {
		return nil, fmt.Errorf("Coboundary(mod %d): %w", f, ErrInvalidModulus)
	}
	chain := make([]int64, len(c.levels[i]))
	for _, e := range elements {
		if e < 0 || e >= len(c.subs) || c.subs[e].Dim() != i {
			return nil, fmt.Errorf("Coboundary: element %d: %w %d", e, ErrNotInLevel, i)
		}
		chain[c.pos[e]]++
	}
	img, err := matrix.MatVec(c.raw[i], chain)
	if err != nil {
		return nil, fmt.Errorf("Coboundary: %w", err)
	}
	for j := range img {
		img[j] = matrix.ModInt(img[j], f)
	}

	return img, nil
}

// IncidenceMatrix returns a copy of δ_i mod Coefficient(), shape
// (|level i+1|, |level i|).
func (c *Complex) IncidenceMatrix(i int) (*matrix.Dense, error) {
	if i < 0 || i >= c.top {
		return nil, fmt.Errorf("IncidenceMatrix(%d), top %d: %w", i, c.top, ErrLevelOutOfRange)
	}

	return c.delta[i].Clone(), nil
}

// IncidenceRank returns the rank of δ_i over Z/Coefficient().
// Errors: ErrLevelOutOfRange, ErrCompositeModulus.
func (c *Complex) IncidenceRank(i int) (int, error) {
	if i < 0 || i >= c.top {
		return 0, fmt.Errorf("IncidenceRank(%d), top %d: %w", i, c.top, ErrLevelOutOfRange)
	}
	if !matrix.IsPrime(c.coeff) {
		return 0, fmt.Errorf("IncidenceRank(%d): %d: %w", i, c.coeff, ErrCompositeModulus)
	}
	r, err := matrix.RankMod(c.delta[i], c.coeff)
	if err != nil {
		return 0, fmt.Errorf("IncidenceRank(%d): %w", i, err)
	}

	return r, nil
}

// CohomologyDims returns dim H^i = |L_i| - rank δ_i - rank δ_{i-1} over
// Z/Coefficient() for i in 0..TopRank(), where missing operators count as 0.
func (c *Complex) CohomologyDims() ([]int, error) {
	ranks := make([]int, c.top)
	for i := range ranks {
		r, err := c.IncidenceRank(i)
		if err != nil {
			return nil, fmt.Errorf("CohomologyDims: %w", err)
		}
		ranks[i] = r
	}
	out := make([]int, c.top+1)
	for i := range out {
		out[i] = len(c.levels[i])
		if i < c.top {
			out[i] -= ranks[i]
		}
		if i > 0 {
			out[i] -= ranks[i-1]
		}
	}

	return out, nil
}
