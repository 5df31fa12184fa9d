// SPDX-License-Identifier: MIT

package grassmann

import (
	"fmt"

	"github.com/katalvlaran/grassmann/matrix"
	"github.com/katalvlaran/grassmann/poset"
)

// incidence counts, for level i, how often each element of level i+1 covers
// each element of level i. Row j is levels[i+1][j], column k is levels[i][k].
// Entries are raw counts; reduce with matrix.Mod.
func incidence(p *poset.Poset, levels [][]int, pos []int, i int) (*matrix.Dense, error) {
	m, err := matrix.NewDense(len(levels[i+1]), len(levels[i]))
	if err != nil {
		return nil, fmt.Errorf("incidence(%d): %w", i, err)
	}
	for k, lo := range levels[i] {
		up, err := p.UpperCovers(lo)
		if err != nil {
			return nil, fmt.Errorf("incidence(%d): %w", i, err)
		}
		for _, hi := range up {
			if err := m.Inc(pos[hi], k, 1); err != nil {
				return nil, fmt.Errorf("incidence(%d): %w", i, err)
			}
		}
	}

	return m, nil
}

// chainCheck verifies δ_{i+1}·δ_i ≡ 0 (mod c) for every i in 0..len(delta)-2.
func chainCheck(delta []*matrix.Dense, c int64) error {
	for i := 0; i+1 < len(delta); i++ {
		prod, err := matrix.Mul(delta[i+1], delta[i])
		if err != nil {
			return fmt.Errorf("chain check %d: %w", i, err)
		}
		red, err := matrix.Mod(prod, c)
		if err != nil {
			return fmt.Errorf("chain check %d: %w", i, err)
		}
		if !matrix.IsZero(red) {
			return &InvariantViolation{Kind: KindChain, Level: i, Coefficient: c}
		}
	}

	return nil
}
