// SPDX-License-Identifier: MIT

package matrix_test

import (
	"fmt"

	"github.com/katalvlaran/grassmann/matrix"
)

// ExampleRankMod shows a matrix that is invertible over the rationals but
// drops rank modulo 2.
func ExampleRankMod() {
	m, _ := matrix.NewDenseFrom([][]int64{{1, 1}, {1, 3}})

	r2, _ := matrix.RankMod(m, 2)
	r3, _ := matrix.RankMod(m, 3)
	fmt.Println(r2, r3)

	// Output:
	// 1 2
}
