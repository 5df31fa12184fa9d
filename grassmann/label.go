// SPDX-License-Identifier: MIT

package grassmann

import "github.com/katalvlaran/grassmann/vecspace"

// Label is the canonical reduced row-echelon basis of a subspace, one row per
// basis vector, field elements in their integer encoding. The zero subspace
// has an empty label.
type Label [][]int

// String renders the label compactly, e.g. "[[1,0,2],[0,1,1]]" or "[]".
// It matches the vertex IDs of Graph().
func (l Label) String() string { return vecspace.FormatRows(l) }
