// SPDX-License-Identifier: MIT

package grassmann_test

import (
	"fmt"

	"github.com/katalvlaran/grassmann/grassmann"
)

// ExampleNew builds the lines and planes through the origin of F_2^5.
func ExampleNew() {
	c, err := grassmann.New(5, 3, 2)
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	fmt.Println(c.LevelSetSizes(), c.Coefficient())

	d0, _ := c.IncidenceMatrix(0)
	rows, cols := d0.Shape()
	fmt.Println(rows, cols)

	// Output:
	// [1 31 155] 3
	// 31 1
}

// ExampleComplex_Coboundary applies δ_0 to the zero subspace of F_2^3.
func ExampleComplex_Coboundary() {
	c, _ := grassmann.New(3, 2, 2)
	img, _ := c.Coboundary([]int{0}, 0, 2)
	fmt.Println(img)

	// Output:
	// [1 1 1 1 1 1 1]
}

// ExampleLegacyCoefficient shows where the literal rule breaks: over GF(4)
// a point reaches each plane through q+1 = 5 lines, which is odd.
func ExampleLegacyCoefficient() {
	_, err := grassmann.New(3, 3, 4, grassmann.WithCoefficientPolicy(grassmann.LegacyCoefficient))
	fmt.Println(err)

	c, _ := grassmann.New(3, 3, 4)
	fmt.Println(c.Coefficient())

	// Output:
	// grassmann: delta_1 * delta_0 != 0 mod 2
	// 5
}
