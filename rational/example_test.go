// SPDX-License-Identifier: MIT
package rational_test

import (
	"errors"
	"fmt"

	"github.com/wojino/sqmatrix/rational"
)

// ExampleRational_Div shows that division stays exact.
func ExampleRational_Div() {
	a := rational.FromInt(1)
	b := rational.FromInt(3)
	q, _ := a.Div(b)
	fmt.Println(q, q.Mul(b))
	// Output:
	// 1/3 1
}

// ExampleRational_Sqrt shows exact roots and the irrational failure mode.
func ExampleRational_Sqrt() {
	r, _ := rational.MustParse("9/16").Sqrt()
	fmt.Println(r)

	_, err := rational.FromInt(2).Sqrt()
	fmt.Println(errors.Is(err, rational.ErrIrrational))
	// Output:
	// 3/4
	// true
}
