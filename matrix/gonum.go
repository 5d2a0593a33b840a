// SPDX-License-Identifier: MIT
// Package matrix: float64 interop with gonum.
//
// Purpose:
//   - Hand exact matrices to gonum (ToDense) and read float64 matrices back
//     without loss (FromDense: every finite float64 is an exact rational).
//   - Offer CholeskyApprox, the explicitly approximate path for symmetric
//     positive-definite inputs whose exact Cholesky factor is irrational.
//
// The exact kernels never call into this file; precision is only given up
// when the caller asks for it by name.

package matrix

import (
	"fmt"

	"gonum.org/v1/gonum/mat"

	"github.com/wojino/sqmatrix/rational"
)

// ToDense converts m to a gonum *mat.Dense, rounding every entry to the
// nearest float64.
// Complexity: O(n²).
func ToDense(m *Matrix) (*mat.Dense, error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, matrixErrorf(opToDense, err)
	}

	return mat.NewDense(m.n, m.n, m.floats()), nil
}

// FromDense converts a square gonum matrix exactly.
//
// Errors:
//   - ErrNilMatrix (nil a), ErrNonSquare, ErrInvalidDimensions (empty),
//     ErrNaNInf (non-finite entry, with coordinates).
//
// Complexity: O(n²).
func FromDense(a mat.Matrix) (*Matrix, error) {
	if a == nil {
		return nil, matrixErrorf(opFromDense, ErrNilMatrix)
	}
	r, c := a.Dims()
	if r != c {
		return nil, matrixErrorf(opFromDense, fmt.Errorf("%dx%d: %w", r, c, ErrNonSquare))
	}
	if r == 0 {
		return nil, matrixErrorf(opFromDense, ErrInvalidDimensions)
	}

	m := newMatrix(r)
	for i := 0; i < r; i++ {
		for j := 0; j < c; j++ {
			v, err := rational.FromFloat64(a.At(i, j))
			if err != nil {
				return nil, matrixErrorf(opFromDense, fmt.Errorf("(%d,%d): %w", i, j, ErrNaNInf))
			}
			m.set(i, j, v)
		}
	}

	return m, nil
}

// CholeskyApprox computes a float64 Cholesky factor L (A ≈ L·Lᵗ) with
// gonum's mat.Cholesky. Use it when Cholesky reports
// ErrIrrationalRadicand and an approximate factor is acceptable.
//
// Errors:
//   - ErrNilMatrix, ErrNotSymmetric (checked exactly, before rounding).
//   - ErrNotPositiveDefinite when gonum rejects the factorization.
//
// Complexity: O(n³) float64 operations.
func CholeskyApprox(m *Matrix) (*mat.TriDense, error) {
	if err := ValidateSymmetric(m); err != nil {
		return nil, matrixErrorf(opCholApprx, err)
	}

	sym := mat.NewSymDense(m.n, m.floats())
	var chol mat.Cholesky
	if ok := chol.Factorize(sym); !ok {
		return nil, matrixErrorf(opCholApprx, ErrNotPositiveDefinite)
	}
	var l mat.TriDense
	chol.LTo(&l)

	return &l, nil
}

// floats returns the row-major entries rounded to float64.
func (m *Matrix) floats() []float64 {
	out := make([]float64, len(m.data))
	for idx, v := range m.data {
		out[idx], _ = v.Float64()
	}

	return out
}
