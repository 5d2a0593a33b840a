// SPDX-License-Identifier: MIT
// Package matrix provides the algebraic operators on Matrix: element-wise
// addition, subtraction and negation, matrix product, scalar scaling,
// integer powers, exact equality and transpose. All functions validate
// their operands first and return a freshly allocated result; operands are
// never mutated.
//
// Notes:
//   - Elementary row operations live in impl_elementary.go, Gauss-Jordan in
//     impl_inverse.go and the factorizations in impl_lu.go / impl_symmetric.go.
//   - All kernels return sentinels wrapped via matrixErrorf at the facade.

package matrix

import (
	"fmt"

	"github.com/wojino/sqmatrix/rational"
)

// Operation name constants for unified error wrapping.
const (
	opNew       = "New"
	opIdentity  = "Identity"
	opZero      = "Zero"
	opAdd       = "Add"
	opSub       = "Sub"
	opNeg       = "Neg"
	opMul       = "Mul"
	opScale     = "Scale"
	opPow       = "Pow"
	opEqual     = "Equal"
	opTranspose = "Transpose"
	opRowSwitch = "RowSwitch"
	opRowScale  = "RowScale"
	opRowAdd    = "RowAddMultiple"
	opInverse   = "Inverse"
	opLU        = "LU"
	opPLU       = "PLU"
	opLDLT      = "LDLT"
	opCholesky  = "Cholesky"
	opToDense   = "ToDense"
	opFromDense = "FromDense"
	opCholApprx = "CholeskyApprox"
)

// matrixErrorf wraps err with an operation tag, preserving the original error via %w.
// The wrapper keeps a stable "Op: underlying" shape for uniform reporting.
// Use only when err != nil.
func matrixErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}

// addSub computes out = a + b or out = a − b (sub == true).
// Internal helper for Add/Sub to share validation and allocation.
//
// Complexity:
//   - Time O(n²), Space O(n²) for the new result.
func addSub(a, b *Matrix, sub bool, opTag string) (*Matrix, error) {
	if err := ValidateSameSize(a, b); err != nil {
		return nil, matrixErrorf(opTag, err)
	}

	res := newMatrix(a.n)
	for idx := range a.data { // deterministic 0..n²-1
		if sub {
			res.data[idx] = a.data[idx].Sub(b.data[idx])
		} else {
			res.data[idx] = a.data[idx].Add(b.data[idx])
		}
	}

	return res, nil
}

// Add computes the element-wise sum C = A + B.
//
// Errors:
//   - ErrNilMatrix (nil input), ErrDimensionMismatch (size mismatch).
//
// Complexity:
//   - Time O(n²), Space O(n²).
func Add(a, b *Matrix) (*Matrix, error) { return addSub(a, b, false, opAdd) }

// Sub computes the element-wise difference C = A − B.
//
// Errors:
//   - ErrNilMatrix (nil input), ErrDimensionMismatch (size mismatch).
//
// Complexity:
//   - Time O(n²), Space O(n²).
func Sub(a, b *Matrix) (*Matrix, error) { return addSub(a, b, true, opSub) }

// Neg returns −A.
// Complexity: O(n²).
func Neg(m *Matrix) (*Matrix, error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, matrixErrorf(opNeg, err)
	}
	res := newMatrix(m.n)
	for idx, v := range m.data {
		res.data[idx] = v.Neg()
	}

	return res, nil
}

// Mul performs standard matrix multiplication C = A × B.
//
// Implementation:
//   - Stage 1: Validate A,B (not nil) and equal size.
//   - Stage 2: i→k→j loops with row-major strides, skipping zero A[i,k]
//     (elementary matrices are mostly zeros, so this is the common case).
//
// Errors:
//   - ErrNilMatrix (nil input), ErrDimensionMismatch (size mismatch).
//
// Determinism:
//   - Fixed loop order; exact arithmetic makes the result order-independent
//     anyway.
//
// Complexity:
//   - Time O(n³), Space O(n²).
func Mul(a, b *Matrix) (*Matrix, error) {
	if err := ValidateSameSize(a, b); err != nil {
		return nil, matrixErrorf(opMul, err)
	}

	n := a.n
	res := newMatrix(n)
	var (
		i, j, k int
		av      rational.Rational
	)
	for i = 0; i < n; i++ {
		rowA := i * n
		for k = 0; k < n; k++ {
			av = a.data[rowA+k]
			if av.IsZero() {
				continue // zero contributes nothing
			}
			rowB := k * n
			for j = 0; j < n; j++ {
				if b.data[rowB+j].IsZero() {
					continue
				}
				res.data[rowA+j] = res.data[rowA+j].Add(av.Mul(b.data[rowB+j]))
			}
		}
	}

	return res, nil
}

// Scale returns k·A.
// Complexity: O(n²).
func Scale(m *Matrix, k rational.Rational) (*Matrix, error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, matrixErrorf(opScale, err)
	}
	res := newMatrix(m.n)
	for idx, v := range m.data {
		res.data[idx] = v.Mul(k)
	}

	return res, nil
}

// ScaleInt returns k·A for an integer k.
// Complexity: O(n²).
func ScaleInt(m *Matrix, k int64) (*Matrix, error) { return Scale(m, rational.FromInt(k)) }

// Pow returns A^k for k ≥ 0 (A^0 = I).
//
// Implementation:
//   - Binary exponentiation: square the base and multiply into the result on
//     set bits. Matrix powers of the same base commute, so the result equals
//     k−1 repeated multiplications exactly.
//
// Errors:
//   - ErrNilMatrix, ErrBadExponent (k < 0).
//
// Complexity:
//   - Time O(n³·log k), Space O(n²).
func Pow(m *Matrix, k int) (*Matrix, error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, matrixErrorf(opPow, err)
	}
	if k < 0 {
		return nil, matrixErrorf(opPow, fmt.Errorf("%d: %w", k, ErrBadExponent))
	}

	res := newIdentity(m.n)
	base := m
	var err error
	for k > 0 {
		if k&1 == 1 {
			if res, err = Mul(res, base); err != nil {
				return nil, matrixErrorf(opPow, err)
			}
		}
		k >>= 1
		if k > 0 {
			if base, err = Mul(base, base); err != nil {
				return nil, matrixErrorf(opPow, err)
			}
		}
	}

	return res, nil
}

// Equal reports whether every entry of a equals the corresponding entry of
// b exactly.
//
// Errors:
//   - ErrNilMatrix, ErrDimensionMismatch (sizes differ; not reported as false).
//
// Complexity:
//   - Time O(n²) worst case, stops at the first difference.
func Equal(a, b *Matrix) (bool, error) {
	if err := ValidateSameSize(a, b); err != nil {
		return false, matrixErrorf(opEqual, err)
	}
	for idx := range a.data {
		if !a.data[idx].Equal(b.data[idx]) {
			return false, nil
		}
	}

	return true, nil
}

// Transpose returns Aᵀ with result[i][j] = A[j][i].
// Complexity: O(n²).
func Transpose(m *Matrix) (*Matrix, error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, matrixErrorf(opTranspose, err)
	}
	n := m.n
	res := newMatrix(n)
	var i, j int
	for i = 0; i < n; i++ {
		base := i * n
		for j = 0; j < n; j++ {
			res.data[j*n+i] = m.data[base+j]
		}
	}

	return res, nil
}
