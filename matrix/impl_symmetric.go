// SPDX-License-Identifier: MIT
// Package matrix: factorizations of symmetric matrices (LDLᵗ, Cholesky).
//
// Both kernels validate exact symmetry first and fail with ErrNotSymmetric
// otherwise; a factorization of a non-symmetric input would be meaningless.

package matrix

import (
	"errors"
	"fmt"

	"github.com/wojino/sqmatrix/rational"
)

// LDLT factors a symmetric A = L×D×Lᵗ with L unit-lower-triangular and D
// diagonal, using
//
//	D[j][j] = A[j][j] − Σ_{v<j} D[v][v]·L[j][v]²
//	L[i][j] = (A[i][j] − Σ_{v<j} L[i][v]·D[v][v]·L[j][v]) / D[j][j]   (i > j)
//
// Errors:
//   - ErrNilMatrix, ErrNotSymmetric.
//   - *SingularMatrixError when D[j][j] = 0 for j < n-1 (it would be a
//     divisor). A zero in the last position is accepted.
//
// Complexity:
//   - Time O(n³), Space O(n²).
func LDLT(m *Matrix) (*Matrix, *Matrix, error) {
	if err := ValidateSymmetric(m); err != nil {
		return nil, nil, matrixErrorf(opLDLT, err)
	}

	n := m.n
	l := newIdentity(n)
	d := newMatrix(n)

	var (
		i, j, v int
		sum     rational.Rational
	)
	for j = 0; j < n; j++ {
		sum = rational.Zero()
		for v = 0; v < j; v++ {
			ljv := l.get(j, v)
			sum = sum.Add(d.get(v, v).Mul(ljv).Mul(ljv))
		}
		djj := m.get(j, j).Sub(sum)
		d.set(j, j, djj)

		if j == n-1 {
			break
		}
		if djj.IsZero() {
			return nil, nil, matrixErrorf(opLDLT, &SingularMatrixError{Op: opLDLT, Pivot: j})
		}

		for i = j + 1; i < n; i++ {
			sum = rational.Zero()
			for v = 0; v < j; v++ {
				sum = sum.Add(l.get(i, v).Mul(d.get(v, v)).Mul(l.get(j, v)))
			}
			q, err := m.get(i, j).Sub(sum).Div(djj)
			if err != nil {
				return nil, nil, matrixErrorf(opLDLT, err)
			}
			l.set(i, j, q)
		}
	}

	return l, d, nil
}

// Cholesky factors a symmetric positive-definite A = L×Lᵗ with L
// lower-triangular, using
//
//	L[k][k] = √(A[k][k] − Σ_{s<k} L[k][s]²)
//	L[i][k] = (A[i][k] − Σ_{s<k} L[i][s]·L[k][s]) / L[k][k]   (i > k)
//
// Behavior highlights:
//   - Square roots are exact or the call fails; nothing is rounded. For
//     inputs whose factor is irrational use CholeskyApprox (float64) or LDLT
//     (always rational, the square-root-free variant of the same factor).
//
// Errors:
//   - ErrNilMatrix, ErrNotSymmetric.
//   - ErrNotPositiveDefinite when a radicand is negative.
//   - *IrrationalRadicandError (errors.Is ErrIrrationalRadicand) when a
//     radicand is not the square of a rational.
//   - *SingularMatrixError when a radicand is zero for k < n-1.
//
// Complexity:
//   - Time O(n³) plus n exact integer square roots, Space O(n²).
func Cholesky(m *Matrix) (*Matrix, error) {
	if err := ValidateSymmetric(m); err != nil {
		return nil, matrixErrorf(opCholesky, err)
	}

	n := m.n
	l := newMatrix(n)

	var (
		i, k, s int
		sum     rational.Rational
	)
	for k = 0; k < n; k++ {
		sum = rational.Zero()
		for s = 0; s < k; s++ {
			lks := l.get(k, s)
			sum = sum.Add(lks.Mul(lks))
		}
		radicand := m.get(k, k).Sub(sum)
		root, err := radicand.Sqrt()
		switch {
		case errors.Is(err, rational.ErrNegativeRadicand):
			return nil, matrixErrorf(opCholesky, fmt.Errorf("pivot %d radicand %s: %w", k, radicand, ErrNotPositiveDefinite))
		case errors.Is(err, rational.ErrIrrational):
			return nil, matrixErrorf(opCholesky, &IrrationalRadicandError{Index: k, Radicand: radicand})
		case err != nil:
			return nil, matrixErrorf(opCholesky, err)
		}
		l.set(k, k, root)

		if k == n-1 {
			break
		}
		if root.IsZero() {
			return nil, matrixErrorf(opCholesky, &SingularMatrixError{Op: opCholesky, Pivot: k})
		}

		for i = k + 1; i < n; i++ {
			sum = rational.Zero()
			for s = 0; s < k; s++ {
				sum = sum.Add(l.get(i, s).Mul(l.get(k, s)))
			}
			q, err := m.get(i, k).Sub(sum).Div(root)
			if err != nil {
				return nil, matrixErrorf(opCholesky, err)
			}
			l.set(i, k, q)
		}
	}

	return l, nil
}
