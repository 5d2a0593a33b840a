// SPDX-License-Identifier: MIT
// Package matrix: LU and PLU factorizations.
//
// Zero-pivot policy shared by every method: a diagonal entry is a failure
// only when it is used as a divisor. The last pivot U[n-1][n-1] never
// divides anything, so a matrix whose only zero pivot is the last one
// factors successfully (with U[n-1][n-1] = 0) under both LU methods, which
// keeps Gauss and Doolittle in agreement on every input.

package matrix

import (
	"fmt"

	"github.com/wojino/sqmatrix/rational"
)

// LU factors A = L×U with L unit-lower-triangular and U upper-triangular,
// without row exchanges.
//
// Behavior highlights:
//   - Doolittle (default, the zero Method) evaluates the defining sums.
//   - Gauss eliminates below the diagonal with RowAddMultiple, accumulating
//     the same operations into E (E·A = U), and returns L = E⁻¹.
//   - Both methods return identical L and U whenever they succeed.
//
// Errors:
//   - ErrNilMatrix, ErrUnknownMethod.
//   - *SingularMatrixError when a pivot used as divisor is zero; use PLU for
//     such inputs.
//
// Complexity:
//   - Doolittle O(n³); Gauss O(n⁵) (elementary products). Space O(n²).
func LU(m *Matrix, method Method) (*Matrix, *Matrix, error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, nil, matrixErrorf(opLU, err)
	}

	var (
		l, u *Matrix
		err  error
	)
	switch method {
	case Doolittle:
		l, u, err = doolittle(m, opLU, methodDoolittle)
	case Gauss:
		l, u, err = gaussLU(m)
	default:
		err = fmt.Errorf("%s: %w", method, ErrUnknownMethod)
	}
	if err != nil {
		return nil, nil, matrixErrorf(opLU, err)
	}

	return l, u, nil
}

// doolittle runs the Doolittle recurrences:
//
//	U[k][j] = A[k][j] − Σ_{s<k} L[k][s]·U[s][j]            (j ≥ k)
//	L[i][k] = (A[i][k] − Σ_{s<k} L[i][s]·U[s][k]) / U[k][k] (i > k)
//
// op/method only label a *SingularMatrixError.
func doolittle(a *Matrix, op, method string) (*Matrix, *Matrix, error) {
	n := a.n
	l := newIdentity(n)
	u := newMatrix(n)

	var (
		i, j, k, s int
		sum        rational.Rational
	)
	for k = 0; k < n; k++ {
		// Row k of U.
		for j = k; j < n; j++ {
			sum = rational.Zero()
			for s = 0; s < k; s++ {
				sum = sum.Add(l.get(k, s).Mul(u.get(s, j)))
			}
			u.set(k, j, a.get(k, j).Sub(sum))
		}

		if k == n-1 {
			break // no column of L left to divide
		}
		pivot := u.get(k, k)
		if pivot.IsZero() {
			return nil, nil, &SingularMatrixError{Op: op, Method: method, Pivot: k}
		}

		// Column k of L.
		for i = k + 1; i < n; i++ {
			sum = rational.Zero()
			for s = 0; s < k; s++ {
				sum = sum.Add(l.get(i, s).Mul(u.get(s, k)))
			}
			q, err := a.get(i, k).Sub(sum).Div(pivot)
			if err != nil {
				return nil, nil, err
			}
			l.set(i, k, q)
		}
	}

	return l, u, nil
}

// gaussLU eliminates below the diagonal of a working copy U while mirroring
// each row operation into E (started at I); L is E⁻¹. E is unit lower
// triangular, so inverting it never meets a zero pivot.
func gaussLU(a *Matrix) (*Matrix, *Matrix, error) {
	n := a.n
	u := a.clone()
	e := newIdentity(n)

	apply := func(op func(*Matrix) (*Matrix, error)) error {
		var err error
		if u, err = op(u); err != nil {
			return err
		}
		e, err = op(e)
		return err
	}

	for i := 0; i < n-1; i++ {
		pivot := u.get(i, i)
		if pivot.IsZero() {
			return nil, nil, &SingularMatrixError{Op: opLU, Method: methodGauss, Pivot: i}
		}
		for j := i + 1; j < n; j++ {
			if err := eliminate(u, j, i, pivot, apply); err != nil {
				return nil, nil, err
			}
		}
	}

	l, err := Inverse(e)
	if err != nil {
		return nil, nil, err
	}

	return l, u, nil
}

// PLU factors P×A = L×U with P a permutation matrix.
//
// Implementation (by strategy, see WithPivoting):
//   - PivotPartial (default): Gaussian elimination that, at every column k,
//     moves the candidate of largest magnitude in rows k..n-1 to row k,
//     recording the exchange in P and in the multipliers already stored in
//     L. A column that is zero from row k down is skipped (U[k][k] = 0).
//     This never fails: every square matrix, singular or not, has a PLU.
//   - PivotFirstNonZero: one top-to-bottom pre-pass that, whenever the
//     current diagonal entry is zero, swaps in the first row below with a
//     non-zero entry in that column; then Doolittle on the permuted copy.
//     A zero pivot produced later by elimination is NOT repaired and fails
//     with *SingularMatrixError.
//   - PivotNone: P = I followed by Doolittle.
//
// Errors:
//   - ErrNilMatrix.
//   - *SingularMatrixError (PivotFirstNonZero / PivotNone only).
//
// Complexity:
//   - PivotPartial O(n⁵) (elementary products), others O(n³) + pre-pass.
func PLU(m *Matrix, opts ...Option) (*Matrix, *Matrix, *Matrix, error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, nil, nil, matrixErrorf(opPLU, err)
	}
	o := gatherOptions(Options{pivoting: DefaultPLUPivoting}, opts...)

	var (
		p, l, u *Matrix
		err     error
	)
	switch o.pivoting {
	case PivotPartial:
		p, l, u, err = partialPivotLU(m)
	case PivotFirstNonZero:
		p, l, u, err = prePivotLU(m)
	default:
		p = newIdentity(m.n)
		l, u, err = doolittle(m, opPLU, methodDoolittle)
	}
	if err != nil {
		return nil, nil, nil, matrixErrorf(opPLU, err)
	}

	return p, l, u, nil
}

// prePivotLU is the single diagonal pre-pass followed by Doolittle.
func prePivotLU(a *Matrix) (*Matrix, *Matrix, *Matrix, error) {
	n := a.n
	work := a.clone()
	p := newIdentity(n)

	var err error
	for i := 0; i < n; i++ {
		r := pivotRow(work, i, PivotFirstNonZero)
		if r == i {
			continue
		}
		if work, err = RowSwitch(work, i, r); err != nil {
			return nil, nil, nil, err
		}
		if p, err = RowSwitch(p, i, r); err != nil {
			return nil, nil, nil, err
		}
	}

	l, u, err := doolittle(work, opPLU, methodDoolittle)
	if err != nil {
		return nil, nil, nil, err
	}

	return p, l, u, nil
}

// partialPivotLU is Gaussian elimination with partial pivoting at every
// step. L holds the multipliers below the diagonal (its diagonal is filled
// with ones at the end, so swapping whole rows of L only moves multipliers
// of earlier columns).
func partialPivotLU(a *Matrix) (*Matrix, *Matrix, *Matrix, error) {
	n := a.n
	u := a.clone()
	p := newIdentity(n)
	l := newMatrix(n)

	var err error
	for k := 0; k < n-1; k++ {
		r := pivotRow(u, k, PivotPartial)
		if u.get(r, k).IsZero() {
			continue // column already clear below the diagonal
		}
		if r != k {
			if u, err = RowSwitch(u, k, r); err != nil {
				return nil, nil, nil, err
			}
			if p, err = RowSwitch(p, k, r); err != nil {
				return nil, nil, nil, err
			}
			if l, err = RowSwitch(l, k, r); err != nil {
				return nil, nil, nil, err
			}
		}

		pivot := u.get(k, k)
		for j := k + 1; j < n; j++ {
			v := u.get(j, k)
			if v.IsZero() {
				continue
			}
			f, err := v.Div(pivot)
			if err != nil {
				return nil, nil, nil, err
			}
			if u, err = RowAddMultiple(u, j, k, f.Neg()); err != nil {
				return nil, nil, nil, err
			}
			l.set(j, k, f)
		}
	}

	for i := 0; i < n; i++ {
		l.set(i, i, rational.One())
	}

	return p, l, u, nil
}
