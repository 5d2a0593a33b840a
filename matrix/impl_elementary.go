// SPDX-License-Identifier: MIT
// Package matrix: elementary row operations.
//
// Every operation builds an elementary matrix E (the identity altered at one
// or two cells) and returns E × M. Nothing is mutated in place, so
// RowSwitch/RowScale/RowAddMultiple compose exactly like the matrices they
// stand for and their correctness follows from Mul.

package matrix

import (
	"fmt"

	"github.com/wojino/sqmatrix/rational"
)

// switchMatrix returns the identity with rows i and j exchanged.
// For i == j the result is the identity.
func switchMatrix(n, i, j int) *Matrix {
	e := newIdentity(n)
	e.set(i, i, rational.Zero())
	e.set(j, j, rational.Zero())
	e.set(i, j, rational.One())
	e.set(j, i, rational.One())

	return e
}

// scaleMatrix returns the identity with E[i][i] = k.
func scaleMatrix(n, i int, k rational.Rational) *Matrix {
	e := newIdentity(n)
	e.set(i, i, k)

	return e
}

// addMatrix returns the elementary matrix adding factor × row source to row
// target. When target == source the single diagonal cell becomes factor+1,
// i.e. row target is scaled by (factor+1).
func addMatrix(n, target, source int, factor rational.Rational) *Matrix {
	e := newIdentity(n)
	if target == source {
		e.set(target, target, factor.Add(rational.One()))
	} else {
		e.set(target, source, factor)
	}

	return e
}

// validateRows checks m and every row index in one place.
func validateRows(m *Matrix, rows ...int) error {
	if err := ValidateNotNil(m); err != nil {
		return err
	}
	for _, r := range rows {
		if err := ValidateIndex(m, r); err != nil {
			return err
		}
	}

	return nil
}

// RowSwitch returns M with rows i and j exchanged.
//
// Errors:
//   - ErrNilMatrix, ErrOutOfRange.
//
// Complexity:
//   - Time O(n³) (elementary product), Space O(n²).
func RowSwitch(m *Matrix, i, j int) (*Matrix, error) {
	if err := validateRows(m, i, j); err != nil {
		return nil, matrixErrorf(opRowSwitch, err)
	}
	res, err := Mul(switchMatrix(m.n, i, j), m)
	if err != nil {
		return nil, matrixErrorf(opRowSwitch, err)
	}

	return res, nil
}

// RowScale returns M with row i multiplied by k.
//
// Errors:
//   - ErrNilMatrix, ErrOutOfRange.
//   - ErrZeroFactor when k == 0: the resulting E is singular, so it is not
//     an elementary row operation.
//
// Complexity:
//   - Time O(n³), Space O(n²).
func RowScale(m *Matrix, i int, k rational.Rational) (*Matrix, error) {
	if err := validateRows(m, i); err != nil {
		return nil, matrixErrorf(opRowScale, err)
	}
	if k.IsZero() {
		return nil, matrixErrorf(opRowScale, fmt.Errorf("row %d: %w", i, ErrZeroFactor))
	}
	res, err := Mul(scaleMatrix(m.n, i, k), m)
	if err != nil {
		return nil, matrixErrorf(opRowScale, err)
	}

	return res, nil
}

// RowAddMultiple returns M with factor × row source added to row target.
// If target == source, row target is scaled by (factor+1).
//
// Errors:
//   - ErrNilMatrix, ErrOutOfRange.
//
// Complexity:
//   - Time O(n³), Space O(n²).
func RowAddMultiple(m *Matrix, target, source int, factor rational.Rational) (*Matrix, error) {
	if err := validateRows(m, target, source); err != nil {
		return nil, matrixErrorf(opRowAdd, err)
	}
	res, err := Mul(addMatrix(m.n, target, source, factor), m)
	if err != nil {
		return nil, matrixErrorf(opRowAdd, err)
	}

	return res, nil
}
