// SPDX-License-Identifier: MIT
// Package matrix: public API facades.
//
// Purpose:
//   - Provide thin, intention-revealing entry points for common tasks.
//   - Avoid any logic duplication: each facade delegates to the canonical
//     kernel and adds no validation of its own.
//
// AI-Hints:
//   - Reach for Factorize when the method is a runtime value (CLI flag,
//     config file); call LU/PLU directly otherwise.
//   - Verify* helpers recompute the defining identity with exact equality;
//     they are what the CLI prints as "check: ok".

package matrix

import "github.com/wojino/sqmatrix/rational"

// ---------- Constructors ----------

// NewIdentity is an alias of Identity.
func NewIdentity(n int) (*Matrix, error) { return Identity(n) }

// NewZeros is an alias of Zero.
func NewZeros(n int) (*Matrix, error) { return Zero(n) }

// ---------- Algebra aliases ----------

// Sum is an alias of Add.
func Sum(a, b *Matrix) (*Matrix, error) { return Add(a, b) }

// Diff is an alias of Sub.
func Diff(a, b *Matrix) (*Matrix, error) { return Sub(a, b) }

// Product is an alias of Mul.
func Product(a, b *Matrix) (*Matrix, error) { return Mul(a, b) }

// T is a short alias of Transpose.
func T(m *Matrix) (*Matrix, error) { return Transpose(m) }

// ScaleBy is an alias of Scale.
func ScaleBy(m *Matrix, k rational.Rational) (*Matrix, error) { return Scale(m, k) }

// InverseOf returns A⁻¹ with partial pivoting, so any non-singular A
// succeeds. Use Inverse directly for the plain Gauss-Jordan behavior.
func InverseOf(m *Matrix) (*Matrix, error) { return Inverse(m, WithPivoting(PivotPartial)) }

// ---------- Factorization helpers ----------

// Factorize runs LU with a method chosen by name ("doolittle", "gauss", or
// "" for the default).
func Factorize(m *Matrix, method string) (*Matrix, *Matrix, error) {
	meth, err := ParseMethod(method)
	if err != nil {
		return nil, nil, matrixErrorf(opLU, err)
	}

	return LU(m, meth)
}

// productEquals reports whether X×Y == A exactly.
func productEquals(a, x, y *Matrix) (bool, error) {
	xy, err := Mul(x, y)
	if err != nil {
		return false, err
	}

	return Equal(xy, a)
}

// VerifyLU reports whether L is unit lower-triangular, U is upper-triangular
// and L×U == A exactly.
func VerifyLU(a, l, u *Matrix) (bool, error) {
	ok, err := productEquals(a, l, u)
	if err != nil || !ok {
		return false, err
	}

	return IsUnitLowerTriangular(l) && IsUpperTriangular(u), nil
}

// VerifyPLU reports whether P is a permutation matrix and (L, U) is an LU
// factorization of P×A.
func VerifyPLU(a, p, l, u *Matrix) (bool, error) {
	pa, err := Mul(p, a)
	if err != nil {
		return false, err
	}
	if !IsPermutation(p) {
		return false, nil
	}

	return VerifyLU(pa, l, u)
}

// VerifyLDLT reports whether L is unit lower-triangular, D is diagonal and
// L×D×Lᵗ == A exactly.
func VerifyLDLT(a, l, d *Matrix) (bool, error) {
	lt, err := Transpose(l)
	if err != nil {
		return false, err
	}
	ld, err := Mul(l, d)
	if err != nil {
		return false, err
	}
	ok, err := productEquals(a, ld, lt)
	if err != nil || !ok {
		return false, err
	}

	return IsUnitLowerTriangular(l) && IsDiagonal(d), nil
}

// VerifyCholesky reports whether L is lower-triangular and L×Lᵗ == A exactly.
func VerifyCholesky(a, l *Matrix) (bool, error) {
	lt, err := Transpose(l)
	if err != nil {
		return false, err
	}
	ok, err := productEquals(a, l, lt)
	if err != nil || !ok {
		return false, err
	}

	return IsLowerTriangular(l), nil
}

// VerifyInverse reports whether X is a two-sided inverse of A: A×X == I and
// X×A == I exactly.
func VerifyInverse(a, x *Matrix) (bool, error) {
	ax, err := Mul(a, x)
	if err != nil {
		return false, err
	}
	xa, err := Mul(x, a)
	if err != nil {
		return false, err
	}

	return IsIdentity(ax) && IsIdentity(xa), nil
}
