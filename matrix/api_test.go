// SPDX-License-Identifier: MIT
// Package matrix_test contains unit tests for the API facades.
package matrix_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/wojino/sqmatrix/matrix"
	"github.com/wojino/sqmatrix/rational"
)

// TestFacades_Delegate ensures every alias returns what its kernel returns.
func TestFacades_Delegate(t *testing.T) {
	t.Parallel()

	a := MustInts(t, [][]int64{{1, 2}, {3, 4}})
	b := MustInts(t, [][]int64{{0, 1}, {1, 1}})

	pairs := []struct {
		name      string
		facade    func() (*matrix.Matrix, error)
		canonical func() (*matrix.Matrix, error)
	}{
		{"Sum", func() (*matrix.Matrix, error) { return matrix.Sum(a, b) }, func() (*matrix.Matrix, error) { return matrix.Add(a, b) }},
		{"Diff", func() (*matrix.Matrix, error) { return matrix.Diff(a, b) }, func() (*matrix.Matrix, error) { return matrix.Sub(a, b) }},
		{"Product", func() (*matrix.Matrix, error) { return matrix.Product(a, b) }, func() (*matrix.Matrix, error) { return matrix.Mul(a, b) }},
		{"T", func() (*matrix.Matrix, error) { return matrix.T(a) }, func() (*matrix.Matrix, error) { return matrix.Transpose(a) }},
		{"ScaleBy", func() (*matrix.Matrix, error) { return matrix.ScaleBy(a, rational.FromInt(3)) }, func() (*matrix.Matrix, error) { return matrix.ScaleInt(a, 3) }},
		{"NewIdentity", func() (*matrix.Matrix, error) { return matrix.NewIdentity(3) }, func() (*matrix.Matrix, error) { return matrix.Identity(3) }},
		{"NewZeros", func() (*matrix.Matrix, error) { return matrix.NewZeros(3) }, func() (*matrix.Matrix, error) { return matrix.Zero(3) }},
		{"InverseOf", func() (*matrix.Matrix, error) { return matrix.InverseOf(b) }, func() (*matrix.Matrix, error) {
			return matrix.Inverse(b, matrix.WithPivoting(matrix.PivotPartial))
		}},
	}

	for _, tc := range pairs {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			got, err := tc.facade()
			require.NoError(t, err)
			want, err := tc.canonical()
			require.NoError(t, err)
			RequireEqual(t, want, got)
		})
	}
}

func TestVerifiers_RejectWrongFactors(t *testing.T) {
	t.Parallel()

	a := MustInts(t, spd3)
	id := MustIdentity(t, 3)

	ok, err := matrix.VerifyLU(a, id, id)
	require.NoError(t, err)
	require.False(t, ok)

	ok, err = matrix.VerifyCholesky(a, id)
	require.NoError(t, err)
	require.False(t, ok)

	ok, err = matrix.VerifyInverse(a, id)
	require.NoError(t, err)
	require.False(t, ok)

	_, err = matrix.VerifyLU(a, MustIdentity(t, 2), id)
	require.ErrorIs(t, err, matrix.ErrDimensionMismatch)
}

// TestVerifiers_RejectWrongShapes feeds factors whose product is right but
// whose shape is not.
func TestVerifiers_RejectWrongShapes(t *testing.T) {
	t.Parallel()

	a := MustInts(t, spd3)
	id := MustIdentity(t, 3)

	// P = L = I, U = A: product holds, U is not upper-triangular
	ok, err := matrix.VerifyPLU(a, id, id, a)
	require.NoError(t, err)
	require.False(t, ok)

	// L = I, D = A: product holds, D is not diagonal
	ok, err = matrix.VerifyLDLT(a, id, a)
	require.NoError(t, err)
	require.False(t, ok)

	// L = A, U = I: product holds, L is not unit lower-triangular
	ok, err = matrix.VerifyLU(a, a, id)
	require.NoError(t, err)
	require.False(t, ok)

	// Lᵗ as a Cholesky factor: Lᵗ×L != A, and Lᵗ is upper-triangular anyway
	l, err := matrix.Cholesky(a)
	require.NoError(t, err)
	lt, err := matrix.Transpose(l)
	require.NoError(t, err)
	ok, err = matrix.VerifyCholesky(a, lt)
	require.NoError(t, err)
	require.False(t, ok)

	// 2·I as "P" with U halved: product holds, P is not a permutation
	two, err := matrix.ScaleInt(id, 2)
	require.NoError(t, err)
	l2, u2, err := matrix.LU(a, matrix.Doolittle)
	require.NoError(t, err)
	u2, err = matrix.ScaleInt(u2, 2)
	require.NoError(t, err)
	ok, err = matrix.VerifyPLU(a, two, l2, u2)
	require.NoError(t, err)
	require.False(t, ok)
}

func TestVerifiers_AcceptKernelFactors(t *testing.T) {
	t.Parallel()

	a := MustInts(t, spd3)

	p, l, u, err := matrix.PLU(a)
	require.NoError(t, err)
	ok, err := matrix.VerifyPLU(a, p, l, u)
	require.NoError(t, err)
	require.True(t, ok)

	ld, d, err := matrix.LDLT(a)
	require.NoError(t, err)
	ok, err = matrix.VerifyLDLT(a, ld, d)
	require.NoError(t, err)
	require.True(t, ok)

	lc, err := matrix.Cholesky(a)
	require.NoError(t, err)
	ok, err = matrix.VerifyCholesky(a, lc)
	require.NoError(t, err)
	require.True(t, ok)

	inv, err := matrix.Inverse(a)
	require.NoError(t, err)
	ok, err = matrix.VerifyInverse(a, inv)
	require.NoError(t, err)
	require.True(t, ok)
}
