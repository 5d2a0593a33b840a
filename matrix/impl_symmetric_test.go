// SPDX-License-Identifier: MIT
// Package matrix_test contains unit tests for LDLT and Cholesky.
package matrix_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/wojino/sqmatrix/matrix"
)

var spd3 = [][]int64{{4, 12, -16}, {12, 37, -43}, {-16, -43, 98}}

func TestLDLT_Known(t *testing.T) {
	t.Parallel()

	a := MustInts(t, spd3)
	l, d, err := matrix.LDLT(a)
	require.NoError(t, err)
	RequireEqual(t, MustInts(t, [][]int64{{1, 0, 0}, {3, 1, 0}, {-4, 5, 1}}), l)
	RequireEqual(t, MustInts(t, [][]int64{{4, 0, 0}, {0, 1, 0}, {0, 0, 9}}), d)
	require.True(t, matrix.IsDiagonal(d))

	ok, err := matrix.VerifyLDLT(a, l, d)
	require.NoError(t, err)
	require.True(t, ok)
}

// TestLDLT_Indefinite factors a symmetric matrix that has no Cholesky factor.
func TestLDLT_Indefinite(t *testing.T) {
	t.Parallel()

	a := MustInts(t, [][]int64{{1, 2}, {2, 1}})
	l, d, err := matrix.LDLT(a)
	require.NoError(t, err)
	RequireEqual(t, MustInts(t, [][]int64{{1, 0}, {2, 1}}), l)
	RequireEqual(t, MustInts(t, [][]int64{{1, 0}, {0, -3}}), d)

	_, err = matrix.Cholesky(a)
	require.ErrorIs(t, err, matrix.ErrNotPositiveDefinite)
}

func TestLDLT_Errors(t *testing.T) {
	t.Parallel()

	_, _, err := matrix.LDLT(MustInts(t, [][]int64{{1, 2}, {3, 4}}))
	require.ErrorIs(t, err, matrix.ErrNotSymmetric)

	_, _, err = matrix.LDLT(MustInts(t, [][]int64{{0, 1}, {1, 0}}))
	var se *matrix.SingularMatrixError
	require.True(t, errors.As(err, &se))
	require.Equal(t, 0, se.Pivot)
	require.Equal(t, "LDLT", se.Op)

	// a zero in the last position is accepted
	_, d, err := matrix.LDLT(MustInts(t, [][]int64{{1, 1}, {1, 1}}))
	require.NoError(t, err)
	RequireEqual(t, MustInts(t, [][]int64{{1, 0}, {0, 0}}), d)

	_, _, err = matrix.LDLT(nil)
	require.ErrorIs(t, err, matrix.ErrNilMatrix)
}

func TestCholesky_Known(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		a, l *matrix.Matrix
	}{
		{"integral", MustInts(t, spd3), MustInts(t, [][]int64{{2, 0, 0}, {6, 1, 0}, {-8, 5, 3}})},
		{
			"fractional",
			MustParse(t, [][]string{{"1/4", "1/2"}, {"1/2", "5/4"}}),
			MustParse(t, [][]string{{"1/2", "0"}, {"1", "1/2"}}),
		},
		{"identity", MustIdentity(t, 4), MustIdentity(t, 4)},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			l, err := matrix.Cholesky(tc.a)
			require.NoError(t, err)
			RequireEqual(t, tc.l, l)
			require.True(t, matrix.IsLowerTriangular(l))

			ok, err := matrix.VerifyCholesky(tc.a, l)
			require.NoError(t, err)
			require.True(t, ok)
		})
	}
}

func TestCholesky_Irrational(t *testing.T) {
	t.Parallel()

	_, err := matrix.Cholesky(MustInts(t, [][]int64{{2, 1}, {1, 2}}))
	require.ErrorIs(t, err, matrix.ErrIrrationalRadicand)

	var ie *matrix.IrrationalRadicandError
	require.True(t, errors.As(err, &ie))
	require.Equal(t, 0, ie.Index)
	require.Equal(t, "2", ie.Radicand.String())

	// second radicand is 3 − 1² = 2
	_, err = matrix.Cholesky(MustInts(t, [][]int64{{1, 1}, {1, 3}}))
	require.True(t, errors.As(err, &ie))
	require.Equal(t, 1, ie.Index)
	require.Equal(t, "2", ie.Radicand.String())
}

func TestCholesky_Errors(t *testing.T) {
	t.Parallel()

	_, err := matrix.Cholesky(MustInts(t, [][]int64{{1, 2}, {3, 4}}))
	require.ErrorIs(t, err, matrix.ErrNotSymmetric)

	_, err = matrix.Cholesky(MustInts(t, [][]int64{{-1, 0}, {0, 1}}))
	require.ErrorIs(t, err, matrix.ErrNotPositiveDefinite)

	_, err = matrix.Cholesky(MustInts(t, [][]int64{{0, 0}, {0, 1}}))
	require.ErrorIs(t, err, matrix.ErrSingular)

	_, err = matrix.Cholesky(nil)
	require.ErrorIs(t, err, matrix.ErrNilMatrix)
}
