// SPDX-License-Identifier: MIT
// Package matrix_test contains unit tests for Gauss-Jordan inversion.
package matrix_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/wojino/sqmatrix/matrix"
)

// hilbert4 is H_4 with H[i][j] = 1/(i+j+1); its inverse is integral.
var hilbert4 = [][]string{
	{"1", "1/2", "1/3", "1/4"},
	{"1/2", "1/3", "1/4", "1/5"},
	{"1/3", "1/4", "1/5", "1/6"},
	{"1/4", "1/5", "1/6", "1/7"},
}

var hilbert4Inv = [][]int64{
	{16, -120, 240, -140},
	{-120, 1200, -2700, 1680},
	{240, -2700, 6480, -4200},
	{-140, 1680, -4200, 2800},
}

func TestInverse_Known(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		a    *matrix.Matrix
		want *matrix.Matrix
	}{
		{"1x1", MustInts(t, [][]int64{{4}}), MustParse(t, [][]string{{"1/4"}})},
		{"2x2", MustInts(t, [][]int64{{2, 1}, {1, 1}}), MustInts(t, [][]int64{{1, -1}, {-1, 2}})},
		{
			"tridiagonal",
			MustInts(t, [][]int64{{2, -1, 0}, {-1, 2, -1}, {0, -1, 2}}),
			MustParse(t, [][]string{{"3/4", "1/2", "1/4"}, {"1/2", "1", "1/2"}, {"1/4", "1/2", "3/4"}}),
		},
		{"hilbert4", MustParse(t, hilbert4), MustInts(t, hilbert4Inv)},
		{"identity", MustIdentity(t, 3), MustIdentity(t, 3)},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			inv, err := matrix.Inverse(tc.a)
			require.NoError(t, err)
			RequireEqual(t, tc.want, inv)

			ok, err := matrix.VerifyInverse(tc.a, inv)
			require.NoError(t, err)
			require.True(t, ok)

			// pivoting never changes the result for these inputs
			invP, err := matrix.Inverse(tc.a, matrix.WithPivoting(matrix.PivotPartial))
			require.NoError(t, err)
			RequireEqual(t, tc.want, invP)
		})
	}
}

func TestInverse_ZeroPivot(t *testing.T) {
	t.Parallel()

	swap := MustInts(t, [][]int64{{0, 1}, {1, 0}})

	_, err := matrix.Inverse(swap)
	var se *matrix.SingularMatrixError
	require.True(t, errors.As(err, &se))
	require.Equal(t, 0, se.Pivot)
	require.Equal(t, "Inverse", se.Op)
	require.ErrorIs(t, err, matrix.ErrSingular)

	for _, p := range []matrix.Pivoting{matrix.PivotFirstNonZero, matrix.PivotPartial} {
		inv, err := matrix.Inverse(swap, matrix.WithPivoting(p))
		require.NoError(t, err, p.String())
		RequireEqual(t, swap, inv)
	}

	inv, err := matrix.InverseOf(swap)
	require.NoError(t, err)
	RequireEqual(t, swap, inv)
}

func TestInverse_Singular(t *testing.T) {
	t.Parallel()

	a := MustInts(t, [][]int64{{1, 2}, {2, 4}})
	for _, p := range []matrix.Pivoting{matrix.PivotNone, matrix.PivotFirstNonZero, matrix.PivotPartial} {
		_, err := matrix.Inverse(a, matrix.WithPivoting(p))
		var se *matrix.SingularMatrixError
		require.True(t, errors.As(err, &se), p.String())
		require.Equal(t, 1, se.Pivot)
	}

	_, err := matrix.Inverse(nil)
	require.ErrorIs(t, err, matrix.ErrNilMatrix)
}

// TestInverse_Involution checks (A⁻¹)⁻¹ = A and that the input is untouched.
func TestInverse_Involution(t *testing.T) {
	t.Parallel()

	a := MustParse(t, hilbert4)
	inv, err := matrix.Inverse(a)
	require.NoError(t, err)
	back, err := matrix.Inverse(inv)
	require.NoError(t, err)
	RequireEqual(t, a, back)
	RequireEqual(t, MustParse(t, hilbert4), a)
}
