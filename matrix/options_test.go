// SPDX-License-Identifier: MIT
// Package matrix_test contains unit tests for functional options and the
// method / pivoting enumerations.
package matrix_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/wojino/sqmatrix/matrix"
)

func TestWithPivoting_PanicsOnUnknown(t *testing.T) {
	t.Parallel()

	require.PanicsWithValue(t, "matrix: WithPivoting: unknown pivoting strategy", func() {
		matrix.WithPivoting(matrix.Pivoting(42))
	})
	require.Panics(t, func() { matrix.WithPivoting(matrix.Pivoting(-1)) })
	require.NotPanics(t, func() { matrix.WithPivoting(matrix.PivotPartial) })
}

// TestOptions_LastWins checks that later setters override earlier ones and
// that nil setters are ignored.
func TestOptions_LastWins(t *testing.T) {
	t.Parallel()

	swap := MustInts(t, [][]int64{{0, 1}, {1, 0}})

	_, err := matrix.Inverse(swap, matrix.WithPivoting(matrix.PivotPartial), matrix.WithPivoting(matrix.PivotNone))
	require.ErrorIs(t, err, matrix.ErrSingular)

	_, err = matrix.Inverse(swap, nil, matrix.WithPivoting(matrix.PivotPartial), nil)
	require.NoError(t, err)
}

func TestDefaults(t *testing.T) {
	t.Parallel()

	require.Equal(t, matrix.PivotNone, matrix.DefaultInversePivoting)
	require.Equal(t, matrix.PivotPartial, matrix.DefaultPLUPivoting)
	require.Equal(t, matrix.Doolittle, matrix.Method(0))
}

func TestParseMethod(t *testing.T) {
	t.Parallel()

	for in, want := range map[string]matrix.Method{
		"":          matrix.Doolittle,
		"doolittle": matrix.Doolittle,
		" Gauss ":   matrix.Gauss,
		"DOOLITTLE": matrix.Doolittle,
		"gauss":     matrix.Gauss,
	} {
		got, err := matrix.ParseMethod(in)
		require.NoError(t, err, in)
		require.Equal(t, want, got)
	}

	_, err := matrix.ParseMethod("crout")
	require.ErrorIs(t, err, matrix.ErrUnknownMethod)

	require.Equal(t, "gauss", matrix.Gauss.String())
	require.Equal(t, "Method(7)", matrix.Method(7).String())
}

func TestParsePivoting(t *testing.T) {
	t.Parallel()

	for _, p := range []matrix.Pivoting{matrix.PivotNone, matrix.PivotFirstNonZero, matrix.PivotPartial} {
		got, err := matrix.ParsePivoting(p.String())
		require.NoError(t, err)
		require.Equal(t, p, got)
	}

	_, err := matrix.ParsePivoting("")
	require.ErrorIs(t, err, matrix.ErrUnknownPivoting)
	_, err = matrix.ParsePivoting("complete")
	require.ErrorIs(t, err, matrix.ErrUnknownPivoting)
}
