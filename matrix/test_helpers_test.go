// SPDX-License-Identifier: MIT
// Package matrix_test contains test helpers
//
// Purpose:
//   - Provide small, deterministic fixtures for constructors and kernels.
//   - Keep call sites short: every Must* helper fails the test immediately.

package matrix_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/wojino/sqmatrix/matrix"
	"github.com/wojino/sqmatrix/rational"
)

// MustInts builds a matrix from an integer grid or fails the test.
func MustInts(tb testing.TB, rows [][]int64) *matrix.Matrix {
	tb.Helper()
	m, err := matrix.FromInts(rows)
	require.NoError(tb, err)

	return m
}

// MustParse builds a matrix from a grid of "p/q" strings or fails the test.
func MustParse(tb testing.TB, rows [][]string) *matrix.Matrix {
	tb.Helper()
	grid := make([][]rational.Rational, len(rows))
	for i, row := range rows {
		grid[i] = make([]rational.Rational, len(row))
		for j, s := range row {
			v, err := rational.Parse(s)
			require.NoError(tb, err)
			grid[i][j] = v
		}
	}
	m, err := matrix.FromGrid(grid)
	require.NoError(tb, err)

	return m
}

// MustIdentity returns I_n or fails the test.
func MustIdentity(tb testing.TB, n int) *matrix.Matrix {
	tb.Helper()
	m, err := matrix.Identity(n)
	require.NoError(tb, err)

	return m
}

// MustMul returns a×b or fails the test.
func MustMul(tb testing.TB, a, b *matrix.Matrix) *matrix.Matrix {
	tb.Helper()
	m, err := matrix.Mul(a, b)
	require.NoError(tb, err)

	return m
}

// MustAt returns m[i][j] or fails the test.
func MustAt(tb testing.TB, m *matrix.Matrix, i, j int) rational.Rational {
	tb.Helper()
	v, err := m.At(i, j)
	require.NoError(tb, err)

	return v
}

// RequireEqual asserts exact entry-wise equality and prints both matrices
// on failure.
func RequireEqual(tb testing.TB, want, got *matrix.Matrix) {
	tb.Helper()
	ok, err := matrix.Equal(want, got)
	require.NoError(tb, err)
	require.Truef(tb, ok, "want %s\ngot  %s", want, got)
}

// lcgInts returns an n×n grid of small integers from a fixed linear
// congruential sequence; the same seed always yields the same matrix.
func lcgInts(n int, seed uint32) [][]int64 {
	rows := make([][]int64, n)
	x := seed
	for i := range rows {
		rows[i] = make([]int64, n)
		for j := range rows[i] {
			x = x*1664525 + 1013904223
			rows[i][j] = int64(x>>24)%19 - 9 // [-9, 9]
		}
	}

	return rows
}
