// SPDX-License-Identifier: MIT

// Package matrix: construction sources.
//
// A Matrix is built from exactly one of three explicit sources, selected by
// the caller rather than guessed from the shape of the argument:
//   - IdentitySource{}  → I_n
//   - FlatSource{...}   → n² values filled row-major
//   - GridSource{...}   → n rows of n values
//
// Every source must populate all n² entries; anything else is
// ErrMalformedInput. There is no silent fallback from empty data to the
// identity.

package matrix

import (
	"fmt"

	"github.com/wojino/sqmatrix/rational"
)

// Source describes how New fills the n² entries of a matrix.
// The interface is sealed; use IdentitySource, FlatSource or GridSource.
type Source interface {
	fill(n int) (*Matrix, error)
}

// IdentitySource builds I_n.
type IdentitySource struct{}

// FlatSource holds n² values in row-major order.
type FlatSource []rational.Rational

// GridSource holds n rows of n values each.
type GridSource [][]rational.Rational

func (IdentitySource) fill(n int) (*Matrix, error) { return newIdentity(n), nil }

func (s FlatSource) fill(n int) (*Matrix, error) {
	if len(s) != n*n {
		return nil, fmt.Errorf("flat source has %d values, want %d: %w", len(s), n*n, ErrMalformedInput)
	}
	m := newMatrix(n)
	copy(m.data, s)

	return m, nil
}

func (s GridSource) fill(n int) (*Matrix, error) {
	if len(s) != n {
		return nil, fmt.Errorf("grid source has %d rows, want %d: %w", len(s), n, ErrMalformedInput)
	}
	m := newMatrix(n)
	for i, row := range s {
		if len(row) != n {
			return nil, fmt.Errorf("grid row %d has %d values, want %d: %w", i, len(row), n, ErrMalformedInput)
		}
		copy(m.data[i*n:(i+1)*n], row)
	}

	return m, nil
}

// New builds an n×n matrix from src.
//
// Implementation:
//   - Stage 1: validate n > 0 and src != nil.
//   - Stage 2: delegate to the source, which checks its own entry count and
//     copies the values (the caller keeps ownership of its slices).
//
// Errors:
//   - ErrInvalidDimensions (n ≤ 0).
//   - ErrMalformedInput (nil source, wrong count, ragged grid).
//
// Complexity:
//   - Time O(n²), Space O(n²).
func New(n int, src Source) (*Matrix, error) {
	if n <= 0 {
		return nil, matrixErrorf(opNew, ErrInvalidDimensions)
	}
	if src == nil {
		return nil, matrixErrorf(opNew, fmt.Errorf("nil source: %w", ErrMalformedInput))
	}
	m, err := src.fill(n)
	if err != nil {
		return nil, matrixErrorf(opNew, err)
	}

	return m, nil
}

// FromFlat is New(n, FlatSource(vals)).
func FromFlat(n int, vals []rational.Rational) (*Matrix, error) {
	return New(n, FlatSource(vals))
}

// FromGrid is New(len(rows), GridSource(rows)). An empty grid is
// ErrMalformedInput, not a 0×0 matrix.
func FromGrid(rows [][]rational.Rational) (*Matrix, error) {
	if len(rows) == 0 {
		return nil, matrixErrorf(opNew, fmt.Errorf("empty grid: %w", ErrMalformedInput))
	}

	return New(len(rows), GridSource(rows))
}

// FromInts converts an integer grid and builds the matrix with FromGrid.
func FromInts(rows [][]int64) (*Matrix, error) {
	grid := make([][]rational.Rational, len(rows))
	for i, row := range rows {
		grid[i] = make([]rational.Rational, len(row))
		for j, v := range row {
			grid[i][j] = rational.FromInt(v)
		}
	}

	return FromGrid(grid)
}
