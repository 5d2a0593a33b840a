// SPDX-License-Identifier: MIT

// Package matrix - storage (row-major) & safe accessors.
//
// Purpose:
//   - Provide a flat row-major buffer with the explicit index formula i*n + j.
//   - Guarantee safety at the public surface: At/Row return errors instead of
//     panicking.
//   - Keep writes private (set) so that a published *Matrix never changes.
//
// Complexity quicksheet:
//   - Identity/Zero: O(n²); At: O(1); Row: O(n); Entries/clone: O(n²).

package matrix

import (
	"fmt"

	"github.com/wojino/sqmatrix/rational"
)

// ---------- error context tags ----------

const (
	ctxAt  = "At"
	ctxRow = "Row"
)

// denseErrorf wraps an error with accessor context and coordinates.
func denseErrorf(method string, row, col int, err error) error {
	return fmt.Errorf("Matrix.%s(%d,%d): %w", method, row, col, err)
}

// newMatrix allocates an n×n zero matrix. n must already be validated.
func newMatrix(n int) *Matrix {
	return &Matrix{n: n, data: make([]rational.Rational, n*n)}
}

// newIdentity allocates I_n. n must already be validated.
func newIdentity(n int) *Matrix {
	m := newMatrix(n)
	one := rational.One()
	for i := 0; i < n; i++ {
		m.data[i*n+i] = one // Rational is immutable; sharing one value is safe
	}

	return m
}

// Identity returns I_n: ones on the diagonal, zeros elsewhere.
// Returns ErrInvalidDimensions if n ≤ 0.
func Identity(n int) (*Matrix, error) {
	if n <= 0 {
		return nil, matrixErrorf(opIdentity, ErrInvalidDimensions)
	}

	return newIdentity(n), nil
}

// Zero returns the n×n all-zero matrix.
// Returns ErrInvalidDimensions if n ≤ 0.
func Zero(n int) (*Matrix, error) {
	if n <= 0 {
		return nil, matrixErrorf(opZero, ErrInvalidDimensions)
	}

	return newMatrix(n), nil
}

// Size returns n, the row and column count.
// Complexity: O(1).
func (m *Matrix) Size() int { return m.n }

// get reads (i,j) without bounds checks. Kernels call it after validation.
func (m *Matrix) get(i, j int) rational.Rational { return m.data[i*m.n+j] }

// set writes (i,j). Only used on matrices that have not been published yet.
func (m *Matrix) set(i, j int, v rational.Rational) { m.data[i*m.n+j] = v }

// clone returns an independent copy (entries are immutable, so a shallow
// copy of the slice is a deep copy of the values).
func (m *Matrix) clone() *Matrix {
	data := make([]rational.Rational, len(m.data))
	copy(data, m.data)

	return &Matrix{n: m.n, data: data}
}

// At returns the entry at (row, col).
// Returns ErrNilMatrix for a nil receiver and ErrOutOfRange for bad indices.
// Complexity: O(1).
func (m *Matrix) At(row, col int) (rational.Rational, error) {
	if m == nil {
		return rational.Rational{}, denseErrorf(ctxAt, row, col, ErrNilMatrix)
	}
	if err := ValidateIndex(m, row); err != nil {
		return rational.Rational{}, denseErrorf(ctxAt, row, col, err)
	}
	if err := ValidateIndex(m, col); err != nil {
		return rational.Rational{}, denseErrorf(ctxAt, row, col, err)
	}

	return m.get(row, col), nil
}

// Row returns a copy of row i.
// Complexity: O(n).
func (m *Matrix) Row(i int) ([]rational.Rational, error) {
	if m == nil {
		return nil, denseErrorf(ctxRow, i, 0, ErrNilMatrix)
	}
	if err := ValidateIndex(m, i); err != nil {
		return nil, denseErrorf(ctxRow, i, 0, err)
	}
	out := make([]rational.Rational, m.n)
	copy(out, m.data[i*m.n:(i+1)*m.n])

	return out, nil
}

// Entries returns the matrix as a freshly allocated nested row-major grid.
// Mutating the result does not affect m.
// Complexity: O(n²).
func (m *Matrix) Entries() [][]rational.Rational {
	if m == nil {
		return nil
	}
	out := make([][]rational.Rational, m.n)
	for i := 0; i < m.n; i++ {
		out[i] = make([]rational.Rational, m.n)
		copy(out[i], m.data[i*m.n:(i+1)*m.n])
	}

	return out
}
