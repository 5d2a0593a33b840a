// SPDX-License-Identifier: MIT
// Package: matrix
//
// Purpose:
//  - Provide a single, canonical source of truth for common validation checks.
//  - Keep kernels minimal by delegating nil/size/index/symmetry checks here.
//  - Return sentinel errors tagged with the validator name so call sites can
//    wrap uniformly with matrixErrorf.
//
// Determinism & Performance:
//  - All checks are pure, deterministic and allocate nothing.
//  - Symmetry check runs O(n²) on the strict upper triangle only, with exact
//    rational comparison (no tolerance).
//
// Note:
//  - Each composite validator follows a fixed sequence (NotNil → Size).

package matrix

import "fmt"

// validatorErrorf wraps an underlying error with the given validator tag.
func validatorErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}

// ValidateNotNil – Ensures the matrix reference is non-nil.
//
// Returns ErrNilMatrix if m == nil.
// Complexity: O(1).
func ValidateNotNil(m *Matrix) error {
	if m == nil {
		return validatorErrorf("ValidateNotNil", ErrNilMatrix)
	}

	return nil
}

// ValidateSameSize – Composite: NotNil(a) → NotNil(b) → a.n == b.n.
//
// Errors: ErrNilMatrix, ErrDimensionMismatch.
// Complexity: O(1).
func ValidateSameSize(a, b *Matrix) error {
	if err := ValidateNotNil(a); err != nil {
		return validatorErrorf("ValidateSameSize", err)
	}
	if err := ValidateNotNil(b); err != nil {
		return validatorErrorf("ValidateSameSize", err)
	}
	if a.n != b.n {
		return validatorErrorf("ValidateSameSize", fmt.Errorf("%d vs %d: %w", a.n, b.n, ErrDimensionMismatch))
	}

	return nil
}

// ValidateIndex ensures 0 ≤ i < m.Size(). Assumes m is not nil.
// Complexity: O(1).
func ValidateIndex(m *Matrix, i int) error {
	if i < 0 || i >= m.n {
		return validatorErrorf("ValidateIndex", fmt.Errorf("%d not in [0,%d): %w", i, m.n, ErrOutOfRange))
	}

	return nil
}

// ValidateSymmetric checks A[i,j] == A[j,i] exactly for all i<j.
//
// Errors: ErrNilMatrix, ErrNotSymmetric (naming the first offending cell).
// Complexity: O(n²).
// AI-Hints: Call before LDLT/Cholesky; both run it themselves.
func ValidateSymmetric(m *Matrix) error {
	if err := ValidateNotNil(m); err != nil {
		return validatorErrorf("ValidateSymmetric", err)
	}
	n := m.n
	for i := 0; i < n; i++ {
		for j := i + 1; j < n; j++ {
			if !m.get(i, j).Equal(m.get(j, i)) {
				return validatorErrorf("ValidateSymmetric", fmt.Errorf("(%d,%d): %w", i, j, ErrNotSymmetric))
			}
		}
	}

	return nil
}
