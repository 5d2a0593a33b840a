// SPDX-License-Identifier: MIT
// Package matrix: sentinel error set and typed failures.
// All kernels MUST return these sentinels (possibly wrapped with an
// operation tag) and tests MUST check them via errors.Is / errors.As.
// No kernel panics on user-triggered error conditions; panics are reserved
// for programmer errors in option constructors.

package matrix

import (
	"errors"
	"fmt"

	"github.com/wojino/sqmatrix/rational"
)

// NOTE ON NAMING & PREFIXING
// --------------------------
// Every message is prefixed with "matrix: ..." for easy grepping. Kernels
// wrap with matrixErrorf(op, err) so the final text reads "LU: matrix: ...",
// and errors.Is still matches the sentinel.
//
// ERROR PRIORITY (documented, enforced in tests):
// nil -> shape/index -> dimension mismatch -> structural (symmetry)
// -> numeric (singular pivot, radicand).

var (
	// ErrInvalidDimensions indicates that a requested size is non-positive.
	ErrInvalidDimensions = errors.New("matrix: dimensions must be > 0")

	// ErrMalformedInput indicates construction data that does not describe
	// exactly n×n entries (short/long flat slice, ragged or empty grid).
	ErrMalformedInput = errors.New("matrix: malformed constructor input")

	// ErrOutOfRange indicates that a row or column index is outside [0, n).
	ErrOutOfRange = errors.New("matrix: index out of range")

	// ErrDimensionMismatch indicates operands of different size.
	ErrDimensionMismatch = errors.New("matrix: dimension mismatch")

	// ErrNonSquare signals a non-square external matrix (gonum interop).
	ErrNonSquare = errors.New("matrix: matrix is not square")

	// ErrNilMatrix indicates that a nil *Matrix was passed.
	ErrNilMatrix = errors.New("matrix: nil matrix")

	// ErrNotSymmetric signals that LDLT/Cholesky received a non-symmetric input.
	ErrNotSymmetric = errors.New("matrix: matrix is not symmetric")

	// ErrSingular is matched by every *SingularMatrixError.
	ErrSingular = errors.New("matrix: singular matrix")

	// ErrIrrationalRadicand is matched by every *IrrationalRadicandError.
	ErrIrrationalRadicand = errors.New("matrix: irrational square root")

	// ErrNotPositiveDefinite signals a negative Cholesky radicand.
	ErrNotPositiveDefinite = errors.New("matrix: matrix is not positive definite")

	// ErrNaNInf signals a NaN or ±Inf value during float64 ingestion.
	ErrNaNInf = errors.New("matrix: NaN or Inf encountered")

	// ErrBadExponent signals a negative Pow exponent.
	ErrBadExponent = errors.New("matrix: exponent must be >= 0")

	// ErrZeroFactor signals RowScale by zero (not an elementary operation).
	ErrZeroFactor = errors.New("matrix: row scale factor must be non-zero")

	// ErrUnknownMethod signals an unrecognized LU method.
	ErrUnknownMethod = errors.New("matrix: unknown LU method")

	// ErrUnknownPivoting signals an unrecognized pivoting strategy name.
	ErrUnknownPivoting = errors.New("matrix: unknown pivoting strategy")
)

// SingularMatrixError is returned when an elimination step would divide by
// an exactly-zero pivot.
type SingularMatrixError struct {
	Op     string // kernel: "Inverse", "LU", "PLU", "LDLT", "Cholesky"
	Method string // LU method name, empty for other kernels
	Pivot  int    // 0-based diagonal index of the zero pivot
}

func (e *SingularMatrixError) Error() string {
	if e.Method != "" {
		return fmt.Sprintf("matrix: singular matrix: zero pivot at %d (%s, %s)", e.Pivot, e.Op, e.Method)
	}

	return fmt.Sprintf("matrix: singular matrix: zero pivot at %d (%s)", e.Pivot, e.Op)
}

// Unwrap lets errors.Is(err, ErrSingular) match.
func (e *SingularMatrixError) Unwrap() error { return ErrSingular }

// IrrationalRadicandError is returned by Cholesky when a diagonal radicand
// is not the square of a rational, so an exact factor does not exist.
type IrrationalRadicandError struct {
	Index    int               // 0-based diagonal index
	Radicand rational.Rational // the value whose root is irrational
}

func (e *IrrationalRadicandError) Error() string {
	return fmt.Sprintf("matrix: irrational square root of %s at pivot %d", e.Radicand, e.Index)
}

// Unwrap lets errors.Is(err, ErrIrrationalRadicand) match.
func (e *IrrationalRadicandError) Unwrap() error { return ErrIrrationalRadicand }
