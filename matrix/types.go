// SPDX-License-Identifier: MIT

// Package matrix: domain types shared by constructors, kernels and options.
// This file contains ONLY the value type and the enumerations used to pick
// algorithm variants. Errors and options live in dedicated files
// (errors.go, options.go).
package matrix

import (
	"fmt"
	"strings"

	"github.com/wojino/sqmatrix/rational"
)

// Matrix is an immutable n×n grid of exact rationals.
//   - n is the row/column count, fixed at construction (n ≥ 1).
//   - data holds n*n entries in row-major order (offset = i*n + j).
//
// There is no exported mutator: kernels build results on private copies and
// hand them out only when complete, so a *Matrix can be shared freely.
type Matrix struct {
	n    int                 // size (rows == cols)
	data []rational.Rational // flat row-major storage, len == n*n
}

// Method selects the LU algorithm.
type Method int

const (
	// Doolittle computes L and U directly from the defining sums (default).
	Doolittle Method = iota

	// Gauss runs forward elimination with elementary row operations and
	// recovers L as the inverse of the accumulated elimination matrix.
	Gauss
)

const (
	methodDoolittle = "doolittle"
	methodGauss     = "gauss"
)

// String returns the canonical lower-case method name.
func (m Method) String() string {
	switch m {
	case Doolittle:
		return methodDoolittle
	case Gauss:
		return methodGauss
	default:
		return fmt.Sprintf("Method(%d)", int(m))
	}
}

// ParseMethod maps "doolittle" / "gauss" (case-insensitive) to a Method.
// The empty string selects the default (Doolittle).
func ParseMethod(s string) (Method, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", methodDoolittle:
		return Doolittle, nil
	case methodGauss:
		return Gauss, nil
	default:
		return Doolittle, fmt.Errorf("%q: %w", s, ErrUnknownMethod)
	}
}

// Pivoting selects the row-exchange strategy of Inverse and PLU.
type Pivoting int

const (
	// PivotNone never exchanges rows; a zero pivot is a failure.
	PivotNone Pivoting = iota

	// PivotFirstNonZero exchanges only when the diagonal candidate is
	// exactly zero, taking the first non-zero entry at or below it.
	PivotFirstNonZero

	// PivotPartial takes the entry of largest magnitude at or below the
	// diagonal at every elimination step (first one on ties).
	PivotPartial
)

const (
	pivotNone         = "none"
	pivotFirstNonZero = "first"
	pivotPartial      = "partial"
)

// String returns the canonical lower-case strategy name.
func (p Pivoting) String() string {
	switch p {
	case PivotNone:
		return pivotNone
	case PivotFirstNonZero:
		return pivotFirstNonZero
	case PivotPartial:
		return pivotPartial
	default:
		return fmt.Sprintf("Pivoting(%d)", int(p))
	}
}

// valid reports whether p is one of the declared strategies.
func (p Pivoting) valid() bool { return p >= PivotNone && p <= PivotPartial }

// ParsePivoting maps "none" / "first" / "partial" (case-insensitive).
func ParsePivoting(s string) (Pivoting, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case pivotNone:
		return PivotNone, nil
	case pivotFirstNonZero:
		return PivotFirstNonZero, nil
	case pivotPartial:
		return PivotPartial, nil
	default:
		return PivotNone, fmt.Errorf("%q: %w", s, ErrUnknownPivoting)
	}
}
