// SPDX-License-Identifier: MIT
// Package matrix: Gauss-Jordan inversion.
//
// Inverse works on a private copy A' of the input and an accumulator X
// initialized to I, and mirrors every row operation onto both, so that the
// invariant X·A = A' holds after each step. When A' reaches I, X = A⁻¹.

package matrix

import "github.com/wojino/sqmatrix/rational"

// pivotRow picks the row to bring into position col for the given strategy.
// Only rows col..n-1 are candidates. It returns col when no exchange is
// wanted; the caller still has to check the resulting pivot for zero.
func pivotRow(a *Matrix, col int, strategy Pivoting) int {
	switch strategy {
	case PivotFirstNonZero:
		if !a.get(col, col).IsZero() {
			return col
		}
		for r := col + 1; r < a.n; r++ {
			if !a.get(r, col).IsZero() {
				return r
			}
		}
	case PivotPartial:
		best := col
		for r := col + 1; r < a.n; r++ {
			if a.get(r, col).CmpAbs(a.get(best, col)) > 0 { // strict: first max wins
				best = r
			}
		}
		return best
	}

	return col
}

// Inverse returns A⁻¹ by Gauss-Jordan elimination.
//
// Implementation:
//   - Stage 1 (forward): for i = 0..n-2 optionally exchange rows (see
//     WithPivoting), then clear A'[j][i] for j > i with
//     RowAddMultiple(j, i, −A'[j][i]/A'[i][i]).
//   - Stage 2 (normalize): scale row i by 1/A'[i][i].
//   - Stage 3 (backward): for i = n-1..1 clear A'[j][i] for j < i.
//   - Every operation is applied to A' and X alike.
//
// Behavior highlights:
//   - Default is no pivoting (DefaultInversePivoting): a zero pivot is
//     reported as *SingularMatrixError even if A is invertible after a row
//     exchange. Use WithPivoting(PivotPartial) to invert any non-singular A.
//
// Errors:
//   - ErrNilMatrix.
//   - *SingularMatrixError (errors.Is ErrSingular) naming the zero pivot.
//
// Complexity:
//   - Time O(n⁵) (O(n²) elementary products of O(n³) each), Space O(n²).
func Inverse(m *Matrix, opts ...Option) (*Matrix, error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, matrixErrorf(opInverse, err)
	}
	o := gatherOptions(Options{pivoting: DefaultInversePivoting}, opts...)

	n := m.n
	work := m.clone()
	acc := newIdentity(n)

	// apply mirrors one row operation onto the working copy and the accumulator.
	apply := func(op func(*Matrix) (*Matrix, error)) error {
		var err error
		if work, err = op(work); err != nil {
			return err
		}
		acc, err = op(acc)
		return err
	}

	var i, j int
	// Stage 1: forward elimination.
	for i = 0; i < n-1; i++ {
		if p := pivotRow(work, i, o.pivoting); p != i {
			if err := apply(func(x *Matrix) (*Matrix, error) { return RowSwitch(x, i, p) }); err != nil {
				return nil, matrixErrorf(opInverse, err)
			}
		}
		pivot := work.get(i, i)
		if pivot.IsZero() {
			return nil, matrixErrorf(opInverse, &SingularMatrixError{Op: opInverse, Pivot: i})
		}
		for j = i + 1; j < n; j++ {
			if err := eliminate(work, j, i, pivot, apply); err != nil {
				return nil, matrixErrorf(opInverse, err)
			}
		}
	}

	// Stage 2: normalization.
	for i = 0; i < n; i++ {
		pivot := work.get(i, i)
		if pivot.IsZero() {
			return nil, matrixErrorf(opInverse, &SingularMatrixError{Op: opInverse, Pivot: i})
		}
		inv, err := pivot.Inv()
		if err != nil {
			return nil, matrixErrorf(opInverse, err)
		}
		if err = apply(func(x *Matrix) (*Matrix, error) { return RowScale(x, i, inv) }); err != nil {
			return nil, matrixErrorf(opInverse, err)
		}
	}

	// Stage 3: back elimination (pivots are 1 now).
	for i = n - 1; i > 0; i-- {
		for j = 0; j < i; j++ {
			if err := eliminate(work, j, i, rational.One(), apply); err != nil {
				return nil, matrixErrorf(opInverse, err)
			}
		}
	}

	return acc, nil
}

// eliminate clears work[row][col] using pivot row col via
// RowAddMultiple(row, col, −work[row][col]/pivot), mirrored through apply.
// A zero entry needs no operation. pivot must be non-zero.
func eliminate(work *Matrix, row, col int, pivot rational.Rational, apply func(func(*Matrix) (*Matrix, error)) error) error {
	v := work.get(row, col)
	if v.IsZero() {
		return nil
	}
	q, err := v.Div(pivot)
	if err != nil {
		return err
	}
	factor := q.Neg()

	return apply(func(x *Matrix) (*Matrix, error) { return RowAddMultiple(x, row, col, factor) })
}
