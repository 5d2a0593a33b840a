// Package matrix is an exact-arithmetic kernel for dense square matrices.
//
// 🚀 What is matrix?
//
//	A fixed-size n×n grid of rational.Rational values with value semantics:
//	every operator, row operation and factorization returns freshly
//	allocated matrices and never mutates its inputs. Because entries are
//	exact fractions, L*U == A is checked with exact equality, not a
//	tolerance.
//
// ✨ Key features:
//   - construction from identity, flat row-major slices or nested grids
//   - algebra: Add, Sub, Neg, Mul, Scale, ScaleInt, Pow, Equal, Transpose
//   - elementary row operations via elementary matrices (E × M)
//   - Gauss-Jordan Inverse with optional pivoting
//   - LU (Doolittle or Gauss elimination), PLU with partial pivoting,
//     LDLᵗ and Cholesky
//   - typed failures: *SingularMatrixError, ErrNotSymmetric,
//     *IrrationalRadicandError, ErrNotPositiveDefinite
//   - text / LaTeX (bmatrix) rendering and gonum interop for the explicitly
//     approximate CholeskyApprox path
//
// ⚙️ Usage:
//
//	a, _ := matrix.FromInts([][]int64{{4, 12, -16}, {12, 37, -43}, {-16, -43, 98}})
//	l, err := matrix.Cholesky(a) // [[2, 0, 0], [6, 1, 0], [-8, 5, 3]]
//
// Indices are 0-based everywhere in this package.
//
// Performance:
//
//   - Mul, LU with Doolittle, LDLT, Cholesky: O(n³) rational operations.
//   - Row operations are O(n³) each (full elementary-matrix product), so the
//     Gauss-elimination paths (LU with Gauss, Inverse, PLU) are O(n⁵).
//     The kernel targets small matrices where exactness matters more than
//     speed.
package matrix
