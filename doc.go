// Package sqmatrix is an exact-arithmetic toolkit for small dense square
// matrices: every entry is a rational number, so factorizations are checked
// with equality instead of tolerances.
//
// 🚀 What is sqmatrix?
//
//	A library and a command built around two packages:
//		• rational: immutable arbitrary-precision fractions (exact √ when it exists)
//		• matrix:   n×n matrices of rationals with value semantics
//
// ✨ What can it do?
//
//   - Algebra: add, subtract, multiply, scale, integer powers, transpose
//   - Elementary row operations expressed as elementary-matrix products
//   - Gauss-Jordan inverse with optional pivoting
//   - LU (Doolittle or Gauss), PLU with partial pivoting, LDLᵗ, Cholesky
//   - Typed failures naming the zero pivot or the irrational radicand
//   - Text and LaTeX output, gonum interop for an approximate Cholesky
//
// Under the hood:
//
//	rational/            exact scalars on math/big
//	matrix/              the matrix kernel
//	internal/loader      YAML / JSON / TOML / CSV matrix documents
//	internal/config      SQMATRIX_* environment settings
//	internal/logging     zap logger for the command
//	cmd/sqmatrix         factor documents from the command line
//	examples/            exact vs float64 inversion of Hilbert matrices
//
// Quick start:
//
//	a, _ := matrix.FromInts([][]int64{{8, 2, 9}, {4, 9, 4}, {6, 7, 9}})
//	l, u, _ := matrix.LU(a, matrix.Doolittle)
//	fmt.Println(l) // [[1, 0, 0], [1/2, 1, 0], [3/4, 11/16, 1]]
//	fmt.Println(u) // [[8, 2, 9], [0, 8, -1/2], [0, 0, 83/32]]
package sqmatrix
