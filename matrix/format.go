// SPDX-License-Identifier: MIT

package matrix

import "strings"

// ---------- Formatting literals ----------
const (
	_fmtOpen     = "["
	_fmtClose    = "]"
	_fmtSep      = ", "
	_texBegin    = "\\begin{bmatrix}\n"
	_texEnd      = "\\end{bmatrix}"
	_texCellSep  = " & "
	_texRowBreak = " \\\\\n"
)

// String renders the matrix as nested rows: [[1, 0], [1/2, 1]].
// Complexity: O(n²).
func (m *Matrix) String() string {
	if m == nil {
		return "<nil>"
	}
	var sb strings.Builder
	sb.WriteString(_fmtOpen)
	for i := 0; i < m.n; i++ {
		if i > 0 {
			sb.WriteString(_fmtSep)
		}
		sb.WriteString(_fmtOpen)
		for j := 0; j < m.n; j++ {
			if j > 0 {
				sb.WriteString(_fmtSep)
			}
			sb.WriteString(m.get(i, j).String())
		}
		sb.WriteString(_fmtClose)
	}
	sb.WriteString(_fmtClose)

	return sb.String()
}

// LaTeX renders a bmatrix environment, one row per line, cells separated by
// " & " and rows terminated by " \\" (except the last):
//
//	\begin{bmatrix}
//	1 & 0 \\
//	\frac{1}{2} & 1
//	\end{bmatrix}
func (m *Matrix) LaTeX() string {
	if m == nil {
		return ""
	}
	var sb strings.Builder
	sb.WriteString(_texBegin)
	for i := 0; i < m.n; i++ {
		for j := 0; j < m.n; j++ {
			if j > 0 {
				sb.WriteString(_texCellSep)
			}
			sb.WriteString(m.get(i, j).LaTeX())
		}
		if i < m.n-1 {
			sb.WriteString(_texRowBreak)
		} else {
			sb.WriteString("\n")
		}
	}
	sb.WriteString(_texEnd)

	return sb.String()
}
