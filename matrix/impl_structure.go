// SPDX-License-Identifier: MIT
// Package matrix: structural predicates.
//
// Each predicate is exact (no tolerance) and returns false for a nil matrix.
// They describe the shapes the factorizations promise (unit lower
// triangular L, upper triangular U, diagonal D, permutation P) and are
// used by the CLI and tests to check results.

package matrix

// IsIdentity reports m == I.
func IsIdentity(m *Matrix) bool {
	return m != nil && m.all(func(i, j int) bool {
		if i == j {
			return m.get(i, j).IsOne()
		}
		return m.get(i, j).IsZero()
	})
}

// IsZero reports that every entry is 0.
func IsZero(m *Matrix) bool {
	return m != nil && m.all(func(i, j int) bool { return m.get(i, j).IsZero() })
}

// IsLowerTriangular reports m[i][j] == 0 for all j > i.
func IsLowerTriangular(m *Matrix) bool {
	return m != nil && m.all(func(i, j int) bool { return j <= i || m.get(i, j).IsZero() })
}

// IsUnitLowerTriangular is IsLowerTriangular with ones on the diagonal.
func IsUnitLowerTriangular(m *Matrix) bool {
	return IsLowerTriangular(m) && m.diagonalOnes()
}

// IsUpperTriangular reports m[i][j] == 0 for all j < i.
func IsUpperTriangular(m *Matrix) bool {
	return m != nil && m.all(func(i, j int) bool { return j >= i || m.get(i, j).IsZero() })
}

// IsDiagonal reports m[i][j] == 0 for all i != j.
func IsDiagonal(m *Matrix) bool {
	return m != nil && m.all(func(i, j int) bool { return i == j || m.get(i, j).IsZero() })
}

// IsSymmetric reports m == mᵀ.
func IsSymmetric(m *Matrix) bool {
	return m != nil && ValidateSymmetric(m) == nil
}

// IsPermutation reports that every entry is 0 or 1 and each row and column
// holds exactly one 1.
func IsPermutation(m *Matrix) bool {
	if m == nil {
		return false
	}
	n := m.n
	colSeen := make([]bool, n)
	for i := 0; i < n; i++ {
		ones := 0
		for j := 0; j < n; j++ {
			v := m.get(i, j)
			switch {
			case v.IsZero():
			case v.IsOne():
				if colSeen[j] {
					return false
				}
				colSeen[j] = true
				ones++
			default:
				return false
			}
		}
		if ones != 1 {
			return false
		}
	}

	return true
}

// all reports whether pred holds for every (i,j), scanning i→j.
func (m *Matrix) all(pred func(i, j int) bool) bool {
	for i := 0; i < m.n; i++ {
		for j := 0; j < m.n; j++ {
			if !pred(i, j) {
				return false
			}
		}
	}

	return true
}

func (m *Matrix) diagonalOnes() bool {
	for i := 0; i < m.n; i++ {
		if !m.get(i, i).IsOne() {
			return false
		}
	}

	return true
}
