// SPDX-License-Identifier: MIT

package rational

import "math/big"

// Sqrt returns the exact non-negative square root of x.
//
// Implementation:
//   - Stage 1: reject x < 0 (ErrNegativeRadicand).
//   - Stage 2: x = p/q is reduced, so √x is rational iff both p and q are
//     perfect squares; take integer roots and verify r*r == p, s*s == q.
//
// Errors:
//   - ErrNegativeRadicand for x < 0.
//   - ErrIrrational when p or q is not a perfect square. No approximation is
//     attempted; callers that accept rounding must convert to float64
//     explicitly.
//
// Complexity:
//   - Time O(M(b)·log b) for the two integer square roots.
func (x Rational) Sqrt() (Rational, error) {
	if x.Sign() < 0 {
		return Rational{}, ratErrorf("Sqrt", ErrNegativeRadicand)
	}
	if x.IsZero() {
		return Rational{}, nil
	}

	num, ok := exactIntSqrt(x.val().Num())
	if !ok {
		return Rational{}, ratErrorf("Sqrt", ErrIrrational)
	}
	den, ok := exactIntSqrt(x.val().Denom())
	if !ok {
		return Rational{}, ratErrorf("Sqrt", ErrIrrational)
	}

	return wrap(new(big.Rat).SetFrac(num, den)), nil
}

// IsPerfectSquare reports whether Sqrt would succeed.
func (x Rational) IsPerfectSquare() bool {
	_, err := x.Sqrt()
	return err == nil
}

// exactIntSqrt returns ⌊√n⌋ and whether it is exact. n must be ≥ 0.
func exactIntSqrt(n *big.Int) (*big.Int, bool) {
	r := new(big.Int).Sqrt(n)
	sq := new(big.Int).Mul(r, r)

	return r, sq.Cmp(n) == 0
}
