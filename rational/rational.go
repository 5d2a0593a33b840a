// SPDX-License-Identifier: MIT

// Package rational - Rational value type & arithmetic.
//
// Purpose:
//   - Wrap *big.Rat behind a value type so that callers cannot alias or
//     mutate stored entries of a matrix by accident.
//   - Keep every operation pure: the result is always a newly allocated
//     big.Rat, operands are only read.
//
// Complexity quicksheet:
//   - Add/Sub/Mul/Div: O(M(b)) where b is the bit length of the operands
//     (big.Int multiplication + gcd normalization).
//   - Cmp/Sign/IsZero: O(b) worst case, O(1) for Sign/IsZero.
package rational

import (
	"fmt"
	"math"
	"math/big"
	"strings"
)

// Rational is an immutable exact fraction num/den with den > 0 and
// gcd(num, den) == 1. The zero value represents 0.
type Rational struct {
	v *big.Rat // nil means 0; never mutated after construction
}

// ratErrorf wraps a sentinel with the failing operation name.
func ratErrorf(op string, err error) error {
	return fmt.Errorf("%s: %w", op, err)
}

// ratOne is shared read-only.
var ratOne = big.NewRat(1, 1)

// wrap takes ownership of r.
func wrap(r *big.Rat) Rational { return Rational{v: r} }

// val returns the backing value for reading. The result MUST NOT be mutated.
func (x Rational) val() *big.Rat {
	if x.v == nil {
		return new(big.Rat)
	}

	return x.v
}

// Zero returns 0.
func Zero() Rational { return Rational{} }

// One returns 1.
func One() Rational { return FromInt(1) }

// FromInt returns the integer n as a Rational.
func FromInt(n int64) Rational { return wrap(new(big.Rat).SetInt64(n)) }

// New returns num/den reduced to lowest terms.
// Returns ErrZeroDenominator if den == 0.
func New(num, den int64) (Rational, error) {
	if den == 0 {
		return Rational{}, ratErrorf("New", ErrZeroDenominator)
	}

	return wrap(big.NewRat(num, den)), nil
}

// FromBig returns a Rational holding a copy of r; nil maps to 0.
func FromBig(r *big.Rat) Rational {
	if r == nil {
		return Rational{}
	}

	return wrap(new(big.Rat).Set(r))
}

// FromFloat64 converts f exactly (every finite float64 is a dyadic rational).
// Returns ErrNonFinite for NaN and ±Inf.
func FromFloat64(f float64) (Rational, error) {
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return Rational{}, ratErrorf("FromFloat64", ErrNonFinite)
	}

	return wrap(new(big.Rat).SetFloat64(f)), nil
}

// Parse reads an integer ("7"), a fraction ("-3/4") or a decimal ("0.25",
// "1e-3"). Decimals are read as the exact fraction they denote, so "0.1" is
// 1/10, not the nearest float64.
func Parse(s string) (Rational, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return Rational{}, ratErrorf("Parse", ErrSyntax)
	}
	r, ok := new(big.Rat).SetString(s)
	if !ok {
		return Rational{}, ratErrorf("Parse", fmt.Errorf("%q: %w", s, ErrSyntax))
	}

	return wrap(r), nil
}

// MustParse is like Parse but panics on error. Intended for literals in
// tests and examples.
func MustParse(s string) Rational {
	x, err := Parse(s)
	if err != nil {
		panic(err)
	}

	return x
}

// Add returns x + y.
func (x Rational) Add(y Rational) Rational { return wrap(new(big.Rat).Add(x.val(), y.val())) }

// Sub returns x − y.
func (x Rational) Sub(y Rational) Rational { return wrap(new(big.Rat).Sub(x.val(), y.val())) }

// Mul returns x × y.
func (x Rational) Mul(y Rational) Rational { return wrap(new(big.Rat).Mul(x.val(), y.val())) }

// MulInt returns x × k.
func (x Rational) MulInt(k int64) Rational { return x.Mul(FromInt(k)) }

// Neg returns −x.
func (x Rational) Neg() Rational { return wrap(new(big.Rat).Neg(x.val())) }

// Abs returns |x|.
func (x Rational) Abs() Rational { return wrap(new(big.Rat).Abs(x.val())) }

// Inv returns 1/x, or ErrDivisionByZero when x == 0.
func (x Rational) Inv() (Rational, error) {
	if x.IsZero() {
		return Rational{}, ratErrorf("Inv", ErrDivisionByZero)
	}

	return wrap(new(big.Rat).Inv(x.val())), nil
}

// Div returns x / y, or ErrDivisionByZero when y == 0.
func (x Rational) Div(y Rational) (Rational, error) {
	if y.IsZero() {
		return Rational{}, ratErrorf("Div", ErrDivisionByZero)
	}

	return wrap(new(big.Rat).Quo(x.val(), y.val())), nil
}

// Cmp compares x and y and returns -1, 0 or +1.
func (x Rational) Cmp(y Rational) int { return x.val().Cmp(y.val()) }

// CmpAbs compares |x| and |y|.
func (x Rational) CmpAbs(y Rational) int {
	return new(big.Rat).Abs(x.val()).Cmp(new(big.Rat).Abs(y.val()))
}

// Equal reports whether x == y exactly.
func (x Rational) Equal(y Rational) bool { return x.Cmp(y) == 0 }

// Sign returns -1, 0 or +1.
func (x Rational) Sign() int {
	if x.v == nil {
		return 0
	}

	return x.v.Sign()
}

// IsZero reports x == 0.
func (x Rational) IsZero() bool { return x.Sign() == 0 }

// IsOne reports x == 1.
func (x Rational) IsOne() bool { return x.val().Cmp(ratOne) == 0 }

// IsInt reports whether the denominator is 1.
func (x Rational) IsInt() bool { return x.val().IsInt() }

// Num returns a copy of the numerator (sign carried here).
func (x Rational) Num() *big.Int { return new(big.Int).Set(x.val().Num()) }

// Denom returns a copy of the (positive) denominator.
func (x Rational) Denom() *big.Int { return new(big.Int).Set(x.val().Denom()) }

// Rat returns a copy of the value as *big.Rat.
func (x Rational) Rat() *big.Rat { return new(big.Rat).Set(x.val()) }

// Float64 returns the nearest float64 and whether it is exact.
func (x Rational) Float64() (float64, bool) { return x.val().Float64() }
