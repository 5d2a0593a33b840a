// Package rational provides an immutable exact rational number used as the
// scalar type of the sqmatrix kernel.
//
// 🚀 What is Rational?
//
//	A numerator/denominator pair backed by math/big.Rat, always reduced to
//	lowest terms, with value semantics: every operation returns a fresh
//	Rational and never mutates its operands. The zero value is 0 and is
//	ready to use.
//
// ✨ Key features:
//   - exact +, −, ×, ÷ with no rounding and no overflow
//   - explicit errors for division by zero (no panics on user input)
//   - exact square roots for perfect squares, typed failures otherwise
//   - text and LaTeX rendering ("-3/4", "-\frac{3}{4}")
//
// ⚙️ Usage:
//
//	a := rational.FromInt(3)
//	b := rational.MustParse("1/4")
//	c, err := a.Div(b) // 12
//
// Rationals are safe to share between goroutines: no method writes to the
// receiver.
package rational
