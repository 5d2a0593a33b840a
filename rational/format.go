// SPDX-License-Identifier: MIT

package rational

import (
	"fmt"
	"math/big"
)

// String renders integers without a denominator ("5", "-2") and fractions
// as "p/q" ("-3/4").
func (x Rational) String() string {
	if x.IsInt() {
		return x.val().Num().String()
	}

	return x.val().RatString()
}

// LaTeX renders integers plainly and fractions as \frac{p}{q} with the sign
// pulled in front: -\frac{3}{4}.
func (x Rational) LaTeX() string {
	if x.IsInt() {
		return x.val().Num().String()
	}
	sign := ""
	v := new(big.Rat).Set(x.val())
	if v.Sign() < 0 {
		sign = "-"
		v.Neg(v)
	}

	return fmt.Sprintf("%s\\frac{%s}{%s}", sign, v.Num().String(), v.Denom().String())
}

// MarshalText implements encoding.TextMarshaler using String.
func (x Rational) MarshalText() ([]byte, error) {
	return []byte(x.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler using Parse.
func (x *Rational) UnmarshalText(text []byte) error {
	v, err := Parse(string(text))
	if err != nil {
		return err
	}
	*x = v

	return nil
}
