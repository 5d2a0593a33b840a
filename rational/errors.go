// SPDX-License-Identifier: MIT

package rational

import "errors"

var (
	// ErrZeroDenominator is returned by New when den == 0.
	ErrZeroDenominator = errors.New("rational: zero denominator")

	// ErrDivisionByZero is returned by Div and Inv when the divisor is 0.
	ErrDivisionByZero = errors.New("rational: division by zero")

	// ErrNonFinite is returned when a NaN or ±Inf float64 is converted.
	ErrNonFinite = errors.New("rational: NaN or Inf is not a rational")

	// ErrSyntax is returned by Parse on malformed input.
	ErrSyntax = errors.New("rational: invalid syntax")

	// ErrNegativeRadicand is returned by Sqrt for negative values.
	ErrNegativeRadicand = errors.New("rational: square root of negative value")

	// ErrIrrational is returned by Sqrt when the root is not rational.
	ErrIrrational = errors.New("rational: square root is irrational")
)
