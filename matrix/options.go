// SPDX-License-Identifier: MIT

// Package matrix: functional configuration for elimination kernels.
// This file defines:
//   - Option / Options (functional options with internal state),
//   - documented defaults (constants),
//   - WithX constructors with strong validation (panic on nonsensical values),
//   - gatherOptions helper (internal).
//
// Design goals:
//   - Deterministic behavior: no global state.
//   - No dead switches: each flag impacts behavior and is covered by tests.
//   - Safe by construction: panic only on invalid parameters (programmer error).
//
// Notes:
//   - Inverse and PLU have different defaults. Inverse follows plain
//     Gauss-Jordan (no row exchanges) so that a zero pivot is reported to the
//     caller; PLU exists to avoid zero pivots and therefore pivots at every
//     step unless told otherwise.
package matrix

// ---------- Defaults (single source of truth) ----------

const (
	// DefaultInversePivoting is the row-exchange strategy of Inverse.
	DefaultInversePivoting = PivotNone

	// DefaultPLUPivoting is the row-exchange strategy of PLU.
	DefaultPLUPivoting = PivotPartial
)

const panicPivotingInvalid = "matrix: WithPivoting: unknown pivoting strategy"

// Option mutates internal options. Safe to apply repeatedly (idempotent).
type Option func(*Options)

// Options stores the effective configuration after applying Option setters.
// Fields are unexported; public entry points accept `...Option`.
type Options struct {
	pivoting Pivoting
}

// WithPivoting selects the row-exchange strategy.
//
// Behavior highlights:
//   - Inverse: rows are exchanged in the working copy and the accumulator
//     alike, so the result is still A⁻¹ (not (PA)⁻¹).
//   - PLU: PivotPartial re-pivots at every step, PivotFirstNonZero runs the
//     single diagonal pre-pass before Doolittle, PivotNone returns P = I.
//
// Errors:
//   - Panics with a stable message when p is not a declared strategy.
func WithPivoting(p Pivoting) Option {
	if !p.valid() {
		panic(panicPivotingInvalid)
	}

	return func(o *Options) { o.pivoting = p }
}

// gatherOptions applies user setters over a kernel-specific baseline.
// nil setters are ignored.
func gatherOptions(base Options, user ...Option) Options {
	o := base
	for _, set := range user {
		if set != nil {
			set(&o)
		}
	}

	return o
}
