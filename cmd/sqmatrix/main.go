// SPDX-License-Identifier: MIT
package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"strings"

	"go.uber.org/zap"
	"gonum.org/v1/gonum/mat"

	"github.com/wojino/sqmatrix/internal/config"
	"github.com/wojino/sqmatrix/internal/loader"
	"github.com/wojino/sqmatrix/internal/logging"
	"github.com/wojino/sqmatrix/matrix"
)

// Supported operations.
const (
	opLU        = "lu"
	opPLU       = "plu"
	opLDLT      = "ldlt"
	opCholesky  = "cholesky"
	opInverse   = "inverse"
	opTranspose = "transpose"
)

// approxTol bounds |L·Lᵗ − A| entry-wise for the float64 Cholesky check.
const approxTol = 1e-9

var (
	errNoFile        = errors.New("sqmatrix: -file is required")
	errNoMatch       = errors.New("sqmatrix: no documents match")
	errUnknownOp     = errors.New("sqmatrix: unknown operation")
	errCheckFailed   = errors.New("sqmatrix: factor check failed")
	errUnknownFormat = errors.New("sqmatrix: unknown output format")
)

func main() {
	if err := run(os.Args[1:], os.Stdout, os.Stderr); err != nil {
		os.Exit(1)
	}
}

// options are the resolved settings for one invocation.
type options struct {
	file     string
	op       string
	method   matrix.Method
	pivoting matrix.Pivoting
	format   string
	approx   bool
}

// factor is one labelled result matrix.
type factor struct {
	label string
	m     *matrix.Matrix
}

// run is main without the process exit, so tests can drive it.
func run(args []string, stdout, stderr io.Writer) error {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintln(stderr, err)
		return err
	}

	opts, err := parseFlags(args, cfg, stderr)
	if err != nil {
		return err
	}

	logger, err := logging.New(logging.Config{Level: cfg.Level, Development: cfg.Development})
	if err != nil {
		fmt.Fprintln(stderr, err)
		return err
	}
	defer func() { _ = logger.Sync() }()
	log := logger.Op(opts.op)

	paths, err := loader.Glob(opts.file)
	if err != nil {
		log.Error("glob failed", zap.Error(err))
		return err
	}
	if len(paths) == 0 {
		err = fmt.Errorf("%q: %w", opts.file, errNoMatch)
		log.Error("no input", zap.Error(err))
		return err
	}

	var failed error
	for _, path := range paths {
		if len(paths) > 1 {
			fmt.Fprintf(stdout, "# %s\n", path)
		}
		if err := runOne(path, opts, stdout, log); err != nil {
			log.Error("operation failed", zap.String("file", path), zap.Error(err))
			failed = errors.Join(failed, err)
		}
	}

	return failed
}

// parseFlags resolves flags over the environment configuration.
func parseFlags(args []string, cfg *config.Config, stderr io.Writer) (options, error) {
	fs := flag.NewFlagSet("sqmatrix", flag.ContinueOnError)
	fs.SetOutput(stderr)
	file := fs.String("file", "", "matrix document (.yaml, .yml, .json, .toml, .csv, optionally .gz); ** globs allowed")
	op := fs.String("op", opLU, "operation: lu, plu, ldlt, cholesky, inverse, transpose")
	method := fs.String("method", cfg.Method, "LU method: doolittle, gauss")
	pivot := fs.String("pivot", cfg.Pivoting, "pivoting for plu/inverse: none, first, partial")
	format := fs.String("format", cfg.Format, "output: text, latex, yaml")
	latex := fs.Bool("latex", false, "shorthand for -format latex")
	approx := fs.Bool("approx", false, "cholesky: fall back to a float64 factor when the exact one is irrational")
	fs.Usage = func() {
		fmt.Fprintln(stderr, "usage: sqmatrix -file PATH -op OP [flags]")
		fs.PrintDefaults()
		_ = config.Usage(stderr)
	}

	if err := fs.Parse(args); err != nil {
		return options{}, err
	}
	if *file == "" {
		fs.Usage()
		return options{}, errNoFile
	}

	o := options{file: *file, op: strings.ToLower(*op), format: strings.ToLower(*format), approx: *approx}
	if *latex {
		o.format = config.FormatLaTeX
	}
	switch o.format {
	case config.FormatText, config.FormatLaTeX, config.FormatYAML:
	default:
		return options{}, fmt.Errorf("%q: %w", *format, errUnknownFormat)
	}
	var err error
	if o.method, err = matrix.ParseMethod(*method); err != nil {
		return options{}, err
	}
	if o.pivoting, err = matrix.ParsePivoting(*pivot); err != nil {
		return options{}, err
	}

	return o, nil
}

// runOne loads one document, runs the operation and prints the factors
// followed by the verification line.
func runOne(path string, o options, w io.Writer, log *logging.Logger) error {
	a, name, err := loader.LoadMatrix(path)
	if err != nil {
		return err
	}
	log.Debug("loaded", zap.String("file", path), zap.String("name", name), zap.Int("n", a.Size()))

	factors, ok, err := execute(a, o)
	var ie *matrix.IrrationalRadicandError
	if o.op == opCholesky && o.approx && errors.As(err, &ie) {
		log.Info("exact factor is irrational, using float64", zap.Int("pivot", ie.Index), zap.Stringer("radicand", ie.Radicand))
		return approxCholesky(a, w)
	}
	if err != nil {
		return err
	}

	if err = printFactors(w, factors, o.format); err != nil {
		return err
	}
	if !ok {
		return fmt.Errorf("%s %s: %w", name, o.op, errCheckFailed)
	}
	fmt.Fprintln(w, "check: ok")

	return nil
}

// execute runs the operation and verifies its defining identity exactly.
func execute(a *matrix.Matrix, o options) ([]factor, bool, error) {
	switch o.op {
	case opLU:
		l, u, err := matrix.LU(a, o.method)
		if err != nil {
			return nil, false, err
		}
		ok, err := matrix.VerifyLU(a, l, u)
		return []factor{{"L", l}, {"U", u}}, ok, err

	case opPLU:
		p, l, u, err := matrix.PLU(a, matrix.WithPivoting(o.pivoting))
		if err != nil {
			return nil, false, err
		}
		ok, err := matrix.VerifyPLU(a, p, l, u)
		return []factor{{"P", p}, {"L", l}, {"U", u}}, ok, err

	case opLDLT:
		l, d, err := matrix.LDLT(a)
		if err != nil {
			return nil, false, err
		}
		ok, err := matrix.VerifyLDLT(a, l, d)
		return []factor{{"L", l}, {"D", d}}, ok, err

	case opCholesky:
		l, err := matrix.Cholesky(a)
		if err != nil {
			return nil, false, err
		}
		ok, err := matrix.VerifyCholesky(a, l)
		return []factor{{"L", l}}, ok, err

	case opInverse:
		inv, err := matrix.Inverse(a, matrix.WithPivoting(o.pivoting))
		if err != nil {
			return nil, false, err
		}
		ok, err := matrix.VerifyInverse(a, inv)
		return []factor{{"inverse", inv}}, ok, err

	case opTranspose:
		t, err := matrix.Transpose(a)
		if err != nil {
			return nil, false, err
		}
		tt, err := matrix.Transpose(t)
		if err != nil {
			return nil, false, err
		}
		ok, err := matrix.Equal(tt, a)
		return []factor{{"transpose", t}}, ok, err

	default:
		return nil, false, fmt.Errorf("%q: %w", o.op, errUnknownOp)
	}
}

func printFactors(w io.Writer, factors []factor, format string) error {
	for i, f := range factors {
		switch format {
		case config.FormatLaTeX:
			fmt.Fprintf(w, "%s =\n%s\n", f.label, f.m.LaTeX())
		case config.FormatYAML:
			out, err := loader.Encode(loader.FromMatrix(f.label, f.m), loader.FormatYAML)
			if err != nil {
				return err
			}
			if i > 0 {
				fmt.Fprintln(w, "---")
			}
			_, _ = w.Write(out)
		default:
			fmt.Fprintf(w, "%s = %s\n", f.label, f.m)
		}
	}

	return nil
}

// approxCholesky prints gonum's float64 factor and checks L·Lᵗ ≈ A.
func approxCholesky(a *matrix.Matrix, w io.Writer) error {
	l, err := matrix.CholeskyApprox(a)
	if err != nil {
		return err
	}
	fmt.Fprintf(w, "L ≈ %v\n", mat.Formatted(l, mat.Prefix("    "), mat.Squeeze()))

	dense, err := matrix.ToDense(a)
	if err != nil {
		return err
	}
	var llt mat.Dense
	llt.Mul(l, l.T())
	if !mat.EqualApprox(&llt, dense, approxTol) {
		return errCheckFailed
	}
	fmt.Fprintln(w, "check: ok (approximate)")

	return nil
}
