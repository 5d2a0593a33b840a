// SPDX-License-Identifier: MIT
package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/wojino/sqmatrix/matrix"
)

// writeDoc stores a document under a temp dir and returns its path.
func writeDoc(t *testing.T, name, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(body), 0o644))

	return path
}

func runCLI(t *testing.T, args ...string) (string, error) {
	t.Helper()
	t.Setenv("SQMATRIX_LOG_LEVEL", "off")
	var stdout, stderr bytes.Buffer
	err := run(args, &stdout, &stderr)

	return stdout.String(), err
}

const spdYAML = `name: spd
rows:
  - [4, 12, -16]
  - [12, 37, -43]
  - [-16, -43, 98]
`

func TestRun_Operations(t *testing.T) {
	path := writeDoc(t, "spd.yaml", spdYAML)

	tests := []struct {
		args []string
		want []string
	}{
		{[]string{"-op", "lu"}, []string{"L = [[1, 0, 0], [3, 1, 0], [-4, 5, 1]]", "U = [[4, 12, -16], [0, 1, 5], [0, 0, 9]]"}},
		{[]string{"-op", "lu", "-method", "gauss"}, []string{"U = [[4, 12, -16], [0, 1, 5], [0, 0, 9]]"}},
		{[]string{"-op", "plu"}, []string{"P = ", "L = ", "U = "}},
		{[]string{"-op", "ldlt"}, []string{"D = [[4, 0, 0], [0, 1, 0], [0, 0, 9]]"}},
		{[]string{"-op", "cholesky"}, []string{"L = [[2, 0, 0], [6, 1, 0], [-8, 5, 3]]"}},
		{[]string{"-op", "inverse"}, []string{"inverse = "}},
		{[]string{"-op", "transpose"}, []string{"transpose = [[4, 12, -16], [12, 37, -43], [-16, -43, 98]]"}},
		{[]string{"-op", "cholesky", "-latex"}, []string{"L =\n\\begin{bmatrix}\n2 & 0 & 0 \\\\"}},
		{[]string{"-op", "ldlt", "-format", "yaml"}, []string{"name: L", "name: D", "---"}},
	}

	for _, tc := range tests {
		out, err := runCLI(t, append([]string{"-file", path}, tc.args...)...)
		require.NoError(t, err, tc.args)
		for _, w := range tc.want {
			require.Contains(t, out, w, tc.args)
		}
		require.Contains(t, out, "check: ok", tc.args)
	}
}

func TestRun_CholeskyApprox(t *testing.T) {
	path := writeDoc(t, "irr.toml", "rows = [[2, 1], [1, 2]]\n")

	_, err := runCLI(t, "-file", path, "-op", "cholesky")
	require.ErrorIs(t, err, matrix.ErrIrrationalRadicand)

	out, err := runCLI(t, "-file", path, "-op", "cholesky", "-approx")
	require.NoError(t, err)
	require.Contains(t, out, "L ≈")
	require.Contains(t, out, "check: ok (approximate)")
}

func TestRun_PivotingFlag(t *testing.T) {
	path := writeDoc(t, "swap.json", `{"rows": [[0, 1], [1, 0]]}`)

	_, err := runCLI(t, "-file", path, "-op", "inverse", "-pivot", "none")
	require.ErrorIs(t, err, matrix.ErrSingular)

	out, err := runCLI(t, "-file", path, "-op", "inverse")
	require.NoError(t, err)
	require.Contains(t, out, "inverse = [[0, 1], [1, 0]]")

	t.Setenv("SQMATRIX_PIVOTING", "none")
	_, err = runCLI(t, "-file", path, "-op", "plu")
	require.ErrorIs(t, err, matrix.ErrSingular)
}

func TestRun_Glob(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "a.yaml"), []byte(spdYAML), 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "b.csv"), []byte("2,1\n1,1\n"), 0o644))

	out, err := runCLI(t, "-file", filepath.Join(dir, "*.{yaml,csv}"), "-op", "lu")
	require.NoError(t, err)
	require.Equal(t, 2, strings.Count(out, "check: ok"))
	require.Contains(t, out, "# ")

	_, err = runCLI(t, "-file", filepath.Join(dir, "*.toml"), "-op", "lu")
	require.ErrorIs(t, err, errNoMatch)
}

func TestRun_Errors(t *testing.T) {
	path := writeDoc(t, "spd.yaml", spdYAML)
	nonSym := writeDoc(t, "ns.yaml", "rows: [[1, 2], [3, 4]]\n")

	tests := []struct {
		name    string
		args    []string
		wantErr error
	}{
		{"no file", []string{"-op", "lu"}, errNoFile},
		{"unknown op", []string{"-file", path, "-op", "qr"}, errUnknownOp},
		{"unknown format", []string{"-file", path, "-format", "html"}, errUnknownFormat},
		{"unknown method", []string{"-file", path, "-method", "crout"}, matrix.ErrUnknownMethod},
		{"unknown pivot", []string{"-file", path, "-pivot", "rook"}, matrix.ErrUnknownPivoting},
		{"not symmetric", []string{"-file", nonSym, "-op", "ldlt"}, matrix.ErrNotSymmetric},
		{"missing file", []string{"-file", filepath.Join(t.TempDir(), "none.yaml")}, os.ErrNotExist},
	}
	for _, tc := range tests {
		_, err := runCLI(t, tc.args...)
		require.ErrorIs(t, err, tc.wantErr, tc.name)
	}
}
