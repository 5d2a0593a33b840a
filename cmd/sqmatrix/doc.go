// SPDX-License-Identifier: MIT

// Command sqmatrix factors exact rational matrices read from YAML, JSON,
// TOML or CSV documents and prints the factors with a verification line.
//
// Usage:
//
//	sqmatrix -file A.yaml -op lu [-method doolittle|gauss]
//	sqmatrix -file 'data/**/*.toml' -op plu -pivot partial -latex
//	sqmatrix -file spd.json -op cholesky -approx
//
// Operations: lu, plu, ldlt, cholesky, inverse, transpose.
//
// Environment (flags win):
//
//	SQMATRIX_LOG_LEVEL  debug|info|warn|error|off (default warn)
//	SQMATRIX_LOG_DEV    console instead of JSON logs (default false)
//	SQMATRIX_FORMAT     text|latex|yaml (default text)
//	SQMATRIX_PIVOTING   none|first|partial (default partial)
//	SQMATRIX_METHOD     doolittle|gauss (default doolittle)
//
// The exit status is 1 when any document fails to load, factor or verify.
package main
