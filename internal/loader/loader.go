// SPDX-License-Identifier: MIT

// Package loader reads and writes matrix documents.
//
// A document names an optional matrix and lists its rows:
//
//	name: A
//	rows:
//	  - [4, 12, "-16"]
//	  - [12, 37, -43]
//	  - ["-16", -43, 98.5]
//
// Entries are integers, decimals or "p/q" strings. Decimals are read as the
// exact fraction they spell (0.1 is 1/10), never through the nearest
// float64. The codec is picked from the file extension; a trailing ".gz"
// is decompressed first.
package loader

import (
	"bytes"
	"encoding/csv"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/bmatcuk/doublestar/v4"
	"github.com/bytedance/sonic"
	"github.com/goccy/go-yaml"
	"github.com/klauspost/compress/gzip"
	"github.com/pelletier/go-toml/v2"

	"github.com/wojino/sqmatrix/matrix"
	"github.com/wojino/sqmatrix/rational"
)

// Format names a document codec.
type Format string

// Supported formats.
const (
	FormatYAML Format = "yaml"
	FormatJSON Format = "json"
	FormatTOML Format = "toml"
	FormatCSV  Format = "csv"
)

const gzipExt = ".gz"

var (
	// ErrUnsupportedFormat signals an unknown extension or Format value.
	ErrUnsupportedFormat = errors.New("loader: unsupported document format")

	// ErrInvalidEntry signals a cell that is not an integer, decimal or
	// "p/q" string.
	ErrInvalidEntry = errors.New("loader: invalid matrix entry")
)

// jsonAPI keeps JSON numbers as literals so they can be parsed exactly.
var jsonAPI = sonic.Config{UseNumber: true}.Froze()

// Document is the decoded form of a matrix file.
type Document struct {
	Name string  `yaml:"name,omitempty" toml:"name,omitempty" json:"name,omitempty"`
	Rows [][]any `yaml:"rows" toml:"rows" json:"rows"`
}

// FormatFromPath maps a file name to its codec by extension, ignoring a
// trailing ".gz".
func FormatFromPath(path string) (Format, error) {
	ext := strings.ToLower(filepath.Ext(strings.TrimSuffix(strings.ToLower(path), gzipExt)))
	switch ext {
	case ".yaml", ".yml":
		return FormatYAML, nil
	case ".json":
		return FormatJSON, nil
	case ".toml":
		return FormatTOML, nil
	case ".csv":
		return FormatCSV, nil
	default:
		return "", fmt.Errorf("%q: %w", path, ErrUnsupportedFormat)
	}
}

// Load reads and decodes one document.
func Load(path string) (*Document, error) {
	format, err := FormatFromPath(path)
	if err != nil {
		return nil, err
	}
	data, err := readFile(path)
	if err != nil {
		return nil, err
	}
	doc, err := Decode(data, format)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	if doc.Name == "" {
		doc.Name = baseName(path)
	}

	return doc, nil
}

// LoadMatrix is Load followed by Document.Matrix.
func LoadMatrix(path string) (*matrix.Matrix, string, error) {
	doc, err := Load(path)
	if err != nil {
		return nil, "", err
	}
	m, err := doc.Matrix()
	if err != nil {
		return nil, "", fmt.Errorf("%s: %w", path, err)
	}

	return m, doc.Name, nil
}

// Glob expands a pattern that may use ** into matching file paths, sorted.
// A pattern without meta characters is returned as is, so a missing file is
// reported by Load rather than silently skipped.
func Glob(pattern string) ([]string, error) {
	if !strings.ContainsAny(pattern, "*?[{") {
		return []string{pattern}, nil
	}
	matches, err := doublestar.FilepathGlob(pattern)
	if err != nil {
		return nil, fmt.Errorf("loader: glob %q: %w", pattern, err)
	}

	return matches, nil
}

// Decode parses data in the given format.
func Decode(data []byte, format Format) (*Document, error) {
	var doc Document
	var err error
	switch format {
	case FormatYAML:
		err = yaml.Unmarshal(data, &doc)
	case FormatJSON:
		err = jsonAPI.Unmarshal(data, &doc)
	case FormatTOML:
		err = toml.Unmarshal(data, &doc)
	case FormatCSV:
		doc.Rows, err = decodeCSV(data)
	default:
		return nil, fmt.Errorf("%q: %w", format, ErrUnsupportedFormat)
	}
	if err != nil {
		return nil, fmt.Errorf("loader: decode %s: %w", format, err)
	}

	return &doc, nil
}

// Matrix converts the rows into an exact matrix.
func (d *Document) Matrix() (*matrix.Matrix, error) {
	grid := make([][]rational.Rational, len(d.Rows))
	for i, row := range d.Rows {
		grid[i] = make([]rational.Rational, len(row))
		for j, cell := range row {
			v, err := Entry(cell)
			if err != nil {
				return nil, fmt.Errorf("row %d col %d: %w", i, j, err)
			}
			grid[i][j] = v
		}
	}

	return matrix.FromGrid(grid)
}

// Entry converts one decoded cell. Every codec hands numbers over as one of
// the integer types, float64, json.Number or string.
func Entry(cell any) (rational.Rational, error) {
	var (
		v   rational.Rational
		err error
	)
	switch x := cell.(type) {
	case int:
		return rational.FromInt(int64(x)), nil
	case int64:
		return rational.FromInt(x), nil
	case uint64:
		v, err = rational.Parse(strconv.FormatUint(x, 10))
	case float64:
		// shortest round-trip form: 0.1 decodes to the float nearest 1/10
		// and formats back as "0.1"
		v, err = rational.Parse(strconv.FormatFloat(x, 'g', -1, 64))
	case json.Number:
		v, err = rational.Parse(x.String())
	case string:
		v, err = rational.Parse(x)
	default:
		return rational.Rational{}, fmt.Errorf("%v (%T): %w", cell, cell, ErrInvalidEntry)
	}
	if err != nil {
		return rational.Rational{}, fmt.Errorf("%v: %w", cell, errors.Join(ErrInvalidEntry, err))
	}

	return v, nil
}

// FromMatrix builds a document whose cells are the canonical "p/q" strings.
func FromMatrix(name string, m *matrix.Matrix) *Document {
	entries := m.Entries()
	rows := make([][]any, len(entries))
	for i, row := range entries {
		rows[i] = make([]any, len(row))
		for j, v := range row {
			rows[i][j] = v.String()
		}
	}

	return &Document{Name: name, Rows: rows}
}

// Encode renders doc in the given format.
func Encode(doc *Document, format Format) ([]byte, error) {
	var (
		out []byte
		err error
	)
	switch format {
	case FormatYAML:
		out, err = yaml.Marshal(doc)
	case FormatJSON:
		out, err = sonic.ConfigStd.MarshalIndent(doc, "", "  ")
	case FormatTOML:
		out, err = toml.Marshal(doc)
	case FormatCSV:
		out, err = encodeCSV(doc.Rows)
	default:
		return nil, fmt.Errorf("%q: %w", format, ErrUnsupportedFormat)
	}
	if err != nil {
		return nil, fmt.Errorf("loader: encode %s: %w", format, err)
	}

	return out, nil
}

// readFile returns the file content, gunzipped when the name ends in .gz.
func readFile(path string) ([]byte, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("loader: %w", err)
	}
	defer f.Close()

	var r io.Reader = f
	if strings.HasSuffix(strings.ToLower(path), gzipExt) {
		zr, err := gzip.NewReader(f)
		if err != nil {
			return nil, fmt.Errorf("loader: %s: %w", path, err)
		}
		defer zr.Close()
		r = zr
	}
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("loader: %s: %w", path, err)
	}

	return data, nil
}

// baseName strips directories and every known extension: "dir/a.yaml.gz" → "a".
func baseName(path string) string {
	name := filepath.Base(path)
	if strings.HasSuffix(strings.ToLower(name), gzipExt) {
		name = name[:len(name)-len(gzipExt)]
	}
	return strings.TrimSuffix(name, filepath.Ext(name))
}

// decodeCSV reads one row per record; blank lines and lines starting with
// '#' are skipped.
func decodeCSV(data []byte) ([][]any, error) {
	r := csv.NewReader(bytes.NewReader(data))
	r.Comment = '#'
	r.TrimLeadingSpace = true
	r.FieldsPerRecord = -1 // ragged rows are reported by matrix.FromGrid

	records, err := r.ReadAll()
	if err != nil {
		return nil, err
	}
	rows := make([][]any, len(records))
	for i, rec := range records {
		rows[i] = make([]any, len(rec))
		for j, cell := range rec {
			rows[i][j] = cell
		}
	}

	return rows, nil
}

func encodeCSV(rows [][]any) ([]byte, error) {
	var buf bytes.Buffer
	w := csv.NewWriter(&buf)
	for _, row := range rows {
		rec := make([]string, len(row))
		for j, cell := range row {
			rec[j] = fmt.Sprint(cell)
		}
		if err := w.Write(rec); err != nil {
			return nil, err
		}
	}
	w.Flush()

	return buf.Bytes(), w.Error()
}
