// SPDX-License-Identifier: MIT

// Package matrixio reads matrices from text and YAML sources and renders
// results as labeled, tab-separated text.
//
// Text format: one row per line, cells separated by any whitespace. The row
// width is taken from the first non-blank line; blank lines are skipped.
package matrixio

import (
	"bufio"
	"bytes"
	"fmt"
	"io"
	"math"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/edsrzf/mmap-go"

	"github.com/katalvlaran/matops/matrix"
)

// maxLineBytes bounds a single row line; bufio's default 64 KiB is too small
// for wide matrices.
const maxLineBytes = 16 << 20

// Parse reads a text matrix from r.
//
// Errors are *LoadError values (Line set) wrapping ErrEmptyInput,
// ErrMalformedNumber, matrix.ErrRaggedRows or matrix.ErrNaNInf.
func Parse(r io.Reader) (*matrix.Dense, error) {
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 64*1024), maxLineBytes)

	var rows [][]float64
	line := 0
	for sc.Scan() {
		line++
		fields := strings.Fields(sc.Text())
		if len(fields) == 0 {
			continue
		}
		if len(rows) > 0 && len(fields) != len(rows[0]) {
			return nil, &LoadError{Line: line, Err: fmt.Errorf("%d values, want %d: %w",
				len(fields), len(rows[0]), matrix.ErrRaggedRows)}
		}

		row := make([]float64, len(fields))
		for j, tok := range fields {
			v, err := strconv.ParseFloat(tok, 64)
			if err != nil {
				return nil, &LoadError{Line: line, Err: fmt.Errorf("column %d %q: %w", j+1, tok, ErrMalformedNumber)}
			}
			if math.IsNaN(v) || math.IsInf(v, 0) {
				return nil, &LoadError{Line: line, Err: fmt.Errorf("column %d %q: %w", j+1, tok, matrix.ErrNaNInf)}
			}
			row[j] = v
		}
		rows = append(rows, row)
	}
	if err := sc.Err(); err != nil {
		return nil, &LoadError{Line: line, Err: err}
	}
	if len(rows) == 0 {
		return nil, &LoadError{Err: ErrEmptyInput}
	}

	m, err := matrix.NewDenseFromRows(rows)
	if err != nil {
		return nil, &LoadError{Err: err}
	}

	return m, nil
}

// Load reads a matrix from path. ".yaml" and ".yml" files are decoded with
// DecodeYAML; anything else is parsed as text through a read-only memory map.
func Load(path string) (*matrix.Dense, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return loadYAML(path)
	default:
		return loadText(path)
	}
}

func loadText(path string) (*matrix.Dense, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, withPath(path, err)
	}
	defer f.Close()

	info, err := f.Stat()
	if err != nil {
		return nil, withPath(path, err)
	}
	// Zero-length files cannot be mapped.
	if info.Size() == 0 {
		return nil, withPath(path, ErrEmptyInput)
	}

	data, err := mmap.Map(f, mmap.RDONLY, 0)
	if err != nil {
		return nil, withPath(path, fmt.Errorf("mmap: %w", err))
	}
	defer data.Unmap()

	m, err := Parse(bytes.NewReader(data))
	if err != nil {
		return nil, withPath(path, err)
	}

	return m, nil
}

func loadYAML(path string) (*matrix.Dense, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, withPath(path, err)
	}
	defer f.Close()

	m, err := DecodeYAML(f)
	if err != nil {
		return nil, withPath(path, err)
	}

	return m, nil
}
