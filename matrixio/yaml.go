// SPDX-License-Identifier: MIT

package matrixio

import (
	"errors"
	"fmt"
	"io"

	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/matops/matrix"
)

// yamlMatrix is the YAML document shape:
//
//	rows:
//	  - [1, 2]
//	  - [3, 4]
type yamlMatrix struct {
	Rows [][]float64 `yaml:"rows"`
}

// DecodeYAML reads one YAML matrix document from r.
// Errors are *LoadError values wrapping ErrEmptyInput, ErrMalformedYAML or
// the matrix ingestion sentinels (ErrRaggedRows, ErrNaNInf).
func DecodeYAML(r io.Reader) (*matrix.Dense, error) {
	var doc yamlMatrix
	if err := yaml.NewDecoder(r).Decode(&doc); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, &LoadError{Err: ErrEmptyInput}
		}
		return nil, &LoadError{Err: fmt.Errorf("%w: %v", ErrMalformedYAML, err)}
	}
	if len(doc.Rows) == 0 {
		return nil, &LoadError{Err: ErrEmptyInput}
	}

	m, err := matrix.NewDenseFromRows(doc.Rows)
	if err != nil {
		return nil, &LoadError{Err: err}
	}

	return m, nil
}

// EncodeYAML writes m as a YAML matrix document readable by DecodeYAML.
func EncodeYAML(w io.Writer, m matrix.Matrix) error {
	rows, err := Rows(m)
	if err != nil {
		return err
	}
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err = enc.Encode(yamlMatrix{Rows: rows}); err != nil {
		return fmt.Errorf("encode yaml: %w", err)
	}

	return enc.Close()
}
