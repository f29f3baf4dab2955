// SPDX-License-Identifier: MIT

package matrixio

import (
	"errors"
	"fmt"
)

var (
	// ErrEmptyInput is returned when a source holds no matrix rows.
	ErrEmptyInput = errors.New("matrixio: empty input")

	// ErrMalformedNumber is returned when a token is not a decimal number.
	ErrMalformedNumber = errors.New("matrixio: malformed number")

	// ErrMalformedYAML is returned when a YAML source cannot be decoded.
	ErrMalformedYAML = errors.New("matrixio: malformed yaml")
)

// LoadError marks every failure to produce a matrix from a source, so callers
// can tell "could not load" apart from algebra failures.
// Line is 1-based; 0 means the failure is not tied to a line.
type LoadError struct {
	Path string
	Line int
	Err  error
}

func (e *LoadError) Error() string {
	src := e.Path
	if src == "" {
		src = "<input>"
	}
	if e.Line > 0 {
		return fmt.Sprintf("matrixio: load %s:%d: %v", src, e.Line, e.Err)
	}

	return fmt.Sprintf("matrixio: load %s: %v", src, e.Err)
}

func (e *LoadError) Unwrap() error { return e.Err }

// IsLoadError reports whether err came from loading a matrix.
func IsLoadError(err error) bool {
	var le *LoadError
	return errors.As(err, &le)
}

// withPath stamps path onto a LoadError, or wraps a foreign error in one.
func withPath(path string, err error) error {
	var le *LoadError
	if errors.As(err, &le) {
		le.Path = path
		return le
	}

	return &LoadError{Path: path, Err: err}
}
