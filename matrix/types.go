// SPDX-License-Identifier: MIT

// Package matrix: domain types shared by the dense storage and the kernels.
// Errors and options live in dedicated files (errors.go, options.go).
package matrix

import "strconv"

// Shape is the (rows, cols) pair of a matrix.
// The zero Shape means "no operand" in ShapeError and Event payloads.
type Shape struct {
	Rows int
	Cols int
}

// ShapeOf returns the shape of m, or the zero Shape for a nil m.
func ShapeOf(m Matrix) Shape {
	if m == nil {
		return Shape{}
	}

	return Shape{Rows: m.Rows(), Cols: m.Cols()}
}

// IsSquare reports Rows == Cols.
func (s Shape) IsSquare() bool { return s.Rows == s.Cols }

// String renders the shape as "RxC".
func (s Shape) String() string {
	return strconv.Itoa(s.Rows) + "x" + strconv.Itoa(s.Cols)
}

// Matrix represents a two-dimensional mutable array of float64 values.
//
// Complexity notes: all methods are expected O(1) except Clone (O(r*c)).
type Matrix interface {
	// Rows returns the number of rows in the matrix.
	Rows() int

	// Cols returns the number of columns in the matrix.
	Cols() int

	// At retrieves the element at position (i, j).
	// Returns ErrOutOfRange if i<0, i>=Rows(), j<0 or j>=Cols().
	At(i, j int) (float64, error)

	// Set assigns the value v at position (i, j).
	// Returns ErrOutOfRange if indices are invalid.
	Set(i, j int, v float64) error

	// Clone returns a deep copy of the matrix.
	// The returned Matrix is independent of the original.
	Clone() Matrix
}
