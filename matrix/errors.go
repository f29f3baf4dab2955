// SPDX-License-Identifier: MIT
// Package matrix: sentinel error set and the shape-carrying error type.
// All kernels return these sentinels (optionally wrapped) and tests check
// them via errors.Is. No kernel panics on user-triggered error conditions.

package matrix

import (
	"errors"
	"fmt"
)

// NOTE ON NAMING & PREFIXING
// --------------------------
// Every message is prefixed with "matrix: ..." for easy grepping across logs.
// Kernels wrap with an operation tag at the boundary ("Add: ..."), callers
// still match with errors.Is.

var (
	// ErrInvalidDimensions indicates that requested matrix dimensions are non-positive.
	ErrInvalidDimensions = errors.New("matrix: dimensions must be > 0")

	// ErrRaggedRows is returned when row slices passed to NewDenseFromRows
	// differ in length.
	ErrRaggedRows = errors.New("matrix: rows have different lengths")

	// ErrOutOfRange indicates that an index (row or column) is outside valid bounds.
	// Public indexers (At/Set) MUST return this, not panic.
	ErrOutOfRange = errors.New("matrix: index out of range")

	// ErrDimensionMismatch indicates incompatible dimensions between operands,
	// e.g., Add/Sub different shapes, or Mul where a.Cols != b.Rows.
	ErrDimensionMismatch = errors.New("matrix: dimension mismatch")

	// ErrNotSquare signals that a square matrix was required but the input wasn't.
	ErrNotSquare = errors.New("matrix: matrix is not square")

	// ErrNilMatrix indicates that a nil Matrix (receiver or argument) was used.
	ErrNilMatrix = errors.New("matrix: nil matrix")

	// ErrNaNInf signals a NaN or ±Inf value was encountered where finite values
	// are required by the numeric policy (ingestion, Set, tolerances).
	ErrNaNInf = errors.New("matrix: NaN or Inf encountered")

	// ErrOrderTooLarge is returned by a Calculator configured with WithMaxOrder
	// when a determinant is requested for a larger matrix.
	ErrOrderTooLarge = errors.New("matrix: determinant order exceeds limit")
)

// ShapeError reports a shape precondition violation together with the
// conflicting shapes. Err is ErrDimensionMismatch or ErrNotSquare.
//
// For single-operand checks (square) Right is the zero Shape.
type ShapeError struct {
	Op    string // validator or kernel tag
	Left  Shape
	Right Shape
	Err   error
}

// Error formats as "<op>: <sentinel> (<left> vs <right>)".
func (e *ShapeError) Error() string {
	if e.Right == (Shape{}) {
		return fmt.Sprintf("%s: %v (%s)", e.Op, e.Err, e.Left)
	}

	return fmt.Sprintf("%s: %v (%s vs %s)", e.Op, e.Err, e.Left, e.Right)
}

// Unwrap exposes the sentinel for errors.Is.
func (e *ShapeError) Unwrap() error { return e.Err }
