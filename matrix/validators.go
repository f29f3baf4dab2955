// SPDX-License-Identifier: MIT
// Package: matrix
//
// Purpose:
//  - Provide a single, canonical source of truth for operand validation.
//  - Keep kernels minimal by delegating nil/shape checks here.
//  - Shape violations come back as *ShapeError so the payload names both shapes.
//
// Note:
//  - Each composite validator follows a fixed sequence (NotNil → Shape).
//  - Validators are pure, deterministic and O(1).

package matrix

import "fmt"

// validatorErrorf wraps an underlying error with the given validator tag.
func validatorErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}

// ValidateNotNil ensures the matrix reference is non-nil.
//
// Returns ErrNilMatrix if m == nil. A typed nil *Dense stored in the interface
// is also rejected.
func ValidateNotNil(m Matrix) error {
	if m == nil {
		return validatorErrorf("ValidateNotNil", ErrNilMatrix)
	}
	if d, ok := m.(*Dense); ok && d == nil {
		return validatorErrorf("ValidateNotNil", ErrNilMatrix)
	}

	return nil
}

// ValidateSameShape ensures matrices a and b have equal dimensions.
//
// Assumes a and b are not nil (caller must ensure).
// Returns *ShapeError wrapping ErrDimensionMismatch.
func ValidateSameShape(a, b Matrix) error {
	sa, sb := ShapeOf(a), ShapeOf(b)
	if sa != sb {
		return &ShapeError{Op: "ValidateSameShape", Left: sa, Right: sb, Err: ErrDimensionMismatch}
	}

	return nil
}

// ValidateBinarySameShape is NotNil(a) → NotNil(b) → SameShape(a, b).
// Use for Add/Sub and tolerance comparisons.
func ValidateBinarySameShape(a, b Matrix) error {
	if err := ValidateNotNil(a); err != nil {
		return err
	}
	if err := ValidateNotNil(b); err != nil {
		return err
	}

	return ValidateSameShape(a, b)
}

// ValidateSquare checks that m is non-nil and square (Rows == Cols).
//
// Errors: ErrNilMatrix, *ShapeError wrapping ErrNotSquare.
func ValidateSquare(m Matrix) error {
	if err := ValidateNotNil(m); err != nil {
		return err
	}
	if s := ShapeOf(m); !s.IsSquare() {
		return &ShapeError{Op: "ValidateSquare", Left: s, Err: ErrNotSquare}
	}

	return nil
}

// ValidateMulCompatible ensures a.Cols == b.Rows, inputs non-nil.
//
// Errors: ErrNilMatrix, *ShapeError wrapping ErrDimensionMismatch.
func ValidateMulCompatible(a, b Matrix) error {
	if err := ValidateNotNil(a); err != nil {
		return validatorErrorf("ValidateMulCompatible", err)
	}
	if err := ValidateNotNil(b); err != nil {
		return validatorErrorf("ValidateMulCompatible", err)
	}
	if a.Cols() != b.Rows() {
		return &ShapeError{Op: "ValidateMulCompatible", Left: ShapeOf(a), Right: ShapeOf(b), Err: ErrDimensionMismatch}
	}

	return nil
}
