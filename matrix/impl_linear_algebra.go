// SPDX-License-Identifier: MIT
// Package matrix provides the algebra kernels over any Matrix implementation:
// element-wise addition and subtraction, matrix multiplication, and the
// determinant by cofactor (Laplace) expansion with its minor extraction.
// All functions perform strict fail-fast validation and never mutate inputs.
//
// Purpose:
//   - Declare the canonical kernels used by facades (api.go) and Calculator.
//   - Define operation tags and shared constants for determinism and error reporting.
//
// Notes:
//   - Every kernel has a *Dense fast path over the flat buffer and an
//     interface fallback with the same loop order.
//   - Determinant is O(n!) on purpose: no LU, no pivoting.

package matrix

import "fmt"

// ZeroSum is the initial accumulator for dot products and expansions.
const ZeroSum = 0.0

// Operation name constants for unified error wrapping and reducing magic strings.
const (
	opAdd         = "Add"
	opSub         = "Sub"
	opMul         = "Mul"
	opDeterminant = "Determinant"
	opMinor       = "minor"
)

// matrixErrorf wraps err with an operation tag, preserving the original error via %w.
// Use only when err != nil to avoid creating a non-nil wrapper around a nil cause.
func matrixErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}

// addSub computes elementwise out = a + sign*b for sign ∈ {+1, -1}.
// Inputs must have identical shapes. A fresh Dense is allocated; operands are not mutated.
//
// Implementation:
//   - Stage 1: ValidateBinarySameShape(a, b). Allocate result Dense(rows, cols).
//   - Stage 2: Fast-path if both are *Dense - single flat loop 0..n-1.
//     Otherwise, fallback At/Set with fixed i→j order.
//
// Errors:
//   - ErrNilMatrix, *ShapeError(ErrDimensionMismatch), wrapped with opTag.
//
// Complexity:
//   - Time O(r*c), Space O(r*c) for the new result.
//
// Notes:
//   - The result is allocated without the NaN/Inf guard: sums of finite
//     values may overflow and that is reported as a value, not an error.
func addSub(a, b Matrix, sign float64, opTag string) (Matrix, error) {
	if err := ValidateBinarySameShape(a, b); err != nil {
		return nil, matrixErrorf(opTag, err)
	}

	rows, cols := a.Rows(), a.Cols()
	res, err := newDenseWithPolicy(rows, cols, false)
	if err != nil {
		return nil, matrixErrorf(opTag, err)
	}

	// Fast path: *Dense with *Dense → single flat loop.
	if da, okA := a.(*Dense); okA {
		if db, okB := b.(*Dense); okB {
			for idx := range res.data {
				res.data[idx] = da.data[idx] + sign*db.data[idx]
			}

			return res, nil
		}
	}

	// Fallback: interface path with fixed i→j order.
	var i, j int
	var av, bv float64
	for i = 0; i < rows; i++ {
		for j = 0; j < cols; j++ {
			if av, err = a.At(i, j); err != nil {
				return nil, matrixErrorf(opTag, err)
			}
			if bv, err = b.At(i, j); err != nil {
				return nil, matrixErrorf(opTag, err)
			}
			res.data[i*cols+j] = av + sign*bv
		}
	}

	return res, nil
}

// Add computes the element-wise sum C = A + B and returns a fresh Dense result.
//
// Errors:
//   - ErrNilMatrix (nil input), ErrDimensionMismatch (shape mismatch; the
//     *ShapeError in the chain names both shapes).
//
// Complexity:
//   - Time O(r*c), Space O(r*c).
func Add(a, b Matrix) (Matrix, error) { return addSub(a, b, +1, opAdd) }

// Sub computes the element-wise difference C = A - B and returns a fresh Dense result.
// Same preconditions and errors as Add.
func Sub(a, b Matrix) (Matrix, error) { return addSub(a, b, -1, opSub) }

// Mul performs standard matrix multiplication C = A × B (no aliasing).
// Implementation:
//   - Stage 1: Validate A,B (not nil) and inner dimensions (A.Cols == B.Rows).
//   - Stage 2: If A and B are *Dense, use i→k→j with row-major strides;
//     otherwise use i→j→k with a fixed order.
//
// Inputs:
//   - A: left matrix with shape (r × n).
//   - B: right matrix with shape (n × c).
//
// Returns:
//   - Matrix: new Dense C with shape (r × c); every cell starts at ZeroSum.
//
// Errors:
//   - ErrNilMatrix (nil input), ErrDimensionMismatch (inner mismatch).
//
// Complexity:
//   - Time O(r*n*c), Space O(r*c).
func Mul(a, b Matrix) (Matrix, error) {
	if err := ValidateMulCompatible(a, b); err != nil {
		return nil, matrixErrorf(opMul, err)
	}

	aRows, aCols, bCols := a.Rows(), a.Cols(), b.Cols()
	res, err := newDenseWithPolicy(aRows, bCols, false)
	if err != nil {
		return nil, matrixErrorf(opMul, err)
	}
	var (
		i, j, k         int
		av, bv, current float64
	)

	if da, okA := a.(*Dense); okA {
		if db, okB := b.(*Dense); okB {
			// da.data layout: i*aCols + k
			// db.data layout: k*bCols + j
			var rowOffsetA, rowOffsetB, rowOffsetR int
			for i = 0; i < aRows; i++ {
				rowOffsetA = i * aCols
				rowOffsetR = i * bCols
				for k = 0; k < aCols; k++ {
					av = da.data[rowOffsetA+k]
					rowOffsetB = k * bCols
					for j = 0; j < bCols; j++ {
						res.data[rowOffsetR+j] += av * db.data[rowOffsetB+j]
					}
				}
			}

			return res, nil
		}
	}

	// Fallback: generic interface triple-loop (i-j-k).
	for i = 0; i < aRows; i++ {
		for j = 0; j < bCols; j++ {
			current = ZeroSum
			for k = 0; k < aCols; k++ {
				if av, err = a.At(i, k); err != nil {
					return nil, matrixErrorf(opMul, err)
				}
				if bv, err = b.At(k, j); err != nil {
					return nil, matrixErrorf(opMul, err)
				}
				current += av * bv
			}
			res.data[i*bCols+j] = current
		}
	}

	return res, nil
}

// Determinant computes det(m) by recursive cofactor expansion along row 0.
// MAIN DESCRIPTION:
//   - det(m) = Σ_i sign(i) · m[0][i] · det(minor(m, 0, i)).
//
// Implementation:
//   - Stage 1: ValidateSquare(m).
//   - Stage 2: materialize non-Dense inputs once (toDense) so the recursion
//     runs over flat buffers; *Dense inputs are read in place, never written.
//   - Stage 3: cofactorDet with base cases 1×1 (the element) and 2×2 (ad − bc).
//
// Errors:
//   - ErrNilMatrix, *ShapeError(ErrNotSquare).
//
// Complexity:
//   - Time O(n!), Space O(n²) along the recursion path. Callers facing
//     untrusted sizes should bound n (see WithMaxOrder).
func Determinant(m Matrix) (float64, error) {
	if err := ValidateSquare(m); err != nil {
		return 0, matrixErrorf(opDeterminant, err)
	}
	d, err := toDense(m)
	if err != nil {
		return 0, matrixErrorf(opDeterminant, err)
	}
	det, err := cofactorDet(d)
	if err != nil {
		return 0, matrixErrorf(opDeterminant, err)
	}

	return det, nil
}

// cofactorDet is the recursive core of Determinant. d must be square.
func cofactorDet(d *Dense) (float64, error) {
	switch d.r {
	case 1:
		return d.data[0], nil
	case 2:
		return d.data[0]*d.data[3] - d.data[1]*d.data[2], nil
	}

	det := ZeroSum
	var sub *Dense
	var subDet float64
	var err error
	for i := 0; i < d.c; i++ {
		if sub, err = minor(d, 0, i); err != nil {
			return 0, err
		}
		if subDet, err = cofactorDet(sub); err != nil {
			return 0, err
		}
		det += cofactorSign(i) * d.data[i] * subDet
	}

	return det, nil
}

// cofactorSign returns (-1)^i from the parity of i.
func cofactorSign(i int) float64 {
	if i%2 == 0 {
		return 1
	}

	return -1
}

// minor returns the (n-1)×(n-1) submatrix of a square m without row and col.
// The relative order of the remaining cells is preserved.
//
// Errors:
//   - ErrNilMatrix, *ShapeError(ErrNotSquare), ErrInvalidDimensions for n < 2,
//     ErrOutOfRange for row/col outside [0, n).
func minor(m Matrix, row, col int) (*Dense, error) {
	if err := ValidateSquare(m); err != nil {
		return nil, matrixErrorf(opMinor, err)
	}
	n := m.Rows()
	if n < 2 {
		return nil, matrixErrorf(opMinor, ErrInvalidDimensions)
	}
	if row < 0 || row >= n || col < 0 || col >= n {
		return nil, matrixErrorf(opMinor, fmt.Errorf("(%d,%d): %w", row, col, ErrOutOfRange))
	}
	d, err := toDense(m)
	if err != nil {
		return nil, matrixErrorf(opMinor, err)
	}

	return d.Induced(skipIndex(n, row), skipIndex(n, col))
}

// skipIndex returns 0..n-1 without skip, in ascending order.
func skipIndex(n, skip int) []int {
	idx := make([]int, 0, n-1)
	for i := 0; i < n; i++ {
		if i != skip {
			idx = append(idx, i)
		}
	}

	return idx
}

// toDense returns m itself when it is a *Dense, else a flat copy read via At.
// The copy carries no NaN/Inf guard; values are taken as given.
func toDense(m Matrix) (*Dense, error) {
	if d, ok := m.(*Dense); ok {
		return d, nil
	}
	r, c := m.Rows(), m.Cols()
	d, err := newDenseWithPolicy(r, c, false)
	if err != nil {
		return nil, err
	}
	var v float64
	for i := 0; i < r; i++ {
		for j := 0; j < c; j++ {
			if v, err = m.At(i, j); err != nil {
				return nil, err
			}
			d.data[i*c+j] = v
		}
	}

	return d, nil
}
