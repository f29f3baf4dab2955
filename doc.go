// SPDX-License-Identifier: MIT

// Package matops is a small dense-matrix toolkit: element-wise sum and
// difference, the matrix product, and determinants by cofactor expansion.
//
// Layout:
//
//	matrix/           Dense storage, the Matrix interface and the algebra kernels
//	matrixio/         text and YAML readers, report writers
//	internal/config/  matops.yaml loading and validation
//	internal/report/  the two-matrix pipeline behind the CLI
//	cmd/matops/       command-line entry point
//	examples/         runnable walkthrough
//
// Quick example:
//
//	a, _ := matrix.NewDenseFromRows([][]float64{{1, 2}, {3, 4}})
//	det, _ := matrix.Determinant(a) // -2
//
// Determinants use Laplace expansion along the first row: exact for small
// integer matrices and O(n!) in time, so large orders should be bounded with
// matrix.WithMaxOrder.
package matops
