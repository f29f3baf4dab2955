// Package matrix is the algebra core of matops.
//
// The matrix package provides:
//
//   - Dense, a row-major rectangular grid of float64 behind the Matrix interface,
//     with bounds-checked At/Set and a finite-only numeric policy.
//   - Add, Sub and Mul, each returning a freshly allocated result.
//   - Determinant by recursive cofactor expansion along the first row.
//   - Calculator, which runs the same kernels and reports every call to an
//     Observer (logging, tracing) without touching the kernels' purity.
//
// Shape violations are returned as *ShapeError values wrapping
// ErrDimensionMismatch or ErrNotSquare; match them with errors.Is and read the
// shapes with errors.As.
//
// Determinant is O(n!) by design. Bound the order with WithMaxOrder when the
// input size is not under your control.
package matrix
