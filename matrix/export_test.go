// SPDX-License-Identifier: MIT

package matrix

// Test-Bridge (white-box) for private helpers.
//
// Compiled only with the package's tests (the _test.go suffix), so matrix_test
// can reach unexported kernels without widening the production API.

var (
	// ExportedMinor exposes minor for black-box tests.
	ExportedMinor = minor
	// ExportedCofactorSign exposes cofactorSign.
	ExportedCofactorSign = cofactorSign
	// ExportedNewDenseWithPolicy exposes newDenseWithPolicy.
	ExportedNewDenseWithPolicy = newDenseWithPolicy
)

// Panic message exports to avoid "magic strings" in tests.
const (
	PanicObserverNil_TestOnly    = panicObserverNil
	PanicMaxOrderTooLow_TestOnly = panicMaxOrderTooLow
)

// MaxOrderOf_TestOnly returns the resolved max order of a Calculator.
func MaxOrderOf_TestOnly(c *Calculator) int { return c.opts.maxOrder }
