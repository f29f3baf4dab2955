// SPDX-License-Identifier: MIT

package matrix_test

import (
	"errors"
	"math"
	"testing"

	"github.com/katalvlaran/matops/matrix"
)

func TestAllClose_Basics(t *testing.T) {
	t.Parallel()

	a := mustDense(t, 2, 2)
	b := mustDense(t, 2, 2)

	// Identical.
	ok, err := matrix.AllClose(a, b, 1e-8, 1e-8)
	if err != nil || !ok {
		t.Fatalf("AllClose identical: ok=%v err=%v", ok, err)
	}

	// Slightly different but within tolerance.
	if err = b.Set(1, 1, 1e-10); err != nil {
		t.Fatal(err)
	}
	ok, err = matrix.AllClose(a, b, 1e-8, 1e-8)
	if err != nil || !ok {
		t.Fatalf("AllClose within tol: ok=%v err=%v", ok, err)
	}

	// Outside tolerance (pure absolute tolerance).
	if err = b.Set(0, 0, 1e-6); err != nil {
		t.Fatal(err)
	}
	ok, err = matrix.AllClose(a, b, 0, 1e-8)
	if err != nil {
		t.Fatalf("AllClose outside tol err: %v", err)
	}
	if ok {
		t.Fatalf("AllClose outside tol: expected false, got true")
	}
}

// AllClose errors: shape mismatch, nil matrices, bad tolerances.
func TestAllClose_Errors(t *testing.T) {
	t.Parallel()

	a := mustDense(t, 2, 2)
	b3x := mustDense(t, 2, 3)

	if _, err := matrix.AllClose(a, b3x, 1e-6, 1e-6); !errors.Is(err, matrix.ErrDimensionMismatch) {
		t.Fatalf("AllClose dim mismatch: want ErrDimensionMismatch, got %v", err)
	}
	if _, err := matrix.AllClose(nil, a, 1e-6, 1e-6); !errors.Is(err, matrix.ErrNilMatrix) {
		t.Fatalf("AllClose nil a: want ErrNilMatrix, got %v", err)
	}
	if _, err := matrix.AllClose(a, a, math.NaN(), 1e-6); !errors.Is(err, matrix.ErrNaNInf) {
		t.Fatalf("AllClose rtol NaN: want ErrNaNInf, got %v", err)
	}
	if _, err := matrix.AllClose(a, a, 1e-6, math.Inf(-1)); !errors.Is(err, matrix.ErrNaNInf) {
		t.Fatalf("AllClose atol Inf: want ErrNaNInf, got %v", err)
	}
}

// Negative tolerances are accepted and treated as absolute values.
func TestAllClose_NegativeTolerances_AreNormalized(t *testing.T) {
	t.Parallel()

	a := mustRows(t, [][]float64{{0}})
	b := mustRows(t, [][]float64{{5e-6}})

	ok, err := matrix.AllClose(a, b, -1e-5, -1e-5)
	if err != nil || !ok {
		t.Fatalf("AllClose negative tol: ok=%v err=%v", ok, err)
	}
}

// Fast path (*Dense) and fallback (non-*Dense) must agree on the boolean result.
func TestAllClose_FallbackMatchesFast(t *testing.T) {
	t.Parallel()

	a := mustRows(t, [][]float64{{0, 0}, {0, 0}})
	b := mustRows(t, [][]float64{{0, 1e-7}, {0, 0}})

	for _, atol := range []float64{1e-8, 1e-6} {
		okFast, err := matrix.AllClose(a, b, 0, atol)
		if err != nil {
			t.Fatalf("AllClose fast err: %v", err)
		}
		okSlow, err := matrix.AllClose(hide{a}, hide{b}, 0, atol)
		if err != nil {
			t.Fatalf("AllClose slow err: %v", err)
		}
		if okFast != okSlow {
			t.Fatalf("atol=%g: fast=%v slow=%v", atol, okFast, okSlow)
		}
	}
}
