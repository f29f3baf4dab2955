// SPDX-License-Identifier: MIT
// Package matrix_test contains test helpers
//
// Purpose:
//   • Provide small, deterministic fixtures and utilities for kernels.
//   • Keep all data finite and well-formed to avoid numeric-policy interference.

package matrix_test

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/mat"

	"github.com/katalvlaran/matops/matrix"
)

// Tolerances used by property and reference checks.
const (
	relTol = 1e-9
	absTol = 1e-9
)

// hide wraps any Matrix to hide its concrete type from type assertions.
// Use hide{X} to force the generic (non-*Dense) kernel paths.
type hide struct{ matrix.Matrix }

// mustRows builds a *Dense from literal rows or fails the test.
func mustRows(tb testing.TB, rows [][]float64) *matrix.Dense {
	tb.Helper()
	m, err := matrix.NewDenseFromRows(rows)
	require.NoError(tb, err)

	return m
}

// mustDense allocates an r×c zero *Dense or fails the test.
func mustDense(tb testing.TB, r, c int) *matrix.Dense {
	tb.Helper()
	m, err := matrix.NewDense(r, c)
	require.NoError(tb, err)

	return m
}

// randDense fills an r×c *Dense with values in [-5, 5) from a seeded source.
func randDense(tb testing.TB, rng *rand.Rand, r, c int) *matrix.Dense {
	tb.Helper()
	m := mustDense(tb, r, c)
	for i := 0; i < r; i++ {
		for j := 0; j < c; j++ {
			require.NoError(tb, m.Set(i, j, rng.Float64()*10-5))
		}
	}

	return m
}

// toRows reads any Matrix back into [][]float64 for readable assertions.
func toRows(tb testing.TB, m matrix.Matrix) [][]float64 {
	tb.Helper()
	out := make([][]float64, m.Rows())
	for i := range out {
		out[i] = make([]float64, m.Cols())
		for j := range out[i] {
			v, err := m.At(i, j)
			require.NoError(tb, err)
			out[i][j] = v
		}
	}

	return out
}

// requireClose asserts AllClose(got, want) with the package tolerances.
func requireClose(tb testing.TB, want, got matrix.Matrix) {
	tb.Helper()
	ok, err := matrix.AllClose(got, want, relTol, absTol)
	require.NoError(tb, err)
	require.Truef(tb, ok, "matrices differ:\nwant\n%v\ngot\n%v", want, got)
}

// referenceDet computes det(m) with gonum's LU-based routine, an algorithm
// independent of cofactor expansion.
func referenceDet(tb testing.TB, m matrix.Matrix) float64 {
	tb.Helper()
	n := m.Rows()
	flat := make([]float64, 0, n*n)
	for _, row := range toRows(tb, m) {
		flat = append(flat, row...)
	}

	return mat.Det(mat.NewDense(n, n, flat))
}
