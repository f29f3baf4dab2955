// Package matrix_test contains unit tests for the Dense implementation
// of the Matrix interface in the matrix package.
package matrix_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/matops/matrix"
)

// TestNewDenseInvalidDimensions ensures that NewDense rejects non-positive dimensions.
func TestNewDenseInvalidDimensions(t *testing.T) {
	_, err := matrix.NewDense(0, 5)
	require.ErrorIs(t, err, matrix.ErrInvalidDimensions)

	_, err = matrix.NewDense(5, 0)
	require.ErrorIs(t, err, matrix.ErrInvalidDimensions)

	_, err = matrix.NewDense(-1, 3)
	require.ErrorIs(t, err, matrix.ErrInvalidDimensions)
}

// TestRowsColsShape verifies the dimension accessors.
func TestRowsColsShape(t *testing.T) {
	m := mustDense(t, 3, 4)

	require.Equal(t, 3, m.Rows())
	require.Equal(t, 4, m.Cols())
	require.Equal(t, matrix.Shape{Rows: 3, Cols: 4}, m.Shape())
	require.Equal(t, "3x4", m.Shape().String())
}

// TestAtSetOutOfRange ensures At() and Set() return ErrOutOfRange on invalid access.
func TestAtSetOutOfRange(t *testing.T) {
	m := mustDense(t, 2, 2)

	_, err := m.At(-1, 0)
	require.ErrorIs(t, err, matrix.ErrOutOfRange)

	_, err = m.At(0, 2)
	require.ErrorIs(t, err, matrix.ErrOutOfRange)

	require.ErrorIs(t, m.Set(2, 0, 1.23), matrix.ErrOutOfRange)
	require.ErrorIs(t, m.Set(0, -1, 4.56), matrix.ErrOutOfRange)
}

// TestSetRejectsNonFinite checks the default numeric policy.
func TestSetRejectsNonFinite(t *testing.T) {
	m := mustDense(t, 1, 1)

	require.ErrorIs(t, m.Set(0, 0, math.NaN()), matrix.ErrNaNInf)
	require.ErrorIs(t, m.Set(0, 0, math.Inf(-1)), matrix.ErrNaNInf)

	relaxed, err := matrix.ExportedNewDenseWithPolicy(1, 1, false)
	require.NoError(t, err)
	require.NoError(t, relaxed.Set(0, 0, math.Inf(1)))
}

// TestSetGet validates Set() followed by At() on valid indices.
func TestSetGet(t *testing.T) {
	m := mustDense(t, 2, 3)

	require.NoError(t, m.Set(1, 2, 7.89))
	val, err := m.At(1, 2)
	require.NoError(t, err)
	require.Equal(t, 7.89, val)
}

// TestCloneIndependence ensures Clone() returns a deep copy that does not share storage.
func TestCloneIndependence(t *testing.T) {
	m := mustRows(t, [][]float64{{1, 0}, {0, 2}})

	clone := m.Clone()
	require.NoError(t, clone.Set(0, 0, 3.0))

	orig, err := m.At(0, 0)
	require.NoError(t, err)
	require.Equal(t, 1.0, orig)

	got, err := clone.At(0, 0)
	require.NoError(t, err)
	require.Equal(t, 3.0, got)
}

// TestStringOutput checks that String() formats the matrix as expected.
func TestStringOutput(t *testing.T) {
	m := mustRows(t, [][]float64{{1, 2}, {3, 4.5}})

	require.Equal(t, "[1, 2]\n[3, 4.5]\n", m.String())
}

// TestNewDenseFromRows covers the ingestion contract.
func TestNewDenseFromRows(t *testing.T) {
	t.Run("copies input", func(t *testing.T) {
		src := [][]float64{{1, 2, 3}, {4, 5, 6}}
		m := mustRows(t, src)
		src[0][0] = 100

		require.Equal(t, [][]float64{{1, 2, 3}, {4, 5, 6}}, toRows(t, m))
	})

	t.Run("empty", func(t *testing.T) {
		_, err := matrix.NewDenseFromRows(nil)
		require.ErrorIs(t, err, matrix.ErrInvalidDimensions)

		_, err = matrix.NewDenseFromRows([][]float64{{}})
		require.ErrorIs(t, err, matrix.ErrInvalidDimensions)
	})

	t.Run("ragged", func(t *testing.T) {
		_, err := matrix.NewDenseFromRows([][]float64{{1, 2}, {3}})
		require.ErrorIs(t, err, matrix.ErrRaggedRows)
		require.Contains(t, err.Error(), "row 1 has 1 values, want 2")
	})

	t.Run("non-finite", func(t *testing.T) {
		_, err := matrix.NewDenseFromRows([][]float64{{1, math.NaN()}})
		require.ErrorIs(t, err, matrix.ErrNaNInf)
	})
}

// TestRowCopy ensures Row returns an independent slice.
func TestRowCopy(t *testing.T) {
	m := mustRows(t, [][]float64{{1, 2}, {3, 4}})

	row, err := m.Row(1)
	require.NoError(t, err)
	require.Equal(t, []float64{3, 4}, row)

	row[0] = 9
	v, _ := m.At(1, 0)
	require.Equal(t, 3.0, v)

	_, err = m.Row(2)
	require.ErrorIs(t, err, matrix.ErrOutOfRange)
}

// TestInduced checks order preservation and index validation.
func TestInduced(t *testing.T) {
	m := mustRows(t, [][]float64{
		{1, 2, 3},
		{4, 5, 6},
		{7, 8, 9},
	})

	sub, err := m.Induced([]int{2, 0}, []int{1, 2})
	require.NoError(t, err)
	require.Equal(t, [][]float64{{8, 9}, {2, 3}}, toRows(t, sub))

	_, err = m.Induced([]int{3}, []int{0})
	require.ErrorIs(t, err, matrix.ErrOutOfRange)

	_, err = m.Induced(nil, []int{0})
	require.ErrorIs(t, err, matrix.ErrInvalidDimensions)
}
