// SPDX-License-Identifier: MIT
package matrixio_test

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/matops/matrix"
	"github.com/katalvlaran/matops/matrixio"
)

func TestDecodeYAML(t *testing.T) {
	m, err := matrixio.DecodeYAML(strings.NewReader("rows:\n  - [1, 2]\n  - [3, 4.5]\n"))
	require.NoError(t, err)

	got, err := matrixio.Rows(m)
	require.NoError(t, err)
	require.Equal(t, [][]float64{{1, 2}, {3, 4.5}}, got)
}

func TestDecodeYAML_Errors(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		wantErr error
	}{
		{"empty document", "", matrixio.ErrEmptyInput},
		{"no rows", "rows: []\n", matrixio.ErrEmptyInput},
		{"not a number", "rows: [[1, a]]\n", matrixio.ErrMalformedYAML},
		{"ragged", "rows: [[1, 2], [3]]\n", matrix.ErrRaggedRows},
		{"nan", "rows: [[.nan]]\n", matrix.ErrNaNInf},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			_, err := matrixio.DecodeYAML(strings.NewReader(tc.input))
			require.ErrorIs(t, err, tc.wantErr)
			require.True(t, matrixio.IsLoadError(err))
		})
	}
}

func TestEncodeYAML_ReadsBack(t *testing.T) {
	m, err := matrix.NewDenseFromRows([][]float64{{1, -2.25}, {0, 1e6}})
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, matrixio.EncodeYAML(&buf, m))

	back, err := matrixio.DecodeYAML(&buf)
	require.NoError(t, err)
	ok, err := matrix.AllClose(back, m, 0, 0)
	require.NoError(t, err)
	require.True(t, ok)
}

func TestLoad_YAMLExtension(t *testing.T) {
	path := writeFile(t, "m.yml", "rows:\n  - [2, 0]\n  - [0, 2]\n")

	m, err := matrixio.Load(path)
	require.NoError(t, err)

	det, err := matrix.Determinant(m)
	require.NoError(t, err)
	require.Equal(t, 4.0, det)
}
