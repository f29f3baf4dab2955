// SPDX-License-Identifier: MIT

package matrixio

import (
	"io"
	"strconv"
	"strings"

	"github.com/katalvlaran/matops/matrix"
)

// Rows copies any Matrix into row slices.
func Rows(m matrix.Matrix) ([][]float64, error) {
	if err := matrix.ValidateNotNil(m); err != nil {
		return nil, err
	}
	out := make([][]float64, m.Rows())
	for i := range out {
		out[i] = make([]float64, m.Cols())
		for j := range out[i] {
			v, err := m.At(i, j)
			if err != nil {
				return nil, err
			}
			out[i][j] = v
		}
	}

	return out, nil
}

// FormatFloat renders v with prec digits after the point; prec < 0 picks the
// shortest representation that round-trips.
func FormatFloat(v float64, prec int) string {
	if prec < 0 {
		prec = -1
	}

	return strconv.FormatFloat(v, 'f', prec, 64)
}

// WriteMatrix writes "label:" followed by one line per row, every cell
// followed by a tab.
func WriteMatrix(w io.Writer, label string, m matrix.Matrix, prec int) error {
	rows, err := Rows(m)
	if err != nil {
		return err
	}

	var b strings.Builder
	b.WriteString(label)
	b.WriteString(":\n")
	for _, row := range rows {
		for _, v := range row {
			b.WriteString(FormatFloat(v, prec))
			b.WriteByte('\t')
		}
		b.WriteByte('\n')
	}
	_, err = io.WriteString(w, b.String())

	return err
}

// WriteScalar writes "label: value".
func WriteScalar(w io.Writer, label string, v float64, prec int) error {
	_, err := io.WriteString(w, label+": "+FormatFloat(v, prec)+"\n")
	return err
}

// WriteFailure writes "label: error: <cause>" for an operation that produced
// no result.
func WriteFailure(w io.Writer, label string, cause error) error {
	_, err := io.WriteString(w, label+": error: "+cause.Error()+"\n")
	return err
}
