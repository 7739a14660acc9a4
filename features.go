package clustermaker

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"gonum.org/v1/gonum/mat"
)

// SelectFeatures extracts the named columns of ds as an (n_samples,
// n_features) matrix, preserving row order and the requested column order.
//
// Every requested name is checked for presence before any cell is parsed, so
// a missing column is always reported as ErrMissingColumn even when another
// requested column is also non-numeric.
func SelectFeatures(ds *Dataset, columns []string) (*mat.Dense, error) {
	if ds == nil {
		return nil, fmt.Errorf("clustermaker: nil dataset: %w", ErrInvalidInput)
	}
	if len(columns) == 0 {
		return nil, fmt.Errorf("clustermaker: no feature columns requested: %w", ErrInvalidInput)
	}

	positions := make([]int, len(columns))
	seen := make(map[string]bool, len(columns))
	for i, name := range columns {
		if seen[name] {
			return nil, fmt.Errorf("clustermaker: feature %q requested twice: %w", name, ErrInvalidInput)
		}
		seen[name] = true
		positions[i] = ds.column(name)
		if positions[i] < 0 {
			return nil, &ColumnError{Column: name, Row: -1, cause: ErrMissingColumn}
		}
	}

	n := ds.Len()
	if n == 0 {
		return nil, fmt.Errorf("clustermaker: dataset has no rows: %w", ErrInvalidInput)
	}

	data := make([]float64, n*len(columns))
	for j, pos := range positions {
		for i, row := range ds.rows {
			v, ok := parseNumeric(row[pos])
			if !ok {
				return nil, &ColumnError{Column: columns[j], Row: i, Value: row[pos], cause: ErrNonNumericColumn}
			}
			data[i*len(columns)+j] = v
		}
	}
	return mat.NewDense(n, len(columns), data), nil
}

// NumericColumns returns, in header order, the columns of ds whose every cell
// parses as a finite number. A dataset with no rows has no numeric columns.
func NumericColumns(ds *Dataset) []string {
	if ds == nil || ds.Len() == 0 {
		return nil
	}
	var out []string
	for j, name := range ds.columns {
		numeric := true
		for _, row := range ds.rows {
			if _, ok := parseNumeric(row[j]); !ok {
				numeric = false
				break
			}
		}
		if numeric {
			out = append(out, name)
		}
	}
	return out
}

// MatrixFromRows copies rows into a dense matrix. All rows must have the same,
// non-zero length and hold finite values.
func MatrixFromRows(rows [][]float64) (*mat.Dense, error) {
	if len(rows) == 0 {
		return nil, fmt.Errorf("clustermaker: matrix has no rows: %w", ErrInvalidInput)
	}
	dims := len(rows[0])
	if dims == 0 {
		return nil, fmt.Errorf("clustermaker: matrix has no columns: %w", ErrInvalidInput)
	}
	data := make([]float64, 0, len(rows)*dims)
	for i, row := range rows {
		if len(row) != dims {
			return nil, fmt.Errorf("clustermaker: row %d has %d values, want %d: %w", i, len(row), dims, ErrInvalidInput)
		}
		for j, v := range row {
			if math.IsNaN(v) || math.IsInf(v, 0) {
				return nil, fmt.Errorf("clustermaker: non-finite value at (%d, %d): %w", i, j, ErrInvalidInput)
			}
		}
		data = append(data, row...)
	}
	return mat.NewDense(len(rows), dims, data), nil
}

// parseNumeric parses a cell as a finite float64. Empty cells, text, NaN and
// infinities are not numeric.
func parseNumeric(cell string) (float64, bool) {
	s := strings.TrimSpace(cell)
	if s == "" {
		return 0, false
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil || math.IsNaN(v) || math.IsInf(v, 0) {
		return 0, false
	}
	return v, true
}
