package clustermaker

import (
	"fmt"
	"strconv"
)

// Dataset is an ordered table of named cells. Cells are kept as text so that
// a column's numeric-ness is decided at feature selection, not at load time.
// Row order is significant: labels map back to rows by position.
type Dataset struct {
	columns []string
	index   map[string]int
	rows    [][]string
}

// NewDataset builds a Dataset from a header and rows of cells. Column names
// must be non-empty and unique, and every row must have one cell per column.
// The inputs are copied.
func NewDataset(columns []string, rows [][]string) (*Dataset, error) {
	if len(columns) == 0 {
		return nil, fmt.Errorf("clustermaker: dataset has no columns: %w", ErrInvalidInput)
	}

	index := make(map[string]int, len(columns))
	for i, name := range columns {
		if name == "" {
			return nil, fmt.Errorf("clustermaker: column %d has an empty name: %w", i, ErrInvalidInput)
		}
		if _, dup := index[name]; dup {
			return nil, fmt.Errorf("clustermaker: duplicate column %q: %w", name, ErrInvalidInput)
		}
		index[name] = i
	}

	copied := make([][]string, len(rows))
	for i, row := range rows {
		if len(row) != len(columns) {
			return nil, fmt.Errorf("clustermaker: row %d has %d cells, want %d: %w",
				i, len(row), len(columns), ErrInvalidInput)
		}
		copied[i] = append([]string(nil), row...)
	}

	return &Dataset{
		columns: append([]string(nil), columns...),
		index:   index,
		rows:    copied,
	}, nil
}

// DatasetFromMatrix builds a Dataset from numeric rows, formatting each value
// with the shortest representation that parses back to the same float64.
func DatasetFromMatrix(columns []string, data [][]float64) (*Dataset, error) {
	rows := make([][]string, len(data))
	for i, row := range data {
		cells := make([]string, len(row))
		for j, v := range row {
			cells[j] = strconv.FormatFloat(v, 'g', -1, 64)
		}
		rows[i] = cells
	}
	return NewDataset(columns, rows)
}

// Columns returns the column names in header order.
func (d *Dataset) Columns() []string {
	return append([]string(nil), d.columns...)
}

// Len returns the number of rows.
func (d *Dataset) Len() int { return len(d.rows) }

// Row returns a copy of row i.
func (d *Dataset) Row(i int) []string {
	return append([]string(nil), d.rows[i]...)
}

// Cell returns the raw cell at row i of the named column.
func (d *Dataset) Cell(i int, column string) (string, bool) {
	j, ok := d.index[column]
	if !ok {
		return "", false
	}
	return d.rows[i][j], true
}

// column returns the position of name, or -1.
func (d *Dataset) column(name string) int {
	if j, ok := d.index[name]; ok {
		return j
	}
	return -1
}
