package clustermaker

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewDataset(t *testing.T) {
	rows := [][]string{{"1", "a"}, {"2", "b"}}
	ds, err := NewDataset([]string{"x", "name"}, rows)
	require.NoError(t, err)

	assert.Equal(t, []string{"x", "name"}, ds.Columns())
	assert.Equal(t, 2, ds.Len())
	assert.Equal(t, []string{"2", "b"}, ds.Row(1))

	cell, ok := ds.Cell(0, "name")
	assert.True(t, ok)
	assert.Equal(t, "a", cell)

	_, ok = ds.Cell(0, "missing")
	assert.False(t, ok)

	// The dataset owns its cells.
	rows[0][0] = "changed"
	cell, _ = ds.Cell(0, "x")
	assert.Equal(t, "1", cell)
}

func TestNewDataset_Invalid(t *testing.T) {
	tests := []struct {
		name    string
		columns []string
		rows    [][]string
	}{
		{"no columns", nil, nil},
		{"duplicate column", []string{"a", "a"}, nil},
		{"empty column name", []string{"a", ""}, nil},
		{"short row", []string{"a", "b"}, [][]string{{"1"}}},
		{"long row", []string{"a"}, [][]string{{"1", "2"}}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewDataset(tt.columns, tt.rows)
			require.ErrorIs(t, err, ErrInvalidInput)
			require.ErrorIs(t, err, ErrInput)
		})
	}
}

func TestDatasetFromMatrix(t *testing.T) {
	ds, err := DatasetFromMatrix([]string{"a", "b"}, [][]float64{{0.1, -2}, {1e-9, 3.5}})
	require.NoError(t, err)

	x, err := SelectFeatures(ds, []string{"a", "b"})
	require.NoError(t, err)
	assert.Equal(t, 0.1, x.At(0, 0))
	assert.Equal(t, 1e-9, x.At(1, 0))
	assert.Equal(t, 3.5, x.At(1, 1))
}
