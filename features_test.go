package clustermaker

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSelectFeatures_OrderPreserved(t *testing.T) {
	ds, err := NewDataset(
		[]string{"a", "b", "c"},
		[][]string{{"1", "2", "3"}, {"4", "5", "6"}},
	)
	require.NoError(t, err)

	x, err := SelectFeatures(ds, []string{"c", "a"})
	require.NoError(t, err)

	n, dims := x.Dims()
	require.Equal(t, 2, n)
	require.Equal(t, 2, dims)
	assert.Equal(t, []float64{3, 1}, x.RawRowView(0))
	assert.Equal(t, []float64{6, 4}, x.RawRowView(1))
}

func TestSelectFeatures_NonNumericColumn(t *testing.T) {
	ds, err := NewDataset(
		[]string{"A", "B"},
		[][]string{{"1", "cat"}, {"2", "dog"}, {"3", "mouse"}},
	)
	require.NoError(t, err)

	_, err = SelectFeatures(ds, []string{"A", "B"})
	require.ErrorIs(t, err, ErrNonNumericColumn)
	require.ErrorIs(t, err, ErrSchema)

	var ce *ColumnError
	require.True(t, errors.As(err, &ce))
	assert.Equal(t, "B", ce.Column)
	assert.Equal(t, 0, ce.Row)
	assert.Equal(t, "cat", ce.Value)
}

func TestSelectFeatures_MissingColumn(t *testing.T) {
	ds, err := NewDataset(
		[]string{"col1", "col2"},
		[][]string{{"10", "30"}, {"20", "40"}},
	)
	require.NoError(t, err)

	_, err = SelectFeatures(ds, []string{"col1", "col3"})
	require.ErrorIs(t, err, ErrMissingColumn)
	require.ErrorIs(t, err, ErrSchema)

	var ce *ColumnError
	require.True(t, errors.As(err, &ce))
	assert.Equal(t, "col3", ce.Column)
	assert.Equal(t, -1, ce.Row)
}

func TestSelectFeatures_MissingReportedBeforeNonNumeric(t *testing.T) {
	ds, err := NewDataset([]string{"text"}, [][]string{{"abc"}})
	require.NoError(t, err)

	_, err = SelectFeatures(ds, []string{"text", "absent"})
	require.ErrorIs(t, err, ErrMissingColumn)
}

func TestSelectFeatures_RejectsNonFiniteAndEmptyCells(t *testing.T) {
	for _, cell := range []string{"", "  ", "NaN", "Inf", "-inf", "1,5"} {
		t.Run(cell, func(t *testing.T) {
			ds, err := NewDataset([]string{"x"}, [][]string{{"1"}, {cell}})
			require.NoError(t, err)
			_, err = SelectFeatures(ds, []string{"x"})
			require.ErrorIs(t, err, ErrNonNumericColumn)
		})
	}
}

func TestSelectFeatures_AcceptsPaddedNumbers(t *testing.T) {
	ds, err := NewDataset([]string{"x"}, [][]string{{" 1.5 "}, {"-2e3"}})
	require.NoError(t, err)
	x, err := SelectFeatures(ds, []string{"x"})
	require.NoError(t, err)
	assert.Equal(t, 1.5, x.At(0, 0))
	assert.Equal(t, -2000.0, x.At(1, 0))
}

func TestSelectFeatures_InvalidRequests(t *testing.T) {
	ds, err := NewDataset([]string{"x"}, [][]string{{"1"}})
	require.NoError(t, err)
	empty, err := NewDataset([]string{"x"}, nil)
	require.NoError(t, err)

	_, err = SelectFeatures(ds, nil)
	assert.ErrorIs(t, err, ErrInvalidInput)

	_, err = SelectFeatures(ds, []string{"x", "x"})
	assert.ErrorIs(t, err, ErrInvalidInput)

	_, err = SelectFeatures(empty, []string{"x"})
	assert.ErrorIs(t, err, ErrInvalidInput)

	_, err = SelectFeatures(nil, []string{"x"})
	assert.ErrorIs(t, err, ErrInvalidInput)
}

func TestNumericColumns(t *testing.T) {
	ds, err := NewDataset(
		[]string{"id", "label", "x", "y"},
		[][]string{{"1", "a", "0.5", "2"}, {"2", "b", "1.5", ""}},
	)
	require.NoError(t, err)
	assert.Equal(t, []string{"id", "x"}, NumericColumns(ds))

	empty, err := NewDataset([]string{"x"}, nil)
	require.NoError(t, err)
	assert.Empty(t, NumericColumns(empty))
}

func TestMatrixFromRows(t *testing.T) {
	x, err := MatrixFromRows([][]float64{{1, 2}, {3, 4}})
	require.NoError(t, err)
	assert.Equal(t, 4.0, x.At(1, 1))

	_, err = MatrixFromRows([][]float64{{1, 2}, {3}})
	assert.ErrorIs(t, err, ErrInvalidInput)

	_, err = MatrixFromRows(nil)
	assert.ErrorIs(t, err, ErrInvalidInput)

	_, err = MatrixFromRows([][]float64{{}})
	assert.ErrorIs(t, err, ErrInvalidInput)
}
