package clustermaker

import (
	"slices"

	"gonum.org/v1/gonum/mat"
	"gonum.org/v1/gonum/stat"
)

// ColumnSummary holds the descriptive statistics of one numeric column.
// Std is the sample standard deviation (divisor n-1) and is 0 for a single
// row. Quartiles are linearly interpolated.
type ColumnSummary struct {
	Column string
	Count  int
	Mean   float64
	Std    float64
	Min    float64
	Q1     float64
	Median float64
	Q3     float64
	Max    float64
}

// Describe summarises the named columns of ds. Columns must exist and be
// numeric, with the same errors as SelectFeatures.
func Describe(ds *Dataset, columns []string) ([]ColumnSummary, error) {
	x, err := SelectFeatures(ds, columns)
	if err != nil {
		return nil, err
	}

	n, _ := x.Dims()
	out := make([]ColumnSummary, len(columns))
	col := make([]float64, n)
	for j, name := range columns {
		mat.Col(col, j, x)
		slices.Sort(col)

		s := ColumnSummary{
			Column: name,
			Count:  n,
			Mean:   stat.Mean(col, nil),
			Min:    col[0],
			Max:    col[n-1],
			Q1:     quantile(0.25, col),
			Median: quantile(0.5, col),
			Q3:     quantile(0.75, col),
		}
		if n > 1 {
			s.Std = stat.StdDev(col, nil)
		}
		if !finite(s.Mean) || !finite(s.Std) || !finite(s.Q1) || !finite(s.Median) || !finite(s.Q3) {
			return nil, &FeatureError{Index: j, cause: ErrOverflow}
		}
		out[j] = s
	}
	return out, nil
}

// quantile returns the p-quantile of sorted by linear interpolation between
// closest ranks, the convention dataframe libraries use for describe output.
func quantile(p float64, sorted []float64) float64 {
	pos := p * float64(len(sorted)-1)
	lo := int(pos)
	if lo >= len(sorted)-1 {
		return sorted[len(sorted)-1]
	}
	frac := pos - float64(lo)
	return sorted[lo] + frac*(sorted[lo+1]-sorted[lo])
}
