package clustermaker

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/mat"
	"gonum.org/v1/gonum/stat"
)

// ZeroVariancePolicy decides what Standardize does with a constant column.
type ZeroVariancePolicy int

const (
	// ZeroVarianceCenter subtracts the mean and leaves the column unscaled,
	// producing a column of zeros.
	ZeroVarianceCenter ZeroVariancePolicy = iota
	// ZeroVarianceError fails with ErrDegenerateFeature.
	ZeroVarianceError
)

func (p ZeroVariancePolicy) String() string {
	switch p {
	case ZeroVarianceCenter:
		return "center"
	case ZeroVarianceError:
		return "error"
	default:
		return fmt.Sprintf("ZeroVariancePolicy(%d)", int(p))
	}
}

// Standardize returns a new matrix where every column of x is rescaled to
// zero mean and unit variance as (x - mean) / std. The population standard
// deviation (divisor n) is used. x is not modified.
func Standardize(x mat.Matrix, policy ZeroVariancePolicy) (*mat.Dense, error) {
	if err := checkMatrix(x); err != nil {
		return nil, err
	}
	if policy != ZeroVarianceCenter && policy != ZeroVarianceError {
		return nil, fmt.Errorf("clustermaker: zero-variance policy %v: %w", policy, ErrInvalidParameter)
	}

	n, dims := x.Dims()
	out := mat.DenseCopyOf(x)
	col := make([]float64, n)
	for j := 0; j < dims; j++ {
		mat.Col(col, j, out)
		// A constant column can still report a tiny std from rounding in
		// the mean, so detect it directly.
		var mean, std float64
		if constant(col) {
			if policy == ZeroVarianceError {
				return nil, &FeatureError{Index: j, cause: ErrDegenerateFeature}
			}
			mean, std = col[0], 1
		} else {
			mean, std = stat.PopMeanStdDev(col, nil)
			if !finite(mean) || !finite(std) || std == 0 {
				return nil, &FeatureError{Index: j, cause: ErrDegenerateFeature}
			}
		}
		for i := range col {
			col[i] = (col[i] - mean) / std
			if !finite(col[i]) {
				return nil, &FeatureError{Index: j, cause: ErrDegenerateFeature}
			}
		}
		out.SetCol(j, col)
	}
	return out, nil
}

func finite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}

func constant(xs []float64) bool {
	for _, v := range xs[1:] {
		if v != xs[0] {
			return false
		}
	}
	return true
}
