package clustermaker

import (
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/mat"
)

// euclidean returns the L2 distance between a and b.
func euclidean(a, b []float64) float64 {
	return floats.Distance(a, b, 2)
}

// squaredEuclidean skips the square root; used where only the ordering of
// distances or the squared value itself matters.
func squaredEuclidean(a, b []float64) float64 {
	var sum float64
	for i := range a {
		d := a[i] - b[i]
		sum += d * d
	}
	return sum
}

// PairwiseDistances computes the full n*n Euclidean distance matrix of the
// rows of x, flat and row-major: result[i*n+j] is the distance between rows i
// and j.
func PairwiseDistances(x *mat.Dense) []float64 {
	n, _ := x.Dims()
	result := make([]float64, n*n)
	for i := 0; i < n; i++ {
		fillDistanceRow(x, result, n, i)
	}
	return result
}

// fillDistanceRow writes result[i][j] and result[j][i] for every j > i.
// Workers writing disjoint i never touch the same cell.
func fillDistanceRow(x *mat.Dense, result []float64, n, i int) {
	ri := x.RawRowView(i)
	for j := i + 1; j < n; j++ {
		d := euclidean(ri, x.RawRowView(j))
		result[i*n+j] = d
		result[j*n+i] = d
	}
}
