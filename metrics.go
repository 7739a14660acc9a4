package clustermaker

import (
	"fmt"
	"maps"

	"gonum.org/v1/gonum/mat"
)

// Metric names used as keys of Metrics.
const (
	MetricInertia    = "inertia"
	MetricSilhouette = "silhouette"
)

// Metrics maps a metric name to its value. A missing key means the metric is
// undefined for the fit, never that it is zero.
type Metrics map[string]float64

// Inertia returns the inertia and whether it is defined.
func (m Metrics) Inertia() (float64, bool) {
	v, ok := m[MetricInertia]
	return v, ok
}

// Silhouette returns the silhouette score and whether it is defined.
func (m Metrics) Silhouette() (float64, bool) {
	v, ok := m[MetricSilhouette]
	return v, ok
}

// Inertia returns the sum over all rows of x of the squared Euclidean
// distance to the centroid of the row's cluster.
func Inertia(x mat.Matrix, labels []int, centroids mat.Matrix) (float64, error) {
	data, err := checkLabels(x, labels)
	if err != nil {
		return 0, err
	}
	if centroids == nil {
		return 0, fmt.Errorf("clustermaker: inertia needs centroids: %w", ErrInvalidInput)
	}
	k, cdims := centroids.Dims()
	_, dims := data.Dims()
	if cdims != dims {
		return 0, fmt.Errorf("clustermaker: centroids have %d features, data has %d: %w", cdims, dims, ErrInvalidInput)
	}
	c := mat.DenseCopyOf(centroids)

	var sum float64
	for i, label := range labels {
		if label >= k {
			return 0, fmt.Errorf("clustermaker: label %d at row %d has no centroid (k = %d): %w", label, i, k, ErrInvalidInput)
		}
		sum += squaredEuclidean(data.RawRowView(i), c.RawRowView(label))
	}
	if !finite(sum) {
		return 0, fmt.Errorf("clustermaker: inertia is not finite: %w", ErrOverflow)
	}
	return sum, nil
}

// Silhouette returns the mean silhouette coefficient of the labelled rows of
// x. For row i, a is the mean distance to the other rows of its cluster and b
// the lowest mean distance to the rows of another cluster; the row scores
// (b - a) / max(a, b), or 0 when its cluster is a singleton.
//
// The score is only defined when the number of distinct labels is at least 2
// and below the number of rows; otherwise ok is false. The pairwise distance
// matrix is computed with up to workers goroutines.
func Silhouette(x mat.Matrix, labels []int, workers int) (score float64, ok bool, err error) {
	data, err := checkLabels(x, labels)
	if err != nil {
		return 0, false, err
	}

	n := len(labels)
	// Remap labels to dense indices so skipped cluster IDs cost nothing.
	dense := make([]int, n)
	index := make(map[int]int)
	for i, l := range labels {
		c, seen := index[l]
		if !seen {
			c = len(index)
			index[l] = c
		}
		dense[i] = c
	}
	k := len(index)
	if k < 2 || k >= n {
		return 0, false, nil
	}

	sizes := make([]int, k)
	for _, c := range dense {
		sizes[c]++
	}

	dist := PairwiseDistancesParallel(data, workers)
	sums := make([]float64, k)
	var total float64
	for i := 0; i < n; i++ {
		own := dense[i]
		if sizes[own] == 1 {
			continue // scores 0
		}

		clear(sums)
		row := dist[i*n : (i+1)*n]
		for j, d := range row {
			sums[dense[j]] += d
		}

		a := sums[own] / float64(sizes[own]-1)
		b := -1.0
		for c := 0; c < k; c++ {
			if c == own {
				continue
			}
			if mean := sums[c] / float64(sizes[c]); b < 0 || mean < b {
				b = mean
			}
		}

		if denom := max(a, b); denom > 0 {
			total += (b - a) / denom
		}
	}
	if !finite(total) {
		return 0, false, fmt.Errorf("clustermaker: silhouette is not finite: %w", ErrOverflow)
	}
	return total / float64(n), true, nil
}

// Evaluate computes the metrics defined for fit: inertia when the fit has
// centroids and the silhouette score when it is defined.
func Evaluate(x mat.Matrix, fit *Fit, workers int) (Metrics, error) {
	if fit == nil {
		return nil, fmt.Errorf("clustermaker: nil fit: %w", ErrInvalidInput)
	}
	m := Metrics{}
	if centroids, ok := fit.Centroids(); ok {
		inertia, err := Inertia(x, fit.labels, centroids)
		if err != nil {
			return nil, err
		}
		m[MetricInertia] = inertia
	}
	s, ok, err := Silhouette(x, fit.labels, workers)
	if err != nil {
		return nil, err
	}
	if ok {
		m[MetricSilhouette] = s
	}
	return m, nil
}

// Clone returns an independent copy of m.
func (m Metrics) Clone() Metrics {
	if m == nil {
		return nil
	}
	return maps.Clone(m)
}

// checkLabels validates x and that labels has one non-negative entry per row.
func checkLabels(x mat.Matrix, labels []int) (*mat.Dense, error) {
	if err := checkMatrix(x); err != nil {
		return nil, err
	}
	n, _ := x.Dims()
	if len(labels) != n {
		return nil, fmt.Errorf("clustermaker: %d labels for %d rows: %w", len(labels), n, ErrInvalidInput)
	}
	for i, l := range labels {
		if l < 0 {
			return nil, fmt.Errorf("clustermaker: negative label %d at row %d: %w", l, i, ErrInvalidInput)
		}
	}
	return mat.DenseCopyOf(x), nil
}
