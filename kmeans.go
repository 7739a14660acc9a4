package clustermaker

import (
	"fmt"
	"math"
	"math/rand/v2"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/mat"
)

// Init selects how K-Means picks its starting centroids.
type Init int

const (
	// InitRandom picks k distinct rows uniformly at random.
	InitRandom Init = iota
	// InitKMeansPlusPlus picks each next centroid with probability
	// proportional to its squared distance from the nearest chosen one.
	InitKMeansPlusPlus
)

// KMeans is Lloyd's algorithm under Euclidean distance.
//
// Every restart r draws from a PCG stream seeded with (Seed, r), so a fixed
// Seed gives identical labels and centroids across runs. The restart with the
// lowest inertia wins; ties keep the earliest.
type KMeans struct {
	Init    Init
	Seed    uint64
	MaxIter int
	NInit   int
}

type kmeansRun struct {
	labels     []int
	centroids  []float64
	inertia    float64
	iterations int
}

// Fit runs NInit restarts of Lloyd's algorithm on the rows of x.
func (km *KMeans) Fit(x mat.Matrix, k int) (*Fit, error) {
	data, err := checkFitInput(x, k)
	if err != nil {
		return nil, err
	}

	maxIter := km.MaxIter
	if maxIter <= 0 {
		maxIter = DefaultClustererOptions().MaxIter
	}

	var best *kmeansRun
	for r := 0; r < max(km.NInit, 1); r++ {
		rng := rand.New(rand.NewPCG(km.Seed, uint64(r)))
		run := lloyd(data, k, km.initialCentroids(data, k, rng), maxIter)
		if best == nil || run.inertia < best.inertia {
			best = run
		}
	}

	if !finite(best.inertia) {
		return nil, fmt.Errorf("clustermaker: k-means inertia is not finite (k = %d): %w", k, ErrOverflow)
	}

	_, dims := data.Dims()
	return &Fit{
		labels:     best.labels,
		centroids:  mat.NewDense(k, dims, best.centroids),
		iterations: best.iterations,
	}, nil
}

// initialCentroids returns k*dims centroid coordinates, row-major.
func (km *KMeans) initialCentroids(data *mat.Dense, k int, rng *rand.Rand) []float64 {
	n, dims := data.Dims()
	centroids := make([]float64, 0, k*dims)

	if km.Init == InitRandom {
		for _, i := range rng.Perm(n)[:k] {
			centroids = append(centroids, data.RawRowView(i)...)
		}
		return centroids
	}

	first := rng.IntN(n)
	centroids = append(centroids, data.RawRowView(first)...)

	// d2[i] is the squared distance from row i to its nearest chosen centroid.
	d2 := make([]float64, n)
	for i := range d2 {
		d2[i] = squaredEuclidean(data.RawRowView(i), data.RawRowView(first))
	}

	for c := 1; c < k; c++ {
		next := sampleProportional(d2, rng)
		row := data.RawRowView(next)
		centroids = append(centroids, row...)
		for i := range d2 {
			d2[i] = min(d2[i], squaredEuclidean(data.RawRowView(i), row))
		}
	}
	return centroids
}

// sampleProportional draws an index with probability weights[i]/sum(weights).
// When every weight is zero all rows coincide with a chosen centroid, and any
// row is as good as another.
func sampleProportional(weights []float64, rng *rand.Rand) int {
	total := floats.Sum(weights)
	if total <= 0 {
		return rng.IntN(len(weights))
	}
	target := rng.Float64() * total
	var cum float64
	last := 0
	for i, w := range weights {
		if w == 0 {
			continue
		}
		cum += w
		last = i
		if cum > target {
			return i
		}
	}
	return last
}

// lloyd alternates assignment and update steps from the given centroids
// until no label changes or maxIter updates have been made.
func lloyd(data *mat.Dense, k int, centroids []float64, maxIter int) *kmeansRun {
	n, dims := data.Dims()
	labels := make([]int, n)
	for i := range labels {
		labels[i] = -1
	}
	sums := make([]float64, k*dims)
	counts := make([]int, k)

	iterations := 0
	for {
		if !assign(data, centroids, k, labels) {
			break
		}
		if iterations == maxIter {
			break
		}
		iterations++

		clear(sums)
		clear(counts)
		for i := 0; i < n; i++ {
			c := labels[i]
			counts[c]++
			floats.Add(sums[c*dims:(c+1)*dims], data.RawRowView(i))
		}
		for c := 0; c < k; c++ {
			// An empty cluster keeps its previous centroid.
			if counts[c] == 0 {
				continue
			}
			centroid := centroids[c*dims : (c+1)*dims]
			copy(centroid, sums[c*dims:(c+1)*dims])
			floats.Scale(1/float64(counts[c]), centroid)
		}
	}

	var inertia float64
	for i := 0; i < n; i++ {
		c := labels[i]
		inertia += squaredEuclidean(data.RawRowView(i), centroids[c*dims:(c+1)*dims])
	}
	return &kmeansRun{labels: labels, centroids: centroids, inertia: inertia, iterations: iterations}
}

// assign moves every row to its nearest centroid (ties go to the lower
// index) and reports whether any label changed.
func assign(data *mat.Dense, centroids []float64, k int, labels []int) bool {
	n, dims := data.Dims()
	changed := false
	for i := 0; i < n; i++ {
		row := data.RawRowView(i)
		best, bestDist := 0, math.Inf(1)
		for c := 0; c < k; c++ {
			if d := squaredEuclidean(row, centroids[c*dims:(c+1)*dims]); d < bestDist {
				best, bestDist = c, d
			}
		}
		if labels[i] != best {
			labels[i] = best
			changed = true
		}
	}
	return changed
}
