package clustermaker

import (
	"math/rand/v2"
	"testing"

	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/mat"
)

// blobs returns perCluster points around each center, uniformly jittered by
// at most spread in every coordinate, grouped by center.
func blobs(centers [][]float64, perCluster int, spread float64, seed uint64) [][]float64 {
	rng := rand.New(rand.NewPCG(seed, 0))
	var out [][]float64
	for _, c := range centers {
		for range perCluster {
			p := make([]float64, len(c))
			for j, v := range c {
				p[j] = v + (rng.Float64()*2-1)*spread
			}
			out = append(out, p)
		}
	}
	return out
}

func mustMatrix(t testing.TB, rows [][]float64) *mat.Dense {
	t.Helper()
	x, err := MatrixFromRows(rows)
	require.NoError(t, err)
	return x
}

func threeBlobs(t testing.TB) *mat.Dense {
	t.Helper()
	return mustMatrix(t, blobs([][]float64{{0, 0}, {20, 0}, {0, 20}}, 15, 1, 7))
}

// samePartition reports whether a and b group the rows identically, up to a
// renaming of the labels.
func samePartition(a, b []int) bool {
	if len(a) != len(b) {
		return false
	}
	ab := map[int]int{}
	ba := map[int]int{}
	for i := range a {
		if v, ok := ab[a[i]]; ok && v != b[i] {
			return false
		}
		if v, ok := ba[b[i]]; ok && v != a[i] {
			return false
		}
		ab[a[i]] = b[i]
		ba[b[i]] = a[i]
	}
	return true
}

// blockLabels returns the ground-truth labels of blobs output.
func blockLabels(clusters, perCluster int) []int {
	labels := make([]int, 0, clusters*perCluster)
	for c := range clusters {
		for range perCluster {
			labels = append(labels, c)
		}
	}
	return labels
}
