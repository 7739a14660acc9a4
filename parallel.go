package clustermaker

import (
	"sync"

	"gonum.org/v1/gonum/mat"
)

// PairwiseDistancesParallel computes the same matrix as PairwiseDistances
// using numWorkers goroutines. If numWorkers <= 1 it runs sequentially.
//
// Rows are interleaved across workers (worker w takes rows w, w+W, ...) so
// that the triangular workload is spread evenly. The result is bitwise
// identical to PairwiseDistances.
func PairwiseDistancesParallel(x *mat.Dense, numWorkers int) []float64 {
	n, _ := x.Dims()
	if numWorkers <= 1 || n <= 1 {
		return PairwiseDistances(x)
	}
	numWorkers = min(numWorkers, n)

	result := make([]float64, n*n)
	var wg sync.WaitGroup
	for w := 0; w < numWorkers; w++ {
		wg.Add(1)
		go func(start int) {
			defer wg.Done()
			for i := start; i < n; i += numWorkers {
				fillDistanceRow(x, result, n, i)
			}
		}(w)
	}
	wg.Wait()
	return result
}
