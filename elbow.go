package clustermaker

import (
	"fmt"

	"golang.org/x/sync/errgroup"
	"gonum.org/v1/gonum/mat"
)

// ElbowPoint is the inertia of one independent fit with K clusters.
type ElbowPoint struct {
	K       int
	Inertia float64
}

// Elbow fits c once per value of ks and returns the inertia of each fit, in
// the order of ks. The fits share nothing; up to workers of them run at once
// (workers <= 1 runs them one after another). c must produce centroids.
func Elbow(x mat.Matrix, ks []int, c Clusterer, workers int) ([]ElbowPoint, error) {
	if len(ks) == 0 {
		return nil, fmt.Errorf("clustermaker: elbow needs at least one k: %w", ErrInvalidParameter)
	}
	if c == nil {
		return nil, fmt.Errorf("clustermaker: nil clusterer: %w", ErrInvalidParameter)
	}
	if _, hierarchical := c.(*Agglomerative); hierarchical {
		return nil, fmt.Errorf("clustermaker: elbow needs a centroid-based algorithm: %w", ErrInvalidParameter)
	}

	points := make([]ElbowPoint, len(ks))
	var g errgroup.Group
	g.SetLimit(max(workers, 1))
	for i, k := range ks {
		g.Go(func() error {
			fit, err := c.Fit(x, k)
			if err != nil {
				return fmt.Errorf("clustermaker: elbow k = %d: %w", k, err)
			}
			centroids, ok := fit.Centroids()
			if !ok {
				return fmt.Errorf("clustermaker: elbow k = %d: fit has no centroids: %w", k, ErrInvalidParameter)
			}
			inertia, err := Inertia(x, fit.labels, centroids)
			if err != nil {
				return err
			}
			points[i] = ElbowPoint{K: k, Inertia: inertia}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return points, nil
}
