package clustermaker

import "gonum.org/v1/gonum/mat"

// Result is everything one pipeline run produced. It is immutable: every
// accessor returns a copy.
type Result struct {
	algorithm    Algorithm
	linkage      Linkage
	k            int
	featureNames []string
	features     *mat.Dense
	labels       []int
	centroids    *mat.Dense
	dendrogram   Dendrogram
	metrics      Metrics
	elbow        []ElbowPoint
}

// assemble shapes the outputs of a run into a Result, copying everything it
// is given. elbow is nil when no elbow series was requested.
func assemble(cfg Config, features *mat.Dense, fit *Fit, metrics Metrics, elbow []ElbowPoint) *Result {
	r := &Result{
		algorithm:    cfg.Algorithm,
		k:            cfg.K,
		featureNames: append([]string(nil), cfg.Features...),
		features:     mat.DenseCopyOf(features),
		labels:       fit.Labels(),
		metrics:      metrics.Clone(),
	}
	if !cfg.Algorithm.CentroidBased() {
		r.linkage = cfg.Linkage
	}
	if c, ok := fit.Centroids(); ok {
		r.centroids = c
	}
	if d, ok := fit.Dendrogram(); ok {
		r.dendrogram = d
	}
	if elbow != nil {
		r.elbow = append([]ElbowPoint{}, elbow...)
	}
	return r
}

// Algorithm returns the algorithm that produced the labels.
func (r *Result) Algorithm() Algorithm { return r.algorithm }

// Linkage returns the linkage of a hierarchical run, or "" otherwise.
func (r *Result) Linkage() Linkage { return r.linkage }

// K returns the requested number of clusters.
func (r *Result) K() int { return r.k }

// Labels returns the cluster label of every input row, in row order.
func (r *Result) Labels() []int { return append([]int(nil), r.labels...) }

// Centroids returns the centroids in the clustered feature space, if the
// algorithm defines them.
func (r *Result) Centroids() (*mat.Dense, bool) {
	if r.centroids == nil {
		return nil, false
	}
	return mat.DenseCopyOf(r.centroids), true
}

// Dendrogram returns the merge history of a hierarchical run.
func (r *Result) Dendrogram() (Dendrogram, bool) {
	if r.dendrogram == nil {
		return nil, false
	}
	return append(Dendrogram(nil), r.dendrogram...), true
}

// Metrics returns the metrics defined for the run.
func (r *Result) Metrics() Metrics { return r.metrics.Clone() }

// Elbow returns the elbow series if one was requested.
func (r *Result) Elbow() ([]ElbowPoint, bool) {
	if r.elbow == nil {
		return nil, false
	}
	return append([]ElbowPoint(nil), r.elbow...), true
}

// Features returns the matrix that was clustered: the selected columns,
// standardized when the run asked for it.
func (r *Result) Features() *mat.Dense { return mat.DenseCopyOf(r.features) }

// FeatureNames returns the selected column names in matrix column order.
func (r *Result) FeatureNames() []string { return append([]string(nil), r.featureNames...) }
