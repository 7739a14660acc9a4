// Package clustermaker partitions the rows of a numeric table into k clusters
// and reports how good the partition is.
//
// The pipeline selects and validates feature columns, optionally standardizes
// them, clusters them with K-Means or agglomerative clustering and computes
// inertia and the silhouette score, plus an optional elbow series.
//
// Basic usage:
//
//	ds, _ := clustermaker.NewDataset(header, rows)
//	cfg := clustermaker.DefaultConfig()
//	cfg.Features = []string{"x", "y"}
//	cfg.K = 4
//	result, err := clustermaker.Run(ds, cfg)
//	// result.Labels()[i] is the cluster of row i
//	// result.Metrics().Silhouette() is the silhouette score, if defined
//	// result.Centroids() is (centroids, true) for K-Means
//
// # Algorithm selection
//
// Config.Algorithm picks the variant:
//
//	cfg.Algorithm = clustermaker.AlgorithmKMeans          // random init, one run
//	cfg.Algorithm = clustermaker.AlgorithmKMeansPlusPlus  // k-means++ init, best of NInit runs
//	cfg.Algorithm = clustermaker.AlgorithmAgglomerative   // hierarchical, see Config.Linkage
//
// Identifiers coming from outside the program go through ParseAlgorithm and
// ParseLinkage, which are the only places an unknown name can be rejected.
//
// # Errors
//
// Every error wraps one of ErrInput, ErrSchema, ErrParameter or
// ErrComputation, and usually a more specific sentinel such as
// ErrMissingColumn or ErrInvalidParameter. The package never logs.
package clustermaker
