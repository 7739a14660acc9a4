package clustermaker

import (
	"fmt"
	"strings"
)

// Algorithm selects the clustering variant. The set is closed: values only
// enter the package through the constants below or ParseAlgorithm.
type Algorithm string

const (
	// AlgorithmKMeans is Lloyd's K-Means seeded with k distinct random rows.
	AlgorithmKMeans Algorithm = "kmeans"
	// AlgorithmKMeansPlusPlus is Lloyd's K-Means with k-means++ seeding and
	// several restarts.
	AlgorithmKMeansPlusPlus Algorithm = "kmeans++"
	// AlgorithmAgglomerative is bottom-up hierarchical clustering.
	AlgorithmAgglomerative Algorithm = "agglomerative"
)

// Linkage is the inter-cluster distance used by AlgorithmAgglomerative.
type Linkage string

const (
	// LinkageWard merges the pair that least increases within-cluster variance.
	LinkageWard Linkage = "ward"
	// LinkageSingle uses the closest pair of points across two clusters.
	LinkageSingle Linkage = "single"
	// LinkageComplete uses the farthest pair of points across two clusters.
	LinkageComplete Linkage = "complete"
	// LinkageAverage uses the mean distance over all cross-cluster pairs.
	LinkageAverage Linkage = "average"
)

// ParseAlgorithm converts an external identifier into an Algorithm.
// Matching is case-insensitive; "sklearn_kmeans" is accepted as an alias of
// AlgorithmKMeansPlusPlus.
func ParseAlgorithm(s string) (Algorithm, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "kmeans", "k-means":
		return AlgorithmKMeans, nil
	case "kmeans++", "k-means++", "sklearn_kmeans":
		return AlgorithmKMeansPlusPlus, nil
	case "agglomerative", "hierarchical":
		return AlgorithmAgglomerative, nil
	default:
		return "", fmt.Errorf("clustermaker: %q: %w", s, ErrUnknownAlgorithm)
	}
}

// ParseLinkage converts an external identifier into a Linkage.
func ParseLinkage(s string) (Linkage, error) {
	switch l := Linkage(strings.ToLower(strings.TrimSpace(s))); l {
	case LinkageWard, LinkageSingle, LinkageComplete, LinkageAverage:
		return l, nil
	default:
		return "", fmt.Errorf("clustermaker: %q: %w", s, ErrUnknownLinkage)
	}
}

// CentroidBased reports whether the algorithm produces centroids.
func (a Algorithm) CentroidBased() bool {
	return a == AlgorithmKMeans || a == AlgorithmKMeansPlusPlus
}

func (a Algorithm) valid() bool {
	switch a {
	case AlgorithmKMeans, AlgorithmKMeansPlusPlus, AlgorithmAgglomerative:
		return true
	}
	return false
}

func (l Linkage) valid() bool {
	switch l {
	case LinkageWard, LinkageSingle, LinkageComplete, LinkageAverage:
		return true
	}
	return false
}
