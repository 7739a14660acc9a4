package clustermaker

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/mat"
)

// Clusterer partitions the rows of a feature matrix into k groups.
type Clusterer interface {
	Fit(x mat.Matrix, k int) (*Fit, error)
}

// Fit is the output of a Clusterer. It is immutable: accessors return copies.
type Fit struct {
	labels     []int
	centroids  *mat.Dense
	dendrogram Dendrogram
	iterations int
}

// Labels returns one cluster index per input row, each in [0, k). K-Means
// may leave a cluster empty, in which case its index does not appear.
func (f *Fit) Labels() []int { return append([]int(nil), f.labels...) }

// Centroids returns the k x d centroid matrix and true for centroid-based
// fits, or nil and false for hierarchical fits.
func (f *Fit) Centroids() (*mat.Dense, bool) {
	if f.centroids == nil {
		return nil, false
	}
	return mat.DenseCopyOf(f.centroids), true
}

// Dendrogram returns the full merge history of a hierarchical fit.
func (f *Fit) Dendrogram() (Dendrogram, bool) {
	if f.dendrogram == nil {
		return nil, false
	}
	return append(Dendrogram(nil), f.dendrogram...), true
}

// Iterations returns the number of Lloyd iterations of the winning K-Means
// run, or 0 for hierarchical fits.
func (f *Fit) Iterations() int { return f.iterations }

// ClustererOptions holds the knobs of every variant; each variant reads only
// the fields that apply to it.
type ClustererOptions struct {
	// Seed drives centroid initialization. Centroid-based only.
	Seed uint64
	// MaxIter bounds the Lloyd iterations of a single K-Means run.
	MaxIter int
	// NInit is the number of K-Means restarts; 0 picks the variant default.
	NInit int
	// Linkage is the merge criterion. Hierarchical only.
	Linkage Linkage
}

// DefaultClustererOptions returns the options used by DefaultConfig.
func DefaultClustererOptions() ClustererOptions {
	return ClustererOptions{
		Seed:    42,
		MaxIter: 300,
		Linkage: LinkageWard,
	}
}

// NewClusterer returns the Clusterer for algorithm configured from opts.
func NewClusterer(algorithm Algorithm, opts ClustererOptions) (Clusterer, error) {
	if opts.MaxIter < 0 {
		return nil, fmt.Errorf("clustermaker: MaxIter must be >= 0, got %d: %w", opts.MaxIter, ErrInvalidParameter)
	}
	if opts.NInit < 0 {
		return nil, fmt.Errorf("clustermaker: NInit must be >= 0, got %d: %w", opts.NInit, ErrInvalidParameter)
	}
	if opts.MaxIter == 0 {
		opts.MaxIter = DefaultClustererOptions().MaxIter
	}

	switch algorithm {
	case AlgorithmKMeans:
		return &KMeans{Init: InitRandom, Seed: opts.Seed, MaxIter: opts.MaxIter, NInit: max(opts.NInit, 1)}, nil
	case AlgorithmKMeansPlusPlus:
		nInit := opts.NInit
		if nInit == 0 {
			nInit = 10
		}
		return &KMeans{Init: InitKMeansPlusPlus, Seed: opts.Seed, MaxIter: opts.MaxIter, NInit: nInit}, nil
	case AlgorithmAgglomerative:
		linkage := opts.Linkage
		if linkage == "" {
			linkage = LinkageWard
		}
		if !linkage.valid() {
			return nil, fmt.Errorf("clustermaker: %q: %w", linkage, ErrUnknownLinkage)
		}
		return &Agglomerative{Linkage: linkage}, nil
	default:
		return nil, fmt.Errorf("clustermaker: %q: %w", algorithm, ErrUnknownAlgorithm)
	}
}

// checkMatrix validates the shape contract of a feature matrix: non-nil,
// non-empty and finite.
func checkMatrix(x mat.Matrix) error {
	if x == nil {
		return fmt.Errorf("clustermaker: nil matrix: %w", ErrInvalidInput)
	}
	if d, ok := x.(*mat.Dense); ok && (d == nil || d.IsEmpty()) {
		return fmt.Errorf("clustermaker: empty matrix: %w", ErrInvalidInput)
	}
	n, dims := x.Dims()
	if n == 0 || dims == 0 {
		return fmt.Errorf("clustermaker: matrix shape (%d, %d): %w", n, dims, ErrInvalidInput)
	}
	for i := 0; i < n; i++ {
		for j := 0; j < dims; j++ {
			if v := x.At(i, j); math.IsNaN(v) || math.IsInf(v, 0) {
				return fmt.Errorf("clustermaker: non-finite value at (%d, %d): %w", i, j, ErrInvalidInput)
			}
		}
	}
	return nil
}

// checkFitInput validates the inputs shared by every variant and returns a
// dense copy of x that the variant may read freely.
func checkFitInput(x mat.Matrix, k int) (*mat.Dense, error) {
	if k <= 0 {
		return nil, fmt.Errorf("clustermaker: k must be a positive integer, got %d: %w", k, ErrInvalidParameter)
	}
	if err := checkMatrix(x); err != nil {
		return nil, err
	}
	n, _ := x.Dims()
	if k > n {
		return nil, fmt.Errorf("clustermaker: k = %d exceeds n_samples = %d: %w", k, n, ErrInvalidParameter)
	}
	return mat.DenseCopyOf(x), nil
}
