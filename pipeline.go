package clustermaker

import (
	"fmt"

	"golang.org/x/sync/errgroup"
)

// Config controls one pipeline run.
// Start with [DefaultConfig] and override the fields you need.
type Config struct {
	// Features are the dataset columns to cluster on, in matrix column order.
	// Required.
	Features []string

	// Algorithm selects the clustering variant. Default: AlgorithmKMeansPlusPlus.
	Algorithm Algorithm

	// K is the number of clusters. Must be >= 1 and at most the number of
	// rows. Default: 3.
	K int

	// Standardize rescales every feature to zero mean and unit variance
	// before fitting. Default: true.
	Standardize bool

	// ZeroVariance decides what standardization does with a constant
	// feature. Default: ZeroVarianceCenter.
	ZeroVariance ZeroVariancePolicy

	// Linkage is the merge criterion of AlgorithmAgglomerative and is ignored
	// otherwise. Default: LinkageWard.
	Linkage Linkage

	// Seed makes centroid initialization reproducible. Centroid-based
	// algorithms only. Default: 42.
	Seed uint64

	// MaxIter bounds the Lloyd iterations of each K-Means restart.
	// Default: 300.
	MaxIter int

	// NInit is the number of K-Means restarts. 0 means 1 for AlgorithmKMeans
	// and 10 for AlgorithmKMeansPlusPlus.
	NInit int

	// Elbow requests an elbow series over ElbowK. Centroid-based algorithms
	// only. Default: false.
	Elbow bool

	// ElbowK lists the k values of the elbow series. Empty means 1..10,
	// capped at the number of rows.
	ElbowK []int

	// Workers bounds the goroutines used for the silhouette distance matrix
	// and the elbow fits. 1 keeps everything on the calling goroutine.
	// Default: 1.
	Workers int
}

// DefaultConfig returns a Config with reasonable defaults. Features must
// still be set.
func DefaultConfig() Config {
	return Config{
		Algorithm:    AlgorithmKMeansPlusPlus,
		K:            3,
		Standardize:  true,
		ZeroVariance: ZeroVarianceCenter,
		Linkage:      LinkageWard,
		Seed:         42,
		MaxIter:      300,
		Workers:      1,
	}
}

// applyDefaults fills in zero-valued config fields with their defaults.
func applyDefaults(cfg *Config) {
	if cfg.Algorithm == "" {
		cfg.Algorithm = AlgorithmKMeansPlusPlus
	}
	if cfg.Linkage == "" {
		cfg.Linkage = LinkageWard
	}
	if cfg.MaxIter == 0 {
		cfg.MaxIter = 300
	}
	if cfg.Workers == 0 {
		cfg.Workers = 1
	}
}

// validateConfig checks that cfg fields are valid and returns a descriptive error if not.
func validateConfig(cfg *Config) error {
	if !cfg.Algorithm.valid() {
		return fmt.Errorf("clustermaker: %q: %w", cfg.Algorithm, ErrUnknownAlgorithm)
	}
	if !cfg.Linkage.valid() {
		return fmt.Errorf("clustermaker: %q: %w", cfg.Linkage, ErrUnknownLinkage)
	}
	if cfg.K <= 0 {
		return fmt.Errorf("clustermaker: K must be a positive integer, got %d: %w", cfg.K, ErrInvalidParameter)
	}
	if cfg.MaxIter < 0 {
		return fmt.Errorf("clustermaker: MaxIter must be >= 0, got %d: %w", cfg.MaxIter, ErrInvalidParameter)
	}
	if cfg.NInit < 0 {
		return fmt.Errorf("clustermaker: NInit must be >= 0, got %d: %w", cfg.NInit, ErrInvalidParameter)
	}
	if cfg.Workers < 0 {
		return fmt.Errorf("clustermaker: Workers must be >= 0, got %d: %w", cfg.Workers, ErrInvalidParameter)
	}
	if cfg.Elbow && !cfg.Algorithm.CentroidBased() {
		return fmt.Errorf("clustermaker: elbow needs a centroid-based algorithm, got %q: %w", cfg.Algorithm, ErrInvalidParameter)
	}
	for _, k := range cfg.ElbowK {
		if k <= 0 {
			return fmt.Errorf("clustermaker: ElbowK values must be positive, got %d: %w", k, ErrInvalidParameter)
		}
	}
	return nil
}

// Run executes the pipeline on ds: feature selection, optional
// standardization, clustering, metrics and, if requested, the elbow series.
func Run(ds *Dataset, cfg Config) (*Result, error) {
	applyDefaults(&cfg)
	if err := validateConfig(&cfg); err != nil {
		return nil, err
	}

	x, err := SelectFeatures(ds, cfg.Features)
	if err != nil {
		return nil, err
	}
	if cfg.Standardize {
		if x, err = Standardize(x, cfg.ZeroVariance); err != nil {
			return nil, err
		}
	}

	clusterer, err := NewClusterer(cfg.Algorithm, ClustererOptions{
		Seed:    cfg.Seed,
		MaxIter: cfg.MaxIter,
		NInit:   cfg.NInit,
		Linkage: cfg.Linkage,
	})
	if err != nil {
		return nil, err
	}

	fit, err := clusterer.Fit(x, cfg.K)
	if err != nil {
		return nil, err
	}
	metrics, err := Evaluate(x, fit, cfg.Workers)
	if err != nil {
		return nil, err
	}

	var elbow []ElbowPoint
	if cfg.Elbow {
		ks := cfg.ElbowK
		if len(ks) == 0 {
			n, _ := x.Dims()
			ks = KRange(1, min(10, n))
		}
		if elbow, err = Elbow(x, ks, clusterer, cfg.Workers); err != nil {
			return nil, err
		}
	}

	return assemble(cfg, x, fit, metrics, elbow), nil
}

// KRange returns the integers lo..hi inclusive, or nil when hi < lo.
func KRange(lo, hi int) []int {
	if hi < lo {
		return nil
	}
	ks := make([]int, 0, hi-lo+1)
	for k := lo; k <= hi; k++ {
		ks = append(ks, k)
	}
	return ks
}

// SweepRow is the outcome of one k of a Sweep.
type SweepRow struct {
	K      int
	Result *Result
}

// Inertia returns the row's inertia, if defined.
func (r SweepRow) Inertia() (float64, bool) {
	if r.Result == nil {
		return 0, false
	}
	return r.Result.metrics.Inertia()
}

// Silhouette returns the row's silhouette score, if defined.
func (r SweepRow) Silhouette() (float64, bool) {
	if r.Result == nil {
		return 0, false
	}
	return r.Result.metrics.Silhouette()
}

// Sweep runs the pipeline once per value of ks with cfg.K replaced, and
// returns the rows in the order of ks. Runs are independent; up to workers of
// them execute at once. cfg.Elbow is honoured per run.
func Sweep(ds *Dataset, cfg Config, ks []int, workers int) ([]SweepRow, error) {
	if len(ks) == 0 {
		return nil, fmt.Errorf("clustermaker: sweep needs at least one k: %w", ErrInvalidParameter)
	}

	rows := make([]SweepRow, len(ks))
	var g errgroup.Group
	g.SetLimit(max(workers, 1))
	for i, k := range ks {
		g.Go(func() error {
			run := cfg
			run.K = k
			res, err := Run(ds, run)
			if err != nil {
				return fmt.Errorf("clustermaker: sweep k = %d: %w", k, err)
			}
			rows[i] = SweepRow{K: k, Result: res}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return rows, nil
}

// BestBySilhouette returns the row with the highest silhouette score. Rows
// without a defined score are skipped; ties keep the earliest row. ok is
// false when no row has a score.
func BestBySilhouette(rows []SweepRow) (best SweepRow, ok bool) {
	bestScore := 0.0
	for _, r := range rows {
		s, defined := r.Silhouette()
		if !defined {
			continue
		}
		if !ok || s > bestScore {
			best, bestScore, ok = r, s, true
		}
	}
	return best, ok
}
