// Command clustermaker clusters the rows of a CSV file for one or more k and
// writes labelled data, metrics, descriptive statistics and plots to an
// output directory.
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/TrevorS/clustermaker"
	"github.com/TrevorS/clustermaker/csvio"
	"github.com/TrevorS/clustermaker/internal/logging"
	"github.com/TrevorS/clustermaker/plotting"
	"gonum.org/v1/plot"
)

func main() {
	os.Exit(run(context.Background(), os.Args[1:], os.Stderr))
}

func run(ctx context.Context, args []string, stderr io.Writer) int {
	opts, err := parseFlags(args, stderr)
	if err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return 0
		}
		fmt.Fprintln(stderr, "clustermaker:", err)
		return 2
	}

	log, err := logging.New(stderr, opts.logFormat, opts.logLevel)
	if err != nil {
		fmt.Fprintln(stderr, "clustermaker:", err)
		return 2
	}

	if err := execute(ctx, opts, log); err != nil {
		log.ErrorContext(ctx, "clustermaker failed", "error", err)
		return 1
	}
	return 0
}

func execute(ctx context.Context, opts *options, log *logging.Logger) error {
	ds, err := csvio.ReadFile(opts.input)
	if err != nil {
		return err
	}

	features := opts.features
	if len(features) == 0 {
		features = clustermaker.NumericColumns(ds)
		if len(features) == 0 {
			return fmt.Errorf("%s has no numeric columns", opts.input)
		}
	}

	cfg, err := buildConfig(opts, features)
	if err != nil {
		return err
	}
	if cfg.Elbow {
		if cfg.ElbowK, err = elbowKs(opts.elbowKs, ds.Len()); err != nil {
			return err
		}
	}

	if err := os.MkdirAll(opts.out, 0o755); err != nil {
		return err
	}
	log.InfoContext(ctx, "dataset loaded",
		"path", opts.input,
		"rows", ds.Len(),
		"features", features,
	)

	summary, err := clustermaker.Describe(ds, features)
	if err != nil {
		return err
	}
	if err := writeCSV(ctx, log, "summary", filepath.Join(opts.out, "summary.csv"), func(w io.Writer) error {
		return csvio.WriteSummary(w, summary)
	}); err != nil {
		return err
	}

	start := time.Now()
	rows, err := sweep(ds, cfg, opts.ks, opts.workers)
	if err != nil {
		return err
	}
	log.InfoContext(ctx, "sweep completed", "runs", len(rows), "elapsed", time.Since(start))

	for _, r := range rows {
		log.WithK(r.K).LogRun(ctx, string(cfg.Algorithm), r.Result.Metrics(), nil)
		if err := writeRun(ctx, log, opts, ds, r); err != nil {
			return err
		}
	}

	if err := writeCSV(ctx, log, "metrics", filepath.Join(opts.out, "metrics.csv"), func(w io.Writer) error {
		return csvio.WriteMetrics(w, rows)
	}); err != nil {
		return err
	}
	if p, err := plotting.InertiaByK(rows); err == nil {
		if err := savePlot(ctx, log, p, filepath.Join(opts.out, "inertia.png")); err != nil {
			return err
		}
	}
	if p, err := plotting.SilhouetteByK(rows); err == nil {
		if err := savePlot(ctx, log, p, filepath.Join(opts.out, "silhouette.png")); err != nil {
			return err
		}
	}

	if points, ok := rows[0].Result.Elbow(); ok {
		if err := writeElbow(ctx, log, opts, points); err != nil {
			return err
		}
	}

	if best, ok := clustermaker.BestBySilhouette(rows); ok {
		score, _ := best.Silhouette()
		log.InfoContext(ctx, "best k by silhouette", "k", best.K, "silhouette", score)
	}
	return nil
}

func buildConfig(opts *options, features []string) (clustermaker.Config, error) {
	cfg := clustermaker.DefaultConfig()
	cfg.Features = features
	cfg.Standardize = opts.standardize
	cfg.Seed = opts.seed
	cfg.MaxIter = opts.maxIter
	cfg.NInit = opts.nInit
	cfg.Workers = opts.workers

	var err error
	if cfg.Algorithm, err = clustermaker.ParseAlgorithm(opts.algorithm); err != nil {
		return cfg, err
	}
	if cfg.Linkage, err = clustermaker.ParseLinkage(opts.linkage); err != nil {
		return cfg, err
	}
	switch opts.zeroVariance {
	case "center":
		cfg.ZeroVariance = clustermaker.ZeroVarianceCenter
	case "error":
		cfg.ZeroVariance = clustermaker.ZeroVarianceError
	default:
		return cfg, fmt.Errorf("-zero-variance %q: %w", opts.zeroVariance, clustermaker.ErrInvalidParameter)
	}
	if opts.elbow && !cfg.Algorithm.CentroidBased() {
		return cfg, fmt.Errorf("-elbow needs a centroid-based algorithm, got %q: %w", cfg.Algorithm, clustermaker.ErrInvalidParameter)
	}
	cfg.Elbow = opts.elbow
	return cfg, nil
}

// elbowKs drops the requested elbow k values that exceed the row count.
func elbowKs(requested []int, rows int) ([]int, error) {
	var ks []int
	for _, k := range requested {
		if k <= rows {
			ks = append(ks, k)
		}
	}
	if len(ks) == 0 {
		return nil, fmt.Errorf("-elbow-k: every value exceeds the %d rows of the dataset: %w", rows, clustermaker.ErrInvalidParameter)
	}
	return ks, nil
}

// sweep runs the sweep with the elbow series, if requested, attached to the
// first k only. The series is computed on that run's clustered matrix, so
// standardization is applied exactly once.
func sweep(ds *clustermaker.Dataset, cfg clustermaker.Config, ks []int, workers int) ([]clustermaker.SweepRow, error) {
	if !cfg.Elbow {
		return clustermaker.Sweep(ds, cfg, ks, workers)
	}
	first := cfg
	first.K = ks[0]
	res, err := clustermaker.Run(ds, first)
	if err != nil {
		return nil, fmt.Errorf("sweep k = %d: %w", ks[0], err)
	}
	rows := []clustermaker.SweepRow{{K: ks[0], Result: res}}
	if len(ks) == 1 {
		return rows, nil
	}

	rest := cfg
	rest.Elbow = false
	more, err := clustermaker.Sweep(ds, rest, ks[1:], workers)
	if err != nil {
		return nil, err
	}
	return append(rows, more...), nil
}

// writeRun writes the labelled dataset and, with two or more features, the
// scatter plot of one sweep row.
func writeRun(ctx context.Context, log *logging.Logger, opts *options, ds *clustermaker.Dataset, r clustermaker.SweepRow) error {
	path := filepath.Join(opts.out, fmt.Sprintf("clustered_k%d.csv", r.K))
	if err := writeCSV(ctx, log, "labels", path, func(w io.Writer) error {
		return csvio.WriteLabeled(w, ds, r.Result.Labels(), csvio.DefaultLabelColumn)
	}); err != nil {
		return err
	}

	if len(r.Result.FeatureNames()) < 2 {
		return nil
	}
	p, err := plotting.Scatter(r.Result, opts.plotX, opts.plotY)
	if err != nil {
		return err
	}
	return savePlot(ctx, log, p, filepath.Join(opts.out, fmt.Sprintf("plot_k%d.png", r.K)))
}

// writeElbow writes the elbow series as CSV and as a line plot.
func writeElbow(ctx context.Context, log *logging.Logger, opts *options, points []clustermaker.ElbowPoint) error {
	if err := writeCSV(ctx, log, "elbow", filepath.Join(opts.out, "elbow.csv"), func(w io.Writer) error {
		return csvio.WriteElbow(w, points)
	}); err != nil {
		return err
	}
	p, err := plotting.Elbow(points)
	if err != nil {
		return err
	}
	return savePlot(ctx, log, p, filepath.Join(opts.out, "elbow.png"))
}

func writeCSV(ctx context.Context, log *logging.Logger, kind, path string, write func(io.Writer) error) error {
	err := csvio.WriteFile(path, write)
	log.LogArtifact(ctx, kind, path, err)
	return err
}

func savePlot(ctx context.Context, log *logging.Logger, p *plot.Plot, path string) error {
	err := plotting.Save(p, path)
	log.LogArtifact(ctx, "plot", path, err)
	return err
}
