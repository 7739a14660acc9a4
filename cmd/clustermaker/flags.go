package main

import (
	"flag"
	"fmt"
	"io"
	"strconv"
	"strings"
)

type options struct {
	input        string
	features     []string
	algorithm    string
	ks           []int
	standardize  bool
	zeroVariance string
	linkage      string
	seed         uint64
	maxIter      int
	nInit        int
	elbow        bool
	elbowKs      []int
	out          string
	workers      int
	plotX, plotY int
	logLevel     string
	logFormat    string
}

func parseFlags(args []string, stderr io.Writer) (*options, error) {
	fs := flag.NewFlagSet("clustermaker", flag.ContinueOnError)
	fs.SetOutput(stderr)

	var (
		opts     options
		features string
		ks       string
		elbowKs  string
	)
	fs.StringVar(&opts.input, "input", "", "input CSV file with a header row (.zst is decompressed)")
	fs.StringVar(&features, "features", "", "comma-separated feature columns (default: every numeric column)")
	fs.StringVar(&opts.algorithm, "algorithm", "kmeans++", "kmeans, kmeans++ (alias sklearn_kmeans) or agglomerative")
	fs.StringVar(&ks, "k", "3", "cluster counts: a list (2,3,5) or a range (2-8)")
	fs.BoolVar(&opts.standardize, "standardize", true, "z-score features before clustering")
	fs.StringVar(&opts.zeroVariance, "zero-variance", "center", "constant feature policy: center or error")
	fs.StringVar(&opts.linkage, "linkage", "ward", "agglomerative linkage: ward, single, complete or average")
	fs.Uint64Var(&opts.seed, "seed", 42, "random seed for centroid initialization")
	fs.IntVar(&opts.maxIter, "max-iter", 300, "maximum Lloyd iterations per K-Means restart")
	fs.IntVar(&opts.nInit, "n-init", 0, "K-Means restarts (0: 1 for kmeans, 10 for kmeans++)")
	fs.BoolVar(&opts.elbow, "elbow", false, "compute the elbow series (centroid-based algorithms)")
	fs.StringVar(&elbowKs, "elbow-k", "1-10", "k values of the elbow series")
	fs.StringVar(&opts.out, "out", "clustermaker_output", "output directory")
	fs.IntVar(&opts.workers, "workers", 1, "goroutines for independent runs and distance matrices")
	fs.IntVar(&opts.plotX, "plot-x", 0, "feature index on the scatter x axis")
	fs.IntVar(&opts.plotY, "plot-y", 1, "feature index on the scatter y axis")
	fs.StringVar(&opts.logLevel, "log-level", "info", "debug, info, warn or error")
	fs.StringVar(&opts.logFormat, "log-format", "text", "text or json")

	if err := fs.Parse(args); err != nil {
		return nil, err
	}
	if opts.input == "" {
		return nil, fmt.Errorf("-input is required")
	}
	if features != "" {
		for _, f := range strings.Split(features, ",") {
			opts.features = append(opts.features, strings.TrimSpace(f))
		}
	}

	var err error
	if opts.ks, err = parseKList(ks); err != nil {
		return nil, fmt.Errorf("-k: %w", err)
	}
	if opts.elbowKs, err = parseKList(elbowKs); err != nil {
		return nil, fmt.Errorf("-elbow-k: %w", err)
	}
	return &opts, nil
}

// parseKList accepts "3", "2,3,5", "2-8" and mixes such as "2-4,8".
func parseKList(s string) ([]int, error) {
	var ks []int
	for _, part := range strings.Split(s, ",") {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}
		if lo, hi, ok := strings.Cut(part, "-"); ok {
			a, err := strconv.Atoi(strings.TrimSpace(lo))
			if err != nil {
				return nil, fmt.Errorf("range %q: %w", part, err)
			}
			b, err := strconv.Atoi(strings.TrimSpace(hi))
			if err != nil {
				return nil, fmt.Errorf("range %q: %w", part, err)
			}
			if b < a {
				return nil, fmt.Errorf("range %q is empty", part)
			}
			for k := a; k <= b; k++ {
				ks = append(ks, k)
			}
			continue
		}
		k, err := strconv.Atoi(part)
		if err != nil {
			return nil, fmt.Errorf("value %q: %w", part, err)
		}
		ks = append(ks, k)
	}
	if len(ks) == 0 {
		return nil, fmt.Errorf("no k values in %q", s)
	}
	return ks, nil
}
