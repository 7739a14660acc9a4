// Package csvio reads clustermaker datasets from CSV and writes the
// pipeline's outputs back as CSV. Paths ending in ".zst" are transparently
// compressed and decompressed with zstd.
package csvio

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/TrevorS/clustermaker"
	"github.com/klauspost/compress/zstd"
)

// ReadDataset parses CSV from r. The first record is the header. Malformed
// CSV and ragged rows fail with clustermaker.ErrInvalidInput.
func ReadDataset(r io.Reader) (*clustermaker.Dataset, error) {
	cr := csv.NewReader(r)
	cr.TrimLeadingSpace = true

	records, err := cr.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("csvio: %w: %w", clustermaker.ErrInvalidInput, err)
	}
	if len(records) == 0 {
		return nil, fmt.Errorf("csvio: no header row: %w", clustermaker.ErrInvalidInput)
	}
	return clustermaker.NewDataset(records[0], records[1:])
}

// ReadFile opens path and parses it with ReadDataset, decompressing it first
// when the name ends in ".zst". Open failures wrap clustermaker.ErrInput.
func ReadFile(path string) (_ *clustermaker.Dataset, err error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("csvio: %w: %w", clustermaker.ErrInput, err)
	}
	defer func() {
		err = errors.Join(err, f.Close())
	}()

	if !compressed(path) {
		return ReadDataset(f)
	}

	dec, err := zstd.NewReader(f)
	if err != nil {
		return nil, fmt.Errorf("csvio: zstd %s: %w: %w", path, clustermaker.ErrInput, err)
	}
	defer dec.Close()
	return ReadDataset(dec)
}

func compressed(path string) bool {
	return strings.HasSuffix(strings.ToLower(path), ".zst")
}
