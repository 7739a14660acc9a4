package csvio

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"slices"
	"strconv"

	"github.com/TrevorS/clustermaker"
	"github.com/klauspost/compress/zstd"
)

// DefaultLabelColumn is the header of the label column appended by
// WriteLabeled when no name is given.
const DefaultLabelColumn = "cluster"

// WriteLabeled writes the rows of ds with one extra integer column holding
// labels[i] for row i.
func WriteLabeled(w io.Writer, ds *clustermaker.Dataset, labels []int, column string) error {
	if len(labels) != ds.Len() {
		return fmt.Errorf("csvio: %d labels for %d rows: %w", len(labels), ds.Len(), clustermaker.ErrInvalidInput)
	}
	if column == "" {
		column = DefaultLabelColumn
	}
	header := ds.Columns()
	if slices.Contains(header, column) {
		return fmt.Errorf("csvio: label column %q already exists: %w", column, clustermaker.ErrInvalidInput)
	}

	cw := csv.NewWriter(w)
	if err := cw.Write(append(header, column)); err != nil {
		return err
	}
	for i := 0; i < ds.Len(); i++ {
		if err := cw.Write(append(ds.Row(i), strconv.Itoa(labels[i]))); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}

// WriteMetrics writes one row per sweep row with the columns k, inertia and
// silhouette. Undefined metrics are left empty.
func WriteMetrics(w io.Writer, rows []clustermaker.SweepRow) error {
	cw := csv.NewWriter(w)
	if err := cw.Write([]string{"k", clustermaker.MetricInertia, clustermaker.MetricSilhouette}); err != nil {
		return err
	}
	for _, r := range rows {
		inertia, iok := r.Inertia()
		silhouette, sok := r.Silhouette()
		if err := cw.Write([]string{strconv.Itoa(r.K), optional(inertia, iok), optional(silhouette, sok)}); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}

// WriteElbow writes an elbow series as k, inertia rows.
func WriteElbow(w io.Writer, points []clustermaker.ElbowPoint) error {
	cw := csv.NewWriter(w)
	if err := cw.Write([]string{"k", clustermaker.MetricInertia}); err != nil {
		return err
	}
	for _, p := range points {
		if err := cw.Write([]string{strconv.Itoa(p.K), formatFloat(p.Inertia)}); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}

// WriteSummary writes descriptive statistics, one row per column.
func WriteSummary(w io.Writer, summaries []clustermaker.ColumnSummary) error {
	cw := csv.NewWriter(w)
	header := []string{"column", "count", "mean", "std", "min", "25%", "50%", "75%", "max"}
	if err := cw.Write(header); err != nil {
		return err
	}
	for _, s := range summaries {
		record := []string{
			s.Column,
			strconv.Itoa(s.Count),
			formatFloat(s.Mean),
			formatFloat(s.Std),
			formatFloat(s.Min),
			formatFloat(s.Q1),
			formatFloat(s.Median),
			formatFloat(s.Q3),
			formatFloat(s.Max),
		}
		if err := cw.Write(record); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}

// CreateFile creates path for writing, compressing with zstd when the name
// ends in ".zst". Close flushes the compressor before closing the file.
func CreateFile(path string) (io.WriteCloser, error) {
	f, err := os.Create(path)
	if err != nil {
		return nil, err
	}
	if !compressed(path) {
		return f, nil
	}
	enc, err := zstd.NewWriter(f)
	if err != nil {
		_ = f.Close()
		return nil, fmt.Errorf("csvio: zstd %s: %w", path, err)
	}
	return &zstdFile{enc: enc, f: f}, nil
}

type zstdFile struct {
	enc *zstd.Encoder
	f   *os.File
}

func (z *zstdFile) Write(p []byte) (int, error) { return z.enc.Write(p) }

func (z *zstdFile) Close() error {
	return errors.Join(z.enc.Close(), z.f.Close())
}

// WriteFile creates path with CreateFile and hands it to write.
func WriteFile(path string, write func(io.Writer) error) (err error) {
	w, err := CreateFile(path)
	if err != nil {
		return err
	}
	defer func() {
		err = errors.Join(err, w.Close())
	}()
	return write(w)
}

func optional(v float64, ok bool) string {
	if !ok {
		return ""
	}
	return formatFloat(v)
}

func formatFloat(v float64) string {
	return strconv.FormatFloat(v, 'g', -1, 64)
}
