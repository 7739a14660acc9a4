// Package plotting draws the artifacts of a clustering run with gonum/plot:
// a scatter of two features coloured by cluster and the metric-vs-k charts
// used to choose k.
package plotting

import (
	"fmt"
	"slices"
	"strconv"

	"github.com/TrevorS/clustermaker"
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/plotutil"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"
)

// Default canvas size used by Save.
const (
	Width  = 6 * vg.Inch
	Height = 4 * vg.Inch
)

// Scatter plots feature xCol against feature yCol of the clustered matrix,
// one series per cluster. Centroids, when the run has them, are drawn as
// crosses.
func Scatter(res *clustermaker.Result, xCol, yCol int) (*plot.Plot, error) {
	x := res.Features()
	_, dims := x.Dims()
	if xCol < 0 || yCol < 0 || xCol >= dims || yCol >= dims {
		return nil, fmt.Errorf("plotting: feature columns (%d, %d) out of range for %d features", xCol, yCol, dims)
	}
	names := res.FeatureNames()

	p := plot.New()
	p.Title.Text = fmt.Sprintf("%s, k = %d", res.Algorithm(), res.K())
	p.X.Label.Text = names[xCol]
	p.Y.Label.Text = names[yCol]

	groups := make(map[int]plotter.XYs)
	for i, label := range res.Labels() {
		groups[label] = append(groups[label], plotter.XY{X: x.At(i, xCol), Y: x.At(i, yCol)})
	}
	labels := make([]int, 0, len(groups))
	for label := range groups {
		labels = append(labels, label)
	}
	slices.Sort(labels)

	for _, label := range labels {
		s, err := plotter.NewScatter(groups[label])
		if err != nil {
			return nil, err
		}
		s.GlyphStyle.Color = plotutil.Color(label)
		s.GlyphStyle.Radius = vg.Points(2.5)
		p.Add(s)
		p.Legend.Add("cluster "+strconv.Itoa(label), s)
	}

	if centroids, ok := res.Centroids(); ok {
		k, _ := centroids.Dims()
		pts := make(plotter.XYs, k)
		for c := range k {
			pts[c] = plotter.XY{X: centroids.At(c, xCol), Y: centroids.At(c, yCol)}
		}
		s, err := plotter.NewScatter(pts)
		if err != nil {
			return nil, err
		}
		s.GlyphStyle.Shape = draw.CrossGlyph{}
		s.GlyphStyle.Radius = vg.Points(5)
		p.Add(s)
		p.Legend.Add("centroids", s)
	}
	return p, nil
}

// InertiaByK draws inertia against k for the sweep rows that define it.
func InertiaByK(rows []clustermaker.SweepRow) (*plot.Plot, error) {
	var pts plotter.XYs
	for _, r := range rows {
		if v, ok := r.Inertia(); ok {
			pts = append(pts, plotter.XY{X: float64(r.K), Y: v})
		}
	}
	if len(pts) == 0 {
		return nil, fmt.Errorf("plotting: no row defines %s", clustermaker.MetricInertia)
	}
	return lineByK("Inertia by k", clustermaker.MetricInertia, pts)
}

// Elbow draws an elbow series.
func Elbow(points []clustermaker.ElbowPoint) (*plot.Plot, error) {
	if len(points) == 0 {
		return nil, fmt.Errorf("plotting: empty elbow series")
	}
	pts := make(plotter.XYs, len(points))
	for i, e := range points {
		pts[i] = plotter.XY{X: float64(e.K), Y: e.Inertia}
	}
	return lineByK("Elbow method", clustermaker.MetricInertia, pts)
}

func lineByK(title, metric string, pts plotter.XYs) (*plot.Plot, error) {
	p := plot.New()
	p.Title.Text = title
	p.X.Label.Text = "k"
	p.Y.Label.Text = metric
	p.Add(plotter.NewGrid())

	line, points, err := plotter.NewLinePoints(pts)
	if err != nil {
		return nil, err
	}
	line.Color = plotutil.Color(0)
	points.Color = plotutil.Color(0)
	p.Add(line, points)
	return p, nil
}

// SilhouetteByK draws one bar per sweep row that defines a silhouette score.
func SilhouetteByK(rows []clustermaker.SweepRow) (*plot.Plot, error) {
	var (
		values plotter.Values
		names  []string
	)
	for _, r := range rows {
		if v, ok := r.Silhouette(); ok {
			values = append(values, v)
			names = append(names, strconv.Itoa(r.K))
		}
	}
	if len(values) == 0 {
		return nil, fmt.Errorf("plotting: no row defines %s", clustermaker.MetricSilhouette)
	}

	p := plot.New()
	p.Title.Text = "Silhouette score by k"
	p.X.Label.Text = "k"
	p.Y.Label.Text = clustermaker.MetricSilhouette

	bars, err := plotter.NewBarChart(values, vg.Points(20))
	if err != nil {
		return nil, err
	}
	bars.Color = plotutil.Color(2)
	bars.LineStyle.Width = 0
	p.Add(bars)
	p.NominalX(names...)
	return p, nil
}

// Save writes p to path at the default size. The format follows the file
// extension (png, svg, pdf, ...).
func Save(p *plot.Plot, path string) error {
	return p.Save(Width, Height, path)
}
