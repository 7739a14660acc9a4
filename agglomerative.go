package clustermaker

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/mat"
)

// Agglomerative is bottom-up hierarchical clustering: every row starts as its
// own cluster and the closest pair under Linkage is merged until k remain.
// It is deterministic; equal distances resolve to the lowest pair of slots.
type Agglomerative struct {
	Linkage Linkage
}

// Fit builds the full dendrogram of x and cuts it at k clusters.
func (a *Agglomerative) Fit(x mat.Matrix, k int) (*Fit, error) {
	data, err := checkFitInput(x, k)
	if err != nil {
		return nil, err
	}
	d, err := a.Dendrogram(data)
	if err != nil {
		return nil, err
	}
	n, _ := data.Dims()
	return &Fit{labels: d.Cut(n, k), dendrogram: d}, nil
}

// Dendrogram returns the complete merge history of the rows of x.
func (a *Agglomerative) Dendrogram(x *mat.Dense) (Dendrogram, error) {
	n, _ := x.Dims()
	dist := PairwiseDistances(x)

	var d Dendrogram
	switch a.Linkage {
	case LinkageSingle:
		d = singleLinkage(primMST(dist, n), n)
	case LinkageWard, LinkageComplete, LinkageAverage:
		d = lanceWilliams(dist, n, a.Linkage)
	default:
		return nil, fmt.Errorf("clustermaker: %q: %w", a.Linkage, ErrUnknownLinkage)
	}
	for s, m := range d {
		if !finite(m.Distance) {
			return nil, fmt.Errorf("clustermaker: merge %d distance is not finite: %w", s, ErrOverflow)
		}
	}
	return d, nil
}

// lanceWilliams runs the generic agglomeration loop on a distance matrix it
// takes ownership of, updating distances to a merged cluster with the
// Lance-Williams recurrence for the given linkage.
//
// Each active slot i caches nn[i], its closest active slot j > i, so a merge
// step costs O(n) to pick the pair plus the rows whose cache it invalidates.
// The merged cluster reuses the lower slot.
func lanceWilliams(dist []float64, n int, linkage Linkage) Dendrogram {
	out := make(Dendrogram, 0, max(n-1, 0))
	if n <= 1 {
		return out
	}

	active := make([]bool, n)
	size := make([]int, n)
	id := make([]int, n)
	nn := make([]int, n)
	nnDist := make([]float64, n)
	for i := range n {
		active[i] = true
		size[i] = 1
		id[i] = i
	}

	at := func(i, j int) float64 { return dist[i*n+j] }
	set := func(i, j int, d float64) {
		dist[i*n+j] = d
		dist[j*n+i] = d
	}
	refresh := func(i int) {
		nn[i], nnDist[i] = -1, math.Inf(1)
		for j := i + 1; j < n; j++ {
			if active[j] && (nn[i] == -1 || at(i, j) < nnDist[i]) {
				nn[i], nnDist[i] = j, at(i, j)
			}
		}
	}
	for i := range n {
		refresh(i)
	}

	for step := 0; step < n-1; step++ {
		i := -1
		for s := 0; s < n; s++ {
			if active[s] && nn[s] != -1 && (i == -1 || nnDist[s] < nnDist[i]) {
				i = s
			}
		}
		j := nn[i]
		dij := nnDist[i]

		ni, nj := size[i], size[j]
		for m := 0; m < n; m++ {
			if !active[m] || m == i || m == j {
				continue
			}
			set(i, m, lanceWilliamsUpdate(linkage, at(i, m), at(j, m), dij, ni, nj, size[m]))
		}

		out = append(out, Merge{Left: id[i], Right: id[j], Distance: dij, Size: ni + nj})
		active[j] = false
		size[i] = ni + nj
		id[i] = n + step

		for m := 0; m < n; m++ {
			if !active[m] {
				continue
			}
			switch {
			case m == i || nn[m] == i || nn[m] == j:
				refresh(m)
			case m < i:
				// Only column i changed in this row.
				if d := at(m, i); d < nnDist[m] || (d == nnDist[m] && i < nn[m]) {
					nn[m], nnDist[m] = i, d
				}
			}
		}
	}
	return out
}

// lanceWilliamsUpdate returns the distance from cluster m to the union of
// clusters i and j, given the distances before the merge and the sizes.
func lanceWilliamsUpdate(linkage Linkage, dim, djm, dij float64, ni, nj, nm int) float64 {
	switch linkage {
	case LinkageComplete:
		return max(dim, djm)
	case LinkageAverage:
		return (float64(ni)*dim + float64(nj)*djm) / float64(ni+nj)
	case LinkageSingle:
		return min(dim, djm)
	default: // LinkageWard
		fi, fj, fm := float64(ni), float64(nj), float64(nm)
		sq := ((fi+fm)*dim*dim + (fj+fm)*djm*djm - fm*dij*dij) / (fi + fj + fm)
		return math.Sqrt(max(sq, 0))
	}
}
