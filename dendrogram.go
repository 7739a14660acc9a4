package clustermaker

import (
	"cmp"
	"slices"
)

// Merge is one step of a dendrogram. Left and Right are cluster IDs: the
// original points are 0..n-1 and the cluster created by step s is n+s, the
// same numbering scipy uses for its linkage matrices.
type Merge struct {
	Left     int
	Right    int
	Distance float64
	Size     int
}

// Dendrogram is the n-1 merges of a hierarchical clustering in the order
// they happened.
type Dendrogram []Merge

// Cut applies the first n-k merges of d and returns the resulting labels for
// the n points. Clusters are numbered 0..k-1 in order of first appearance by
// row, so the labels do not depend on merge IDs.
func (d Dendrogram) Cut(n, k int) []int {
	uf := newUnionFind(n)
	for _, m := range d[:max(n-k, 0)] {
		uf.merge(uf.find(m.Left), uf.find(m.Right))
	}

	labels := make([]int, n)
	ids := make(map[int]int, k)
	for i := range labels {
		root := uf.find(i)
		label, ok := ids[root]
		if !ok {
			label = len(ids)
			ids[root] = label
		}
		labels[i] = label
	}
	return labels
}

// edge is a weighted edge of a minimum spanning tree.
type edge struct {
	from, to int
	weight   float64
}

// singleLinkage turns MST edges into a single-linkage dendrogram. Edges are
// applied in order of increasing weight (Kruskal order); equal weights keep
// the order the MST produced them in.
func singleLinkage(mst []edge, n int) Dendrogram {
	if len(mst) == 0 {
		return Dendrogram{}
	}

	sorted := slices.Clone(mst)
	slices.SortStableFunc(sorted, func(a, b edge) int {
		return cmp.Compare(a.weight, b.weight)
	})

	uf := newUnionFind(n)
	out := make(Dendrogram, 0, len(sorted))
	for _, e := range sorted {
		a, b := uf.find(e.from), uf.find(e.to)
		id := uf.merge(a, b)
		out = append(out, Merge{Left: a, Right: b, Distance: e.weight, Size: uf.size[id]})
	}
	return out
}
