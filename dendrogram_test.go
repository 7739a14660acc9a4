package clustermaker

import (
	"slices"
	"testing"

	"gonum.org/v1/gonum/mat"
)

func TestUnionFind(t *testing.T) {
	uf := newUnionFind(4)

	a := uf.merge(0, 1)
	if a != 4 {
		t.Fatalf("first merge ID = %d, want 4", a)
	}
	b := uf.merge(uf.find(2), uf.find(3))
	c := uf.merge(uf.find(0), uf.find(3))
	if c != 6 {
		t.Fatalf("third merge ID = %d, want 6", c)
	}
	if b != 5 {
		t.Fatalf("second merge ID = %d, want 5", b)
	}

	for i := 0; i < 4; i++ {
		if got := uf.find(i); got != 6 {
			t.Errorf("find(%d) = %d, want 6", i, got)
		}
	}
	if uf.size[6] != 4 {
		t.Errorf("size of root = %d, want 4", uf.size[6])
	}
	// Path compression points every leaf straight at the root.
	for i := 0; i < 4; i++ {
		if uf.parent[i] != 6 {
			t.Errorf("parent[%d] = %d after find, want 6", i, uf.parent[i])
		}
	}
}

func TestPrimMST_Path(t *testing.T) {
	// Points on a line: the MST is the path and each edge records the
	// neighbour it actually joins, not the previously added vertex.
	x := mat.NewDense(4, 1, []float64{0, 10, 1, 11})
	edges := primMST(PairwiseDistances(x), 4)

	want := []edge{
		{from: 0, to: 2, weight: 1},
		{from: 2, to: 1, weight: 9},
		{from: 1, to: 3, weight: 1},
	}
	if !slices.Equal(edges, want) {
		t.Fatalf("edges = %v, want %v", edges, want)
	}
}

func TestPrimMST_TotalWeight(t *testing.T) {
	x := mustMatrix(t, blobs([][]float64{{0, 0}, {5, 5}}, 20, 2, 8))
	n, _ := x.Dims()
	dist := PairwiseDistances(x)
	edges := primMST(dist, n)
	if len(edges) != n-1 {
		t.Fatalf("got %d edges, want %d", len(edges), n-1)
	}

	// Every vertex is reached, and each edge weight is the true distance.
	seen := make([]bool, n)
	seen[0] = true
	var total float64
	for _, e := range edges {
		if !seen[e.from] {
			t.Fatalf("edge %v starts outside the tree", e)
		}
		if seen[e.to] {
			t.Fatalf("edge %v revisits a vertex", e)
		}
		seen[e.to] = true
		if e.weight != dist[e.from*n+e.to] {
			t.Errorf("edge %v weight differs from distance %v", e, dist[e.from*n+e.to])
		}
		total += e.weight
	}

	// Kruskal on the same graph must agree on the total weight.
	var all []edge
	for i := 0; i < n; i++ {
		for j := i + 1; j < n; j++ {
			all = append(all, edge{from: i, to: j, weight: dist[i*n+j]})
		}
	}
	slices.SortStableFunc(all, func(a, b edge) int {
		switch {
		case a.weight < b.weight:
			return -1
		case a.weight > b.weight:
			return 1
		}
		return 0
	})
	uf := newUnionFind(n)
	var kruskal float64
	for _, e := range all {
		a, b := uf.find(e.from), uf.find(e.to)
		if a != b {
			uf.merge(a, b)
			kruskal += e.weight
		}
	}
	if diff := total - kruskal; diff > 1e-9 || diff < -1e-9 {
		t.Errorf("prim total %v, kruskal total %v", total, kruskal)
	}
}

func TestPrimMST_Trivial(t *testing.T) {
	if edges := primMST([]float64{0}, 1); edges != nil {
		t.Errorf("single vertex: got %v, want nil", edges)
	}
}

func TestSingleLinkage(t *testing.T) {
	mst := []edge{
		{from: 0, to: 2, weight: 1},
		{from: 2, to: 1, weight: 9},
		{from: 1, to: 3, weight: 1},
	}
	got := singleLinkage(mst, 4)
	want := Dendrogram{
		{Left: 0, Right: 2, Distance: 1, Size: 2},
		{Left: 1, Right: 3, Distance: 1, Size: 2},
		{Left: 4, Right: 5, Distance: 9, Size: 4},
	}
	if !slices.Equal(got, want) {
		t.Fatalf("dendrogram = %v, want %v", got, want)
	}
	// The input slice keeps its order.
	if mst[1].weight != 9 {
		t.Error("singleLinkage reordered its input")
	}
}

func TestDendrogramCut(t *testing.T) {
	d := Dendrogram{
		{Left: 0, Right: 2, Distance: 1, Size: 2},
		{Left: 1, Right: 3, Distance: 1, Size: 2},
		{Left: 4, Right: 5, Distance: 9, Size: 4},
	}
	tests := []struct {
		k    int
		want []int
	}{
		{4, []int{0, 1, 2, 3}},
		{3, []int{0, 1, 0, 2}},
		{2, []int{0, 1, 0, 1}},
		{1, []int{0, 0, 0, 0}},
	}
	for _, tt := range tests {
		if got := d.Cut(4, tt.k); !slices.Equal(got, tt.want) {
			t.Errorf("Cut(4, %d) = %v, want %v", tt.k, got, tt.want)
		}
	}
}
