package clustermaker

// unionFind is a disjoint-set forest over 2*n - 1 elements: the original
// points 0..n-1 plus one node per dendrogram merge, n..2n-2. Merging two
// roots creates a fresh root rather than attaching one to the other, so the
// root of a set is always its dendrogram cluster ID.
type unionFind struct {
	parent []int
	size   []int
	// next is the ID for the next merged cluster, starting at n.
	next int
}

func newUnionFind(n int) *unionFind {
	total := max(2*n-1, 1)
	uf := &unionFind{
		parent: make([]int, total),
		size:   make([]int, total),
		next:   n,
	}
	for i := range uf.parent {
		uf.parent[i] = -1 // root
	}
	for i := 0; i < n; i++ {
		uf.size[i] = 1
	}
	return uf
}

// find returns the root of x, compressing the path behind it.
func (uf *unionFind) find(x int) int {
	root := x
	for uf.parent[root] != -1 {
		root = uf.parent[root]
	}
	for uf.parent[x] != -1 {
		x, uf.parent[x] = uf.parent[x], root
	}
	return root
}

// merge joins the roots a and b under a new cluster ID and returns it.
func (uf *unionFind) merge(a, b int) int {
	id := uf.next
	uf.next++
	uf.parent[a] = id
	uf.parent[b] = id
	uf.size[id] = uf.size[a] + uf.size[b]
	return id
}
