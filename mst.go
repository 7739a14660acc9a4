package clustermaker

import "math"

// primMST computes a minimum spanning tree with Prim's algorithm on a dense
// distance matrix (flat, n*n, row-major) and returns its n-1 edges in the
// order the vertices joined the tree. Each edge links the new vertex to the
// tree vertex it is closest to; ties go to the lower vertex index.
func primMST(dist []float64, n int) []edge {
	if n <= 1 {
		return nil
	}

	inTree := make([]bool, n)
	nearest := make([]float64, n) // distance from each vertex to the tree
	via := make([]int, n)         // tree vertex realising nearest

	inTree[0] = true
	for j := 1; j < n; j++ {
		nearest[j] = dist[j]
	}

	edges := make([]edge, 0, n-1)
	for len(edges) < n-1 {
		next := -1
		best := math.Inf(1)
		for j := 0; j < n; j++ {
			if !inTree[j] && (next == -1 || nearest[j] < best) {
				next, best = j, nearest[j]
			}
		}

		edges = append(edges, edge{from: via[next], to: next, weight: best})
		inTree[next] = true

		row := dist[next*n : (next+1)*n]
		for j := 0; j < n; j++ {
			if !inTree[j] && row[j] < nearest[j] {
				nearest[j] = row[j]
				via[j] = next
			}
		}
	}
	return edges
}
