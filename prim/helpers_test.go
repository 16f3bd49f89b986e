package prim_test

import (
	"math/rand"
	"sort"

	"github.com/katalvlaran/mstprim/core"
)

// buildTriangle returns 0-1(4), 1-2(2), 0-2(5). Its MST is {0-1, 1-2}, weight 6.
func buildTriangle() *core.Graph {
	g, _ := core.NewGraph([]core.Edge{
		{Src: 0, Dest: 1, Weight: 4},
		{Src: 1, Dest: 2, Weight: 2},
		{Src: 0, Dest: 2, Weight: 5},
	}, 3)

	return g
}

// randomConnected returns a connected edge list over n vertices with
// extra random edges. A chain 0-1-...-(n-1) guarantees connectivity; the
// generator is seeded so the result is reproducible.
func randomConnected(seed int64, n, extra int) []core.Edge {
	r := rand.New(rand.NewSource(seed))
	edges := make([]core.Edge, 0, n-1+extra)
	perm := r.Perm(n)
	for i := 1; i < n; i++ {
		edges = append(edges, core.Edge{Src: perm[i-1], Dest: perm[i], Weight: int64(1 + r.Intn(20))})
	}
	for i := 0; i < extra; i++ {
		edges = append(edges, core.Edge{Src: r.Intn(n), Dest: r.Intn(n), Weight: int64(1 + r.Intn(20))})
	}

	return edges
}

// kruskalWeight is a brute-force reference: sort edges, union-find, sum.
// Self-loops never join two components, so they are skipped naturally.
func kruskalWeight(edges []core.Edge, n int) int64 {
	sorted := append([]core.Edge(nil), edges...)
	sort.SliceStable(sorted, func(i, j int) bool { return sorted[i].Weight < sorted[j].Weight })

	parent := make([]int, n)
	for i := range parent {
		parent[i] = i
	}
	find := func(x int) int {
		for parent[x] != x {
			parent[x] = parent[parent[x]]
			x = parent[x]
		}

		return x
	}

	var total int64
	for _, e := range sorted {
		ru, rv := find(e.Src), find(e.Dest)
		if ru == rv {
			continue
		}
		parent[ru] = rv
		total += e.Weight
	}

	return total
}
