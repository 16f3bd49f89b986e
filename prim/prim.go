// SPDX-License-Identifier: MIT

// Package prim provides Prim's Minimum Spanning Tree algorithm over a
// *core.Graph, growing the tree from a root vertex with a lazy-deletion
// min-heap.
package prim

import (
	"container/heap"

	"github.com/katalvlaran/mstprim/core"
)

// Prim computes a Minimum Spanning Tree of g rooted at opts.Root (default 0).
//
// Error Conditions:
//   - ErrNilGraph       : g == nil.
//   - ErrEmptyGraph     : g has no vertices.
//   - ErrRootOutOfRange : root outside [0, N).
//
// Steps:
//  1. Initialize key[v]=Infinity, parent[v]=NoParent, inTree[v]=false,
//     seen[v]=false; key[root]=0, seen[root]=true.
//  2. Seed the heap with (0, root).
//  3. While the heap is non-empty:
//     a. Pop the entry with the smallest key (ties: lower vertex id).
//     b. If its vertex is already in the tree the entry is stale; skip it.
//     c. Mark the vertex u as in the tree.
//     d. For every neighbor v of u with weight w: if v is not in the tree and
//     either has no candidate edge yet or w < key[v], set key[v]=w,
//     parent[v]=u and push (w, v).
//  4. Return the parent, key and in-tree arrays.
//
// Reachability is tracked in inTree, never inferred from key == Infinity, so
// an edge whose weight equals Infinity still connects its endpoint.
//
// Stale entries are never removed eagerly: the heap has no decrease-key, so a
// vertex may sit in it several times and only its cheapest entry settles it.
//
// A disconnected graph is not an error: vertices outside the root's component
// keep key Infinity and parent NoParent (see Tree.Reached).
//
// Keys are summed into an int64 by Tree.TotalWeight; callers keep the sum of
// edge weights within int64 (edgelist bounds every weight to int32).
//
// Complexity: O(E log V) time, O(V + E) memory.
func Prim(g *core.Graph, opts ...Option) (*Tree, error) {
	if g == nil {
		return nil, ErrNilGraph
	}
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	n := g.Order()
	if n == 0 {
		return nil, ErrEmptyGraph
	}
	if o.Root < 0 || o.Root >= n {
		return nil, ErrRootOutOfRange
	}

	// 1. Initialize per-vertex state.
	key := make([]int64, n)
	parent := make([]int, n)
	inTree := make([]bool, n)
	seen := make([]bool, n) // v has a candidate edge (or is the root)
	for v := 0; v < n; v++ {
		key[v] = Infinity
		parent[v] = NoParent
	}
	key[o.Root] = 0
	seen[o.Root] = true

	// 2. Seed the heap with the root.
	pq := &vertexPQ{{vertex: o.Root, key: 0}}
	heap.Init(pq)

	// 3. Grow the tree.
	for pq.Len() > 0 {
		item := heap.Pop(pq).(pqItem)
		u := item.vertex
		if inTree[u] {
			continue
		}
		inTree[u] = true

		g.EachNeighbor(u, func(nb core.Neighbor) {
			v, w := nb.Vertex, nb.Weight
			if !inTree[v] && (!seen[v] || w < key[v]) {
				seen[v] = true
				key[v] = w
				parent[v] = u
				heap.Push(pq, pqItem{vertex: v, key: w})
			}
		})
	}

	return &Tree{Root: o.Root, Parent: parent, Key: key, InTree: inTree}, nil
}

// pqItem is a (key, vertex) heap entry.
type pqItem struct {
	vertex int
	key    int64
}

// vertexPQ implements heap.Interface as a min-heap ordered by key, then by
// vertex id.
type vertexPQ []pqItem

// Len returns the number of entries. Complexity: O(1).
func (pq vertexPQ) Len() int { return len(pq) }

// Less orders by key ascending; equal keys pop the lower vertex first.
func (pq vertexPQ) Less(i, j int) bool {
	if pq[i].key != pq[j].key {
		return pq[i].key < pq[j].key
	}

	return pq[i].vertex < pq[j].vertex
}

// Swap swaps entries i and j. Complexity: O(1).
func (pq vertexPQ) Swap(i, j int) { pq[i], pq[j] = pq[j], pq[i] }

// Push appends an entry; called by heap.Push.
func (pq *vertexPQ) Push(x interface{}) { *pq = append(*pq, x.(pqItem)) }

// Pop removes and returns the last entry; called by heap.Pop.
func (pq *vertexPQ) Pop() interface{} {
	old := *pq
	n := len(old)
	item := old[n-1]
	*pq = old[:n-1]

	return item
}
