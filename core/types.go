// SPDX-License-Identifier: MIT
//
// File: types.go
// Role: Edge, Neighbor and Graph declarations, sentinel errors, NewGraph.
// Determinism:
//   - Neighbor lists keep insertion order; vertices are addressed 0..N-1.
// AI-HINT (file):
//   - Graph is immutable after NewGraph; there are no mutating methods.
//   - Parallel edges and self-loops are preserved verbatim.

package core

import (
	"errors"
	"fmt"
)

// Sentinel errors for graph construction and queries.
var (
	// ErrNegativeOrder indicates a negative vertex count was requested.
	ErrNegativeOrder = errors.New("core: vertex count must not be negative")

	// ErrVertexOutOfRange indicates a vertex id outside [0, N).
	ErrVertexOutOfRange = errors.New("core: vertex out of range")

	// ErrNegativeWeight indicates an edge with weight < 0.
	ErrNegativeWeight = errors.New("core: negative edge weight")
)

// Edge is an undirected weighted connection between Src and Dest.
//
// Edges are input-only: NewGraph copies them into neighbor lists and does not
// retain the slice.
type Edge struct {
	// Src is one endpoint.
	Src int

	// Dest is the other endpoint.
	Dest int

	// Weight is the non-negative cost of the edge.
	Weight int64
}

// Neighbor is one entry of a vertex's adjacency list.
type Neighbor struct {
	// Vertex is the id of the adjacent vertex.
	Vertex int

	// Weight is the weight of the connecting edge.
	Weight int64
}

// Graph is an immutable adjacency-list representation of an undirected,
// weighted graph over vertices 0..N-1.
//
// Invariant: for every edge (u,v,w) given to NewGraph, adj[u] holds (v,w) and
// adj[v] holds (u,w). A self-loop (u,u,w) therefore appears twice in adj[u].
type Graph struct {
	adj   [][]Neighbor // vertex id → neighbors in insertion order
	edges int          // number of edges inserted
}

// NewGraph builds a Graph with n vertices from edges.
//
// Steps:
//  1. Validate n >= 0.
//  2. Allocate n empty neighbor lists.
//  3. For each edge in order: validate endpoints and weight, then append
//     (Dest,Weight) to Src's list and (Src,Weight) to Dest's list.
//
// No deduplication is performed. n == 0 yields an empty Graph (see Empty).
//
// Errors:
//   - ErrNegativeOrder    : n < 0.
//   - ErrVertexOutOfRange : an endpoint outside [0, n).
//   - ErrNegativeWeight   : an edge weight below zero.
//
// Complexity: O(N + E).
func NewGraph(edges []Edge, n int) (*Graph, error) {
	if n < 0 {
		return nil, ErrNegativeOrder
	}

	g := &Graph{adj: make([][]Neighbor, n)}
	for i, e := range edges {
		if e.Src < 0 || e.Src >= n || e.Dest < 0 || e.Dest >= n {
			return nil, fmt.Errorf("edge %d (%d,%d): %w", i, e.Src, e.Dest, ErrVertexOutOfRange)
		}
		if e.Weight < 0 {
			return nil, fmt.Errorf("edge %d weight %d: %w", i, e.Weight, ErrNegativeWeight)
		}
		g.adj[e.Src] = append(g.adj[e.Src], Neighbor{Vertex: e.Dest, Weight: e.Weight})
		g.adj[e.Dest] = append(g.adj[e.Dest], Neighbor{Vertex: e.Src, Weight: e.Weight})
		g.edges++
	}

	return g, nil
}
