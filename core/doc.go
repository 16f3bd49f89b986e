// SPDX-License-Identifier: MIT

// Package core provides the immutable adjacency-list Graph consumed by the
// MST engine and the report renderer.
//
// A Graph has N vertices addressed 0..N-1 and is built in one shot from an
// edge list:
//
//	g, err := core.NewGraph([]core.Edge{
//		{Src: 0, Dest: 1, Weight: 4},
//		{Src: 1, Dest: 2, Weight: 2},
//	}, 3)
//
// Every edge is stored in both directions, so the adjacency lists are always
// symmetric. Parallel edges and self-loops are kept as given; Prim's algorithm
// tolerates them by weight comparison.
//
// Core Methods:
//
//	NewGraph(edges, n) (*Graph, error)   // O(N+E)
//	Order() int                          // O(1)
//	Size() int                           // O(1)
//	Empty() bool                         // O(1)
//	Neighbors(v) ([]Neighbor, error)     // O(deg v), returns a copy
//	EachNeighbor(v, fn)                  // O(deg v), no copy
//	WriteAdjacencyList(w) error          // O(N+E)
//
// Errors:
//
//	ErrNegativeOrder    - negative vertex count.
//	ErrVertexOutOfRange - vertex id outside [0, N).
//	ErrNegativeWeight   - edge weight below zero.
package core
