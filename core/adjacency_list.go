// SPDX-License-Identifier: MIT

package core

import (
	"bufio"
	"io"
	"strconv"
)

// Order returns the number of vertices N.
// Complexity: O(1).
func (g *Graph) Order() int { return len(g.adj) }

// Size returns the number of edges inserted at construction.
// Complexity: O(1).
func (g *Graph) Size() int { return g.edges }

// Empty reports whether the graph was built with zero vertices.
func (g *Graph) Empty() bool { return len(g.adj) == 0 }

// Neighbors returns a copy of v's adjacency list in insertion order.
//
// Errors:
//   - ErrVertexOutOfRange : v outside [0, N).
//
// Complexity: O(deg(v)).
func (g *Graph) Neighbors(v int) ([]Neighbor, error) {
	if v < 0 || v >= len(g.adj) {
		return nil, ErrVertexOutOfRange
	}
	out := make([]Neighbor, len(g.adj[v]))
	copy(out, g.adj[v])

	return out, nil
}

// EachNeighbor calls fn for every neighbor of v in insertion order without
// copying the list. Out-of-range v is a no-op.
func (g *Graph) EachNeighbor(v int, fn func(Neighbor)) {
	if v < 0 || v >= len(g.adj) {
		return
	}
	for _, nb := range g.adj[v] {
		fn(nb)
	}
}

// WriteAdjacencyList renders one line per vertex in increasing id order:
//
//	Adj[i] -> (n,w) (n,w)
//
// Every pair is followed by a single space; the line ends with '\n'.
// Vertices without neighbors render as "Adj[i] -> ".
//
// Complexity: O(N + E).
func (g *Graph) WriteAdjacencyList(w io.Writer) error {
	bw := bufio.NewWriter(w)
	buf := make([]byte, 0, 64)
	for i, nbrs := range g.adj {
		buf = buf[:0]
		buf = append(buf, "Adj["...)
		buf = strconv.AppendInt(buf, int64(i), 10)
		buf = append(buf, "] -> "...)
		for _, nb := range nbrs {
			buf = append(buf, '(')
			buf = strconv.AppendInt(buf, int64(nb.Vertex), 10)
			buf = append(buf, ',')
			buf = strconv.AppendInt(buf, nb.Weight, 10)
			buf = append(buf, ") "...)
		}
		buf = append(buf, '\n')
		if _, err := bw.Write(buf); err != nil {
			return err
		}
	}

	return bw.Flush()
}
