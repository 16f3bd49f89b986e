// SPDX-License-Identifier: MIT

// Package prim defines the Tree result, options and sentinel errors for
// Prim's MST computation.
package prim

import (
	"errors"
	"math"
)

// ErrNilGraph indicates Prim was called without a graph.
var ErrNilGraph = errors.New("prim: graph is nil")

// ErrEmptyGraph indicates the graph has no vertices, so no root exists.
var ErrEmptyGraph = errors.New("prim: graph has no vertices")

// ErrRootOutOfRange indicates the requested root is not a vertex of the graph.
var ErrRootOutOfRange = errors.New("prim: root vertex out of range")

// Infinity is the key of a vertex the tree never reached.
const Infinity int64 = math.MaxInt64

// NoParent is the parent of the root and of every unreached vertex.
const NoParent = -1

// DefaultRoot is the vertex Prim grows from unless WithRoot overrides it.
const DefaultRoot = 0

// Options configures a Prim run.
type Options struct {
	// Root is the vertex the tree is grown from.
	Root int
}

// Option configures Options.
type Option func(*Options)

// WithRoot returns an Option that sets the starting vertex.
func WithRoot(root int) Option {
	return func(opts *Options) {
		opts.Root = root
	}
}

// DefaultOptions returns Options rooted at DefaultRoot.
func DefaultOptions() Options {
	return Options{Root: DefaultRoot}
}

// TreeEdge is one (Parent, Vertex) link of the spanning tree.
type TreeEdge struct {
	Parent int
	Vertex int
	Weight int64
}

// Tree is the result of Prim: per-vertex parent, key and in-tree arrays
// indexed by vertex id.
//
// For the root, Parent is NoParent and Key is 0. For a vertex the algorithm
// never reached (disconnected input), InTree is false, Parent is NoParent and
// Key is Infinity.
type Tree struct {
	Root   int
	Parent []int
	Key    []int64
	InTree []bool
}

// Order returns the number of vertices covered by the arrays.
func (t *Tree) Order() int { return len(t.Key) }

// Reached reports whether v was connected to the root.
func (t *Tree) Reached(v int) bool {
	return v >= 0 && v < len(t.InTree) && t.InTree[v]
}

// Edges returns the tree links for every reached non-root vertex in
// increasing vertex order.
// Complexity: O(N).
func (t *Tree) Edges() []TreeEdge {
	out := make([]TreeEdge, 0, len(t.Key))
	for v := range t.Key {
		if v == t.Root || !t.Reached(v) {
			continue
		}
		out = append(out, TreeEdge{Parent: t.Parent[v], Vertex: v, Weight: t.Key[v]})
	}

	return out
}

// Unreached returns the vertices the tree does not span, in increasing order.
func (t *Tree) Unreached() []int {
	var out []int
	for v := range t.Key {
		if !t.Reached(v) {
			out = append(out, v)
		}
	}

	return out
}

// Spanning reports whether every vertex was reached.
func (t *Tree) Spanning() bool { return len(t.Unreached()) == 0 }

// TotalWeight sums the keys of reached non-root vertices. Unreached vertices
// contribute nothing. The sum must fit in int64.
// Complexity: O(N).
func (t *Tree) TotalWeight() int64 {
	var total int64
	for v, k := range t.Key {
		if v == t.Root || !t.Reached(v) {
			continue
		}
		total += k
	}

	return total
}
