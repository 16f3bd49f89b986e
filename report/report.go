// SPDX-License-Identifier: MIT

// Package report renders the output file: banner, skipped-line diagnostics,
// the adjacency list, the MST results and the closing line.
//
// Writer keeps the first write error and turns every later call into a
// no-op, so callers write the whole report and check Err once.
package report

import (
	"fmt"
	"io"

	"github.com/katalvlaran/mstprim/core"
	"github.com/katalvlaran/mstprim/edgelist"
	"github.com/katalvlaran/mstprim/prim"
)

// Fixed report lines.
const (
	Welcome         = "Welcome to the MST Test Program"
	DefaultScenario = "Testing Default Scenario"
	FileData        = "Testing File Data"
	AdjacencyHeader = "Full Graph – Adjacency List:"
	ThankYou        = "Thank you for running the MST Test Program!"
)

// Writer writes report sections to an underlying io.Writer.
type Writer struct {
	w   io.Writer
	err error
}

// NewWriter returns a Writer over w.
func NewWriter(w io.Writer) *Writer { return &Writer{w: w} }

// Err returns the first write error, if any.
func (rw *Writer) Err() error { return rw.err }

func (rw *Writer) printf(format string, args ...interface{}) {
	if rw.err != nil {
		return
	}
	_, rw.err = fmt.Fprintf(rw.w, format, args...)
}

// Banner writes the greeting lines.
func (rw *Writer) Banner() {
	rw.printf("%s\n%s\n%s\n", Welcome, DefaultScenario, FileData)
}

// Diagnostics writes one line per skipped edge line, in input order.
func (rw *Writer) Diagnostics(diags []edgelist.Diagnostic) {
	for _, d := range diags {
		rw.printf("%s\n", d.Message)
	}
}

// Adjacency writes the adjacency header, one line per vertex and a blank line.
func (rw *Writer) Adjacency(g *core.Graph) {
	rw.printf("%s\n", AdjacencyHeader)
	if rw.err != nil {
		return
	}
	if err := g.WriteAdjacencyList(rw.w); err != nil {
		rw.err = err
		return
	}
	rw.printf("\n")
}

// Results writes the per-vertex tree edges and the total for inputName.
//
// Vertices are listed in increasing order, root skipped. A vertex the tree
// did not reach is written as "Edge: none - v weight: unreachable" and left
// out of the total. A nil tree (graph without vertices) writes only the
// total of 0.
func (rw *Writer) Results(inputName string, tree *prim.Tree) {
	rw.printf("Results for %s:\n", inputName)

	var total int64
	if tree != nil {
		for v := 0; v < tree.Order(); v++ {
			if v == tree.Root {
				continue
			}
			if !tree.Reached(v) {
				rw.printf("Edge: none - %d weight: unreachable\n", v)
				continue
			}
			rw.printf("Edge: %d - %d weight: %d\n", tree.Parent[v], v, tree.Key[v])
		}
		total = tree.TotalWeight()
	}
	rw.printf("Total cost of MST: %d\n\n", total)
}

// Closing writes the thank-you line.
func (rw *Writer) Closing() {
	rw.printf("%s\n", ThankYou)
}

// Document bundles everything a full report needs.
type Document struct {
	InputName   string
	Diagnostics []edgelist.Diagnostic
	Graph       *core.Graph
	Tree        *prim.Tree
}

// Write renders doc in the fixed section order and returns the first write
// error.
func Write(w io.Writer, doc Document) error {
	rw := NewWriter(w)
	rw.Banner()
	rw.Diagnostics(doc.Diagnostics)
	rw.Adjacency(doc.Graph)
	rw.Results(doc.InputName, doc.Tree)
	rw.Closing()

	return rw.Err()
}
