// SPDX-License-Identifier: MIT

// Package edgelist reads the plain-text graph description:
//
//	N E
//	src dest weight   (E lines)
//
// A bad header is fatal. A bad edge line becomes a Diagnostic and is dropped;
// parsing continues with the next line.
package edgelist

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/katalvlaran/mstprim/core"
)

// Sentinel errors for fatal input conditions.
var (
	// ErrOpenInput indicates the input file could not be opened.
	ErrOpenInput = errors.New("edgelist: could not open input file")

	// ErrEmptyInput indicates the input file has zero bytes.
	ErrEmptyInput = errors.New("edgelist: input file is empty")

	// ErrInvalidHeader indicates the first line is not "N E" with N, E >= 0.
	ErrInvalidHeader = errors.New("edgelist: invalid format in input file")
)

// Kind classifies a recoverable edge-line problem.
type Kind int

const (
	// KindFormat marks a line that does not start with three 32-bit integers.
	KindFormat Kind = iota + 1

	// KindInvalidEdge marks an endpoint outside [0, N) or a weight <= 0.
	KindInvalidEdge

	// KindMissing marks the declared edge lines absent because the input ended
	// early. One diagnostic covers all of them.
	KindMissing
)

// String returns a short label for logs.
func (k Kind) String() string {
	switch k {
	case KindFormat:
		return "format"
	case KindInvalidEdge:
		return "invalid_edge"
	case KindMissing:
		return "missing"
	default:
		return "unknown"
	}
}

// Diagnostic describes one skipped edge line.
type Diagnostic struct {
	// Line is the 1-based line number in the input.
	Line int

	// Kind classifies the problem.
	Kind Kind

	// Message is the text written to the report.
	Message string
}

// Result is the parsed content of an input file.
type Result struct {
	// Order is the vertex count N from the header.
	Order int

	// Declared is the edge count E from the header.
	Declared int

	// Edges holds the accepted edges in input order.
	Edges []core.Edge

	// Diagnostics holds one entry per skipped line, in input order, plus at
	// most one trailing KindMissing entry.
	Diagnostics []Diagnostic

	// Missing is the number of declared edge lines absent from the input.
	Missing int
}

// Skipped returns the number of declared edge lines that were dropped,
// counting every missing line.
func (r *Result) Skipped() int {
	if r.Missing > 0 {
		return len(r.Diagnostics) - 1 + r.Missing
	}

	return len(r.Diagnostics)
}

const (
	msgFormat  = "Error: Invalid format in input file. Skipping line."
	msgEdge    = "Error: Invalid edge (%d, %d, %d). Skipping."
	msgMissing = "Error: Input file ends early, %d edge line(s) missing. Skipping."
)

// Parse reads a header and exactly Declared edge lines from r.
//
// Steps:
//  1. Read the header; the first two fields must be integers N, E >= 0.
//  2. For i in 1..E read the next line. If the input ends first, record one
//     KindMissing diagnostic for all remaining lines and stop.
//  3. The first three fields must be 32-bit integers src, dest, weight; more
//     fields are ignored. Otherwise (including out-of-range tokens) record
//     KindFormat and continue.
//  4. src and dest must lie in [0, N) and weight must be > 0. Otherwise record
//     KindInvalidEdge and continue.
//  5. Accept the edge.
//
// Lines after the E-th are not read.
//
// Errors:
//   - ErrInvalidHeader : header missing or malformed.
//   - read errors from r, wrapped.
func Parse(r io.Reader) (*Result, error) {
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 64*1024), 1024*1024)

	// 1. Header.
	if !sc.Scan() {
		if err := sc.Err(); err != nil {
			return nil, fmt.Errorf("read header: %w", err)
		}
		return nil, fmt.Errorf("%w: missing header line", ErrInvalidHeader)
	}
	n, e, err := parseHeader(sc.Text())
	if err != nil {
		return nil, err
	}

	res := &Result{Order: n, Declared: e}

	// 2-5. Edge lines.
	for i := 1; i <= e; i++ {
		if !sc.Scan() {
			if err := sc.Err(); err != nil {
				return nil, fmt.Errorf("read line %d: %w", i+1, err)
			}
			res.Missing = e - i + 1
			res.Diagnostics = append(res.Diagnostics, Diagnostic{
				Line:    i + 1,
				Kind:    KindMissing,
				Message: fmt.Sprintf(msgMissing, res.Missing),
			})
			break
		}

		edge, diag, ok := parseEdge(sc.Text(), n)
		if !ok {
			diag.Line = i + 1
			res.Diagnostics = append(res.Diagnostics, diag)
			continue
		}
		res.Edges = append(res.Edges, edge)
	}

	return res, nil
}

// Open opens path for parsing after checking it is a readable, non-empty
// regular file. The caller closes the returned file.
//
// Errors:
//   - ErrOpenInput  : path cannot be opened or is a directory.
//   - ErrEmptyInput : the file has zero bytes.
func Open(path string) (*os.File, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrOpenInput, err)
	}

	st, err := f.Stat()
	if err != nil {
		f.Close()
		return nil, fmt.Errorf("%w: %w", ErrOpenInput, err)
	}
	if st.IsDir() {
		f.Close()
		return nil, fmt.Errorf("%w: %s is a directory", ErrOpenInput, path)
	}
	if st.Size() == 0 {
		f.Close()
		return nil, ErrEmptyInput
	}

	return f, nil
}

// ParseFile opens path with Open and parses it.
func ParseFile(path string) (*Result, error) {
	f, err := Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	return Parse(f)
}

func parseHeader(line string) (int, int, error) {
	fields := strings.Fields(line)
	if len(fields) < 2 {
		return 0, 0, fmt.Errorf("%w: header %q needs two integers", ErrInvalidHeader, line)
	}
	n, err := strconv.ParseInt(fields[0], 10, 32)
	if err != nil {
		return 0, 0, fmt.Errorf("%w: vertex count %q", ErrInvalidHeader, fields[0])
	}
	e, err := strconv.ParseInt(fields[1], 10, 32)
	if err != nil {
		return 0, 0, fmt.Errorf("%w: edge count %q", ErrInvalidHeader, fields[1])
	}
	if n < 0 || e < 0 {
		return 0, 0, fmt.Errorf("%w: negative count in %q", ErrInvalidHeader, line)
	}

	return int(n), int(e), nil
}

func parseEdge(line string, n int) (core.Edge, Diagnostic, bool) {
	fields := strings.Fields(line)
	if len(fields) < 3 {
		return core.Edge{}, Diagnostic{Kind: KindFormat, Message: msgFormat}, false
	}

	// Values are bounded to int32 so no weight reaches prim.Infinity and the
	// MST total of any realistic edge count fits in int64.
	var vals [3]int64
	for i := 0; i < 3; i++ {
		v, err := strconv.ParseInt(fields[i], 10, 32)
		if err != nil {
			return core.Edge{}, Diagnostic{Kind: KindFormat, Message: msgFormat}, false
		}
		vals[i] = v
	}

	src, dest, weight := vals[0], vals[1], vals[2]
	if src < 0 || src >= int64(n) || dest < 0 || dest >= int64(n) || weight <= 0 {
		return core.Edge{}, Diagnostic{
			Kind:    KindInvalidEdge,
			Message: fmt.Sprintf(msgEdge, src, dest, weight),
		}, false
	}

	return core.Edge{Src: int(src), Dest: int(dest), Weight: weight}, Diagnostic{}, true
}
