// SPDX-License-Identifier: MIT

package main

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/sirupsen/logrus"

	"github.com/katalvlaran/mstprim/config"
	"github.com/katalvlaran/mstprim/core"
	"github.com/katalvlaran/mstprim/edgelist"
	"github.com/katalvlaran/mstprim/prim"
	"github.com/katalvlaran/mstprim/report"
)

// errOpenOutput indicates the output file could not be created.
var errOpenOutput = errors.New("could not open output file")

// fatalError marks an error that has already been logged; execute maps it to
// exit code 1 without printing it again.
type fatalError struct{ err error }

func (e *fatalError) Error() string { return e.err.Error() }
func (e *fatalError) Unwrap() error { return e.err }

// runner executes one MST run: prompt, parse, build, compute, report.
type runner struct {
	prompt *prompter
	stdout io.Writer
	log    *logrus.Entry
}

func (r *runner) fail(msg string, err error) error {
	r.log.WithError(err).Error(msg)
	return &fatalError{err: err}
}

// writeBanner writes the banner alone to w; write errors are logged at debug
// level and otherwise dropped.
func (r *runner) writeBanner(w io.Writer) {
	bw := bufio.NewWriter(w)
	rw := report.NewWriter(bw)
	rw.Banner()
	if err := rw.Err(); err != nil {
		r.log.WithError(err).Debug("writing banner")
		return
	}
	if err := bw.Flush(); err != nil {
		r.log.WithError(err).Debug("flushing banner")
	}
}

func (r *runner) run(cfg *config.Config) (err error) {
	fmt.Fprintln(r.stdout, report.Welcome)

	if cfg.InputPath == "" {
		if cfg.InputPath, err = r.prompt.ask("Enter the name of the input file: "); err != nil {
			return r.fail("reading input file name", err)
		}
	}
	if cfg.OutputPath == "" {
		if cfg.OutputPath, err = r.prompt.ask("Enter the name of the output file: "); err != nil {
			return r.fail("reading output file name", err)
		}
	}

	in, err := edgelist.Open(cfg.InputPath)
	if err != nil {
		if errors.Is(err, edgelist.ErrEmptyInput) {
			return r.fail("Error: Input file is empty.", err)
		}
		return r.fail("Error: Could not open input file.", err)
	}
	defer in.Close()

	out, err := os.Create(cfg.OutputPath)
	if err != nil {
		return r.fail("Error: Could not open output file.", fmt.Errorf("%w: %w", errOpenOutput, err))
	}
	defer func() {
		if cerr := out.Close(); cerr != nil && err == nil {
			err = r.fail("closing output file", cerr)
		}
	}()
	bw := bufio.NewWriter(out)

	fmt.Fprintln(r.stdout, report.DefaultScenario)
	fmt.Fprintln(r.stdout, report.FileData)

	res, err := edgelist.Parse(in)
	if err != nil {
		// The banner still reaches the output file, as it does for a valid input.
		r.writeBanner(out)
		return r.fail("Error: Invalid format in input file.", err)
	}
	for _, d := range res.Diagnostics {
		r.log.WithFields(logrus.Fields{
			"line": d.Line,
			"kind": d.Kind.String(),
		}).Warn("skipping edge line")
	}

	g, err := core.NewGraph(res.Edges, res.Order)
	if err != nil {
		return r.fail("building graph", err)
	}
	if g.Empty() {
		fmt.Fprintln(r.stdout, "Empty Graph Will Be Created")
		r.log.Warn("empty graph will be created")
	}
	r.log.WithFields(logrus.Fields{
		"vertices": g.Order(),
		"edges":    g.Size(),
		"skipped":  res.Skipped(),
	}).Info("graph built")

	tree, err := prim.Prim(g, prim.WithRoot(cfg.Root))
	switch {
	case errors.Is(err, prim.ErrEmptyGraph):
		tree = nil
	case err != nil:
		return r.fail("computing MST", err)
	default:
		fields := logrus.Fields{"total": tree.TotalWeight()}
		if unreached := tree.Unreached(); len(unreached) > 0 {
			fields["unreached"] = unreached
			r.log.WithFields(fields).Warn("graph is disconnected; unreached vertices excluded from total")
		} else {
			r.log.WithFields(fields).Info("MST computed")
		}
	}

	if err := report.Write(bw, report.Document{
		InputName:   cfg.InputPath,
		Diagnostics: res.Diagnostics,
		Graph:       g,
		Tree:        tree,
	}); err != nil {
		return r.fail("writing output file", err)
	}
	if err := bw.Flush(); err != nil {
		return r.fail("writing output file", err)
	}

	fmt.Fprintln(r.stdout, report.ThankYou)

	return nil
}
