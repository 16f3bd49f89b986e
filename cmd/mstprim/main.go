// SPDX-License-Identifier: MIT

// Command mstprim reads an edge-list file, computes a Minimum Spanning Tree
// with Prim's algorithm and writes the adjacency list and the tree to an
// output file.
//
// Paths come from arguments, flags, MSTPRIM_* variables or a YAML config
// file; anything still missing is asked for interactively:
//
//	$ mstprim
//	Welcome to the MST Test Program
//	Enter the name of the input file: graph.txt
//	Enter the name of the output file: result.txt
package main

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/katalvlaran/mstprim/config"
)

// Build-time variables set via ldflags.
var version = "0.1.0-dev"

type flags struct {
	configPath string
	input      string
	output     string
	logLevel   string
	logFormat  string
	root       int
}

func main() {
	os.Exit(execute(os.Args[1:], os.Stdin, os.Stdout, os.Stderr))
}

// execute runs the command and maps the outcome to a process exit code:
// 0 on success (skipped edge lines included), 1 on any fatal error.
func execute(args []string, stdin io.Reader, stdout, stderr io.Writer) int {
	if args == nil {
		args = []string{}
	}
	cmd := newRootCmd(stdin, stdout, stderr)
	cmd.SetArgs(args)
	cmd.SetOut(stdout)
	cmd.SetErr(stderr)

	if err := cmd.Execute(); err != nil {
		var fe *fatalError
		if !errors.As(err, &fe) {
			fmt.Fprintln(stderr, "Error:", err)
		}
		return 1
	}

	return 0
}

func newRootCmd(stdin io.Reader, stdout, stderr io.Writer) *cobra.Command {
	var f flags

	cmd := &cobra.Command{
		Use:           "mstprim [input [output]]",
		Short:         "Minimum Spanning Tree of an edge-list file (Prim's algorithm)",
		Version:       version,
		Args:          cobra.MaximumNArgs(2),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := resolveConfig(cmd, f, args)
			if err != nil {
				return err
			}

			log := cfg.NewLogger()
			log.SetOutput(stderr)
			entry := log.WithField("run_id", uuid.NewString())
			entry.WithFields(logrus.Fields{
				"input":  cfg.InputPath,
				"output": cfg.OutputPath,
				"root":   cfg.Root,
			}).Debug("configuration resolved")

			r := &runner{
				prompt: newPrompter(stdin, stdout),
				stdout: stdout,
				log:    entry,
			}

			return r.run(cfg)
		},
	}
	cmd.SetVersionTemplate("{{.Version}}\n")

	fl := cmd.Flags()
	fl.StringVarP(&f.input, "input", "i", "", "input edge-list file (env: "+config.EnvInput+")")
	fl.StringVarP(&f.output, "output", "o", "", "output report file (env: "+config.EnvOutput+")")
	fl.StringVar(&f.configPath, "config", "", "YAML config file")
	fl.IntVar(&f.root, "root", 0, "root vertex for Prim (env: "+config.EnvRoot+")")
	fl.StringVar(&f.logLevel, "log-level", "", "log level: debug|info|warn|error (env: "+config.EnvLogLevel+")")
	fl.StringVar(&f.logFormat, "log-format", "", "log format: text|json (env: "+config.EnvLogFormat+")")

	return cmd
}

// resolveConfig layers flags and positional arguments over config.Load.
// Positional arguments fill input then output when the matching flag is unset.
func resolveConfig(cmd *cobra.Command, f flags, args []string) (*config.Config, error) {
	cfg, err := config.Load(f.configPath)
	if err != nil {
		return nil, err
	}

	if len(args) > 0 && f.input == "" {
		f.input = args[0]
	}
	if len(args) > 1 && f.output == "" {
		f.output = args[1]
	}

	if f.input != "" {
		cfg.InputPath = f.input
	}
	if f.output != "" {
		cfg.OutputPath = f.output
	}
	if f.logLevel != "" {
		cfg.LogLevel = f.logLevel
	}
	if f.logFormat != "" {
		cfg.LogFormat = f.logFormat
	}
	if cmd.Flags().Changed("root") {
		cfg.Root = f.root
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}
