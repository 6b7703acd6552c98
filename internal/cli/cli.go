// Package cli implements the frontier command-line interface.
//
// This package provides the benchmark harness driving both traversal
// engines over synthetic or file-loaded graphs, and a renderer that draws
// the BFS level structure. The CLI is built using cobra with verbose
// logging via the charmbracelet/log library.
//
// # Commands
//
//   - bench:  build or load a graph, run the sequential and parallel
//     traversals, report wall-clock timings, speedup, and the
//     level-equality check
//   - render: emit Graphviz DOT (or SVG) of the graph ranked by BFS level
//
// # Logging
//
// All commands support --verbose (-v) for debug-level logging. Loggers are
// passed through context.Context.
package cli

import (
	"context"
	"os"

	charmlog "github.com/charmbracelet/log"
	"github.com/spf13/cobra"
)

// Execute runs the frontier CLI and returns an error if any command fails.
//
// The root command wires the bench and render subcommands and attaches a
// context logger whose level follows the --verbose flag.
func Execute(ctx context.Context) error {
	var verbose bool

	root := &cobra.Command{
		Use:          "frontier",
		Short:        "frontier benchmarks parallel BFS against a sequential baseline",
		Long:         `frontier runs a level-synchronous parallel breadth-first search and a sequential reference over the same graph, verifies the two agree on every level, and reports timings and speedup.`,
		SilenceUsage: true,
		PersistentPreRun: func(cmd *cobra.Command, _ []string) {
			level := charmlog.InfoLevel
			if verbose {
				level = charmlog.DebugLevel
			}
			cmd.SetContext(withLogger(cmd.Context(), newLogger(os.Stderr, level)))
		},
	}
	root.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable verbose logging")

	root.AddCommand(newBenchCmd())
	root.AddCommand(newRenderCmd())

	return root.ExecuteContext(ctx)
}
