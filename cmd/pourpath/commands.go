package main

import (
	"context"
	"io"
	"log/slog"
	"runtime"
	"time"

	"github.com/spf13/cobra"
)

// solveFlags holds the options of the solve command.
type solveFlags struct {
	hard          bool
	strict        bool
	maxExpansions int
	timeout       time.Duration
	workers       int
	stats         bool
	verbose       bool
	metricsFile   string
}

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:   "pourpath",
		Short: "Solve water-sort puzzles with best-first search",
		Long: `pourpath finds a sequence of pours that sorts every color into its own
bottle. Puzzles are read from YAML files; see "pourpath help solve".`,
		SilenceUsage: true,
	}
	root.AddCommand(newSolveCmd(), newValidateCmd())

	return root
}

func newSolveCmd() *cobra.Command {
	var f solveFlags
	cmd := &cobra.Command{
		Use:   "solve FILE...",
		Short: "Solve every puzzle in the given files",
		Long: `Solve loads every puzzle, solves them in parallel and prints one line per
puzzle in natural name order:

  name: (1, 3) (1, 2)
  name: no solution

Ordinary puzzles use A*, puzzles marked hard (or every puzzle under --hard)
use greedy best-first search. The exit status is non-zero when any puzzle
fails to load, is invalid or hits a limit.`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runSolve(commandContext(cmd), cmd.OutOrStdout(), cmd.ErrOrStderr(), f, args)
		},
	}

	fl := cmd.Flags()
	fl.BoolVar(&f.hard, "hard", false, "use greedy search for every puzzle")
	fl.BoolVar(&f.strict, "strict", false, "require every color to fill exactly one bottle")
	fl.IntVar(&f.maxExpansions, "max-expansions", 0, "expansion limit per puzzle (0 means none)")
	fl.DurationVar(&f.timeout, "timeout", 0, "wall-time limit per puzzle (0 means none)")
	fl.IntVar(&f.workers, "workers", runtime.GOMAXPROCS(0), "puzzles solved in parallel")
	fl.BoolVar(&f.stats, "stats", false, "append search statistics to every line")
	fl.BoolVarP(&f.verbose, "verbose", "v", false, "log search progress to stderr")
	fl.StringVar(&f.metricsFile, "metrics-file", "", "write Prometheus metrics in text format to this file")

	return cmd
}

func newValidateCmd() *cobra.Command {
	var strict bool
	cmd := &cobra.Command{
		Use:   "validate FILE...",
		Short: "Check puzzle files without solving them",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runValidate(cmd.OutOrStdout(), strict, args)
		},
	}
	cmd.Flags().BoolVar(&strict, "strict", false, "require every color to fill exactly one bottle")

	return cmd
}

func commandContext(cmd *cobra.Command) context.Context {
	if ctx := cmd.Context(); ctx != nil {
		return ctx
	}

	return context.Background()
}

// newLogger writes text records to w: warnings and errors by default,
// everything down to debug when verbose.
func newLogger(w io.Writer, verbose bool) *slog.Logger {
	level := slog.LevelWarn
	if verbose {
		level = slog.LevelDebug
	}

	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: level}))
}
