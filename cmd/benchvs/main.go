// Package main provides the CLI entry point for benchvs, a suite of
// micro-benchmarks comparing idiomatic ways to perform common Go
// tasks, plus a runner that executes them and summarizes outcomes.
package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/benchvs/benchvs/report"
	"github.com/benchvs/benchvs/runner"
)

func main() {
	level := new(slog.LevelVar)
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: level,
	}))

	root := newRootCmd(logger, level)
	if err := root.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(1)
	}
}

func newRootCmd(logger *slog.Logger, level *slog.LevelVar) *cobra.Command {
	var verbose bool

	root := &cobra.Command{
		Use:   "benchvs",
		Short: "Micro-benchmark suite for common Go tasks",
		Long: `Benchvs ships a collection of independent benchmark programs, each
comparing several idiomatic ways to perform one common task (string
building, map access, JSON encoding, concurrency dispatch, ...) and
printing a comparison table plus a recommendation. The runner builds
and executes a selected subset and summarizes pass/fail.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRun: func(_ *cobra.Command, _ []string) {
			if verbose {
				level.Set(slog.LevelDebug)
			}
		},
	}

	root.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false,
		"Enable debug logging")

	root.AddCommand(newRunCmd(logger))
	root.AddCommand(newListCmd())

	return root
}

func newRunCmd(logger *slog.Logger) *cobra.Command {
	var (
		category      string
		quick         bool
		benchmarksDir string
		binDir        string
		skipBuild     bool
		outputJSON    bool
	)

	cmd := &cobra.Command{
		Use:   "run",
		Short: "Build and run benchmarks, then print a summary",
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runBenchmarks(cmd.Context(), logger, runConfig{
				category:      category,
				quick:         quick,
				benchmarksDir: benchmarksDir,
				binDir:        binDir,
				skipBuild:     skipBuild,
				outputJSON:    outputJSON,
			})
		},
	}

	flags := cmd.Flags()
	flags.StringVar(&category, "category", "all",
		"Category to run: basic, advanced, expert, or all")
	flags.BoolVar(&quick, "quick", false,
		"Run with reduced workloads (smoke testing, not measurement)")
	flags.StringVar(&benchmarksDir, "benchmarks-dir", "benchmarks",
		"Path to benchmark source directories")
	flags.StringVar(&binDir, "bin-dir", "bin",
		"Directory for built benchmark binaries")
	flags.BoolVar(&skipBuild, "skip-build", false,
		"Skip building benchmark binaries")
	flags.BoolVar(&outputJSON, "json", false,
		"Output the summary as JSON instead of a table")

	return cmd
}

type runConfig struct {
	category      string
	quick         bool
	benchmarksDir string
	binDir        string
	skipBuild     bool
	outputJSON    bool
}

func runBenchmarks(
	ctx context.Context,
	logger *slog.Logger,
	cfg runConfig,
) error {
	registry := runner.DefaultRegistry()

	// Validate the category filter before building anything; an
	// unknown category must abort with no benchmark executed.
	entries, err := registry.Select(runner.Category(cfg.category))
	if err != nil {
		return err
	}

	logger.Info("starting run",
		slog.String("category", cfg.category),
		slog.Bool("quick", cfg.quick),
		slog.Int("benchmarks", len(entries)),
	)

	binDir, err := filepath.Abs(cfg.binDir)
	if err != nil {
		return fmt.Errorf("resolve bin dir: %w", err)
	}

	if !cfg.skipBuild {
		err = runner.BuildAll(ctx, logger, cfg.benchmarksDir, binDir, entries)
		if err != nil {
			return fmt.Errorf("build benchmarks: %w", err)
		}
	}

	executor := &runner.BinaryExecutor{BinDir: binDir, Logger: logger}
	r := runner.New(registry, executor, logger, os.Stdout)

	results, err := r.Run(ctx, runner.Options{
		Category: runner.Category(cfg.category),
		Quick:    cfg.quick,
	})
	if err != nil {
		return err
	}

	if cfg.outputJSON {
		if err := report.GenerateJSON(os.Stdout, results); err != nil {
			return fmt.Errorf("generate JSON summary: %w", err)
		}
	} else {
		if err := report.Generate(os.Stdout, results); err != nil {
			return fmt.Errorf("generate summary: %w", err)
		}
	}

	if failed := runner.Failed(results); failed > 0 {
		return fmt.Errorf("%d of %d benchmarks failed", failed, len(results))
	}

	return nil
}

func newListCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List registered benchmarks by category",
		RunE: func(cmd *cobra.Command, _ []string) error {
			out := cmd.OutOrStdout()
			registry := runner.DefaultRegistry()

			for _, cat := range registry.Categories() {
				entries := registry.Entries(cat)

				fmt.Fprintf(out, "%s (%d benchmarks):\n", cat, len(entries))

				for i, e := range entries {
					fmt.Fprintf(out, "  %d. %s\n", i+1, e.ID)
				}

				fmt.Fprintln(out)
			}

			return nil
		},
	}
}
