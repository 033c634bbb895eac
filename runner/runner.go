package runner

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/exec"
	"slices"
	"strings"
	"time"
)

// Executor runs a single benchmark entry to completion and returns its
// captured stdout. Implementations must be synchronous.
type Executor interface {
	Run(ctx context.Context, entry Entry, env []string) (string, error)
}

// Options selects which entries a run covers and how.
type Options struct {
	// Category filters by category; empty or CategoryAll runs
	// everything.
	Category Category

	// Quick applies each entry's QuickEnv overrides, shrinking the
	// workload for smoke runs.
	Quick bool
}

// Runner executes benchmark entries strictly sequentially, isolating
// failures per entry.
type Runner struct {
	registry *Registry
	exec     Executor
	logger   *slog.Logger
	out      io.Writer
}

// New creates a Runner writing per-benchmark progress to out.
func New(registry *Registry, executor Executor, logger *slog.Logger, out io.Writer) *Runner {
	return &Runner{
		registry: registry,
		exec:     executor,
		logger:   logger,
		out:      out,
	}
}

// Run executes the selected entries in registry order and returns one
// Result per entry. A benchmark failure marks its own Result and the
// run continues; only an unknown category aborts before anything
// executes.
func (r *Runner) Run(ctx context.Context, opts Options) ([]Result, error) {
	entries, err := r.registry.Select(opts.Category)
	if err != nil {
		return nil, err
	}

	results := make([]Result, 0, len(entries))

	for _, entry := range entries {
		var env []string
		if opts.Quick {
			env = quickEnv(entry)
		}

		fmt.Fprintln(r.out, strings.Repeat("=", 72))
		fmt.Fprintf(r.out, "running %s (%s)\n", entry.ID, entry.Category)

		for _, kv := range env {
			fmt.Fprintf(r.out, "  %s (quick mode)\n", kv)
		}

		fmt.Fprintln(r.out, strings.Repeat("=", 72))

		start := time.Now()
		output, runErr := r.exec.Run(ctx, entry, env)
		elapsed := time.Since(start)

		result := Result{
			ID:       entry.ID,
			Category: entry.Category,
			Elapsed:  elapsed,
			Output:   output,
		}

		if output != "" {
			fmt.Fprint(r.out, output)

			if !strings.HasSuffix(output, "\n") {
				fmt.Fprintln(r.out)
			}
		}

		if runErr != nil {
			result.Error = runErr.Error()

			fmt.Fprintf(r.out, "FAIL %s (%s): %s\n\n",
				entry.ID, formatElapsed(elapsed), result.Error)

			r.logger.Error("benchmark failed",
				slog.String("id", entry.ID),
				slog.Duration("elapsed", elapsed),
				slog.String("error", result.Error),
			)
		} else {
			result.Succeeded = true

			fmt.Fprintf(r.out, "PASS %s (%s)\n\n",
				entry.ID, formatElapsed(elapsed))

			r.logger.Info("benchmark passed",
				slog.String("id", entry.ID),
				slog.Duration("elapsed", elapsed),
			)
		}

		results = append(results, result)
	}

	return results, nil
}

// quickEnv renders an entry's quick overrides as KEY=VALUE pairs in
// deterministic order.
func quickEnv(entry Entry) []string {
	if len(entry.QuickEnv) == 0 {
		return nil
	}

	keys := make([]string, 0, len(entry.QuickEnv))
	for k := range entry.QuickEnv {
		keys = append(keys, k)
	}

	slices.Sort(keys)

	env := make([]string, 0, len(keys))
	for _, k := range keys {
		env = append(env, k+"="+entry.QuickEnv[k])
	}

	return env
}

func formatElapsed(d time.Duration) string {
	if d < time.Second {
		return fmt.Sprintf("%dms", d.Milliseconds())
	}

	return fmt.Sprintf("%.2fs", d.Seconds())
}

// BinaryExecutor runs benchmark entries as prebuilt binaries from a
// bin directory.
type BinaryExecutor struct {
	BinDir string
	Logger *slog.Logger
}

// Run executes the entry's binary, appending env to the inherited
// environment, and returns captured stdout. A spawn failure or
// nonzero exit is returned as an error carrying the captured stderr.
func (e *BinaryExecutor) Run(ctx context.Context, entry Entry, env []string) (string, error) {
	binPath := ResolveBinary(e.BinDir, entry.ID)

	cmd := exec.CommandContext(ctx, binPath)

	if len(env) > 0 {
		cmd.Env = append(os.Environ(), env...)
	}

	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	e.Logger.Debug("starting benchmark",
		slog.String("id", entry.ID),
		slog.String("binary", binPath),
	)

	if err := cmd.Run(); err != nil {
		msg := strings.TrimSpace(stderr.String())
		if msg == "" {
			return stdout.String(), fmt.Errorf("benchmark %s: %w", entry.ID, err)
		}

		return stdout.String(), fmt.Errorf(
			"benchmark %s: %w: %s", entry.ID, err, msg,
		)
	}

	return stdout.String(), nil
}
