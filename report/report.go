// Package report formats benchmark run results into summary tables.
package report

import (
	"encoding/json"
	"fmt"
	"io"
	"time"

	"github.com/benchvs/benchvs/runner"
)

// Generate writes a markdown summary table for the given results. An
// empty result set is reported as such, not as an error: an empty
// selection is a valid run.
func Generate(w io.Writer, results []runner.Result) error {
	fmt.Fprintln(w, "## Run Summary")
	fmt.Fprintln(w)

	if len(results) == 0 {
		fmt.Fprintln(w, "No benchmarks selected.")

		return nil
	}

	fmt.Fprintln(w, "| Benchmark | Category | Status | Elapsed |")
	fmt.Fprintln(w, "|-----------|----------|--------|---------|")

	for _, r := range results {
		status := "pass"
		if !r.Succeeded {
			status = "FAIL"
		}

		fmt.Fprintf(w, "| %s | %s | %s | %s |\n",
			r.ID, r.Category, status, formatDuration(r.Elapsed),
		)
	}

	fmt.Fprintln(w)

	failed := runner.Failed(results)
	passed := len(results) - failed

	fmt.Fprintf(w, "%d passed, %d failed, %d total\n",
		passed, failed, len(results),
	)

	if failed > 0 {
		fmt.Fprintln(w)
		fmt.Fprintln(w, "Failed benchmarks:")

		for _, r := range results {
			if !r.Succeeded {
				fmt.Fprintf(w, "  - %s: %s\n", r.ID, r.Error)
			}
		}
	}

	return nil
}

// GenerateJSON writes results as indented JSON to w.
func GenerateJSON(w io.Writer, results []runner.Result) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")

	return enc.Encode(results)
}

func formatDuration(d time.Duration) string {
	if d < time.Second {
		return fmt.Sprintf("%dms", d.Milliseconds())
	}

	return fmt.Sprintf("%.2fs", d.Seconds())
}
