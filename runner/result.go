package runner

import "time"

// Result holds the outcome of one benchmark execution.
type Result struct {
	ID        string        `json:"id"`
	Category  Category      `json:"category"`
	Succeeded bool          `json:"succeeded"`
	Elapsed   time.Duration `json:"elapsed_ns"`

	// Output is the benchmark's captured stdout (its comparison table
	// and decision guide).
	Output string `json:"output,omitempty"`

	// Error holds the failure text for entries that did not succeed:
	// the process error plus whatever the benchmark wrote to stderr.
	Error string `json:"error,omitempty"`
}

// Failed counts the results that did not succeed.
func Failed(results []Result) int {
	n := 0
	for _, r := range results {
		if !r.Succeeded {
			n++
		}
	}

	return n
}
