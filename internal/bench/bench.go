// Package bench is the shared harness for the benchmark programs: it
// reads workload parameters from the environment, times alternative
// implementations of one operation, and renders an aligned comparison
// table with a decision guide.
package bench

import (
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/spf13/cast"
)

// Sink defeats dead-code elimination: timing loops assign their
// results here so the compiler cannot drop the measured work.
var Sink any

// Param reads an integer workload parameter from the environment,
// falling back to def when the variable is unset or not a number.
func Param(key string, def int) int {
	raw, ok := os.LookupEnv(key)
	if !ok {
		return def
	}

	v, err := cast.ToIntE(raw)
	if err != nil {
		return def
	}

	return v
}

// Fatalf reports an internal benchmark error on stderr and exits
// nonzero, which the runner records as a failure.
func Fatalf(format string, args ...any) {
	fmt.Fprintf(os.Stderr, format+"\n", args...)
	os.Exit(1)
}

// Row is one measured (or skipped) approach.
type Row struct {
	Name    string
	Total   time.Duration
	Iters   int
	Skipped bool
	Reason  string
}

// B accumulates measurements for one benchmark program.
type B struct {
	title  string
	params []string
	rows   []Row
	guide  []string
}

// New creates a benchmark with a human-readable title.
func New(title string) *B {
	return &B{title: title}
}

// Note records a workload parameter line shown under the title,
// e.g. Note("iterations = %d", n).
func (b *B) Note(format string, args ...any) {
	b.params = append(b.params, fmt.Sprintf(format, args...))
}

// Measure times iters sequential calls of fn and records the total.
func (b *B) Measure(name string, iters int, fn func()) {
	start := time.Now()

	for i := 0; i < iters; i++ {
		fn()
	}

	b.rows = append(b.rows, Row{
		Name:  name,
		Total: time.Since(start),
		Iters: iters,
	})
}

// MeasureOnce times a single call of fn, for workloads that manage
// their own repetition internally.
func (b *B) MeasureOnce(name string, fn func()) {
	b.Measure(name, 1, fn)
}

// Skip records an approach whose capability is unavailable in this
// environment. Skipped rows appear in the table but never fail the
// program.
func (b *B) Skip(name, reason string) {
	b.rows = append(b.rows, Row{Name: name, Skipped: true, Reason: reason})
}

// Guide appends decision-guide lines printed after the table.
func (b *B) Guide(lines ...string) {
	b.guide = append(b.guide, lines...)
}

// Rows returns the recorded rows in measurement order.
func (b *B) Rows() []Row {
	out := make([]Row, len(b.rows))
	copy(out, b.rows)

	return out
}

// Fastest returns the name of the quickest measured row, or "" when
// nothing was measured.
func (b *B) Fastest() string {
	name := ""
	best := time.Duration(0)

	for _, r := range b.rows {
		if r.Skipped {
			continue
		}
		if name == "" || r.Total < best {
			name = r.Name
			best = r.Total
		}
	}

	return name
}

// Print renders the comparison table and decision guide to w.
func (b *B) Print(w io.Writer) {
	fmt.Fprintln(w, b.title)

	if len(b.params) > 0 {
		fmt.Fprintln(w, strings.Join(b.params, ", "))
	}

	fmt.Fprintln(w)
	fmt.Fprintf(w, "%-36s %12s %14s %10s\n",
		"Approach", "Total", "Per op", "vs best")
	fmt.Fprintln(w, strings.Repeat("-", 76))

	best := b.fastestTotal()

	for _, r := range b.rows {
		if r.Skipped {
			fmt.Fprintf(w, "%-36s %s\n",
				r.Name, "skipped ("+r.Reason+")")

			continue
		}

		ratio := "-"
		if best > 0 {
			ratio = fmt.Sprintf("%.2fx", float64(r.Total)/float64(best))
			if r.Total == best {
				ratio += " *"
			}
		}

		fmt.Fprintf(w, "%-36s %12s %14s %10s\n",
			r.Name,
			formatDur(r.Total),
			formatDur(perOp(r)),
			ratio,
		)
	}

	if len(b.guide) > 0 {
		fmt.Fprintln(w)
		fmt.Fprintln(w, "Decision guide:")

		for _, line := range b.guide {
			fmt.Fprintf(w, "  %s\n", line)
		}
	}
}

func (b *B) fastestTotal() time.Duration {
	best := time.Duration(0)

	for _, r := range b.rows {
		if r.Skipped {
			continue
		}
		if best == 0 || r.Total < best {
			best = r.Total
		}
	}

	return best
}

func perOp(r Row) time.Duration {
	if r.Iters <= 0 {
		return r.Total
	}

	return r.Total / time.Duration(r.Iters)
}

func formatDur(d time.Duration) string {
	switch {
	case d >= time.Second:
		return fmt.Sprintf("%.3fs", d.Seconds())
	case d >= time.Millisecond:
		return fmt.Sprintf("%.3fms", float64(d.Microseconds())/1000)
	case d >= time.Microsecond:
		return fmt.Sprintf("%.1fµs", float64(d.Nanoseconds())/1000)
	default:
		return fmt.Sprintf("%dns", d.Nanoseconds())
	}
}
