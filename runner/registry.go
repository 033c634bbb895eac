// Package runner sequences the execution of benchmark programs and
// collects per-benchmark outcomes.
package runner

import (
	"fmt"
	"strings"
)

// Category groups benchmarks by difficulty of their subject matter.
type Category string

const (
	CategoryBasic    Category = "basic"
	CategoryAdvanced Category = "advanced"
	CategoryExpert   Category = "expert"

	// CategoryAll selects every registered benchmark.
	CategoryAll Category = "all"
)

// Entry describes one registered benchmark program.
type Entry struct {
	// ID is the benchmark identifier, unique within the registry.
	// It doubles as the source directory name under benchmarks/ and
	// the built binary name.
	ID string

	Category Category

	// QuickEnv holds environment overrides applied in quick mode,
	// shrinking the workload for smoke runs.
	QuickEnv map[string]string
}

// Registry is the ordered set of benchmark entries, grouped by
// category. It is built once at startup and never mutated.
type Registry struct {
	order   []Category
	entries map[Category][]Entry
}

// ConfigurationError reports a category that is not present in the
// registry. It aborts a run before any benchmark executes.
type ConfigurationError struct {
	Category Category

	// Valid lists the categories the registry would have accepted.
	Valid []Category
}

func (e *ConfigurationError) Error() string {
	valid := make([]string, 0, len(e.Valid))
	for _, c := range e.Valid {
		valid = append(valid, string(c))
	}

	return fmt.Sprintf("unknown category %q (valid: %s)",
		e.Category, strings.Join(valid, ", "))
}

// NewRegistry builds a registry from categorized entries. Category
// order follows first appearance.
func NewRegistry(entries []Entry) *Registry {
	r := &Registry{entries: make(map[Category][]Entry)}

	for _, e := range entries {
		if _, ok := r.entries[e.Category]; !ok {
			r.order = append(r.order, e.Category)
		}

		r.entries[e.Category] = append(r.entries[e.Category], e)
	}

	return r
}

// Categories returns the registered categories in order.
func (r *Registry) Categories() []Category {
	out := make([]Category, len(r.order))
	copy(out, r.order)

	return out
}

// Entries returns the entries registered under cat, in order.
func (r *Registry) Entries(cat Category) []Entry {
	src := r.entries[cat]
	out := make([]Entry, len(src))
	copy(out, src)

	return out
}

// Select resolves a category filter to the ordered entries it covers.
// An empty category or CategoryAll selects everything. An unknown
// category yields a ConfigurationError.
func (r *Registry) Select(cat Category) ([]Entry, error) {
	if cat == "" || cat == CategoryAll {
		var out []Entry
		for _, c := range r.order {
			out = append(out, r.entries[c]...)
		}

		return out, nil
	}

	entries, ok := r.entries[cat]
	if !ok {
		return nil, &ConfigurationError{
			Category: cat,
			Valid:    append(r.Categories(), CategoryAll),
		}
	}

	out := make([]Entry, len(entries))
	copy(out, entries)

	return out, nil
}

// Len returns the total number of registered entries.
func (r *Registry) Len() int {
	n := 0
	for _, entries := range r.entries {
		n += len(entries)
	}

	return n
}
