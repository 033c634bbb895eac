// Package dataset generates deterministic sample data for the
// data-heavy benchmarks. The same seed always yields the same
// records, so repeated runs exercise identical workloads.
package dataset

import (
	"fmt"
	mrand "math/rand"

	"github.com/google/uuid"
)

var words = []string{
	"alpha", "bravo", "charlie", "delta", "echo", "foxtrot",
	"golf", "hotel", "india", "juliett", "kilo", "lima",
	"mike", "november", "oscar", "papa", "quebec", "romeo",
}

// Record is a representative payload row: a handful of scalar fields,
// a nested slice, enough to make codecs and copies do real work.
type Record struct {
	ID     string   `json:"id" toml:"id"`
	Name   string   `json:"name" toml:"name"`
	Index  int      `json:"index" toml:"index"`
	Score  float64  `json:"score" toml:"score"`
	Active bool     `json:"active" toml:"active"`
	Tags   []string `json:"tags" toml:"tags"`
}

// Generator produces deterministic data from a seed.
type Generator struct {
	rng *mrand.Rand
}

// NewGenerator creates a Generator for the given seed.
func NewGenerator(seed int64) *Generator {
	return &Generator{rng: mrand.New(mrand.NewSource(seed))}
}

// Records generates n records.
func (g *Generator) Records(n int) []Record {
	records := make([]Record, n)

	for i := range records {
		tags := make([]string, 1+g.rng.Intn(3))
		for j := range tags {
			tags[j] = words[g.rng.Intn(len(words))]
		}

		records[i] = Record{
			ID:     g.uuid(),
			Name:   fmt.Sprintf("%s-%d", words[g.rng.Intn(len(words))], i),
			Index:  i,
			Score:  g.rng.Float64() * 100,
			Active: g.rng.Intn(2) == 0,
			Tags:   tags,
		}
	}

	return records
}

// Keys generates n unique string keys.
func (g *Generator) Keys(n int) []string {
	keys := make([]string, n)
	for i := range keys {
		keys[i] = g.uuid()
	}

	return keys
}

// Words generates n pseudo-words.
func (g *Generator) Words(n int) []string {
	out := make([]string, n)
	for i := range out {
		out[i] = fmt.Sprintf("%s%d", words[g.rng.Intn(len(words))], g.rng.Intn(n))
	}

	return out
}

func (g *Generator) uuid() string {
	// The seeded rng feeds the UUID bytes, keeping IDs deterministic.
	id, err := uuid.NewRandomFromReader(g.rng)
	if err != nil {
		// math/rand Read never fails.
		panic(err)
	}

	return id.String()
}
