// Command lookup compares membership structures: linear scan, binary
// search over a sorted slice, and maps.
package main

import (
	"os"
	"slices"

	"github.com/benchvs/benchvs/internal/bench"
	"github.com/benchvs/benchvs/internal/dataset"
)

func main() {
	iters := bench.Param("BENCHVS_ITERATIONS", 100)
	size := bench.Param("BENCHVS_SIZE", 10000)
	lookups := bench.Param("BENCHVS_LOOKUPS", 1000)

	gen := dataset.NewGenerator(99)
	keys := gen.Keys(size)

	// Half present, half absent; real lookups miss sometimes.
	probes := make([]string, lookups)
	absent := gen.Keys(lookups)

	for i := range probes {
		if i%2 == 0 {
			probes[i] = keys[(i*7)%len(keys)]
		} else {
			probes[i] = absent[i]
		}
	}

	sorted := slices.Clone(keys)
	slices.Sort(sorted)

	byKey := make(map[string]int, size)
	present := make(map[string]struct{}, size)

	for i, k := range keys {
		byKey[k] = i
		present[k] = struct{}{}
	}

	b := bench.New("Lookup Structures")
	b.Note("iterations = %d, elements = %d, lookups = %d (50%% hit rate)",
		iters, size, lookups)

	var hits [4]int

	b.Measure("slice linear scan", iters, func() {
		n := 0
		for _, p := range probes {
			if slices.Contains(keys, p) {
				n++
			}
		}
		hits[0] = n
	})

	b.Measure("sorted slice binary search", iters, func() {
		n := 0
		for _, p := range probes {
			if _, ok := slices.BinarySearch(sorted, p); ok {
				n++
			}
		}
		hits[1] = n
	})

	b.Measure("map[string]int", iters, func() {
		n := 0
		for _, p := range probes {
			if _, ok := byKey[p]; ok {
				n++
			}
		}
		hits[2] = n
	})

	b.Measure("map[string]struct{}", iters, func() {
		n := 0
		for _, p := range probes {
			if _, ok := present[p]; ok {
				n++
			}
		}
		hits[3] = n
	})

	for i := 1; i < len(hits); i++ {
		if hits[i] != hits[0] {
			bench.Fatalf("hit count mismatch: approach %d got %d, want %d",
				i, hits[i], hits[0])
		}
	}

	bench.Sink = hits

	b.Guide(
		"linear scan is fine below a few dozen elements and needs no setup",
		"binary search gives O(log n) with zero per-element overhead, but the slice must stay sorted",
		"maps win for large dynamic sets; struct{} values avoid storing anything",
	)
	b.Print(os.Stdout)
}
