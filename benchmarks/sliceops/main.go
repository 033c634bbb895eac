// Command sliceops compares ways to build and extend slices.
package main

import (
	"os"

	"github.com/benchvs/benchvs/internal/bench"
)

func main() {
	iters := bench.Param("BENCHVS_ITERATIONS", 100)
	n := bench.Param("BENCHVS_SIZE", 10000)

	chunk := make([]int, 64)
	for i := range chunk {
		chunk[i] = i
	}

	b := bench.New("Slice Building")
	b.Note("iterations = %d, items = %d", iters, n)

	var lens [5]int

	b.Measure("append, zero capacity", iters, func() {
		var s []int
		for i := 0; i < n; i++ {
			s = append(s, i)
		}
		lens[0] = len(s)
	})

	b.Measure("append, preallocated cap", iters, func() {
		s := make([]int, 0, n)
		for i := 0; i < n; i++ {
			s = append(s, i)
		}
		lens[1] = len(s)
	})

	b.Measure("make(len) + index assignment", iters, func() {
		s := make([]int, n)
		for i := 0; i < n; i++ {
			s[i] = i
		}
		lens[2] = len(s)
	})

	b.Measure("append chunks with ...", iters, func() {
		var s []int
		for len(s) < n {
			s = append(s, chunk...)
		}
		lens[3] = len(s[:n])
	})

	b.Measure("copy into preallocated", iters, func() {
		s := make([]int, n)
		filled := 0
		for filled < n {
			filled += copy(s[filled:], chunk)
		}
		lens[4] = len(s)
	})

	for i := 1; i < len(lens); i++ {
		if lens[i] != lens[0] {
			bench.Fatalf("length mismatch: approach %d got %d, want %d",
				i, lens[i], lens[0])
		}
	}

	bench.Sink = lens

	b.Guide(
		"preallocate whenever the final size is known; growth reallocations dominate",
		"make(len) + index beats append when every slot is written exactly once",
		"appending whole chunks with ... amortizes the per-element call overhead",
	)
	b.Print(os.Stdout)
}
