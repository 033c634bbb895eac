// Command mapaccess compares map read patterns.
package main

import (
	"os"
	"sync"

	"github.com/benchvs/benchvs/internal/bench"
)

func main() {
	iters := bench.Param("BENCHVS_ITERATIONS", 100)
	size := bench.Param("BENCHVS_SIZE", 100000)

	m := make(map[int]int, size)
	var sm sync.Map

	for i := 0; i < size; i++ {
		m[i] = i * 2
		sm.Store(i, i*2)
	}

	b := bench.New("Map Access")
	b.Note("iterations = %d, map size = %d", iters, size)

	var sums [4]int

	b.Measure("m[k] direct", iters, func() {
		sum := 0
		for k := 0; k < size; k++ {
			sum += m[k]
		}
		sums[0] = sum
	})

	b.Measure("v, ok := m[k]", iters, func() {
		sum := 0
		for k := 0; k < size; k++ {
			if v, ok := m[k]; ok {
				sum += v
			}
		}
		sums[1] = sum
	})

	b.Measure("check then read (double lookup)", iters, func() {
		sum := 0
		for k := 0; k < size; k++ {
			if _, ok := m[k]; ok {
				sum += m[k]
			}
		}
		sums[2] = sum
	})

	b.Measure("sync.Map Load", iters, func() {
		sum := 0
		for k := 0; k < size; k++ {
			if v, ok := sm.Load(k); ok {
				sum += v.(int)
			}
		}
		sums[3] = sum
	})

	for i := 1; i < len(sums); i++ {
		if sums[i] != sums[0] {
			bench.Fatalf("sum mismatch: approach %d got %d, want %d",
				i, sums[i], sums[0])
		}
	}

	bench.Sink = sums

	b.Guide(
		"the comma-ok form costs nothing over a direct read; use it when absence matters",
		"checking then reading does the hash twice; fold it into one comma-ok lookup",
		"sync.Map pays for its atomics; reach for it only under concurrent mixed access",
	)
	b.Print(os.Stdout)
}
