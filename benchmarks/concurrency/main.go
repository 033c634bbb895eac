// Command concurrency compares dispatch patterns for I/O-bound and
// CPU-bound task batches.
package main

import (
	"os"
	"runtime"
	"sync"
	"sync/atomic"
	"time"

	"github.com/benchvs/benchvs/internal/bench"
)

func main() {
	tasks := bench.Param("BENCHVS_TASKS", 100)
	sleepUS := bench.Param("BENCHVS_SLEEP_US", 10000)
	primeLimit := bench.Param("BENCHVS_PRIME_LIMIT", 10000)

	sleep := time.Duration(sleepUS) * time.Microsecond
	workers := runtime.GOMAXPROCS(0)

	b := bench.New("Concurrency Dispatch")
	b.Note("tasks = %d, simulated I/O = %s each, workers = %d",
		tasks, sleep, workers)

	ioTask := func() {
		time.Sleep(sleep)
	}

	b.MeasureOnce("I/O: sequential", func() {
		for i := 0; i < tasks; i++ {
			ioTask()
		}
	})

	b.MeasureOnce("I/O: goroutine per task", func() {
		var wg sync.WaitGroup
		wg.Add(tasks)
		for i := 0; i < tasks; i++ {
			go func() {
				defer wg.Done()
				ioTask()
			}()
		}
		wg.Wait()
	})

	b.MeasureOnce("I/O: bounded worker pool", func() {
		runPool(workers, tasks, func(int) {
			ioTask()
		})
	})

	var seqPrimes int64

	b.MeasureOnce("CPU: sequential", func() {
		n := int64(0)
		for i := 0; i < tasks; i++ {
			n += int64(countPrimes(primeLimit))
		}
		seqPrimes = n
	})

	if workers > 1 {
		var poolPrimes atomic.Int64

		b.MeasureOnce("CPU: worker pool", func() {
			poolPrimes.Store(0)
			runPool(workers, tasks, func(int) {
				poolPrimes.Add(int64(countPrimes(primeLimit)))
			})
		})

		if poolPrimes.Load() != seqPrimes {
			bench.Fatalf("prime count mismatch: pool %d, sequential %d",
				poolPrimes.Load(), seqPrimes)
		}
	} else {
		b.Skip("CPU: worker pool", "single CPU, no parallelism available")
	}

	bench.Sink = seqPrimes

	b.Guide(
		"goroutine-per-task is idiomatic for I/O waits; goroutines are cheap enough",
		"bound the pool when tasks hold real resources (connections, file handles)",
		"CPU-bound work only gains from parallelism up to GOMAXPROCS workers",
	)
	b.Print(os.Stdout)
}

// runPool fans tasks out to a fixed number of workers and waits for
// completion.
func runPool(workers, tasks int, fn func(i int)) {
	jobs := make(chan int)

	var wg sync.WaitGroup
	wg.Add(workers)

	for w := 0; w < workers; w++ {
		go func() {
			defer wg.Done()
			for i := range jobs {
				fn(i)
			}
		}()
	}

	for i := 0; i < tasks; i++ {
		jobs <- i
	}
	close(jobs)

	wg.Wait()
}

func countPrimes(limit int) int {
	if limit < 2 {
		return 0
	}

	composite := make([]bool, limit)
	count := 0

	for i := 2; i < limit; i++ {
		if composite[i] {
			continue
		}
		count++
		for j := i * i; j < limit; j += i {
			composite[j] = true
		}
	}

	return count
}
