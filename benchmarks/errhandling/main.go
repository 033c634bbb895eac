// Command errhandling compares error propagation styles: validate
// first, error returns, and panic/recover.
package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/benchvs/benchvs/internal/bench"
)

var errNegative = errors.New("negative input")

//go:noinline
func validate(v int) bool {
	return v >= 0
}

//go:noinline
func halveChecked(v int) (int, error) {
	if v < 0 {
		return 0, errNegative
	}

	return v / 2, nil
}

//go:noinline
func halveWrapped(v int) (int, error) {
	if v < 0 {
		return 0, fmt.Errorf("halve %d: %w", v, errNegative)
	}

	return v / 2, nil
}

//go:noinline
func halvePanicking(v int) int {
	if v < 0 {
		panic(errNegative)
	}

	return v / 2
}

func main() {
	iters := bench.Param("BENCHVS_ITERATIONS", 100000)
	failPct := bench.Param("BENCHVS_FAIL_PCT", 10)

	inputs := make([]int, 100)
	for i := range inputs {
		inputs[i] = i
		if i%100 < failPct {
			inputs[i] = -i - 1
		}
	}

	b := bench.New("Error Handling")
	b.Note("iterations = %d, batch = %d values, %d%% failing",
		iters, len(inputs), failPct)

	var oks [4]int

	b.Measure("validate first, then compute", iters, func() {
		n := 0
		for _, v := range inputs {
			if validate(v) {
				bench.Sink = v / 2
				n++
			}
		}
		oks[0] = n
	})

	b.Measure("error return, sentinel check", iters, func() {
		n := 0
		for _, v := range inputs {
			r, err := halveChecked(v)
			if err != nil {
				if !errors.Is(err, errNegative) {
					bench.Fatalf("unexpected error: %v", err)
				}
				continue
			}
			bench.Sink = r
			n++
		}
		oks[1] = n
	})

	b.Measure("error return, wrapped with %w", iters, func() {
		n := 0
		for _, v := range inputs {
			r, err := halveWrapped(v)
			if err != nil {
				if !errors.Is(err, errNegative) {
					bench.Fatalf("unexpected error: %v", err)
				}
				continue
			}
			bench.Sink = r
			n++
		}
		oks[2] = n
	})

	b.Measure("panic/recover per failure", iters, func() {
		n := 0
		for _, v := range inputs {
			n += halveRecovering(v)
		}
		oks[3] = n
	})

	for i := 1; i < len(oks); i++ {
		if oks[i] != oks[0] {
			bench.Fatalf("success count mismatch: approach %d got %d, want %d",
				i, oks[i], oks[0])
		}
	}

	bench.Sink = oks

	b.Guide(
		"plain error returns on the happy path cost almost nothing",
		"fmt.Errorf with %w allocates on every failure; wrap at boundaries, not in loops",
		"panic/recover is for truly exceptional states; as control flow it is the slowest option here",
	)
	b.Print(os.Stdout)
}

func halveRecovering(v int) (ok int) {
	defer func() {
		if recover() != nil {
			ok = 0
		}
	}()

	bench.Sink = halvePanicking(v)

	return 1
}
