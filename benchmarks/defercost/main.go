// Command defercost compares resource cleanup patterns: explicit
// close calls, defer, and a closure-based helper.
package main

import (
	"io"
	"os"
	"strings"

	"github.com/benchvs/benchvs/internal/bench"
)

type resource struct {
	closes *int
}

//go:noinline
func acquire(closes *int) resource {
	return resource{closes: closes}
}

//go:noinline
func (r resource) Close() {
	*r.closes++
}

// withResource is the closure-helper idiom: acquisition and cleanup
// live in one place, the caller supplies only the body.
func withResource(closes *int, fn func(resource)) {
	r := acquire(closes)
	defer r.Close()
	fn(r)
}

func main() {
	iters := bench.Param("BENCHVS_ITERATIONS", 1000000)
	files := bench.Param("BENCHVS_FILES", 1000)

	b := bench.New("Cleanup Patterns")
	b.Note("iterations = %d, file round trips = %d", iters, files)

	var closes [3]int

	b.Measure("explicit Close call", iters, func() {
		r := acquire(&closes[0])
		bench.Sink = r.closes
		r.Close()
	})

	b.Measure("defer inside func literal", iters, func() {
		func() {
			r := acquire(&closes[1])
			defer r.Close()
			bench.Sink = r.closes
		}()
	})

	b.Measure("withResource helper", iters, func() {
		withResource(&closes[2], func(r resource) {
			bench.Sink = r.closes
		})
	})

	for i := 1; i < len(closes); i++ {
		if closes[i] != closes[0] {
			bench.Fatalf("close count mismatch: approach %d got %d, want %d",
				i, closes[i], closes[0])
		}
	}

	// Against a real file handle the cleanup overhead shrinks next to
	// the syscalls it brackets.
	path, err := writeFixture()
	if err != nil {
		bench.Fatalf("write fixture: %v", err)
	}
	defer os.Remove(path)

	readFile := func(f *os.File) {
		var buf [64]byte
		if _, err := f.Read(buf[:]); err != nil && err != io.EOF {
			bench.Fatalf("read: %v", err)
		}
	}

	b.Measure("file open/read/Close explicit", files, func() {
		f, err := os.Open(path)
		if err != nil {
			bench.Fatalf("open: %v", err)
		}
		readFile(f)
		f.Close()
	})

	b.Measure("file open/read/Close deferred", files, func() {
		func() {
			f, err := os.Open(path)
			if err != nil {
				bench.Fatalf("open: %v", err)
			}
			defer f.Close()
			readFile(f)
		}()
	})

	b.Guide(
		"defer costs a few nanoseconds; it only registers in loops that do almost nothing else",
		"explicit Close is marginally faster but silently leaks on early returns and panics",
		"a withX helper reads like the deferred form, centralizes the cleanup, and costs the same",
		"against real I/O the difference disappears; default to defer",
	)
	b.Print(os.Stdout)
}

func writeFixture() (string, error) {
	f, err := os.CreateTemp("", "benchvs-defercost-*.txt")
	if err != nil {
		return "", err
	}

	if _, err := f.WriteString(strings.Repeat("cleanup fixture line\n", 8)); err != nil {
		f.Close()
		os.Remove(f.Name())

		return "", err
	}

	if err := f.Close(); err != nil {
		os.Remove(f.Name())

		return "", err
	}

	return f.Name(), nil
}
