// Command fileio compares ways to read a line-oriented file.
package main

import (
	"bufio"
	"bytes"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/benchvs/benchvs/internal/bench"
)

func main() {
	iters := bench.Param("BENCHVS_ITERATIONS", 100)
	lines := bench.Param("BENCHVS_SIZE", 10000)

	path, err := writeFixture(os.TempDir(), lines)
	if err != nil {
		bench.Fatalf("write fixture: %v", err)
	}
	defer os.Remove(path)

	b := bench.New("File Reading")
	b.Note("iterations = %d, lines = %d", iters, lines)

	var counts [4]int

	b.Measure("os.ReadFile + bytes.Count", iters, func() {
		data, err := os.ReadFile(path)
		if err != nil {
			bench.Fatalf("read: %v", err)
		}
		counts[0] = bytes.Count(data, []byte{'\n'})
	})

	b.Measure("bufio.Scanner line loop", iters, func() {
		f, err := os.Open(path)
		if err != nil {
			bench.Fatalf("open: %v", err)
		}

		n := 0
		sc := bufio.NewScanner(f)
		for sc.Scan() {
			n++
		}
		f.Close()

		if sc.Err() != nil {
			bench.Fatalf("scan: %v", sc.Err())
		}
		counts[1] = n
	})

	b.Measure("bufio.Reader ReadString", iters, func() {
		f, err := os.Open(path)
		if err != nil {
			bench.Fatalf("open: %v", err)
		}

		n := 0
		r := bufio.NewReader(f)
		for {
			_, err := r.ReadString('\n')
			if err == io.EOF {
				break
			}
			if err != nil {
				bench.Fatalf("read line: %v", err)
			}
			n++
		}
		f.Close()
		counts[2] = n
	})

	b.Measure("io.ReadAll on raw file", iters, func() {
		f, err := os.Open(path)
		if err != nil {
			bench.Fatalf("open: %v", err)
		}

		data, err := io.ReadAll(f)
		f.Close()
		if err != nil {
			bench.Fatalf("readall: %v", err)
		}
		counts[3] = bytes.Count(data, []byte{'\n'})
	})

	// Reading from tmpfs sidesteps disk latency entirely, which shows
	// how much of the above is I/O versus parsing.
	if info, err := os.Stat("/dev/shm"); err == nil && info.IsDir() {
		shmPath, err := writeFixture("/dev/shm", lines)
		if err != nil {
			b.Skip("os.ReadFile from tmpfs", "tmpfs not writable")
		} else {
			defer os.Remove(shmPath)

			b.Measure("os.ReadFile from tmpfs", iters, func() {
				data, err := os.ReadFile(shmPath)
				if err != nil {
					bench.Fatalf("read tmpfs: %v", err)
				}
				bench.Sink = len(data)
			})
		}
	} else {
		b.Skip("os.ReadFile from tmpfs", "no /dev/shm on this platform")
	}

	for i := 1; i < len(counts); i++ {
		if counts[i] != counts[0] {
			bench.Fatalf("line count mismatch: approach %d got %d, want %d",
				i, counts[i], counts[0])
		}
	}

	bench.Sink = counts

	b.Guide(
		"os.ReadFile is simplest and fast for files that fit in memory",
		"bufio.Scanner streams with constant memory; the right default for big files",
		"ReadString allocates per line; Scanner reuses its buffer",
	)
	b.Print(os.Stdout)
}

func writeFixture(dir string, lines int) (string, error) {
	f, err := os.CreateTemp(dir, "benchvs-fileio-*.txt")
	if err != nil {
		return "", err
	}

	w := bufio.NewWriter(f)
	for i := 0; i < lines; i++ {
		fmt.Fprintf(w, "line %d: some representative log-ish content\n", i)
	}

	if err := w.Flush(); err != nil {
		f.Close()
		os.Remove(f.Name())

		return "", err
	}

	if err := f.Close(); err != nil {
		os.Remove(f.Name())

		return "", err
	}

	return filepath.Clean(f.Name()), nil
}
