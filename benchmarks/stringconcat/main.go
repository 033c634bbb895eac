// Command stringconcat compares ways to build a large string from
// many small pieces.
package main

import (
	"bytes"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/benchvs/benchvs/internal/bench"
)

func main() {
	iters := bench.Param("BENCHVS_ITERATIONS", 100)
	n := bench.Param("BENCHVS_SIZE", 10000)

	b := bench.New("String Concatenation")
	b.Note("iterations = %d, pieces = %d", iters, n)

	var lens [6]int

	b.Measure("+= operator", iters, func() {
		s := ""
		for i := 0; i < n; i++ {
			s += "item " + strconv.Itoa(i) + ", "
		}
		lens[0] = len(s)
	})

	b.Measure("fmt.Sprintf accumulate", iters, func() {
		s := ""
		for i := 0; i < n; i++ {
			s = fmt.Sprintf("%sitem %d, ", s, i)
		}
		lens[1] = len(s)
	})

	b.Measure("strings.Builder", iters, func() {
		var sb strings.Builder
		for i := 0; i < n; i++ {
			sb.WriteString("item ")
			sb.WriteString(strconv.Itoa(i))
			sb.WriteString(", ")
		}
		lens[2] = len(sb.String())
	})

	b.Measure("strings.Builder with Grow", iters, func() {
		var sb strings.Builder
		sb.Grow(n * 12)
		for i := 0; i < n; i++ {
			sb.WriteString("item ")
			sb.WriteString(strconv.Itoa(i))
			sb.WriteString(", ")
		}
		lens[3] = len(sb.String())
	})

	b.Measure("bytes.Buffer", iters, func() {
		var buf bytes.Buffer
		for i := 0; i < n; i++ {
			buf.WriteString("item ")
			buf.WriteString(strconv.Itoa(i))
			buf.WriteString(", ")
		}
		lens[4] = len(buf.String())
	})

	b.Measure("collect slice + strings.Join", iters, func() {
		parts := make([]string, 0, n)
		for i := 0; i < n; i++ {
			parts = append(parts, "item "+strconv.Itoa(i)+", ")
		}
		lens[5] = len(strings.Join(parts, ""))
	})

	for i := 1; i < len(lens); i++ {
		if lens[i] != lens[0] {
			bench.Fatalf("length mismatch: approach %d got %d, want %d",
				i, lens[i], lens[0])
		}
	}

	bench.Sink = lens

	b.Guide(
		"+= reallocates the whole string every pass; quadratic on large inputs",
		"strings.Builder is the default answer; Grow removes the remaining reallocs",
		"strings.Join wins when the pieces already live in a slice",
		"avoid fmt.Sprintf in hot loops; it adds reflection on top of the copy",
	)
	b.Print(os.Stdout)
}
