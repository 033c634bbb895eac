// Command regexmatch compares regexp usage patterns against plain
// string predicates.
package main

import (
	"os"
	"regexp"
	"strings"

	"github.com/benchvs/benchvs/internal/bench"
	"github.com/benchvs/benchvs/internal/dataset"
)

const pattern = `^[a-z]+[0-9]+$`

func main() {
	iters := bench.Param("BENCHVS_ITERATIONS", 100)
	size := bench.Param("BENCHVS_SIZE", 10000)

	inputs := dataset.NewGenerator(3).Words(size)

	compiled := regexp.MustCompile(pattern)

	b := bench.New("Regular Expressions")
	b.Note("iterations = %d, strings = %d, pattern = %s", iters, size, pattern)

	var matches [3]int

	b.Measure("compile inside the loop", iters, func() {
		n := 0
		for _, s := range inputs {
			re, err := regexp.Compile(pattern)
			if err != nil {
				bench.Fatalf("compile: %v", err)
			}
			if re.MatchString(s) {
				n++
			}
		}
		matches[0] = n
	})

	b.Measure("precompiled MatchString", iters, func() {
		n := 0
		for _, s := range inputs {
			if compiled.MatchString(s) {
				n++
			}
		}
		matches[1] = n
	})

	b.Measure("hand-written predicate", iters, func() {
		n := 0
		for _, s := range inputs {
			if matchesLettersDigits(s) {
				n++
			}
		}
		matches[2] = n
	})

	joined := strings.Join(inputs, " ")
	findPattern := regexp.MustCompile(`[a-z]+[0-9]+`)

	b.Measure("precompiled FindAllString", iters, func() {
		bench.Sink = len(findPattern.FindAllString(joined, -1))
	})

	for i := 1; i < len(matches); i++ {
		if matches[i] != matches[0] {
			bench.Fatalf("match count mismatch: approach %d got %d, want %d",
				i, matches[i], matches[0])
		}
	}

	bench.Sink = matches

	b.Guide(
		"never compile inside a loop; hoist to a package-level MustCompile",
		"for simple shapes a hand-written predicate beats the regexp engine badly",
		"regexps earn their cost when the pattern is genuinely complex or user-supplied",
	)
	b.Print(os.Stdout)
}

// matchesLettersDigits reports whether s is one or more lowercase
// letters followed by one or more digits, same language as pattern.
func matchesLettersDigits(s string) bool {
	i := 0
	for i < len(s) && s[i] >= 'a' && s[i] <= 'z' {
		i++
	}

	if i == 0 || i == len(s) {
		return false
	}

	for ; i < len(s); i++ {
		if s[i] < '0' || s[i] > '9' {
			return false
		}
	}

	return true
}
