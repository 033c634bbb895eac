// Command expreval compares evaluating a small business rule as
// native Go against the expr expression engine, compiled once versus
// recompiled per evaluation.
package main

import (
	"math"
	"os"

	"github.com/expr-lang/expr"
	"github.com/expr-lang/expr/vm"

	"github.com/benchvs/benchvs/internal/bench"
)

const rule = `Price * Qty * (1 - Discount)`

type lineItem struct {
	Price    float64
	Qty      int
	Discount float64
}

func main() {
	iters := bench.Param("BENCHVS_ITERATIONS", 100000)

	item := lineItem{Price: 19.99, Qty: 3, Discount: 0.15}

	program, err := expr.Compile(rule, expr.Env(lineItem{}))
	if err != nil {
		bench.Fatalf("compile rule: %v", err)
	}

	b := bench.New("Expression Evaluation")
	b.Note("iterations = %d, rule = %s", iters, rule)

	var native, compiled, recompiled float64

	b.Measure("native Go expression", iters, func() {
		native = item.Price * float64(item.Qty) * (1 - item.Discount)
	})

	b.Measure("expr, compiled once", iters, func() {
		out, err := vm.Run(program, item)
		if err != nil {
			bench.Fatalf("run rule: %v", err)
		}
		compiled = out.(float64)
	})

	// Recompiling per evaluation is the trap this benchmark exists to
	// show; scale the count down so the row finishes.
	recompileIters := iters / 100
	if recompileIters == 0 {
		recompileIters = 1
	}

	b.Measure("expr, recompiled each time (1/100 iters)", recompileIters, func() {
		p, err := expr.Compile(rule, expr.Env(lineItem{}))
		if err != nil {
			bench.Fatalf("compile: %v", err)
		}
		out, err := vm.Run(p, item)
		if err != nil {
			bench.Fatalf("run: %v", err)
		}
		recompiled = out.(float64)
	})

	for i, got := range []float64{compiled, recompiled} {
		if math.Abs(got-native) > 1e-9 {
			bench.Fatalf("result mismatch: approach %d got %v, want %v",
				i+1, got, native)
		}
	}

	bench.Sink = native

	b.Guide(
		"a compiled expr program evaluates within an order of magnitude of native code",
		"compilation dominates; compile rules once at load time and cache the program",
		"use an expression engine for user-supplied rules, never for logic you could write in Go",
	)
	b.Print(os.Stdout)
}
