// Command decimalmath compares money arithmetic: float64, integer
// cents, and shopspring/decimal.
package main

import (
	"math"
	"os"

	"github.com/shopspring/decimal"

	"github.com/benchvs/benchvs/internal/bench"
)

func main() {
	iters := bench.Param("BENCHVS_ITERATIONS", 1000)
	size := bench.Param("BENCHVS_SIZE", 10000)

	// Price list with cents that don't have exact float64
	// representations, so drift is visible.
	pricesCents := make([]int64, size)
	for i := range pricesCents {
		pricesCents[i] = int64(99 + (i%900)*10) // 0.99, 1.09, ...
	}

	pricesFloat := make([]float64, size)
	pricesDec := make([]decimal.Decimal, size)

	for i, c := range pricesCents {
		pricesFloat[i] = float64(c) / 100
		pricesDec[i] = decimal.New(c, -2)
	}

	taxRate := decimal.New(825, -4) // 8.25%

	b := bench.New("Money Arithmetic")
	b.Note("iterations = %d, line items = %d, tax = 8.25%%", iters, size)

	var floatTotal float64
	var centsTotal int64
	var decTotal decimal.Decimal

	b.Measure("float64", iters, func() {
		sum := 0.0
		for _, p := range pricesFloat {
			sum += p
		}
		floatTotal = sum * 1.0825
	})

	b.Measure("int64 cents", iters, func() {
		var sum int64
		for _, c := range pricesCents {
			sum += c
		}
		// Round half up on the basis-point tax product.
		centsTotal = (sum*10825 + 5000) / 10000
	})

	b.Measure("shopspring/decimal", iters, func() {
		sum := decimal.Zero
		for _, d := range pricesDec {
			sum = sum.Add(d)
		}
		decTotal = sum.Add(sum.Mul(taxRate)).Round(2)
	})

	wantCents := decTotal.Mul(decimal.New(100, 0)).IntPart()
	if centsTotal != wantCents {
		bench.Fatalf("cents arithmetic diverged from decimal: %d vs %d",
			centsTotal, wantCents)
	}

	driftCents := math.Abs(floatTotal*100 - float64(wantCents))

	bench.Sink = floatTotal

	b.Note("float64 drift vs decimal: %.4f cents on this workload", driftCents)
	b.Guide(
		"int64 cents is fastest and exact; the rounding rules live in your code",
		"shopspring/decimal costs an allocation per op but keeps arbitrary precision and explicit rounding",
		"float64 accumulates representation error; never use it for money totals",
	)
	b.Print(os.Stdout)
}
