package main

import (
	"sync/atomic"
	"testing"
)

func TestCountPrimes(t *testing.T) {
	tests := []struct {
		limit int
		want  int
	}{
		{0, 0},
		{2, 0},
		{3, 1},
		{10, 4},
		{100, 25},
		{1000, 168},
	}

	for _, tt := range tests {
		if got := countPrimes(tt.limit); got != tt.want {
			t.Errorf("countPrimes(%d) = %d, want %d",
				tt.limit, got, tt.want)
		}
	}
}

func TestRunPoolProcessesEveryTask(t *testing.T) {
	var sum atomic.Int64

	runPool(4, 100, func(i int) {
		sum.Add(int64(i))
	})

	if got := sum.Load(); got != 4950 {
		t.Errorf("sum = %d, want 4950", got)
	}
}
