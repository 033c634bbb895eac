package bench

import (
	"bytes"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParam(t *testing.T) {
	t.Setenv("BENCHVS_TEST_PARAM", "250")
	assert.Equal(t, 250, Param("BENCHVS_TEST_PARAM", 10))

	assert.Equal(t, 10, Param("BENCHVS_TEST_UNSET", 10))

	t.Setenv("BENCHVS_TEST_JUNK", "not-a-number")
	assert.Equal(t, 7, Param("BENCHVS_TEST_JUNK", 7))
}

func TestMeasureRecordsRows(t *testing.T) {
	b := New("test")

	calls := 0
	b.Measure("counted", 5, func() { calls++ })

	assert.Equal(t, 5, calls)

	rows := b.Rows()
	require.Len(t, rows, 1)
	assert.Equal(t, "counted", rows[0].Name)
	assert.Equal(t, 5, rows[0].Iters)
	assert.False(t, rows[0].Skipped)
	assert.GreaterOrEqual(t, rows[0].Total, time.Duration(0))
}

func TestFastest(t *testing.T) {
	b := New("test")
	b.rows = []Row{
		{Name: "slow", Total: 300 * time.Millisecond, Iters: 1},
		{Name: "fast", Total: 10 * time.Millisecond, Iters: 1},
		{Name: "unavailable", Skipped: true, Reason: "n/a"},
	}

	assert.Equal(t, "fast", b.Fastest())
}

func TestFastestEmpty(t *testing.T) {
	assert.Equal(t, "", New("test").Fastest())
}

func TestPrintTable(t *testing.T) {
	b := New("Sample Comparison")
	b.Note("iterations = %d", 100)
	b.rows = []Row{
		{Name: "baseline", Total: 200 * time.Millisecond, Iters: 100},
		{Name: "improved", Total: 100 * time.Millisecond, Iters: 100},
		{Name: "optional", Skipped: true, Reason: "single CPU"},
	}
	b.Guide("prefer improved")

	var buf bytes.Buffer
	b.Print(&buf)

	out := buf.String()

	assert.Contains(t, out, "Sample Comparison")
	assert.Contains(t, out, "iterations = 100")
	assert.Contains(t, out, "Approach")
	assert.Contains(t, out, "baseline")
	assert.Contains(t, out, "2.00x")
	assert.Contains(t, out, "1.00x *", "fastest row carries the marker")
	assert.Contains(t, out, "skipped (single CPU)")
	assert.Contains(t, out, "Decision guide:")
	assert.Contains(t, out, "prefer improved")
}

func TestPrintPerOp(t *testing.T) {
	b := New("test")
	b.rows = []Row{
		{Name: "x", Total: time.Second, Iters: 1000},
	}

	var buf bytes.Buffer
	b.Print(&buf)

	// 1s over 1000 iterations is 1ms per op.
	assert.Contains(t, buf.String(), "1.000ms")
}

func TestFormatDur(t *testing.T) {
	tests := []struct {
		input time.Duration
		want  string
	}{
		{2500 * time.Millisecond, "2.500s"},
		{15 * time.Millisecond, "15.000ms"},
		{42 * time.Microsecond, "42.0µs"},
		{800 * time.Nanosecond, "800ns"},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, formatDur(tt.input),
			"formatDur(%v)", tt.input)
	}
}

func TestSkippedRowsNeverFastest(t *testing.T) {
	b := New("test")
	b.Skip("only-row", "unsupported here")

	assert.Equal(t, "", b.Fastest())

	var buf bytes.Buffer
	b.Print(&buf)
	assert.NotContains(t, buf.String(), "NaN")

	lines := strings.Split(buf.String(), "\n")
	assert.NotEmpty(t, lines)
}
