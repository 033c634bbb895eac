package runner

import (
	"context"
	"os"
	"os/exec"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// stubProgram echoes one env override and fails on demand, covering
// the same contract the real benchmark binaries speak.
const stubProgram = `package main

import (
	"fmt"
	"os"
)

func main() {
	fmt.Println("size:", os.Getenv("BENCHVS_SIZE"))

	if os.Getenv("BENCHVS_FAIL") == "1" {
		fmt.Fprintln(os.Stderr, "deliberate failure")
		os.Exit(1)
	}
}
`

const stubGoMod = `module stubbench

go 1.24
`

func requireGo(t *testing.T) {
	t.Helper()

	if _, err := exec.LookPath("go"); err != nil {
		t.Skip("go toolchain not on PATH")
	}
}

// writeStub lays out benchmarksDir/<id> with a buildable main package
// and returns the benchmarks and bin directories.
func writeStub(t *testing.T, id string) (string, string) {
	t.Helper()

	tmp := t.TempDir()
	benchmarksDir := filepath.Join(tmp, "benchmarks")
	srcDir := filepath.Join(benchmarksDir, id)

	require.NoError(t, os.MkdirAll(srcDir, 0o755))
	require.NoError(t,
		os.WriteFile(filepath.Join(srcDir, "main.go"), []byte(stubProgram), 0o644))
	require.NoError(t,
		os.WriteFile(filepath.Join(srcDir, "go.mod"), []byte(stubGoMod), 0o644))

	return benchmarksDir, filepath.Join(tmp, "bin")
}

func TestBuildAndExecute(t *testing.T) {
	requireGo(t)

	benchmarksDir, binDir := writeStub(t, "stub")

	binPath, err := Build(
		context.Background(), discardLogger(), benchmarksDir, binDir, "stub",
	)
	require.NoError(t, err)
	assert.Equal(t, ResolveBinary(binDir, "stub"), binPath)

	info, err := os.Stat(binPath)
	require.NoError(t, err)
	assert.False(t, info.IsDir())

	executor := &BinaryExecutor{BinDir: binDir, Logger: discardLogger()}
	entry := Entry{ID: "stub", Category: CategoryBasic}

	output, err := executor.Run(
		context.Background(), entry, []string{"BENCHVS_SIZE=7"},
	)
	require.NoError(t, err)
	assert.Contains(t, output, "size: 7")
}

func TestBinaryExecutorCapturesStderrOnFailure(t *testing.T) {
	requireGo(t)

	benchmarksDir, binDir := writeStub(t, "stub")

	_, err := Build(
		context.Background(), discardLogger(), benchmarksDir, binDir, "stub",
	)
	require.NoError(t, err)

	executor := &BinaryExecutor{BinDir: binDir, Logger: discardLogger()}
	entry := Entry{ID: "stub", Category: CategoryBasic}

	output, err := executor.Run(
		context.Background(), entry, []string{"BENCHVS_FAIL=1"},
	)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "stub")
	assert.Contains(t, err.Error(), "deliberate failure")

	// Stdout written before the failure is still returned, so the
	// runner can show partial benchmark output.
	assert.Contains(t, output, "size:")
}

func TestBinaryExecutorMissingBinary(t *testing.T) {
	executor := &BinaryExecutor{
		BinDir: t.TempDir(),
		Logger: discardLogger(),
	}
	entry := Entry{ID: "nosuch", Category: CategoryBasic}

	_, err := executor.Run(context.Background(), entry, nil)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "nosuch")
}

func TestBuildMissingSource(t *testing.T) {
	tmp := t.TempDir()

	_, err := Build(
		context.Background(), discardLogger(),
		filepath.Join(tmp, "benchmarks"), filepath.Join(tmp, "bin"),
		"ghost",
	)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "ghost")
}

func TestBuildAll(t *testing.T) {
	requireGo(t)

	benchmarksDir, binDir := writeStub(t, "stub")

	entries := []Entry{{ID: "stub", Category: CategoryBasic}}

	err := BuildAll(
		context.Background(), discardLogger(), benchmarksDir, binDir, entries,
	)
	require.NoError(t, err)

	_, err = os.Stat(ResolveBinary(binDir, "stub"))
	assert.NoError(t, err)

	// A missing entry fails the whole build; broken sources are a
	// setup problem, not a benchmark outcome.
	entries = append(entries, Entry{ID: "ghost", Category: CategoryBasic})
	err = BuildAll(
		context.Background(), discardLogger(), benchmarksDir, binDir, entries,
	)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "ghost")
}
