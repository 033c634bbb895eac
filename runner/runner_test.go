package runner

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeExecutor records calls and fails the entries named in failing.
type fakeExecutor struct {
	calls   []string
	envs    map[string][]string
	failing map[string]string
}

func newFakeExecutor() *fakeExecutor {
	return &fakeExecutor{
		envs:    make(map[string][]string),
		failing: make(map[string]string),
	}
}

func (e *fakeExecutor) Run(_ context.Context, entry Entry, env []string) (string, error) {
	e.calls = append(e.calls, entry.ID)
	e.envs[entry.ID] = env

	if msg, ok := e.failing[entry.ID]; ok {
		return "", errors.New(msg)
	}

	return fmt.Sprintf("table for %s\n", entry.ID), nil
}

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func newTestRunner(exec Executor, out io.Writer) *Runner {
	return New(NewRegistry(testEntries()), exec, discardLogger(), out)
}

func TestRunAllInOrder(t *testing.T) {
	exec := newFakeExecutor()
	r := newTestRunner(exec, io.Discard)

	results, err := r.Run(context.Background(), Options{})
	require.NoError(t, err)
	require.Len(t, results, 3)

	assert.Equal(t, []string{"alpha", "beta", "gamma"}, exec.calls)

	for i, id := range []string{"alpha", "beta", "gamma"} {
		assert.Equal(t, id, results[i].ID)
		assert.True(t, results[i].Succeeded)
		assert.Empty(t, results[i].Error)
		assert.Contains(t, results[i].Output, id)
	}
}

func TestRunCategoryFilter(t *testing.T) {
	exec := newFakeExecutor()
	r := newTestRunner(exec, io.Discard)

	results, err := r.Run(context.Background(), Options{
		Category: CategoryAdvanced,
	})
	require.NoError(t, err)
	require.Len(t, results, 1)
	assert.Equal(t, "gamma", results[0].ID)
	assert.Equal(t, []string{"gamma"}, exec.calls)
}

func TestRunUnknownCategoryExecutesNothing(t *testing.T) {
	exec := newFakeExecutor()
	r := newTestRunner(exec, io.Discard)

	results, err := r.Run(context.Background(), Options{
		Category: CategoryExpert,
	})
	require.Error(t, err)

	var cfgErr *ConfigurationError
	assert.True(t, errors.As(err, &cfgErr))
	assert.Nil(t, results)
	assert.Empty(t, exec.calls, "no benchmark may run on a config error")
}

func TestRunQuickAppliesOverrides(t *testing.T) {
	exec := newFakeExecutor()
	r := newTestRunner(exec, io.Discard)

	_, err := r.Run(context.Background(), Options{Quick: true})
	require.NoError(t, err)

	assert.Equal(t, []string{"BENCHVS_ITERATIONS=100"}, exec.envs["alpha"])
	assert.Empty(t, exec.envs["beta"],
		"entries without overrides run unchanged")
	assert.Equal(t, []string{"BENCHVS_SIZE=10"}, exec.envs["gamma"])
}

func TestRunWithoutQuickPassesNoEnv(t *testing.T) {
	exec := newFakeExecutor()
	r := newTestRunner(exec, io.Discard)

	_, err := r.Run(context.Background(), Options{})
	require.NoError(t, err)

	assert.Empty(t, exec.envs["alpha"])
}

func TestRunFailureIsolation(t *testing.T) {
	exec := newFakeExecutor()
	exec.failing["beta"] = "exit status 1: boom"

	r := newTestRunner(exec, io.Discard)

	results, err := r.Run(context.Background(), Options{
		Category: CategoryBasic,
	})
	require.NoError(t, err, "a benchmark failure must not abort the run")
	require.Len(t, results, 2)

	assert.True(t, results[0].Succeeded)
	assert.False(t, results[1].Succeeded)
	assert.Contains(t, results[1].Error, "boom")
	assert.Equal(t, 1, Failed(results))

	// The run continued past the failure.
	assert.Equal(t, []string{"alpha", "beta"}, exec.calls)
}

func TestRunProgressOutput(t *testing.T) {
	exec := newFakeExecutor()
	exec.failing["gamma"] = "boom"

	var buf bytes.Buffer
	r := newTestRunner(exec, &buf)

	_, err := r.Run(context.Background(), Options{Quick: true})
	require.NoError(t, err)

	out := buf.String()
	assert.Contains(t, out, "running alpha (basic)")
	assert.Contains(t, out, "BENCHVS_ITERATIONS=100 (quick mode)")
	assert.Contains(t, out, "table for alpha")
	assert.Contains(t, out, "PASS alpha")
	assert.Contains(t, out, "FAIL gamma")
	assert.Contains(t, out, "boom")
}

func TestRunIdempotentClassification(t *testing.T) {
	exec := newFakeExecutor()
	exec.failing["beta"] = "boom"

	r := newTestRunner(exec, io.Discard)

	first, err := r.Run(context.Background(), Options{})
	require.NoError(t, err)

	second, err := r.Run(context.Background(), Options{})
	require.NoError(t, err)

	require.Len(t, second, len(first))

	for i := range first {
		assert.Equal(t, first[i].ID, second[i].ID)
		assert.Equal(t, first[i].Succeeded, second[i].Succeeded)
	}
}
