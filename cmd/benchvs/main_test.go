package main

import (
	"bytes"
	"io"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestVerboseFlagRaisesLogLevel(t *testing.T) {
	level := new(slog.LevelVar)
	logger := slog.New(slog.NewTextHandler(io.Discard, &slog.HandlerOptions{
		Level: level,
	}))

	root := newRootCmd(logger, level)
	root.SetOut(io.Discard)
	root.SetErr(io.Discard)
	root.SetArgs([]string{"--verbose", "list"})

	require.NoError(t, root.Execute())
	assert.Equal(t, slog.LevelDebug, level.Level())
}

func TestDefaultLogLevelIsInfo(t *testing.T) {
	level := new(slog.LevelVar)
	logger := slog.New(slog.NewTextHandler(io.Discard, &slog.HandlerOptions{
		Level: level,
	}))

	root := newRootCmd(logger, level)
	root.SetOut(io.Discard)
	root.SetErr(io.Discard)
	root.SetArgs([]string{"list"})

	require.NoError(t, root.Execute())
	assert.Equal(t, slog.LevelInfo, level.Level())
}

func TestListOutput(t *testing.T) {
	level := new(slog.LevelVar)
	logger := slog.New(slog.NewTextHandler(io.Discard, &slog.HandlerOptions{
		Level: level,
	}))

	var buf bytes.Buffer
	root := newRootCmd(logger, level)
	root.SetOut(&buf)
	root.SetErr(io.Discard)
	root.SetArgs([]string{"list"})

	require.NoError(t, root.Execute())

	out := buf.String()
	assert.Contains(t, out, "basic (")
	assert.Contains(t, out, "advanced (")
	assert.Contains(t, out, "expert (")
	assert.Contains(t, out, "stringconcat")
	assert.Contains(t, out, "rowcol")
	assert.Contains(t, out, "defercost")
}
