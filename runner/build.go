package runner

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/exec"
	"path/filepath"
)

// ResolveBinary returns the expected binary path for a benchmark given
// the bin directory.
func ResolveBinary(binDir, id string) string {
	return filepath.Join(binDir, id)
}

// Build compiles one benchmark program from benchmarksDir/<id> into
// binDir and returns the binary path.
func Build(
	ctx context.Context,
	logger *slog.Logger,
	benchmarksDir, binDir, id string,
) (string, error) {
	srcDir := filepath.Join(benchmarksDir, id)

	if _, err := os.Stat(srcDir); err != nil {
		return "", fmt.Errorf("benchmark source %s: %w", srcDir, err)
	}

	if err := os.MkdirAll(binDir, 0o755); err != nil {
		return "", fmt.Errorf("create bin dir %s: %w", binDir, err)
	}

	binPath, err := filepath.Abs(ResolveBinary(binDir, id))
	if err != nil {
		return "", fmt.Errorf("resolve binary path: %w", err)
	}

	logger.DebugContext(ctx, "building benchmark",
		slog.String("id", id),
		slog.String("source_dir", srcDir),
	)

	cmd := exec.CommandContext(ctx, "go", "build", "-o", binPath, ".")
	cmd.Dir = srcDir
	cmd.Stdout = os.Stderr
	cmd.Stderr = os.Stderr

	if err := cmd.Run(); err != nil {
		return "", fmt.Errorf("build %s: %w", id, err)
	}

	if _, err := os.Stat(binPath); err != nil {
		return "", fmt.Errorf(
			"build %s: binary not found at %s", id, binPath,
		)
	}

	return binPath, nil
}

// BuildAll compiles every given entry, failing fast on the first build
// error. Build failures are configuration-level problems, not
// benchmark outcomes.
func BuildAll(
	ctx context.Context,
	logger *slog.Logger,
	benchmarksDir, binDir string,
	entries []Entry,
) error {
	for _, entry := range entries {
		if _, err := Build(ctx, logger, benchmarksDir, binDir, entry.ID); err != nil {
			return err
		}
	}

	return nil
}
