// Package testsupport provides fixtures shared across package tests.
package testsupport

import (
	"os"
	"path/filepath"
	"testing"

	"snapsort/internal/config"
)

// ConfigOption allows callers to customize the generated test configuration.
type ConfigOption func(*config.Config)

// NewConfig produces a config seeded with unique temp directories per test.
func NewConfig(t testing.TB, opts ...ConfigOption) *config.Config {
	t.Helper()

	base := t.TempDir()
	cfg := config.Default()
	cfg.Paths.StateDir = filepath.Join(base, "state")
	cfg.Paths.LogDir = filepath.Join(base, "logs")
	cfg.Paths.HistoryDB = filepath.Join(base, "history.db")

	for _, opt := range opts {
		opt(&cfg)
	}

	return &cfg
}

// WithOverwrite enables overwrite-on-collision on the test config.
func WithOverwrite() ConfigOption {
	return func(cfg *config.Config) {
		cfg.Library.OverwriteExisting = true
	}
}

// WithFFprobeBinary points the test config at a specific ffprobe executable.
func WithFFprobeBinary(binary string) ConfigOption {
	return func(cfg *config.Config) {
		cfg.Metadata.FFprobeBinary = binary
	}
}

// StubFFprobe writes an executable shell script that prints the given JSON
// payload on stdout and returns its path. Tests point the video strategy at
// it to exercise the probe path without a real ffprobe.
func StubFFprobe(t testing.TB, payload string) string {
	t.Helper()

	binDir := filepath.Join(t.TempDir(), "bin")
	if err := os.MkdirAll(binDir, 0o755); err != nil {
		t.Fatalf("mkdir bin dir: %v", err)
	}
	target := filepath.Join(binDir, "ffprobe")
	script := "#!/bin/sh\ncat <<'EOF'\n" + payload + "\nEOF\n"
	if err := os.WriteFile(target, []byte(script), 0o755); err != nil {
		t.Fatalf("write ffprobe stub: %v", err)
	}
	return target
}
