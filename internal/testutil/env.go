// Package testutil provides utilities for testing the locator in isolation.
package testutil

import (
	"os"
	"path/filepath"
	"testing"
)

// SetupTestEnv isolates a test from the developer's real Rosetta install:
// the suite location variables are cleared and the config directory points
// at a fresh temp dir. It returns that temp dir.
//
// Cleanup is handled by t.TempDir and t.Setenv.
func SetupTestEnv(t *testing.T) string {
	t.Helper()

	tmpDir := t.TempDir()

	for _, key := range []string{"ROSETTA_BIN", "ROSETTA3", "ROSETTA", "ROSETTAFINDER_CONFIG"} {
		t.Setenv(key, "")
	}
	t.Setenv("XDG_CONFIG_HOME", filepath.Join(tmpDir, "config"))

	if err := os.MkdirAll(filepath.Join(tmpDir, "config"), 0o750); err != nil {
		t.Fatalf("failed to create test directory: %v", err)
	}

	return tmpDir
}

// MakeBinaries creates dir (if needed) and an empty executable file for each
// name in it. It returns dir.
func MakeBinaries(t *testing.T, dir string, names ...string) string {
	t.Helper()

	if err := os.MkdirAll(dir, 0o750); err != nil {
		t.Fatalf("failed to create %s: %v", dir, err)
	}
	for _, name := range names {
		path := filepath.Join(dir, name)
		if err := os.WriteFile(path, []byte("#!/bin/sh\n"), 0o755); err != nil { //nolint:gosec // fake binaries must be executable
			t.Fatalf("failed to create %s: %v", path, err)
		}
	}

	return dir
}
