package testutil

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

// Workspace creates a scratch directory for one test. It is removed
// when the test completes.
func Workspace(t *testing.T) string {
	t.Helper()
	return t.TempDir()
}

// WriteFile writes content to name inside dir and returns the full
// path. Parent directories are created as needed.
func WriteFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

// WriteScript writes an executable shell script to name inside dir
// and returns the full path. The shebang line is added; body is the
// rest of the script.
func WriteScript(t *testing.T, dir, name, body string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
	require.NoError(t, os.WriteFile(path, []byte("#!/bin/sh\n"+body), 0o755))
	return path
}

// ReadFile returns the contents of name inside dir, failing the test
// if it cannot be read.
func ReadFile(t *testing.T, dir, name string) string {
	t.Helper()
	data, err := os.ReadFile(filepath.Join(dir, name))
	require.NoError(t, err)
	return string(data)
}

// FileExists reports whether name exists inside dir.
func FileExists(t *testing.T, dir, name string) bool {
	t.Helper()
	_, err := os.Stat(filepath.Join(dir, name))
	if err != nil {
		require.True(t, os.IsNotExist(err), "unexpected stat error: %v", err)
		return false
	}
	return true
}
