package testutil

import (
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWriteFile_CreatesParentDirs(t *testing.T) {
	t.Parallel()

	dir := Workspace(t)
	path := WriteFile(t, dir, "nested/deep/file.txt", "content")

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "content", string(data))
}

func TestWriteScript_IsExecutable(t *testing.T) {
	t.Parallel()

	dir := Workspace(t)
	path := WriteScript(t, dir, "tool.sh", "exit 0\n")

	info, err := os.Stat(path)
	require.NoError(t, err)
	assert.NotZero(t, info.Mode()&0o111, "script should be executable")

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "#!/bin/sh\nexit 0\n", string(data))
}

func TestFileExists(t *testing.T) {
	t.Parallel()

	dir := Workspace(t)
	assert.False(t, FileExists(t, dir, "missing.txt"))

	WriteFile(t, dir, "present.txt", "")
	assert.True(t, FileExists(t, dir, "present.txt"))
}

func TestReadFile(t *testing.T) {
	t.Parallel()

	dir := Workspace(t)
	WriteFile(t, dir, "file.txt", "hello")
	assert.Equal(t, "hello", ReadFile(t, dir, "file.txt"))
}
