package helpers_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

// WriteTempFile writes content to a new file called name in the test's
// temporary directory and returns its path. The directory is removed when the
// test is done.
func WriteTempFile(t *testing.T, name, content string) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), name)
	err := os.WriteFile(path, []byte(content), 0644)
	require.NoError(t, err)

	return path
}

// TempFilePath returns a path in the test's temporary directory where no file
// exists yet.
func TempFilePath(t *testing.T, name string) string {
	t.Helper()

	return filepath.Join(t.TempDir(), name)
}
