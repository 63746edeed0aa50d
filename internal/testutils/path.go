package testutils

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func ChTempDir(t *testing.T, path string) {
	t.Helper()

	wd, err := os.Getwd()
	require.NoError(t, err)

	err = os.Chdir(path)
	require.NoError(t, err)

	t.Cleanup(func() {
		err := os.Chdir(wd)
		require.NoError(t, err)
	})
}

// WriteFile writes content to a file named name in a temporary directory
// and returns its path.
func WriteFile(t *testing.T, name, content string) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), name)
	err := os.WriteFile(path, []byte(content), 0o644)
	require.NoError(t, err)
	return path
}
