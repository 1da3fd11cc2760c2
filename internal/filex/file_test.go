package filex

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestEnsureParentDirCreatesMissingDirs(t *testing.T) {
	base := t.TempDir()
	path := filepath.Join(base, "nested", "deeper", "state.db")

	dir, err := EnsureParentDir(path)
	require.NoError(t, err)
	require.Equal(t, filepath.Join(base, "nested", "deeper"), dir)

	info, err := os.Stat(dir)
	require.NoError(t, err)
	require.True(t, info.IsDir())
}

func TestEnsureParentDirRelativeFile(t *testing.T) {
	dir, err := EnsureParentDir("state.db")
	require.NoError(t, err)
	require.Equal(t, ".", dir)
}

func TestEnsureParentDirExisting(t *testing.T) {
	base := t.TempDir()
	_, err := EnsureParentDir(filepath.Join(base, "state.db"))
	require.NoError(t, err)
}
