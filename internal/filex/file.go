// Package filex provides small filesystem helpers.
package filex

import (
	"fmt"
	"os"
	"path/filepath"
)

// EnsureParentDir creates the directory that should contain path, if it does
// not exist yet, and returns it. Useful before opening a database file whose
// configured location may be in a directory that was never created.
func EnsureParentDir(path string) (string, error) {
	dir := filepath.Dir(filepath.Clean(path))
	if dir == "." {
		return dir, nil
	}
	if err := os.MkdirAll(dir, 0o770); err != nil {
		return "", fmt.Errorf("mkdir %s: %w", dir, err)
	}
	return dir, nil
}
