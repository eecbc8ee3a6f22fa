package basedir

import (
	"fmt"
	"os"
	"path/filepath"
)

// dirMode is used for every directory turtle creates, as per the basedir spec.
const dirMode = 0o700

// EnsureDir creates dir and any missing parents using 0o700 permissions.
func EnsureDir(dir string) error {
	if err := os.MkdirAll(dir, dirMode); err != nil {
		return fmt.Errorf("EnsureDir: failed to create %s: %w", dir, err)
	}

	return nil
}

// CreateTemp creates a temporary file next to path. The parent directory must exist.
// Writing to the temporary file and renaming it onto path replaces path atomically.
func CreateTemp(path string) (*os.File, error) {
	dir := filepath.Dir(path)
	file, err := os.CreateTemp(dir, "."+filepath.Base(path)+".*")
	if err != nil {
		return nil, fmt.Errorf("CreateTemp: failed to create temporary file in %s: %w", dir, err)
	}

	return file, nil
}
