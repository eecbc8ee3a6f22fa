package launcher

import (
	"context"
	"fmt"
	"io/fs"
	"os"
)

// grantedMode is applied by GrantExecute: read, write and execute for owner, group and others.
const grantedMode fs.FileMode = 0o777

// Confirmer asks the user whether the execute permission may be added to a file.
type Confirmer interface {
	ConfirmExecutable(ctx context.Context, path string) (bool, error)
}

// ConfirmFunc adapts a function to the Confirmer interface.
type ConfirmFunc func(ctx context.Context, path string) (bool, error)

func (f ConfirmFunc) ConfirmExecutable(ctx context.Context, path string) (bool, error) {
	return f(ctx, path)
}

// IsExecutable reports whether path is a regular file with at least one execute bit set.
func IsExecutable(path string) (bool, error) {
	info, err := os.Stat(path)
	if err != nil {
		return false, fmt.Errorf("IsExecutable: failed to stat %s: %w", path, err)
	}

	return info.Mode().IsRegular() && info.Mode().Perm()&0o111 != 0, nil
}

// GrantExecute makes path readable, writable and executable for everyone.
func GrantExecute(path string) error {
	if err := os.Chmod(path, grantedMode); err != nil {
		return fmt.Errorf("GrantExecute: failed to chmod %s: %w", path, err)
	}

	return nil
}
