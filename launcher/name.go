package launcher

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/MatthiasKunnen/turtle/desktop"
)

// ValidateName checks that name can be used as the base name of a desktop file.
func ValidateName(name string) error {
	switch {
	case strings.TrimSpace(name) == "":
		return fmt.Errorf("%w: name is empty", ErrInvalidName)
	case name == "." || name == "..":
		return fmt.Errorf("%w: %q", ErrInvalidName, name)
	case strings.ContainsAny(name, "/\x00"):
		return fmt.Errorf("%w: %q contains a path separator or NUL", ErrInvalidName, name)
	}

	return nil
}

// PathFor returns the path of the desktop file for name in dir: <dir>/<name>.desktop.
func PathFor(dir string, name string) string {
	return filepath.Join(dir, name+desktop.Extension)
}
