// Package desktop reads and writes desktop entry files as specified by the
// [Desktop Entry Specification].
//
// [Desktop Entry Specification]: https://specifications.freedesktop.org/desktop-entry-spec/1.5/
package desktop

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/MatthiasKunnen/turtle/basedir"
)

// Extension is the file extension of desktop entries.
const Extension = ".desktop"

// FileMode is the mode of newly written desktop files.
const FileMode fs.FileMode = 0o644

// IsDesktopFileName reports whether name has the .desktop extension.
func IsDesktopFileName(name string) bool {
	return strings.HasSuffix(name, Extension) && len(name) > len(Extension)
}

// ParseFile parses the desktop file at path.
func ParseFile(path string) (*File, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("ParseFile, failed to open file %s: %w", path, err)
	}
	defer file.Close()

	return Parse(file)
}

// WriteFile writes file to path. The content is written to a temporary file in the same directory
// which then replaces path, so readers never observe a partially written desktop file.
// An existing file keeps its mode, a new one gets FileMode. When path is a symlink, its target is
// written and the link stays in place.
func WriteFile(path string, file *File) error {
	if resolved, err := filepath.EvalSymlinks(path); err == nil {
		path = resolved
	}

	mode := FileMode
	info, err := os.Stat(path)
	switch {
	case err == nil:
		mode = info.Mode().Perm()
	case errors.Is(err, os.ErrNotExist):
	default:
		return fmt.Errorf("WriteFile: failed to stat %s: %w", path, err)
	}

	tmp, err := basedir.CreateTemp(path)
	if err != nil {
		return err
	}
	tmpPath := tmp.Name()

	_, err = file.WriteTo(tmp)
	if err == nil {
		err = tmp.Chmod(mode)
	}
	if err == nil {
		err = tmp.Sync()
	}
	if closeErr := tmp.Close(); err == nil {
		err = closeErr
	}
	if err == nil {
		err = os.Rename(tmpPath, path)
	}

	if err != nil {
		_ = os.Remove(tmpPath)
		return fmt.Errorf("WriteFile: failed to write %s: %w", path, err)
	}

	return nil
}
