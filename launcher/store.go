package launcher

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/MatthiasKunnen/turtle/desktop"
	"github.com/rs/zerolog"
	"github.com/sergi/go-diff/diffmatchpatch"
)

// Store gives access to the desktop files of a single applications directory.
// It keeps no state between calls: every listing reads the directory again, so changes made by
// other programs are always visible.
type Store struct {
	dir    string
	logger zerolog.Logger
}

// Malformed is a desktop file that could not be loaded.
type Malformed struct {
	Path string
	Err  error
}

// Listing is the result of a directory scan.
type Listing struct {
	// Entries sorted by file name.
	Entries []*desktop.Entry

	// Malformed files sorted by file name.
	Malformed []Malformed
}

func NewStore(dir string, logger zerolog.Logger) *Store {
	return &Store{
		dir:    dir,
		logger: logger.With().Str("component", "store").Logger(),
	}
}

// Dir returns the applications directory of the store.
func (s *Store) Dir() string {
	return s.dir
}

// List returns the entries of all .desktop files in the directory, sorted by file name.
// Malformed files are skipped and logged. A missing directory results in an empty list.
func (s *Store) List() ([]*desktop.Entry, error) {
	listing, err := s.Scan()
	if err != nil {
		return nil, err
	}

	return listing.Entries, nil
}

// Scan reads every .desktop file in the directory. Subdirectories are not descended into.
func (s *Store) Scan() (Listing, error) {
	var listing Listing

	// os.ReadDir sorts by file name.
	dirEntries, err := os.ReadDir(s.dir)
	switch {
	case errors.Is(err, os.ErrNotExist):
		return listing, nil
	case err != nil:
		return listing, fmt.Errorf("Scan: failed to read directory %s: %w", s.dir, err)
	}

	for _, dirEntry := range dirEntries {
		if !desktop.IsDesktopFileName(dirEntry.Name()) {
			continue
		}

		if !dirEntry.Type().IsRegular() && dirEntry.Type()&fs.ModeSymlink == 0 {
			continue
		}

		path := filepath.Join(s.dir, dirEntry.Name())
		entry, err := s.Load(path)
		if err != nil {
			s.logger.Warn().Err(err).Str("path", path).Msg("skipping desktop file")
			listing.Malformed = append(listing.Malformed, Malformed{Path: path, Err: err})
			continue
		}

		listing.Entries = append(listing.Entries, entry)
	}

	return listing, nil
}

// Load parses the desktop file at path.
// A file that is not a valid launcher results in a *ParseError.
func (s *Store) Load(path string) (*desktop.Entry, error) {
	parsed, err := desktop.ParseFile(path)
	switch {
	case errors.Is(err, os.ErrNotExist):
		return nil, fmt.Errorf("%w: %s", ErrNotFound, path)
	case errors.Is(err, desktop.ErrSyntax):
		return nil, &ParseError{Path: path, Err: err}
	case err != nil:
		return nil, fmt.Errorf("Load: %w", err)
	}

	entry, err := desktop.FromFile(parsed)
	if err != nil {
		return nil, &ParseError{Path: path, Err: err}
	}
	entry.Path = path

	return entry, nil
}

// Find loads the entry stored as <name>.desktop.
func (s *Store) Find(name string) (*desktop.Entry, error) {
	if err := ValidateName(name); err != nil {
		return nil, err
	}

	return s.Load(PathFor(s.dir, name))
}

// Save writes the fields of entry back to its file. Keys, groups and comments that entry does
// not model are kept as they are.
func (s *Store) Save(entry *desktop.Entry) error {
	if entry.Path == "" {
		return fmt.Errorf("Save: entry %q has no file", entry.Name)
	}

	if err := desktop.WriteFile(entry.Path, entry.File()); err != nil {
		return err
	}

	s.logger.Info().Str("name", entry.Name).Str("path", entry.Path).Msg("entry saved")

	return nil
}

// Preview returns a line diff between the file on disk and the content Save would write.
// Removed lines start with "-", added lines with "+" and unchanged lines with a space.
// An empty string means Save would not change the file.
func (s *Store) Preview(entry *desktop.Entry) (string, error) {
	current, err := os.ReadFile(entry.Path)
	if err != nil && !errors.Is(err, os.ErrNotExist) {
		return "", fmt.Errorf("Preview: failed to read %s: %w", entry.Path, err)
	}

	return lineDiff(string(current), string(entry.Bytes())), nil
}

// Delete removes the file of entry. This cannot be undone.
func (s *Store) Delete(entry *desktop.Entry) error {
	return s.DeletePath(entry.Path)
}

// DeletePath removes the desktop file at path.
func (s *Store) DeletePath(path string) error {
	err := os.Remove(path)
	switch {
	case errors.Is(err, os.ErrNotExist):
		return fmt.Errorf("%w: %s", ErrNotFound, path)
	case err != nil:
		return fmt.Errorf("Delete: failed to remove %s: %w", path, err)
	}

	s.logger.Info().Str("path", path).Msg("entry deleted")

	return nil
}

func lineDiff(oldText string, newText string) string {
	if oldText == newText {
		return ""
	}

	dmp := diffmatchpatch.New()
	chars1, chars2, lineArray := dmp.DiffLinesToChars(oldText, newText)
	diffs := dmp.DiffMain(chars1, chars2, false)
	diffs = dmp.DiffCharsToLines(diffs, lineArray)

	var builder strings.Builder
	for _, d := range diffs {
		prefix := " "
		switch d.Type {
		case diffmatchpatch.DiffInsert:
			prefix = "+"
		case diffmatchpatch.DiffDelete:
			prefix = "-"
		}

		for _, l := range strings.SplitAfter(d.Text, "\n") {
			if l == "" {
				continue
			}
			builder.WriteString(prefix)
			builder.WriteString(l)
			if !strings.HasSuffix(l, "\n") {
				builder.WriteByte('\n')
			}
		}
	}

	return builder.String()
}
