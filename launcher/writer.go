package launcher

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/exec"
	"strings"

	"github.com/MatthiasKunnen/turtle/basedir"
	"github.com/MatthiasKunnen/turtle/desktop"
	"github.com/rs/zerolog"
)

// Request holds the values of a launcher to create.
type Request struct {
	// Name is shown in the application menu and determines the file name, <Name>.desktop.
	Name string

	// Exec is the command to run. It is stored quoted, as a single argument.
	Exec string

	// ExecPath is the file that must be executable for Exec to work.
	// Defaults to Exec. A path without a slash is looked up in $PATH.
	ExecPath string

	// SkipExecCheck disables the execute permission check, e.g. for java -jar commands.
	SkipExecCheck bool

	// Icon is an absolute image path or an icon name. May be empty.
	Icon string

	Terminal bool

	// Version defaults to desktop.DefaultVersion.
	Version string

	// Overwrite allows replacing an existing desktop file with the same name.
	Overwrite bool
}

// Writer creates desktop files in a single applications directory.
type Writer struct {
	dir       string
	confirmer Confirmer
	logger    zerolog.Logger

	// Overwrite allows every request to replace existing desktop files.
	Overwrite bool

	// CreateDir creates a missing applications directory with 0o700 permissions.
	// Without it, writing into a missing directory fails with an error matching fs.ErrNotExist.
	CreateDir bool
}

// NewWriter returns a Writer for dir. When a file to launch is not executable, confirmer is asked
// whether the permission may be granted. A nil confirmer declines.
func NewWriter(dir string, confirmer Confirmer, logger zerolog.Logger) *Writer {
	return &Writer{
		dir:       dir,
		confirmer: confirmer,
		logger:    logger.With().Str("component", "writer").Logger(),
	}
}

// Dir returns the applications directory the writer writes to.
func (w *Writer) Dir() string {
	return w.dir
}

// Write creates the desktop file for req and returns its path.
// Deleting the returned path undoes the write.
func (w *Writer) Write(ctx context.Context, req Request) (string, error) {
	if err := ValidateName(req.Name); err != nil {
		return "", err
	}

	if strings.TrimSpace(req.Exec) == "" {
		return "", ErrEmptyExec
	}

	if err := w.prepareDir(); err != nil {
		return "", err
	}

	path := PathFor(w.dir, req.Name)

	if !req.Overwrite && !w.Overwrite {
		_, err := os.Lstat(path)
		switch {
		case err == nil:
			return "", fmt.Errorf("%w: %s", ErrEntryExists, path)
		case errors.Is(err, os.ErrNotExist):
		default:
			return "", fmt.Errorf("Write: failed to stat %s: %w", path, err)
		}
	}

	if !req.SkipExecCheck {
		execPath := req.ExecPath
		if execPath == "" {
			execPath = req.Exec
		}

		if err := w.ensureExecutable(ctx, execPath); err != nil {
			return "", err
		}
	}

	entry := desktop.NewEntry(req.Name, req.Exec, req.Icon, req.Terminal, req.Version)
	if err := desktop.WriteFile(path, entry.File()); err != nil {
		return "", err
	}

	w.logger.Info().Str("name", req.Name).Str("path", path).Msg("entry created")

	return path, nil
}

func (w *Writer) prepareDir() error {
	if w.CreateDir {
		return basedir.EnsureDir(w.dir)
	}

	info, err := os.Stat(w.dir)
	if err != nil {
		return fmt.Errorf("Write: applications directory unavailable: %w", err)
	}

	if !info.IsDir() {
		return fmt.Errorf("Write: applications directory %s is not a directory", w.dir)
	}

	return nil
}

func (w *Writer) ensureExecutable(ctx context.Context, execPath string) error {
	if !strings.Contains(execPath, "/") {
		resolved, err := exec.LookPath(execPath)
		if err != nil {
			return fmt.Errorf("Write: failed to find %s: %w", execPath, err)
		}
		execPath = resolved
	}

	executable, err := IsExecutable(execPath)
	if err != nil {
		return err
	}

	if executable {
		return nil
	}

	granted := false
	if w.confirmer != nil {
		granted, err = w.confirmer.ConfirmExecutable(ctx, execPath)
		if err != nil {
			return fmt.Errorf("Write: failed to confirm execute permission for %s: %w", execPath, err)
		}
	}

	if !granted {
		w.logger.Debug().Str("path", execPath).Msg("execute permission declined")
		return fmt.Errorf("%w: %s", ErrNotExecutable, execPath)
	}

	if err := GrantExecute(execPath); err != nil {
		return err
	}

	w.logger.Info().Str("path", execPath).Msg("execute permission granted")

	return nil
}
