package launcher

import (
	"errors"
	"fmt"
)

var (
	ErrParse         = errors.New("malformed desktop entry")
	ErrNotExecutable = errors.New("file is not executable")
	ErrEntryExists   = errors.New("desktop entry already exists")
	ErrInvalidName   = errors.New("invalid launcher name")
	ErrEmptyExec     = errors.New("exec command is required")
	ErrNotFound      = errors.New("desktop entry not found")
)

// ParseError is returned when a desktop file exists but cannot be interpreted as a launcher,
// for example because its Name key is missing. It matches ErrParse and unwraps to the cause.
type ParseError struct {
	Path string
	Err  error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("failed to parse desktop file '%s': %v", e.Path, e.Err)
}

func (e *ParseError) Unwrap() error {
	return e.Err
}

func (e *ParseError) Is(target error) bool {
	return target == ErrParse
}
