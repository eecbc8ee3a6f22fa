package launcher

import (
	"path/filepath"
	"strings"
	"unicode"
	"unicode/utf8"
)

const jarExtension = ".jar"

// Defaults are values given up front, e.g. on the command line, that take precedence over the
// values derived from the executable.
type Defaults struct {
	Name     string
	Icon     string
	Terminal bool
}

// Draft is a launcher that is being set up and has not been written yet.
type Draft struct {
	Name          string
	Exec          string
	ExecPath      string
	SkipExecCheck bool
	Icon          string
	Terminal      bool
}

// NewDraft prepares a launcher for the executable at path.
// Java archives are run with java -jar and do not need the execute permission.
func NewDraft(path string, defaults Defaults) Draft {
	draft := Draft{
		Name:     defaults.Name,
		Exec:     path,
		ExecPath: path,
		Icon:     defaults.Icon,
		Terminal: defaults.Terminal,
	}

	if strings.HasSuffix(path, jarExtension) {
		draft.Exec = "java -jar " + path
		draft.SkipExecCheck = true
	}

	if draft.Name == "" {
		draft.Name = DefaultName(path)
	}

	return draft
}

// DefaultName derives a launcher name from a file path: the base name without extension, first
// letter upper case, the rest lower case. /usr/bin/firefox-bin becomes Firefox-bin.
func DefaultName(path string) string {
	base := filepath.Base(path)
	name := strings.TrimSuffix(base, filepath.Ext(base))
	if name == "" {
		// Dotfiles such as .hidden have no stem.
		name = base
	}

	first, size := utf8.DecodeRuneInString(name)
	if first == utf8.RuneError {
		return name
	}

	return string(unicode.ToUpper(first)) + strings.ToLower(name[size:])
}

// Request converts the draft to a write request.
func (d Draft) Request() Request {
	return Request{
		Name:          d.Name,
		Exec:          d.Exec,
		ExecPath:      d.ExecPath,
		SkipExecCheck: d.SkipExecCheck,
		Icon:          d.Icon,
		Terminal:      d.Terminal,
	}
}
