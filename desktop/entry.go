package desktop

import (
	"errors"
	"fmt"
	"path/filepath"
)

const (
	TypeApplication = "Application"
	EncodingUTF8    = "UTF-8"

	// DefaultVersion is the Version written into new entries when none is given.
	DefaultVersion = "1.0"
)

// Keys of the Desktop Entry group that Entry models.
const (
	KeyEncoding = "Encoding"
	KeyType     = "Type"
	KeyVersion  = "Version"
	KeyTerminal = "Terminal"
	KeyExec     = "Exec"
	KeyName     = "Name"
	KeyIcon     = "Icon"
	KeyHidden   = "Hidden"
	KeyKeywords = "Keywords"
)

var ErrMissingName = errors.New("Name field is required")

// Entry is the launcher view of a desktop file: the handful of keys turtle creates and edits.
// Every other key, group and comment of the underlying file is kept and written back untouched.
type Entry struct {
	// Path of the backing file. Empty for entries that were never loaded or written.
	Path string

	// Name is the specific name of the application, for example "Firefox".
	Name string

	// Exec is the command line, without the quoting used in the file.
	Exec string

	// Icon is an absolute path to an image or the name of an icon in the icon theme.
	Icon string

	// Terminal states whether the program runs in a terminal window.
	Terminal bool

	// Hidden means the user deleted the entry at their level. Menus do not show hidden entries.
	Hidden bool

	// RawKeywords is the Keywords value exactly as stored: escaped, semicolon separated and
	// usually ending in a semicolon. Use KeywordList and SetKeywordList for the decoded items.
	RawKeywords string

	Version  string
	Type     string
	Encoding string

	file *File
}

// NewEntry returns an application entry with Encoding and Type set and Version defaulting to
// DefaultVersion.
func NewEntry(name string, exec string, icon string, terminal bool, version string) *Entry {
	if version == "" {
		version = DefaultVersion
	}

	return &Entry{
		Name:     name,
		Exec:     exec,
		Icon:     icon,
		Terminal: terminal,
		Version:  version,
		Type:     TypeApplication,
		Encoding: EncodingUTF8,
	}
}

// FromFile reads the modelled keys of the Desktop Entry group.
// Name is required. Terminal and Hidden default to false, the other keys to an empty string.
// Name, Icon, Version, Type and Encoding are unescaped and Exec is unquoted. Keywords is kept
// escaped in RawKeywords.
func FromFile(file *File) (*Entry, error) {
	entry := &Entry{file: file}

	rawName, ok := file.Get(GroupDesktopEntry, KeyName)
	if !ok {
		return nil, ErrMissingName
	}

	var err error
	if entry.Name, err = UnescapeString(rawName); err != nil {
		return nil, fmt.Errorf("invalid %s: %w", KeyName, err)
	}

	stringKeys := []struct {
		key    string
		target *string
	}{
		{KeyIcon, &entry.Icon},
		{KeyVersion, &entry.Version},
		{KeyType, &entry.Type},
		{KeyEncoding, &entry.Encoding},
	}
	for _, s := range stringKeys {
		value, _ := file.Get(GroupDesktopEntry, s.key)
		if *s.target, err = UnescapeString(value); err != nil {
			return nil, fmt.Errorf("invalid %s: %w", s.key, err)
		}
	}

	entry.RawKeywords, _ = file.Get(GroupDesktopEntry, KeyKeywords)

	if rawExec, ok := file.Get(GroupDesktopEntry, KeyExec); ok {
		if entry.Exec, err = UnquoteExec(rawExec); err != nil {
			return nil, fmt.Errorf("invalid %s: %w", KeyExec, err)
		}
	}

	booleans := []struct {
		key    string
		target *bool
	}{
		{KeyTerminal, &entry.Terminal},
		{KeyHidden, &entry.Hidden},
	}
	for _, b := range booleans {
		value, ok := file.Get(GroupDesktopEntry, b.key)
		if !ok {
			continue
		}
		if *b.target, err = ParseBoolean(value); err != nil {
			return nil, fmt.Errorf("invalid %s: %w", b.key, err)
		}
	}

	return entry, nil
}

// File returns the desktop file with the entry's fields applied.
// For a new entry the keys are laid out in the order Encoding, Type, Version, Terminal, Exec,
// Name, Icon. For a loaded entry, keys whose value did not change keep their original text and
// keys that were absent are only added when they carry a non-default value.
func (e *Entry) File() *File {
	if e.file == nil {
		e.file = NewFile()
		set := func(key, value string) {
			e.file.Set(GroupDesktopEntry, key, value)
		}
		set(KeyEncoding, EscapeString(e.Encoding))
		set(KeyType, EscapeString(e.Type))
		set(KeyVersion, EscapeString(e.Version))
		set(KeyTerminal, FormatBoolean(e.Terminal))
		set(KeyExec, QuoteExec(e.Exec))
		set(KeyName, EscapeString(e.Name))
		set(KeyIcon, EscapeString(e.Icon))
		if e.Hidden {
			set(KeyHidden, FormatBoolean(e.Hidden))
		}
		if e.RawKeywords != "" {
			set(KeyKeywords, e.RawKeywords)
		}
		return e.file
	}

	e.applyString(KeyEncoding, e.Encoding)
	e.applyString(KeyType, e.Type)
	e.applyString(KeyVersion, e.Version)
	e.applyBoolean(KeyTerminal, e.Terminal)
	e.applyExec()
	e.applyString(KeyName, e.Name)
	e.applyString(KeyIcon, e.Icon)
	e.applyBoolean(KeyHidden, e.Hidden)

	if current, ok := e.file.Get(GroupDesktopEntry, KeyKeywords); current != e.RawKeywords {
		if ok || e.RawKeywords != "" {
			e.file.Set(GroupDesktopEntry, KeyKeywords, e.RawKeywords)
		}
	}

	return e.file
}

func (e *Entry) applyString(key string, value string) {
	raw, ok := e.file.Get(GroupDesktopEntry, key)
	if !ok && value == "" {
		return
	}

	if current, err := UnescapeString(raw); ok && err == nil && current == value {
		return
	}

	e.file.Set(GroupDesktopEntry, key, EscapeString(value))
}

func (e *Entry) applyBoolean(key string, value bool) {
	raw, ok := e.file.Get(GroupDesktopEntry, key)
	if !ok && !value {
		return
	}

	if current, err := ParseBoolean(raw); ok && err == nil && current == value {
		return
	}

	e.file.Set(GroupDesktopEntry, key, FormatBoolean(value))
}

func (e *Entry) applyExec() {
	raw, ok := e.file.Get(GroupDesktopEntry, KeyExec)
	if !ok && e.Exec == "" {
		return
	}

	if current, err := UnquoteExec(raw); ok && err == nil && current == e.Exec {
		return
	}

	e.file.Set(GroupDesktopEntry, KeyExec, QuoteExec(e.Exec))
}

// Program returns the file the entry launches, the first argument of its Exec key.
// An entry without Exec returns an empty string.
func (e *Entry) Program() (string, error) {
	if e.Exec == "" {
		return "", nil
	}

	// Prefer the stored spelling, which may hold several arguments.
	raw := QuoteExec(e.Exec)
	if e.file != nil {
		if current, ok := e.file.Get(GroupDesktopEntry, KeyExec); ok {
			if unquoted, err := UnquoteExec(current); err == nil && unquoted == e.Exec {
				raw = current
			}
		}
	}

	args, err := SplitExec(raw)
	if err != nil {
		return "", fmt.Errorf("Program: invalid %s: %w", KeyExec, err)
	}

	if len(args) == 0 {
		return "", nil
	}

	return args[0], nil
}

// Bytes returns the file content of the entry.
func (e *Entry) Bytes() []byte {
	return e.File().Bytes()
}

// FileName returns the name of the file the entry is stored in, e.g. Firefox.desktop.
func (e *Entry) FileName() string {
	if e.Path != "" {
		return filepath.Base(e.Path)
	}

	return e.Name + Extension
}

// IconIsPath reports whether Icon refers to an image file rather than an icon theme name.
func (e *Entry) IconIsPath() bool {
	return filepath.IsAbs(e.Icon)
}

// KeywordList returns Keywords split into its items.
func (e *Entry) KeywordList() ([]string, error) {
	return SplitList(e.RawKeywords)
}

// SetKeywordList replaces Keywords with the given items.
func (e *Entry) SetKeywordList(keywords []string) {
	e.RawKeywords = JoinList(keywords)
}

// LocalizedName returns the name to show for the given locale, e.g. the value of Name[nl] for
// locale nl_BE.UTF-8 when no Name[nl_BE] exists. Name is returned when no translation matches.
func (e *Entry) LocalizedName(locale string) string {
	if e.file == nil {
		return e.Name
	}

	name, ok := e.file.localized(KeyName, locale)
	if !ok {
		return e.Name
	}

	return name
}
