package desktop

import (
	"bufio"
	"bytes"
	"errors"
	"fmt"
	"io"
	"strings"
)

const (
	// GroupDesktopEntry is the name of the group every desktop file starts with.
	GroupDesktopEntry = "Desktop Entry"

	requiredGroupHeader = "[" + GroupDesktopEntry + "]"
)

var utf8Bom = []byte{0xEF, 0xBB, 0xBF}

// ErrSyntax is wrapped by every error Parse returns for malformed input.
var ErrSyntax = errors.New("desktop file syntax error")

// File is an ordered representation of a desktop file.
// Unlike a map of groups, it remembers the order and original text of every line, including
// comments and blank lines, so that a file that is parsed, modified and written again only
// differs on the lines that were modified.
type File struct {
	bom      bool
	preamble []*line
	groups   []*group
}

type group struct {
	name   string
	header string
	lines  []*line
}

// line is either a comment/blank line (key is empty) or a key-value pair.
// raw holds the text as read. It is cleared when the value changes so the line gets re-rendered.
type line struct {
	raw   string
	key   string
	value string
}

func (l *line) isPair() bool {
	return l.key != ""
}

func (l *line) String() string {
	if l.raw != "" || !l.isPair() {
		return l.raw
	}

	return l.key + "=" + l.value
}

// NewFile returns a file containing only an empty [Desktop Entry] group.
func NewFile() *File {
	return &File{
		groups: []*group{{name: GroupDesktopEntry, header: requiredGroupHeader}},
	}
}

// Parse reads a desktop file as specified in the [basic format] of the Desktop Entry
// Specification. Values are not interpreted; see Entry for typed access.
//
// [basic format]: https://specifications.freedesktop.org/desktop-entry-spec/1.5/basic-format.html
func Parse(reader io.Reader) (*File, error) {
	var file File
	r := bufio.NewReader(reader)

	maybeBom, err := r.Peek(len(utf8Bom))
	if err == nil && bytes.Equal(maybeBom, utf8Bom) {
		_, _ = r.Discard(len(utf8Bom))
		file.bom = true
	}

	sc := bufio.NewScanner(r)
	seenGroups := make(map[string]bool)
	seenKeys := make(map[string]bool)
	var current *group

	lineNumber := 0
	for sc.Scan() {
		lineNumber++
		raw := sc.Text()
		text := strings.TrimRight(raw, " \t\r")

		if len(text) == 0 || strings.HasPrefix(text, "#") {
			l := &line{raw: raw}
			if current == nil {
				file.preamble = append(file.preamble, l)
			} else {
				current.lines = append(current.lines, l)
			}
			continue
		}

		if current == nil && text != requiredGroupHeader {
			return nil, fmt.Errorf(
				"%w: line %d, expected %s, found %s",
				ErrSyntax,
				lineNumber,
				requiredGroupHeader,
				text,
			)
		}

		if strings.HasPrefix(text, "[") && strings.HasSuffix(text, "]") {
			groupName := text[1 : len(text)-1]
			if seenGroups[groupName] {
				return nil, fmt.Errorf(
					"%w: line %d, duplicate group %s",
					ErrSyntax,
					lineNumber,
					groupName,
				)
			}
			seenGroups[groupName] = true
			clear(seenKeys)

			current = &group{name: groupName, header: raw}
			file.groups = append(file.groups, current)
			continue
		}

		keyValSplit := strings.SplitN(text, "=", 2)
		if len(keyValSplit) < 2 {
			return nil, fmt.Errorf("%w: line %d, tried to read key-value"+
				" line but no value could be determined. Line: %s", ErrSyntax, lineNumber, text)
		}

		key := strings.TrimSpace(keyValSplit[0])
		value := strings.TrimLeft(keyValSplit[1], " \t")

		if !isValidKey(key) {
			return nil, fmt.Errorf("%w: line %d, invalid key: %s", ErrSyntax, lineNumber, key)
		}

		if !isValidValue(value) {
			return nil, fmt.Errorf("%w: line %d, value is not UTF-8: %q", ErrSyntax, lineNumber, value)
		}

		if seenKeys[key] {
			return nil, fmt.Errorf("%w: line %d, duplicate key %s", ErrSyntax, lineNumber, key)
		}
		seenKeys[key] = true

		current.lines = append(current.lines, &line{raw: raw, key: key, value: value})
	}

	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("failed reading line %d: %w", lineNumber+1, err)
	}

	if current == nil {
		return nil, fmt.Errorf("%w: missing %s group", ErrSyntax, requiredGroupHeader)
	}

	return &file, nil
}

// Groups returns the group names in file order. The first one is always Desktop Entry.
func (f *File) Groups() []string {
	result := make([]string, 0, len(f.groups))
	for _, g := range f.groups {
		result = append(result, g.name)
	}

	return result
}

// Keys returns the keys of a group in file order, including localized keys such as Name[nl].
func (f *File) Keys(groupName string) []string {
	g := f.group(groupName)
	if g == nil {
		return nil
	}

	var result []string
	for _, l := range g.lines {
		if l.isPair() {
			result = append(result, l.key)
		}
	}

	return result
}

// Get returns the raw, still escaped, value of key in the given group.
func (f *File) Get(groupName string, key string) (string, bool) {
	l := f.find(groupName, key)
	if l == nil {
		return "", false
	}

	return l.value, true
}

// Set assigns the raw value of key, creating the group and key when needed.
// A new key is added after the last key of the group. Setting a key to its current value keeps
// the line as it was read.
func (f *File) Set(groupName string, key string, value string) {
	if l := f.find(groupName, key); l != nil {
		if l.value != value {
			l.value = value
			l.raw = ""
		}
		return
	}

	g := f.group(groupName)
	if g == nil {
		g = &group{name: groupName, header: "[" + groupName + "]"}
		if len(f.groups) > 0 {
			// Groups are separated by a blank line.
			last := f.groups[len(f.groups)-1]
			if n := len(last.lines); n == 0 || last.lines[n-1].isPair() {
				last.lines = append(last.lines, &line{})
			}
		}
		f.groups = append(f.groups, g)
	}

	insertAt := 0
	for i, l := range g.lines {
		if l.isPair() {
			insertAt = i + 1
		}
	}

	g.lines = append(g.lines, nil)
	copy(g.lines[insertAt+1:], g.lines[insertAt:])
	g.lines[insertAt] = &line{key: key, value: value}
}

// Delete removes key from the group. It reports whether the key existed.
func (f *File) Delete(groupName string, key string) bool {
	g := f.group(groupName)
	if g == nil {
		return false
	}

	for i, l := range g.lines {
		if l.isPair() && l.key == key {
			g.lines = append(g.lines[:i], g.lines[i+1:]...)
			return true
		}
	}

	return false
}

// WriteTo writes the file. Lines that were not modified are written exactly as they were read.
func (f *File) WriteTo(w io.Writer) (int64, error) {
	bw := bufio.NewWriter(w)
	var written int64

	writeLine := func(s string) error {
		n, err := bw.WriteString(s)
		written += int64(n)
		if err != nil {
			return err
		}
		err = bw.WriteByte('\n')
		if err == nil {
			written++
		}
		return err
	}

	if f.bom {
		n, err := bw.Write(utf8Bom)
		written += int64(n)
		if err != nil {
			return written, err
		}
	}

	for _, l := range f.preamble {
		if err := writeLine(l.String()); err != nil {
			return written, err
		}
	}

	for _, g := range f.groups {
		if err := writeLine(g.header); err != nil {
			return written, err
		}
		for _, l := range g.lines {
			if err := writeLine(l.String()); err != nil {
				return written, err
			}
		}
	}

	return written, bw.Flush()
}

// Bytes returns the content WriteTo would write.
func (f *File) Bytes() []byte {
	var buf bytes.Buffer
	_, _ = f.WriteTo(&buf)
	return buf.Bytes()
}

func (f *File) group(name string) *group {
	for _, g := range f.groups {
		if g.name == name {
			return g
		}
	}

	return nil
}

func (f *File) find(groupName string, key string) *line {
	g := f.group(groupName)
	if g == nil {
		return nil
	}

	for _, l := range g.lines {
		if l.isPair() && l.key == key {
			return l
		}
	}

	return nil
}
