package desktop

import (
	"errors"
	"fmt"
	"strings"
	"unicode"
	"unicode/utf8"
)

var (
	ErrEscapeIncomplete = errors.New("unexpected end of string, escape sequence not completed")
	ErrInvalidBoolean   = errors.New("invalid boolean value")
)

func isValidKey(key string) bool {
	if len(key) == 0 {
		return false
	}

	if strings.HasSuffix(key, "[]") {
		return false
	}

	if !isAsciiNoControl(key) {
		return false
	}

	return true
}

func isAsciiNoControl(value string) bool {
	for _, r := range value {
		if r > unicode.MaxASCII || unicode.IsControl(r) {
			return false
		}
	}

	return true
}

func isValidValue(value string) bool {
	return utf8.ValidString(value)
}

// ParseBoolean parses a value of type boolean. Only true and false are valid.
func ParseBoolean(value string) (bool, error) {
	switch value {
	case "true":
		return true, nil
	case "false":
		return false, nil
	default:
		return false, fmt.Errorf("%w: %s", ErrInvalidBoolean, value)
	}
}

// FormatBoolean renders b as the lowercase true or false.
func FormatBoolean(b bool) string {
	if b {
		return "true"
	}
	return "false"
}

// UnescapeString converts escaped characters such as \n to actual newlines as defined in
// https://specifications.freedesktop.org/desktop-entry-spec/1.5/value-types.html.
// Unknown escape sequences are kept as they are.
func UnescapeString(s string) (string, error) {
	var builder strings.Builder
	builder.Grow(len(s))

	i := 0
	for i < len(s) {
		cur := s[i]
		if cur == '\\' {
			if i+1 >= len(s) {
				return "", ErrEscapeIncomplete
			}

			switch s[i+1] {
			case 's':
				builder.WriteByte(' ')
			case 'n':
				builder.WriteByte('\n')
			case 't':
				builder.WriteByte('\t')
			case 'r':
				builder.WriteByte('\r')
			case '\\':
				builder.WriteByte('\\')
			default:
				builder.WriteByte(cur)
				i++
				continue
			}
			i += 2
			continue
		}

		builder.WriteByte(cur)
		i++
	}

	return builder.String(), nil
}

// EscapeString is the inverse of UnescapeString.
// Spaces are only written as \s at the start and end of s, where a parser would strip them.
func EscapeString(s string) string {
	start := len(s) - len(strings.TrimLeft(s, " "))
	end := len(strings.TrimRight(s, " "))

	var builder strings.Builder
	builder.Grow(len(s))

	for i := 0; i < len(s); i++ {
		switch s[i] {
		case '\\':
			builder.WriteString(`\\`)
		case '\n':
			builder.WriteString(`\n`)
		case '\t':
			builder.WriteString(`\t`)
		case '\r':
			builder.WriteString(`\r`)
		case ' ':
			if i < start || i >= end {
				builder.WriteString(`\s`)
				continue
			}
			builder.WriteByte(' ')
		default:
			builder.WriteByte(s[i])
		}
	}

	return builder.String()
}

// SplitList splits the input string by semicolons that are not escaped and unescapes every item.
// A trailing semicolon does not produce an empty item.
func SplitList(s string) ([]string, error) {
	var result []string
	var current strings.Builder
	escaped := false

	for _, char := range s {
		switch {
		case escaped:
			if char != ';' {
				current.WriteRune('\\')
			}
			current.WriteRune(char)
			escaped = false
		case char == '\\':
			escaped = true
		case char == ';':
			result = append(result, current.String())
			current.Reset()
		default:
			current.WriteRune(char)
		}
	}

	if escaped {
		return nil, ErrEscapeIncomplete
	}

	if segment := current.String(); segment != "" {
		result = append(result, segment)
	}

	for i := range result {
		unescaped, err := UnescapeString(result[i])
		if err != nil {
			return nil, err
		}
		result[i] = unescaped
	}

	return result, nil
}

// JoinList is the inverse of SplitList. The result ends with a semicolon as recommended by the
// specification.
func JoinList(items []string) string {
	var builder strings.Builder
	for _, item := range items {
		builder.WriteString(strings.ReplaceAll(EscapeString(item), ";", `\;`))
		builder.WriteByte(';')
	}

	return builder.String()
}
