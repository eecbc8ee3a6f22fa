package desktop

import (
	"errors"
	"fmt"
	"strings"
)

var (
	ErrEscapeOutsideQuotes     = errors.New("invalid character escaped")
	ErrFieldCodeIncomplete     = errors.New("unexpected end of string, field code not completed")
	ErrQuoteNotCompleted       = errors.New("double quote does not have matching closing quote")
	ErrUnknownEscapedCharacter = errors.New("character must not be escaped")
)

// QuoteExec returns the Exec value that runs command as a single quoted argument, as described
// in [The Exec key]. Inside the quotes ", `, $ and \ are escaped with a backslash, after which the
// general string escaping applies. The result can be stored in a file as is.
//
// [The Exec key]: https://specifications.freedesktop.org/desktop-entry-spec/1.5/exec-variables.html
func QuoteExec(command string) string {
	var builder strings.Builder
	builder.Grow(len(command) + 2)

	builder.WriteByte('"')
	for i := 0; i < len(command); i++ {
		switch command[i] {
		case '"', '`', '$', '\\':
			builder.WriteByte('\\')
		}
		builder.WriteByte(command[i])
	}
	builder.WriteByte('"')

	return EscapeString(builder.String())
}

// UnquoteExec is the inverse of QuoteExec.
// A value that is not enclosed in double quotes, such as `firefox %u`, is only unescaped.
func UnquoteExec(value string) (string, error) {
	value, err := UnescapeString(value)
	if err != nil {
		return "", err
	}

	if !strings.HasPrefix(value, `"`) {
		return value, nil
	}

	var builder strings.Builder
	builder.Grow(len(value))

	escaped := false
	for i := 1; i < len(value); i++ {
		char := value[i]

		if escaped {
			switch char {
			case '"', '`', '$', '\\':
				builder.WriteByte(char)
				escaped = false
				continue
			default:
				return "", fmt.Errorf("UnquoteExec: %w: %c", ErrUnknownEscapedCharacter, char)
			}
		}

		switch char {
		case '\\':
			escaped = true
		case '"':
			if i != len(value)-1 {
				// Several arguments, such as "/opt/my app" --flag. QuoteExec never produces
				// these, keep them as they are.
				return value, nil
			}
			return builder.String(), nil
		default:
			builder.WriteByte(char)
		}
	}

	return "", fmt.Errorf("UnquoteExec: %w", ErrQuoteNotCompleted)
}

// SplitExec splits an Exec value, as stored in a file, into its arguments.
// Quoted arguments may contain spaces. Field codes such as %f are dropped, %% becomes %.
func SplitExec(value string) ([]string, error) {
	value, err := UnescapeString(value)
	if err != nil {
		return nil, err
	}

	args := make([]string, 0)
	var arg strings.Builder
	quoted := false
	escaped := false
	started := false

	for i := 0; i < len(value); i++ {
		char := value[i]

		if escaped {
			switch char {
			case '"', '`', '$', '\\':
				arg.WriteByte(char)
				escaped = false
				continue
			default:
				return nil, fmt.Errorf("SplitExec: %w: %c", ErrUnknownEscapedCharacter, char)
			}
		}

		switch char {
		case '\\':
			if !quoted {
				return nil, fmt.Errorf("SplitExec: %w", ErrEscapeOutsideQuotes)
			}
			escaped = true
		case '"':
			quoted = !quoted
			started = true
		case ' ':
			if quoted {
				arg.WriteByte(char)
				continue
			}
			if started {
				args = append(args, arg.String())
				arg.Reset()
				started = false
			}
		case '%':
			if quoted {
				arg.WriteByte(char)
				continue
			}
			if i+1 >= len(value) {
				return nil, fmt.Errorf("SplitExec: %w", ErrFieldCodeIncomplete)
			}
			i++
			if value[i] == '%' {
				arg.WriteByte('%')
				started = true
			}
		default:
			arg.WriteByte(char)
			started = true
		}
	}

	if quoted {
		return nil, fmt.Errorf("SplitExec: %w", ErrQuoteNotCompleted)
	}

	if started {
		args = append(args, arg.String())
	}

	return args, nil
}
