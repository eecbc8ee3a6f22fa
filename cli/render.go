package cli

import (
	"io"
	"strings"

	"github.com/alecthomas/chroma/v2"
	"github.com/alecthomas/chroma/v2/lexers"
	chromastyles "github.com/alecthomas/chroma/v2/styles"
	"github.com/charmbracelet/lipgloss"
)

var (
	colorPrimary = lipgloss.Color("#7C3AED")
	colorSuccess = lipgloss.Color("#10B981")
	colorWarning = lipgloss.Color("#F59E0B")
	colorError   = lipgloss.Color("#EF4444")
	colorMuted   = lipgloss.Color("#6B7280")
)

// styles are bound to the renderer of the output, so colors are dropped when it is not a terminal.
type styles struct {
	title   lipgloss.Style
	muted   lipgloss.Style
	success lipgloss.Style
	warning lipgloss.Style
	added   lipgloss.Style
	removed lipgloss.Style

	renderer *lipgloss.Renderer
	syntax   *chroma.Style
}

func newStyles(w io.Writer) styles {
	r := lipgloss.NewRenderer(w)

	return styles{
		title:    r.NewStyle().Bold(true).Foreground(colorPrimary),
		muted:    r.NewStyle().Foreground(colorMuted),
		success:  r.NewStyle().Foreground(colorSuccess),
		warning:  r.NewStyle().Foreground(colorWarning),
		added:    r.NewStyle().Foreground(colorSuccess),
		removed:  r.NewStyle().Foreground(colorError),
		renderer: r,
		syntax:   chromastyles.Get("catppuccin-mocha"),
	}
}

// highlight colors the lines of a desktop file with the INI lexer.
func (s styles) highlight(content string) string {
	lexer := lexers.Get("ini")
	lines := strings.SplitAfter(content, "\n")

	var result strings.Builder
	for _, line := range lines {
		if line == "" {
			continue
		}
		result.WriteString(s.highlightLine(lexer, strings.TrimSuffix(line, "\n")))
		result.WriteByte('\n')
	}

	return result.String()
}

func (s styles) highlightLine(lexer chroma.Lexer, line string) string {
	if lexer == nil || line == "" {
		return line
	}

	iterator, err := lexer.Tokenise(nil, line)
	if err != nil {
		return line
	}

	var result strings.Builder
	for token := iterator(); token != chroma.EOF; token = iterator() {
		// The lexer terminates the line with a newline token, the caller adds its own.
		text := strings.ReplaceAll(token.Value, "\n", "")
		if text == "" {
			continue
		}

		entry := s.syntax.Get(token.Type)
		if !entry.Colour.IsSet() {
			result.WriteString(text)
			continue
		}

		styled := s.renderer.NewStyle().Foreground(lipgloss.Color(entry.Colour.String()))
		if entry.Bold == chroma.Yes {
			styled = styled.Bold(true)
		}
		if entry.Italic == chroma.Yes {
			styled = styled.Italic(true)
		}
		result.WriteString(styled.Render(text))
	}

	return result.String()
}

// colorDiff colors the lines of a line diff by their +/- prefix.
func (s styles) colorDiff(diff string) string {
	var result strings.Builder
	for _, line := range strings.SplitAfter(diff, "\n") {
		if line == "" {
			continue
		}

		text := strings.TrimSuffix(line, "\n")
		switch {
		case strings.HasPrefix(text, "+"):
			text = s.added.Render(text)
		case strings.HasPrefix(text, "-"):
			text = s.removed.Render(text)
		default:
			text = s.muted.Render(text)
		}
		result.WriteString(text)
		result.WriteByte('\n')
	}

	return result.String()
}
