package desktop

import (
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestQuoteExec(t *testing.T) {
	tests := []struct {
		command string
		want    string
	}{
		{"/usr/bin/firefox", `"/usr/bin/firefox"`},
		{"java -jar /opt/app.jar", `"java -jar /opt/app.jar"`},
		{`/opt/a"b`, `"/opt/a\\"b"`},
		{"/opt/$HOME", `"/opt/\\$HOME"`},
		{`/opt/back\slash`, `"/opt/back\\\\slash"`},
	}

	for _, tt := range tests {
		if got := QuoteExec(tt.command); got != tt.want {
			t.Errorf("QuoteExec(%q) = %q, want %q", tt.command, got, tt.want)
		}

		unquoted, err := UnquoteExec(tt.want)
		if err != nil {
			t.Errorf("UnquoteExec(%q) returned error: %v", tt.want, err)
			continue
		}

		if unquoted != tt.command {
			t.Errorf("UnquoteExec(%q) = %q, want %q", tt.want, unquoted, tt.command)
		}
	}
}

func TestUnquoteExecUnquoted(t *testing.T) {
	tests := []struct {
		value string
		want  string
	}{
		{"firefox %u", "firefox %u"},
		{`"/opt/app" --flag`, `"/opt/app" --flag`},
		{`"/opt/my app" "%f"`, `"/opt/my app" "%f"`},
		{"", ""},
	}

	for _, tt := range tests {
		got, err := UnquoteExec(tt.value)
		if err != nil {
			t.Errorf("UnquoteExec(%q) returned error: %v", tt.value, err)
			continue
		}

		if got != tt.want {
			t.Errorf("UnquoteExec(%q) = %q, want %q", tt.value, got, tt.want)
		}
	}
}

func TestUnquoteExecErrors(t *testing.T) {
	tests := []struct {
		value string
		want  error
	}{
		{`"`, ErrQuoteNotCompleted},
		{`"/opt/app`, ErrQuoteNotCompleted},
		{`"/opt/\\a"`, ErrUnknownEscapedCharacter},
		{`"/opt\\"`, ErrQuoteNotCompleted},
		{`"/opt\`, ErrEscapeIncomplete},
	}

	for _, tt := range tests {
		_, err := UnquoteExec(tt.value)
		if !errors.Is(err, tt.want) {
			t.Errorf("UnquoteExec(%q) error = %v, want %v", tt.value, err, tt.want)
		}
	}
}

func TestSplitExec(t *testing.T) {
	tests := []struct {
		value string
		want  []string
	}{
		{"firefox %u", []string{"firefox"}},
		{`"/opt/my app" --flag`, []string{"/opt/my app", "--flag"}},
		{`"java -jar /opt/app.jar"`, []string{"java -jar /opt/app.jar"}},
		{`  spaced   out  `, []string{"spaced", "out"}},
		{`"/opt/\\$HOME" "%f" 100%%`, []string{"/opt/$HOME", "%f", "100%"}},
		{`""`, []string{""}},
		{"", []string{}},
	}

	for _, tt := range tests {
		got, err := SplitExec(tt.value)
		if err != nil {
			t.Errorf("SplitExec(%q) returned error: %v", tt.value, err)
			continue
		}

		if diff := cmp.Diff(tt.want, got); diff != "" {
			t.Errorf("SplitExec(%q) mismatch (-want +got):\n%s", tt.value, diff)
		}
	}
}

func TestSplitExecErrors(t *testing.T) {
	tests := []struct {
		value string
		want  error
	}{
		{`"/opt/app`, ErrQuoteNotCompleted},
		{`/opt/\\$HOME`, ErrEscapeOutsideQuotes},
		{`app %`, ErrFieldCodeIncomplete},
		{`"/opt/\\a"`, ErrUnknownEscapedCharacter},
	}

	for _, tt := range tests {
		_, err := SplitExec(tt.value)
		if !errors.Is(err, tt.want) {
			t.Errorf("SplitExec(%q) error = %v, want %v", tt.value, err, tt.want)
		}
	}
}
