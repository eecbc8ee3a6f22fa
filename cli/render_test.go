package cli

import (
	"bytes"
	"flag"
	"io"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestHighlightWithoutTerminal(t *testing.T) {
	content := "[Desktop Entry]\nName=Htop\n# comment\n\nExec=\"/usr/bin/htop\"\n"

	got := newStyles(&bytes.Buffer{}).highlight(content)
	if got != content {
		t.Errorf("highlight() = %q, want the content unchanged", got)
	}
}

func TestColorDiffWithoutTerminal(t *testing.T) {
	diff := " [Desktop Entry]\n-Hidden=false\n+Hidden=true\n"

	if got := newStyles(&bytes.Buffer{}).colorDiff(diff); got != diff {
		t.Errorf("colorDiff() = %q, want %q", got, diff)
	}
}

func TestParseArgs(t *testing.T) {
	tests := []struct {
		args     []string
		n        int
		want     []string
		wantFlag bool
	}{
		{[]string{"-t", "a"}, 1, []string{"a"}, true},
		{[]string{"a", "-t"}, 1, []string{"a"}, true},
		{[]string{"a", "b"}, 2, []string{"a", "b"}, false},
		{[]string{"--", "-t"}, 1, []string{"-t"}, false},
		{[]string{"a", "--", "-t"}, 2, []string{"a", "-t"}, false},
	}

	for _, tt := range tests {
		flags := flag.NewFlagSet("test", flag.ContinueOnError)
		terminal := flags.Bool("t", false, "")

		got, err := parseArgs(flags, tt.args, tt.n)
		if err != nil {
			t.Errorf("parseArgs(%v) returned error: %v", tt.args, err)
			continue
		}

		if diff := cmp.Diff(tt.want, got); diff != "" {
			t.Errorf("parseArgs(%v) mismatch (-want +got):\n%s", tt.args, diff)
		}

		if *terminal != tt.wantFlag {
			t.Errorf("parseArgs(%v) -t = %t, want %t", tt.args, *terminal, tt.wantFlag)
		}
	}

	flags := flag.NewFlagSet("test", flag.ContinueOnError)
	flags.SetOutput(io.Discard)
	flags.Usage = func() {}
	if _, err := parseArgs(flags, []string{"a", "b"}, 1); err == nil {
		t.Errorf("parseArgs() with too many arguments returned no error")
	}
}
