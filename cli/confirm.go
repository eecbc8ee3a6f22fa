package cli

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/MatthiasKunnen/turtle/launcher"
)

// promptConfirmer asks on the terminal whether a file may be made executable.
type promptConfirmer struct {
	in  *bufio.Reader
	out io.Writer
}

func newPromptConfirmer(in io.Reader, out io.Writer) *promptConfirmer {
	return &promptConfirmer{in: bufio.NewReader(in), out: out}
}

// ConfirmExecutable accepts y and yes. Anything else, including end of input, declines.
func (c *promptConfirmer) ConfirmExecutable(ctx context.Context, path string) (bool, error) {
	if err := ctx.Err(); err != nil {
		return false, err
	}

	fmt.Fprintf(c.out, "%s is not executable. Make it executable? [y/N] ", path)

	answer, err := c.in.ReadString('\n')
	if err != nil && err != io.EOF {
		return false, err
	}

	switch strings.ToLower(strings.TrimSpace(answer)) {
	case "y", "yes":
		return true, nil
	default:
		return false, nil
	}
}

// alwaysConfirm grants the permission without asking.
var alwaysConfirm = launcher.ConfirmFunc(func(context.Context, string) (bool, error) {
	return true, nil
})
