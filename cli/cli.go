// Package cli implements the turtle command line front end.
package cli

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/MatthiasKunnen/turtle/config"
	"github.com/MatthiasKunnen/turtle/flow"
	"github.com/MatthiasKunnen/turtle/launcher"
	"github.com/MatthiasKunnen/turtle/logging"
	"github.com/rs/zerolog"
)

const usage = `Usage: turtle [-config path] [-log-level level] <command> [arguments]

Commands:
  create [-n name] [-i icon] [-t] [-f] [-y] <executable>
                      create a menu item for an executable or .jar file
  list [-a]           list the menu items in the applications directory
  show <name>         print the desktop file of a menu item
  edit [--hidden=bool] [--terminal=bool] [--keywords=list] [--dry-run] <name>
                      change a menu item
  delete <name>       delete a menu item
  undo <path>         remove a menu item that was just created
`

// errUsage is returned for invalid command lines after the usage was printed.
var errUsage = errors.New("invalid usage")

type app struct {
	cfg    *config.Config
	store  *launcher.Store
	logger zerolog.Logger
	state  flow.State
	styles styles

	// locale selects translated names, e.g. nl_BE.UTF-8.
	locale string

	stdin  io.Reader
	stdout io.Writer
	stderr io.Writer
}

type command struct {
	name string
	run  func(a *app, ctx context.Context, args []string) error
}

var commands = []command{
	{"create", (*app).create},
	{"list", (*app).list},
	{"show", (*app).show},
	{"edit", (*app).edit},
	{"delete", (*app).deleteEntry},
	{"undo", (*app).undo},
}

// Run executes the command line args, without the program name, and returns the exit code.
func Run(ctx context.Context, args []string, stdin io.Reader, stdout io.Writer, stderr io.Writer) int {
	err := run(ctx, args, stdin, stdout, stderr)
	switch {
	case err == nil, errors.Is(err, flag.ErrHelp):
		return 0
	case errors.Is(err, errUsage):
		return 1
	default:
		fmt.Fprintf(stderr, "turtle: %s\n", describe(err))
		return 1
	}
}

func run(ctx context.Context, args []string, stdin io.Reader, stdout io.Writer, stderr io.Writer) error {
	flags := flag.NewFlagSet("turtle", flag.ContinueOnError)
	flags.SetOutput(stderr)
	flags.Usage = func() { fmt.Fprint(stderr, usage) }

	configPath := flags.String("config", "", "path of the config file")
	logLevel := flags.String("log-level", "", "log level, overrides the config file")

	if err := flags.Parse(args); err != nil {
		return err
	}

	if flags.NArg() == 0 {
		flags.Usage()
		return errUsage
	}

	if *configPath == "" {
		path, err := config.Path()
		if err != nil {
			return err
		}
		*configPath = path
	}

	cfg, err := config.Load(*configPath)
	if err != nil {
		return err
	}

	if *logLevel == "" {
		*logLevel = cfg.LogLevel
	}

	logger, err := logging.NewConsole(stderr, *logLevel)
	if err != nil {
		return err
	}

	if cfg.FirstRun {
		logger.Debug().Str("path", *configPath).Msg("no config file, using defaults")
	}

	a := &app{
		cfg:    cfg,
		store:  launcher.NewStore(cfg.AppsDir(), logger),
		logger: logger,
		styles: newStyles(stdout),
		locale: messagesLocale(),
		stdin:  stdin,
		stdout: stdout,
		stderr: stderr,
	}

	name := flags.Arg(0)
	for _, cmd := range commands {
		if cmd.name == name {
			return cmd.run(a, ctx, flags.Args()[1:])
		}
	}

	fmt.Fprintf(stderr, "turtle: unknown command %q\n", name)
	flags.Usage()

	return errUsage
}

// messagesLocale returns the locale for messages as POSIX resolves it.
func messagesLocale() string {
	for _, name := range []string{"LC_ALL", "LC_MESSAGES", "LANG"} {
		if value := os.Getenv(name); value != "" {
			return value
		}
	}

	return ""
}

// describe adds a hint to the errors a user can resolve.
func describe(err error) string {
	msg := err.Error()

	switch {
	case errors.Is(err, launcher.ErrEntryExists):
		return msg + " (use -f to replace it)"
	case errors.Is(err, launcher.ErrNotExecutable):
		return msg + " (use -y to make it executable)"
	case errors.Is(err, launcher.ErrNotFound):
		return msg + " (see turtle list)"
	default:
		return msg
	}
}

// newFlagSet returns the flag set of a sub command. Its usage is the matching line of the
// global usage.
func (a *app) newFlagSet(name string) *flag.FlagSet {
	flags := flag.NewFlagSet(name, flag.ContinueOnError)
	flags.SetOutput(a.stderr)
	flags.Usage = func() {
		for _, line := range strings.Split(usage, "\n") {
			if strings.HasPrefix(strings.TrimSpace(line), name+" ") {
				fmt.Fprintf(a.stderr, "Usage: turtle %s\n", strings.TrimSpace(line))
				return
			}
		}
		fmt.Fprint(a.stderr, usage)
	}

	return flags
}

// parseArgs parses flags placed before, between and after the positional arguments, which it
// returns. Everything after -- is positional.
func parseArgs(flags *flag.FlagSet, args []string, n int) ([]string, error) {
	positional := make([]string, 0, n)
	for {
		if err := flags.Parse(args); err != nil {
			return nil, err
		}

		rest := flags.Args()
		if len(rest) < len(args) && args[len(args)-len(rest)-1] == "--" {
			positional = append(positional, rest...)
			break
		}

		if len(rest) == 0 {
			break
		}

		positional = append(positional, rest[0])
		args = rest[1:]
	}

	if len(positional) != n {
		flags.Usage()
		return nil, errUsage
	}

	return positional, nil
}
