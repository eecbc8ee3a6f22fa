package cli

import (
	"context"
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/MatthiasKunnen/turtle/basedir"
	"github.com/MatthiasKunnen/turtle/desktop"
	"github.com/MatthiasKunnen/turtle/flow"
	"github.com/MatthiasKunnen/turtle/launcher"
)

func (a *app) create(ctx context.Context, args []string) error {
	flags := a.newFlagSet("create")

	var defaults launcher.Defaults
	var force, yes bool
	flags.StringVar(&defaults.Name, "n", "", "name of the menu item, defaults to the file name")
	flags.StringVar(&defaults.Name, "name", "", "alias of -n")
	flags.StringVar(&defaults.Icon, "i", "", "icon file or icon theme name")
	flags.StringVar(&defaults.Icon, "icon", "", "alias of -i")
	flags.BoolVar(&defaults.Terminal, "t", false, "run in a terminal")
	flags.BoolVar(&defaults.Terminal, "terminal", false, "alias of -t")
	flags.BoolVar(&force, "f", false, "replace an existing menu item with the same name")
	flags.BoolVar(&yes, "y", false, "make the executable executable without asking")

	positional, err := parseArgs(flags, args, 1)
	if err != nil {
		return err
	}

	path, err := filepath.Abs(basedir.ExpandHome(positional[0]))
	if err != nil {
		return fmt.Errorf("create: %w", err)
	}

	if strings.Contains(defaults.Icon, "/") {
		if defaults.Icon, err = filepath.Abs(basedir.ExpandHome(defaults.Icon)); err != nil {
			return fmt.Errorf("create: %w", err)
		}
	}

	state, _ := a.state.Choose(path, defaults)

	var confirmer launcher.Confirmer = newPromptConfirmer(a.stdin, a.stdout)
	if yes {
		confirmer = alwaysConfirm
	}

	writer := launcher.NewWriter(a.store.Dir(), confirmer, a.logger)
	writer.Overwrite = a.cfg.Overwrite
	// Fresh accounts may not have an applications directory yet.
	writer.CreateDir = true

	req := state.Draft.Request()
	req.Version = a.cfg.Version
	req.Overwrite = force

	written, err := writer.Write(ctx, req)
	if err != nil {
		return err
	}

	a.state, _ = state.Created(written)

	fmt.Fprintln(a.stdout, a.styles.success.Render(a.state.Notice))
	fmt.Fprintln(a.stdout, written)
	fmt.Fprintln(a.stdout, a.styles.muted.Render("Undo with: turtle undo "+written))

	return nil
}

func (a *app) list(_ context.Context, args []string) error {
	flags := a.newFlagSet("list")
	all := flags.Bool("a", false, "also show files that could not be read")

	if _, err := parseArgs(flags, args, 0); err != nil {
		return err
	}

	state, _ := a.state.SwitchPage(flow.PageInstalled)
	if !state.NeedsListing() {
		return nil
	}

	listing, err := a.store.Scan()
	if err != nil {
		return err
	}
	a.state = state.Listed()

	if len(listing.Entries) == 0 && (!*all || len(listing.Malformed) == 0) {
		fmt.Fprintln(a.stdout, a.styles.muted.Render("No menu items in "+a.store.Dir()))
		return nil
	}

	fmt.Fprintln(a.stdout, a.styles.title.Render(a.store.Dir()))

	for _, entry := range listing.Entries {
		line := entry.LocalizedName(a.locale) + "  " + a.styles.muted.Render(entry.FileName())

		var tags []string
		if entry.Hidden {
			tags = append(tags, "hidden")
		}
		if entry.Terminal {
			tags = append(tags, "terminal")
		}
		if len(tags) > 0 {
			line += "  " + a.styles.warning.Render("["+strings.Join(tags, ", ")+"]")
		}

		fmt.Fprintln(a.stdout, line)
	}

	if *all {
		for _, malformed := range listing.Malformed {
			fmt.Fprintln(
				a.stdout,
				a.styles.removed.Render(filepath.Base(malformed.Path)+" (malformed)")+"  "+
					a.styles.muted.Render(malformed.Err.Error()),
			)
		}
	}

	return nil
}

func (a *app) show(_ context.Context, args []string) error {
	flags := a.newFlagSet("show")
	positional, err := parseArgs(flags, args, 1)
	if err != nil {
		return err
	}

	entry, err := a.store.Find(entryName(positional[0]))
	if err != nil {
		return err
	}

	a.state, _ = a.state.SwitchPage(flow.PageInstalled)
	a.state, _ = a.state.Activate(entry.Path)

	content, err := os.ReadFile(entry.Path)
	if err != nil {
		return fmt.Errorf("show: %w", err)
	}

	fmt.Fprintln(a.stdout, a.styles.title.Render(entry.Path))
	fmt.Fprint(a.stdout, a.styles.highlight(string(content)))

	program, err := entry.Program()
	if err != nil || !filepath.IsAbs(program) {
		return nil
	}

	if executable, err := launcher.IsExecutable(program); err != nil || !executable {
		fmt.Fprintln(a.stdout, a.styles.warning.Render(program+" is missing or not executable"))
	}

	return nil
}

func (a *app) edit(_ context.Context, args []string) error {
	flags := a.newFlagSet("edit")
	hidden := flags.Bool("hidden", false, "hide the menu item")
	terminal := flags.Bool("terminal", false, "run in a terminal")
	keywords := flags.String("keywords", "", "comma separated search keywords, empty to clear")
	dryRun := flags.Bool("dry-run", false, "print the changes without saving them")

	positional, err := parseArgs(flags, args, 1)
	if err != nil {
		return err
	}

	entry, err := a.store.Find(entryName(positional[0]))
	if err != nil {
		return err
	}

	changes := 0
	flags.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "hidden":
			entry.Hidden = *hidden
		case "terminal":
			entry.Terminal = *terminal
		case "keywords":
			entry.SetKeywordList(splitKeywords(*keywords))
		default:
			return
		}
		changes++
	})

	if changes == 0 {
		flags.Usage()
		return errUsage
	}

	diff, err := a.store.Preview(entry)
	if err != nil {
		return err
	}

	if diff == "" {
		fmt.Fprintln(a.stdout, a.styles.muted.Render("No changes"))
		return nil
	}

	if *dryRun {
		fmt.Fprint(a.stdout, a.styles.colorDiff(diff))
		return nil
	}

	if err := a.store.Save(entry); err != nil {
		return err
	}

	fmt.Fprintln(a.stdout, a.styles.success.Render(entry.Name+" updated"))

	return nil
}

func (a *app) deleteEntry(_ context.Context, args []string) error {
	flags := a.newFlagSet("delete")
	positional, err := parseArgs(flags, args, 1)
	if err != nil {
		return err
	}

	entry, err := a.store.Find(entryName(positional[0]))
	if err != nil {
		return err
	}

	if err := a.store.Delete(entry); err != nil {
		return err
	}
	a.state = a.state.Deleted(entry.Path)

	fmt.Fprintln(a.stdout, a.styles.success.Render(entry.Name+" deleted"))

	return nil
}

func (a *app) undo(_ context.Context, args []string) error {
	flags := a.newFlagSet("undo")
	positional, err := parseArgs(flags, args, 1)
	if err != nil {
		return err
	}

	path, err := filepath.Abs(basedir.ExpandHome(positional[0]))
	if err != nil {
		return fmt.Errorf("undo: %w", err)
	}

	if !desktop.IsDesktopFileName(filepath.Base(path)) {
		return fmt.Errorf("undo: %s is not a desktop file", path)
	}

	if err := a.store.DeletePath(path); err != nil {
		return err
	}
	a.state = a.state.Deleted(path)

	fmt.Fprintln(a.stdout, a.styles.success.Render("Menu item removed"))

	return nil
}

// entryName accepts both Firefox and Firefox.desktop.
func entryName(arg string) string {
	return strings.TrimSuffix(arg, desktop.Extension)
}

func splitKeywords(value string) []string {
	keywords := make([]string, 0)
	for _, keyword := range strings.Split(value, ",") {
		if keyword = strings.TrimSpace(keyword); keyword != "" {
			keywords = append(keywords, keyword)
		}
	}

	return keywords
}
