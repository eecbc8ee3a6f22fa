// Package flow holds the state of the launcher creation front end and the transitions between its
// screens. Transitions are pure: they return a new State and never touch the file system.
// The front end calls the launcher package when a transition asks for it, e.g. a listing when
// NeedsListing reports true.
package flow

import (
	"github.com/MatthiasKunnen/turtle/launcher"
)

// Screen is the visible screen of the create page.
type Screen int

const (
	// ScreenSelect asks for an executable.
	ScreenSelect Screen = iota
	// ScreenSetup edits the name, icon and terminal flag of the chosen executable.
	ScreenSetup
)

func (s Screen) String() string {
	switch s {
	case ScreenSelect:
		return "select"
	case ScreenSetup:
		return "setup"
	default:
		return "unknown"
	}
}

// Page is the top level page chosen with the page switcher.
type Page int

const (
	PageCreate Page = iota
	PageInstalled
)

func (p Page) String() string {
	switch p {
	case PageCreate:
		return "create"
	case PageInstalled:
		return "installed"
	default:
		return "unknown"
	}
}

// State is everything the front end shows. The zero value is the Select screen of the create
// page.
type State struct {
	Page   Page
	Screen Screen

	// Draft is the launcher being set up. Only meaningful on ScreenSetup.
	Draft launcher.Draft

	// Detail is the path of the installed entry whose detail panel is revealed, empty when hidden.
	Detail string

	// LastCreated is the path of the most recently written entry, which can still be undone.
	LastCreated string

	// Notice is the message to show after the last action, empty when there is none.
	Notice string

	// listingRequested is set when the installed page was entered and must be (re)loaded.
	listingRequested bool
}

// Choose moves from Select to Setup for the executable at path. An empty path means the file
// chooser was cancelled and the state is returned unchanged.
func (s State) Choose(path string, defaults launcher.Defaults) (State, bool) {
	if path == "" || s.Page != PageCreate || s.Screen != ScreenSelect {
		return s, false
	}

	s.Screen = ScreenSetup
	s.Draft = launcher.NewDraft(path, defaults)

	return s, true
}

// Edit replaces the draft while on Setup, e.g. after the user changed the name field.
func (s State) Edit(draft launcher.Draft) (State, bool) {
	if s.Screen != ScreenSetup {
		return s, false
	}

	s.Draft = draft

	return s, true
}

// Back returns from Setup to Select and forgets the draft.
func (s State) Back() (State, bool) {
	if s.Screen != ScreenSetup {
		return s, false
	}

	s.Screen = ScreenSelect
	s.Draft = launcher.Draft{}

	return s, true
}

// Created records the path written for the current draft and sets the notice. The screen stays
// on Setup so the draft can be adjusted and written again under another name.
func (s State) Created(path string) (State, bool) {
	if s.Screen != ScreenSetup || path == "" {
		return s, false
	}

	s.LastCreated = path
	s.Notice = s.Draft.Name + " menu item created!"

	return s, true
}

// Undone forgets the last created path after it was deleted.
func (s State) Undone() (State, bool) {
	if s.LastCreated == "" {
		return s, false
	}

	s.LastCreated = ""
	s.Notice = ""

	return s, true
}

// SwitchPage changes the top level page. The page switcher is disabled while on Setup.
// Entering the installed page requests a fresh listing.
func (s State) SwitchPage(page Page) (State, bool) {
	if s.Screen == ScreenSetup {
		return s, false
	}

	s.Page = page
	s.Detail = ""
	s.listingRequested = page == PageInstalled

	return s, true
}

// NeedsListing reports whether the front end must list the installed entries before showing the
// state.
func (s State) NeedsListing() bool {
	return s.listingRequested
}

// Listed marks the requested listing as done.
func (s State) Listed() State {
	s.listingRequested = false
	return s
}

// Activate reveals the detail panel of the installed entry at path.
func (s State) Activate(path string) (State, bool) {
	if s.Page != PageInstalled || path == "" {
		return s, false
	}

	s.Detail = path

	return s, true
}

// CloseDetail hides the detail panel.
func (s State) CloseDetail() (State, bool) {
	if s.Detail == "" {
		return s, false
	}

	s.Detail = ""

	return s, true
}

// Deleted updates the state after the entry at path was removed: its detail panel closes, it can
// no longer be undone and the installed page is listed again.
func (s State) Deleted(path string) State {
	if s.Detail == path {
		s.Detail = ""
	}

	if s.LastCreated == path {
		s.LastCreated = ""
	}

	s.listingRequested = s.Page == PageInstalled

	return s
}
