package flow

import (
	"testing"

	"github.com/MatthiasKunnen/turtle/launcher"
)

func TestChooseAndBack(t *testing.T) {
	var state State

	unchanged, ok := state.Choose("", launcher.Defaults{})
	if ok || unchanged.Screen != ScreenSelect {
		t.Fatalf("Choose(\"\") = %v, %t, want unchanged Select", unchanged.Screen, ok)
	}

	state, ok = state.Choose("/usr/bin/htop", launcher.Defaults{Icon: "htop", Terminal: true})
	if !ok {
		t.Fatal("Choose() from Select was rejected")
	}

	if state.Screen != ScreenSetup {
		t.Errorf("Screen = %v, want setup", state.Screen)
	}

	if state.Draft.Name != "Htop" || state.Draft.Icon != "htop" || !state.Draft.Terminal {
		t.Errorf("Draft = %+v, want Htop with icon and terminal", state.Draft)
	}

	if _, ok := state.Choose("/usr/bin/vim", launcher.Defaults{}); ok {
		t.Errorf("Choose() while on Setup was accepted")
	}

	state, ok = state.Back()
	if !ok {
		t.Fatal("Back() from Setup was rejected")
	}

	if state.Screen != ScreenSelect {
		t.Errorf("Screen = %v, want select", state.Screen)
	}

	if state.Draft != (launcher.Draft{}) {
		t.Errorf("Back() kept the draft: %+v", state.Draft)
	}

	if _, ok := state.Back(); ok {
		t.Errorf("Back() on Select was accepted")
	}
}

func TestEdit(t *testing.T) {
	var state State
	if _, ok := state.Edit(launcher.Draft{Name: "x"}); ok {
		t.Errorf("Edit() on Select was accepted")
	}

	state, _ = state.Choose("/usr/bin/htop", launcher.Defaults{})
	draft := state.Draft
	draft.Name = "Process viewer"

	state, ok := state.Edit(draft)
	if !ok || state.Draft.Name != "Process viewer" {
		t.Errorf("Edit() = %+v, %t, want renamed draft", state.Draft, ok)
	}
}

func TestSwitchPageBlockedOnSetup(t *testing.T) {
	state, _ := State{}.Choose("/usr/bin/htop", launcher.Defaults{})

	if _, ok := state.SwitchPage(PageInstalled); ok {
		t.Errorf("SwitchPage() while on Setup was accepted")
	}
}

func TestInstalledPage(t *testing.T) {
	var state State
	if state.NeedsListing() {
		t.Errorf("zero state needs a listing")
	}

	if _, ok := state.Activate("/apps/a.desktop"); ok {
		t.Errorf("Activate() on the create page was accepted")
	}

	state, ok := state.SwitchPage(PageInstalled)
	if !ok || !state.NeedsListing() {
		t.Fatalf("SwitchPage(installed) = %t, NeedsListing %t, want true, true", ok, state.NeedsListing())
	}

	state = state.Listed()
	if state.NeedsListing() {
		t.Errorf("NeedsListing() after Listed() = true")
	}

	state, ok = state.Activate("/apps/a.desktop")
	if !ok || state.Detail != "/apps/a.desktop" {
		t.Errorf("Activate() = %q, %t, want detail revealed", state.Detail, ok)
	}

	state, ok = state.CloseDetail()
	if !ok || state.Detail != "" {
		t.Errorf("CloseDetail() = %q, %t, want hidden", state.Detail, ok)
	}

	if _, ok := state.CloseDetail(); ok {
		t.Errorf("CloseDetail() without detail was accepted")
	}

	state, _ = state.Activate("/apps/a.desktop")
	state = state.Deleted("/apps/a.desktop")
	if state.Detail != "" || !state.NeedsListing() {
		t.Errorf("Deleted() = detail %q, NeedsListing %t, want hidden and listing", state.Detail, state.NeedsListing())
	}

	state, _ = state.SwitchPage(PageCreate)
	if state.NeedsListing() || state.Detail != "" {
		t.Errorf("SwitchPage(create) kept installed page state")
	}
}

func TestCreatedAndUndone(t *testing.T) {
	state, _ := State{}.Choose("/usr/bin/htop", launcher.Defaults{})

	if _, ok := state.Created(""); ok {
		t.Errorf("Created(\"\") was accepted")
	}

	state, ok := state.Created("/apps/Htop.desktop")
	if !ok || state.LastCreated != "/apps/Htop.desktop" {
		t.Fatalf("Created() = %q, %t", state.LastCreated, ok)
	}

	if state.Notice != "Htop menu item created!" {
		t.Errorf("Notice = %q", state.Notice)
	}

	state, ok = state.Undone()
	if !ok || state.LastCreated != "" || state.Notice != "" {
		t.Errorf("Undone() = %q, %t, want cleared", state.LastCreated, ok)
	}

	if _, ok := state.Undone(); ok {
		t.Errorf("second Undone() was accepted")
	}
}

func TestStrings(t *testing.T) {
	if ScreenSetup.String() != "setup" || PageInstalled.String() != "installed" {
		t.Errorf("String() = %s, %s", ScreenSetup, PageInstalled)
	}
}
