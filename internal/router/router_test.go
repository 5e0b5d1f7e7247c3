package router

import (
	"testing"

	tea "charm.land/bubbletea/v2"

	"wordventure/internal/screen"
)

type fakeScreen struct {
	name    string
	initRan bool
}

func (f *fakeScreen) Init() tea.Cmd {
	f.initRan = true
	return nil
}
func (f *fakeScreen) Update(tea.Msg) (screen.Screen, tea.Cmd) { return f, nil }
func (f *fakeScreen) View(int, int) string                    { return f.name }
func (f *fakeScreen) Title() string                           { return f.name }

func TestPushAndPop(t *testing.T) {
	r := New(&fakeScreen{name: "map"})

	level := &fakeScreen{name: "level"}
	r.Push(level)

	if r.Depth() != 2 {
		t.Fatalf("depth after push = %d, want 2", r.Depth())
	}
	if !level.initRan {
		t.Error("pushed screen's Init did not run")
	}
	if r.Active().Title() != "level" {
		t.Errorf("active = %q, want level", r.Active().Title())
	}

	r.Pop()
	if r.Depth() != 1 || r.Active().Title() != "map" {
		t.Errorf("after pop: depth=%d active=%q", r.Depth(), r.Active().Title())
	}
}

func TestPopKeepsBottomScreen(t *testing.T) {
	r := New(&fakeScreen{name: "map"})
	r.Pop()
	r.Pop()
	if r.Depth() != 1 {
		t.Errorf("depth = %d, bottom screen must survive pops", r.Depth())
	}
}

func TestReplaceKeepsDepth(t *testing.T) {
	r := New(&fakeScreen{name: "map"})
	r.Push(&fakeScreen{name: "level"})

	summary := &fakeScreen{name: "summary"}
	r.Replace(summary)

	if r.Depth() != 2 {
		t.Errorf("depth after replace = %d, want 2", r.Depth())
	}
	if r.Active().Title() != "summary" {
		t.Errorf("active = %q, want summary", r.Active().Title())
	}
	if !summary.initRan {
		t.Error("replacing screen's Init did not run")
	}

	// Esc from the summary should land back on the map, not the level.
	r.Pop()
	if r.Active().Title() != "map" {
		t.Errorf("after pop: active = %q, want map", r.Active().Title())
	}
}

func TestNavigationMessages(t *testing.T) {
	r := New(&fakeScreen{name: "map"})

	r.Update(PushScreenMsg{Screen: &fakeScreen{name: "level"}})
	if r.Depth() != 2 {
		t.Fatalf("depth after PushScreenMsg = %d, want 2", r.Depth())
	}

	next := &fakeScreen{name: "summary"}
	r.Update(ReplaceScreenMsg{Screen: next})
	if r.Depth() != 2 || r.Active().Title() != "summary" {
		t.Errorf("after ReplaceScreenMsg: depth=%d active=%q", r.Depth(), r.Active().Title())
	}
	if !next.initRan {
		t.Error("ReplaceScreenMsg did not run Init")
	}

	r.Update(PopScreenMsg{})
	if r.Depth() != 1 {
		t.Errorf("depth after PopScreenMsg = %d, want 1", r.Depth())
	}
}
