// Package router keeps the stack of screens the player navigates:
// welcome at the bottom, then profiles, the theme map, and a level on
// top. Navigation happens through messages so any screen can move the
// stack without holding a router reference.
package router

import (
	tea "charm.land/bubbletea/v2"

	"wordventure/internal/screen"
)

// PushScreenMsg asks the router to put a new screen on top.
type PushScreenMsg struct {
	Screen screen.Screen
}

// PopScreenMsg asks the router to discard the top screen.
type PopScreenMsg struct{}

// ReplaceScreenMsg asks the router to swap the top screen for another
// without changing the stack depth. Level-to-summary and summary-to-next-
// level transitions use this so Esc still returns to the theme map.
type ReplaceScreenMsg struct {
	Screen screen.Screen
}

// Router is the screen stack.
type Router struct {
	stack []screen.Screen
}

// New creates a router with one screen at the bottom.
func New(initial screen.Screen) *Router {
	return &Router{stack: []screen.Screen{initial}}
}

// Push puts s on top and runs its Init.
func (r *Router) Push(s screen.Screen) tea.Cmd {
	r.stack = append(r.stack, s)
	return s.Init()
}

// Pop discards the top screen. The bottom screen never pops.
func (r *Router) Pop() tea.Cmd {
	if len(r.stack) > 1 {
		r.stack = r.stack[:len(r.stack)-1]
	}
	return nil
}

// Replace swaps the top screen for s and runs its Init.
func (r *Router) Replace(s screen.Screen) tea.Cmd {
	if len(r.stack) == 0 {
		return r.Push(s)
	}
	r.stack[len(r.stack)-1] = s
	return s.Init()
}

// Active is the screen currently shown.
func (r *Router) Active() screen.Screen {
	if len(r.stack) == 0 {
		return nil
	}
	return r.stack[len(r.stack)-1]
}

// Depth is the number of stacked screens.
func (r *Router) Depth() int {
	return len(r.stack)
}

// Update routes navigation messages to the stack and everything else to
// the active screen.
func (r *Router) Update(msg tea.Msg) tea.Cmd {
	switch msg := msg.(type) {
	case PushScreenMsg:
		return r.Push(msg.Screen)
	case PopScreenMsg:
		return r.Pop()
	case ReplaceScreenMsg:
		return r.Replace(msg.Screen)
	}

	active := r.Active()
	if active == nil {
		return nil
	}
	updated, cmd := active.Update(msg)
	r.stack[len(r.stack)-1] = updated
	return cmd
}

// View renders the active screen.
func (r *Router) View(width, height int) string {
	active := r.Active()
	if active == nil {
		return ""
	}
	return active.View(width, height)
}
