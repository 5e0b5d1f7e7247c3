// Package game carries the shared wiring the screens play against: the
// content catalog, the progress store, the progression engine, and the
// narration line for the status bar.
package game

import (
	"wordventure/internal/catalog"
	"wordventure/internal/engine"
	"wordventure/internal/progress"
)

// Deps is passed to every screen.
type Deps struct {
	Catalog *catalog.Catalog
	Store   *progress.Store
	Engine  *engine.Engine

	narration string
}

// Say replaces the narration line shown in the footer. The narrator's
// sink points here.
func (d *Deps) Say(line string) {
	d.narration = line
}

// Narration returns the current narration line.
func (d *Deps) Narration() string {
	return d.narration
}

// ClearNarration empties the narration line, used when changing screens.
func (d *Deps) ClearNarration() {
	d.narration = ""
}

// CurrentProfile is a convenience wrapper for screens that render the
// active player; a nil result means no profile is selected yet.
func (d *Deps) CurrentProfile() *progress.UserProfile {
	p, err := d.Store.CurrentProfile()
	if err != nil {
		return nil
	}
	return p
}
