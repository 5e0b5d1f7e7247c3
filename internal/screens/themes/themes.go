// Package themes is the adventure map: pick a theme, see stars and
// locks, jump into a level.
package themes

import (
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"wordventure/internal/game"
	"wordventure/internal/router"
	"wordventure/internal/screen"
	"wordventure/internal/ui/components"
	"wordventure/internal/ui/layout"
	"wordventure/internal/ui/theme"
)

// ThemesScreen shows every theme with its unlock and star state.
type ThemesScreen struct {
	deps             *game.Deps
	adventureFactory func(themeID string, level int) screen.Screen
	stickersFactory  func() screen.Screen

	selected int
}

var _ screen.Screen = (*ThemesScreen)(nil)
var _ screen.KeyHintProvider = (*ThemesScreen)(nil)

// New creates the adventure map.
func New(deps *game.Deps, adventureFactory func(themeID string, level int) screen.Screen, stickersFactory func() screen.Screen) *ThemesScreen {
	return &ThemesScreen{
		deps:             deps,
		adventureFactory: adventureFactory,
		stickersFactory:  stickersFactory,
	}
}

func (t *ThemesScreen) Title() string {
	if p := t.deps.CurrentProfile(); p != nil {
		return fmt.Sprintf("%s's Adventures", p.Name)
	}
	return "Adventures"
}

func (t *ThemesScreen) Init() tea.Cmd {
	return nil
}

func (t *ThemesScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "↑↓", Description: "Navigate"},
		{Key: "Enter", Description: "Play"},
		{Key: "S", Description: "Stickers"},
		{Key: "Esc", Description: "Back"},
	}
}

func (t *ThemesScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	kmsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return t, nil
	}

	themes := t.deps.Catalog.Themes()

	switch kmsg.String() {
	case "up", "k":
		if t.selected > 0 {
			t.selected--
		}
	case "down", "j":
		if t.selected < len(themes)-1 {
			t.selected++
		}
	case "s":
		next := t.stickersFactory()
		return t, func() tea.Msg {
			return router.PushScreenMsg{Screen: next}
		}
	case "enter":
		p := t.deps.CurrentProfile()
		if p == nil {
			return t, nil
		}
		if !t.deps.Engine.IsThemeUnlocked(p.ID, t.selected) {
			t.deps.Say("Finish the adventure before this one to unlock it!")
			return t, nil
		}
		themeID := themes[t.selected].ID
		level := t.startLevel(p.ID, themeID)
		next := t.adventureFactory(themeID, level)
		return t, func() tea.Msg {
			return router.PushScreenMsg{Screen: next}
		}
	}

	return t, nil
}

// startLevel picks the first unlocked, uncompleted level; with the whole
// theme done it restarts at level 1 for a replay.
func (t *ThemesScreen) startLevel(profileID, themeID string) int {
	p := t.deps.CurrentProfile()
	if p == nil {
		return 1
	}
	maxLevel := t.deps.Catalog.MaxLevel(themeID, p.Tier)
	for level := 1; level <= maxLevel; level++ {
		lp := t.deps.Store.LevelProgress(profileID, themeID, level)
		if lp.Unlocked && !lp.Completed {
			return level
		}
	}
	return 1
}

func (t *ThemesScreen) View(width, height int) string {
	p := t.deps.CurrentProfile()
	if p == nil {
		return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center,
			theme.Hint.Render("no profile selected"))
	}

	var lines []string
	for i, th := range t.deps.Catalog.Themes() {
		unlocked := t.deps.Engine.IsThemeUnlocked(p.ID, i)
		label := fmt.Sprintf("%s %s", th.Glyph, th.Name)

		stars := t.themeStars(p.ID, th.ID)
		maxLevel := t.deps.Catalog.MaxLevel(th.ID, p.Tier)
		suffix := fmt.Sprintf("  %s  (%d/%d)", components.StarRow(minInt(stars, 3)), stars, maxLevel*3)

		switch {
		case !unlocked:
			lines = append(lines, theme.LockedItem.Render("    🔒 "+label))
		case i == t.selected:
			lines = append(lines, theme.Selected.Render("  ▸ "+label)+suffix)
		default:
			lines = append(lines, theme.Unselected.Render("    "+label)+suffix)
		}
	}

	desc := t.deps.Catalog.Themes()[t.selected].Description
	content := strings.Join(lines, "\n") + "\n\n" + theme.Hint.Render(desc)
	card := theme.Card.Render(content)
	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, card)
}

// themeStars sums the best stars across the theme's levels.
func (t *ThemesScreen) themeStars(profileID, themeID string) int {
	tp := t.deps.Store.ThemeProgressFor(profileID, themeID)
	if tp == nil {
		return 0
	}
	total := 0
	for _, lp := range tp.Levels {
		total += lp.Stars
	}
	return total
}

func minInt(a, b int) int {
	if a < b {
		return a
	}
	return b
}
