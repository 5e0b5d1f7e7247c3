// Package profiles lets the player pick, create, or delete a profile.
package profiles

import (
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"wordventure/internal/catalog"
	"wordventure/internal/game"
	"wordventure/internal/progress"
	"wordventure/internal/router"
	"wordventure/internal/screen"
	"wordventure/internal/ui/components"
	"wordventure/internal/ui/layout"
	"wordventure/internal/ui/theme"
)

type mode int

const (
	modeList mode = iota
	modeNaming
)

// ProfilesScreen lists profiles and creates new ones.
type ProfilesScreen struct {
	deps        *game.Deps
	nextFactory func() screen.Screen

	mode     mode
	selected int
	newTier  catalog.Tier
	nameIn   components.TextInput
	errLine  string
}

var _ screen.Screen = (*ProfilesScreen)(nil)
var _ screen.KeyHintProvider = (*ProfilesScreen)(nil)

// New creates the profile picker. nextFactory builds the screen shown
// after a profile is chosen.
func New(deps *game.Deps, nextFactory func() screen.Screen) *ProfilesScreen {
	return &ProfilesScreen{
		deps:        deps,
		nextFactory: nextFactory,
	}
}

func (p *ProfilesScreen) Title() string {
	return "Who's playing?"
}

func (p *ProfilesScreen) Init() tea.Cmd {
	return nil
}

func (p *ProfilesScreen) KeyHints() []layout.KeyHint {
	if p.mode == modeNaming {
		return []layout.KeyHint{
			{Key: "Enter", Description: "Create"},
			{Key: "Esc", Description: "Cancel"},
		}
	}
	return []layout.KeyHint{
		{Key: "↑↓", Description: "Navigate"},
		{Key: "Enter", Description: "Select"},
		{Key: "X", Description: "Delete"},
		{Key: "Ctrl+C", Description: "Quit"},
	}
}

// rows returns the selectable entries: existing profiles first, then the
// two create options.
func (p *ProfilesScreen) rows() int {
	return len(p.deps.Store.Profiles("")) + 2
}

func (p *ProfilesScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	if p.mode == modeNaming {
		return p.updateNaming(msg)
	}
	return p.updateList(msg)
}

func (p *ProfilesScreen) updateList(msg tea.Msg) (screen.Screen, tea.Cmd) {
	kmsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return p, nil
	}

	profiles := p.deps.Store.Profiles("")

	switch kmsg.String() {
	case "up", "k":
		if p.selected > 0 {
			p.selected--
		}
	case "down", "j":
		if p.selected < p.rows()-1 {
			p.selected++
		}
	case "x":
		if p.selected < len(profiles) {
			if err := p.deps.Store.DeleteProfile(profiles[p.selected].ID); err != nil {
				p.errLine = err.Error()
			}
			if p.selected > 0 {
				p.selected--
			}
		}
	case "enter":
		switch {
		case p.selected < len(profiles):
			return p.choose(profiles[p.selected])
		case p.selected == len(profiles):
			return p.startNaming(catalog.TierExplorer)
		default:
			return p.startNaming(catalog.TierAdventurer)
		}
	}

	return p, nil
}

func (p *ProfilesScreen) startNaming(tier catalog.Tier) (screen.Screen, tea.Cmd) {
	p.mode = modeNaming
	p.newTier = tier
	p.nameIn = components.NewTextInput(tier.DefaultName(), true, 12)
	p.errLine = ""
	return p, p.nameIn.Init()
}

func (p *ProfilesScreen) updateNaming(msg tea.Msg) (screen.Screen, tea.Cmd) {
	if kmsg, ok := msg.(tea.KeyMsg); ok {
		switch kmsg.String() {
		case "esc":
			p.mode = modeList
			return p, nil
		case "enter":
			age := 5
			if p.newTier == catalog.TierAdventurer {
				age = 7
			}
			profile, err := p.deps.Store.CreateProfile(p.nameIn.Value(), "", p.newTier, age)
			if err != nil {
				p.errLine = "Could not save the new profile. Try again!"
				p.mode = modeList
				return p, nil
			}
			p.mode = modeList
			return p.choose(profile)
		}
	}

	var cmd tea.Cmd
	p.nameIn, cmd = p.nameIn.Update(msg)
	return p, cmd
}

func (p *ProfilesScreen) choose(profile *progress.UserProfile) (screen.Screen, tea.Cmd) {
	if err := p.deps.Store.SetCurrentProfile(profile.ID); err != nil {
		p.errLine = err.Error()
		return p, nil
	}
	next := p.nextFactory()
	return p, func() tea.Msg {
		return router.PushScreenMsg{Screen: next}
	}
}

func (p *ProfilesScreen) View(width, height int) string {
	if p.mode == modeNaming {
		return p.viewNaming(width, height)
	}
	return p.viewList(width, height)
}

func (p *ProfilesScreen) viewList(width, height int) string {
	profiles := p.deps.Store.Profiles("")

	var lines []string
	for i, pr := range profiles {
		label := fmt.Sprintf("%s %s — %s · ★ %d", pr.Avatar, pr.Name, pr.Tier.DisplayName(), pr.TotalStars)
		lines = append(lines, renderRow(label, i == p.selected, false))
	}
	lines = append(lines,
		"",
		renderRow("✨ New Explorer (Ages 4-5)", p.selected == len(profiles), true),
		renderRow("🦸 New Adventurer (Ages 6-9)", p.selected == len(profiles)+1, true),
	)

	content := strings.Join(lines, "\n")
	if p.errLine != "" {
		content += "\n\n" + theme.Incorrect.Render(p.errLine)
	}

	card := theme.Card.Render(content)
	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, card)
}

func (p *ProfilesScreen) viewNaming(width, height int) string {
	title := theme.Title.Render(fmt.Sprintf("New %s", p.newTier.DefaultName()))
	prompt := theme.Body.Render("What's your name?")
	content := title + "\n\n" + prompt + "\n\n" + p.nameIn.View() + "\n\n" +
		theme.Hint.Render("leave empty to be called "+p.newTier.DefaultName())
	card := theme.Card.Render(content)
	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, card)
}

func renderRow(label string, selected, create bool) string {
	switch {
	case selected:
		return theme.Selected.Render("  ▸ " + label)
	case create:
		return theme.Hint.Render("    " + label)
	default:
		return theme.Unselected.Render("    " + label)
	}
}
