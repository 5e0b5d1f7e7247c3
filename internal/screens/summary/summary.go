// Package summary celebrates a finished level: stars, accuracy, a
// sticker pick, and the way onward.
package summary

import (
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"wordventure/internal/engine"
	"wordventure/internal/game"
	"wordventure/internal/router"
	"wordventure/internal/screen"
	"wordventure/internal/ui/components"
	"wordventure/internal/ui/layout"
	"wordventure/internal/ui/theme"
)

type phase int

const (
	phaseStickers phase = iota
	phaseMenu
)

// SummaryScreen shows the level result and awards a sticker.
type SummaryScreen struct {
	deps             *game.Deps
	themeID          string
	level            int
	result           engine.Result
	warn             string
	nextLevelFactory func(level int) screen.Screen

	phase          phase
	choices        []string
	collectionDone bool
	chosen         string
	selected       int
	menu           components.Menu
}

var _ screen.Screen = (*SummaryScreen)(nil)
var _ screen.KeyHintProvider = (*SummaryScreen)(nil)

// New builds the summary for a committed level result.
func New(deps *game.Deps, themeID string, level int, result engine.Result, warn string, nextLevelFactory func(level int) screen.Screen) *SummaryScreen {
	s := &SummaryScreen{
		deps:             deps,
		themeID:          themeID,
		level:            level,
		result:           result,
		warn:             warn,
		nextLevelFactory: nextLevelFactory,
	}

	if p := deps.CurrentProfile(); p != nil {
		choices, complete, err := deps.Engine.StickerChoices(p.ID)
		if err == nil {
			s.choices = choices
			s.collectionDone = complete
		}
	}
	if len(s.choices) == 0 {
		s.phase = phaseMenu
	}
	s.menu = s.buildMenu()
	return s
}

func (s *SummaryScreen) buildMenu() components.Menu {
	var items []components.MenuItem
	if s.result.HasNextLevel {
		level := s.level + 1
		items = append(items, components.MenuItem{
			Label: fmt.Sprintf("Next level (%d)", level),
			Action: func() tea.Cmd {
				next := s.nextLevelFactory(level)
				return func() tea.Msg {
					return router.ReplaceScreenMsg{Screen: next}
				}
			},
		})
	}
	items = append(items,
		components.MenuItem{
			Label: "Play again",
			Action: func() tea.Cmd {
				next := s.nextLevelFactory(s.level)
				return func() tea.Msg {
					return router.ReplaceScreenMsg{Screen: next}
				}
			},
		},
		components.MenuItem{
			Label: "Back to the map",
			Action: func() tea.Cmd {
				return func() tea.Msg {
					return router.PopScreenMsg{}
				}
			},
		},
	)
	return components.NewMenu(items)
}

func (s *SummaryScreen) Title() string {
	return "Level Complete!"
}

func (s *SummaryScreen) Init() tea.Cmd {
	return nil
}

func (s *SummaryScreen) KeyHints() []layout.KeyHint {
	if s.phase == phaseStickers {
		return []layout.KeyHint{
			{Key: "←→", Description: "Choose sticker"},
			{Key: "Enter", Description: "Take it"},
		}
	}
	return []layout.KeyHint{
		{Key: "↑↓", Description: "Navigate"},
		{Key: "Enter", Description: "Select"},
	}
}

func (s *SummaryScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	if s.phase == phaseStickers {
		return s.updateStickers(msg)
	}

	var cmd tea.Cmd
	s.menu, cmd = s.menu.Update(msg)
	return s, cmd
}

func (s *SummaryScreen) updateStickers(msg tea.Msg) (screen.Screen, tea.Cmd) {
	kmsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return s, nil
	}

	switch kmsg.String() {
	case "left", "h":
		if s.selected > 0 {
			s.selected--
		}
	case "right", "l":
		if s.selected < len(s.choices)-1 {
			s.selected++
		}
	case "enter":
		if p := s.deps.CurrentProfile(); p != nil {
			if err := s.deps.Engine.ChooseSticker(p.ID, s.choices[s.selected]); err == nil {
				s.chosen = s.choices[s.selected]
			}
		}
		s.phase = phaseMenu
	}

	return s, nil
}

func (s *SummaryScreen) View(width, height int) string {
	var sections []string

	sections = append(sections, theme.Title.Render("⭐ Level Complete! ⭐"))
	sections = append(sections, "")
	sections = append(sections, components.StarRow(s.result.Stars))

	if s.result.Total > 0 {
		acc := fmt.Sprintf("%d of %d correct", s.result.Correct, s.result.Total)
		sections = append(sections, "", theme.Subtitle.Render(acc))
	}

	if s.warn != "" {
		sections = append(sections, "", theme.Incorrect.Render(s.warn))
	}

	switch {
	case s.phase == phaseStickers:
		sections = append(sections, "", theme.Body.Render("Pick a sticker for your collection:"), "")
		sections = append(sections, s.stickerRow())
	case s.chosen != "":
		sections = append(sections, "", theme.Body.Render("You got the "+s.chosen+" sticker!"))
	case s.collectionDone:
		sections = append(sections, "", theme.Body.Render("🎉 Your sticker collection is complete!"))
	}

	if s.phase == phaseMenu {
		if s.result.ThemeDone {
			sections = append(sections, "", theme.Correct.Render("You mastered this adventure!"))
		}
		sections = append(sections, "", s.menu.View())
	}

	content := strings.Join(sections, "\n")
	card := theme.Card.Render(content)
	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, card)
}

func (s *SummaryScreen) stickerRow() string {
	parts := make([]string, 0, len(s.choices))
	for i, sticker := range s.choices {
		if i == s.selected {
			parts = append(parts, theme.Selected.Render("[ "+sticker+" ]"))
		} else {
			parts = append(parts, theme.Unselected.Render("  "+sticker+"  "))
		}
	}
	return strings.Join(parts, " ")
}
