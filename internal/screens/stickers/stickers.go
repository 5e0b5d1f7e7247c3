// Package stickers shows the player's sticker collection.
package stickers

import (
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"wordventure/internal/engine"
	"wordventure/internal/game"
	"wordventure/internal/screen"
	"wordventure/internal/ui/layout"
	"wordventure/internal/ui/theme"
)

const perRow = 6

// StickersScreen renders the owned stickers in award order.
type StickersScreen struct {
	deps *game.Deps
}

var _ screen.Screen = (*StickersScreen)(nil)
var _ screen.KeyHintProvider = (*StickersScreen)(nil)

// New creates the sticker collection view.
func New(deps *game.Deps) *StickersScreen {
	return &StickersScreen{deps: deps}
}

func (s *StickersScreen) Title() string {
	return "Sticker Collection"
}

func (s *StickersScreen) Init() tea.Cmd {
	return nil
}

func (s *StickersScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "Esc", Description: "Back"},
	}
}

func (s *StickersScreen) Update(tea.Msg) (screen.Screen, tea.Cmd) {
	return s, nil
}

func (s *StickersScreen) View(width, height int) string {
	p := s.deps.CurrentProfile()
	if p == nil {
		return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center,
			theme.Hint.Render("no profile selected"))
	}

	total := engine.StickerPoolSize()
	count := fmt.Sprintf("%d of %d collected", len(p.Stickers), total)

	var sections []string
	sections = append(sections, theme.Title.Render("🎖 "+p.Name+"'s Stickers"))
	sections = append(sections, theme.Subtitle.Render(count))
	sections = append(sections, "")

	if len(p.Stickers) == 0 {
		sections = append(sections, theme.Hint.Render("Finish a level to earn your first sticker!"))
	} else {
		for row := 0; row < len(p.Stickers); row += perRow {
			end := row + perRow
			if end > len(p.Stickers) {
				end = len(p.Stickers)
			}
			sections = append(sections, "  "+strings.Join(p.Stickers[row:end], "  "))
		}
	}

	if len(p.Stickers) == total {
		sections = append(sections, "", theme.Correct.Render("Collection complete! 🎉"))
	}

	content := strings.Join(sections, "\n")
	card := theme.Card.Render(content)
	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, card)
}
