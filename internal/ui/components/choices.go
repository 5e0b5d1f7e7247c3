package components

import (
	"fmt"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"wordventure/internal/ui/theme"
)

// Choice is one selectable answer option: a display glyph plus its word.
type Choice struct {
	Glyph string
	Word  string
}

// ChoicePicker is a multiple-choice answer selector. After submission it
// reveals the correct option.
type ChoicePicker struct {
	Prompt       string
	Options      []Choice
	CorrectIndex int
	Selected     int
	Submitted    bool
	ChosenIndex  int
}

// NewChoicePicker creates a picker over the given options.
func NewChoicePicker(prompt string, options []Choice, correctIndex int) ChoicePicker {
	return ChoicePicker{
		Prompt:       prompt,
		Options:      options,
		CorrectIndex: correctIndex,
		Selected:     0,
		ChosenIndex:  -1,
	}
}

// Init returns nil.
func (c ChoicePicker) Init() tea.Cmd {
	return nil
}

// Update handles keyboard navigation and selection.
func (c ChoicePicker) Update(msg tea.Msg) (ChoicePicker, tea.Cmd) {
	if c.Submitted {
		return c, nil
	}

	kmsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return c, nil
	}

	switch kmsg.String() {
	case "up", "k":
		if c.Selected > 0 {
			c.Selected--
		}
	case "down", "j":
		if c.Selected < len(c.Options)-1 {
			c.Selected++
		}
	case "enter":
		c.Submitted = true
		c.ChosenIndex = c.Selected
	}

	return c, nil
}

// View renders the picker.
func (c ChoicePicker) View() string {
	promptStyle := lipgloss.NewStyle().Foreground(theme.Text).Bold(true)
	s := promptStyle.Render(c.Prompt) + "\n\n"

	for i, opt := range c.Options {
		prefix := "  "
		if i == c.Selected && !c.Submitted {
			prefix = "▸ "
		}

		line := fmt.Sprintf("%s%s  %s", prefix, opt.Glyph, opt.Word)

		if c.Submitted {
			switch {
			case i == c.CorrectIndex:
				s += theme.Correct.Render(line) + "\n"
			case i == c.ChosenIndex:
				s += theme.Incorrect.Render(line) + "\n"
			default:
				s += lipgloss.NewStyle().Foreground(theme.TextDim).Render(line) + "\n"
			}
		} else {
			if i == c.Selected {
				s += theme.Selected.Render(line) + "\n"
			} else {
				s += lipgloss.NewStyle().Foreground(theme.Text).Render(line) + "\n"
			}
		}
	}

	return s
}

// IsCorrect returns true if the chosen option was the correct one.
func (c ChoicePicker) IsCorrect() bool {
	return c.Submitted && c.ChosenIndex == c.CorrectIndex
}
