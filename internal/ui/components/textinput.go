package components

import (
	"strings"

	"charm.land/bubbles/v2/textinput"
	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"wordventure/internal/ui/theme"
)

// TextInput is the spelling input: a bubbles textinput that only admits
// letters, with a check mark or cross appended after submission.
type TextInput struct {
	Model       textinput.Model
	LettersOnly bool
	MaxWidth    int
	submitted   bool
	valid       bool
}

// NewTextInput creates a focused input. maxWidth caps the character
// count when positive.
func NewTextInput(placeholder string, lettersOnly bool, maxWidth int) TextInput {
	ti := textinput.New()
	ti.Placeholder = placeholder
	ti.Focus()
	if maxWidth > 0 {
		ti.CharLimit = maxWidth
	}
	return TextInput{
		Model:       ti,
		LettersOnly: lettersOnly,
		MaxWidth:    maxWidth,
	}
}

// Init focuses the input.
func (t TextInput) Init() tea.Cmd {
	return t.Model.Focus()
}

// isLetterKey reports whether the key is a single a-z or A-Z rune.
// Multi-rune key names (enter, backspace, arrows) pass the filter so
// editing still works.
func isLetterKey(key string) bool {
	if len(key) != 1 {
		return true
	}
	c := key[0]
	return (c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z')
}

// Update handles messages, swallowing non-letter runes in LettersOnly
// mode so spelling answers stay clean.
func (t TextInput) Update(msg tea.Msg) (TextInput, tea.Cmd) {
	if t.LettersOnly {
		if kmsg, ok := msg.(tea.KeyMsg); ok && !isLetterKey(kmsg.String()) {
			return t, nil
		}
	}

	var cmd tea.Cmd
	t.Model, cmd = t.Model.Update(msg)
	return t, cmd
}

// View renders the input, with the verdict mark once submitted.
func (t TextInput) View() string {
	view := t.Model.View()
	switch {
	case t.submitted && t.valid:
		view += " " + lipgloss.NewStyle().Foreground(theme.Success).Render("✓")
	case t.submitted:
		view += " " + lipgloss.NewStyle().Foreground(theme.Error).Render("✗")
	}
	return view
}

// Value returns the raw input value.
func (t TextInput) Value() string {
	return t.Model.Value()
}

// Matches reports whether the input spells the target word, ignoring
// case and surrounding whitespace.
func (t TextInput) Matches(word string) bool {
	return strings.EqualFold(strings.TrimSpace(t.Model.Value()), word)
}

// Submit locks in a verdict for rendering.
func (t *TextInput) Submit(valid bool) {
	t.submitted = true
	t.valid = valid
}

// Reset clears the input for the next word.
func (t *TextInput) Reset() {
	t.Model.SetValue("")
	t.submitted = false
	t.valid = false
}
