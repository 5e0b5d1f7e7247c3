package components

import (
	"charm.land/lipgloss/v2"

	"wordventure/internal/ui/theme"
)

// ContentWidth returns the uniform inner width used for adventure
// sections so stacked boxes visually align.
func ContentWidth(frameWidth int) int {
	// Leave room for scene border (2) + inner padding (4)
	w := frameWidth - 6
	if w > 64 {
		w = 64
	}
	if w < 20 {
		w = 20
	}
	return w
}

// SceneCard wraps content in a rounded-border card at the given content
// width.
func SceneCard(content string, cw int) string {
	return lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(theme.Border).
		Width(cw - 2).
		Align(lipgloss.Center).
		Padding(1, 2).
		Render(content)
}
