// Package layout assembles the fixed chrome around every screen: a
// header with the player's star and sticker totals and a footer with
// key hints plus the narration line.
package layout

import (
	"fmt"
	"strings"

	"charm.land/lipgloss/v2"

	"wordventure/internal/ui/theme"
)

const (
	MinWidth  = 80
	MinHeight = 24
)

// KeyHint is one key binding shown in the footer.
type KeyHint struct {
	Key         string
	Description string
}

// IsTooSmall reports whether the terminal is below the playable size.
func IsTooSmall(width, height int) bool {
	return width < MinWidth || height < MinHeight
}

// RenderMinSizeMessage asks the player to resize the terminal.
func RenderMinSizeMessage(width, height int) string {
	return lipgloss.NewStyle().
		Align(lipgloss.Center).
		Foreground(theme.Text).
		Width(width).
		Height(height).
		Render(fmt.Sprintf(
			"Terminal too small!\n\nPlease resize to at\nleast %d x %d\n\nCurrent: %d x %d",
			MinWidth, MinHeight, width, height,
		))
}

// bar wraps a single content line in the bordered chrome strip used by
// both the header and the footer.
func bar(content string, width int) string {
	return lipgloss.NewStyle().
		Width(width).
		Background(theme.BgCard).
		Border(lipgloss.RoundedBorder()).
		BorderForeground(theme.Border).
		Render(content)
}

// spread lays out left, center, and right on one line of the given
// inner width, padding with spaces. Center drifts when space runs out
// rather than clipping.
func spread(left, center, right string, innerWidth int) string {
	leftLen := lipgloss.Width(left)
	centerLen := lipgloss.Width(center)
	rightLen := lipgloss.Width(right)

	leftGap := (innerWidth-centerLen)/2 - leftLen
	if leftGap < 1 {
		leftGap = 1
	}
	rightGap := innerWidth - leftLen - leftGap - centerLen - rightLen
	if rightGap < 1 {
		rightGap = 1
	}
	return left + strings.Repeat(" ", leftGap) + center + strings.Repeat(" ", rightGap) + right
}

// RenderHeader renders the top bar: brand, screen title, and the
// player's running star and sticker totals.
func RenderHeader(title string, stars, stickers int, width int) string {
	brand := lipgloss.NewStyle().Foreground(theme.Primary).Bold(true).Render("  Wordventure")
	center := lipgloss.NewStyle().Foreground(theme.Text).Render(title)

	totals := lipgloss.NewStyle().Foreground(theme.Star).Render(fmt.Sprintf("★ %d", stars)) +
		"   " +
		lipgloss.NewStyle().Foreground(theme.Accent).Render(fmt.Sprintf("🎖 %d", stickers))

	innerWidth := width - 4
	if innerWidth < 0 {
		innerWidth = 0
	}
	return bar(spread(brand, center, totals, innerWidth), width)
}

// RenderFooter renders the bottom bar: key hints on the left and the
// narration line, when there is one, on the right.
func RenderFooter(hints []KeyHint, narration string, width int) string {
	parts := make([]string, 0, len(hints))
	for _, h := range hints {
		parts = append(parts,
			lipgloss.NewStyle().Foreground(theme.Text).Bold(true).Render(h.Key)+
				" "+
				lipgloss.NewStyle().Foreground(theme.TextDim).Render(h.Description))
	}
	content := "  " + strings.Join(parts, "   ")

	if narration != "" {
		line := theme.Narration.Render("🔊 " + narration)
		gap := width - 4 - lipgloss.Width(content) - lipgloss.Width(line)
		if gap > 1 {
			content += strings.Repeat(" ", gap) + line
		}
	}

	return bar(content, width)
}

// RenderFrame stacks header, content, and footer into the full window.
func RenderFrame(header, content, footer string, width, height int) string {
	contentHeight := height - lipgloss.Height(header) - lipgloss.Height(footer)
	if contentHeight < 0 {
		contentHeight = 0
	}

	body := lipgloss.NewStyle().
		Width(width).
		Height(contentHeight).
		Render(content)

	return header + "\n" + body + "\n" + footer
}
