package components

import (
	"fmt"
	"strings"

	"charm.land/lipgloss/v2"

	"wordventure/internal/ui/theme"
)

// ProgressBar shows how far through a level the player is.
type ProgressBar struct {
	Label       string
	Percent     float64
	ShowPercent bool
	Width       int
}

// NewProgressBar creates a progress bar. Percent is clamped to [0, 1]
// at render time.
func NewProgressBar(label string, percent float64, showPercent bool, width int) ProgressBar {
	return ProgressBar{
		Label:       label,
		Percent:     percent,
		ShowPercent: showPercent,
		Width:       width,
	}
}

// View renders the progress bar.
func (p ProgressBar) View() string {
	var b strings.Builder

	if p.Label != "" {
		b.WriteString(lipgloss.NewStyle().Foreground(theme.Text).Render(p.Label))
		b.WriteString("  ")
	}

	pct := p.Percent
	if pct < 0 {
		pct = 0
	}
	if pct > 1 {
		pct = 1
	}

	reserved := lipgloss.Width(b.String())
	if p.ShowPercent {
		reserved += 6
	}
	barWidth := p.Width - reserved
	if barWidth < 4 {
		barWidth = 4
	}

	filled := int(float64(barWidth) * pct)
	b.WriteString(theme.ProgressFilled.Render(strings.Repeat(" ", filled)))
	b.WriteString(theme.ProgressEmpty.Render(strings.Repeat(" ", barWidth-filled)))

	if p.ShowPercent {
		b.WriteString(lipgloss.NewStyle().
			Foreground(theme.TextDim).
			Render(fmt.Sprintf("  %d%%", int(pct*100))))
	}

	return b.String()
}
