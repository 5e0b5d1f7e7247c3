// Package theme holds the Wordventure palette and the shared lipgloss
// styles. Screens compose these instead of picking colors ad hoc so the
// whole game reads as one place.
package theme

import (
	"charm.land/lipgloss/v2"
)

// Palette. Bright enough for kids, dark background to keep emoji glyphs
// readable.
var (
	Primary   = lipgloss.Color("#38BDF8") // sky blue
	Secondary = lipgloss.Color("#34D399") // emerald
	Accent    = lipgloss.Color("#FBBF24") // amber
	Star      = lipgloss.Color("#FACC15") // star gold
	Success   = lipgloss.Color("#22C55E")
	Error     = lipgloss.Color("#FB7185") // soft rose, no harsh red for kids
	Text      = lipgloss.Color("#F8FAFC")
	TextDim   = lipgloss.Color("#94A3B8")
	BgCard    = lipgloss.Color("#16294A")
	Border    = lipgloss.Color("#31497A")
	Locked    = lipgloss.Color("#64748B")
)

// Text styles.
var (
	Title    = lipgloss.NewStyle().Bold(true).Foreground(Primary).Align(lipgloss.Center)
	Subtitle = lipgloss.NewStyle().Foreground(TextDim).Align(lipgloss.Center)
	Body     = lipgloss.NewStyle().Foreground(Text)
	Hint     = lipgloss.NewStyle().Foreground(TextDim).Italic(true)

	// Narration is the spoken line in the footer.
	Narration = lipgloss.NewStyle().Foreground(Accent).Italic(true)
)

// Chrome.
var (
	Card = lipgloss.NewStyle().
		Background(BgCard).
		Border(lipgloss.RoundedBorder()).
		BorderForeground(Border).
		Padding(1, 2)
)

// Selection and answer states.
var (
	Selected   = lipgloss.NewStyle().Foreground(Primary).Bold(true)
	Unselected = lipgloss.NewStyle().Foreground(Text)
	Correct    = lipgloss.NewStyle().Foreground(Success).Bold(true)
	Incorrect  = lipgloss.NewStyle().Foreground(Error).Bold(true)
	LockedItem = lipgloss.NewStyle().Foreground(Locked)
)

// Component pieces.
var (
	StarFilled = lipgloss.NewStyle().Foreground(Star).Bold(true)
	StarEmpty  = lipgloss.NewStyle().Foreground(Border)

	ProgressFilled = lipgloss.NewStyle().Background(Secondary)
	ProgressEmpty  = lipgloss.NewStyle().Background(Border)
)
