// Package welcome shows the splash: the mascot pops in, sparkles start,
// then the banner invites a keypress. Purely cosmetic; the first real
// screen is the profile picker it hands off to.
package welcome

import (
	"strings"
	"time"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"wordventure/internal/router"
	"wordventure/internal/screen"
	"wordventure/internal/ui/theme"
)

const (
	tickInterval = 100 * time.Millisecond
	phase1End    = 500 * time.Millisecond
	phase2End    = 1500 * time.Millisecond
	totalDur     = 3000 * time.Millisecond
)

const mascotArt = `   ╭─────────╮
   │  ◠   ◠  │
   │    ▿    │
   │  ╰───╯  │
   ╰─┬─────┬─╯
     │ ABC │
     ╰─────╯`

var sparkleFrames = []string{"★", "✦"}

type tickMsg time.Time

func tick() tea.Cmd {
	return tea.Tick(tickInterval, func(t time.Time) tea.Msg {
		return tickMsg(t)
	})
}

// WelcomeScreen animates the splash and hands off to the screen the
// factory builds, exactly once, on the first keypress after the banner.
type WelcomeScreen struct {
	nextFactory  func() screen.Screen
	elapsed      time.Duration
	tickCount    int
	transitioned bool
}

var _ screen.Screen = (*WelcomeScreen)(nil)

// New creates the splash screen.
func New(nextFactory func() screen.Screen) *WelcomeScreen {
	return &WelcomeScreen{nextFactory: nextFactory}
}

func (w *WelcomeScreen) Title() string {
	return ""
}

func (w *WelcomeScreen) Init() tea.Cmd {
	return tick()
}

func (w *WelcomeScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg.(type) {
	case tickMsg:
		if w.elapsed < totalDur {
			w.elapsed += tickInterval
		}
		w.tickCount++
		return w, tick()

	case tea.KeyPressMsg:
		// Keys do nothing until the banner is up, so a child mashing
		// the keyboard still sees the whole splash.
		if w.elapsed >= phase2End {
			return w, w.transition()
		}
	}

	return w, nil
}

func (w *WelcomeScreen) transition() tea.Cmd {
	if w.transitioned {
		return nil
	}
	w.transitioned = true
	next := w.nextFactory()
	return func() tea.Msg {
		return router.ReplaceScreenMsg{Screen: next}
	}
}

func (w *WelcomeScreen) View(width, height int) string {
	sections := []string{w.mascotView()}
	if w.elapsed >= phase2End {
		sections = append(sections, w.bannerView(width))
	}
	content := strings.Join(sections, "\n")
	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, content)
}

// mascotView renders the mascot, with sparkles alternating around it
// once phase 1 is over.
func (w *WelcomeScreen) mascotView() string {
	mascot := lipgloss.NewStyle().Foreground(theme.Secondary).Render(mascotArt)
	if w.elapsed < phase1End {
		return mascot
	}

	sparkle := sparkleFrames[w.tickCount%len(sparkleFrames)]
	left := lipgloss.NewStyle().Foreground(theme.Accent).Render(sparkle)
	right := lipgloss.NewStyle().Foreground(theme.Primary).Render(sparkle)

	lines := strings.Split(mascot, "\n")
	for _, i := range []int{0, 3, 5} {
		if i >= len(lines) {
			continue
		}
		if i%2 == 0 {
			lines[i] = left + "  " + lines[i] + "  " + right
		} else {
			lines[i] = right + "  " + lines[i] + "  " + left
		}
	}
	return strings.Join(lines, "\n")
}

func (w *WelcomeScreen) bannerView(width int) string {
	tagline := lipgloss.NewStyle().
		Foreground(theme.Text).
		Bold(true).
		Render("Learn words, collect stars!")

	hint := theme.Hint.Render("press any key to start your adventure")

	return strings.Join([]string{"", RenderBanner(width), "", tagline, "", hint}, "\n")
}
