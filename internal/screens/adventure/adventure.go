// Package adventure runs one level of a theme: it walks the engine's
// session through every activity round by round and hands the result to
// the summary screen.
package adventure

import (
	"fmt"
	"strings"
	"time"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"wordventure/internal/engine"
	"wordventure/internal/game"
	"wordventure/internal/router"
	"wordventure/internal/screen"
	"wordventure/internal/screens/summary"
	"wordventure/internal/ui/components"
	"wordventure/internal/ui/layout"
	"wordventure/internal/ui/theme"
)

// AdventureScreen plays one level.
type AdventureScreen struct {
	deps    *game.Deps
	themeID string
	level   int

	session *engine.Session
	rounds  []round
	roundIx int

	picker     components.ChoicePicker
	input      components.TextInput
	inFeedback bool
	lastRight  bool
	errMsg     string
}

var _ screen.Screen = (*AdventureScreen)(nil)
var _ screen.KeyHintProvider = (*AdventureScreen)(nil)

// New starts a level session. A start failure (no content for the
// level) is held and rendered; the player can back out with Esc.
func New(deps *game.Deps, themeID string, level int) *AdventureScreen {
	a := &AdventureScreen{
		deps:    deps,
		themeID: themeID,
		level:   level,
	}

	p := deps.CurrentProfile()
	if p == nil {
		a.errMsg = "no profile selected"
		return a
	}

	s, err := deps.Engine.StartLevel(p.ID, themeID, level)
	if err != nil {
		a.errMsg = "This level isn't ready yet!"
		return a
	}
	a.session = s
	a.loadActivity()
	return a
}

func (a *AdventureScreen) Title() string {
	if th := a.deps.Catalog.Theme(a.themeID); th != nil {
		return fmt.Sprintf("%s %s · Level %d", th.Glyph, th.Name, a.level)
	}
	return fmt.Sprintf("Level %d", a.level)
}

func (a *AdventureScreen) Init() tea.Cmd {
	if a.session != nil && a.currentRound() != nil && a.currentRound().spelling {
		return a.input.Init()
	}
	return nil
}

func (a *AdventureScreen) KeyHints() []layout.KeyHint {
	r := a.currentRound()
	switch {
	case a.inFeedback:
		return []layout.KeyHint{{Key: "···", Description: "Keep going!"}}
	case r != nil && r.spelling:
		return []layout.KeyHint{
			{Key: "Enter", Description: "Check"},
			{Key: "Esc", Description: "Leave level"},
		}
	case r != nil && r.options == nil:
		return []layout.KeyHint{
			{Key: "Enter", Description: "Next"},
			{Key: "Esc", Description: "Leave level"},
		}
	default:
		return []layout.KeyHint{
			{Key: "↑↓", Description: "Choose"},
			{Key: "Enter", Description: "Answer"},
			{Key: "Esc", Description: "Leave level"},
		}
	}
}

// loadActivity builds the rounds for the session's current activity and
// resets the per-round widgets.
func (a *AdventureScreen) loadActivity() {
	current := a.session.Current()
	if current == nil {
		return
	}
	a.rounds = buildRounds(a.deps, current)
	a.roundIx = 0
	a.prepareRound()
}

func (a *AdventureScreen) prepareRound() {
	r := a.currentRound()
	if r == nil {
		return
	}
	if r.spelling {
		a.input = components.NewTextInput("type the word...", true, 16)
	} else if r.options != nil {
		a.picker = components.NewChoicePicker(r.prompt, r.options, r.correctIdx)
	}
}

func (a *AdventureScreen) currentRound() *round {
	if a.session == nil || a.roundIx >= len(a.rounds) {
		return nil
	}
	return &a.rounds[a.roundIx]
}

func (a *AdventureScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	if a.errMsg != "" {
		return a, nil
	}

	if _, ok := msg.(feedbackDoneMsg); ok {
		a.inFeedback = false
		return a.nextRound()
	}
	if a.inFeedback {
		return a, nil
	}

	r := a.currentRound()
	if r == nil {
		return a, nil
	}

	switch {
	case r.spelling:
		return a.updateSpelling(msg, r)
	case r.options != nil:
		return a.updatePicker(msg, r)
	default:
		return a.updateTap(msg)
	}
}

func (a *AdventureScreen) updateTap(msg tea.Msg) (screen.Screen, tea.Cmd) {
	if _, ok := msg.(tea.KeyPressMsg); ok {
		return a.nextRound()
	}
	return a, nil
}

func (a *AdventureScreen) updateSpelling(msg tea.Msg, r *round) (screen.Screen, tea.Cmd) {
	if kmsg, ok := msg.(tea.KeyMsg); ok && kmsg.String() == "enter" {
		correct := a.input.Matches(r.word)
		a.input.Submit(correct)
		return a.judge(r, correct)
	}

	var cmd tea.Cmd
	a.input, cmd = a.input.Update(msg)
	return a, cmd
}

func (a *AdventureScreen) updatePicker(msg tea.Msg, r *round) (screen.Screen, tea.Cmd) {
	var cmd tea.Cmd
	a.picker, cmd = a.picker.Update(msg)
	if a.picker.Submitted {
		return a.judge(r, a.picker.IsCorrect())
	}
	return a, cmd
}

// judge records the answer and shows feedback before moving on.
func (a *AdventureScreen) judge(r *round, correct bool) (screen.Screen, tea.Cmd) {
	if r.scored {
		a.deps.Engine.RecordAnswer(a.session, correct, r.word)
	}
	if correct && r.collectKey != "" {
		a.deps.Engine.MarkCollected(a.session, r.collectKey)
	}

	a.inFeedback = true
	a.lastRight = correct
	return a, tea.Tick(feedbackDur, func(time.Time) tea.Msg {
		return feedbackDoneMsg{}
	})
}

// nextRound advances within the activity, across activities, and
// finally into the summary once the level is played through.
func (a *AdventureScreen) nextRound() (screen.Screen, tea.Cmd) {
	a.roundIx++
	a.session.ItemIndex = a.roundIx
	if a.roundIx < len(a.rounds) {
		a.prepareRound()
		r := a.currentRound()
		if r != nil && r.spelling {
			return a, a.input.Init()
		}
		return a, nil
	}

	if done := a.deps.Engine.AdvanceActivity(a.session); !done {
		a.loadActivity()
		r := a.currentRound()
		if r != nil && r.spelling {
			return a, a.input.Init()
		}
		return a, nil
	}

	return a.finish()
}

func (a *AdventureScreen) finish() (screen.Screen, tea.Cmd) {
	result, err := a.deps.Engine.CompleteLevel(a.session)
	warn := ""
	if err != nil {
		// Persistence trouble is non-fatal: the run still counts for
		// this session, the player just gets told saving failed.
		warn = "Couldn't save your progress this time!"
	}

	next := summary.New(a.deps, a.themeID, a.level, result, warn,
		func(level int) screen.Screen {
			return New(a.deps, a.themeID, level)
		})
	return a, func() tea.Msg {
		return router.ReplaceScreenMsg{Screen: next}
	}
}

func (a *AdventureScreen) View(width, height int) string {
	if a.errMsg != "" {
		return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center,
			theme.Hint.Render(a.errMsg+"\n\npress Esc to go back"))
	}

	r := a.currentRound()
	if r == nil {
		return ""
	}

	cw := components.ContentWidth(width)
	var sections []string

	// Progress across the whole level's rounds.
	sections = append(sections, a.progressLine(cw))

	if r.glyph != "" {
		big := lipgloss.NewStyle().Align(lipgloss.Center).Render(r.glyph)
		sections = append(sections, "", big)
	}

	switch {
	case a.inFeedback:
		sections = append(sections, "", a.feedbackView(r))
	case r.spelling:
		prompt := lipgloss.NewStyle().Foreground(theme.Text).Bold(true).Render(r.prompt)
		sections = append(sections, "", prompt, "", a.input.View())
	case r.options != nil:
		sections = append(sections, "", a.picker.View())
	default:
		prompt := lipgloss.NewStyle().Foreground(theme.Text).Bold(true).Render(r.prompt)
		hint := theme.Hint.Render("press any key for the next word")
		sections = append(sections, "", prompt, "", hint)
	}

	card := components.SceneCard(strings.Join(sections, "\n"), cw)
	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, card)
}

func (a *AdventureScreen) progressLine(cw int) string {
	total := len(a.rounds)
	if total == 0 {
		return ""
	}
	pct := float64(a.roundIx) / float64(total)
	label := fmt.Sprintf("Activity %d/%d", a.session.ActivityIndex+1, len(a.session.Activities))
	return components.NewProgressBar(label, pct, false, cw-8).View()
}

func (a *AdventureScreen) feedbackView(r *round) string {
	if a.lastRight {
		return theme.Correct.Render("✓ " + r.word + "!")
	}
	if r.scored {
		return theme.Incorrect.Render("✗ It was " + r.word)
	}
	return ""
}
