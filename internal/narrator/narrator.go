// Package narrator turns engine events into spoken-style encouragement
// lines. It is a best-effort side channel: the engine never waits on it
// and a muted narrator simply drops events.
package narrator

import (
	"fmt"
	"math/rand/v2"

	"wordventure/internal/engine"
	"wordventure/internal/progress"
)

var (
	correctLines = []string{
		"Great job!",
		"Awesome!",
		"You got it!",
		"Amazing!",
		"Well done!",
		"Fantastic!",
	}
	streakLines = []string{
		"You're on fire! %d in a row!",
		"Unstoppable! %d in a row!",
	}
	incorrectLines = []string{
		"Almost! Try again!",
		"Not quite, keep going!",
		"Good try! Have another go!",
	}
	threeStarLines = []string{
		"Wow, three stars! You're a superstar!",
		"Perfect! Three shiny stars!",
	}
	levelDoneLines = []string{
		"Level complete! Great work!",
		"You did it! On to the next one!",
	}
	themeDoneLines = []string{
		"You finished the whole adventure! Incredible!",
		"Adventure complete! What a champion!",
	}
)

// SettingsSource reports the current narration preferences.
type SettingsSource interface {
	Settings() progress.Settings
}

// Narrator speaks by handing lines to a sink, typically the UI status
// area. The sink must not block.
type Narrator struct {
	settings SettingsSource
	say      func(line string)
	rng      *rand.Rand
}

var _ engine.Listener = (*Narrator)(nil)

// New creates a Narrator that reads preferences from src and delivers
// lines through say.
func New(src SettingsSource, say func(line string)) *Narrator {
	return &Narrator{
		settings: src,
		say:      say,
		rng:      rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64())),
	}
}

func (n *Narrator) enabled() bool {
	return n.settings.Settings().Narration
}

func (n *Narrator) pick(lines []string) string {
	return lines[n.rng.IntN(len(lines))]
}

func (n *Narrator) OnActivityStarted(ev engine.ActivityStarted) {
	if !n.enabled() {
		return
	}
	n.say(ev.Activity.Instruction())
}

func (n *Narrator) OnAnswerJudged(ev engine.AnswerJudged) {
	if !n.enabled() {
		return
	}
	switch {
	case ev.Correct && ev.Streak > 0 && ev.Streak%3 == 0:
		n.say(fmt.Sprintf(n.pick(streakLines), ev.Streak))
	case ev.Correct:
		n.say(n.pick(correctLines))
	default:
		n.say(n.pick(incorrectLines))
	}
}

func (n *Narrator) OnLevelCompleted(ev engine.LevelCompleted) {
	if !n.enabled() {
		return
	}
	if ev.Stars == 3 {
		n.say(n.pick(threeStarLines))
	} else {
		n.say(n.pick(levelDoneLines))
	}
}

func (n *Narrator) OnThemeCompleted(engine.ThemeCompleted) {
	if !n.enabled() {
		return
	}
	n.say(n.pick(themeDoneLines))
}
