package engine

import "wordventure/internal/catalog"

// ActivityStarted fires when a session moves onto a new activity,
// including the first one at level start.
type ActivityStarted struct {
	ThemeID  string
	Level    int
	Activity catalog.Activity
}

// AnswerJudged fires once per scored answer. Streak counts consecutive
// correct answers within the session, 0 after a miss.
type AnswerJudged struct {
	Correct bool
	Word    string
	Streak  int
}

// LevelCompleted fires after a level's results are committed.
type LevelCompleted struct {
	ThemeID string
	Level   int
	Stars   int
}

// ThemeCompleted fires when a completed level has no level after it.
type ThemeCompleted struct {
	ThemeID string
}

// Listener receives engine events. Dispatch is synchronous and
// best-effort: listeners get no error channel back and must not block
// progression.
type Listener interface {
	OnActivityStarted(ActivityStarted)
	OnAnswerJudged(AnswerJudged)
	OnLevelCompleted(LevelCompleted)
	OnThemeCompleted(ThemeCompleted)
}

func (e *Engine) emitActivityStarted(ev ActivityStarted) {
	for _, l := range e.listeners {
		l.OnActivityStarted(ev)
	}
}

func (e *Engine) emitAnswerJudged(ev AnswerJudged) {
	for _, l := range e.listeners {
		l.OnAnswerJudged(ev)
	}
}

func (e *Engine) emitLevelCompleted(ev LevelCompleted) {
	for _, l := range e.listeners {
		l.OnLevelCompleted(ev)
	}
}

func (e *Engine) emitThemeCompleted(ev ThemeCompleted) {
	for _, l := range e.listeners {
		l.OnThemeCompleted(ev)
	}
}
