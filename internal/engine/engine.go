// Package engine sequences activities within a level, judges answers,
// computes star ratings, and commits results to the progress store
// exactly once per completion. Session state is an explicit value owned
// by the caller, so replays and restarts never leak state.
package engine

import (
	"errors"
	"fmt"
	"math/rand/v2"

	"wordventure/internal/catalog"
	"wordventure/internal/progress"
)

// ErrNoActivitiesForLevel means the (theme, tier, level) combination has
// no content. Callers treat it as "level does not exist" and do not
// advance.
var ErrNoActivitiesForLevel = errors.New("no activities for level")

// ErrAlreadyCommitted guards the once-only completion commit.
var ErrAlreadyCommitted = errors.New("level result already committed")

// Engine binds the catalog and the progress store.
type Engine struct {
	catalog   *catalog.Catalog
	store     *progress.Store
	listeners []Listener
	rng       *rand.Rand
}

// Option configures an Engine.
type Option func(*Engine)

// WithListener subscribes a listener to engine events.
func WithListener(l Listener) Option {
	return func(e *Engine) { e.listeners = append(e.listeners, l) }
}

// WithRand replaces the random source, for deterministic tests.
func WithRand(r *rand.Rand) Option {
	return func(e *Engine) { e.rng = r }
}

// New creates an Engine over the given catalog and store.
func New(cat *catalog.Catalog, store *progress.Store, opts ...Option) *Engine {
	e := &Engine{
		catalog: cat,
		store:   store,
		rng:     rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64())),
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// StartLevel begins a fresh session for (profile, theme, level). Calling
// it again for a level already in progress discards the old counters and
// starts over; an abandoned session simply gets garbage collected.
func (e *Engine) StartLevel(profileID, themeID string, level int) (*Session, error) {
	p, err := e.store.Profile(profileID)
	if err != nil {
		return nil, err
	}

	activities := e.catalog.ActivitiesFor(themeID, p.Tier, level)
	if len(activities) == 0 {
		return nil, fmt.Errorf("%w: theme %q level %d", ErrNoActivitiesForLevel, themeID, level)
	}

	s := &Session{
		ProfileID:  profileID,
		ThemeID:    themeID,
		Level:      level,
		Activities: activities,
		collected:  map[string]bool{},
		phase:      PhaseInProgress,
	}
	s.learnWords(activities[0].Words())
	e.emitActivityStarted(ActivityStarted{ThemeID: themeID, Level: level, Activity: activities[0]})
	return s, nil
}

// RecordAnswer counts one scored answer. Pure counter update.
func (e *Engine) RecordAnswer(s *Session, correct bool, word string) {
	s.Total++
	if correct {
		s.Correct++
		s.streak++
	} else {
		s.streak = 0
	}
	e.emitAnswerJudged(AnswerJudged{Correct: correct, Word: word, Streak: s.streak})
}

// MarkCollected records that an item was resolved in the current
// activity. Returns false if it was already resolved, so a solved item
// can't be answered twice.
func (e *Engine) MarkCollected(s *Session, key string) bool {
	if s.collected[key] {
		return false
	}
	s.collected[key] = true
	return true
}

// AdvanceActivity moves the session to the next activity, resetting the
// item cursor and collected set. It returns true when the list is
// exhausted and the level is ready to be committed.
func (e *Engine) AdvanceActivity(s *Session) bool {
	s.ActivityIndex++
	s.ItemIndex = 0
	s.collected = map[string]bool{}
	if s.ActivityIndex >= len(s.Activities) {
		s.phase = PhaseCompleted
		return true
	}
	next := s.Activities[s.ActivityIndex]
	s.learnWords(next.Words())
	e.emitActivityStarted(ActivityStarted{ThemeID: s.ThemeID, Level: s.Level, Activity: next})
	return false
}

// Result is what a level completion hands back to the UI.
type Result struct {
	Stars        int
	Correct      int
	Total        int
	HasNextLevel bool
	// ThemeDone means no level follows this one, so the theme is played
	// through.
	ThemeDone bool
}

// CompleteLevel computes the star rating from the session counters and
// commits the result to the progress store. The commit happens at most
// once per session. A PersistenceError is returned alongside a valid
// Result: gameplay continues on in-memory state.
func (e *Engine) CompleteLevel(s *Session) (Result, error) {
	if s.committed {
		return Result{}, ErrAlreadyCommitted
	}
	p, err := e.store.Profile(s.ProfileID)
	if err != nil {
		return Result{}, err
	}

	stars := CalculateStars(s.Correct, s.Total)
	s.phase = PhaseCompleted
	s.committed = true

	saveErr := e.store.CompleteLevel(s.ProfileID, s.ThemeID, s.Level, stars, progress.LevelStats{
		Correct:      s.Correct,
		Total:        s.Total,
		WordsLearned: s.wordsLearned,
	})

	hasNext := len(e.catalog.ActivitiesFor(s.ThemeID, p.Tier, s.Level+1)) > 0
	res := Result{
		Stars:        stars,
		Correct:      s.Correct,
		Total:        s.Total,
		HasNextLevel: hasNext,
		ThemeDone:    !hasNext,
	}

	e.emitLevelCompleted(LevelCompleted{ThemeID: s.ThemeID, Level: s.Level, Stars: stars})
	if res.ThemeDone {
		e.emitThemeCompleted(ThemeCompleted{ThemeID: s.ThemeID})
	}
	return res, saveErr
}

// CalculateStars maps session counters to a 1..3 rating. A level with no
// scored questions counts as perfect, so exploration-only activities
// still reward three stars.
func CalculateStars(correct, total int) int {
	if total == 0 {
		return 3
	}
	accuracy := float64(correct) / float64(total)
	switch {
	case accuracy >= 0.90:
		return 3
	case accuracy >= 0.70:
		return 2
	default:
		return 1
	}
}

// IsThemeUnlocked reports whether the theme at the given catalog index is
// playable. The first theme always is; each later theme unlocks once the
// previous theme's level 1 is completed, regardless of stars. The
// unlock-all setting overrides the answer without touching stored data.
func (e *Engine) IsThemeUnlocked(profileID string, themeIndex int) bool {
	themes := e.catalog.Themes()
	if themeIndex < 0 || themeIndex >= len(themes) {
		return false
	}
	if e.store.UnlockAll() || themeIndex == 0 {
		return true
	}
	prev := themes[themeIndex-1]
	return e.store.LevelProgress(profileID, prev.ID, 1).Completed
}

// IsLevelUnlocked reports whether a level within a theme is playable.
func (e *Engine) IsLevelUnlocked(profileID, themeID string, level int) bool {
	return e.store.LevelProgress(profileID, themeID, level).Unlocked
}
