package engine

import "wordventure/internal/catalog"

// Phase is the level-session state machine.
type Phase int

const (
	PhaseNotStarted Phase = iota
	PhaseInProgress
	PhaseCompleted
)

// Session is the transient state of one level attempt. It is never
// persisted: abandoning a level mid-way leaves no trace in the progress
// store. Only CompleteLevel commits its counters, exactly once.
type Session struct {
	ProfileID string
	ThemeID   string
	Level     int

	// Activities is the ordered list resolved from the catalog for the
	// profile's tier at level start. Never empty while InProgress.
	Activities    []catalog.Activity
	ActivityIndex int

	// ItemIndex is the position within the current activity's item list.
	ItemIndex int

	// Counters accumulated across all activities in the level, consumed
	// once at completion to compute stars.
	Correct int
	Total   int

	// streak is the run of consecutive correct answers, reset by a miss.
	streak int

	// collected tracks item keys already resolved correctly in the
	// current activity, so a solved item can't be answered again.
	collected map[string]bool

	wordsLearned []string
	phase        Phase
	committed    bool
}

// Phase reports where the session is in its lifecycle.
func (s *Session) Phase() Phase {
	return s.phase
}

// Current returns the activity in progress, or nil once completed.
func (s *Session) Current() catalog.Activity {
	if s.phase != PhaseInProgress || s.ActivityIndex >= len(s.Activities) {
		return nil
	}
	return s.Activities[s.ActivityIndex]
}

// Collected reports whether an item key was already resolved in the
// current activity.
func (s *Session) Collected(key string) bool {
	return s.collected[key]
}

// CollectedCount returns how many items are resolved in the current
// activity.
func (s *Session) CollectedCount() int {
	return len(s.collected)
}

// Streak returns the current run of consecutive correct answers.
func (s *Session) Streak() int {
	return s.streak
}

// WordsLearned returns the deduplicated words encountered so far.
func (s *Session) WordsLearned() []string {
	return s.wordsLearned
}

func (s *Session) learnWords(words []string) {
	for _, w := range words {
		seen := false
		for _, have := range s.wordsLearned {
			if have == w {
				seen = true
				break
			}
		}
		if !seen {
			s.wordsLearned = append(s.wordsLearned, w)
		}
	}
}
