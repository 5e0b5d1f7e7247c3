// Package progress owns the durable player data: profiles, per-theme and
// per-level progress, stickers, and settings. The whole document is read
// and written as one blob through the storage layer, with schema
// migration applied on load.
package progress

import (
	"time"

	"wordventure/internal/catalog"
)

// SchemaVersion is the current on-disk document version.
const SchemaVersion = 2

// Document is the root of everything persisted.
type Document struct {
	SchemaVersion int            `json:"schemaVersion"`
	Settings      Settings       `json:"settings"`
	Users         []*UserProfile `json:"users"`
	CurrentUserID string         `json:"currentUserId,omitempty"`
}

// Settings are global preferences shared by all profiles.
type Settings struct {
	SoundEffects bool    `json:"soundEffects"`
	Narration    bool    `json:"narration"`
	SpeechRate   float64 `json:"speechRate"`
	Language     string  `json:"language"`
	// UnlockAll forces every level and theme to report unlocked at query
	// time. It never alters stored unlocked fields, so turning it off
	// restores prior gating exactly.
	UnlockAll bool `json:"unlockAll"`
}

func defaultSettings() Settings {
	return Settings{
		SoundEffects: true,
		Narration:    true,
		SpeechRate:   0.9,
		Language:     "en",
	}
}

// UserProfile is one learner.
type UserProfile struct {
	ID     string       `json:"id"`
	Name   string       `json:"name"`
	Avatar string       `json:"avatar"`
	Tier   catalog.Tier `json:"userType"`
	Age    int          `json:"age"`

	// TotalStars is monotonically non-decreasing: each level completion
	// adds only the improvement over the previous best, never the raw
	// star count.
	TotalStars int `json:"totalStars"`

	// CompletedThemes lists theme IDs whose level 1 has been completed
	// at least once. Gates the next theme, never replays.
	CompletedThemes []string `json:"completedThemes"`

	ThemeProgress map[string]*ThemeProgress `json:"themeProgress"`
	Stickers      []string                  `json:"stickers"`
	CreatedAt     time.Time                 `json:"createdAt"`
}

// ThemeProgress is one profile's record for one theme.
type ThemeProgress struct {
	Levels map[int]*LevelProgress `json:"levels"`

	// Cumulative across all completions, for statistics only. Unlock
	// decisions never read these.
	TotalCorrectAnswers int `json:"totalCorrectAnswers"`
	TotalQuestions      int `json:"totalQuestions"`

	WordsLearned []string `json:"wordsLearned"`
}

// LevelProgress is one profile's record for one level of a theme.
type LevelProgress struct {
	Completed bool `json:"completed"`
	// Stars is the best rating ever achieved, in 0..3. Never decreases.
	Stars    int  `json:"stars"`
	Unlocked bool `json:"unlocked"`
	// Last completion's counters, for the stats report.
	CorrectAnswers int `json:"correctAnswers"`
	TotalQuestions int `json:"totalQuestions"`
}

// LevelStats carries the session counters committed with a completion.
type LevelStats struct {
	Correct      int
	Total        int
	WordsLearned []string
}

// ProfileUpdate holds the fields UpdateProfile may change. Nil fields are
// left untouched.
type ProfileUpdate struct {
	Name   *string
	Avatar *string
	Age    *int
	Tier   *catalog.Tier
}

// SettingsUpdate holds the fields UpdateSettings may change. Nil fields
// are left untouched.
type SettingsUpdate struct {
	SoundEffects *bool
	Narration    *bool
	SpeechRate   *float64
	Language     *string
	UnlockAll    *bool
}

func newDocument() *Document {
	return &Document{
		SchemaVersion: SchemaVersion,
		Settings:      defaultSettings(),
		Users:         []*UserProfile{},
	}
}

func newThemeProgress() *ThemeProgress {
	return &ThemeProgress{
		Levels:       map[int]*LevelProgress{},
		WordsLearned: []string{},
	}
}
