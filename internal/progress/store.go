package progress

import (
	"encoding/json"
	"errors"
	"time"

	"github.com/google/uuid"

	"wordventure/internal/catalog"
	"wordventure/internal/storage"
)

// Store is durable CRUD over profiles and settings. It keeps the whole
// document in memory as the authoritative copy and writes it back as one
// blob after every mutation. Single caller at a time; the game loop is
// event driven and never mutates concurrently.
type Store struct {
	blob storage.Blob
	doc  *Document

	// unlockAllOverride mirrors the unlock-all setting for one process
	// only, e.g. from a debug flag. It is never written to storage, so
	// dropping the flag restores prior gating exactly.
	unlockAllOverride bool
}

// Open loads and migrates the saved document. A missing blob starts
// fresh. A backend read failure also starts fresh but is reported as a
// PersistenceError alongside the usable store, so the caller can warn
// and keep playing.
func Open(blob storage.Blob) (*Store, error) {
	s := &Store{blob: blob, doc: newDocument()}

	data, err := blob.Load()
	if errors.Is(err, storage.ErrNotFound) {
		return s, nil
	}
	if err != nil {
		return s, &PersistenceError{Op: "load", Err: err}
	}

	doc, migrated := decodeDocument(data)
	s.doc = doc
	if migrated {
		// Write the upgraded schema back so the next load is a no-op.
		return s, s.persist()
	}
	return s, nil
}

// persist writes the whole document as a single blob. On failure the
// in-memory document stays authoritative and the next mutation retries.
func (s *Store) persist() error {
	data, err := json.MarshalIndent(s.doc, "", "  ")
	if err != nil {
		return &PersistenceError{Op: "encode", Err: err}
	}
	if err := s.blob.Save(data); err != nil {
		return &PersistenceError{Op: "save", Err: err}
	}
	return nil
}

func (s *Store) find(id string) *UserProfile {
	for _, p := range s.doc.Users {
		if p.ID == id {
			return p
		}
	}
	return nil
}

// CreateProfile makes a new profile with a fresh ID and zeroed progress.
// On a failed write the profile is rolled back and not considered
// created.
func (s *Store) CreateProfile(name, avatar string, tier catalog.Tier, age int) (*UserProfile, error) {
	if name == "" {
		name = tier.DefaultName()
	}
	if avatar == "" {
		avatar = tier.DefaultAvatar()
	}
	p := &UserProfile{
		ID:              uuid.NewString(),
		Name:            name,
		Avatar:          avatar,
		Tier:            tier,
		Age:             age,
		CompletedThemes: []string{},
		ThemeProgress:   map[string]*ThemeProgress{},
		Stickers:        []string{},
		CreatedAt:       time.Now(),
	}
	s.doc.Users = append(s.doc.Users, p)
	if err := s.persist(); err != nil {
		s.doc.Users = s.doc.Users[:len(s.doc.Users)-1]
		return nil, err
	}
	return p, nil
}

// Profile returns the profile with the given ID.
func (s *Store) Profile(id string) (*UserProfile, error) {
	p := s.find(id)
	if p == nil {
		return nil, ErrProfileNotFound
	}
	return p, nil
}

// UpdateProfile shallow-merges the non-nil fields of u into the profile.
func (s *Store) UpdateProfile(id string, u ProfileUpdate) error {
	p := s.find(id)
	if p == nil {
		return ErrProfileNotFound
	}
	if u.Name != nil {
		p.Name = *u.Name
	}
	if u.Avatar != nil {
		p.Avatar = *u.Avatar
	}
	if u.Age != nil {
		p.Age = *u.Age
	}
	if u.Tier != nil && u.Tier.Valid() {
		p.Tier = *u.Tier
	}
	return s.persist()
}

// DeleteProfile removes the profile and all its progress and stickers.
// If it was the current profile, the pointer is cleared.
func (s *Store) DeleteProfile(id string) error {
	for i, p := range s.doc.Users {
		if p.ID != id {
			continue
		}
		s.doc.Users = append(s.doc.Users[:i], s.doc.Users[i+1:]...)
		if s.doc.CurrentUserID == id {
			s.doc.CurrentUserID = ""
		}
		return s.persist()
	}
	return ErrProfileNotFound
}

// Profiles lists profiles in insertion order, optionally filtered by
// tier. Pass an empty tier for all.
func (s *Store) Profiles(tier catalog.Tier) []*UserProfile {
	if tier == "" {
		return s.doc.Users
	}
	var out []*UserProfile
	for _, p := range s.doc.Users {
		if p.Tier == tier {
			out = append(out, p)
		}
	}
	return out
}

// CurrentProfile returns the selected profile, or ErrNoCurrentProfile.
func (s *Store) CurrentProfile() (*UserProfile, error) {
	if s.doc.CurrentUserID == "" {
		return nil, ErrNoCurrentProfile
	}
	p := s.find(s.doc.CurrentUserID)
	if p == nil {
		return nil, ErrNoCurrentProfile
	}
	return p, nil
}

// SetCurrentProfile records which profile is playing.
func (s *Store) SetCurrentProfile(id string) error {
	if s.find(id) == nil {
		return ErrProfileNotFound
	}
	s.doc.CurrentUserID = id
	return s.persist()
}

// LevelProgress returns the recorded progress for (profile, theme,
// level), or a synthesized default when nothing is recorded yet. It
// never errors; a missing profile reads as no progress. With the
// unlock-all setting on, unlocked is forced true in the answer only.
func (s *Store) LevelProgress(profileID, themeID string, level int) LevelProgress {
	lp := LevelProgress{Unlocked: level == 1}
	if p := s.find(profileID); p != nil {
		if tp := p.ThemeProgress[themeID]; tp != nil {
			if rec := tp.Levels[level]; rec != nil {
				lp = *rec
				if level == 1 {
					lp.Unlocked = true
				}
			}
		}
	}
	if s.UnlockAll() {
		lp.Unlocked = true
	}
	return lp
}

// UnlockAll reports whether the unlock-all override is in effect, from
// either the stored setting or the process-local flag.
func (s *Store) UnlockAll() bool {
	return s.doc.Settings.UnlockAll || s.unlockAllOverride
}

// SetUnlockAllOverride switches the process-local unlock-all override
// without touching stored settings.
func (s *Store) SetUnlockAllOverride(on bool) {
	s.unlockAllOverride = on
}

// ThemeProgressFor returns the recorded theme progress, or nil when the
// profile has never played the theme.
func (s *Store) ThemeProgressFor(profileID, themeID string) *ThemeProgress {
	if p := s.find(profileID); p != nil {
		return p.ThemeProgress[themeID]
	}
	return nil
}

// CompleteLevel is the single mutating entry point for level completion.
// Stars only ever improve: the stored value becomes the max of old and
// new, and totalStars grows by the improvement alone, so replays never
// inflate the total. The whole profile is persisted in one write.
func (s *Store) CompleteLevel(profileID, themeID string, level, stars int, stats LevelStats) error {
	p := s.find(profileID)
	if p == nil {
		return ErrProfileNotFound
	}

	tp := p.ThemeProgress[themeID]
	if tp == nil {
		tp = newThemeProgress()
		p.ThemeProgress[themeID] = tp
	}
	lp := tp.Levels[level]
	if lp == nil {
		lp = &LevelProgress{Unlocked: level == 1}
		tp.Levels[level] = lp
	}

	best := lp.Stars
	if stars > best {
		best = stars
	}
	delta := stars - lp.Stars
	if delta < 0 {
		delta = 0
	}

	lp.Completed = true
	lp.Stars = best
	lp.Unlocked = true
	lp.CorrectAnswers = stats.Correct
	lp.TotalQuestions = stats.Total

	tp.TotalCorrectAnswers += stats.Correct
	tp.TotalQuestions += stats.Total
	for _, w := range stats.WordsLearned {
		if !contains(tp.WordsLearned, w) {
			tp.WordsLearned = append(tp.WordsLearned, w)
		}
	}

	next := tp.Levels[level+1]
	if next == nil {
		next = &LevelProgress{}
		tp.Levels[level+1] = next
	}
	next.Unlocked = true

	if level == 1 && !contains(p.CompletedThemes, themeID) {
		p.CompletedThemes = append(p.CompletedThemes, themeID)
	}

	p.TotalStars += delta

	return s.persist()
}

// Stickers returns the profile's owned stickers in award order.
func (s *Store) Stickers(profileID string) ([]string, error) {
	p := s.find(profileID)
	if p == nil {
		return nil, ErrProfileNotFound
	}
	return p.Stickers, nil
}

// AddSticker adds a sticker to the profile. Already-owned stickers are a
// no-op, keeping the set duplicate free.
func (s *Store) AddSticker(profileID, sticker string) error {
	p := s.find(profileID)
	if p == nil {
		return ErrProfileNotFound
	}
	if contains(p.Stickers, sticker) {
		return nil
	}
	p.Stickers = append(p.Stickers, sticker)
	return s.persist()
}

// Settings returns the global settings.
func (s *Store) Settings() Settings {
	return s.doc.Settings
}

// UpdateSettings shallow-merges the non-nil fields of u.
func (s *Store) UpdateSettings(u SettingsUpdate) error {
	st := &s.doc.Settings
	if u.SoundEffects != nil {
		st.SoundEffects = *u.SoundEffects
	}
	if u.Narration != nil {
		st.Narration = *u.Narration
	}
	if u.SpeechRate != nil {
		st.SpeechRate = *u.SpeechRate
	}
	if u.Language != nil {
		st.Language = *u.Language
	}
	if u.UnlockAll != nil {
		st.UnlockAll = *u.UnlockAll
	}
	return s.persist()
}

// ResetProfile zeroes one profile's progress, stars, and stickers while
// keeping its identity.
func (s *Store) ResetProfile(id string) error {
	p := s.find(id)
	if p == nil {
		return ErrProfileNotFound
	}
	p.TotalStars = 0
	p.CompletedThemes = []string{}
	p.ThemeProgress = map[string]*ThemeProgress{}
	p.Stickers = []string{}
	return s.persist()
}

// ResetAll deletes every profile and restores default settings.
func (s *Store) ResetAll() error {
	s.doc = newDocument()
	if err := s.blob.Delete(); err != nil {
		return &PersistenceError{Op: "delete", Err: err}
	}
	return nil
}
