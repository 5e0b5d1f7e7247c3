package engine

import (
	"errors"
	"math/rand/v2"
	"path/filepath"
	"testing"

	"wordventure/internal/catalog"
	"wordventure/internal/progress"
	"wordventure/internal/storage"
)

func newTestEngine(t *testing.T, opts ...Option) (*Engine, *progress.Store, *progress.UserProfile) {
	t.Helper()
	cat, err := catalog.Load()
	if err != nil {
		t.Fatalf("load catalog: %v", err)
	}
	blob, err := storage.OpenFile(filepath.Join(t.TempDir(), "progress.json"))
	if err != nil {
		t.Fatalf("open blob: %v", err)
	}
	store, err := progress.Open(blob)
	if err != nil {
		t.Fatalf("open store: %v", err)
	}
	p, err := store.CreateProfile("Test", "", catalog.TierExplorer, 5)
	if err != nil {
		t.Fatalf("create profile: %v", err)
	}
	opts = append(opts, WithRand(rand.New(rand.NewPCG(1, 2))))
	return New(cat, store, opts...), store, p
}

func firstThemes(t *testing.T, e *Engine) (string, string) {
	t.Helper()
	themes := e.catalog.Themes()
	if len(themes) < 2 {
		t.Fatal("catalog needs at least two themes")
	}
	return themes[0].ID, themes[1].ID
}

func TestCalculateStars(t *testing.T) {
	tests := []struct {
		correct, total int
		want           int
	}{
		{0, 0, 3}, // no scored questions counts as perfect
		{10, 10, 3},
		{9, 10, 3},  // exactly 0.90
		{18, 20, 3}, // exactly 0.90
		{17, 20, 2},
		{7, 10, 2}, // exactly 0.70
		{69, 100, 1},
		{2, 4, 1},
		{0, 5, 1},
	}
	for _, tt := range tests {
		if got := CalculateStars(tt.correct, tt.total); got != tt.want {
			t.Errorf("CalculateStars(%d, %d) = %d, want %d", tt.correct, tt.total, got, tt.want)
		}
	}
}

func TestStartLevel_NoActivities(t *testing.T) {
	e, _, p := newTestEngine(t)
	theme, _ := firstThemes(t, e)

	if _, err := e.StartLevel(p.ID, theme, 99); !errors.Is(err, ErrNoActivitiesForLevel) {
		t.Errorf("level 99: expected ErrNoActivitiesForLevel, got %v", err)
	}
	if _, err := e.StartLevel(p.ID, "no-such-theme", 1); !errors.Is(err, ErrNoActivitiesForLevel) {
		t.Errorf("missing theme: expected ErrNoActivitiesForLevel, got %v", err)
	}
	if _, err := e.StartLevel("no-such-profile", theme, 1); !errors.Is(err, progress.ErrProfileNotFound) {
		t.Errorf("missing profile: expected ErrProfileNotFound, got %v", err)
	}
}

func TestStartLevel_RestartDiscardsCounters(t *testing.T) {
	e, _, p := newTestEngine(t)
	theme, _ := firstThemes(t, e)

	s, err := e.StartLevel(p.ID, theme, 1)
	if err != nil {
		t.Fatalf("start: %v", err)
	}
	e.RecordAnswer(s, true, "apple")
	e.RecordAnswer(s, false, "milk")
	e.MarkCollected(s, "apple")

	s2, err := e.StartLevel(p.ID, theme, 1)
	if err != nil {
		t.Fatalf("restart: %v", err)
	}
	if s2.Correct != 0 || s2.Total != 0 || s2.ActivityIndex != 0 || s2.CollectedCount() != 0 {
		t.Errorf("restart must start fresh, got %+v", s2)
	}
	if s2.Phase() != PhaseInProgress {
		t.Errorf("phase = %v", s2.Phase())
	}
}

func TestRecordAnswer_Counters(t *testing.T) {
	e, _, p := newTestEngine(t)
	theme, _ := firstThemes(t, e)
	s, _ := e.StartLevel(p.ID, theme, 1)

	e.RecordAnswer(s, true, "apple")
	e.RecordAnswer(s, false, "milk")
	e.RecordAnswer(s, true, "bread")
	if s.Correct != 2 || s.Total != 3 {
		t.Errorf("counters = %d/%d, want 2/3", s.Correct, s.Total)
	}
}

func TestRecordAnswer_StreakResetsOnMiss(t *testing.T) {
	e, _, p := newTestEngine(t)
	theme, _ := firstThemes(t, e)
	s, _ := e.StartLevel(p.ID, theme, 1)

	e.RecordAnswer(s, true, "apple")
	e.RecordAnswer(s, true, "milk")
	if s.Streak() != 2 {
		t.Errorf("streak = %d, want 2", s.Streak())
	}
	e.RecordAnswer(s, false, "bread")
	if s.Streak() != 0 {
		t.Errorf("streak after miss = %d, want 0", s.Streak())
	}
	e.RecordAnswer(s, true, "egg")
	if s.Streak() != 1 {
		t.Errorf("streak restarts at %d, want 1", s.Streak())
	}
}

func TestMarkCollected_RejectsSolvedItems(t *testing.T) {
	e, _, p := newTestEngine(t)
	theme, _ := firstThemes(t, e)
	s, _ := e.StartLevel(p.ID, theme, 1)

	if !e.MarkCollected(s, "apple") {
		t.Error("first collect should succeed")
	}
	if e.MarkCollected(s, "apple") {
		t.Error("second collect of the same item must be rejected")
	}

	// Advancing resets the collected set for the next activity.
	e.AdvanceActivity(s)
	if s.Collected("apple") {
		t.Error("collected set should reset on advance")
	}
}

func TestAdvanceActivity_ExhaustsList(t *testing.T) {
	e, _, p := newTestEngine(t)
	theme, _ := firstThemes(t, e)
	s, _ := e.StartLevel(p.ID, theme, 1)

	steps := 0
	for !e.AdvanceActivity(s) {
		steps++
		if steps > 50 {
			t.Fatal("advance never exhausted the list")
		}
		if s.Current() == nil {
			t.Fatal("in-progress session must have a current activity")
		}
	}
	if s.Phase() != PhaseCompleted {
		t.Errorf("phase after exhaustion = %v, want PhaseCompleted", s.Phase())
	}
	if s.Current() != nil {
		t.Error("completed session has no current activity")
	}
}

func TestCompleteLevel_CommitsOnce(t *testing.T) {
	e, store, p := newTestEngine(t)
	theme, _ := firstThemes(t, e)
	s, _ := e.StartLevel(p.ID, theme, 1)
	e.RecordAnswer(s, true, "apple")
	e.RecordAnswer(s, true, "milk")

	res, err := e.CompleteLevel(s)
	if err != nil {
		t.Fatalf("complete: %v", err)
	}
	if res.Stars != 3 {
		t.Errorf("stars = %d, want 3 for 2/2", res.Stars)
	}
	if !store.LevelProgress(p.ID, theme, 1).Completed {
		t.Error("completion not committed to store")
	}
	starsBefore := p.TotalStars

	if _, err := e.CompleteLevel(s); !errors.Is(err, ErrAlreadyCommitted) {
		t.Fatalf("second commit: expected ErrAlreadyCommitted, got %v", err)
	}
	if p.TotalStars != starsBefore {
		t.Error("double commit changed totalStars")
	}
}

func TestCompleteLevel_NextLevelAndThemeDone(t *testing.T) {
	e, _, p := newTestEngine(t)
	theme, _ := firstThemes(t, e)

	s, _ := e.StartLevel(p.ID, theme, 1)
	res, err := e.CompleteLevel(s)
	if err != nil {
		t.Fatalf("complete level 1: %v", err)
	}
	if !res.HasNextLevel || res.ThemeDone {
		t.Errorf("level 1 result = %+v, want a next level", res)
	}

	maxLevel := e.catalog.MaxLevel(theme, p.Tier)
	s, err = e.StartLevel(p.ID, theme, maxLevel)
	if err != nil {
		t.Fatalf("start max level: %v", err)
	}
	res, err = e.CompleteLevel(s)
	if err != nil {
		t.Fatalf("complete max level: %v", err)
	}
	if res.HasNextLevel || !res.ThemeDone {
		t.Errorf("max level result = %+v, want theme done", res)
	}
}

func TestIsThemeUnlocked_Gating(t *testing.T) {
	e, store, p := newTestEngine(t)
	theme0, _ := firstThemes(t, e)

	if !e.IsThemeUnlocked(p.ID, 0) {
		t.Error("theme 0 must always be unlocked")
	}
	if e.IsThemeUnlocked(p.ID, 1) {
		t.Error("theme 1 should be locked before theme 0 level 1")
	}
	if e.IsThemeUnlocked(p.ID, -1) || e.IsThemeUnlocked(p.ID, 999) {
		t.Error("out-of-range theme index is never unlocked")
	}

	// Completing theme 0 level 1 with any star count unlocks theme 1.
	s, _ := e.StartLevel(p.ID, theme0, 1)
	e.RecordAnswer(s, false, "apple")
	e.RecordAnswer(s, false, "milk")
	if _, err := e.CompleteLevel(s); err != nil {
		t.Fatalf("complete: %v", err)
	}
	if !e.IsThemeUnlocked(p.ID, 1) {
		t.Error("theme 1 should unlock after theme 0 level 1, regardless of stars")
	}
	if e.IsThemeUnlocked(p.ID, 2) {
		t.Error("theme 2 should still be locked")
	}

	on := true
	_ = store.UpdateSettings(progress.SettingsUpdate{UnlockAll: &on})
	if !e.IsThemeUnlocked(p.ID, 5) {
		t.Error("unlock-all should unlock every theme")
	}
}

func TestPickDistractors(t *testing.T) {
	e, _, _ := newTestEngine(t)
	pool := []string{"apple", "banana", "milk", "bread", "cheese", "egg"}

	for i := 0; i < 100; i++ {
		got := e.PickDistractors("apple", pool, 4)
		if len(got) != 4 {
			t.Fatalf("len = %d, want 4", len(got))
		}
		count := 0
		seen := map[string]bool{}
		for _, k := range got {
			if seen[k] {
				t.Fatalf("duplicate entry %q in %v", k, got)
			}
			seen[k] = true
			if k == "apple" {
				count++
			}
		}
		if count != 1 {
			t.Fatalf("correct key appeared %d times in %v", count, got)
		}
	}
}

func TestPickDistractors_SmallPool(t *testing.T) {
	e, _, _ := newTestEngine(t)

	tests := []struct {
		name    string
		correct string
		pool    []string
		count   int
		wantLen int
	}{
		{"pool smaller than count", "a", []string{"a", "b"}, 4, 2},
		{"pool is only the correct key", "a", []string{"a"}, 4, 1},
		{"empty pool", "a", nil, 4, 1},
		{"duplicates in pool collapse", "a", []string{"b", "b", "b"}, 4, 2},
	}
	for _, tt := range tests {
		got := e.PickDistractors(tt.correct, tt.pool, tt.count)
		if len(got) != tt.wantLen {
			t.Errorf("%s: len = %d, want %d (%v)", tt.name, len(got), tt.wantLen, got)
		}
	}
}

func TestPickDistractors_NoPositionalBias(t *testing.T) {
	e, _, _ := newTestEngine(t)
	pool := []string{"apple", "banana", "milk", "bread", "cheese"}

	positions := map[int]bool{}
	for i := 0; i < 200; i++ {
		got := e.PickDistractors("apple", pool, 4)
		for pos, k := range got {
			if k == "apple" {
				positions[pos] = true
			}
		}
	}
	if len(positions) < 2 {
		t.Errorf("correct key always landed in the same slot: %v", positions)
	}
}

func TestStickerChoices(t *testing.T) {
	e, store, p := newTestEngine(t)

	choices, complete, err := e.StickerChoices(p.ID)
	if err != nil {
		t.Fatalf("choices: %v", err)
	}
	if complete || len(choices) != 4 {
		t.Fatalf("expected 4 choices from a full pool, got %v (complete=%v)", choices, complete)
	}
	seen := map[string]bool{}
	for _, c := range choices {
		if seen[c] {
			t.Errorf("duplicate choice %q", c)
		}
		seen[c] = true
	}

	if err := e.ChooseSticker(p.ID, choices[0]); err != nil {
		t.Fatalf("choose: %v", err)
	}
	owned, _ := store.Stickers(p.ID)
	if len(owned) != 1 || owned[0] != choices[0] {
		t.Errorf("owned = %v", owned)
	}

	// Offered choices never include owned stickers.
	for i := 0; i < 20; i++ {
		next, _, _ := e.StickerChoices(p.ID)
		for _, c := range next {
			if c == choices[0] {
				t.Fatal("owned sticker offered again")
			}
		}
	}
}

func TestStickerChoices_CollectionComplete(t *testing.T) {
	e, store, p := newTestEngine(t)

	for _, s := range stickerPool {
		if err := store.AddSticker(p.ID, s); err != nil {
			t.Fatalf("add sticker: %v", err)
		}
	}
	choices, complete, err := e.StickerChoices(p.ID)
	if err != nil {
		t.Fatalf("choices: %v", err)
	}
	if !complete || len(choices) != 0 {
		t.Errorf("expected collection complete, got %v (complete=%v)", choices, complete)
	}
}

// recorder collects events for assertions.
type recorder struct {
	started   []ActivityStarted
	judged    []AnswerJudged
	completed []LevelCompleted
	themes    []ThemeCompleted
}

func (r *recorder) OnActivityStarted(ev ActivityStarted) { r.started = append(r.started, ev) }
func (r *recorder) OnAnswerJudged(ev AnswerJudged)       { r.judged = append(r.judged, ev) }
func (r *recorder) OnLevelCompleted(ev LevelCompleted)   { r.completed = append(r.completed, ev) }
func (r *recorder) OnThemeCompleted(ev ThemeCompleted)   { r.themes = append(r.themes, ev) }

func TestEvents_Dispatch(t *testing.T) {
	rec := &recorder{}
	e, _, p := newTestEngine(t, WithListener(rec))
	theme, _ := firstThemes(t, e)

	s, _ := e.StartLevel(p.ID, theme, 1)
	if len(rec.started) != 1 {
		t.Fatalf("expected ActivityStarted on level start, got %d", len(rec.started))
	}
	if rec.started[0].ThemeID != theme || rec.started[0].Level != 1 {
		t.Errorf("event = %+v", rec.started[0])
	}

	e.RecordAnswer(s, true, "apple")
	e.RecordAnswer(s, false, "milk")
	if len(rec.judged) != 2 || !rec.judged[0].Correct || rec.judged[1].Correct {
		t.Errorf("judged events = %+v", rec.judged)
	}

	e.AdvanceActivity(s)
	if len(rec.started) != 2 {
		t.Errorf("expected ActivityStarted on advance, got %d", len(rec.started))
	}

	if _, err := e.CompleteLevel(s); err != nil {
		t.Fatalf("complete: %v", err)
	}
	if len(rec.completed) != 1 || rec.completed[0].Stars == 0 {
		t.Errorf("completed events = %+v", rec.completed)
	}
	if len(rec.themes) != 0 {
		t.Error("theme should not be done after level 1")
	}

	maxLevel := e.catalog.MaxLevel(theme, p.Tier)
	s, _ = e.StartLevel(p.ID, theme, maxLevel)
	if _, err := e.CompleteLevel(s); err != nil {
		t.Fatalf("complete max level: %v", err)
	}
	if len(rec.themes) != 1 || rec.themes[0].ThemeID != theme {
		t.Errorf("expected ThemeCompleted, got %+v", rec.themes)
	}
}
