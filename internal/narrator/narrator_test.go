package narrator

import (
	"strings"
	"testing"

	"wordventure/internal/catalog"
	"wordventure/internal/engine"
	"wordventure/internal/progress"
)

type fakeSettings struct {
	narration bool
}

func (f fakeSettings) Settings() progress.Settings {
	return progress.Settings{Narration: f.narration}
}

func TestNarrator_SpeaksOnEvents(t *testing.T) {
	var lines []string
	n := New(fakeSettings{narration: true}, func(line string) {
		lines = append(lines, line)
	})

	n.OnAnswerJudged(engine.AnswerJudged{Correct: true, Word: "apple"})
	n.OnAnswerJudged(engine.AnswerJudged{Correct: false, Word: "milk"})
	n.OnLevelCompleted(engine.LevelCompleted{ThemeID: "zoo", Level: 1, Stars: 3})
	n.OnThemeCompleted(engine.ThemeCompleted{ThemeID: "zoo"})

	if len(lines) != 4 {
		t.Fatalf("expected 4 lines, got %d: %v", len(lines), lines)
	}
	for i, line := range lines {
		if line == "" {
			t.Errorf("line %d is empty", i)
		}
	}
}

func TestNarrator_CelebratesStreaks(t *testing.T) {
	var got string
	n := New(fakeSettings{narration: true}, func(line string) { got = line })

	n.OnAnswerJudged(engine.AnswerJudged{Correct: true, Word: "apple", Streak: 3})
	if !strings.Contains(got, "3 in a row") {
		t.Errorf("streak of 3 spoke %q, want a streak line", got)
	}

	n.OnAnswerJudged(engine.AnswerJudged{Correct: true, Word: "milk", Streak: 4})
	if strings.Contains(got, "in a row") {
		t.Errorf("streak of 4 spoke %q, want a plain correct line", got)
	}
}

func TestNarrator_ReadsActivityInstruction(t *testing.T) {
	cat, err := catalog.Load()
	if err != nil {
		t.Fatalf("load catalog: %v", err)
	}
	theme := cat.Themes()[0]
	activity := cat.ActivitiesFor(theme.ID, catalog.TierExplorer, 1)[0]

	var got string
	n := New(fakeSettings{narration: true}, func(line string) { got = line })
	n.OnActivityStarted(engine.ActivityStarted{ThemeID: theme.ID, Level: 1, Activity: activity})

	if got != activity.Instruction() {
		t.Errorf("spoke %q, want the activity instruction %q", got, activity.Instruction())
	}
}

func TestNarrator_MutedDropsEverything(t *testing.T) {
	n := New(fakeSettings{narration: false}, func(line string) {
		t.Errorf("muted narrator spoke: %q", line)
	})

	n.OnAnswerJudged(engine.AnswerJudged{Correct: true})
	n.OnLevelCompleted(engine.LevelCompleted{Stars: 2})
	n.OnThemeCompleted(engine.ThemeCompleted{})
}
