package adventure

import (
	"fmt"

	"wordventure/internal/catalog"
	"wordventure/internal/game"
	"wordventure/internal/ui/components"
)

// round is one question or learning moment within an activity. Scored
// rounds feed the session counters; unscored ones just show a word.
type round struct {
	prompt     string
	glyph      string
	word       string
	options    []components.Choice
	correctIdx int
	scored     bool
	spelling   bool
	collectKey string
}

// buildRounds flattens an activity into its rounds. The switch is
// exhaustive over the activity union: a new kind fails to compile here
// until it gets a presentation.
func buildRounds(deps *game.Deps, a catalog.Activity) []round {
	switch act := a.(type) {
	case catalog.TapToLearn:
		return tapRounds(deps, act)
	case catalog.FindItem:
		return pickGlyphRounds(deps, act.Targets, act.Targets, "Find the %s!")
	case catalog.CollectItems:
		rounds := pickGlyphRounds(deps, act.Items, act.Items,
			fmt.Sprintf("Put the %%s in the %s!", act.Destination))
		for i := range rounds {
			rounds[i].collectKey = rounds[i].word
		}
		return rounds
	case catalog.MatchSound:
		return pickGlyphRounds(deps, act.Options, act.Options, "Which one says “%s”?")
	case catalog.Spelling:
		return spellingRounds(deps, act.Targets)
	case catalog.DragAndDrop:
		return dragRounds(act)
	case catalog.MatchPairs:
		return pickGlyphRounds(deps, act.Items, act.Items, "Which picture matches “%s”?")
	case catalog.LetterWordMatch:
		return letterRounds(deps, act.Letters)
	default:
		return nil
	}
}

func tapRounds(deps *game.Deps, act catalog.TapToLearn) []round {
	rounds := make([]round, 0, len(act.Items))
	for _, word := range act.Items {
		rounds = append(rounds, round{
			prompt: fmt.Sprintf("This is a %s!", word),
			glyph:  deps.Catalog.Glyph(word),
			word:   word,
		})
	}
	return rounds
}

// pickGlyphRounds asks one question per target: pick the right glyph
// from up to four shuffled options drawn from the pool.
func pickGlyphRounds(deps *game.Deps, targets, pool []string, promptFormat string) []round {
	rounds := make([]round, 0, len(targets))
	for _, word := range targets {
		options := deps.Engine.PickDistractors(word, pool, 4)
		choices := make([]components.Choice, 0, len(options))
		correct := 0
		for i, opt := range options {
			if opt == word {
				correct = i
			}
			choices = append(choices, components.Choice{Glyph: deps.Catalog.Glyph(opt)})
		}
		rounds = append(rounds, round{
			prompt:     fmt.Sprintf(promptFormat, word),
			word:       word,
			options:    choices,
			correctIdx: correct,
			scored:     true,
		})
	}
	return rounds
}

func spellingRounds(deps *game.Deps, targets []string) []round {
	rounds := make([]round, 0, len(targets))
	for _, word := range targets {
		rounds = append(rounds, round{
			prompt:   "Spell this word!",
			glyph:    deps.Catalog.Glyph(word),
			word:     word,
			scored:   true,
			spelling: true,
		})
	}
	return rounds
}

func dragRounds(act catalog.DragAndDrop) []round {
	rounds := make([]round, 0, len(act.Pairs))
	for _, pair := range act.Pairs {
		choices := make([]components.Choice, 0, len(act.Pairs))
		correct := 0
		for i, other := range act.Pairs {
			if other.Target == pair.Target {
				correct = i
			}
			choices = append(choices, components.Choice{
				Glyph: other.TargetGlyph,
				Word:  other.TargetLabel,
			})
		}
		rounds = append(rounds, round{
			prompt:     fmt.Sprintf("Where does the %s go?", pair.Item),
			word:       pair.Item,
			options:    choices,
			correctIdx: correct,
			scored:     true,
		})
	}
	return rounds
}

func letterRounds(deps *game.Deps, letters []string) []round {
	// Letters without a vocabulary word are dropped; the pairing between
	// letter and word must stay aligned for the options to make sense.
	type pair struct{ letter, word string }
	pairs := make([]pair, 0, len(letters))
	for _, letter := range letters {
		if entry, ok := deps.Catalog.Word(letter); ok && entry.Word != "" {
			pairs = append(pairs, pair{letter: letter, word: entry.Word})
		}
	}

	rounds := make([]round, 0, len(pairs))
	for _, p := range pairs {
		choices := make([]components.Choice, 0, len(pairs))
		correct := 0
		for j, other := range pairs {
			if other.word == p.word {
				correct = j
			}
			choices = append(choices, components.Choice{
				Glyph: deps.Catalog.Glyph(other.word),
				Word:  other.word,
			})
		}
		rounds = append(rounds, round{
			prompt:     fmt.Sprintf("Which word starts with “%s”?", p.letter),
			glyph:      deps.Catalog.Glyph(p.letter),
			word:       p.word,
			options:    choices,
			correctIdx: correct,
			scored:     true,
		})
	}
	return rounds
}
