package catalog

import (
	"encoding/json"
	"fmt"

	_ "embed"
)

//go:embed data/vocabulary.json
var embeddedCatalog []byte

// Catalog is the read-only content catalog: ordered themes, per-tier
// activity tracks, and the word display table.
type Catalog struct {
	themes []Theme
	byID   map[string]*Theme
	words  map[string]WordEntry
}

// rawActivity is the wire form of an activity before it is lifted into the
// typed union.
type rawActivity struct {
	Type        string   `json:"type"`
	Level       int      `json:"level,omitempty"`
	Instruction string   `json:"instruction"`
	Items       []string `json:"items,omitempty"`
	TargetWords []string `json:"targetWords,omitempty"`
	Words       []string `json:"words,omitempty"`
	Letters     []string `json:"letters,omitempty"`
	Destination string   `json:"destination,omitempty"`
	Pairs       []struct {
		Item        string `json:"item"`
		Target      string `json:"target"`
		TargetLabel string `json:"targetLabel,omitempty"`
		TargetEmoji string `json:"targetEmoji,omitempty"`
	} `json:"pairs,omitempty"`
}

type rawTheme struct {
	ID          string                   `json:"id"`
	Name        string                   `json:"name"`
	Emoji       string                   `json:"emoji"`
	Description string                   `json:"description"`
	Background  string                   `json:"background"`
	Activities  map[string][]rawActivity `json:"activities"`
}

type rawCatalog struct {
	Themes     []rawTheme `json:"themes"`
	Vocabulary map[string]struct {
		Emoji    string `json:"emoji"`
		Category string `json:"category"`
		Word     string `json:"word,omitempty"`
	} `json:"vocabulary"`
}

// Load parses and validates the embedded catalog.
func Load() (*Catalog, error) {
	return Parse(embeddedCatalog)
}

// Parse builds a Catalog from raw JSON, validating it against the catalog
// schema first.
func Parse(data []byte) (*Catalog, error) {
	if err := validateCatalog(data); err != nil {
		return nil, fmt.Errorf("validate catalog: %w", err)
	}

	var raw rawCatalog
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("parse catalog: %w", err)
	}

	c := &Catalog{
		byID:  make(map[string]*Theme, len(raw.Themes)),
		words: make(map[string]WordEntry, len(raw.Vocabulary)),
	}

	for _, rt := range raw.Themes {
		theme := Theme{
			ID:          rt.ID,
			Name:        rt.Name,
			Glyph:       rt.Emoji,
			Description: rt.Description,
			Scene:       rt.Background,
			Tracks:      make(map[Tier][]Activity, len(rt.Activities)),
		}
		for tierName, track := range rt.Activities {
			tier := Tier(tierName)
			if !tier.Valid() {
				return nil, fmt.Errorf("theme %q: unknown tier %q", rt.ID, tierName)
			}
			activities := make([]Activity, 0, len(track))
			for i, ra := range track {
				a, err := liftActivity(ra)
				if err != nil {
					return nil, fmt.Errorf("theme %q %s[%d]: %w", rt.ID, tierName, i, err)
				}
				activities = append(activities, a)
			}
			theme.Tracks[tier] = activities
		}
		c.themes = append(c.themes, theme)
	}
	for i := range c.themes {
		c.byID[c.themes[i].ID] = &c.themes[i]
	}

	for word, entry := range raw.Vocabulary {
		c.words[word] = WordEntry{Glyph: entry.Emoji, Category: entry.Category, Word: entry.Word}
	}

	return c, nil
}

// liftActivity converts the wire form into the typed union.
func liftActivity(ra rawActivity) (Activity, error) {
	level := ra.Level
	if level == 0 {
		level = 1
	}
	m := meta{Lvl: level, Prompt: ra.Instruction}

	switch Kind(ra.Type) {
	case KindTapToLearn:
		return TapToLearn{meta: m, Items: ra.Items}, nil
	case KindFindItem:
		return FindItem{meta: m, Targets: ra.TargetWords}, nil
	case KindCollectItems:
		return CollectItems{meta: m, Items: ra.Items, Destination: ra.Destination}, nil
	case KindMatchSound:
		return MatchSound{meta: m, Options: ra.Words}, nil
	case KindSpelling:
		return Spelling{meta: m, Targets: ra.Words}, nil
	case KindDragAndDrop:
		pairs := make([]Pair, 0, len(ra.Pairs))
		for _, p := range ra.Pairs {
			pairs = append(pairs, Pair{
				Item:        p.Item,
				Target:      p.Target,
				TargetLabel: p.TargetLabel,
				TargetGlyph: p.TargetEmoji,
			})
		}
		return DragAndDrop{meta: m, Pairs: pairs}, nil
	case KindMatchPairs:
		return MatchPairs{meta: m, Items: ra.Items}, nil
	case KindLetterWordMatch:
		return LetterWordMatch{meta: m, Letters: ra.Letters}, nil
	default:
		return nil, fmt.Errorf("unknown activity type %q", ra.Type)
	}
}

// Themes returns all themes in catalog order.
func (c *Catalog) Themes() []Theme {
	return c.themes
}

// Theme returns the theme with the given ID, or nil if absent.
func (c *Catalog) Theme(id string) *Theme {
	return c.byID[id]
}

// ThemeIndex returns the position of the theme in catalog order, or -1.
func (c *Catalog) ThemeIndex(id string) int {
	for i := range c.themes {
		if c.themes[i].ID == id {
			return i
		}
	}
	return -1
}

// ActivitiesFor returns the ordered activities for (theme, tier, level).
// A missing theme, tier, or level yields an empty list, never an error;
// callers treat an empty list as "level does not exist".
func (c *Catalog) ActivitiesFor(themeID string, tier Tier, level int) []Activity {
	theme := c.byID[themeID]
	if theme == nil {
		return nil
	}
	var out []Activity
	for _, a := range theme.Tracks[tier] {
		if a.Level() == level {
			out = append(out, a)
		}
	}
	return out
}

// MaxLevel returns the highest level with content for (theme, tier).
func (c *Catalog) MaxLevel(themeID string, tier Tier) int {
	theme := c.byID[themeID]
	if theme == nil {
		return 0
	}
	max := 0
	for _, a := range theme.Tracks[tier] {
		if a.Level() > max {
			max = a.Level()
		}
	}
	return max
}

// Glyph returns the display glyph for a word, or the placeholder if the
// word is not in the vocabulary table.
func (c *Catalog) Glyph(word string) string {
	if e, ok := c.words[word]; ok && e.Glyph != "" {
		return e.Glyph
	}
	return PlaceholderGlyph
}

// Word returns the vocabulary entry for a word and whether it exists.
func (c *Catalog) Word(word string) (WordEntry, bool) {
	e, ok := c.words[word]
	return e, ok
}
