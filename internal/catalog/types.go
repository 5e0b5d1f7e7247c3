package catalog

// Tier selects which activity track a theme exposes.
type Tier string

const (
	TierExplorer   Tier = "explorer"   // ages 4-5
	TierAdventurer Tier = "adventurer" // ages 6-9
)

// AllTiers returns both tiers in display order.
func AllTiers() []Tier {
	return []Tier{TierExplorer, TierAdventurer}
}

// Valid reports whether t is a known tier.
func (t Tier) Valid() bool {
	return t == TierExplorer || t == TierAdventurer
}

// DisplayName returns a human-readable label for the tier.
func (t Tier) DisplayName() string {
	switch t {
	case TierExplorer:
		return "Explorer (Ages 4-5)"
	case TierAdventurer:
		return "Adventurer (Ages 6-9)"
	default:
		return string(t)
	}
}

// DefaultName is the profile name used when none is given.
func (t Tier) DefaultName() string {
	if t == TierAdventurer {
		return "Adventurer"
	}
	return "Explorer"
}

// DefaultAvatar is the profile avatar used when none is given.
func (t Tier) DefaultAvatar() string {
	if t == TierAdventurer {
		return "🦸"
	}
	return "🧒"
}

// Theme is one self-contained vocabulary adventure.
type Theme struct {
	ID          string
	Name        string
	Glyph       string
	Description string
	Scene       string
	// Tracks holds the ordered activity list per tier. Activities carry
	// their own level; filtering by level happens at query time.
	Tracks map[Tier][]Activity
}

// WordEntry is the display data for one vocabulary word. For letter
// entries, Word names the vocabulary word the letter stands for.
type WordEntry struct {
	Glyph    string
	Category string
	Word     string
}

// PlaceholderGlyph is returned for words missing from the vocabulary table.
const PlaceholderGlyph = "❓"
