package catalog

// Kind identifies an activity variant.
type Kind string

const (
	KindTapToLearn      Kind = "tap-to-learn"
	KindFindItem        Kind = "find-item"
	KindCollectItems    Kind = "collect-items"
	KindMatchSound      Kind = "match-sound"
	KindSpelling        Kind = "spelling"
	KindDragAndDrop     Kind = "drag-and-drop"
	KindMatchPairs      Kind = "match-pairs"
	KindLetterWordMatch Kind = "letter-word-match"
)

// AllKinds returns every activity kind in display order.
func AllKinds() []Kind {
	return []Kind{
		KindTapToLearn,
		KindFindItem,
		KindCollectItems,
		KindMatchSound,
		KindSpelling,
		KindDragAndDrop,
		KindMatchPairs,
		KindLetterWordMatch,
	}
}

// DisplayName returns a human-readable label for the kind.
func (k Kind) DisplayName() string {
	switch k {
	case KindTapToLearn:
		return "Tap to Learn"
	case KindFindItem:
		return "Find It"
	case KindCollectItems:
		return "Collect"
	case KindMatchSound:
		return "Listen & Match"
	case KindSpelling:
		return "Spelling"
	case KindDragAndDrop:
		return "Drag & Drop"
	case KindMatchPairs:
		return "Match Pairs"
	case KindLetterWordMatch:
		return "Letter Match"
	default:
		return string(k)
	}
}

// Activity is one interactive exercise within a level. Each variant carries
// its own required fields; consumers dispatch with a type switch so a new
// kind is a compile-time-checked addition.
type Activity interface {
	Kind() Kind
	Level() int
	Instruction() string
	// Words returns the vocabulary the activity exercises, used for the
	// wordsLearned accounting on level completion.
	Words() []string
}

// meta holds the fields shared by every activity variant.
type meta struct {
	Lvl    int
	Prompt string
}

func (m meta) Level() int          { return m.Lvl }
func (m meta) Instruction() string { return m.Prompt }

// TapToLearn presents items to tap and hear; it has no scored questions.
type TapToLearn struct {
	meta
	Items []string
}

func (TapToLearn) Kind() Kind        { return KindTapToLearn }
func (a TapToLearn) Words() []string { return a.Items }

// FindItem asks the player to find each spoken target among distractors.
type FindItem struct {
	meta
	Targets []string
}

func (FindItem) Kind() Kind        { return KindFindItem }
func (a FindItem) Words() []string { return a.Targets }

// CollectItems asks the player to move each named item into a destination
// (cart, bowl, ...) in order.
type CollectItems struct {
	meta
	Items       []string
	Destination string
}

func (CollectItems) Kind() Kind        { return KindCollectItems }
func (a CollectItems) Words() []string { return a.Items }

// MatchSound speaks a word and asks the player to pick it from options.
type MatchSound struct {
	meta
	Options []string
}

func (MatchSound) Kind() Kind        { return KindMatchSound }
func (a MatchSound) Words() []string { return a.Options }

// Spelling asks the player to assemble each word letter by letter.
type Spelling struct {
	meta
	Targets []string
}

func (Spelling) Kind() Kind        { return KindSpelling }
func (a Spelling) Words() []string { return a.Targets }

// Pair binds a draggable item to its drop target.
type Pair struct {
	Item        string
	Target      string
	TargetLabel string
	TargetGlyph string
}

// DragAndDrop asks the player to drag each item onto its matching target.
type DragAndDrop struct {
	meta
	Pairs []Pair
}

func (DragAndDrop) Kind() Kind { return KindDragAndDrop }

func (a DragAndDrop) Words() []string {
	words := make([]string, 0, len(a.Pairs))
	for _, p := range a.Pairs {
		words = append(words, p.Item)
	}
	return words
}

// MatchPairs is a memory game matching each word card to its picture card.
type MatchPairs struct {
	meta
	Items []string
}

func (MatchPairs) Kind() Kind        { return KindMatchPairs }
func (a MatchPairs) Words() []string { return a.Items }

// LetterWordMatch asks "A is for ...?" for each letter.
type LetterWordMatch struct {
	meta
	Letters []string
}

func (LetterWordMatch) Kind() Kind        { return KindLetterWordMatch }
func (a LetterWordMatch) Words() []string { return a.Letters }
