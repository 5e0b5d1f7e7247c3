package progress

import (
	"encoding/json"
	"sort"
	"time"

	"github.com/google/uuid"

	"wordventure/internal/catalog"
)

// v1 stored one fixed slot per tier instead of a profile list:
//
//	{"version":1, "settings":{...}, "currentUser":"explorer",
//	 "users":{"explorer":{...}, "adventurer":{...}}}
//
// Migration synthesizes one profile per occupied slot with a fresh ID and
// maps the fields 1:1.
type v1Document struct {
	Version     int               `json:"version"`
	Settings    *Settings         `json:"settings"`
	Users       map[string]v1User `json:"users"`
	CurrentUser string            `json:"currentUser"`
}

type v1User struct {
	Name            string                    `json:"name"`
	Avatar          string                    `json:"avatar"`
	Age             int                       `json:"age"`
	TotalStars      int                       `json:"totalStars"`
	CompletedThemes []string                  `json:"completedThemes"`
	ThemeProgress   map[string]*ThemeProgress `json:"themeProgress"`
	Stickers        []string                  `json:"stickers"`
}

type versionProbe struct {
	SchemaVersion int `json:"schemaVersion"`
	Version       int `json:"version"`
}

// decodeDocument parses raw storage content, applying migrations as
// needed. changed reports that a legacy schema was upgraded and the
// result should be written back. Unparseable content is treated as no
// data: a fresh default document. Migrating already-current data is a
// no-op, so calling this on every load is safe.
func decodeDocument(data []byte) (doc *Document, changed bool) {
	var probe versionProbe
	if err := json.Unmarshal(data, &probe); err != nil {
		return newDocument(), false
	}

	version := probe.SchemaVersion
	if version == 0 {
		version = probe.Version
	}
	if version == 0 {
		version = 1 // earliest v1 blobs carried no tag at all
	}

	if version >= SchemaVersion {
		doc = newDocument()
		if err := json.Unmarshal(data, doc); err != nil {
			return newDocument(), false
		}
		doc.normalize()
		return doc, false
	}

	var legacy v1Document
	if err := json.Unmarshal(data, &legacy); err != nil {
		return newDocument(), false
	}
	return migrateV1(&legacy), true
}

// migrateV1 is a pure function from the legacy document to the current
// schema. Star and completion counts are preserved exactly.
func migrateV1(legacy *v1Document) *Document {
	doc := newDocument()
	if legacy.Settings != nil {
		doc.Settings = *legacy.Settings
	}

	// Map iteration order is random; keep the slot order stable.
	slots := make([]string, 0, len(legacy.Users))
	for slot := range legacy.Users {
		slots = append(slots, slot)
	}
	sort.Strings(slots)

	for _, slot := range slots {
		u := legacy.Users[slot]
		tier := catalog.Tier(slot)
		if !tier.Valid() {
			tier = catalog.TierExplorer
		}
		p := &UserProfile{
			ID:              uuid.NewString(),
			Name:            u.Name,
			Avatar:          u.Avatar,
			Tier:            tier,
			Age:             u.Age,
			TotalStars:      u.TotalStars,
			CompletedThemes: u.CompletedThemes,
			ThemeProgress:   u.ThemeProgress,
			Stickers:        u.Stickers,
			CreatedAt:       time.Now(),
		}
		doc.Users = append(doc.Users, p)
		if slot == legacy.CurrentUser {
			doc.CurrentUserID = p.ID
		}
	}

	doc.normalize()
	return doc
}

// normalize fills absent optional fields with their zero-value defaults
// and re-establishes the structural invariants: level 1 is unlocked, the
// level after a completed one is unlocked, and completedThemes mirrors
// levels[1].completed.
func (d *Document) normalize() {
	if d.SchemaVersion < SchemaVersion {
		d.SchemaVersion = SchemaVersion
	}
	if d.Settings.Language == "" {
		d.Settings.Language = defaultSettings().Language
	}
	if d.Settings.SpeechRate == 0 {
		d.Settings.SpeechRate = defaultSettings().SpeechRate
	}
	if d.Users == nil {
		d.Users = []*UserProfile{}
	}
	for _, p := range d.Users {
		p.normalize()
	}
}

func (p *UserProfile) normalize() {
	if p.ID == "" {
		p.ID = uuid.NewString()
	}
	if !p.Tier.Valid() {
		p.Tier = catalog.TierExplorer
	}
	if p.CompletedThemes == nil {
		p.CompletedThemes = []string{}
	}
	if p.Stickers == nil {
		p.Stickers = []string{}
	}
	if p.ThemeProgress == nil {
		p.ThemeProgress = map[string]*ThemeProgress{}
	}

	for themeID, tp := range p.ThemeProgress {
		if tp == nil {
			tp = newThemeProgress()
			p.ThemeProgress[themeID] = tp
		}
		if tp.Levels == nil {
			tp.Levels = map[int]*LevelProgress{}
		}
		if tp.WordsLearned == nil {
			tp.WordsLearned = []string{}
		}
		for level, lp := range tp.Levels {
			if lp == nil {
				lp = &LevelProgress{}
				tp.Levels[level] = lp
			}
			if level == 1 {
				lp.Unlocked = true
			}
			if lp.Completed {
				next := tp.Levels[level+1]
				if next == nil {
					next = &LevelProgress{}
					tp.Levels[level+1] = next
				}
				next.Unlocked = true
			}
		}
		if lp := tp.Levels[1]; lp != nil && lp.Completed && !contains(p.CompletedThemes, themeID) {
			p.CompletedThemes = append(p.CompletedThemes, themeID)
		}
	}

	// Drop completedThemes entries with no completed level 1 backing them.
	kept := p.CompletedThemes[:0]
	for _, themeID := range p.CompletedThemes {
		tp := p.ThemeProgress[themeID]
		if tp != nil && tp.Levels[1] != nil && tp.Levels[1].Completed {
			kept = append(kept, themeID)
		}
	}
	p.CompletedThemes = kept
}

func contains(list []string, s string) bool {
	for _, v := range list {
		if v == s {
			return true
		}
	}
	return false
}
