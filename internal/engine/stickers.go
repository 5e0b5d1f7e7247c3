package engine

// stickerPool is every sticker a profile can earn.
var stickerPool = []string{
	"🌟", "🏆", "🥇", "🎖️", "👑", "💎",
	"🦄", "🐉", "🧚", "🦁", "🐬", "🦋",
	"🚀", "🛸", "🏰", "🎠", "🎡", "🎢",
	"🎨", "🎸", "🎺", "🪄", "🎁", "🎈",
	"🌈", "⚡", "🔥", "❄️", "🍀", "🌺",
}

// StickerPoolSize is the size of the full sticker collection.
func StickerPoolSize() int {
	return len(stickerPool)
}

// StickerChoices offers up to four distinct stickers the profile does
// not own yet, drawn without replacement and shuffled. complete is true
// when every sticker is already owned, in which case no choices are
// offered.
func (e *Engine) StickerChoices(profileID string) (choices []string, complete bool, err error) {
	owned, err := e.store.Stickers(profileID)
	if err != nil {
		return nil, false, err
	}

	ownedSet := make(map[string]bool, len(owned))
	for _, s := range owned {
		ownedSet[s] = true
	}

	var unowned []string
	for _, s := range stickerPool {
		if !ownedSet[s] {
			unowned = append(unowned, s)
		}
	}
	if len(unowned) == 0 {
		return nil, true, nil
	}

	e.rng.Shuffle(len(unowned), func(i, j int) {
		unowned[i], unowned[j] = unowned[j], unowned[i]
	})
	if len(unowned) > 4 {
		unowned = unowned[:4]
	}
	return unowned, false, nil
}

// ChooseSticker adds the chosen sticker to the profile. Choosing an
// already-owned sticker is a no-op.
func (e *Engine) ChooseSticker(profileID, sticker string) error {
	return e.store.AddSticker(profileID, sticker)
}
