package engine

// PickDistractors builds an answer-option set: the correct key plus
// randomly chosen distinct other keys from pool, fully reshuffled so the
// correct answer has no positional bias. The result has
// min(count, unique pool keys including correct) entries and contains
// the correct key exactly once.
func (e *Engine) PickDistractors(correct string, pool []string, count int) []string {
	if count < 1 {
		count = 1
	}

	seen := map[string]bool{correct: true}
	others := make([]string, 0, len(pool))
	for _, k := range pool {
		if !seen[k] {
			seen[k] = true
			others = append(others, k)
		}
	}

	e.rng.Shuffle(len(others), func(i, j int) {
		others[i], others[j] = others[j], others[i]
	})

	n := count - 1
	if n > len(others) {
		n = len(others)
	}
	options := append([]string{correct}, others[:n]...)
	e.rng.Shuffle(len(options), func(i, j int) {
		options[i], options[j] = options[j], options[i]
	})
	return options
}
