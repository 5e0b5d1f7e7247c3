package adventure

import "time"

// feedbackDoneMsg is sent when the answer feedback pause ends.
type feedbackDoneMsg struct{}

// feedbackDur is how long the right/wrong flash stays on screen.
const feedbackDur = 1200 * time.Millisecond
