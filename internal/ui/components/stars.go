package components

import (
	"strings"

	"wordventure/internal/ui/theme"
)

// StarRow renders earned stars out of three, e.g. "★ ★ ☆".
func StarRow(stars int) string {
	if stars < 0 {
		stars = 0
	}
	if stars > 3 {
		stars = 3
	}

	parts := make([]string, 0, 3)
	for i := 0; i < 3; i++ {
		if i < stars {
			parts = append(parts, theme.StarFilled.Render("★"))
		} else {
			parts = append(parts, theme.StarEmpty.Render("☆"))
		}
	}
	return strings.Join(parts, " ")
}
