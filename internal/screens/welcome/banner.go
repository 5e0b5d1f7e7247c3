package welcome

import (
	"charm.land/lipgloss/v2"

	"wordventure/internal/ui/theme"
)

const bannerArt = `
 ██╗    ██╗ ██████╗ ██████╗ ██████╗
 ██║    ██║██╔═══██╗██╔══██╗██╔══██╗
 ██║ █╗ ██║██║   ██║██████╔╝██║  ██║
 ██║███╗██║██║   ██║██╔══██╗██║  ██║
 ╚███╔███╔╝╚██████╔╝██║  ██║██████╔╝
  ╚══╝╚══╝  ╚═════╝ ╚═╝  ╚═╝╚═════╝
        ✦ V E N T U R E ✦`

const bannerCompact = "W O R D V E N T U R E"

// RenderBanner returns the WORDVENTURE banner styled in the primary
// color. Uses a compact fallback for terminals narrower than 44 columns.
func RenderBanner(width int) string {
	style := lipgloss.NewStyle().
		Foreground(theme.Primary).
		Bold(true)

	if width < 44 {
		return style.Render(bannerCompact)
	}
	return style.Render(bannerArt)
}
