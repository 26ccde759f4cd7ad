package welcome

import (
	"charm.land/lipgloss/v2"

	"github.com/abhisek/rps/internal/ui/theme"
)

const bannerArt = `
 ██████╗  ██████╗  ██████╗██╗  ██╗
 ██╔══██╗██╔═══██╗██╔════╝██║ ██╔╝
 ██████╔╝██║   ██║██║     █████╔╝
 ██╔══██╗██║   ██║██║     ██╔═██╗
 ██║  ██║╚██████╔╝╚██████╗██║  ██╗
 ╚═╝  ╚═╝ ╚═════╝  ╚═════╝╚═╝  ╚═╝
      P A P E R  ·  S C I S S O R S`

const bannerCompact = "ROCK · PAPER · SCISSORS"

// RenderBanner returns the game banner styled in the primary color.
// Uses a compact fallback for terminals narrower than 40 columns.
func RenderBanner(width int) string {
	style := lipgloss.NewStyle().
		Foreground(theme.Primary).
		Bold(true)

	if width < 40 {
		return style.Render(bannerCompact)
	}
	return style.Render(bannerArt)
}
