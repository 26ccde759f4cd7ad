package home

import (
	"fmt"
	"strings"

	"charm.land/lipgloss/v2"

	"github.com/abhisek/rps/internal/ui/components"
	"github.com/abhisek/rps/internal/ui/layout"
	"github.com/abhisek/rps/internal/ui/theme"
)

const arcadeTitleFull = ` ██████╗ ██████╗ ███████╗
 ██╔══██╗██╔══██╗██╔════╝
 ██████╔╝██████╔╝███████╗
 ██╔══██╗██╔═══╝ ╚════██║
 ██║  ██║██║     ███████║
 ╚═╝  ╚═╝╚═╝     ╚══════╝`

const arcadeTitleCompact = "R · P · S"

// renderTitle returns the styled title block or compact fallback.
func renderTitle(cw int, compact bool) string {
	style := lipgloss.NewStyle().
		Foreground(theme.ArcadeYellow).
		Bold(true)

	title := arcadeTitleFull
	if compact {
		title = arcadeTitleCompact
	}
	return lipgloss.NewStyle().
		Width(cw).
		Align(lipgloss.Center).
		Render(style.Render(title))
}

// renderStatsBar renders the session tally in a bordered box matching
// content width.
func renderStatsBar(rec layout.SessionRecord, target int, cw int, compact bool) string {
	wonStyle := lipgloss.NewStyle().Foreground(theme.Success).Bold(true)
	lostStyle := lipgloss.NewStyle().Foreground(theme.Error).Bold(true)
	targetStyle := lipgloss.NewStyle().Foreground(theme.ArcadeCyan).Bold(true)

	var stats string
	if compact {
		stats = fmt.Sprintf("%s %s %s",
			wonStyle.Render(fmt.Sprintf("W%d", rec.Won)),
			lostStyle.Render(fmt.Sprintf("L%d", rec.Lost)),
			targetStyle.Render(fmt.Sprintf("→%d", target)),
		)
	} else {
		stats = fmt.Sprintf("%s  %s  %s",
			wonStyle.Render(fmt.Sprintf("✊ %d WON", rec.Won)),
			lostStyle.Render(fmt.Sprintf("✌ %d LOST", rec.Lost)),
			targetStyle.Render(fmt.Sprintf("FIRST TO %d", target)),
		)
	}

	return lipgloss.NewStyle().
		Border(lipgloss.DoubleBorder()).
		BorderForeground(theme.ArcadeCyan).
		Width(cw - 2).
		Align(lipgloss.Center).
		Padding(0, 1).
		Render(stats)
}

// renderArcadeMenuCompact renders menu items as simple text lines (no
// borders) for small terminals where bordered buttons would overflow.
func renderArcadeMenuCompact(items []string, selected int, cw int, disabled map[int]bool) string {
	var lines []string
	for i, label := range items {
		var line string
		if disabled[i] {
			line = lipgloss.NewStyle().
				Foreground(theme.TextDim).
				Render("   " + label)
		} else if i == selected {
			line = lipgloss.NewStyle().
				Foreground(theme.BgDark).
				Background(theme.ArcadeYellow).
				Bold(true).
				Render(" ▸ " + label + " ")
		} else {
			line = lipgloss.NewStyle().
				Foreground(theme.Text).
				Render("   " + label)
		}
		lines = append(lines, line)
	}

	return lipgloss.NewStyle().
		Width(cw).
		Align(lipgloss.Center).
		Render(strings.Join(lines, "\n"))
}

// renderMenu picks bordered buttons or the compact list.
func renderMenu(items []string, selected int, cw int, disabled map[int]bool, compact bool) string {
	if compact {
		return renderArcadeMenuCompact(items, selected, cw, disabled)
	}
	return components.ArcadeMenu(items, selected, disabled, cw)
}

// renderMascotBox renders the mascot centered in a box matching content width.
func renderMascotBox(variant MascotVariant, cw int) string {
	return lipgloss.NewStyle().
		Width(cw).
		Align(lipgloss.Center).
		Render(RenderMascot(variant))
}
