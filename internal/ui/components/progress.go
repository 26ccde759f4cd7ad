package components

import (
	"fmt"
	"strings"

	"charm.land/lipgloss/v2"

	"github.com/abhisek/rps/internal/ui/theme"
)

// ScoreBar shows how far a side is along the race to the target score.
type ScoreBar struct {
	Label  string
	Score  int
	Target int
	Fill   lipgloss.Style
	Width  int
}

// NewScoreBar creates a score bar.
func NewScoreBar(label string, score, target int, fill lipgloss.Style, width int) ScoreBar {
	return ScoreBar{
		Label:  label,
		Score:  score,
		Target: target,
		Fill:   fill,
		Width:  width,
	}
}

// Percent returns the filled fraction, clamped to [0, 1].
func (p ScoreBar) Percent() float64 {
	if p.Target <= 0 {
		return 0
	}
	pct := float64(p.Score) / float64(p.Target)
	return max(0, min(pct, 1))
}

// View renders the score bar.
func (p ScoreBar) View() string {
	label := lipgloss.NewStyle().
		Foreground(theme.Text).
		Width(10).
		Render(p.Label)
	count := lipgloss.NewStyle().
		Foreground(theme.TextDim).
		Render(fmt.Sprintf("  %d/%d", p.Score, p.Target))

	barWidth := p.Width - lipgloss.Width(label) - lipgloss.Width(count)
	if barWidth < 4 {
		barWidth = 4
	}

	filled := int(float64(barWidth) * p.Percent())
	empty := barWidth - filled

	return label +
		p.Fill.Render(strings.Repeat(" ", filled)) +
		theme.ProgressEmpty.Render(strings.Repeat(" ", empty)) +
		count
}
