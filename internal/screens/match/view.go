package match

import (
	"fmt"
	"strings"

	"charm.land/lipgloss/v2"

	"github.com/abhisek/rps/internal/game"
	"github.com/abhisek/rps/internal/ui/components"
	"github.com/abhisek/rps/internal/ui/theme"
)

func (s *MatchScreen) View(width, height int) string {
	st := s.match.State()
	cw := components.ContentWidth(width)

	sections := []string{
		s.renderStatus(cw),
		renderScoreboard(st, cw),
		s.selector.View() + "\n" + s.selector.Hint(),
	}

	// Rows left over for the log once the fixed sections are drawn.
	used := 0
	for _, sec := range sections {
		used += lipgloss.Height(sec) + 1
	}
	sections = append(sections, renderLog(st.History, cw, height-used-4))

	content := lipgloss.JoinVertical(lipgloss.Center, sections...)
	return components.CabinetFrame(content, width, height)
}

func (s *MatchScreen) renderStatus(cw int) string {
	var style lipgloss.Style
	switch s.statusKind {
	case statusWin:
		style = theme.Win
	case statusLose, statusError:
		style = theme.Lose
	case statusTie:
		style = theme.Tie
	default:
		style = theme.Body.Bold(true)
	}
	return style.Width(cw).Align(lipgloss.Center).Render(s.status)
}

func renderScoreboard(st game.MatchState, cw int) string {
	barWidth := cw - 4
	human := components.NewScoreBar("You", st.HumanScore, st.Target, theme.ProgressHuman, barWidth)
	computer := components.NewScoreBar("Computer", st.ComputerScore, st.Target, theme.ProgressComputer, barWidth)

	meta := lipgloss.NewStyle().Foreground(theme.TextDim).Render(
		fmt.Sprintf("Ties %d  ·  Round %d  ·  First to %d", st.Ties, st.Rounds(), st.Target))

	return components.ArcadeCard(
		strings.Join([]string{human.View(), computer.View(), meta}, "\n"), cw)
}

// renderLog lists rounds newest first, trimmed to maxRows.
func renderLog(history []game.RoundRecord, cw, maxRows int) string {
	title := lipgloss.NewStyle().Foreground(theme.ArcadeCyan).Bold(true).Render("ROUND LOG")
	if len(history) == 0 {
		return title + "\n" + theme.Hint.Render("No rounds yet.")
	}
	if maxRows < 1 {
		maxRows = 1
	}

	lines := make([]string, 0, min(len(history), maxRows))
	for i := len(history) - 1; i >= 0 && len(lines) < maxRows; i-- {
		r := history[i]
		var style lipgloss.Style
		switch r.Outcome {
		case game.Win:
			style = lipgloss.NewStyle().Foreground(theme.Success)
		case game.Lose:
			style = lipgloss.NewStyle().Foreground(theme.Error)
		default:
			style = lipgloss.NewStyle().Foreground(theme.Warning)
		}
		lines = append(lines, style.Render(game.LogLine(r)))
	}

	body := lipgloss.NewStyle().Width(cw).Align(lipgloss.Left).Render(strings.Join(lines, "\n"))
	return title + "\n" + body
}
