package summary

import (
	"fmt"
	"image/color"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/rps/internal/clipboard"
	"github.com/abhisek/rps/internal/game"
	"github.com/abhisek/rps/internal/router"
	"github.com/abhisek/rps/internal/screen"
	"github.com/abhisek/rps/internal/ui/layout"
	"github.com/abhisek/rps/internal/ui/theme"
)

// SummaryScreen displays the full report of one match.
type SummaryScreen struct {
	state  game.MatchState
	clip   clipboard.Writer
	notice string
	failed bool
}

var _ screen.Screen = (*SummaryScreen)(nil)
var _ screen.KeyHintProvider = (*SummaryScreen)(nil)

// New creates a new SummaryScreen. A nil clip disables copying.
func New(state game.MatchState, clip clipboard.Writer) *SummaryScreen {
	return &SummaryScreen{state: state, clip: clip}
}

func (s *SummaryScreen) Init() tea.Cmd {
	return nil
}

func (s *SummaryScreen) Title() string {
	return "Match Summary"
}

func (s *SummaryScreen) KeyHints() []layout.KeyHint {
	hints := []layout.KeyHint{
		{Key: "Enter", Description: "Back"},
		{Key: "Esc", Description: "Back"},
	}
	if s.clip != nil {
		hints = append(hints, layout.KeyHint{Key: "c", Description: "Copy"})
	}
	return hints
}

func (s *SummaryScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	if kmsg, ok := msg.(tea.KeyMsg); ok {
		switch kmsg.String() {
		case "enter":
			return s, func() tea.Msg { return router.PopScreenMsg{} }
		case "c":
			s.copy()
		}
	}
	return s, nil
}

func (s *SummaryScreen) copy() {
	if s.clip == nil {
		return
	}
	if err := s.clip.WriteAll(game.Summary(s.state)); err != nil {
		s.notice, s.failed = "❌ Could not copy summary. Try again later.", true
		return
	}
	s.notice, s.failed = "📋 Game summary copied to clipboard!", false
}

func (s *SummaryScreen) View(width, height int) string {
	st := s.state
	var b strings.Builder

	center := func(style lipgloss.Style, text string) {
		b.WriteString(style.Width(width).Align(lipgloss.Center).Render(text))
		b.WriteString("\n")
	}

	center(lipgloss.NewStyle().Foreground(theme.Primary).Bold(true), headline(st))
	b.WriteString("\n")
	center(lipgloss.NewStyle().Foreground(theme.TextDim),
		fmt.Sprintf("Target: First to %d wins", st.Target))
	center(lipgloss.NewStyle().Foreground(theme.Text),
		fmt.Sprintf("You %d        Computer %d        Ties %d", st.HumanScore, st.ComputerScore, st.Ties))
	b.WriteString("\n")

	divider := lipgloss.NewStyle().Foreground(theme.Border).Render(
		strings.Repeat("─", max(min(width-8, 60), 0)))
	b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center,
		lipgloss.NewStyle().Foreground(theme.TextDim).Render("Rounds")))
	b.WriteString("\n")
	b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, divider))
	b.WriteString("\n\n")

	if len(st.History) == 0 {
		b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center,
			theme.Hint.Render("No rounds played")))
		b.WriteString("\n")
	}
	for _, r := range st.History {
		b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center,
			lipgloss.NewStyle().Foreground(outcomeColor(r.Outcome)).Render(game.LogLine(r))))
		b.WriteString("\n")
	}

	if s.notice != "" {
		style := theme.Tie
		if s.failed {
			style = theme.Lose
		}
		b.WriteString("\n")
		center(style, s.notice)
	}

	return b.String()
}

func headline(st game.MatchState) string {
	winner, ok := st.Winner()
	if !ok {
		return "Match abandoned"
	}
	return game.MatchOverMessage(winner)
}

// outcomeColor returns the theme color for a round outcome.
func outcomeColor(o game.Outcome) color.Color {
	switch o {
	case game.Win:
		return theme.Success
	case game.Lose:
		return theme.Error
	default:
		return theme.Warning
	}
}
