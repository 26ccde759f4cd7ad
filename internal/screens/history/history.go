package history

import (
	"context"
	"fmt"
	"image/color"
	"strings"

	tea "charm.land/bubbletea/v2"

	"charm.land/lipgloss/v2"

	"github.com/abhisek/rps/internal/clipboard"
	"github.com/abhisek/rps/internal/game"
	"github.com/abhisek/rps/internal/router"
	"github.com/abhisek/rps/internal/screen"
	"github.com/abhisek/rps/internal/screens/summary"
	"github.com/abhisek/rps/internal/store"
	"github.com/abhisek/rps/internal/ui/layout"
	"github.com/abhisek/rps/internal/ui/theme"
)

const pageSize = 50

type historyLoadedMsg struct {
	Matches []store.MatchSummaryRecord
	Err     error
}

type roundsLoadedMsg struct {
	MatchID string
	Rounds  []store.RoundEventRecord
	Err     error
}

// HistoryScreen lists decided and abandoned matches of this session.
type HistoryScreen struct {
	repo     store.MatchRepo
	clip     clipboard.Writer
	matches  []store.MatchSummaryRecord
	rounds   map[string][]store.RoundEventRecord
	selected int
	expanded map[int]bool
	loaded   bool
	errMsg   string
}

var _ screen.Screen = (*HistoryScreen)(nil)
var _ screen.KeyHintProvider = (*HistoryScreen)(nil)

// New creates a new HistoryScreen. clip is handed to the summary view
// and may be nil.
func New(repo store.MatchRepo, clip clipboard.Writer) *HistoryScreen {
	return &HistoryScreen{
		repo:     repo,
		clip:     clip,
		rounds:   make(map[string][]store.RoundEventRecord),
		expanded: make(map[int]bool),
	}
}

func (s *HistoryScreen) Init() tea.Cmd {
	repo := s.repo
	return func() tea.Msg {
		matches, err := repo.QueryMatchSummaries(context.Background(), store.QueryOpts{Limit: pageSize})
		return historyLoadedMsg{Matches: matches, Err: err}
	}
}

func (s *HistoryScreen) Title() string {
	return "History"
}

func (s *HistoryScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "Enter", Description: "Rounds"},
		{Key: "v", Description: "Summary"},
		{Key: "↑↓", Description: "Navigate"},
		{Key: "Esc", Description: "Back"},
	}
}

func (s *HistoryScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case historyLoadedMsg:
		if msg.Err != nil {
			s.errMsg = msg.Err.Error()
		} else {
			s.matches = msg.Matches
		}
		s.loaded = true
		return s, nil

	case roundsLoadedMsg:
		if msg.Err != nil {
			s.errMsg = msg.Err.Error()
			return s, nil
		}
		s.rounds[msg.MatchID] = msg.Rounds
		return s, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "up", "k":
			if s.selected > 0 {
				s.selected--
			}
			return s, nil
		case "down", "j":
			if s.selected < len(s.matches)-1 {
				s.selected++
			}
			return s, nil
		case "enter":
			return s, s.toggle(s.selected)
		case "v":
			return s, s.openSummary(s.selected)
		}
	}
	return s, nil
}

// toggle expands or collapses a row, loading its rounds on first expand.
func (s *HistoryScreen) toggle(i int) tea.Cmd {
	if i < 0 || i >= len(s.matches) {
		return nil
	}
	s.expanded[i] = !s.expanded[i]
	id := s.matches[i].MatchID
	if !s.expanded[i] || s.rounds[id] != nil {
		return nil
	}

	repo := s.repo
	return func() tea.Msg {
		rounds, err := repo.QueryRounds(context.Background(), id)
		if rounds == nil && err == nil {
			rounds = []store.RoundEventRecord{}
		}
		return roundsLoadedMsg{MatchID: id, Rounds: rounds, Err: err}
	}
}

// openSummary loads the rounds of a match and pushes its summary screen.
func (s *HistoryScreen) openSummary(i int) tea.Cmd {
	if i < 0 || i >= len(s.matches) {
		return nil
	}
	m := s.matches[i]
	repo, clip := s.repo, s.clip
	return func() tea.Msg {
		rounds, err := repo.QueryRounds(context.Background(), m.MatchID)
		if err != nil {
			return roundsLoadedMsg{MatchID: m.MatchID, Err: err}
		}
		return router.PushScreenMsg{Screen: summary.New(stateFromArchive(m, rounds), clip)}
	}
}

// stateFromArchive rebuilds a match state from its archived rows. Rounds
// with unreadable moves are skipped.
func stateFromArchive(m store.MatchSummaryRecord, rounds []store.RoundEventRecord) game.MatchState {
	st := game.MatchState{
		ID:            m.MatchID,
		Target:        m.Target,
		HumanScore:    m.HumanScore,
		ComputerScore: m.ComputerScore,
		Ties:          m.Ties,
		Complete:      m.Action == store.ActionFinish,
	}
	for _, r := range rounds {
		human, herr := game.ParseMove(r.Human)
		computer, cerr := game.ParseMove(r.Computer)
		if herr != nil || cerr != nil {
			continue
		}
		st.History = append(st.History, game.RoundRecord{
			Number:   r.Round,
			Human:    human,
			Computer: computer,
			Outcome:  game.Resolve(human, computer),
			PlayedAt: r.PlayedAt,
		})
	}
	return st
}

func (s *HistoryScreen) View(width, height int) string {
	if s.errMsg != "" {
		return lipgloss.NewStyle().
			Width(width).Align(lipgloss.Center).Foreground(theme.Error).
			Render(fmt.Sprintf("\n\nError: %s", s.errMsg))
	}
	if !s.loaded {
		return lipgloss.NewStyle().
			Width(width).Align(lipgloss.Center).Foreground(theme.TextDim).
			Render("\n\n  Loading history...")
	}
	if len(s.matches) == 0 {
		return lipgloss.NewStyle().
			Width(width).Align(lipgloss.Center).Foreground(theme.TextDim).Italic(true).
			Render("\n\n  No matches yet. Go play!")
	}

	var b strings.Builder
	b.WriteString("\n")

	for i, m := range s.matches {
		prefix := "  "
		if i == s.selected {
			prefix = "> "
		}

		line := fmt.Sprintf("%s%s  %-9s  You %d - %d Computer  %d ties  %d rounds  first to %d",
			prefix, m.Timestamp.Local().Format("15:04:05"), resultLabel(m),
			m.HumanScore, m.ComputerScore, m.Ties, m.Rounds, m.Target)

		style := lipgloss.NewStyle().Foreground(resultColor(m))
		if i == s.selected {
			style = style.Bold(true)
		}
		b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, style.Render(line)))
		b.WriteString("\n")

		if s.expanded[i] {
			s.writeRounds(&b, m.MatchID, width)
		}
	}

	return b.String()
}

func (s *HistoryScreen) writeRounds(b *strings.Builder, matchID string, width int) {
	dim := lipgloss.NewStyle().Foreground(theme.TextDim).Italic(true)

	rounds, ok := s.rounds[matchID]
	switch {
	case !ok:
		b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, dim.Render("    Loading rounds...")))
		b.WriteString("\n")
		return
	case len(rounds) == 0:
		b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, dim.Render("    No rounds played")))
		b.WriteString("\n")
		return
	}

	for _, r := range rounds {
		b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center,
			lipgloss.NewStyle().Foreground(theme.TextDim).Render("    "+roundLine(r))))
		b.WriteString("\n")
	}
}

// roundLine renders an archived round the way the live round log does.
func roundLine(r store.RoundEventRecord) string {
	human, herr := game.ParseMove(r.Human)
	computer, cerr := game.ParseMove(r.Computer)
	if herr != nil || cerr != nil {
		return fmt.Sprintf("Round %d: You: %s vs Computer: %s → %s",
			r.Round, r.Human, r.Computer, strings.ToUpper(r.Outcome))
	}
	return game.LogLine(game.RoundRecord{
		Number:   r.Round,
		Human:    human,
		Computer: computer,
		Outcome:  game.Resolve(human, computer),
		PlayedAt: r.PlayedAt,
	})
}

func resultLabel(m store.MatchSummaryRecord) string {
	switch {
	case m.Action == store.ActionAbandon:
		return "ABANDONED"
	case m.Winner == game.Human.String():
		return "WON"
	default:
		return "LOST"
	}
}

func resultColor(m store.MatchSummaryRecord) color.Color {
	switch {
	case m.Action == store.ActionAbandon:
		return theme.TextDim
	case m.Winner == game.Human.String():
		return theme.Success
	default:
		return theme.Error
	}
}
