package components

import (
	"strings"

	"charm.land/lipgloss/v2"

	"github.com/abhisek/rps/internal/game"
	"github.com/abhisek/rps/internal/ui/theme"
)

// MoveSelector is the row of move buttons on the match screen.
type MoveSelector struct {
	Moves    []game.Move
	Selected int
	Disabled bool
}

// NewMoveSelector creates a selector over the three moves.
func NewMoveSelector() MoveSelector {
	return MoveSelector{Moves: game.AllMoves()}
}

// Left moves the cursor one button left, wrapping around.
func (m MoveSelector) Left() MoveSelector {
	if m.Disabled {
		return m
	}
	m.Selected = (m.Selected + len(m.Moves) - 1) % len(m.Moves)
	return m
}

// Right moves the cursor one button right, wrapping around.
func (m MoveSelector) Right() MoveSelector {
	if m.Disabled {
		return m
	}
	m.Selected = (m.Selected + 1) % len(m.Moves)
	return m
}

// Current returns the move under the cursor.
func (m MoveSelector) Current() game.Move {
	return m.Moves[m.Selected]
}

// View renders the buttons side by side.
func (m MoveSelector) View() string {
	buttons := make([]string, 0, len(m.Moves))
	for i, mv := range m.Moves {
		label := mv.Icon() + " " + strings.ToUpper(mv.String()) + " [" + mv.Key() + "]"
		buttons = append(buttons, ArcadeButton(label, i == m.Selected, m.Disabled, 16))
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, buttons...)
}

// Hint returns the line shown under the buttons.
func (m MoveSelector) Hint() string {
	if m.Disabled {
		return lipgloss.NewStyle().Foreground(theme.TextDim).Italic(true).
			Render("Match over. Press n for a new match.")
	}
	return lipgloss.NewStyle().Foreground(theme.TextDim).Italic(true).
		Render("Press r, p or s, or use ←/→ and Enter")
}
