package game

import (
	"errors"
	"fmt"
	"strings"
)

// ErrInvalidMove is returned when a string does not name a move.
var ErrInvalidMove = errors.New("invalid move")

// Move is one of the three hand shapes.
type Move int

const (
	Rock Move = iota + 1
	Paper
	Scissors
)

// AllMoves returns the moves in canonical order.
func AllMoves() []Move {
	return []Move{Rock, Paper, Scissors}
}

// beats maps each move to the move it defeats.
var beats = map[Move]Move{
	Rock:     Scissors,
	Scissors: Paper,
	Paper:    Rock,
}

// Valid reports whether m is one of the three moves.
func (m Move) Valid() bool {
	return m >= Rock && m <= Scissors
}

// Beats reports whether m defeats other.
func (m Move) Beats(other Move) bool {
	return beats[m] == other
}

func (m Move) String() string {
	switch m {
	case Rock:
		return "rock"
	case Paper:
		return "paper"
	case Scissors:
		return "scissors"
	default:
		return "unknown"
	}
}

// Icon returns the glyph shown on move buttons.
func (m Move) Icon() string {
	switch m {
	case Rock:
		return "✊"
	case Paper:
		return "✋"
	case Scissors:
		return "✌"
	default:
		return "?"
	}
}

// Key returns the single-letter shortcut for the move.
func (m Move) Key() string {
	if !m.Valid() {
		return ""
	}
	return m.String()[:1]
}

// ParseMove parses a move name or its single-letter shortcut.
func ParseMove(s string) (Move, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "rock", "r":
		return Rock, nil
	case "paper", "p":
		return Paper, nil
	case "scissors", "s":
		return Scissors, nil
	}
	return 0, fmt.Errorf("%w: %q", ErrInvalidMove, s)
}

// ParseMoves parses every element of args with ParseMove.
func ParseMoves(args []string) ([]Move, error) {
	moves := make([]Move, 0, len(args))
	for _, a := range args {
		m, err := ParseMove(a)
		if err != nil {
			return nil, err
		}
		moves = append(moves, m)
	}
	return moves, nil
}
