package game

import (
	"fmt"
	"strings"
)

// Summary renders the plain-text match report exported to the clipboard.
func Summary(s MatchState) string {
	lines := []string{
		"Rock Paper Scissors - Game Summary",
		fmt.Sprintf("Target: First to %d wins", s.Target),
		fmt.Sprintf("Final Score: You %d - %d Computer (%d ties)", s.HumanScore, s.ComputerScore, s.Ties),
		"",
		"Round Details:",
	}
	for _, r := range s.History {
		lines = append(lines, fmt.Sprintf("Round %d: You chose %s, Computer chose %s → %s",
			r.Number, r.Human, r.Computer, r.Outcome.Label()))
	}
	return strings.Join(lines, "\n")
}

// LogLine renders one round for the round log.
func LogLine(r RoundRecord) string {
	return fmt.Sprintf("Round %d: %s You: %s vs Computer: %s → %s",
		r.Number, r.Outcome.Icon(), r.Human, r.Computer, r.Outcome.Label())
}

// ReadyMessage is the status line shown at the start of a match.
func ReadyMessage(target int) string {
	return fmt.Sprintf("First to %d wins. Good luck!", target)
}

// StatusMessage is the status line shown after a round.
func StatusMessage(o Outcome) string {
	switch o {
	case Win:
		return "Great! You won this round! 🎉"
	case Lose:
		return "Computer won this round. Keep trying! 💪"
	default:
		return "It's a tie! Same choice! 🤝"
	}
}

// MatchOverMessage is the status line shown once the match is decided.
func MatchOverMessage(winner Side) string {
	if winner == Human {
		return "🎉 Congratulations! You won the match!"
	}
	return "💻 Computer wins the match! Better luck next time!"
}
