package game

// Outcome is the result of a round from the human's point of view.
type Outcome int

const (
	Tie Outcome = iota
	Win
	Lose
)

func (o Outcome) String() string {
	switch o {
	case Win:
		return "win"
	case Lose:
		return "lose"
	default:
		return "tie"
	}
}

// Label returns the upper-case form used in logs and summaries.
func (o Outcome) Label() string {
	switch o {
	case Win:
		return "WIN"
	case Lose:
		return "LOSE"
	default:
		return "TIE"
	}
}

// Icon returns the marker shown next to a logged round.
func (o Outcome) Icon() string {
	switch o {
	case Win:
		return "✅"
	case Lose:
		return "❌"
	default:
		return "🤝"
	}
}

// Resolve decides a round. Equal moves tie; otherwise the human wins iff
// their move beats the computer's.
func Resolve(human, computer Move) Outcome {
	if human == computer {
		return Tie
	}
	if human.Beats(computer) {
		return Win
	}
	return Lose
}
