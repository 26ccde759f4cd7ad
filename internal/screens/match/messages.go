package match

import "github.com/abhisek/rps/internal/game"

// MatchDecidedMsg is emitted once when a match reaches its target.
type MatchDecidedMsg struct {
	MatchID string
	Winner  game.Side
}

// statusExpiredMsg reverts a transient status line. Stale tokens are
// ignored.
type statusExpiredMsg struct {
	token int
}
