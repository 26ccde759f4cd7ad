package game

import (
	"errors"
	"fmt"
	"time"

	"github.com/coder/quartz"
	"github.com/google/uuid"
)

// DefaultTarget is the score that ends a match unless configured otherwise.
const DefaultTarget = 3

// ErrInvalidTarget is returned for a target score below one.
var ErrInvalidTarget = errors.New("target must be a positive integer")

// Side identifies a participant.
type Side int

const (
	Human Side = iota + 1
	Computer
)

func (s Side) String() string {
	switch s {
	case Human:
		return "human"
	case Computer:
		return "computer"
	default:
		return "none"
	}
}

// RoundRecord is a single resolved round. Records are never mutated after
// they are appended to a match's history.
type RoundRecord struct {
	Number   int
	Human    Move
	Computer Move
	Outcome  Outcome
	PlayedAt time.Time
}

// MatchState is a point-in-time copy of a match.
type MatchState struct {
	ID            string
	Target        int
	HumanScore    int
	ComputerScore int
	Ties          int
	History       []RoundRecord
	Complete      bool
	StartedAt     time.Time
}

// Rounds returns the number of rounds played.
func (s MatchState) Rounds() int {
	return len(s.History)
}

// Winner returns the side with the higher score once the match is complete.
func (s MatchState) Winner() (Side, bool) {
	if !s.Complete {
		return 0, false
	}
	switch {
	case s.HumanScore > s.ComputerScore:
		return Human, true
	case s.ComputerScore > s.HumanScore:
		return Computer, true
	}
	// Scores move by one per round, so both sides cannot reach the target
	// together.
	panic(fmt.Sprintf("game: match %s complete with level score %d-%d", s.ID, s.HumanScore, s.ComputerScore))
}

// Match tracks one race-to-target match. A Match is owned by a single
// caller and is not safe for concurrent use.
type Match struct {
	state  MatchState
	source MoveSource
	clock  quartz.Clock
	newID  func() string
}

// MatchOption configures a Match.
type MatchOption func(*Match)

// WithClock sets the clock used to stamp rounds.
func WithClock(c quartz.Clock) MatchOption {
	return func(m *Match) { m.clock = c }
}

// WithIDGenerator overrides how match IDs are generated.
func WithIDGenerator(f func() string) MatchOption {
	return func(m *Match) { m.newID = f }
}

// NewMatch creates a match racing to target, drawing computer moves from src.
func NewMatch(target int, src MoveSource, opts ...MatchOption) (*Match, error) {
	if target <= 0 {
		return nil, fmt.Errorf("%w: %d", ErrInvalidTarget, target)
	}
	if src == nil {
		return nil, errors.New("nil move source")
	}
	m := &Match{
		source: src,
		clock:  quartz.NewReal(),
		newID:  func() string { return uuid.New().String() },
	}
	for _, opt := range opts {
		opt(m)
	}
	m.start(target)
	return m, nil
}

func (m *Match) start(target int) {
	m.state = MatchState{
		ID:        m.newID(),
		Target:    target,
		StartedAt: m.clock.Now(),
	}
}

// RecordRound plays one round with the human's move. It returns false and
// changes nothing once the match is complete.
func (m *Match) RecordRound(human Move) (RoundRecord, bool) {
	if m.state.Complete {
		return RoundRecord{}, false
	}

	computer := m.source.Next()
	rec := RoundRecord{
		Number:   len(m.state.History) + 1,
		Human:    human,
		Computer: computer,
		Outcome:  Resolve(human, computer),
		PlayedAt: m.clock.Now(),
	}
	m.state.History = append(m.state.History, rec)

	switch rec.Outcome {
	case Win:
		m.state.HumanScore++
	case Lose:
		m.state.ComputerScore++
	default:
		m.state.Ties++
	}

	m.state.Complete = m.state.HumanScore >= m.state.Target ||
		m.state.ComputerScore >= m.state.Target

	return rec, true
}

// Reset starts a fresh match racing to target. The current state is kept
// if target is invalid.
func (m *Match) Reset(target int) error {
	if target <= 0 {
		return fmt.Errorf("%w: %d", ErrInvalidTarget, target)
	}
	m.start(target)
	return nil
}

// State returns a copy of the match state.
func (m *Match) State() MatchState {
	s := m.state
	s.History = append([]RoundRecord(nil), m.state.History...)
	return s
}

// ID returns the identifier of the current match.
func (m *Match) ID() string {
	return m.state.ID
}

// Target returns the current target score.
func (m *Match) Target() int {
	return m.state.Target
}

// Complete reports whether a side has reached the target.
func (m *Match) Complete() bool {
	return m.state.Complete
}

// Winner returns the winning side once the match is complete.
func (m *Match) Winner() (Side, bool) {
	return m.state.Winner()
}
