package store

import (
	"context"
	"time"
)

// Match lifecycle actions.
const (
	ActionStart   = "start"
	ActionFinish  = "finish"
	ActionAbandon = "abandon"
)

// QueryOpts configures event queries with filtering and pagination.
type QueryOpts struct {
	Limit  int   // max results (0 = unlimited)
	After  int64 // sequence > After
	Before int64 // sequence < Before
}

// MatchEventData captures a match lifecycle transition.
type MatchEventData struct {
	MatchID       string
	Action        string
	Target        int
	HumanScore    int
	ComputerScore int
	Ties          int
	Winner        string // "human" or "computer" on finish, empty otherwise
}

// RoundEventData captures one played round.
type RoundEventData struct {
	MatchID  string
	Round    int
	Human    string
	Computer string
	Outcome  string
	PlayedAt time.Time
}

// RoundEventRecord is a round read back from the archive.
type RoundEventRecord struct {
	Sequence  int64
	Timestamp time.Time
	RoundEventData
}

// MatchSummaryRecord describes a finished or abandoned match.
type MatchSummaryRecord struct {
	Sequence      int64
	Timestamp     time.Time
	MatchID       string
	Action        string
	Target        int
	HumanScore    int
	ComputerScore int
	Ties          int
	Winner        string
	Rounds        int
}

// MatchRepo provides append and query access to the match archive.
type MatchRepo interface {
	// AppendMatchEvent records a match lifecycle event.
	AppendMatchEvent(ctx context.Context, data MatchEventData) error

	// AppendRound records a played round.
	AppendRound(ctx context.Context, data RoundEventData) error

	// QueryMatchSummaries returns finished and abandoned matches, newest first.
	QueryMatchSummaries(ctx context.Context, opts QueryOpts) ([]MatchSummaryRecord, error)

	// QueryRounds returns the rounds of one match in play order.
	QueryRounds(ctx context.Context, matchID string) ([]RoundEventRecord, error)
}
