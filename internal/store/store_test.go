package store

import (
	"context"
	"testing"
	"time"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	s, err := Open(InMemoryDSN())
	if err != nil {
		t.Fatalf("open test store: %v", err)
	}
	t.Cleanup(func() { s.Close() })
	return s
}

func TestOpenClose(t *testing.T) {
	s := openTestStore(t)
	if s.DB() == nil {
		t.Fatal("expected non-nil database")
	}
}

func TestPragmasApplied(t *testing.T) {
	s := openTestStore(t)
	db := s.DB()

	tests := []struct {
		pragma string
		want   string
	}{
		// WAL mode falls back to "memory" for in-memory databases.
		{"foreign_keys", "1"},
		{"synchronous", "1"}, // NORMAL = 1
	}

	for _, tt := range tests {
		var got string
		err := db.QueryRow("PRAGMA " + tt.pragma).Scan(&got)
		if err != nil {
			t.Errorf("PRAGMA %s: %v", tt.pragma, err)
			continue
		}
		if got != tt.want {
			t.Errorf("PRAGMA %s = %q, want %q", tt.pragma, got, tt.want)
		}
	}
}

func TestStoresAreIsolated(t *testing.T) {
	a := openTestStore(t)
	b := openTestStore(t)
	ctx := context.Background()

	if err := a.MatchRepo().AppendMatchEvent(ctx, MatchEventData{MatchID: "m1", Action: ActionFinish}); err != nil {
		t.Fatalf("append: %v", err)
	}

	got, err := b.MatchRepo().QueryMatchSummaries(ctx, QueryOpts{})
	if err != nil {
		t.Fatalf("query: %v", err)
	}
	if len(got) != 0 {
		t.Errorf("second store sees %d matches, want 0", len(got))
	}
}

func TestSequenceCounterMonotonic(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()

	var prev int64
	for i := 0; i < 5; i++ {
		n, err := s.seq.Next(ctx)
		if err != nil {
			t.Fatalf("next: %v", err)
		}
		if n <= prev {
			t.Errorf("sequence %d not greater than %d", n, prev)
		}
		prev = n
	}
}

func TestAppendAndQueryRounds(t *testing.T) {
	s := openTestStore(t)
	repo := s.MatchRepo()
	ctx := context.Background()

	base := time.Date(2026, 10, 18, 9, 0, 0, 0, time.UTC)
	rounds := []RoundEventData{
		{MatchID: "m1", Round: 1, Human: "rock", Computer: "scissors", Outcome: "win", PlayedAt: base},
		{MatchID: "m1", Round: 2, Human: "rock", Computer: "rock", Outcome: "tie", PlayedAt: base.Add(time.Second)},
		{MatchID: "m2", Round: 1, Human: "paper", Computer: "scissors", Outcome: "lose", PlayedAt: base},
	}
	for _, r := range rounds {
		if err := repo.AppendRound(ctx, r); err != nil {
			t.Fatalf("append round: %v", err)
		}
	}

	got, err := repo.QueryRounds(ctx, "m1")
	if err != nil {
		t.Fatalf("query rounds: %v", err)
	}
	if len(got) != 2 {
		t.Fatalf("got %d rounds, want 2", len(got))
	}
	if got[0].Round != 1 || got[1].Round != 2 {
		t.Errorf("rounds out of order: %d, %d", got[0].Round, got[1].Round)
	}
	if got[1].Outcome != "tie" || got[1].Human != "rock" {
		t.Errorf("round 2 = %+v", got[1].RoundEventData)
	}
	if got[0].Sequence >= got[1].Sequence {
		t.Errorf("sequence not increasing: %d, %d", got[0].Sequence, got[1].Sequence)
	}
	if !got[0].PlayedAt.Equal(base) {
		t.Errorf("played at = %v, want %v", got[0].PlayedAt, base)
	}
}

func TestAppendRound_DuplicateRoundRejected(t *testing.T) {
	s := openTestStore(t)
	repo := s.MatchRepo()
	ctx := context.Background()

	r := RoundEventData{MatchID: "m1", Round: 1, Human: "rock", Computer: "rock", Outcome: "tie"}
	if err := repo.AppendRound(ctx, r); err != nil {
		t.Fatalf("append round: %v", err)
	}
	if err := repo.AppendRound(ctx, r); err == nil {
		t.Error("expected unique violation for duplicate round number")
	}
}

func TestQueryMatchSummaries(t *testing.T) {
	s := openTestStore(t)
	repo := s.MatchRepo()
	ctx := context.Background()

	events := []MatchEventData{
		{MatchID: "m1", Action: ActionStart, Target: 1},
		{MatchID: "m1", Action: ActionFinish, Target: 1, HumanScore: 1, Winner: "human"},
		{MatchID: "m2", Action: ActionStart, Target: 3},
		{MatchID: "m2", Action: ActionAbandon, Target: 3, ComputerScore: 1, Ties: 1},
		{MatchID: "m3", Action: ActionStart, Target: 3},
	}
	for _, e := range events {
		if err := repo.AppendMatchEvent(ctx, e); err != nil {
			t.Fatalf("append match event: %v", err)
		}
	}
	for i := 1; i <= 2; i++ {
		if err := repo.AppendRound(ctx, RoundEventData{MatchID: "m2", Round: i, Human: "rock", Computer: "paper", Outcome: "lose"}); err != nil {
			t.Fatalf("append round: %v", err)
		}
	}

	got, err := repo.QueryMatchSummaries(ctx, QueryOpts{})
	if err != nil {
		t.Fatalf("query: %v", err)
	}
	if len(got) != 2 {
		t.Fatalf("got %d summaries, want 2", len(got))
	}
	if got[0].MatchID != "m2" || got[0].Action != ActionAbandon {
		t.Errorf("newest = %s/%s, want m2/abandon", got[0].MatchID, got[0].Action)
	}
	if got[0].Rounds != 2 {
		t.Errorf("m2 rounds = %d, want 2", got[0].Rounds)
	}
	if got[1].Winner != "human" || got[1].HumanScore != 1 || got[1].Rounds != 0 {
		t.Errorf("m1 summary = %+v", got[1])
	}

	limited, err := repo.QueryMatchSummaries(ctx, QueryOpts{Limit: 1})
	if err != nil {
		t.Fatalf("query limited: %v", err)
	}
	if len(limited) != 1 {
		t.Errorf("limit 1 returned %d", len(limited))
	}

	older, err := repo.QueryMatchSummaries(ctx, QueryOpts{Before: got[0].Sequence})
	if err != nil {
		t.Fatalf("query before: %v", err)
	}
	if len(older) != 1 || older[0].MatchID != "m1" {
		t.Errorf("before filter returned %+v", older)
	}
}
