package store

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"entgo.io/ent/dialect"
	entsql "entgo.io/ent/dialect/sql"
)

// matchRepo implements MatchRepo with ent's SQL builder.
type matchRepo struct {
	db  *sql.DB
	seq *sequenceCounter
}

var _ MatchRepo = (*matchRepo)(nil)

func builder() *entsql.DialectBuilder {
	return entsql.Dialect(dialect.SQLite)
}

func (r *matchRepo) AppendMatchEvent(ctx context.Context, data MatchEventData) error {
	seqNum, err := r.seq.Next(ctx)
	if err != nil {
		return fmt.Errorf("next sequence: %w", err)
	}

	query, args := builder().
		Insert(matchEventsTable).
		Columns("sequence", "timestamp", "match_id", "action", "target",
			"human_score", "computer_score", "ties", "winner").
		Values(seqNum, time.Now().UTC(), data.MatchID, data.Action, data.Target,
			data.HumanScore, data.ComputerScore, data.Ties, data.Winner).
		Query()
	if _, err := r.db.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("save match event: %w", err)
	}
	return nil
}

func (r *matchRepo) AppendRound(ctx context.Context, data RoundEventData) error {
	seqNum, err := r.seq.Next(ctx)
	if err != nil {
		return fmt.Errorf("next sequence: %w", err)
	}

	ts := data.PlayedAt
	if ts.IsZero() {
		ts = time.Now()
	}

	query, args := builder().
		Insert(roundEventsTable).
		Columns("sequence", "timestamp", "match_id", "round",
			"human_move", "computer_move", "outcome").
		Values(seqNum, ts.UTC(), data.MatchID, data.Round,
			data.Human, data.Computer, data.Outcome).
		Query()
	if _, err := r.db.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("save round event: %w", err)
	}
	return nil
}

func (r *matchRepo) QueryMatchSummaries(ctx context.Context, opts QueryOpts) ([]MatchSummaryRecord, error) {
	sel := builder().
		Select("sequence", "timestamp", "match_id", "action", "target",
			"human_score", "computer_score", "ties", "winner").
		From(entsql.Table(matchEventsTable)).
		Where(entsql.In("action", ActionFinish, ActionAbandon)).
		OrderBy(entsql.Desc("sequence"))
	if opts.After > 0 {
		sel.Where(entsql.GT("sequence", opts.After))
	}
	if opts.Before > 0 {
		sel.Where(entsql.LT("sequence", opts.Before))
	}
	if opts.Limit > 0 {
		sel.Limit(opts.Limit)
	}

	query, args := sel.Query()
	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("query match summaries: %w", err)
	}
	defer rows.Close()

	var records []MatchSummaryRecord
	for rows.Next() {
		var rec MatchSummaryRecord
		if err := rows.Scan(&rec.Sequence, &rec.Timestamp, &rec.MatchID, &rec.Action,
			&rec.Target, &rec.HumanScore, &rec.ComputerScore, &rec.Ties, &rec.Winner); err != nil {
			return nil, fmt.Errorf("scan match summary: %w", err)
		}
		records = append(records, rec)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate match summaries: %w", err)
	}

	counts, err := r.roundCounts(ctx)
	if err != nil {
		return nil, err
	}
	for i := range records {
		records[i].Rounds = counts[records[i].MatchID]
	}
	return records, nil
}

// roundCounts returns the number of archived rounds per match.
func (r *matchRepo) roundCounts(ctx context.Context) (map[string]int, error) {
	query, args := builder().
		Select("match_id", entsql.Count("*")).
		From(entsql.Table(roundEventsTable)).
		GroupBy("match_id").
		Query()
	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("query round counts: %w", err)
	}
	defer rows.Close()

	counts := make(map[string]int)
	for rows.Next() {
		var id string
		var n int
		if err := rows.Scan(&id, &n); err != nil {
			return nil, fmt.Errorf("scan round count: %w", err)
		}
		counts[id] = n
	}
	return counts, rows.Err()
}

func (r *matchRepo) QueryRounds(ctx context.Context, matchID string) ([]RoundEventRecord, error) {
	query, args := builder().
		Select("sequence", "timestamp", "match_id", "round",
			"human_move", "computer_move", "outcome").
		From(entsql.Table(roundEventsTable)).
		Where(entsql.EQ("match_id", matchID)).
		OrderBy(entsql.Asc("round")).
		Query()
	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("query rounds: %w", err)
	}
	defer rows.Close()

	var records []RoundEventRecord
	for rows.Next() {
		var rec RoundEventRecord
		if err := rows.Scan(&rec.Sequence, &rec.Timestamp, &rec.MatchID, &rec.Round,
			&rec.Human, &rec.Computer, &rec.Outcome); err != nil {
			return nil, fmt.Errorf("scan round: %w", err)
		}
		rec.PlayedAt = rec.Timestamp
		records = append(records, rec)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate rounds: %w", err)
	}
	return records, nil
}
