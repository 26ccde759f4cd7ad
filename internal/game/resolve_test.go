package game

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestResolve_SameMoveTies(t *testing.T) {
	for _, m := range AllMoves() {
		assert.Equal(t, Tie, Resolve(m, m), "%s vs %s", m, m)
	}
}

func TestResolve_Table(t *testing.T) {
	tests := []struct {
		human, computer Move
		want            Outcome
	}{
		{Rock, Scissors, Win},
		{Scissors, Paper, Win},
		{Paper, Rock, Win},
		{Scissors, Rock, Lose},
		{Paper, Scissors, Lose},
		{Rock, Paper, Lose},
	}
	for _, tt := range tests {
		t.Run(tt.human.String()+"_vs_"+tt.computer.String(), func(t *testing.T) {
			assert.Equal(t, tt.want, Resolve(tt.human, tt.computer))
		})
	}
}

func TestResolve_Antisymmetric(t *testing.T) {
	for _, a := range AllMoves() {
		for _, b := range AllMoves() {
			if a == b {
				continue
			}
			ab, ba := Resolve(a, b), Resolve(b, a)
			assert.True(t, (ab == Win) != (ba == Win), "exactly one of %s/%s wins", a, b)
			assert.Equal(t, ab == Win, ba == Lose, "%s vs %s", a, b)
		}
	}
}

func TestParseMove(t *testing.T) {
	tests := []struct {
		in      string
		want    Move
		wantErr bool
	}{
		{"rock", Rock, false},
		{"R", Rock, false},
		{" paper ", Paper, false},
		{"p", Paper, false},
		{"SCISSORS", Scissors, false},
		{"s", Scissors, false},
		{"lizard", 0, true},
		{"", 0, true},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParseMove(tt.in)
			if tt.wantErr {
				require.Error(t, err)
				assert.True(t, errors.Is(err, ErrInvalidMove))
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestParseMoves_StopsAtFirstInvalid(t *testing.T) {
	_, err := ParseMoves([]string{"r", "x", "p"})
	require.ErrorIs(t, err, ErrInvalidMove)

	moves, err := ParseMoves([]string{"r", "paper", "S"})
	require.NoError(t, err)
	assert.Equal(t, []Move{Rock, Paper, Scissors}, moves)
}

func TestMove_KeyAndValid(t *testing.T) {
	assert.Equal(t, "r", Rock.Key())
	assert.Equal(t, "p", Paper.Key())
	assert.Equal(t, "s", Scissors.Key())
	assert.Equal(t, "", Move(0).Key())
	assert.False(t, Move(4).Valid())
}

func TestOutcome_Label(t *testing.T) {
	assert.Equal(t, "WIN", Win.Label())
	assert.Equal(t, "LOSE", Lose.Label())
	assert.Equal(t, "TIE", Tie.Label())
}
