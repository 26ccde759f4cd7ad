package game

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSummary_Format(t *testing.T) {
	m, err := NewMatch(3, NewSequenceSource(Scissors, Rock))
	require.NoError(t, err)
	m.RecordRound(Rock)
	m.RecordRound(Rock)

	want := strings.Join([]string{
		"Rock Paper Scissors - Game Summary",
		"Target: First to 3 wins",
		"Final Score: You 1 - 0 Computer (1 ties)",
		"",
		"Round Details:",
		"Round 1: You chose rock, Computer chose scissors → WIN",
		"Round 2: You chose rock, Computer chose rock → TIE",
	}, "\n")
	assert.Equal(t, want, Summary(m.State()))
}

func TestSummary_EmptyMatch(t *testing.T) {
	m, err := NewMatch(5, NewSequenceSource(Rock))
	require.NoError(t, err)

	got := Summary(m.State())
	assert.True(t, strings.HasSuffix(got, "Round Details:"))
	assert.Contains(t, got, "First to 5 wins")
}

func TestLogLine(t *testing.T) {
	rec := RoundRecord{Number: 4, Human: Paper, Computer: Scissors, Outcome: Lose}
	assert.Equal(t, "Round 4: ❌ You: paper vs Computer: scissors → LOSE", LogLine(rec))
}

func TestMessages(t *testing.T) {
	assert.Equal(t, "First to 3 wins. Good luck!", ReadyMessage(3))
	assert.Contains(t, StatusMessage(Tie), "tie")
	assert.Contains(t, MatchOverMessage(Human), "You won the match")
	assert.Contains(t, MatchOverMessage(Computer), "Computer wins the match")
}
