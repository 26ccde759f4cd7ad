package game

import (
	rand "math/rand/v2"
	"sync"
	"time"
)

const goldenRatio64 = 0x9e3779b97f4a7c15

// MoveSource supplies the computer's moves.
type MoveSource interface {
	Next() Move
}

// RandomSource picks uniformly among the three moves.
type RandomSource struct {
	rng *rand.Rand
}

var _ MoveSource = (*RandomSource)(nil)

// NewRandomSource returns a RandomSource whose sequence is fully determined
// by seed.
func NewRandomSource(seed int64) *RandomSource {
	u := uint64(seed)
	return &RandomSource{
		rng: rand.New(rand.NewPCG(mix(u), mix(u+goldenRatio64))),
	}
}

// NewTimeSeededSource returns a RandomSource seeded from the wall clock.
func NewTimeSeededSource() *RandomSource {
	return NewRandomSource(time.Now().UnixNano())
}

// Next returns the next move.
func (s *RandomSource) Next() Move {
	return AllMoves()[s.rng.IntN(3)]
}

// splitmix64 finaliser, spreads one seed into two PCG words.
func mix(x uint64) uint64 {
	x ^= x >> 30
	x *= 0xbf58476d1ce4e5b9
	x ^= x >> 27
	x *= 0x94d049bb133111eb
	x ^= x >> 31
	return x
}

// SequenceSource replays a fixed list of moves, wrapping around at the end.
type SequenceSource struct {
	mu    sync.Mutex
	moves []Move
	next  int
}

var _ MoveSource = (*SequenceSource)(nil)

// NewSequenceSource returns a source replaying moves. It panics on an empty
// list.
func NewSequenceSource(moves ...Move) *SequenceSource {
	if len(moves) == 0 {
		panic("game: empty move sequence")
	}
	return &SequenceSource{moves: append([]Move(nil), moves...)}
}

// Next returns the next move in the sequence.
func (s *SequenceSource) Next() Move {
	s.mu.Lock()
	defer s.mu.Unlock()
	m := s.moves[s.next%len(s.moves)]
	s.next++
	return m
}
