// Package rng provides the single seeded random stream consumed by puzzle
// generation. Every draw advances the stream; a fixed seed and a fixed call
// sequence always yield the same values.
package rng

import (
	"fmt"
	"math/rand/v2"
)

// pcgIncrement is the second PCG word; fixed so a seed alone picks the stream.
const pcgIncrement = 0x9e3779b97f4a7c15

// Stream is a sequentially consumed pseudorandom source.
// It is not safe for concurrent use.
type Stream struct {
	rng   *rand.Rand
	draws int
}

// New creates a Stream seeded with seed.
func New(seed uint64) *Stream {
	return FromSource(rand.NewPCG(seed, pcgIncrement))
}

// FromSource wraps an arbitrary source, letting tests control the sequence.
func FromSource(src rand.Source) *Stream {
	return &Stream{rng: rand.New(src)}
}

// IntRange returns a uniform integer in [lo, hi], both inclusive.
// It panics if hi < lo.
func (s *Stream) IntRange(lo, hi int) int {
	if hi < lo {
		panic(fmt.Sprintf("rng: empty range [%d, %d]", lo, hi))
	}
	s.draws++
	return lo + s.rng.IntN(hi-lo+1)
}

// IntN returns a uniform integer in [0, n). It panics if n <= 0.
func (s *Stream) IntN(n int) int {
	s.draws++
	return s.rng.IntN(n)
}

// Bool returns true with probability p.
func (s *Stream) Bool(p float64) bool {
	s.draws++
	return s.rng.Float64() < p
}

// Draws returns the number of values consumed so far.
func (s *Stream) Draws() int {
	return s.draws
}
