package sim

import (
	"fmt"
	"hash/fnv"
	"math/rand"
)

// Stream is the sole entropy source for the engine. Every stochastic decision
// (detection, classification, shot resolution, shuffling) routes through a
// Stream, so a single seed reproduces a run bit-for-bit.
//
// Thread-safety: NOT thread-safe. A Stream must be owned by one goroutine;
// parallel trials each derive their own Stream via ForTrial.
type Stream struct {
	rng *rand.Rand
}

// NewStream creates a Stream seeded with the given value.
func NewStream(seed int64) *Stream {
	return &Stream{rng: rand.New(rand.NewSource(seed))}
}

// Uniform returns a float in [0, 1).
func (s *Stream) Uniform() float64 {
	return s.rng.Float64()
}

// Bernoulli returns true with probability Clamp01(p).
func (s *Stream) Bernoulli(p float64) bool {
	return s.Uniform() < Clamp01(p)
}

// Shuffle applies a uniformly random in-place permutation (Fisher-Yates).
func (s *Stream) Shuffle(n int, swap func(i, j int)) {
	s.rng.Shuffle(n, swap)
}

// ForTrial derives an independent Stream for the numbered trial.
//
// Derivation formula: masterSeed XOR fnv1a64("trial_<n>"). The same master
// seed and trial index always produce the same Stream, and distinct trials
// never share state, so sequential and parallel execution draw identical
// per-trial sequences.
func ForTrial(masterSeed int64, trial int) *Stream {
	return NewStream(masterSeed ^ fnv1a64(fmt.Sprintf("trial_%d", trial)))
}

// Clamp01 normalizes a probability into [0, 1]. Out-of-range inputs are a
// boundary condition, not an error.
func Clamp01(p float64) float64 {
	if p < 0 {
		return 0
	}
	if p > 1 {
		return 1
	}
	return p
}

// fnv1a64 computes a 64-bit FNV-1a hash of the input string.
func fnv1a64(s string) int64 {
	h := fnv.New64a()
	h.Write([]byte(s))
	return int64(h.Sum64())
}
