package core

import "math/rand"

// RandomSource supplies uniformly distributed integers.
// The simulation draws all of its randomness through this interface so tests
// can substitute a scripted sequence.
type RandomSource interface {
	// IntRange returns a uniform integer in [min, max], both inclusive.
	IntRange(min, max int) int
}

// SeededRandom is a RandomSource backed by math/rand with a fixed seed.
type SeededRandom struct {
	rng *rand.Rand
}

// NewSeededRandom creates a random source with the given seed.
func NewSeededRandom(seed int64) *SeededRandom {
	return &SeededRandom{rng: rand.New(rand.NewSource(seed))}
}

// IntRange returns a uniform integer in [min, max].
// If max < min the range collapses to min.
func (r *SeededRandom) IntRange(min, max int) int {
	if max <= min {
		return min
	}
	return min + r.rng.Intn(max-min+1)
}
