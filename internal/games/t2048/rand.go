package t2048

import "math/rand"

// Source is the randomness capability used for board setup and spawning.
// Substitute a scripted implementation for deterministic tests.
type Source interface {
	// Sample returns k distinct indices drawn from [0, n).
	Sample(n, k int) []int
	// Choice returns a uniformly random index into a non-empty sequence of length n.
	Choice(n int) int
}

// randSource adapts math/rand to Source.
type randSource struct {
	rng *rand.Rand
}

// NewSource returns a Source seeded with seed.
// The same seed always yields the same sequence of boards and spawns.
func NewSource(seed int64) Source {
	return &randSource{rng: rand.New(rand.NewSource(seed))}
}

func (s *randSource) Sample(n, k int) []int {
	if k > n {
		k = n
	}
	return s.rng.Perm(n)[:k]
}

func (s *randSource) Choice(n int) int {
	return s.rng.Intn(n)
}
