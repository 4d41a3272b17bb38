package utils

import (
	"math/rand/v2"
	"sync"
)

// RandomSource is the uniform source shared by all reward rolls
type RandomSource interface {
	// IntBetween returns a uniform integer in [min, max], both inclusive
	IntBetween(min, max int64) int64
}

// lockedRandom guards a *rand.Rand, which is not safe for concurrent use
type lockedRandom struct {
	mu  sync.Mutex
	rng *rand.Rand
}

// NewRandomSource returns a source seeded from the runtime's entropy
func NewRandomSource() RandomSource {
	return &lockedRandom{rng: rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64()))}
}

// NewSeededRandomSource returns a deterministic source, for tests and replays
func NewSeededRandomSource(seed1, seed2 uint64) RandomSource {
	return &lockedRandom{rng: rand.New(rand.NewPCG(seed1, seed2))}
}

func (r *lockedRandom) IntBetween(min, max int64) int64 {
	if max <= min {
		return min
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	return min + r.rng.Int64N(max-min+1)
}

// Roll draws from [1,100] and succeeds when the draw is at most threshold
func Roll(src RandomSource, threshold int) bool {
	return src.IntBetween(1, 100) <= int64(threshold)
}
