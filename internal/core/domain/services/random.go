package services

import (
	"math"
	"math/rand/v2"
	"sync"
	"time"
)

// durationLimit is the first float64 that no longer fits a time.Duration.
const durationLimit = float64(math.MaxInt64)

// intervalSigmas is how many standard deviations above the mean a sampled
// interval must still be representable for.
const intervalSigmas = 8

// TravelTimeFits reports whether [0, maxUnits*unit) is representable as a
// time.Duration.
func TravelTimeFits(maxUnits float64, unit time.Duration) bool {
	return maxUnits*float64(unit) < durationLimit
}

// IntervalFits reports whether mean + 8*stddev is representable as a
// time.Duration.
func IntervalFits(mean, stddev time.Duration) bool {
	return float64(mean)+intervalSigmas*float64(stddev) < durationLimit
}

// Rand is a random source safe for concurrent use. The lock lives with the
// source, so one *Rand may back any number of services.
type Rand struct {
	mu  sync.Mutex
	rng *rand.Rand
}

// NewRand wraps src. A nil src picks a randomly seeded PCG.
func NewRand(src rand.Source) *Rand {
	if src == nil {
		src = rand.NewPCG(rand.Uint64(), rand.Uint64()) //nolint:gosec // simulation, not crypto
	}
	return &Rand{rng: rand.New(src)}
}

// Float64 returns a value in [0.0, 1.0).
func (r *Rand) Float64() float64 {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.rng.Float64()
}

// NormFloat64 returns a standard normal value.
func (r *Rand) NormFloat64() float64 {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.rng.NormFloat64()
}

func orRandom(r *Rand) *Rand {
	if r == nil {
		return NewRand(nil)
	}
	return r
}
