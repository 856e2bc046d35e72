package services

import (
	"math"
	"time"

	"logistics/internal/pkg/errs"
)

// Defaults for the package generator cadence.
const (
	DefaultIntervalMean   = 550 * time.Millisecond
	DefaultIntervalStdDev = 250 * time.Millisecond
)

// IntervalSampler draws waits from N(mean, stddev). Negative draws are
// clamped to zero rather than redrawn.
type IntervalSampler struct {
	mean   time.Duration
	stddev time.Duration
	rng    *Rand
}

// NewIntervalSampler validates mean >= 0, stddev >= 0 and that mean + 8*stddev
// fits a time.Duration.
func NewIntervalSampler(mean, stddev time.Duration, rng *Rand) (*IntervalSampler, error) {
	if mean < 0 {
		return nil, errs.NewValueIsOutOfRangeError("interval_mean", mean, 0, "+Inf")
	}
	if stddev < 0 {
		return nil, errs.NewValueIsOutOfRangeError("interval_stddev", stddev, 0, "+Inf")
	}
	if !IntervalFits(mean, stddev) {
		return nil, errs.NewValueIsOutOfRangeError("interval_stddev", stddev, 0,
			time.Duration((durationLimit-float64(mean))/intervalSigmas))
	}
	return &IntervalSampler{mean: mean, stddev: stddev, rng: orRandom(rng)}, nil
}

// Next returns the next wait, never negative. Draws past the largest
// time.Duration are clamped to it.
func (s *IntervalSampler) Next() time.Duration {
	f := float64(s.mean) + s.rng.NormFloat64()*float64(s.stddev)
	switch {
	case f <= 0:
		return 0
	case f >= durationLimit:
		return math.MaxInt64
	}
	return time.Duration(f)
}
