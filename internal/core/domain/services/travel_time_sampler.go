package services

import (
	"math"
	"time"

	"logistics/internal/pkg/errs"
)

// Defaults: travel times are uniform over [0, 24) units of one second.
const (
	DefaultTravelTimeMax  = 24.0
	DefaultTravelTimeUnit = time.Second
)

// TravelTimeSampler draws travel times uniformly from [0, max) * unit.
// The unit stands in for "hours" of simulated travel.
type TravelTimeSampler struct {
	max  float64
	unit time.Duration
	rng  *Rand
}

// NewTravelTimeSampler validates max > 0, unit > 0 and that max*unit fits a time.Duration.
func NewTravelTimeSampler(maxUnits float64, unit time.Duration, rng *Rand) (*TravelTimeSampler, error) {
	if math.IsNaN(maxUnits) || maxUnits <= 0 {
		return nil, errs.NewValueIsOutOfRangeError("travel_time_max", maxUnits, "(0", "+Inf)")
	}
	if unit <= 0 {
		return nil, errs.NewValueIsOutOfRangeError("travel_time_unit", unit, "(0", "+Inf)")
	}
	if !TravelTimeFits(maxUnits, unit) {
		return nil, errs.NewValueIsOutOfRangeError("travel_time_max", maxUnits, "(0", durationLimit/float64(unit))
	}
	return &TravelTimeSampler{max: maxUnits, unit: unit, rng: orRandom(rng)}, nil
}

// Sample returns a travel time in [0, max*unit).
func (s *TravelTimeSampler) Sample() time.Duration {
	return time.Duration(s.rng.Float64() * s.max * float64(s.unit))
}

// Max is the exclusive upper bound of Sample.
func (s *TravelTimeSampler) Max() time.Duration {
	return time.Duration(s.max * float64(s.unit))
}
