package delivery

import (
	"errors"
	"time"

	"logistics/internal/pkg/errs"
	"logistics/internal/pkg/guard"
)

// ErrDeliveryIsNotConstructed is returned when a zero-value Delivery is used.
var ErrDeliveryIsNotConstructed = errors.New("Delivery must be created via NewDelivery constructor")

// Delivery is a pending truck dispatch. It is created once per truck
// registration, never mutated, and removed from the registry the first time
// it is found overdue.
//
// A delivery is overdue at now when now - (departure + travelTime) >= 0.
// The boundary is inclusive: a delivery whose deadline equals now is overdue.
type Delivery struct {
	truckID      string
	departure    time.Time
	travelTime   time.Duration
	packageCount int
	guard        guard.ConstructorGuard
}

// NewDelivery validates and builds a Delivery.
//
// Parameters:
//   - truckID: the dispatched truck, non-empty
//   - departure: dispatch timestamp
//   - travelTime: simulated travel duration, >= 0
//   - packageCount: number of packages on board, >= 0
func NewDelivery(truckID string, departure time.Time, travelTime time.Duration, packageCount int) (Delivery, error) {
	var idErr, travelErr, countErr error
	if truckID == "" {
		idErr = errs.NewValueIsRequiredError("truck_id")
	}
	if travelTime < 0 {
		travelErr = errs.NewValueIsOutOfRangeError("travel_time", travelTime, 0, "+Inf")
	}
	if packageCount < 0 {
		countErr = errs.NewValueIsOutOfRangeError("package_count", packageCount, 0, "+Inf")
	}
	if err := errors.Join(idErr, travelErr, countErr); err != nil {
		return Delivery{}, err
	}

	return Delivery{
		truckID:      truckID,
		departure:    departure,
		travelTime:   travelTime,
		packageCount: packageCount,
		guard:        guard.NewConstructorGuard(),
	}, nil
}

// Validate reports whether the value was built by NewDelivery.
func (d Delivery) Validate() error {
	return d.guard.Validate(ErrDeliveryIsNotConstructed)
}

func (d Delivery) TruckID() string {
	return d.truckID
}

func (d Delivery) Departure() time.Time {
	return d.departure
}

func (d Delivery) TravelTime() time.Duration {
	return d.travelTime
}

func (d Delivery) PackageCount() int {
	return d.packageCount
}

// Deadline is the simulated arrival time.
func (d Delivery) Deadline() time.Time {
	return d.departure.Add(d.travelTime)
}

// IsOverdue reports whether the deadline is at or before now.
func (d Delivery) IsOverdue(now time.Time) bool {
	return !now.Before(d.Deadline())
}

// Arrive produces the arrival event for a delivery detected at now.
func (d Delivery) Arrive(now time.Time) Arrival {
	return Arrival{
		TruckID:      d.truckID,
		DepartedAt:   d.departure,
		DetectedAt:   now,
		PackageCount: d.packageCount,
	}
}
