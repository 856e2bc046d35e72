// Package deliveryregistry is the in-memory DeliveryRegistry.
//
// All state sits behind one mutex. Critical sections only touch the slice:
// travel times are sampled and events published by callers, outside the lock.
package deliveryregistry

import (
	"slices"
	"sync"
	"time"

	"logistics/internal/core/domain/model/delivery"
	"logistics/internal/core/ports"
)

// Registry keeps outstanding deliveries in registration order.
type Registry struct {
	mu      sync.Mutex
	clock   ports.Clock
	live    []delivery.Delivery
	pending int
}

var _ ports.DeliveryRegistry = (*Registry)(nil)

// New creates an empty registry. A nil clock means the system clock.
func New(clock ports.Clock) *Registry {
	if clock == nil {
		clock = ports.SystemClock{}
	}
	return &Registry{clock: clock}
}

// Register opens a delivery departing at the clock's current time.
// Registering the same truck twice yields two independent deliveries.
func (r *Registry) Register(truckID string, travelTime time.Duration, packageCount int) (delivery.Delivery, error) {
	d, err := delivery.NewDelivery(truckID, r.clock.Now(), travelTime, packageCount)
	if err != nil {
		return delivery.Delivery{}, err
	}

	r.mu.Lock()
	r.live = append(r.live, d)
	r.pending += d.PackageCount()
	r.mu.Unlock()

	return d, nil
}

// DrainOverdue collects every delivery overdue at now, then removes exactly
// that subset, both under the same lock. A concurrent Register either lands
// before the scan (and is judged against now) or after the removal.
func (r *Registry) DrainOverdue(now time.Time) []delivery.Delivery {
	r.mu.Lock()
	defer r.mu.Unlock()

	first := slices.IndexFunc(r.live, func(d delivery.Delivery) bool { return d.IsOverdue(now) })
	if first < 0 {
		return nil
	}

	overdue := make([]delivery.Delivery, 0, len(r.live)-first)
	remaining := make([]delivery.Delivery, first, len(r.live))
	copy(remaining, r.live[:first])
	for _, d := range r.live[first:] {
		if d.IsOverdue(now) {
			overdue = append(overdue, d)
			r.pending -= d.PackageCount()
		} else {
			remaining = append(remaining, d)
		}
	}
	r.live = remaining

	return overdue
}

// Len is the number of outstanding deliveries.
func (r *Registry) Len() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.live)
}

// PendingPackages is the number of packages on outstanding deliveries.
func (r *Registry) PendingPackages() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.pending
}

// Snapshot copies the outstanding deliveries in registration order.
func (r *Registry) Snapshot() []delivery.Delivery {
	r.mu.Lock()
	defer r.mu.Unlock()
	return slices.Clone(r.live)
}
