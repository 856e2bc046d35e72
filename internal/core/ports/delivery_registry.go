package ports

import (
	"time"

	"logistics/internal/core/domain/model/delivery"
)

// DeliveryRegistry is the shared set of outstanding deliveries.
//
// Implementations must serialize Register and DrainOverdue so that:
//   - a delivery is returned by DrainOverdue at most once, ever
//   - a delivery registered during a drain is either fully included or not at all
//   - DrainOverdue preserves registration order within one call
type DeliveryRegistry interface {
	// Register opens a delivery departing now with the given travel time.
	Register(truckID string, travelTime time.Duration, packageCount int) (delivery.Delivery, error)

	// DrainOverdue removes and returns every delivery overdue at now
	// (deadline <= now).
	DrainOverdue(now time.Time) []delivery.Delivery
}
