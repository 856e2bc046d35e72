package ports

import (
	"context"

	"logistics/internal/core/domain/model/delivery"
	"logistics/internal/core/domain/model/parcel"
)

// ArrivalPublisher fans an arrival event out to subscribers.
// Publishing never blocks on slow subscribers and never fails the caller;
// per-subscriber delivery problems are handled by the implementation.
type ArrivalPublisher interface {
	PublishArrival(ctx context.Context, arrival delivery.Arrival)
}

// PackagePublisher fans a generated package out to subscribers, with the
// same non-blocking contract as ArrivalPublisher.
type PackagePublisher interface {
	PublishPackage(ctx context.Context, pkg parcel.Package)
}
