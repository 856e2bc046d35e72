package commands

import (
	"context"

	"logistics/internal/core/domain/model/delivery"
	"logistics/internal/core/ports"
)

// TrackArrivalsCommandHandler is the body of the delivery watcher: it drains
// the deliveries overdue at the command's time and publishes one arrival per
// delivery, in registry order.
//
// The drain is the only step under the registry lock. Publishing happens
// afterwards and cannot fail, so a problem with one subscriber never reaches
// the registry or other subscribers.
type TrackArrivalsCommandHandler struct {
	registry  ports.DeliveryRegistry
	publisher ports.ArrivalPublisher
	metrics   ports.Metrics
}

// NewTrackArrivalsCommandHandler creates the handler. A nil metrics sink discards metrics.
func NewTrackArrivalsCommandHandler(
	registry ports.DeliveryRegistry,
	publisher ports.ArrivalPublisher,
	metrics ports.Metrics,
) TrackArrivalsCommandHandler {
	if metrics == nil {
		metrics = ports.NopMetrics{}
	}
	return TrackArrivalsCommandHandler{
		registry:  registry,
		publisher: publisher,
		metrics:   metrics,
	}
}

// Handle runs one poll and returns the arrivals it published.
func (h *TrackArrivalsCommandHandler) Handle(ctx context.Context, cmd TrackArrivalsCommand) ([]delivery.Arrival, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}

	overdue := h.registry.DrainOverdue(cmd.Now())
	if len(overdue) == 0 {
		return nil, nil
	}

	arrivals := make([]delivery.Arrival, 0, len(overdue))
	drainedPackages := 0
	for _, d := range overdue {
		drainedPackages += d.PackageCount()
		arrival := d.Arrive(cmd.Now())
		h.publisher.PublishArrival(ctx, arrival)
		h.metrics.ObserveDeliveryTime(arrival.DeliveryTime())
		arrivals = append(arrivals, arrival)
	}

	h.metrics.AddTrucksInDelivery(-len(overdue))
	h.metrics.AddPackagesWaiting(-drainedPackages)

	return arrivals, nil
}
