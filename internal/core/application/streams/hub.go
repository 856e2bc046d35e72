package streams

import (
	"context"
	"log/slog"

	"logistics/internal/core/domain/model/delivery"
	"logistics/internal/core/domain/model/parcel"
	"logistics/internal/core/ports"
	"logistics/internal/pkg/fanout"
)

// Stream names used in metrics labels and logs.
const (
	StreamPackages = "packages"
	StreamArrivals = "arrivals"
)

// DefaultBuffer is the per-subscriber channel capacity when none is requested.
const DefaultBuffer = 256

// Hub is the subscription point for both streams.
type Hub struct {
	packages *fanout.Broadcaster[parcel.Package]
	arrivals *fanout.Broadcaster[delivery.Arrival]
}

var (
	_ ports.PackagePublisher = (*Hub)(nil)
	_ ports.ArrivalPublisher = (*Hub)(nil)
)

// NewHub creates both broadcasters and reports subscriber counts and drops
// to metrics and logger.
func NewHub(metrics ports.Metrics, logger *slog.Logger) *Hub {
	if metrics == nil {
		metrics = ports.NopMetrics{}
	}
	logger = logger.With("component", "stream_hub")

	hooks := func(stream string) fanout.Hooks {
		return fanout.Hooks{
			OnDrop: func(subscriberID uint64) {
				metrics.IncStreamDropped(stream)
				logger.Debug("Subscriber too slow, event dropped",
					"stream", stream, "subscriber", subscriberID)
			},
			OnSubscribersChanged: func(delta int) {
				metrics.AddStreamSubscribers(stream, delta)
			},
		}
	}

	return &Hub{
		packages: fanout.New[parcel.Package](hooks(StreamPackages)),
		arrivals: fanout.New[delivery.Arrival](hooks(StreamArrivals)),
	}
}

// PublishPackage fans pkg out to package subscribers.
func (h *Hub) PublishPackage(_ context.Context, pkg parcel.Package) {
	h.packages.Publish(pkg)
}

// PublishArrival fans arrival out to arrival subscribers.
func (h *Hub) PublishArrival(_ context.Context, arrival delivery.Arrival) {
	h.arrivals.Publish(arrival)
}

// SubscribePackages opens a package subscription; buffer <= 0 means DefaultBuffer.
func (h *Hub) SubscribePackages(buffer int) (*fanout.Subscription[parcel.Package], error) {
	return h.packages.Subscribe(bufferOrDefault(buffer))
}

// SubscribeArrivals opens an arrival subscription; buffer <= 0 means DefaultBuffer.
func (h *Hub) SubscribeArrivals(buffer int) (*fanout.Subscription[delivery.Arrival], error) {
	return h.arrivals.Subscribe(bufferOrDefault(buffer))
}

// Close ends every subscription on both streams.
func (h *Hub) Close() {
	h.packages.Close()
	h.arrivals.Close()
}

func bufferOrDefault(buffer int) int {
	if buffer <= 0 {
		return DefaultBuffer
	}
	return buffer
}
