package commands

import (
	"context"
	"fmt"

	"logistics/internal/core/domain/model/delivery"
	"logistics/internal/core/ports"
)

// RegisterTruckCommandHandler stores the truck, opens its delivery and
// records the registration metrics.
//
// Example:
//
//	handler := NewRegisterTruckCommandHandler(trucks, registry, sampler, metrics)
//	d, err := handler.Handle(ctx, cmd)
//	// d.Deadline() is when the watcher will report the arrival
type RegisterTruckCommandHandler struct {
	trucks   ports.TruckRepository
	registry ports.DeliveryRegistry
	travel   TravelTimeSampler
	metrics  ports.Metrics
}

// NewRegisterTruckCommandHandler creates the handler. A nil metrics sink discards metrics.
func NewRegisterTruckCommandHandler(
	trucks ports.TruckRepository,
	registry ports.DeliveryRegistry,
	travel TravelTimeSampler,
	metrics ports.Metrics,
) RegisterTruckCommandHandler {
	if metrics == nil {
		metrics = ports.NopMetrics{}
	}
	return RegisterTruckCommandHandler{
		trucks:   trucks,
		registry: registry,
		travel:   travel,
		metrics:  metrics,
	}
}

// Handle registers the truck. The travel time is sampled before the registry
// is touched, so the registry lock never covers random number generation.
func (h *RegisterTruckCommandHandler) Handle(ctx context.Context, cmd RegisterTruckCommand) (delivery.Delivery, error) {
	if err := cmd.Validate(); err != nil {
		return delivery.Delivery{}, err
	}
	t := cmd.Truck()

	if err := h.trucks.Save(ctx, t); err != nil {
		return delivery.Delivery{}, fmt.Errorf("save truck %s: %w", t.ID(), err)
	}

	travelTime := h.travel.Sample()
	d, err := h.registry.Register(t.ID(), travelTime, t.PackageCount())
	if err != nil {
		return delivery.Delivery{}, fmt.Errorf("register delivery for truck %s: %w", t.ID(), err)
	}

	h.metrics.ObservePackagesPerTruck(d.PackageCount())
	h.metrics.AddTrucksInDelivery(1)
	h.metrics.AddPackagesWaiting(d.PackageCount())

	return d, nil
}
