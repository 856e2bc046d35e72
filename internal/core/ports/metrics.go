package ports

import "time"

// Metrics receives the side effects of core operations.
// Storage and export are the adapter's concern.
//
// Gauges take deltas, not absolute values: callers report their own change
// and concurrent reports commute, so no snapshot can overwrite a newer one.
type Metrics interface {
	// IncPackagesGenerated counts one generated package, in total and per type name.
	IncPackagesGenerated(packageType string)
	// ObservePackagesPerTruck records the manifest size of a registered truck.
	ObservePackagesPerTruck(count int)
	// AddTrucksInDelivery moves the outstanding delivery count by delta.
	AddTrucksInDelivery(delta int)
	// AddPackagesWaiting moves the count of packages on outstanding deliveries by delta.
	AddPackagesWaiting(delta int)
	// ObserveDeliveryTime records the departure-to-detection time of an arrival.
	ObserveDeliveryTime(d time.Duration)
	// AddStreamSubscribers moves the subscriber count of a stream by delta.
	AddStreamSubscribers(stream string, delta int)
	// IncStreamDropped counts one event dropped for a slow subscriber.
	IncStreamDropped(stream string)
}

// NopMetrics discards everything.
type NopMetrics struct{}

func (NopMetrics) IncPackagesGenerated(string)       {}
func (NopMetrics) ObservePackagesPerTruck(int)       {}
func (NopMetrics) AddTrucksInDelivery(int)           {}
func (NopMetrics) AddPackagesWaiting(int)            {}
func (NopMetrics) ObserveDeliveryTime(time.Duration) {}
func (NopMetrics) AddStreamSubscribers(string, int)  {}
func (NopMetrics) IncStreamDropped(string)           {}
