// Package metrics records simulator metrics in Prometheus.
package metrics

import (
	"time"

	"logistics/internal/core/ports"

	"github.com/prometheus/client_golang/prometheus"
)

// Recorder implements ports.Metrics on top of client_golang collectors.
type Recorder struct {
	packagesCounter     prometheus.Counter
	packageCreation     *prometheus.CounterVec
	trucksGauge         prometheus.Gauge
	packagesPerTruck    prometheus.Histogram
	deliveryTime        prometheus.Histogram
	packagesWaiting     prometheus.Gauge
	streamSubscribers   *prometheus.GaugeVec
	streamEventsDropped *prometheus.CounterVec
}

var _ ports.Metrics = (*Recorder)(nil)

// NewRecorder creates the collectors and registers them on reg.
// Registration fails if any name is already taken on reg.
func NewRecorder(reg prometheus.Registerer) (*Recorder, error) {
	r := &Recorder{
		packagesCounter: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "packages_counter",
			Help: "Number of packages generated",
		}),
		packageCreation: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "package_creation",
			Help: "Number of packages generated per package type",
		}, []string{"package_type"}),
		trucksGauge: prometheus.NewGauge(prometheus.GaugeOpts{
			Name: "trucks_gauge",
			Help: "Number of trucks currently on the road",
		}),
		packagesPerTruck: prometheus.NewHistogram(prometheus.HistogramOpts{
			Name:    "packages_per_truck",
			Help:    "Number of packages loaded on a registered truck",
			Buckets: []float64{0, 1, 2, 5, 10, 20, 50, 100},
		}),
		deliveryTime: prometheus.NewHistogram(prometheus.HistogramOpts{
			Name:    "package_delivery_time",
			Help:    "Seconds from truck departure until its arrival was detected",
			Buckets: prometheus.LinearBuckets(0, 2, 14),
		}),
		packagesWaiting: prometheus.NewGauge(prometheus.GaugeOpts{
			Name: "packages_waiting_for_delivery",
			Help: "Packages loaded on trucks that have not arrived yet",
		}),
		streamSubscribers: prometheus.NewGaugeVec(prometheus.GaugeOpts{
			Name: "stream_subscribers",
			Help: "Connected subscribers per event stream",
		}, []string{"stream"}),
		streamEventsDropped: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "stream_events_dropped_total",
			Help: "Events dropped because a subscriber buffer was full",
		}, []string{"stream"}),
	}

	collectors := []prometheus.Collector{
		r.packagesCounter,
		r.packageCreation,
		r.trucksGauge,
		r.packagesPerTruck,
		r.deliveryTime,
		r.packagesWaiting,
		r.streamSubscribers,
		r.streamEventsDropped,
	}
	for _, c := range collectors {
		if err := reg.Register(c); err != nil {
			return nil, err
		}
	}
	return r, nil
}

func (r *Recorder) IncPackagesGenerated(packageType string) {
	r.packagesCounter.Inc()
	r.packageCreation.WithLabelValues(packageType).Inc()
}

func (r *Recorder) ObservePackagesPerTruck(count int) {
	r.packagesPerTruck.Observe(float64(count))
}

func (r *Recorder) AddTrucksInDelivery(delta int) {
	r.trucksGauge.Add(float64(delta))
}

func (r *Recorder) AddPackagesWaiting(delta int) {
	r.packagesWaiting.Add(float64(delta))
}

func (r *Recorder) ObserveDeliveryTime(d time.Duration) {
	r.deliveryTime.Observe(d.Seconds())
}

func (r *Recorder) AddStreamSubscribers(stream string, delta int) {
	r.streamSubscribers.WithLabelValues(stream).Add(float64(delta))
}

func (r *Recorder) IncStreamDropped(stream string) {
	r.streamEventsDropped.WithLabelValues(stream).Inc()
}
