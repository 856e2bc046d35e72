package metrics_test

import (
	"strings"
	"testing"
	"time"

	"logistics/internal/adapters/out/metrics"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewRecorder_RegistersOnce(t *testing.T) {
	reg := prometheus.NewRegistry()

	_, err := metrics.NewRecorder(reg)
	require.NoError(t, err)

	_, err = metrics.NewRecorder(reg)
	assert.Error(t, err)
}

func TestRecorder_PackagesGenerated(t *testing.T) {
	// Given
	reg := prometheus.NewRegistry()
	r, err := metrics.NewRecorder(reg)
	require.NoError(t, err)

	// When
	r.IncPackagesGenerated("SMALL")
	r.IncPackagesGenerated("SMALL")
	r.IncPackagesGenerated("WARDROBE")

	// Then
	expected := `
# HELP package_creation Number of packages generated per package type
# TYPE package_creation counter
package_creation{package_type="SMALL"} 2
package_creation{package_type="WARDROBE"} 1
# HELP packages_counter Number of packages generated
# TYPE packages_counter counter
packages_counter 3
`
	require.NoError(t, testutil.GatherAndCompare(reg, strings.NewReader(expected),
		"packages_counter", "package_creation"))
}

func TestRecorder_DeliveryLifecycle(t *testing.T) {
	reg := prometheus.NewRegistry()
	r, err := metrics.NewRecorder(reg)
	require.NoError(t, err)

	r.ObservePackagesPerTruck(3)
	r.AddTrucksInDelivery(3)
	r.AddTrucksInDelivery(-1)
	r.AddPackagesWaiting(9)
	r.AddPackagesWaiting(-2)
	r.ObserveDeliveryTime(1500 * time.Millisecond)
	r.AddStreamSubscribers("packages", 5)
	r.AddStreamSubscribers("packages", -1)
	r.IncStreamDropped("arrivals")

	count, err := testutil.GatherAndCount(reg, "package_delivery_time", "packages_per_truck")
	require.NoError(t, err)
	assert.Equal(t, 2, count)

	expected := `
# HELP packages_waiting_for_delivery Packages loaded on trucks that have not arrived yet
# TYPE packages_waiting_for_delivery gauge
packages_waiting_for_delivery 7
# HELP stream_events_dropped_total Events dropped because a subscriber buffer was full
# TYPE stream_events_dropped_total counter
stream_events_dropped_total{stream="arrivals"} 1
# HELP stream_subscribers Connected subscribers per event stream
# TYPE stream_subscribers gauge
stream_subscribers{stream="packages"} 4
# HELP trucks_gauge Number of trucks currently on the road
# TYPE trucks_gauge gauge
trucks_gauge 2
`
	require.NoError(t, testutil.GatherAndCompare(reg, strings.NewReader(expected),
		"trucks_gauge", "packages_waiting_for_delivery", "stream_subscribers", "stream_events_dropped_total"))
}
