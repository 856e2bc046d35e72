package natsrelay_test

import (
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"sync"
	"testing"

	"logistics/internal/adapters/out/natsrelay"
	"logistics/internal/core/application/streams"
	"logistics/internal/core/domain/model/delivery"
	"logistics/internal/core/domain/model/kernel"
	"logistics/internal/core/domain/model/parcel"

	"github.com/nats-io/nats.go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type published struct {
	subject string
	data    []byte
}

type fakePublisher struct {
	mu       sync.Mutex
	msgs     []published
	failures int
}

func (p *fakePublisher) Publish(subject string, data []byte) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.failures > 0 {
		p.failures--
		return errors.New("nats: connection closed")
	}
	p.msgs = append(p.msgs, published{subject: subject, data: data})
	return nil
}

func (p *fakePublisher) snapshot() []published {
	p.mu.Lock()
	defer p.mu.Unlock()
	return append([]published(nil), p.msgs...)
}

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func TestRelay_PublishesBothStreams(t *testing.T) {
	// Given
	hub := streams.NewHub(nil, discardLogger())
	defer hub.Close()
	pub := &fakePublisher{}
	relay := natsrelay.New(pub, "test", discardLogger())
	require.NoError(t, relay.Start(hub, 8))

	pkg, err := parcel.NewPackage(kernel.NewUUID(), parcel.Medium)
	require.NoError(t, err)

	// When
	hub.PublishPackage(t.Context(), pkg)
	hub.PublishArrival(t.Context(), delivery.Arrival{TruckID: "T1"})
	relay.Stop()

	// Then
	msgs := pub.snapshot()
	require.Len(t, msgs, 2)

	bySubject := map[string][]byte{}
	for _, m := range msgs {
		bySubject[m.subject] = m.data
	}

	var pkgMsg map[string]any
	require.NoError(t, json.Unmarshal(bySubject["test.packages"], &pkgMsg))
	assert.Equal(t, pkg.ID().String(), pkgMsg["package_id"])
	pkgType := pkgMsg["package_type"].(map[string]any)
	assert.Equal(t, "Medium", pkgType["label"])
	assert.InDelta(t, 20.0, pkgType["weight_capacity"], 0)
	assert.Equal(t, map[string]any{"width": 45.0, "height": 45.0, "length": 60.0}, pkgType["dimensions"])

	assert.JSONEq(t, `{"event":"TruckArrived","truck_id":"T1"}`, string(bySubject["test.arrivals"]))
}

func TestRelay_PublishFailureDoesNotStopRelay(t *testing.T) {
	hub := streams.NewHub(nil, discardLogger())
	defer hub.Close()
	pub := &fakePublisher{failures: 1}
	relay := natsrelay.New(pub, "", discardLogger())
	require.NoError(t, relay.Start(hub, 8))

	hub.PublishArrival(t.Context(), delivery.Arrival{TruckID: "T1"})
	hub.PublishArrival(t.Context(), delivery.Arrival{TruckID: "T2"})
	relay.Stop()

	msgs := pub.snapshot()
	require.Len(t, msgs, 1)
	assert.Equal(t, "logistics.arrivals", msgs[0].subject)
	assert.JSONEq(t, `{"event":"TruckArrived","truck_id":"T2"}`, string(msgs[0].data))
}

func TestRelay_StartTwice(t *testing.T) {
	hub := streams.NewHub(nil, discardLogger())
	defer hub.Close()
	relay := natsrelay.New(&fakePublisher{}, "x", discardLogger())

	require.NoError(t, relay.Start(hub, 1))
	defer relay.Stop()

	assert.ErrorIs(t, relay.Start(hub, 1), natsrelay.ErrRelayAlreadyStarted)
	assert.Equal(t, "x.packages", relay.PackagesSubject())
	assert.Equal(t, "x.arrivals", relay.ArrivalsSubject())
}

func TestRelay_StartOnClosedHub(t *testing.T) {
	hub := streams.NewHub(nil, discardLogger())
	hub.Close()

	err := natsrelay.New(&fakePublisher{}, "x", discardLogger()).Start(hub, 1)

	require.Error(t, err)
	assert.Contains(t, err.Error(), "subscribe packages")
}

func TestConnect_WrapsDialError(t *testing.T) {
	// Given
	var dialed string
	restore := natsrelay.SetNatsConnectFunc(func(url string, _ ...nats.Option) (*nats.Conn, error) {
		dialed = url
		return nil, nats.ErrNoServers
	})
	defer restore()

	// When
	nc, err := natsrelay.Connect("nats://broker:4222", "logistics", discardLogger())

	// Then
	assert.Nil(t, nc)
	require.ErrorIs(t, err, nats.ErrNoServers)
	assert.Equal(t, "nats://broker:4222", dialed)
}
