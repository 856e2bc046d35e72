// Package natsrelay mirrors the package and arrival streams onto NATS
// subjects so that consumers outside the process can follow them.
package natsrelay

import (
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"logistics/internal/core/domain/model/delivery"
	"logistics/internal/core/domain/model/parcel"
	"logistics/internal/pkg/fanout"

	"github.com/nats-io/nats.go"
)

// DefaultSubjectPrefix is prepended to the stream subjects.
const DefaultSubjectPrefix = "logistics"

var ErrRelayAlreadyStarted = errors.New("nats relay already started")

// natsConnectFunc allows test injection
var natsConnectFunc = nats.Connect

// Publisher is the subset of *nats.Conn used by the relay.
type Publisher interface {
	Publish(subject string, data []byte) error
}

// Source provides subscriptions to both streams.
type Source interface {
	SubscribePackages(buffer int) (*fanout.Subscription[parcel.Package], error)
	SubscribeArrivals(buffer int) (*fanout.Subscription[delivery.Arrival], error)
}

// Relay subscribes to the streams like any other client and publishes each
// event as JSON. A failed publish is logged and the event is skipped; the
// relay never slows down the streams it reads from.
type Relay struct {
	publisher Publisher
	prefix    string
	logger    *slog.Logger

	mu       sync.Mutex
	packages *fanout.Subscription[parcel.Package]
	arrivals *fanout.Subscription[delivery.Arrival]
	wg       sync.WaitGroup
}

// New creates a relay publishing under "<prefix>.packages" and "<prefix>.arrivals".
func New(publisher Publisher, prefix string, logger *slog.Logger) *Relay {
	if prefix == "" {
		prefix = DefaultSubjectPrefix
	}
	return &Relay{
		publisher: publisher,
		prefix:    prefix,
		logger:    logger.With("component", "nats_relay"),
	}
}

func (r *Relay) PackagesSubject() string {
	return r.prefix + ".packages"
}

func (r *Relay) ArrivalsSubject() string {
	return r.prefix + ".arrivals"
}

// Start subscribes to both streams with the given buffer.
func (r *Relay) Start(source Source, buffer int) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.packages != nil {
		return ErrRelayAlreadyStarted
	}

	packages, err := source.SubscribePackages(buffer)
	if err != nil {
		return fmt.Errorf("subscribe packages: %w", err)
	}
	arrivals, err := source.SubscribeArrivals(buffer)
	if err != nil {
		packages.Close()
		return fmt.Errorf("subscribe arrivals: %w", err)
	}
	r.packages, r.arrivals = packages, arrivals

	r.wg.Add(2)
	go func() {
		defer r.wg.Done()
		for p := range packages.Events() {
			r.publish(r.PackagesSubject(), newPackageMessage(p))
		}
	}()
	go func() {
		defer r.wg.Done()
		for a := range arrivals.Events() {
			r.publish(r.ArrivalsSubject(), newArrivalMessage(a))
		}
	}()

	r.logger.Info("NATS relay started",
		"packages_subject", r.PackagesSubject(),
		"arrivals_subject", r.ArrivalsSubject(),
	)
	return nil
}

// Stop unsubscribes, then waits until the events already buffered have been
// published.
func (r *Relay) Stop() {
	r.mu.Lock()
	packages, arrivals := r.packages, r.arrivals
	r.mu.Unlock()

	if packages == nil {
		return
	}
	packages.Close()
	arrivals.Close()
	r.wg.Wait()

	_, droppedPackages := packages.Stats()
	_, droppedArrivals := arrivals.Stats()
	r.logger.Info("NATS relay stopped",
		"dropped_packages", droppedPackages,
		"dropped_arrivals", droppedArrivals,
	)
}

func (r *Relay) publish(subject string, msg any) {
	data, err := json.Marshal(msg)
	if err != nil {
		r.logger.Error("Failed to encode event", "subject", subject, "error", err)
		return
	}
	if err := r.publisher.Publish(subject, data); err != nil {
		r.logger.Warn("Failed to publish event", "subject", subject, "error", err)
	}
}

// Connect dials the NATS server at url with reconnects enabled.
func Connect(url, name string, logger *slog.Logger) (*nats.Conn, error) {
	if url == "" {
		url = nats.DefaultURL
	}
	logger = logger.With("component", "nats_relay")

	nc, err := natsConnectFunc(url,
		nats.Name(name),
		nats.MaxReconnects(-1),
		nats.ReconnectWait(2*time.Second),
		nats.DisconnectErrHandler(func(_ *nats.Conn, err error) {
			if err != nil {
				logger.Warn("NATS disconnected", "error", err)
			}
		}),
		nats.ReconnectHandler(func(c *nats.Conn) {
			logger.Info("NATS reconnected", "url", c.ConnectedUrl())
		}),
	)
	if err != nil {
		return nil, fmt.Errorf("connect to nats at %s: %w", url, err)
	}
	return nc, nil
}
