package cmd

import (
	"fmt"
	"log/slog"

	httpadapter "logistics/internal/adapters/in/http"
	"logistics/internal/adapters/out/memory/deliveryregistry"
	"logistics/internal/adapters/out/memory/truckrepo"
	"logistics/internal/adapters/out/metrics"
	"logistics/internal/adapters/out/natsrelay"
	"logistics/internal/core/application/streams"
	"logistics/internal/core/application/usecases/commands"
	"logistics/internal/core/application/usecases/queries"
	"logistics/internal/core/domain/model/parcel"
	"logistics/internal/core/domain/services"
	"logistics/internal/core/ports"
	"logistics/internal/jobs"

	"github.com/labstack/echo/v4"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
)

// CompositionRoot owns the process-wide singletons and builds everything
// else from them.
type CompositionRoot struct {
	configs    Config
	logger     *slog.Logger
	registry   *prometheus.Registry
	metrics    *metrics.Recorder
	clock      ports.Clock
	rng        *services.Rand
	trucks     *truckrepo.Repository
	deliveries *deliveryregistry.Registry
	hub        *streams.Hub
}

func NewCompositionRoot(configs Config, logger *slog.Logger) (*CompositionRoot, error) {
	registry := prometheus.NewRegistry()
	registry.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	recorder, err := metrics.NewRecorder(registry)
	if err != nil {
		return nil, fmt.Errorf("register metrics: %w", err)
	}

	clock := ports.SystemClock{}
	return &CompositionRoot{
		configs:    configs,
		logger:     logger,
		registry:   registry,
		metrics:    recorder,
		clock:      clock,
		rng:        services.NewRand(nil),
		trucks:     truckrepo.New(),
		deliveries: deliveryregistry.New(clock),
		hub:        streams.NewHub(recorder, logger),
	}, nil
}

func (c *CompositionRoot) Hub() *streams.Hub {
	return c.hub
}

func (c *CompositionRoot) CreateRegisterTruckCommandHandler() (commands.RegisterTruckCommandHandler, error) {
	sampler, err := services.NewTravelTimeSampler(c.configs.TravelTimeMax, c.configs.TravelTimeUnit, c.rng)
	if err != nil {
		return commands.RegisterTruckCommandHandler{}, err
	}
	return commands.NewRegisterTruckCommandHandler(c.trucks, c.deliveries, sampler, c.metrics), nil
}

func (c *CompositionRoot) CreateTrackArrivalsCommandHandler() commands.TrackArrivalsCommandHandler {
	return commands.NewTrackArrivalsCommandHandler(c.deliveries, c.hub, c.metrics)
}

func (c *CompositionRoot) CreateGetAllTrucksQueryHandler() queries.GetAllTrucksQueryHandler {
	return queries.NewGetAllTrucksQueryHandler(c.trucks)
}

func (c *CompositionRoot) CreatePackageGenerator() (*streams.PackageGenerator, error) {
	selector, err := services.NewPackageTypeSelector(parcel.Catalog(), c.rng)
	if err != nil {
		return nil, err
	}
	intervals, err := services.NewIntervalSampler(c.configs.PackageIntervalMean, c.configs.PackageIntervalStdDev, c.rng)
	if err != nil {
		return nil, err
	}
	return streams.NewPackageGenerator(selector, intervals, c.metrics), nil
}

func (c *CompositionRoot) CreateJobManager() (*jobs.JobManager, error) {
	generator, err := c.CreatePackageGenerator()
	if err != nil {
		return nil, fmt.Errorf("create package generator: %w", err)
	}
	watcher := jobs.NewDeliveryWatcherJob(
		c.CreateTrackArrivalsCommandHandler(),
		c.clock,
		c.configs.WatcherInterval,
		c.logger,
	)
	feed := jobs.NewPackageFeedJob(generator, c.hub, c.logger)
	return jobs.NewJobManager(watcher, feed), nil
}

func (c *CompositionRoot) CreateHTTPServer() (*httpadapter.Server, error) {
	registerTruck, err := c.CreateRegisterTruckCommandHandler()
	if err != nil {
		return nil, fmt.Errorf("create register truck handler: %w", err)
	}
	return httpadapter.NewServer(
		registerTruck,
		c.CreateGetAllTrucksQueryHandler(),
		c.hub,
		c.configs.StreamBuffer,
		c.logger,
	), nil
}

func (c *CompositionRoot) CreateRouter() (*echo.Echo, error) {
	server, err := c.CreateHTTPServer()
	if err != nil {
		return nil, err
	}
	return httpadapter.NewRouter(server, c.registry, c.logger)
}

// CreateNatsRelay connects to NATS and starts mirroring both streams.
// It returns a nil stop function when NATS_URL is not configured.
func (c *CompositionRoot) CreateNatsRelay() (stop func(), err error) {
	if c.configs.NatsURL == "" {
		return nil, nil
	}
	nc, err := natsrelay.Connect(c.configs.NatsURL, "logistics-simulator", c.logger)
	if err != nil {
		return nil, err
	}
	relay := natsrelay.New(nc, c.configs.NatsSubjectPrefix, c.logger)
	if err := relay.Start(c.hub, c.configs.StreamBuffer); err != nil {
		nc.Close()
		return nil, err
	}
	return func() {
		relay.Stop()
		if err := nc.Drain(); err != nil {
			c.logger.Warn("NATS drain failed", "error", err)
		}
	}, nil
}
