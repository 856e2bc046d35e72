package jobs

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"logistics/internal/core/application/usecases/commands"
	"logistics/internal/core/ports"

	"github.com/robfig/cron/v3"
)

// DefaultWatcherInterval is the polling period of the delivery watcher.
const DefaultWatcherInterval = time.Second

// DeliveryWatcherJob polls the delivery registry on a fixed period and
// publishes an arrival for every delivery whose travel time has elapsed.
// A tick that is still running when the next one is due causes that next
// tick to be skipped, so at most one drain is in flight.
type DeliveryWatcherJob struct {
	handler  commands.TrackArrivalsCommandHandler
	clock    ports.Clock
	interval time.Duration
	cron     *cron.Cron
	logger   *slog.Logger
}

// NewDeliveryWatcherJob creates the watcher. Intervals below one second are
// rounded up to one second by the scheduler.
func NewDeliveryWatcherJob(
	handler commands.TrackArrivalsCommandHandler,
	clock ports.Clock,
	interval time.Duration,
	logger *slog.Logger,
) *DeliveryWatcherJob {
	if clock == nil {
		clock = ports.SystemClock{}
	}
	if interval <= 0 {
		interval = DefaultWatcherInterval
	}
	logger = logger.With("component", "delivery_watcher_job")

	return &DeliveryWatcherJob{
		handler:  handler,
		clock:    clock,
		interval: interval,
		cron: cron.New(
			cron.WithSeconds(),
			cron.WithChain(cron.SkipIfStillRunning(cronLogger{logger: logger})),
		),
		logger: logger,
	}
}

// Start schedules the polling loop.
func (j *DeliveryWatcherJob) Start() error {
	_, err := j.cron.AddFunc(fmt.Sprintf("@every %s", j.interval), func() {
		j.Tick(context.Background())
	})
	if err != nil {
		return err
	}

	j.cron.Start()
	j.logger.InfoContext(context.Background(), "Delivery watcher job started", "interval", j.interval.String())
	return nil
}

// Tick runs a single poll at the clock's current time and returns the
// number of arrivals it published.
func (j *DeliveryWatcherJob) Tick(ctx context.Context) int {
	arrivals, err := j.handler.Handle(ctx, commands.NewTrackArrivalsCommand(j.clock.Now()))
	if err != nil {
		j.logger.ErrorContext(ctx, "Delivery watcher tick failed", "error", err)
		return 0
	}

	for _, arrival := range arrivals {
		j.logger.InfoContext(ctx, "Truck arrived",
			"truck_id", arrival.TruckID,
			"packages", arrival.PackageCount,
			"delivery_time", arrival.DeliveryTime().String(),
		)
	}
	return len(arrivals)
}

// Stop unschedules the loop and waits for an in-flight tick to finish.
func (j *DeliveryWatcherJob) Stop() {
	<-j.cron.Stop().Done()
	j.logger.InfoContext(context.Background(), "Delivery watcher job stopped")
}
