package jobs

import (
	"context"
	"errors"
	"log/slog"
	"sync"

	"logistics/internal/core/domain/model/parcel"
	"logistics/internal/core/ports"
)

var ErrPackageFeedJobAlreadyStarted = errors.New("package feed job already started")

// PackageSource is an endless sequence of generated packages.
type PackageSource interface {
	Produce(ctx context.Context) <-chan parcel.Package
}

// PackageFeedJob pumps the package generator into the package stream.
// The generator is consumed exactly once for the lifetime of the process.
type PackageFeedJob struct {
	source    PackageSource
	publisher ports.PackagePublisher
	logger    *slog.Logger

	mu     sync.Mutex
	cancel context.CancelFunc
	done   chan struct{}
}

func NewPackageFeedJob(source PackageSource, publisher ports.PackagePublisher, logger *slog.Logger) *PackageFeedJob {
	return &PackageFeedJob{
		source:    source,
		publisher: publisher,
		logger:    logger.With("component", "package_feed_job"),
	}
}

// Start launches the pump in its own goroutine.
func (j *PackageFeedJob) Start() error {
	j.mu.Lock()
	defer j.mu.Unlock()

	if j.done != nil {
		return ErrPackageFeedJobAlreadyStarted
	}

	ctx, cancel := context.WithCancel(context.Background())
	j.cancel = cancel
	j.done = make(chan struct{})

	packages := j.source.Produce(ctx)
	go func(done chan struct{}) {
		defer close(done)
		var published int
		for pkg := range packages {
			j.publisher.PublishPackage(ctx, pkg)
			published++
		}
		j.logger.InfoContext(context.Background(), "Package feed drained", "published", published)
	}(j.done)

	j.logger.InfoContext(ctx, "Package feed job started")
	return nil
}

// Stop cancels the generator and waits for the pump to exit.
// Calling Stop on a job that was never started is a no-op.
func (j *PackageFeedJob) Stop() {
	j.mu.Lock()
	cancel, done := j.cancel, j.done
	j.mu.Unlock()

	if cancel == nil {
		return
	}
	cancel()
	<-done
	j.logger.InfoContext(context.Background(), "Package feed job stopped")
}
