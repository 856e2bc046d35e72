package streams

import (
	"context"
	"time"

	"logistics/internal/core/domain/model/kernel"
	"logistics/internal/core/domain/model/parcel"
	"logistics/internal/core/domain/services"
	"logistics/internal/core/ports"
)

// PackageGenerator emits packages of random type at random intervals.
type PackageGenerator struct {
	selector  *services.PackageTypeSelector
	intervals *services.IntervalSampler
	metrics   ports.Metrics
}

// NewPackageGenerator wires the generator. A nil metrics sink discards metrics.
func NewPackageGenerator(
	selector *services.PackageTypeSelector,
	intervals *services.IntervalSampler,
	metrics ports.Metrics,
) *PackageGenerator {
	if metrics == nil {
		metrics = ports.NopMetrics{}
	}
	return &PackageGenerator{
		selector:  selector,
		intervals: intervals,
		metrics:   metrics,
	}
}

// Produce starts a new infinite sequence. Each iteration waits one sampled
// interval, then emits a package with a fresh ID. The channel is closed once
// ctx is cancelled; a cancelled sequence cannot be resumed, call Produce again.
//
// The channel is unbuffered: the next wait starts only after the consumer
// took the previous package.
func (g *PackageGenerator) Produce(ctx context.Context) <-chan parcel.Package {
	out := make(chan parcel.Package)

	go func() {
		defer close(out)

		timer := time.NewTimer(g.intervals.Next())
		defer timer.Stop()

		for {
			select {
			case <-ctx.Done():
				return
			case <-timer.C:
			}

			pkg, err := parcel.NewPackage(kernel.NewUUID(), g.selector.Select())
			if err != nil {
				timer.Reset(g.intervals.Next())
				continue
			}

			select {
			case out <- pkg:
			case <-ctx.Done():
				return
			}
			g.metrics.IncPackagesGenerated(pkg.Type().Name())

			timer.Reset(g.intervals.Next())
		}
	}()

	return out
}
