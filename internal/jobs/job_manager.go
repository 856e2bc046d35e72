package jobs

import (
	"fmt"
)

// JobManager coordinates the background jobs of the simulator.
// Provides a unified interface to start and stop them.
type JobManager struct {
	deliveryWatcherJob *DeliveryWatcherJob
	packageFeedJob     *PackageFeedJob
}

// NewJobManager creates a manager over already constructed jobs.
func NewJobManager(watcher *DeliveryWatcherJob, feed *PackageFeedJob) *JobManager {
	return &JobManager{
		deliveryWatcherJob: watcher,
		packageFeedJob:     feed,
	}
}

// StartAll starts every job. Returns an error if any job fails to start.
func (jm *JobManager) StartAll() error {
	if err := jm.packageFeedJob.Start(); err != nil {
		return fmt.Errorf("failed to start package feed job: %w", err)
	}

	if err := jm.deliveryWatcherJob.Start(); err != nil {
		// Stop already started jobs if this one fails
		jm.packageFeedJob.Stop()
		return fmt.Errorf("failed to start delivery watcher job: %w", err)
	}

	return nil
}

// StopAll stops the watcher first, waiting for its in-flight tick, then the
// package feed.
func (jm *JobManager) StopAll() {
	jm.deliveryWatcherJob.Stop()
	jm.packageFeedJob.Stop()
}
