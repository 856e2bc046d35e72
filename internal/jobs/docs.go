// Package jobs provides the background tasks of the logistics simulator.
//
// # Available Jobs
//
// 1. DeliveryWatcherJob - polls the delivery registry every WATCHER_INTERVAL
// (one second by default) and publishes a TruckArrived event per overdue delivery
// 2. PackageFeedJob - consumes the package generator and publishes every package
// to the package stream
//
// # Usage
//
//	jobManager := jobs.NewJobManager(watcher, feed)
//	if err := jobManager.StartAll(); err != nil {
//		log.Fatal("Failed to start jobs:", err)
//	}
//	defer jobManager.StopAll()
//
// # Scheduling
//
// The watcher uses robfig/cron with an "@every" schedule and SkipIfStillRunning,
// so two drains never overlap. StopAll returns only after the running tick has
// finished publishing.
package jobs
