// Package services provides stateless domain services of the logistics simulator.
//
// The package includes:
//   - PackageTypeSelector: weighted random choice over the package-type catalog
//   - IntervalSampler: clamped normal inter-arrival times for the package generator
//   - TravelTimeSampler: uniform travel times for newly dispatched trucks
//
// Randomness comes from an injected *Rand so tests can seed it. A *Rand
// serializes access to its source, so services sharing one are safe for
// concurrent use. None of them emit metrics; callers do.
package services
