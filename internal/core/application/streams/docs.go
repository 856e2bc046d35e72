// Package streams produces the two live event streams of the simulator.
//
// PackageGenerator is the lazy, infinite package sequence. Hub owns one
// broadcaster per stream: the generator feed publishes packages into it, the
// delivery watcher publishes arrivals, and transport adapters subscribe.
//
// Backpressure is drop-new per subscriber (see package fanout): producers
// never block, a slow subscriber misses events, and others are unaffected.
package streams
