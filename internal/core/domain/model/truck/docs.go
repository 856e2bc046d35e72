// Package truck contains the Truck aggregate registered over HTTP.
//
// A Truck is read-only after construction. The delivery core only needs its
// ID and package count; capacity and max weight are kept for listing.
package truck
